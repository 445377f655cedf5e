package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"artdistrict/internal/api"
	"artdistrict/internal/config"
	"artdistrict/internal/session"
)

// setupGlobals wires the package globals the way PersistentPreRunE would.
func setupGlobals(t *testing.T, apiBase string) string {
	t.Helper()
	dir := t.TempDir()
	logger = zap.NewNop()
	cfg = config.Default()
	cfg.APIBaseURL = apiBase
	sessions = session.NewManager(dir)
	if err := sessions.Load(); err != nil {
		t.Fatalf("session load failed: %v", err)
	}
	return dir
}

func runCommand(t *testing.T, cmd *cobra.Command) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	// Execute would install this; invoking RunE directly skips it.
	cmd.SetContext(context.Background())
	err := cmd.RunE(cmd, nil)
	return out.String(), err
}

func TestLoginCmdStoresSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(api.AuthResponse{
			User:   api.User{ID: "u1", Email: "maria@example.com"},
			Tokens: api.Tokens{AccessToken: "a-1", RefreshToken: "r-1"},
		})
	}))
	defer srv.Close()

	dir := setupGlobals(t, srv.URL)
	loginEmail = "maria@example.com"
	loginPassword = "hunter2"
	defer func() { loginEmail, loginPassword = "", "" }()

	out, err := runCommand(t, loginCmd)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if want := "Signed in as maria@example.com\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if _, err := os.Stat(filepath.Join(dir, "session.json")); err != nil {
		t.Errorf("session file not written: %v", err)
	}
	if sessions.AccessToken() != "a-1" {
		t.Errorf("access token = %q", sessions.AccessToken())
	}
}

func TestWhoamiRequiresSignIn(t *testing.T) {
	setupGlobals(t, "http://localhost:0")
	if _, err := runCommand(t, whoamiCmd); err == nil {
		t.Error("whoami should fail when signed out")
	}
}

func TestLogoutClearsSessionEvenIfServerFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	setupGlobals(t, srv.URL)
	if err := sessions.Save(session.Session{AccessToken: "a", RefreshToken: "r"}); err != nil {
		t.Fatalf("seed session failed: %v", err)
	}

	if _, err := runCommand(t, logoutCmd); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if sessions.SignedIn() {
		t.Error("session should be cleared")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("a very long artwork title here", 12); len([]rune(got)) > 12 {
		t.Errorf("truncate long = %q (%d runes)", got, len([]rune(got)))
	}
	// Multi-byte titles must not be cut mid-rune.
	got := truncate("Café de たんぽぽ, une étude à l'huile", 10)
	if !utf8.ValidString(got) {
		t.Errorf("truncate produced invalid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncate long = %q, want ellipsis suffix", got)
	}
}
