package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// The package keeps global state, so these tests run sequentially and reset
// it between cases.
func reset() {
	CloseAll()
	logsDir = ""
	enabled = false
	logLevel = LevelInfo
}

func readCategoryLog(t *testing.T, dir string, cat Category) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "logs", "*_"+string(cat)+".log"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(matches) == 0 {
		return ""
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	return string(data)
}

func TestDisabledIsNoOp(t *testing.T) {
	defer reset()
	dir := t.TempDir()
	if err := Initialize(dir, false, "info"); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	Wizard("should go nowhere")
	if _, err := os.Stat(filepath.Join(dir, "logs")); !os.IsNotExist(err) {
		t.Error("disabled logging must not create a logs directory")
	}
}

func TestCategoryFiles(t *testing.T) {
	defer reset()
	dir := t.TempDir()
	if err := Initialize(dir, true, "info"); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	Wizard("advanced to step %d", 3)
	BrowseError("fetch failed: %v", "timeout")
	CloseAll()

	wizard := readCategoryLog(t, dir, CategoryWizard)
	if !strings.Contains(wizard, "[INFO] advanced to step 3") {
		t.Errorf("wizard log missing entry, got: %q", wizard)
	}
	browse := readCategoryLog(t, dir, CategoryBrowse)
	if !strings.Contains(browse, "[ERROR] fetch failed: timeout") {
		t.Errorf("browse log missing entry, got: %q", browse)
	}
	if strings.Contains(wizard, "fetch failed") {
		t.Error("categories must not share files")
	}
}

func TestLevelFiltering(t *testing.T) {
	defer reset()
	dir := t.TempDir()
	if err := Initialize(dir, true, "error"); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	l := Get(CategoryAPI)
	l.Debug("debug line")
	l.Info("info line")
	l.Warn("warn line")
	l.Error("error line")
	CloseAll()

	got := readCategoryLog(t, dir, CategoryAPI)
	if strings.Contains(got, "info line") || strings.Contains(got, "warn line") {
		t.Errorf("level filter leaked lower levels: %q", got)
	}
	if !strings.Contains(got, "error line") {
		t.Errorf("error line missing: %q", got)
	}
}
