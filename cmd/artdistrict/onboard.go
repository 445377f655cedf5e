package main

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"artdistrict/cmd/artdistrict/onboard"
	"artdistrict/internal/config"
	"artdistrict/internal/draft"
	"artdistrict/internal/onboarding"
)

var onboardNoDrafts bool

// onboardCmd launches the artist onboarding wizard
var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Apply to become an artist",
	Long: `Walks through the six-step artist application: personal info, membership
plan, payment and payouts, tax verification, your art profile, and your
web presence.

With data-saving consent granted, progress is stored locally and the
wizard resumes where you left off.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireSignIn(); err != nil {
			return err
		}

		var drafts onboarding.DraftStore
		if onboardNoDrafts {
			drafts = onboarding.NewMemoryDraftStore()
		} else {
			store, err := draft.Open(filepath.Join(config.Dir(), "drafts.db"))
			if err != nil {
				// Fall back to a memory store rather than blocking onboarding.
				logger.Warn("draft store unavailable", zap.Error(err))
				drafts = onboarding.NewMemoryDraftStore()
			} else {
				defer store.Close()
				drafts = store
			}
		}

		m := onboard.New(onboard.Config{
			Service: newClient(),
			Drafts:  drafts,
			Timeout: cfg.RequestTimeout(),
		})
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("onboarding failed: %w", err)
		}
		return nil
	},
}

func init() {
	onboardCmd.Flags().BoolVar(&onboardNoDrafts, "no-drafts", false, "do not persist drafts to disk")
}
