package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"artdistrict/internal/api"
	"artdistrict/internal/config"
	"artdistrict/internal/logging"
	"artdistrict/internal/session"
)

var (
	// Global flags
	verbose     bool
	apiURL      string
	timeoutSecs int
	configPath  string

	// Shared state built in PersistentPreRunE
	cfg      *config.Config
	sessions *session.Manager
	logger   *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "artdistrict",
	Short: "ArtDistrictUSA marketplace client",
	Long: `artdistrict is the terminal client for the ArtDistrictUSA art marketplace.

Browse the public catalog, sign in, walk through artist onboarding, and
manage your own listings without leaving the shell.

Run 'artdistrict browse' to explore the catalog, or 'artdistrict onboard'
to start an artist application.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(resolveConfigPath())
		if err != nil {
			return err
		}
		if apiURL != "" {
			cfg.APIBaseURL = apiURL
		}
		if timeoutSecs > 0 {
			cfg.RequestTimeoutSeconds = timeoutSecs
		}
		if verbose {
			cfg.Debug = true
			cfg.LogLevel = "debug"
		}

		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		if err := logging.Initialize(config.Dir(), cfg.Debug, cfg.LogLevel); err != nil {
			return err
		}
		logging.Boot("config loaded, api=%s timeout=%s", cfg.APIBaseURL, cfg.RequestTimeout())

		sessions = session.NewManager(config.Dir())
		if err := sessions.Load(); err != nil {
			// A broken session file should not brick the CLI.
			logger.Warn("session load failed", zap.Error(err))
			_ = sessions.Clear()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.CloseAll()
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// newClient builds an API client with the stored session attached.
func newClient() *api.Client {
	return api.NewClient(cfg.APIBaseURL,
		api.WithTimeout(cfg.RequestTimeout()),
		api.WithTokenSource(sessions),
	)
}

// requireSignIn fails fast for commands that need an authenticated session.
func requireSignIn() error {
	if !sessions.SignedIn() {
		return fmt.Errorf("not signed in, run 'artdistrict login' first")
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "override the marketplace API base URL")
	rootCmd.PersistentFlags().IntVar(&timeoutSecs, "timeout", 0, "request timeout in seconds")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.artdistrict/config.json)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(onboardCmd)
	rootCmd.AddCommand(artworkCmd)
	rootCmd.AddCommand(payoutCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cmdTimeout bounds a one-shot command, slightly above the HTTP timeout so
// the client error wins.
func cmdTimeout() time.Duration {
	return cfg.RequestTimeout() + 5*time.Second
}
