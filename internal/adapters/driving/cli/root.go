// Package cli provides the pitchmatch command-line interface.
//
// Every invocation runs in one session: projects, messages and replies
// live in memory until the process exits. Use --demo to start from the
// sample projects and messages.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driving"
	"github.com/custodia-labs/pitchmatch/internal/core/services"
	"github.com/custodia-labs/pitchmatch/internal/logger"
	"github.com/custodia-labs/pitchmatch/internal/session"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose   bool
	demoMode  bool
	instant   bool
	configDir string
	noConfig  bool
	seedFlag  int64
)

// settingsService backs the settings commands and the session settings.
var settingsService driving.SettingsService

// sessionFactory builds the session for the running command.
var sessionFactory = func(ctx context.Context, settings domain.AppSettings) (*session.Session, error) {
	return session.New(ctx, settings, session.Options{})
}

// current is the session of this invocation, opened on first use.
var current *session.Session

var rootCmd = &cobra.Command{
	Use:   "pitchmatch",
	Short: "Match startups with venture investors",
	Long: `pitchmatch ranks venture investors against a startup profile, drafts
outreach messages and investor reports, and tracks replies and meetings.

State lives for the duration of one command. Use --demo to load the
sample projects and messages, or run 'pitchmatch tui' or
'pitchmatch mcp serve' for a long-lived session.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&demoMode, "demo", false, "seed the session with sample projects and messages")
	rootCmd.PersistentFlags().BoolVar(&instant, "instant", false, "skip simulated processing delays")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.pitchmatch)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false, "use default settings and keep changes in memory")
	rootCmd.PersistentFlags().Int64Var(&seedFlag, "seed", 0, "random seed for reproducible output")
}

// Execute runs the root command and releases the session afterwards.
func Execute(ctx context.Context) error {
	defer closeSession()
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version reported by 'pitchmatch version'.
func SetVersion(v string) {
	version = v
}

// SetSettingsService replaces the settings service built from --config.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// settings returns the settings service, opening the TOML config store on
// first use. With --no-config nothing is read from or written to disk.
func settings() (driving.SettingsService, error) {
	if settingsService != nil {
		return settingsService, nil
	}
	if noConfig {
		settingsService = services.NewSettingsService(memory.NewConfigStore())
		return settingsService, nil
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	logger.Debug("config: %s", store.Path())
	settingsService = services.NewSettingsService(store)
	return settingsService, nil
}

// effectiveSettings loads stored settings and applies the command-line overrides.
func effectiveSettings() (domain.AppSettings, error) {
	svc, err := settings()
	if err != nil {
		return domain.AppSettings{}, err
	}
	s, err := svc.Get()
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("load settings: %w", err)
	}
	if instant {
		s.Latency.Enabled = false
	}
	if seedFlag != 0 {
		s.Seed = seedFlag
	}
	return *s, nil
}

// openSession returns the session of this invocation.
func openSession(cmd *cobra.Command) (*session.Session, error) {
	if current != nil {
		return current, nil
	}
	s, err := effectiveSettings()
	if err != nil {
		return nil, err
	}

	ctx := commandContext(cmd)
	sess, err := sessionFactory(ctx, s)
	if err != nil {
		return nil, err
	}
	if demoMode {
		if err := sess.SeedDemo(ctx); err != nil {
			sess.Close() //nolint:errcheck // already failing
			return nil, err
		}
	}
	current = sess
	return sess, nil
}

func closeSession() {
	if current == nil {
		return
	}
	if err := current.Close(); err != nil {
		logger.Warn("close session: %v", err)
	}
	current = nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// describeError turns sentinel errors into short hints for the terminal.
func describeError(err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if demoMode {
			return err
		}
		return fmt.Errorf("%w (state is per invocation, try --demo)", err)
	default:
		return err
	}
}
