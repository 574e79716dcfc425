package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordwolf/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wordwolf",
		Short: "Run word wolf rooms and games",
		Long: `wordwolf manages rooms, themes and games of word wolf.

Each player gets a secret word. A few wolves get a different word from the
same theme; everyone talks, then votes on who they think the wolves are.

State is kept in the configured storage backend (sqlite by default), so
each command picks up where the previous one left off.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cfg.Settings()
			if err != nil {
				return err
			}
			logger, err := settings.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			factoryCfg, err := settings.FactoryConfig(logger)
			if err != nil {
				return err
			}
			app, err = factory.New(cmd.Context(), factoryCfg)
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.EnvFile, "env-file", cfg.EnvFile, "Dotenv file loaded before the environment")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", "", "Storage backend: memory, redis, sqlite (env: WORDWOLF_STORAGE_TYPE)")
	rootCmd.PersistentFlags().StringVar(&cfg.SQLitePath, "sqlite-path", "", "SQLite database file (env: WORDWOLF_SQLITE_PATH)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", "", "Redis URL (env: WORDWOLF_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.ThemesPath, "themes", "", "Theme file loaded on startup (env: WORDWOLF_THEMES_PATH)")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "", "Log level: debug, info, warn, error (env: WORDWOLF_LOG_LEVEL)")

	// Add subcommands
	rootCmd.AddCommand(newThemesCmd())
	rootCmd.AddCommand(newRoomCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Run executes the command tree with args, writing to stdout and stderr.
// The application opened for the command is closed before returning.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if app != nil {
		if closeErr := app.Close(); err == nil {
			err = closeErr
		}
		app = nil
	}
	return err
}

// Execute runs the root command with os.Args, cancelling on SIGINT or SIGTERM
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// output returns the formatter for cmd
func output(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout())
}
