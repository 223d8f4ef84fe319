package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/notebox/internal/platform"
	"github.com/aretw0/notebox/pkg/store"
)

var (
	verbose    bool
	configFile string
	saveFile   string
)

// rootCmd starts the interactive session when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notebox",
	Short: "An interactive note manager for the command line",
	Long: `Notebox keeps short notes in memory behind a "note>" prompt.
The session is saved to a JSON file on exit and restored on the next start.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		cfg, err := loadConfig()
		if err != nil {
			fatal("Error loading configuration", err)
		}

		if store.IsDevRun() {
			slog.Debug("running from a temporary build", "save_file", cfg.SaveFile)
		}

		sess, err := platform.New(ctx, cfg,
			platform.WithLogger(slog.Default()),
			platform.WithInput(cmd.InOrStdin()),
			platform.WithOutput(cmd.OutOrStdout()),
		)
		if err != nil {
			fatal("Error initializing notebox", err)
		}

		if err := sess.Run(ctx); err != nil {
			fatal("Error reading input", err)
		}
	},
}

// loadConfig merges, from lowest to highest precedence, the config file,
// .env and process environment, and command line flags.
func loadConfig() (platform.Config, error) {
	if err := platform.LoadDotEnv(".env"); err != nil {
		return platform.Config{}, err
	}

	wd, err := os.Getwd()
	if err != nil {
		return platform.Config{}, err
	}

	path := platform.ConfigPath(configFile, wd)
	cfg, err := platform.LoadConfig(path)
	if err != nil {
		return platform.Config{}, err
	}
	if path != "" {
		slog.Debug("config loaded", "path", path)
	}

	cfg = cfg.ApplyEnv(os.Getenv)
	if saveFile != "" {
		cfg.SaveFile = saveFile
	}
	return cfg, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.Flags().StringVar(&configFile, "config", "", "Config file (default: <executable>.yaml in the current or a parent directory)")
	rootCmd.Flags().StringVarP(&saveFile, "file", "f", "", "Auto-save file (default: <executable>.json)")
}
