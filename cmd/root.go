// Package cmd contains all CLI commands for newsctl
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcnews-project/newsctl/internal/api"
	"github.com/mcnews-project/newsctl/internal/config"
	"github.com/mcnews-project/newsctl/internal/output"
	"github.com/mcnews-project/newsctl/internal/repo"
	"github.com/mcnews-project/newsctl/internal/session"
)

var (
	cfgFile   string
	verbose   bool
	quiet     bool
	colorFlag string
	colorMode output.ColorMode
	cfg       *config.Config
	logger    *slog.Logger
	store     *session.Store
	client    *api.Client
	version   = "dev"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "newsctl",
	Short: "Client for the mcnews publishing service",
	Long: `newsctl is a command-line client for the mcnews article publishing service.

It manages an authenticated session and exposes the service's articles,
tags, authors and profile operations.

Example usage:
  newsctl login                       # Start a session
  newsctl articles list               # Browse published articles
  newsctl articles create --title ... # Submit a new article
  newsctl profile show                # Inspect your profile`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
}

func init() {
	// Assigned here rather than in the composite literal to avoid an
	// initialization cycle: initConfig refers back to rootCmd.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .newsctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress informational output")
	rootCmd.PersistentFlags().StringVar(&colorFlag, "color", "auto", "color output: auto, always, never")
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (overrides config)")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("api.base_url", rootCmd.PersistentFlags().Lookup("api-url"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	var err error

	colorMode, err = output.ParseColorMode(colorFlag)
	if err != nil {
		return err
	}

	// Setup logger
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// Load configuration
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Update logger based on config
	if cfg.Logging.Level == "debug" || verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}

	// Flag override wins over the config file
	if flagURL, ferr := rootCmd.PersistentFlags().GetString("api-url"); ferr == nil && flagURL != "" {
		cfg.API.BaseURL = flagURL
	}

	// Session store and gateway: the store is the single owner of the
	// credentials, the client consults it on every request.
	store = session.NewStore(cfg.Session.File, logger)
	client = api.NewClient(cfg.API.BaseURL, store, logger)
	client.SetTimeout(cfg.API.Timeout)

	logger.Debug("configuration loaded",
		"base_url", cfg.API.BaseURL,
		"session_file", cfg.Session.File,
		"logged_in", store.Active(),
	)

	return nil
}

// newPrinter builds a printer honoring the --color and --quiet flags on
// top of the configured color setting.
func newPrinter() *output.Printer {
	return output.NewPrinterWithOptions(output.PrinterOptions{
		ColorMode:    colorMode,
		ConfigColors: cfg.Output.Colors,
		Quiet:        quiet,
	})
}

// articleRepo returns the domain-typed article facade.
func articleRepo() *repo.ArticleRepository {
	return repo.NewArticleRepository(client)
}

// authRepo returns the domain-typed auth/profile facade.
func authRepo() *repo.AuthRepository {
	return repo.NewAuthRepository(client)
}
