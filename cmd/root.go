package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/soup/cineshell/config"
	"github.com/soup/cineshell/omdb"
	"github.com/soup/cineshell/session"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	catalog    *omdb.Client
	sessions   *session.Manager
	appVersion = "dev"
	appBuilt   = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cineshell",
	Short: "A terminal movie browser backed by the OMDb catalog",
	Long: `cineshell is a CLI for browsing movies from the OMDb catalog.
It keeps a local account store so browsing commands run under a
signed-in session, and offers search, popular aggregation, and
per-title detail views.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build information injected by the linker
func SetVersion(version, built string) {
	appVersion = version
	appBuilt = built
	rootCmd.Version = fmt.Sprintf("%s (built %s)", version, built)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp initializes the configuration, logger and services
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create OMDb client
	catalog, err = omdb.NewClient(cfg.OMDb.URL, cfg.OMDb.APIKey, logger,
		omdb.WithRateLimit(cfg.OMDb.RequestsPerSecond))
	if err != nil {
		return fmt.Errorf("failed to create OMDb client: %w", err)
	}

	// Create session manager over the local state directory
	store := session.NewStore(afero.NewOsFs(), cfg.Storage.Path)
	sessions = session.NewManager(store, logger)

	// Pick up a persisted session from a previous run, if any
	if _, ok, err := sessions.Restore(); err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	} else if ok {
		logger.Debug().Msg("Restored previous session")
	}

	return nil
}

// requireSession guards browsing commands behind an active session
func requireSession() (session.Session, error) {
	sess, ok := sessions.Current()
	if !ok {
		return session.Session{}, fmt.Errorf("not logged in: run 'cineshell login <email> <password>' first")
	}
	return sess, nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when stderr is a terminal
	useColor := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !useColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
