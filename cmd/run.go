package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/knownwords/internal/app"
	"github.com/abhisek/knownwords/internal/config"
	"github.com/abhisek/knownwords/internal/fetch"
	"github.com/abhisek/knownwords/internal/keys"
	"github.com/abhisek/knownwords/internal/logging"
	"github.com/abhisek/knownwords/internal/screen"
	sessionscreen "github.com/abhisek/knownwords/internal/screens/session"
	sess "github.com/abhisek/knownwords/internal/session"
	"github.com/abhisek/knownwords/internal/store"
	"github.com/abhisek/knownwords/internal/wordlist"
)

// runApp loads configuration, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.Storage.SaveFile = out
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	fetcher := newFetcher(cfg, logger)
	eventRepo := st.EventRepo()
	km := keys.DefaultKeyMap
	sessCfg := sess.Config{
		Levels:        cfg.Session.Levels,
		PreviewLimit:  cfg.Session.PreviewLimit,
		DecisionDelay: cfg.Session.DecisionDelay,
		SettleDelay:   cfg.Session.SettleDelay,
		Keys:          km,
	}

	logger.Info("starting",
		zap.String("version", version),
		zap.String("api", cfg.API.BaseURL),
		zap.String("save_file", cfg.Storage.SaveFile),
		zap.String("db", dbPath),
	)

	return app.Run(app.Options{
		Keys: km,
		NewSession: func() (screen.Screen, error) {
			return sessionscreen.New(sessionscreen.Options{
				Fetcher:        fetcher,
				Events:         eventRepo,
				SaveFile:       cfg.Storage.SaveFile,
				Session:        sessCfg,
				RedrawInterval: cfg.Session.RedrawInterval,
				Logger:         logger,
			})
		},
		EventRepo: eventRepo,
		Logger:    logger,
	})
}

// newLogger writes to the configured log file, or to the XDG state dir.
// A log file that cannot be created disables logging.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	file := cfg.Log.File
	if file == "" {
		p, err := config.DefaultLogPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Logging disabled:", err)
			return zap.NewNop(), nil
		}
		file = p
	}
	return logging.New(logging.Options{Level: cfg.Log.Level, File: file})
}

// newFetcher builds the page source chain: HTTP client, retries, request
// log.
func newFetcher(cfg *config.Config, logger *zap.Logger) *fetch.Fetcher {
	retry := wordlist.DefaultRetryConfig()
	retry.MaxAttempts = cfg.API.Retry.MaxAttempts
	retry.InitialWait = cfg.API.Retry.InitialWait
	retry.MaxWait = cfg.API.Retry.MaxWait

	var source wordlist.Source = wordlist.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	source = wordlist.WithRetry(source, retry)
	source = wordlist.WithLogging(source, logger)

	return fetch.New(source, fetch.Config{
		Language:           cfg.API.Language,
		MaxConcurrentPages: cfg.API.MaxConcurrentPages,
	}, logger)
}
