// package app is the main entrypoint into the application, responsible for
// configuring and starting the application.
package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/leg100/tabpage/internal/logging"
	"github.com/leg100/tabpage/internal/tui/top"
	"github.com/leg100/tabpage/internal/version"
)

// Start the app.
func Start(stdout, stderr io.Writer, args []string) error {
	// Parse configuration from env vars and flags
	cfg, err := parse(stderr, args)
	if err != nil {
		return err
	}

	if cfg.Version {
		fmt.Fprintln(stdout, "tabpage", version.Version)
		return nil
	}

	// Setup logging
	logger := logging.NewLogger(cfg.loggingOptions)
	slog.SetDefault(logger.Slog())

	page, err := newPage(cfg, logger)
	if err != nil {
		return err
	}

	// Blocks until user quits
	return top.Start(top.Options{
		Page:   page,
		Logger: logger,
		Debug:  cfg.Debug,
	})
}
