package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/leg100/tabpage/internal/logging"
	"github.com/leg100/tabpage/internal/tui/tabbar"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

type config struct {
	Position   tabbar.Position
	Hidden     bool
	FirstTab   string
	Locked     []string
	DisablePop bool
	Debug      bool
	Version    bool

	loggingOptions logging.Options
}

var positions = []string{"top", "bottom", "unspecified"}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func parse(stderr io.Writer, args []string) (config, error) {
	var cfg config

	home, err := os.UserHomeDir()
	if err != nil {
		return config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".tabpage.yaml")

	var position string

	fs := ff.NewFlagSet("tabpage")
	fs.StringEnumVar(&position, 'p', "position", "Position of the tab bar.", positions...)
	fs.BoolVar(&cfg.Hidden, 0, "hidden", "Start with the tab bar hidden.")
	fs.StringVar(&cfg.FirstTab, 'f', "first-tab", "", "Title of the tab to select on startup.")
	fs.StringListVar(&cfg.Locked, 0, "lock", "Title of a tab that cannot be selected. Can set more than once.")
	fs.BoolVar(&cfg.DisablePop, 0, "disable-pop", "Disable swiping back from pages.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.loggingOptions.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("TABPAGE"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return config{}, err
	}

	// Convert flag parsed primitive types to defined types.
	cfg.Position, err = tabbar.ParsePosition(position)
	if err != nil {
		return config{}, err
	}
	return cfg, nil
}
