// Package cmd implements the mcs command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, calc := range calculators() {
		c.Register(calc, "calculators")
	}

	c.Register(&scheduleCmd{}, "scenarios")
	c.Register(&runCmd{}, "scenarios")

	c.Register(&rateCmd{}, "market")

	c.Register(&topicCmd{}, "help")
	c.Register(&assistCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	bookFile   = flag.String("book", envOr(EnvBookFile, "scenarios.jsonl"), "Path to the scenario book (JSONL format)")
	configFile = flag.String("config", envOr(EnvConfigFile, "mcs.toml"), "Path to the assumptions file (TOML format)")
	currency   = flag.String("currency", os.Getenv(EnvCurrency), "Currency of the amounts, overrides the assumptions file")
	Verbose    = flag.Bool("v", envBool(EnvVerbose), "Log debug messages")
	raw        = flag.Bool("raw", envBool(EnvRaw), "Print raw markdown instead of rendering it for the terminal")
)

// stdout receives the command outputs.
var stdout io.Writer = os.Stdout

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

var (
	loggerOnce sync.Once
	logger     *zap.Logger
)

// Logger returns the application logger: warnings only, debug with -v.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if *Verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
			logger = zap.NewNop()
		}
	})
	return logger
}

// printMarkdown prints md to stdout, rendered for the terminal unless -raw is set.
func printMarkdown(md string) {
	if *raw {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		Logger().Debug("markdown renderer unavailable", zap.Error(err))
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		Logger().Debug("markdown rendering failed", zap.Error(err))
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
