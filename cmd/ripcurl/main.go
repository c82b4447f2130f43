// Package main is the entry point for the ripcurl browser.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/ripcurl/internal/app"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(signals)

	go func() {
		<-signals
		application.Shutdown()
	}()

	if err := application.Run(); err != nil {
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() app.Options {
	var opts app.Options
	var showVersion bool

	flag.StringVar(&opts.ConfigDir, "config", "", "Configuration directory")
	flag.StringVar(&opts.ConfigDir, "c", "", "Configuration directory (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogFile, "log-file", "", "Log file (default: ripcurl.log in the configuration directory)")
	flag.BoolVar(&opts.Private, "private", false, "Start with history recording disabled")
	flag.BoolVar(&opts.Private, "p", false, "Start with history recording disabled (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ripcurl - a keyboard-driven browser\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ripcurl [options] [uri]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ripcurl                     Open the home page\n")
		fmt.Fprintf(os.Stderr, "  ripcurl example.com         Open a page\n")
		fmt.Fprintf(os.Stderr, "  ripcurl -p                  Browse without recording history\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("ripcurl %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	if _, err := app.ParseLogLevel(opts.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	switch flag.NArg() {
	case 0:
	case 1:
		opts.URI = flag.Arg(0)
	default:
		flag.Usage()
		os.Exit(2)
	}

	return opts
}
