// Package main is the entry point for the ghostedit terminal editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ghostedit/internal/app"
	"github.com/dshills/ghostedit/internal/config"
	"github.com/dshills/ghostedit/internal/engine/stats"
	"github.com/dshills/ghostedit/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// cliOptions holds flags that are not application options.
type cliOptions struct {
	analyze string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, cli := parseFlags()

	if cli.analyze != "" {
		if err := analyzeFile(os.Stdout, cli.analyze, opts.ConfigPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if args := flag.Args(); len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		opts.Content = string(data)
	}

	// Create application
	application, err := app.New(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Ensure cleanup on all exit paths
	defer application.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}
	if err := application.SetScreen(screen); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to set screen: %v\n", err)
		return 1
	}

	// Handle signals for graceful shutdown
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-signals
		application.Shutdown()
	}()

	// Run the application
	if err := application.Run(); err != nil {
		// Check if it's a normal quit using errors.Is for wrapped errors
		if errors.Is(err, app.ErrQuit) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// analyzeFile prints statistics for the file at path, using the reading
// speed from the configuration.
func analyzeFile(w io.Writer, path, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	st := stats.Analyze(string(data), cfg.Engine.WordsPerMinute)
	fmt.Fprintf(w, "words:        %d\n", st.Words)
	fmt.Fprintf(w, "characters:   %d\n", st.Chars)
	fmt.Fprintf(w, "graphemes:    %d\n", st.Graphemes)
	fmt.Fprintf(w, "lines:        %d\n", st.Lines)
	fmt.Fprintf(w, "reading time: %.1fm\n", st.ReadingTime)
	return nil
}

func parseFlags() (app.Options, cliOptions) {
	var opts app.Options
	var cli cliOptions
	var showVersion bool
	var showHelp bool
	var noWatch bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file (.toml, .yaml)")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&opts.LogFile, "log-file", "", "Write logs to this file")
	flag.StringVar(&cli.analyze, "analyze", "", "Print statistics for a file and exit")
	flag.BoolVar(&noWatch, "no-watch", false, "Do not reload the configuration file on change")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ghostedit - modal text editor\n\n")
		fmt.Fprintf(os.Stderr, "Usage: ghostedit [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nKeys:\n")
		fmt.Fprintf(os.Stderr, "  Esc / i          Normal / Insert mode\n")
		fmt.Fprintf(os.Stderr, "  h j k l  x       Move, delete character (Normal)\n")
		fmt.Fprintf(os.Stderr, "  :name Tab        Insert emoji (Insert)\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+Z           Undo\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+K           Toggle statistics\n")
		fmt.Fprintf(os.Stderr, "  Ctrl+Q           Quit\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ghostedit                      Open with empty buffer\n")
		fmt.Fprintf(os.Stderr, "  ghostedit notes.txt            Start from a file's text\n")
		fmt.Fprintf(os.Stderr, "  ghostedit -analyze notes.txt   Print statistics\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("ghostedit %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	// Validate log level
	if opts.LogLevel != "" && !logging.ValidLevel(opts.LogLevel) {
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q (must be debug, info, warn, or error)\n", opts.LogLevel)
		os.Exit(1)
	}

	opts.Watch = !noWatch
	return opts, cli
}
