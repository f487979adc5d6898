// Package main is the entry point for maskfield.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/dshills/maskfield/internal/app"
	"github.com/dshills/maskfield/internal/config"
	"github.com/dshills/maskfield/internal/metrics"
	"github.com/dshills/maskfield/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type options struct {
	configPath  string
	mask        string
	field       string
	valuesPath  string
	logLevel    string
	logEnv      string
	logFile     string
	metricsAddr string
	batch       bool
	watch       bool
	args        []string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	form, err := loadForm(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	interactive := !opts.batch &&
		term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd()))

	logger, err := newLogger(opts, interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer app.SafeSync(logger)

	if !interactive {
		spec, err := batchField(form, opts.field)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		if err := runBatch(spec, opts.args, os.Stdin, os.Stdout, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runInteractive(ctx, form, opts, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func runInteractive(ctx context.Context, form *config.Form, opts options, logger *zap.Logger) error {
	tty, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}

	// The screen owns the terminal until Run returns.
	var out bytes.Buffer
	appOpts := app.Options{
		Form:         form,
		Backend:      tty,
		ConfigPath:   opts.configPath,
		Watch:        opts.watch,
		Output:       &out,
		QuitOnSubmit: true,
		MetricsAddr:  opts.metricsAddr,
		Logger:       logger,
	}
	if opts.metricsAddr != "" {
		appOpts.Registry = metrics.NewRegistry()
	}

	a, err := app.New(appOpts)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	if opts.valuesPath != "" {
		data, err := os.ReadFile(opts.valuesPath)
		if err != nil {
			return err
		}
		n, err := a.ImportJSON(data)
		if err != nil {
			return fmt.Errorf("%s: %w", opts.valuesPath, err)
		}
		logger.Info("values imported", zap.String("path", opts.valuesPath), zap.Int("fields", n))
	}

	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	_, err = io.Copy(os.Stdout, &out)
	return err
}

func loadForm(opts options) (*config.Form, error) {
	switch {
	case opts.configPath != "":
		return config.Load(opts.configPath)
	case opts.mask != "":
		src := fmt.Sprintf("[[field]]\nname = %q\nmask = %q\n", defaultFieldName, opts.mask)
		return config.Parse("-mask", []byte(src))
	default:
		return nil, errors.New("one of -config or -mask is required")
	}
}

func newLogger(opts options, interactive bool) (*zap.Logger, error) {
	// Without a log file an interactive session logs nowhere: stderr shares
	// the screen.
	if interactive && opts.logFile == "" {
		return zap.NewNop(), nil
	}
	return app.NewLogger(app.LogOptions{
		Env:   opts.logEnv,
		Level: opts.logLevel,
		Path:  opts.logFile,
	})
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", "", "Path to a form definition (TOML)")
	flag.StringVar(&opts.configPath, "c", "", "Path to a form definition (shorthand)")
	flag.StringVar(&opts.mask, "mask", "", "Single field mask, used when no config is given")
	flag.StringVar(&opts.field, "field", "", "Field used by batch mode (default: first field)")
	flag.StringVar(&opts.valuesPath, "values", "", "JSON file with initial field values")
	flag.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); default depends on -log-env")
	flag.StringVar(&opts.logEnv, "log-env", app.EnvProduction, "Log format (development, debug, production)")
	flag.StringVar(&opts.logFile, "log-file", "", "Log file (interactive mode logs nothing without it)")
	flag.StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address")
	flag.BoolVar(&opts.batch, "batch", false, "Format arguments or stdin lines instead of opening the form")
	flag.BoolVar(&opts.watch, "watch", false, "Reload the config file when it changes")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "maskfield - masked input fields for the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: maskfield [options] [values...]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  maskfield -c form.toml -watch            Edit a form, reload on save\n")
		fmt.Fprintf(os.Stderr, "  maskfield -mask '(###) ###-####'         Edit a single field\n")
		fmt.Fprintf(os.Stderr, "  maskfield -batch -mask '###-##-####' 123456789\n")
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("maskfield %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		os.Exit(0)
	}

	opts.args = flag.Args()
	return opts
}
