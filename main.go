package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const version = "0.1.0"

// Options holds the dependencies a command run uses (allows injecting in tests)
type Options struct {
	Config     *Config
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	Now        func() time.Time
	IsTerminal func() bool
}

func (o Options) withDefaults() Options {
	if o.Config == nil {
		o.Config = DefaultConfig()
	}
	if o.Stdin == nil {
		o.Stdin = os.Stdin
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.IsTerminal == nil {
		o.IsTerminal = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	}
	return o
}

// app carries what every command needs once the config is loaded
type app struct {
	opts    Options
	in      *bufio.Reader
	out     io.Writer
	log     zerolog.Logger
	engine  *Engine
	history *HistoryStore
}

func (a *app) setup(verbose bool) error {
	a.log = newLogger(a.opts.Stderr, verbose)

	table, err := LoadCategoryTable(a.opts.Config.CategoriesPath)
	if err != nil {
		return err
	}
	a.log.Debug().
		Str("source", table.Source()).
		Int("categories", len(table.Categories())).
		Msg("category table loaded")

	a.engine = NewEngine(table)
	a.history = NewHistoryStore(a.opts.Config.HistoryPath)
	a.log.Debug().Str("path", a.history.Path()).Msg("history store ready")

	return nil
}

func newRootCmd(opts Options) *cobra.Command {
	opts = opts.withDefaults()
	a := &app{
		opts: opts,
		in:   bufio.NewReader(opts.Stdin),
		out:  opts.Stdout,
	}

	var verbose bool
	root := &cobra.Command{
		Use:   "bmicalc",
		Short: "bmicalc - BMI calculator with a saved history",
		Long: `bmicalc - BMI calculator with a saved history

Computes Body Mass Index from weight (kg) and height (cm), shows the
category and a recommendation, and keeps saved results in a plain-text log.

Run without a command for the interactive mode.

ENVIRONMENT:
    BMICALC_HISTORY_FILE      History log path (default: ./bmi_history.txt)
    BMICALC_CATEGORIES_FILE   YAML file overriding the category table

EXAMPLES:
    bmicalc                         # Interactive mode
    bmicalc calc 70 175             # Compute only
    bmicalc calc -w 70 -H 175 --md  # Markdown output
    bmicalc save 70 175             # Compute and append to history
    bmicalc history                 # Show saved results
    bmicalc clear                   # Delete all history (asks first)
    bmicalc categories --yaml       # Print the table as an override file`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	root.SetIn(opts.Stdin)
	root.SetOut(opts.Stdout)
	root.SetErr(opts.Stderr)

	root.AddCommand(
		newInteractiveCmd(a),
		newCalcCmd(a),
		newSaveCmd(a),
		newHistoryCmd(a),
		newClearCmd(a),
		newCategoriesCmd(a),
		newConfigCmd(a),
		newVersionCmd(a),
	)

	return root
}

func main() {
	if err := newRootCmd(Options{}).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", ErrorMessage(err))
		os.Exit(1)
	}
}
