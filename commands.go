package main

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// measurementFlags binds the weight/height inputs shared by calc and save
type measurementFlags struct {
	weight   string
	height   string
	markdown bool
}

func (f *measurementFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.weight, "weight", "w", "", "Weight in kilograms")
	cmd.Flags().StringVarP(&f.height, "height", "H", "", "Height in centimeters")
	cmd.Flags().BoolVar(&f.markdown, "markdown", false, "Output in markdown format")
	cmd.Flags().BoolVar(&f.markdown, "md", false, "Output in markdown format")
}

// inputs returns weight and height text from positional args or flags
func (f *measurementFlags) inputs(args []string) (string, string, error) {
	switch len(args) {
	case 2:
		return args[0], args[1], nil
	case 0:
		if f.weight == "" || f.height == "" {
			return "", "", errors.New("weight and height are required (e.g. bmicalc calc 70 175)")
		}
		return f.weight, f.height, nil
	default:
		return "", "", fmt.Errorf("expected WEIGHT_KG HEIGHT_CM, got %d argument(s)", len(args))
	}
}

func (a *app) printResult(r Result, markdown bool) {
	if markdown {
		fmt.Fprint(a.out, FormatResultMarkdown(r))
		return
	}
	fmt.Fprint(a.out, FormatResult(r))
}

// compute runs the engine on user text, logging rejected input
func (a *app) compute(weightText, heightText string) (Result, error) {
	result, err := a.engine.ComputeText(weightText, heightText)
	if err != nil {
		a.log.Debug().Err(err).Str("weight", weightText).Str("height", heightText).Msg("input rejected")
		return Result{}, err
	}
	return result, nil
}

// newCalcCmd implements the 'calc' command
func newCalcCmd(a *app) *cobra.Command {
	var flags measurementFlags

	cmd := &cobra.Command{
		Use:     "calc [WEIGHT_KG HEIGHT_CM]",
		Aliases: []string{"compute"},
		Short:   "Calculate BMI without saving it",
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weightText, heightText, err := flags.inputs(args)
			if err != nil {
				return err
			}

			result, err := a.compute(weightText, heightText)
			if err != nil {
				return err
			}

			a.printResult(result, flags.markdown)
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

// newSaveCmd implements the 'save' command
func newSaveCmd(a *app) *cobra.Command {
	var flags measurementFlags

	cmd := &cobra.Command{
		Use:   "save [WEIGHT_KG HEIGHT_CM]",
		Short: "Calculate BMI and append it to the history",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weightText, heightText, err := flags.inputs(args)
			if err != nil {
				return err
			}

			result, err := a.compute(weightText, heightText)
			if err != nil {
				return err
			}

			log, err := a.history.Append(NewEntry(result, a.opts.Now()))
			if err != nil {
				return err
			}
			a.log.Debug().Str("path", a.history.Path()).Int("entries", CountEntries(log)).Msg("entry appended")

			a.printResult(result, flags.markdown)
			fmt.Fprintf(a.out, "\n✅ Saved to %s\n\n", a.history.Path())
			fmt.Fprintln(a.out, "BMI History:")
			fmt.Fprint(a.out, FormatHistory(log))
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

// newHistoryCmd implements the 'history' command
func newHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "history",
		Aliases: []string{"reload"},
		Short:   "Show all saved results",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := a.history.ReadAll()
			if err != nil {
				return err
			}

			fmt.Fprint(a.out, FormatHistory(log))
			return nil
		},
	}
}

// newClearCmd implements the 'clear' command
func newClearCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved history (requires confirmation)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			count, readErr := a.countEntries()
			if readErr != nil {
				a.log.Warn().Err(readErr).Str("path", a.history.Path()).Msg("history unreadable, deleting without a count")
			} else if count == 0 {
				// An empty file may still exist; removing it is harmless.
				if err := a.history.Clear(); err != nil {
					return err
				}
				fmt.Fprintln(a.out, "No BMI history to clear.")
				return nil
			}

			if !yes {
				if !a.opts.IsTerminal() {
					return errors.New("refusing to delete history without confirmation; pass --yes")
				}

				if readErr != nil {
					fmt.Fprintf(a.out, "This will delete %s.\n", a.history.Path())
				} else {
					fmt.Fprintf(a.out, "This will delete %s with %d saved entries.\n", a.history.Path(), count)
				}
				confirmed, err := a.confirm("Are you sure you want to delete all BMI history? (yes/no): ")
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(a.out, "Cancelled.")
					return nil
				}
			}

			if err := a.history.Clear(); err != nil {
				return err
			}
			a.log.Debug().Str("path", a.history.Path()).Msg("history deleted")

			if readErr != nil {
				fmt.Fprintln(a.out, "✅ Deleted history")
				return nil
			}
			fmt.Fprintf(a.out, "✅ Deleted %d entries from history\n", count)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

// countEntries counts saved entries; an empty or missing log has none
func (a *app) countEntries() (int, error) {
	log, err := a.history.ReadAll()
	if err != nil {
		return 0, err
	}
	return CountEntries(log), nil
}

// newCategoriesCmd implements the 'categories' command
func newCategoriesCmd(a *app) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Show the BMI category ranges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := a.engine.Table()

			if asYAML {
				data, err := yaml.Marshal(table)
				if err != nil {
					return fmt.Errorf("error encoding categories: %w", err)
				}
				_, err = a.out.Write(data)
				return err
			}

			fmt.Fprintln(a.out, "BMI categories:")
			fmt.Fprint(a.out, FormatCategoryTable(table))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the table in the BMICALC_CATEGORIES_FILE format")

	return cmd
}

// newConfigCmd implements the 'config' command
func newConfigCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(a.out, "═══════════════════════════════════════")
			fmt.Fprintln(a.out, "  BMICALC CONFIGURATION")
			fmt.Fprintln(a.out, "═══════════════════════════════════════")
			fmt.Fprintln(a.out)
			fmt.Fprintf(a.out, "History file:     %s\n", a.history.Path())
			fmt.Fprintf(a.out, "Categories:       %s\n", a.engine.Table().Source())
			fmt.Fprintln(a.out)

			exists, size, err := a.history.Stat()
			if err != nil {
				return err
			}
			if !exists {
				fmt.Fprintln(a.out, "No history saved yet.")
				return nil
			}

			log, err := a.history.ReadAll()
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "✅ %d saved entries (%s)\n", CountEntries(log), humanize.Bytes(uint64(size)))
			return nil
		},
	}
}

// newVersionCmd implements the 'version' command
func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(a.out, "bmicalc version %s\n", version)
			return nil
		},
	}
}
