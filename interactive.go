package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// session is the interactive screen. It owns the display state: the
// weight and height last typed, reused when the user just presses enter.
type session struct {
	*app
	weight string
	height string
}

// newInteractiveCmd implements the 'interactive' command (also the default)
func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Interactive mode (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive()
		},
	}
}

func (a *app) runInteractive() error {
	s := &session{app: a}

	fmt.Fprintln(a.out, "═══════════════════════════════════════")
	fmt.Fprintln(a.out, "  BMI CALCULATOR")
	fmt.Fprintln(a.out, "═══════════════════════════════════════")
	fmt.Fprintln(a.out)

	if err := s.showHistory(); err != nil {
		fmt.Fprintf(a.out, "❌ %s\n", ErrorMessage(err))
	}

	for {
		s.menu()

		choice, err := a.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out)
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.ToLower(choice) {
		case "c", "calc", "calculate":
			err = s.calculate()
		case "s", "save":
			err = s.save()
		case "d", "delete":
			err = s.deleteAll()
		case "r", "reload", "history":
			err = s.showHistory()
		case "k", "categories":
			fmt.Fprintln(a.out, "BMI categories:")
			fmt.Fprint(a.out, FormatCategoryTable(a.engine.Table()))
		case "q", "quit", "exit":
			fmt.Fprintln(a.out, "Bye!")
			return nil
		case "":
			continue
		default:
			fmt.Fprintf(a.out, "Unknown choice: %s\n", choice)
		}

		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out)
			return nil
		}
		if err != nil {
			// Invalid input and storage failures are reported; the session goes on.
			fmt.Fprintf(a.out, "❌ %s\n", ErrorMessage(err))
		}
	}
}

func (s *session) menu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "[c] Calculate BMI  [s] Save BMI  [d] Delete all data")
	fmt.Fprintln(s.out, "[r] Reload history  [k] Categories  [q] Quit")
	fmt.Fprint(s.out, "> ")
}

func (s *session) calculate() error {
	if err := s.promptMeasurements(); err != nil {
		return err
	}

	result, err := s.compute(s.weight, s.height)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, FormatResult(result))
	return nil
}

func (s *session) save() error {
	if s.weight == "" || s.height == "" {
		if err := s.promptMeasurements(); err != nil {
			return err
		}
	}

	result, err := s.compute(s.weight, s.height)
	if err != nil {
		return err
	}

	log, err := s.history.Append(NewEntry(result, s.opts.Now()))
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "✅ Saved BMI %.2f (%s)\n\n", result.BMI, result.Category)
	fmt.Fprintln(s.out, "BMI History:")
	fmt.Fprint(s.out, FormatHistory(log))
	return nil
}

func (s *session) deleteAll() error {
	question := "Delete all saved history? (yes/no): "

	count, readErr := s.countEntries()
	switch {
	case readErr != nil:
		s.log.Warn().Err(readErr).Str("path", s.history.Path()).Msg("history unreadable, deleting without a count")
	case count == 0:
		fmt.Fprintln(s.out, "No BMI history to clear.")
		return s.history.Clear()
	default:
		question = fmt.Sprintf("Delete all %d saved entries? (yes/no): ", count)
	}

	confirmed, err := s.confirm(question)
	if err != nil {
		return err
	}
	if !confirmed {
		fmt.Fprintln(s.out, "Cancelled.")
		return nil
	}

	if err := s.history.Clear(); err != nil {
		return err
	}

	fmt.Fprintln(s.out, "✅ All BMI history deleted")
	return nil
}

func (s *session) showHistory() error {
	log, err := s.history.ReadAll()
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "BMI History:")
	fmt.Fprint(s.out, FormatHistory(log))
	return nil
}

func (s *session) promptMeasurements() error {
	weight, err := s.prompt("Enter your weight (kg)", s.weight)
	if err != nil {
		return err
	}

	height, err := s.prompt("Enter your height (cm)", s.height)
	if err != nil {
		return err
	}

	s.weight, s.height = weight, height
	return nil
}

// prompt reads one value; an empty answer keeps current
func (s *session) prompt(label, current string) (string, error) {
	if current != "" {
		fmt.Fprintf(s.out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(s.out, "%s: ", label)
	}

	input, err := s.readLine()
	if err != nil {
		return "", err
	}
	if input == "" {
		return current, nil
	}
	return input, nil
}

// readLine reads one trimmed line from stdin
func (a *app) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm prompts for a yes/no answer; end of input counts as no
func (a *app) confirm(prompt string) (bool, error) {
	fmt.Fprint(a.out, prompt)

	input, err := a.readLine()
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(a.out)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	input = strings.ToLower(input)

	return input == "yes" || input == "y", nil
}
