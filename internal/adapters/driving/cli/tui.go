package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driving/tui"
	"github.com/custodia-labs/pitchmatch/internal/session"
)

// errNoTerminal is returned when the TUI is started without a terminal.
var errNoTerminal = errors.New("the TUI needs an interactive terminal; use the match and message commands instead")

var tuiProject string

// stdoutIsTerminal reports whether standard output is a terminal.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for pitchmatch.

Describe the investor you are looking for, browse the ranked matches and
preview, refine and send a generated message. The session lasts until
you quit, so combine with --demo to start from the sample projects.

Controls:
  tab      - Switch project
  ↑/k, ↓/j - Navigate matches
  Enter    - Match / Draft message
  r, s     - Refine / Send the draft
  Esc      - Back
  q        - Quit (from the menu)`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVarP(&tuiProject, "project", "p", "", "project to match first")
	rootCmd.AddCommand(tuiCmd)
}

// tuiPorts exposes a session to the TUI.
func tuiPorts(sess *session.Session) *tui.Ports {
	return &tui.Ports{
		Match:       sess.Matches,
		Project:     sess.Projects,
		Message:     sess.Messages,
		Report:      sess.Reports,
		Outreach:    sess.Outreach,
		FounderName: sess.FounderName(),
		ProjectID:   tuiProject,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if !stdoutIsTerminal() {
		return errNoTerminal
	}

	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tuiPorts(sess))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := app.WithContext(commandContext(cmd)).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
