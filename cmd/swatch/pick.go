package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/swatch/internal/tui"
)

var errPickCancelled = errors.New("color selection cancelled")

// isTerminal reports whether the picker can draw. The picker reads stdin
// and draws on stderr so stdout stays free for the result.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// runPicker runs the Bubbletea program and returns its final model.
var runPicker = func(m tui.Model, in io.Reader, out io.Writer) (tea.Model, error) {
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithInput(in),
		tea.WithOutput(out),
	)
	return p.Run()
}

func newPickCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a color interactively",
		Long:  `Open the color area and slider in the terminal. The accepted color is printed on exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errors.New("pick requires an interactive terminal")
			}
			return runPick(cmd, root)
		},
	}

	return cmd
}

func runPick(cmd *cobra.Command, root *rootFlags) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, root, cmd.ErrOrStderr(), "pick")
	if err != nil {
		return err
	}

	m, err := tui.NewModel(cfg, log)
	if err != nil {
		return err
	}

	final, err := runPicker(m, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		log.Error(err, "picker failed")
		return fmt.Errorf("failed to run picker: %w", err)
	}

	picked, ok := final.(tui.Model)
	if !ok {
		return fmt.Errorf("unexpected picker model %T", final)
	}
	c, accepted := picked.Result()
	if !accepted {
		return errPickCancelled
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s\n%s\n", c.String(), c.Hex())
	return nil
}
