package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"smart-task-input/internal/smartinput"
	"smart-task-input/internal/ui"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Type task lines and watch them parse live",
	Args:    cobra.NoArgs,
	RunE:    runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.New("interactive mode needs a terminal; use `smartinput parse` for pipes")
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	model := ui.NewSmartInputModel(s.uc, func(text string) smartinput.ParseInput {
		return s.input(text)
	})
	_, err = tea.NewProgram(model).Run()
	return err
}
