package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"smart-task-input/internal/smartinput"
	"smart-task-input/internal/smartinput/usecase"
	"smart-task-input/pkg/log"
)

const maxLineLength = 2000

// session carries what every subcommand needs from the persistent flags.
type session struct {
	uc       smartinput.UseCase
	ref      time.Time // zero means the current time on every parse
	useColor bool
}

func newSession(cmd *cobra.Command) (session, error) {
	flags := cmd.Root().PersistentFlags()

	timezone, err := flags.GetString("timezone")
	if err != nil {
		return session{}, fmt.Errorf("failed to get timezone flag: %w", err)
	}
	notes, err := flags.GetBool("notes")
	if err != nil {
		return session{}, fmt.Errorf("failed to get notes flag: %w", err)
	}
	nowFlag, err := flags.GetString("now")
	if err != nil {
		return session{}, fmt.Errorf("failed to get now flag: %w", err)
	}
	colorFlag, err := flags.GetString("color")
	if err != nil {
		return session{}, fmt.Errorf("failed to get color flag: %w", err)
	}

	var ref time.Time
	if nowFlag != "" {
		ref, err = time.Parse(time.RFC3339, nowFlag)
		if err != nil {
			return session{}, fmt.Errorf("invalid --now value %q (expected RFC3339): %w", nowFlag, err)
		}
	}

	useColor, err := readColorMode(colorFlag, os.Stdout)
	if err != nil {
		return session{}, err
	}

	uc, err := usecase.New(log.NewNop(), usecase.Options{
		Timezone:       timezone,
		MaxInputLength: maxLineLength,
		CacheSize:      256,
		Notes:          notes,
	})
	if err != nil {
		return session{}, err
	}

	return session{uc: uc, ref: ref, useColor: useColor}, nil
}

func (s session) input(text string) smartinput.ParseInput {
	return smartinput.ParseInput{Text: text, ReferenceTime: s.ref}
}

func readColorMode(value string, out *os.File) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return isTerminal(out), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", value)
	}
}
