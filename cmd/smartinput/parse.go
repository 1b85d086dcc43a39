package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"smart-task-input/internal/smartinput"
)

var parseCmd = &cobra.Command{
	Use:   "parse [text...]",
	Short: "Parse task lines from arguments or stdin",
	Long: `Parse joins its arguments into one task line. Without arguments it reads
stdin and parses every non-empty line.`,
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json|msgpack)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	emit, err := newEmitter(format, cmd.OutOrStdout(), s.useColor)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if len(args) > 0 {
		return parseLine(ctx, s, emit, strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := parseLine(ctx, s, emit, line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func parseLine(ctx context.Context, s session, emit emitter, line string) error {
	out, err := s.uc.Parse(ctx, s.input(line))
	if err != nil {
		return fmt.Errorf("parse %q: %w", line, err)
	}
	return emit(line, out)
}

// emitter writes one parsed line.
type emitter func(input string, out smartinput.ParseOutput) error

func newEmitter(format string, w io.Writer, useColor bool) (emitter, error) {
	switch format {
	case "pretty":
		r := newRenderer(useColor)
		first := true
		return func(input string, out smartinput.ParseOutput) error {
			if !first {
				fmt.Fprintln(w)
			}
			first = false
			return r.render(w, input, out)
		}, nil
	case "json":
		enc := json.NewEncoder(w)
		return func(input string, out smartinput.ParseOutput) error {
			return enc.Encode(newLinePayload(input, out))
		}, nil
	case "msgpack":
		enc := msgpack.NewEncoder(w)
		return func(input string, out smartinput.ParseOutput) error {
			return enc.Encode(newLinePayload(input, out))
		}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// linePayload is the machine-readable form of one parsed line. Offsets are
// bytes into Input.
type linePayload struct {
	Input         string        `json:"input" msgpack:"input"`
	Title         string        `json:"title" msgpack:"title"`
	Date          string        `json:"date,omitempty" msgpack:"date,omitempty"`
	Time          string        `json:"time,omitempty" msgpack:"time,omitempty"`
	Project       string        `json:"project,omitempty" msgpack:"project,omitempty"`
	Label         string        `json:"label,omitempty" msgpack:"label,omitempty"`
	Priority      int           `json:"priority,omitempty" msgpack:"priority,omitempty"`
	Notes         string        `json:"notes,omitempty" msgpack:"notes,omitempty"`
	DateDefaulted bool          `json:"date_defaulted" msgpack:"date_defaulted"`
	TitleFallback bool          `json:"title_fallback" msgpack:"title_fallback"`
	Timezone      string        `json:"timezone" msgpack:"timezone"`
	Spans         []spanPayload `json:"spans" msgpack:"spans"`
}

type spanPayload struct {
	Start int    `json:"start" msgpack:"start"`
	End   int    `json:"end" msgpack:"end"`
	Kind  string `json:"kind" msgpack:"kind"`
}

func newLinePayload(input string, out smartinput.ParseOutput) linePayload {
	res := out.Result
	p := linePayload{
		Input:         input,
		Title:         res.Title,
		Project:       res.Project,
		Label:         res.Label,
		Priority:      res.Priority,
		Notes:         res.Notes,
		DateDefaulted: res.DateDefaulted,
		TitleFallback: res.TitleFallback,
		Timezone:      out.Timezone,
		Spans:         make([]spanPayload, 0, len(res.Spans)),
	}
	if res.Date != nil {
		p.Date = res.Date.String()
	}
	if res.Time != nil {
		p.Time = res.Time.String()
	}
	for _, s := range res.Spans {
		p.Spans = append(p.Spans, spanPayload{Start: s.Start, End: s.End, Kind: string(s.Kind)})
	}
	return p
}
