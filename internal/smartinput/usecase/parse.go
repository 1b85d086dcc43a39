package usecase

import (
	"context"
	"unicode/utf8"

	"smart-task-input/internal/smartinput"
	pkgSmartinput "smart-task-input/pkg/smartinput"
)

// Parse extracts the task fields of input.Text. Empty text is valid and
// yields an empty result, so callers can parse on every keystroke.
func (uc *implUseCase) Parse(ctx context.Context, input smartinput.ParseInput) (smartinput.ParseOutput, error) {
	if n := utf8.RuneCountInString(input.Text); n > uc.maxInputLength {
		uc.l.Warnf(ctx, "smartinput.usecase.Parse: input has %d runes, limit is %d", n, uc.maxInputLength)
		return smartinput.ParseOutput{}, smartinput.ErrInputTooLong
	}

	timezone := input.Timezone
	if timezone == "" {
		timezone = uc.timezone
	}
	loc, err := uc.location(timezone)
	if err != nil {
		uc.l.Warnf(ctx, "smartinput.usecase.Parse: %v", err)
		return smartinput.ParseOutput{}, err
	}

	ref := input.ReferenceTime
	if ref.IsZero() {
		ref = uc.now()
	}
	ref = ref.In(loc)

	res, cached := uc.parse(input.Text, ref, timezone)
	uc.l.Debugf(ctx, "smartinput.usecase.Parse: tz=%s spans=%d cached=%t", timezone, len(res.Spans), cached)

	return smartinput.ParseOutput{
		Result:        res,
		Segments:      pkgSmartinput.Highlight(input.Text, res.Spans),
		Timezone:      timezone,
		ReferenceTime: ref,
		Cached:        cached,
	}, nil
}
