package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"smart-task-input/internal/model"
	"smart-task-input/internal/smartinput"
	"smart-task-input/pkg/datemath"
)

// Draft parses input.Text and turns the result into a task draft with a
// resolved due instant.
func (uc *implUseCase) Draft(ctx context.Context, input smartinput.ParseInput) (smartinput.DraftOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return smartinput.DraftOutput{}, smartinput.ErrEmptyInput
	}

	parsed, err := uc.Parse(ctx, input)
	if err != nil {
		return smartinput.DraftOutput{}, err
	}

	res := parsed.Result
	if res.TitleFallback || res.Title == "" {
		uc.l.Infof(ctx, "smartinput.usecase.Draft: rejected %q, no title left after extraction", input.Text)
		return smartinput.DraftOutput{Parsed: parsed}, smartinput.ErrMissingTitle
	}

	draft := model.TaskDraft{
		ID:       uuid.NewString(),
		Title:    res.Title,
		Project:  res.Project,
		Label:    res.Label,
		Priority: res.Priority,
		Notes:    res.Notes,
		Timezone: parsed.Timezone,
		Created:  parsed.ReferenceTime,
	}

	if res.Date != nil {
		loc := parsed.ReferenceTime.Location()
		dates := datemath.NewParserIn(loc)
		day := res.Date.In(loc)

		due := dates.AllDay(day)
		if res.Time != nil {
			due = dates.At(day, res.Time.Hour, res.Time.Minute)
		}
		draft.Due = &due.AbsoluteTime
		draft.AllDay = due.IsAllDay
	}

	uc.l.Infof(ctx, "smartinput.usecase.Draft: built draft %s title=%q due=%v", draft.ID, draft.Title, draft.Due)
	return smartinput.DraftOutput{Draft: draft, Parsed: parsed}, nil
}
