package smartinput

import (
	"time"

	"smart-task-input/internal/model"
	pkgSmartinput "smart-task-input/pkg/smartinput"
)

// --- UseCase Inputs ---

type ParseInput struct {
	Text          string
	ReferenceTime time.Time // zero means the server clock
	Timezone      string    // IANA name, empty means the configured default
}

// --- UseCase Outputs ---

type ParseOutput struct {
	Result        pkgSmartinput.Result
	Segments      []pkgSmartinput.Segment
	Timezone      string
	ReferenceTime time.Time // in Timezone
	Cached        bool
}

type DraftOutput struct {
	Draft  model.TaskDraft
	Parsed ParseOutput
}
