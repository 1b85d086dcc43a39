package smartinput

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Parse extracts task fields from one line of text.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)
	// Draft parses the text and builds the task it describes. It fails with
	// ErrMissingTitle when nothing but fields were typed.
	Draft(ctx context.Context, input ParseInput) (DraftOutput, error)
}
