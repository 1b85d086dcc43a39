package usecase

import (
	"fmt"
	"time"

	"smart-task-input/internal/smartinput"
	pkgSmartinput "smart-task-input/pkg/smartinput"
)

// resultKey identifies a parse. Relative phrases only depend on the
// reference date, so any instant within one day shares an entry.
type resultKey struct {
	timezone string
	day      pkgSmartinput.Date
	text     string
}

// location resolves an IANA name through the location cache.
func (uc *implUseCase) location(name string) (*time.Location, error) {
	if loc, ok := uc.locations.Get(name); ok {
		return loc, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", smartinput.ErrInvalidTimezone, name)
	}
	uc.locations.Add(name, loc)
	return loc, nil
}

// parse runs the parser, going through the result cache when it is enabled.
// Callers always receive a private copy.
func (uc *implUseCase) parse(text string, ref time.Time, timezone string) (pkgSmartinput.Result, bool) {
	if uc.results == nil {
		return uc.parser.Parse(text, ref, ref.Location()), false
	}

	key := resultKey{timezone: timezone, day: pkgSmartinput.DateOf(ref), text: text}
	if res, ok := uc.results.Get(key); ok {
		return res.Clone(), true
	}

	res := uc.parser.Parse(text, ref, ref.Location())
	uc.results.Add(key, res.Clone())
	return res, false
}
