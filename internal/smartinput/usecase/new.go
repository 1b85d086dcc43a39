package usecase

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	pkgLog "smart-task-input/pkg/log"
	pkgSmartinput "smart-task-input/pkg/smartinput"
)

const (
	defaultTimezone       = "UTC"
	defaultMaxInputLength = 500
	locationCacheSize     = 64
)

// Options configures the smart input UseCase.
type Options struct {
	Timezone       string // IANA name used when the input carries none
	MaxInputLength int    // in runes
	CacheSize      int    // result cache entries, 0 disables the cache
	Notes          bool   // extract "// ..." notes
	Now            func() time.Time
}

type implUseCase struct {
	l              pkgLog.Logger
	parser         *pkgSmartinput.Parser
	timezone       string
	maxInputLength int
	locations      *lru.Cache[string, *time.Location]
	results        *lru.Cache[resultKey, pkgSmartinput.Result]
	now            func() time.Time
}

// New creates a new smart input UseCase instance.
func New(l pkgLog.Logger, opts Options) (*implUseCase, error) {
	if opts.Timezone == "" {
		opts.Timezone = defaultTimezone
	}
	if opts.MaxInputLength <= 0 {
		opts.MaxInputLength = defaultMaxInputLength
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	locations, err := lru.New[string, *time.Location](locationCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create location cache: %w", err)
	}

	var parserOpts []pkgSmartinput.Option
	if opts.Notes {
		parserOpts = append(parserOpts, pkgSmartinput.WithNotes())
	}

	uc := &implUseCase{
		l:              l,
		parser:         pkgSmartinput.New(parserOpts...),
		timezone:       opts.Timezone,
		maxInputLength: opts.MaxInputLength,
		locations:      locations,
		now:            opts.Now,
	}

	if opts.CacheSize > 0 {
		uc.results, err = lru.New[resultKey, pkgSmartinput.Result](opts.CacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create result cache: %w", err)
		}
	}

	// The default timezone must resolve.
	if _, err := uc.location(opts.Timezone); err != nil {
		return nil, err
	}

	return uc, nil
}
