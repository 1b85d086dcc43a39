package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"smart-task-input/internal/smartinput"
	"smart-task-input/internal/smartinput/usecase"
)

func TestNew_InvalidDefaultTimezone(t *testing.T) {
	_, err := usecase.New(&mockLogger{}, usecase.Options{Timezone: "Mars/Olympus"})
	if !errors.Is(err, smartinput.ErrInvalidTimezone) {
		t.Fatalf("expected ErrInvalidTimezone, got %v", err)
	}
}

func TestParse(t *testing.T) {
	ctx := context.Background()

	t.Run("Full Line", func(t *testing.T) {
		uc := newUseCase(t, usecase.Options{})
		out, err := uc.Parse(ctx, smartinput.ParseInput{Text: "Fix bug tomorrow 3pm #backend @urgent p1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		res := out.Result
		if res.Title != "Fix bug" {
			t.Errorf("Title = %q, want %q", res.Title, "Fix bug")
		}
		if res.Date == nil || res.Date.String() != "2025-01-16" {
			t.Errorf("Date = %v, want 2025-01-16", res.Date)
		}
		if res.Time == nil || res.Time.String() != "15:00" {
			t.Errorf("Time = %v, want 15:00", res.Time)
		}
		if res.Project != "backend" || res.Label != "urgent" || res.Priority != 1 {
			t.Errorf("fields = %q %q %d", res.Project, res.Label, res.Priority)
		}
		if out.Timezone != "UTC" {
			t.Errorf("Timezone = %q, want UTC", out.Timezone)
		}
		if !out.ReferenceTime.Equal(fixedNow) {
			t.Errorf("ReferenceTime = %v, want %v", out.ReferenceTime, fixedNow)
		}
		if len(out.Segments) == 0 {
			t.Errorf("expected highlight segments")
		}
	})

	t.Run("Empty Text Is Valid", func(t *testing.T) {
		uc := newUseCase(t, usecase.Options{})
		out, err := uc.Parse(ctx, smartinput.ParseInput{Text: ""})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Result.Title != "" || !out.Result.Empty() || out.Segments != nil {
			t.Errorf("expected empty output, got %+v", out)
		}
	})

	t.Run("Input Too Long", func(t *testing.T) {
		uc := newUseCase(t, usecase.Options{MaxInputLength: 5})
		_, err := uc.Parse(ctx, smartinput.ParseInput{Text: "abcdef"})
		if !errors.Is(err, smartinput.ErrInputTooLong) {
			t.Errorf("expected ErrInputTooLong, got %v", err)
		}
	})

	t.Run("Length Counts Runes", func(t *testing.T) {
		uc := newUseCase(t, usecase.Options{MaxInputLength: 5})
		if _, err := uc.Parse(ctx, smartinput.ParseInput{Text: "héllö"}); err != nil {
			t.Errorf("5 runes should fit a limit of 5, got %v", err)
		}
	})

	t.Run("Invalid Timezone", func(t *testing.T) {
		uc := newUseCase(t, usecase.Options{})
		_, err := uc.Parse(ctx, smartinput.ParseInput{Text: "today", Timezone: "Nowhere/City"})
		if !errors.Is(err, smartinput.ErrInvalidTimezone) {
			t.Errorf("expected ErrInvalidTimezone, got %v", err)
		}
		if err != nil && !strings.Contains(err.Error(), "Nowhere/City") {
			t.Errorf("error should name the timezone, got %v", err)
		}
	})

	t.Run("Timezone Changes Today", func(t *testing.T) {
		uc := newUseCase(t, usecase.Options{})
		// 20:00 UTC on Jan 15 is already Jan 16 in Tokyo.
		ref := time.Date(2025, 1, 15, 20, 0, 0, 0, time.UTC)

		utc, err := uc.Parse(ctx, smartinput.ParseInput{Text: "Ship today", ReferenceTime: ref})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tokyo, err := uc.Parse(ctx, smartinput.ParseInput{Text: "Ship today", ReferenceTime: ref, Timezone: "Asia/Tokyo"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if utc.Result.Date.String() != "2025-01-15" {
			t.Errorf("UTC date = %v, want 2025-01-15", utc.Result.Date)
		}
		if tokyo.Result.Date.String() != "2025-01-16" {
			t.Errorf("Tokyo date = %v, want 2025-01-16", tokyo.Result.Date)
		}
		if tokyo.ReferenceTime.Location().String() != "Asia/Tokyo" {
			t.Errorf("ReferenceTime location = %v", tokyo.ReferenceTime.Location())
		}
	})

	t.Run("Default Timezone From Options", func(t *testing.T) {
		uc := newUseCase(t, usecase.Options{Timezone: "America/New_York"})
		out, err := uc.Parse(ctx, smartinput.ParseInput{Text: "x"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Timezone != "America/New_York" {
			t.Errorf("Timezone = %q", out.Timezone)
		}
	})

	t.Run("Notes Option", func(t *testing.T) {
		off := newUseCase(t, usecase.Options{})
		on := newUseCase(t, usecase.Options{Notes: true})
		text := "Email Sam // ask about invoice"

		outOff, _ := off.Parse(ctx, smartinput.ParseInput{Text: text})
		if outOff.Result.Notes != "" || outOff.Result.Title != text {
			t.Errorf("notes disabled: got %+v", outOff.Result)
		}

		outOn, _ := on.Parse(ctx, smartinput.ParseInput{Text: text})
		if outOn.Result.Notes != "ask about invoice" || outOn.Result.Title != "Email Sam" {
			t.Errorf("notes enabled: got %+v", outOn.Result)
		}
	})
}

func TestParse_Cache(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, usecase.Options{CacheSize: 8})
	input := smartinput.ParseInput{Text: "Pay rent friday #home"}

	first, err := uc.Parse(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Cached {
		t.Errorf("first parse should miss the cache")
	}

	// Mutating a returned result must not leak into the cache.
	first.Result.Date.Day = 1
	first.Result.Spans[0].Start = 99

	second, err := uc.Parse(ctx, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Cached {
		t.Errorf("second parse should hit the cache")
	}
	if second.Result.Date.String() != "2025-01-17" {
		t.Errorf("cached Date = %v, want 2025-01-17", second.Result.Date)
	}
	if second.Result.Spans[0].Start == 99 {
		t.Errorf("cached spans were mutated through a returned result")
	}

	// Another day is another key.
	third, _ := uc.Parse(ctx, smartinput.ParseInput{Text: input.Text, ReferenceTime: fixedNow.AddDate(0, 0, 1)})
	if third.Cached {
		t.Errorf("different reference date should miss the cache")
	}
	if third.Result.Date.String() != "2025-01-17" {
		t.Errorf("Date from Thursday = %v, want 2025-01-17", third.Result.Date)
	}
}

func TestParse_CacheDisabled(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, usecase.Options{})
	input := smartinput.ParseInput{Text: "Pay rent friday"}

	for i := 0; i < 2; i++ {
		out, err := uc.Parse(ctx, input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Cached {
			t.Errorf("parse %d reported a cache hit with caching disabled", i)
		}
	}
}
