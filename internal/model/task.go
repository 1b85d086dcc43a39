package model

import "time"

// TaskDraft is the payload a task form would submit for one parsed line.
// It is built but never stored.
type TaskDraft struct {
	ID       string     // UUID assigned when the draft is built
	Title    string     // Human readable name, never the raw-input fallback
	Due      *time.Time // Start of the due day when AllDay, otherwise the due instant
	AllDay   bool       // Due has a date but no time of day
	Project  string     // Project name without the leading '#'
	Label    string     // Label name without the leading '@'
	Priority int        // 1..4, 0 when not set
	Notes    string
	Timezone string    // IANA name Due was resolved in
	Created  time.Time // Reference instant the draft was parsed against
}

// HasDue reports whether the draft carries a due date.
func (t TaskDraft) HasDue() bool {
	return t.Due != nil
}
