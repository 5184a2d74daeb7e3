package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeWindow is returned when a start/end pair is malformed or not
// strictly chronological.
var ErrInvalidTimeWindow = errors.New("invalid time window: start must be before end")

// TimeWindow is an "HH:MM" start/end pair for a working day.
type TimeWindow struct {
	Start string
	End   string
}

// Validate checks the window is parseable and strictly chronological.
func (w TimeWindow) Validate() error {
	start, err := time.Parse("15:04", w.Start)
	if err != nil {
		return fmt.Errorf("%w: bad start %q", ErrInvalidTimeWindow, w.Start)
	}
	end, err := time.Parse("15:04", w.End)
	if err != nil {
		return fmt.Errorf("%w: bad end %q", ErrInvalidTimeWindow, w.End)
	}
	if !start.Before(end) {
		return ErrInvalidTimeWindow
	}
	return nil
}

// Overrides is a sparse per-day time-window layer keyed by DateKey. Generated
// defaults and explicit edits are kept apart so regeneration can never
// destroy a committed edit; the two are merged at read time.
type Overrides map[string]TimeWindow

// Set records an override for the given calendar day.
func (o Overrides) Set(date time.Time, window TimeWindow) {
	o[truncateDay(date).Format(DateKey)] = window
}

// Get returns the override for the given calendar day, if any.
func (o Overrides) Get(date time.Time) (TimeWindow, bool) {
	w, ok := o[truncateDay(date).Format(DateKey)]
	return w, ok
}

// Merge returns a copy of the pattern with overrides applied on top of the
// generated defaults. The receiver is not mutated.
func (p Pattern) Merge(overrides Overrides) Pattern {
	if len(overrides) == 0 {
		return p
	}
	merged := Pattern{
		WorkDays: make([]WorkDay, len(p.WorkDays)),
		RestDays: p.RestDays,
	}
	copy(merged.WorkDays, p.WorkDays)
	for i, wd := range merged.WorkDays {
		if w, ok := overrides.Get(wd.Date); ok {
			merged.WorkDays[i].StartTime = w.Start
			merged.WorkDays[i].EndTime = w.End
		}
	}
	return merged
}

// SetDayTime overwrites the time window of the work day matching the given
// calendar date. Returns false without changing anything when no entry
// matches; absent days are not an error for the in-memory editor.
func (p *Pattern) SetDayTime(date time.Time, window TimeWindow) bool {
	day := truncateDay(date)
	for i, wd := range p.WorkDays {
		if truncateDay(wd.Date).Equal(day) {
			p.WorkDays[i].StartTime = window.Start
			p.WorkDays[i].EndTime = window.End
			return true
		}
	}
	return false
}

// SetAllTimes applies one time window uniformly to every work day.
func (p *Pattern) SetAllTimes(window TimeWindow) {
	for i := range p.WorkDays {
		p.WorkDays[i].StartTime = window.Start
		p.WorkDays[i].EndTime = window.End
	}
}
