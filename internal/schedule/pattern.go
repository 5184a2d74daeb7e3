// Package schedule implements the recurring work-schedule core: cyclic
// pattern generation, calendar day classification, vacation windows, the
// time-override layer and the persistence trim. Everything here is pure
// date arithmetic over calendar days; callers own all I/O.
package schedule

import "time"

// DateKey is the canonical map key for a calendar day.
const DateKey = "2006-01-02"

// DayKind is the single rendering classification of a calendar day.
type DayKind string

const (
	DayKindNone     DayKind = "none"
	DayKindWork     DayKind = "work"
	DayKindRest     DayKind = "rest"
	DayKindVacation DayKind = "vacation"
)

// Cycle defines the repeating work/rest unit anchored at a start date.
type Cycle struct {
	Start       time.Time
	WorkingDays int
	RestDays    int
}

// Vacation is a contiguous date range that overlays the pattern without
// altering it. Zero Days or a zero Start disables the window.
type Vacation struct {
	Start time.Time
	Days  int
}

// WorkDay is one generated or persisted working day with its time window.
type WorkDay struct {
	Date      time.Time
	StartTime string
	EndTime   string
}

// Pattern is the transient full-year expansion of a cycle.
type Pattern struct {
	WorkDays []WorkDay
	RestDays []time.Time
}

// truncateDay normalizes a timestamp to its calendar day in UTC.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysSince returns the whole calendar days between the cycle start and d.
// Negative when d precedes the start.
func (c Cycle) daysSince(d time.Time) int {
	return int(truncateDay(d).Sub(truncateDay(c.Start)).Hours() / 24)
}

// Length returns the repeating cycle length in days.
func (c Cycle) Length() int {
	return c.WorkingDays + c.RestDays
}

// IsWorkDay reports whether d falls on a working position of the cycle.
// Dates before the start are neither work nor rest.
func (c Cycle) IsWorkDay(d time.Time) bool {
	if c.WorkingDays <= 0 {
		return false
	}
	days := c.daysSince(d)
	if days < 0 {
		return false
	}
	length := c.Length()
	if length <= 0 {
		return false
	}
	return days%length < c.WorkingDays
}

// IsRestDay reports whether d falls on a rest position of the cycle.
func (c Cycle) IsRestDay(d time.Time) bool {
	if c.WorkingDays <= 0 || c.RestDays <= 0 {
		return false
	}
	days := c.daysSince(d)
	if days < 0 {
		return false
	}
	return days%c.Length() >= c.WorkingDays
}

// Contains reports whether d lies inside the vacation window
// [Start, Start+Days-1].
func (v Vacation) Contains(d time.Time) bool {
	if v.Days <= 0 || v.Start.IsZero() {
		return false
	}
	day := truncateDay(d)
	start := truncateDay(v.Start)
	end := start.AddDate(0, 0, v.Days-1)
	return !day.Before(start) && !day.After(end)
}

// Classifier answers work/rest/vacation questions for a schedule. An explicit
// work-day entry for a date forces work classification regardless of cycle
// arithmetic; vacation is flagged independently and wins when a single kind
// is needed.
type Classifier struct {
	Cycle    Cycle
	Vacation Vacation
	explicit map[string]struct{}
}

// NewClassifier builds a classifier over the cycle, vacation window and the
// schedule's explicit work-day entries.
func NewClassifier(cycle Cycle, vacation Vacation, explicit []WorkDay) *Classifier {
	m := make(map[string]struct{}, len(explicit))
	for _, wd := range explicit {
		m[truncateDay(wd.Date).Format(DateKey)] = struct{}{}
	}
	return &Classifier{Cycle: cycle, Vacation: vacation, explicit: m}
}

// IsWorkDay reports whether d is a working day, honoring explicit entries.
func (c *Classifier) IsWorkDay(d time.Time) bool {
	if _, ok := c.explicit[truncateDay(d).Format(DateKey)]; ok {
		return true
	}
	return c.Cycle.IsWorkDay(d)
}

// IsRestDay reports whether d is a rest day. Explicit work entries override.
func (c *Classifier) IsRestDay(d time.Time) bool {
	if _, ok := c.explicit[truncateDay(d).Format(DateKey)]; ok {
		return false
	}
	return c.Cycle.IsRestDay(d)
}

// IsVacationDay reports whether d lies inside the vacation window.
func (c *Classifier) IsVacationDay(d time.Time) bool {
	return c.Vacation.Contains(d)
}

// Kind returns the single rendering classification for d, vacation first.
func (c *Classifier) Kind(d time.Time) DayKind {
	switch {
	case c.IsVacationDay(d):
		return DayKindVacation
	case c.IsWorkDay(d):
		return DayKindWork
	case c.IsRestDay(d):
		return DayKindRest
	}
	return DayKindNone
}

// Generate expands a cycle day by day from its start date through December 31
// of the start date's year, inclusive. Work days carry the default window.
// A non-positive working-day count yields an empty pattern.
func Generate(cycle Cycle, window TimeWindow) Pattern {
	var pattern Pattern
	if cycle.WorkingDays <= 0 {
		return pattern
	}
	start := truncateDay(cycle.Start)
	yearEnd := time.Date(start.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
	length := cycle.Length()

	for d, idx := start, 0; !d.After(yearEnd); d, idx = d.AddDate(0, 0, 1), idx+1 {
		if idx%length < cycle.WorkingDays {
			pattern.WorkDays = append(pattern.WorkDays, WorkDay{
				Date:      d,
				StartTime: window.Start,
				EndTime:   window.End,
			})
		} else {
			pattern.RestDays = append(pattern.RestDays, d)
		}
	}
	return pattern
}

// Trim filters the pattern's work days to those on or after start and
// truncates to the first workingDays entries. This is the persisted subset;
// the backend derives recurrence beyond it from the cycle parameters.
func (p Pattern) Trim(start time.Time, workingDays int) []WorkDay {
	if workingDays <= 0 {
		return nil
	}
	startDay := truncateDay(start)
	trimmed := make([]WorkDay, 0, workingDays)
	for _, wd := range p.WorkDays {
		if truncateDay(wd.Date).Before(startDay) {
			continue
		}
		trimmed = append(trimmed, wd)
		if len(trimmed) == workingDays {
			break
		}
	}
	return trimmed
}
