package schedule_test

import (
	"testing"
	"time"

	"fleet-operations-backend/internal/schedule"

	"github.com/stretchr/testify/assert"
)

func TestTimeWindowValidate(t *testing.T) {
	testCases := []struct {
		name    string
		window  schedule.TimeWindow
		wantErr bool
	}{
		{name: "Valid window", window: schedule.TimeWindow{Start: "08:00", End: "17:00"}, wantErr: false},
		{name: "One minute window", window: schedule.TimeWindow{Start: "08:00", End: "08:01"}, wantErr: false},
		{name: "Inverted window", window: schedule.TimeWindow{Start: "17:00", End: "08:00"}, wantErr: true},
		{name: "Equal start and end", window: schedule.TimeWindow{Start: "08:00", End: "08:00"}, wantErr: true},
		{name: "Unparseable start", window: schedule.TimeWindow{Start: "8am", End: "17:00"}, wantErr: true},
		{name: "Unparseable end", window: schedule.TimeWindow{Start: "08:00", End: "25:00"}, wantErr: true},
		{name: "Empty window", window: schedule.TimeWindow{}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.window.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, schedule.ErrInvalidTimeWindow)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeAppliesOverridesWithoutMutatingDefaults(t *testing.T) {
	cycle := schedule.Cycle{Start: date(2024, time.March, 1), WorkingDays: 4, RestDays: 3}
	pattern := schedule.Generate(cycle, defaultWindow)

	overrides := schedule.Overrides{}
	overrides.Set(date(2024, time.March, 2), schedule.TimeWindow{Start: "10:00", End: "19:00"})

	merged := pattern.Merge(overrides)

	// Merged view carries the override.
	assert.Equal(t, "10:00", merged.WorkDays[1].StartTime)
	assert.Equal(t, "19:00", merged.WorkDays[1].EndTime)

	// Generated defaults are untouched, so regeneration never loses edits.
	assert.Equal(t, "08:00", pattern.WorkDays[1].StartTime)
	assert.Equal(t, "17:00", pattern.WorkDays[1].EndTime)
}

func TestMergeIgnoresOverridesForRestDays(t *testing.T) {
	cycle := schedule.Cycle{Start: date(2024, time.March, 1), WorkingDays: 4, RestDays: 3}
	pattern := schedule.Generate(cycle, defaultWindow)

	overrides := schedule.Overrides{}
	overrides.Set(date(2024, time.March, 5), schedule.TimeWindow{Start: "10:00", End: "19:00"}) // rest position

	merged := pattern.Merge(overrides)
	assert.Equal(t, pattern.WorkDays, merged.WorkDays)
}

func TestSetDayTime(t *testing.T) {
	cycle := schedule.Cycle{Start: date(2024, time.March, 1), WorkingDays: 4, RestDays: 3}
	pattern := schedule.Generate(cycle, defaultWindow)

	ok := pattern.SetDayTime(date(2024, time.March, 3), schedule.TimeWindow{Start: "06:00", End: "14:00"})
	assert.True(t, ok)
	assert.Equal(t, "06:00", pattern.WorkDays[2].StartTime)
	assert.Equal(t, "14:00", pattern.WorkDays[2].EndTime)

	// Unknown date is a silent no-op.
	ok = pattern.SetDayTime(date(2024, time.March, 5), schedule.TimeWindow{Start: "06:00", End: "14:00"})
	assert.False(t, ok)
}

func TestSetAllTimes(t *testing.T) {
	cycle := schedule.Cycle{Start: date(2024, time.March, 1), WorkingDays: 4, RestDays: 3}
	pattern := schedule.Generate(cycle, defaultWindow)

	pattern.SetAllTimes(schedule.TimeWindow{Start: "09:00", End: "18:00"})
	for _, wd := range pattern.WorkDays {
		assert.Equal(t, "09:00", wd.StartTime)
		assert.Equal(t, "18:00", wd.EndTime)
	}
}
