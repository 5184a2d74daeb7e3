package schedule_test

import (
	"testing"
	"time"

	"fleet-operations-backend/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var defaultWindow = schedule.TimeWindow{Start: "08:00", End: "17:00"}

// PatternTestSuite defines the test suite for the pattern generator and classifier
type PatternTestSuite struct {
	suite.Suite
}

func (suite *PatternTestSuite) TestGenerateCoversStartThroughYearEnd() {
	testCases := []struct {
		name        string
		start       time.Time
		workingDays int
		restDays    int
	}{
		{name: "Mid-year start", start: date(2024, time.March, 1), workingDays: 4, restDays: 3},
		{name: "January first", start: date(2024, time.January, 1), workingDays: 5, restDays: 2},
		{name: "Last day of year", start: date(2024, time.December, 31), workingDays: 1, restDays: 1},
		{name: "No rest days", start: date(2023, time.June, 15), workingDays: 7, restDays: 0},
		{name: "Max cycle", start: date(2024, time.February, 29), workingDays: 31, restDays: 31},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			cycle := schedule.Cycle{Start: tc.start, WorkingDays: tc.workingDays, RestDays: tc.restDays}
			pattern := schedule.Generate(cycle, defaultWindow)

			yearEnd := date(tc.start.Year(), time.December, 31)
			expectedDays := int(yearEnd.Sub(tc.start).Hours()/24) + 1
			assert.Equal(t, expectedDays, len(pattern.WorkDays)+len(pattern.RestDays))
		})
	}
}

func (suite *PatternTestSuite) TestGenerateDegenerateWorkingDays() {
	for _, workingDays := range []int{0, -1} {
		cycle := schedule.Cycle{Start: date(2024, time.March, 1), WorkingDays: workingDays, RestDays: 2}
		pattern := schedule.Generate(cycle, defaultWindow)
		assert.Empty(suite.T(), pattern.WorkDays)
		assert.Empty(suite.T(), pattern.RestDays)
	}
}

func (suite *PatternTestSuite) TestGenerateIsIdempotent() {
	cycle := schedule.Cycle{Start: date(2024, time.May, 10), WorkingDays: 3, RestDays: 2}

	first := schedule.Generate(cycle, defaultWindow)
	second := schedule.Generate(cycle, defaultWindow)

	assert.Equal(suite.T(), first.WorkDays, second.WorkDays)
	assert.Equal(suite.T(), first.RestDays, second.RestDays)
}

func (suite *PatternTestSuite) TestGenerateAssignsDefaultWindow() {
	cycle := schedule.Cycle{Start: date(2024, time.March, 1), WorkingDays: 4, RestDays: 3}
	pattern := schedule.Generate(cycle, schedule.TimeWindow{Start: "07:30", End: "16:30"})

	for _, wd := range pattern.WorkDays {
		assert.Equal(suite.T(), "07:30", wd.StartTime)
		assert.Equal(suite.T(), "16:30", wd.EndTime)
	}
}

func (suite *PatternTestSuite) TestClassifierStartDateIsWorkDay() {
	start := date(2024, time.March, 1)
	cycle := schedule.Cycle{Start: start, WorkingDays: 1, RestDays: 6}
	c := schedule.NewClassifier(cycle, schedule.Vacation{}, nil)

	assert.True(suite.T(), c.IsWorkDay(start))
	assert.False(suite.T(), c.IsRestDay(start))
}

func (suite *PatternTestSuite) TestClassifierBeforeStartIsNeither() {
	cycle := schedule.Cycle{Start: date(2024, time.March, 1), WorkingDays: 5, RestDays: 2}
	c := schedule.NewClassifier(cycle, schedule.Vacation{}, nil)

	before := date(2024, time.February, 28)
	assert.False(suite.T(), c.IsWorkDay(before))
	assert.False(suite.T(), c.IsRestDay(before))
	assert.Equal(suite.T(), schedule.DayKindNone, c.Kind(before))
}

func (suite *PatternTestSuite) TestClassifierCycleWrap() {
	// workingDays=5, restDays=2, start 2024-01-01: indexes 5 and 6 rest,
	// index 7 works again.
	cycle := schedule.Cycle{Start: date(2024, time.January, 1), WorkingDays: 5, RestDays: 2}
	c := schedule.NewClassifier(cycle, schedule.Vacation{}, nil)

	assert.True(suite.T(), c.IsRestDay(date(2024, time.January, 6)))
	assert.True(suite.T(), c.IsRestDay(date(2024, time.January, 7)))
	assert.True(suite.T(), c.IsWorkDay(date(2024, time.January, 8)))
}

func (suite *PatternTestSuite) TestWorkRestExclusive() {
	cycle := schedule.Cycle{Start: date(2024, time.March, 1), WorkingDays: 4, RestDays: 3}
	c := schedule.NewClassifier(cycle, schedule.Vacation{}, nil)

	for d := cycle.Start; d.Year() == 2024; d = d.AddDate(0, 0, 1) {
		work := c.IsWorkDay(d)
		rest := c.IsRestDay(d)
		assert.NotEqual(suite.T(), work, rest, "day %s must be exactly one of work/rest", d.Format(schedule.DateKey))
	}
}

func (suite *PatternTestSuite) TestEndToEndMarchScenario() {
	// startDate=2024-03-01, workingDays=4, restDays=3: Mar 1-4 work,
	// Mar 5-7 rest, next work cycle starts Mar 8.
	cycle := schedule.Cycle{Start: date(2024, time.March, 1), WorkingDays: 4, RestDays: 3}
	c := schedule.NewClassifier(cycle, schedule.Vacation{}, nil)

	for day := 1; day <= 4; day++ {
		assert.True(suite.T(), c.IsWorkDay(date(2024, time.March, day)), "March %d should be work", day)
	}
	for day := 5; day <= 7; day++ {
		assert.True(suite.T(), c.IsRestDay(date(2024, time.March, day)), "March %d should be rest", day)
	}
	assert.True(suite.T(), c.IsWorkDay(date(2024, time.March, 8)))
}

func (suite *PatternTestSuite) TestExplicitWorkDayOverridesCycle() {
	cycle := schedule.Cycle{Start: date(2024, time.March, 1), WorkingDays: 4, RestDays: 3}
	// March 5 is a rest position, forced to work by an explicit entry.
	explicit := []schedule.WorkDay{{Date: date(2024, time.March, 5), StartTime: "08:00", EndTime: "17:00"}}
	c := schedule.NewClassifier(cycle, schedule.Vacation{}, explicit)

	assert.True(suite.T(), c.IsWorkDay(date(2024, time.March, 5)))
	assert.False(suite.T(), c.IsRestDay(date(2024, time.March, 5)))
}

func (suite *PatternTestSuite) TestVacationPrecedence() {
	cycle := schedule.Cycle{Start: date(2024, time.March, 1), WorkingDays: 4, RestDays: 3}
	vacation := schedule.Vacation{Start: date(2024, time.March, 3), Days: 5}
	c := schedule.NewClassifier(cycle, vacation, nil)

	// March 3 is a work position and March 5 a rest position; both are
	// flagged vacation, and vacation wins for rendering.
	assert.True(suite.T(), c.IsVacationDay(date(2024, time.March, 3)))
	assert.True(suite.T(), c.IsWorkDay(date(2024, time.March, 3)))
	assert.Equal(suite.T(), schedule.DayKindVacation, c.Kind(date(2024, time.March, 3)))
	assert.Equal(suite.T(), schedule.DayKindVacation, c.Kind(date(2024, time.March, 5)))

	// Window is inclusive: March 3 through March 7.
	assert.True(suite.T(), c.IsVacationDay(date(2024, time.March, 7)))
	assert.False(suite.T(), c.IsVacationDay(date(2024, time.March, 8)))
	assert.False(suite.T(), c.IsVacationDay(date(2024, time.March, 2)))
}

func (suite *PatternTestSuite) TestVacationDisabledWindows() {
	cycle := schedule.Cycle{Start: date(2024, time.March, 1), WorkingDays: 4, RestDays: 3}

	noDays := schedule.NewClassifier(cycle, schedule.Vacation{Start: date(2024, time.March, 3), Days: 0}, nil)
	assert.False(suite.T(), noDays.IsVacationDay(date(2024, time.March, 3)))

	noStart := schedule.NewClassifier(cycle, schedule.Vacation{Days: 10}, nil)
	assert.False(suite.T(), noStart.IsVacationDay(date(2024, time.March, 3)))
}

func (suite *PatternTestSuite) TestTrimKeepsOneCycleOfWorkDays() {
	start := date(2024, time.March, 1)
	cycle := schedule.Cycle{Start: start, WorkingDays: 4, RestDays: 3}
	pattern := schedule.Generate(cycle, defaultWindow)
	assert.Greater(suite.T(), len(pattern.WorkDays), 4)

	trimmed := pattern.Trim(start, 4)
	assert.Len(suite.T(), trimmed, 4)
	assert.Equal(suite.T(), date(2024, time.March, 1), trimmed[0].Date)
	assert.Equal(suite.T(), date(2024, time.March, 4), trimmed[3].Date)
}

func (suite *PatternTestSuite) TestTrimSkipsDaysBeforeStart() {
	cycle := schedule.Cycle{Start: date(2024, time.March, 1), WorkingDays: 4, RestDays: 3}
	pattern := schedule.Generate(cycle, defaultWindow)

	// Trimming from a later anchor drops the first cycle's days.
	trimmed := pattern.Trim(date(2024, time.March, 8), 4)
	assert.Len(suite.T(), trimmed, 4)
	assert.Equal(suite.T(), date(2024, time.March, 8), trimmed[0].Date)
}

func TestPatternTestSuite(t *testing.T) {
	suite.Run(t, new(PatternTestSuite))
}
