package service_test

import (
	"errors"
	"testing"
	"time"

	"fleet-operations-backend/internal/database/models"
	"fleet-operations-backend/internal/schedule"
	"fleet-operations-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// ScheduleServiceTestSuite covers the validation and generation logic that
// runs before any repository access
type ScheduleServiceTestSuite struct {
	suite.Suite
	validator *validator.Validate
	svc       *service.ScheduleService
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.validator = validator.New()
	suite.svc = service.NewScheduleService(nil, nil, nil, suite.validator)
}

func (suite *ScheduleServiceTestSuite) TestCreateScheduleValidation() {
	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name        string
		request     *service.CreateScheduleRequest
		expectError bool
	}{
		{
			name: "valid request",
			request: &service.CreateScheduleRequest{
				UserID:           uuid.New(),
				StartDate:        start,
				WorkingDays:      4,
				RestDays:         3,
				DefaultStartTime: "08:00",
				DefaultEndTime:   "17:00",
			},
			expectError: false,
		},
		{
			name: "missing user",
			request: &service.CreateScheduleRequest{
				StartDate:        start,
				WorkingDays:      4,
				RestDays:         3,
				DefaultStartTime: "08:00",
				DefaultEndTime:   "17:00",
			},
			expectError: true,
		},
		{
			name: "working days above bound",
			request: &service.CreateScheduleRequest{
				UserID:           uuid.New(),
				StartDate:        start,
				WorkingDays:      32,
				RestDays:         3,
				DefaultStartTime: "08:00",
				DefaultEndTime:   "17:00",
			},
			expectError: true,
		},
		{
			name: "working days zero",
			request: &service.CreateScheduleRequest{
				UserID:           uuid.New(),
				StartDate:        start,
				WorkingDays:      0,
				RestDays:         3,
				DefaultStartTime: "08:00",
				DefaultEndTime:   "17:00",
			},
			expectError: true,
		},
		{
			name: "negative rest days",
			request: &service.CreateScheduleRequest{
				UserID:           uuid.New(),
				StartDate:        start,
				WorkingDays:      4,
				RestDays:         -1,
				DefaultStartTime: "08:00",
				DefaultEndTime:   "17:00",
			},
			expectError: true,
		},
		{
			name: "unparseable start time",
			request: &service.CreateScheduleRequest{
				UserID:           uuid.New(),
				StartDate:        start,
				WorkingDays:      4,
				RestDays:         3,
				DefaultStartTime: "8am",
				DefaultEndTime:   "17:00",
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := suite.validator.Struct(tc.request)
			if tc.expectError {
				assert.Error(suite.T(), err)
			} else {
				assert.NoError(suite.T(), err)
			}
		})
	}
}

func (suite *ScheduleServiceTestSuite) TestCreateRejectsInvertedWindow() {
	req := &service.CreateScheduleRequest{
		UserID:           uuid.New(),
		StartDate:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		WorkingDays:      4,
		RestDays:         3,
		DefaultStartTime: "17:00",
		DefaultEndTime:   "08:00",
	}

	_, err := suite.svc.Create(req)
	assert.Error(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, schedule.ErrInvalidTimeWindow))
}

func (suite *ScheduleServiceTestSuite) TestPreviewGeneratesFullYear() {
	req := &service.PreviewRequest{
		StartDate:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		WorkingDays:      4,
		RestDays:         3,
		DefaultStartTime: "08:00",
		DefaultEndTime:   "17:00",
	}

	resp, err := suite.svc.Preview(req)
	suite.Require().NoError(err)

	// 2024-03-01 through 2024-12-31 is 306 days, every one classified
	assert.Equal(suite.T(), 306, len(resp.WorkDayList)+len(resp.RestDayList))
	assert.Equal(suite.T(), "2024-03-01", resp.StartDate)

	// First cycle: 4 work days then 3 rest days
	suite.Require().GreaterOrEqual(len(resp.WorkDayList), 4)
	assert.Equal(suite.T(), "2024-03-01", resp.WorkDayList[0].Date)
	assert.Equal(suite.T(), "2024-03-04", resp.WorkDayList[3].Date)
	assert.Equal(suite.T(), "2024-03-08", resp.WorkDayList[4].Date)
	suite.Require().GreaterOrEqual(len(resp.RestDayList), 3)
	assert.Equal(suite.T(), "2024-03-05", resp.RestDayList[0])

	for _, wd := range resp.WorkDayList {
		assert.Equal(suite.T(), "08:00", wd.StartTime)
		assert.Equal(suite.T(), "17:00", wd.EndTime)
	}
}

func (suite *ScheduleServiceTestSuite) TestPreviewRejectsInvertedWindow() {
	req := &service.PreviewRequest{
		StartDate:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		WorkingDays:      4,
		RestDays:         3,
		DefaultStartTime: "09:00",
		DefaultEndTime:   "09:00",
	}

	_, err := suite.svc.Preview(req)
	assert.Error(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, schedule.ErrInvalidTimeWindow))
}

func (suite *ScheduleServiceTestSuite) TestUpdateWorkDayRejectsInvertedWindow() {
	req := &service.UpdateWorkDayRequest{
		Date:      time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "18:00",
		EndTime:   "06:00",
	}

	_, err := suite.svc.UpdateWorkDayTime(uuid.New(), req)
	assert.Error(suite.T(), err)
	assert.True(suite.T(), errors.Is(err, schedule.ErrInvalidTimeWindow))
}

func (suite *ScheduleServiceTestSuite) TestBulkTimesValidation() {
	testCases := []struct {
		name    string
		request *service.BulkWorkDayTimesRequest
		valid   bool
	}{
		{"valid window", &service.BulkWorkDayTimesRequest{StartTime: "06:00", EndTime: "14:00"}, true},
		{"missing end", &service.BulkWorkDayTimesRequest{StartTime: "06:00"}, false},
		{"bad format", &service.BulkWorkDayTimesRequest{StartTime: "6:00 AM", EndTime: "14:00"}, false},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := suite.validator.Struct(tc.request)
			if tc.valid {
				assert.NoError(suite.T(), err)
			} else {
				assert.Error(suite.T(), err)
			}
		})
	}
}

func (suite *ScheduleServiceTestSuite) TestSaveNoveltyRejectsUnknownType() {
	req := &service.SaveNoveltyRequest{
		Date:        time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		NoveltyType: models.NoveltyType("sabbatical"),
		Observation: "unknown kind",
	}

	_, err := suite.svc.SaveNovelty(uuid.New(), req)
	assert.Error(suite.T(), err)
}

func (suite *ScheduleServiceTestSuite) TestSaveNoveltyValidation() {
	for _, nt := range []models.NoveltyType{
		models.NoveltyTypeAbsence,
		models.NoveltyTypePermission,
		models.NoveltyTypeMedicalLeave,
		models.NoveltyTypeShiftChange,
		models.NoveltyTypeLateArrival,
		models.NoveltyTypeEarlyDeparture,
		models.NoveltyTypeOvertime,
	} {
		req := &service.SaveNoveltyRequest{
			Date:        time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
			NoveltyType: nt,
		}
		assert.NoError(suite.T(), suite.validator.Struct(req))
		assert.True(suite.T(), nt.IsValid())
	}
}

func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}
