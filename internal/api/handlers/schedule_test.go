package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fleet-operations-backend/internal/api/handlers"
	"fleet-operations-backend/internal/database/models"
	apperrors "fleet-operations-backend/internal/errors"
	"fleet-operations-backend/internal/mocks"
	"fleet-operations-backend/internal/schedule"
	"fleet-operations-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ScheduleHandlerTestSuite exercises the schedule endpoints against a mocked service
type ScheduleHandlerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	mockSvc *mocks.MockScheduleServiceInterface
	router  *gin.Engine
}

func (suite *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSvc = mocks.NewMockScheduleServiceInterface(suite.ctrl)

	handler := handlers.NewScheduleHandler(suite.mockSvc)
	suite.router = gin.New()
	suite.router.POST("/schedules", handler.CreateSchedule)
	suite.router.POST("/schedules/preview", handler.PreviewSchedule)
	suite.router.GET("/schedules", handler.ListSchedules)
	suite.router.GET("/schedules/:id", handler.GetSchedule)
	suite.router.DELETE("/schedules/:id", handler.DeleteSchedule)
	suite.router.PATCH("/schedules/:id/work-days", handler.UpdateWorkDay)
	suite.router.PUT("/schedules/:id/work-days", handler.BulkWorkDayTimes)
	suite.router.PUT("/schedules/:id/novelties", handler.SaveNovelty)
	suite.router.GET("/schedules/:id/novelties", handler.ListNovelties)
	suite.router.DELETE("/schedules/:id/novelties/:noveltyId", handler.DeleteNovelty)
}

func (suite *ScheduleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScheduleHandlerTestSuite) performJSON(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ScheduleHandlerTestSuite) TestCreateSchedule() {
	scheduleID := uuid.New()
	userID := uuid.New()
	req := &service.CreateScheduleRequest{
		UserID:           userID,
		StartDate:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		WorkingDays:      4,
		RestDays:         3,
		DefaultStartTime: "08:00",
		DefaultEndTime:   "17:00",
	}

	suite.mockSvc.EXPECT().Create(gomock.Any()).Return(&service.ScheduleResponse{
		ID:          scheduleID,
		UserID:      userID,
		StartDate:   "2024-03-01",
		WorkingDays: 4,
		RestDays:    3,
	}, nil)

	w := suite.performJSON(http.MethodPost, "/schedules", req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
	var resp service.ScheduleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), scheduleID, resp.ID)
	assert.Equal(suite.T(), "2024-03-01", resp.StartDate)
}

func (suite *ScheduleHandlerTestSuite) TestCreateScheduleUserNotFound() {
	suite.mockSvc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrUserNotFound)

	w := suite.performJSON(http.MethodPost, "/schedules", &service.CreateScheduleRequest{
		UserID:           uuid.New(),
		StartDate:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		WorkingDays:      4,
		DefaultStartTime: "08:00",
		DefaultEndTime:   "17:00",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestCreateScheduleInvalidWindow() {
	suite.mockSvc.EXPECT().Create(gomock.Any()).Return(nil, schedule.ErrInvalidTimeWindow)

	w := suite.performJSON(http.MethodPost, "/schedules", &service.CreateScheduleRequest{
		UserID:           uuid.New(),
		StartDate:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		WorkingDays:      4,
		DefaultStartTime: "17:00",
		DefaultEndTime:   "08:00",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestCreateScheduleFieldValidation() {
	bad := &service.CreateScheduleRequest{WorkingDays: 40}
	wrapped := fmt.Errorf("validation failed: %w", validator.New().Struct(bad))
	suite.mockSvc.EXPECT().Create(gomock.Any()).Return(nil, wrapped)

	w := suite.performJSON(http.MethodPost, "/schedules", &service.CreateScheduleRequest{
		UserID:           uuid.New(),
		StartDate:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		WorkingDays:      40,
		DefaultStartTime: "08:00",
		DefaultEndTime:   "17:00",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestCreateScheduleTypedValidationError() {
	suite.mockSvc.EXPECT().Create(gomock.Any()).Return(nil,
		apperrors.NewValidationError("start_date", "must be a calendar date"))

	w := suite.performJSON(http.MethodPost, "/schedules", &service.CreateScheduleRequest{
		UserID:           uuid.New(),
		StartDate:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		WorkingDays:      4,
		DefaultStartTime: "08:00",
		DefaultEndTime:   "17:00",
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestCreateScheduleInvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/schedules", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestGetSchedule() {
	scheduleID := uuid.New()
	suite.mockSvc.EXPECT().GetByID(scheduleID).Return(&service.ScheduleResponse{
		ID:        scheduleID,
		StartDate: "2024-03-01",
		WorkDays: []service.WorkDayResponse{
			{Date: "2024-03-01", StartTime: "08:00", EndTime: "17:00"},
		},
	}, nil)

	w := suite.performJSON(http.MethodGet, "/schedules/"+scheduleID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var resp service.ScheduleResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(suite.T(), resp.WorkDays, 1)
}

func (suite *ScheduleHandlerTestSuite) TestGetScheduleNotFound() {
	id := uuid.New()
	suite.mockSvc.EXPECT().GetByID(id).Return(nil, apperrors.ErrScheduleNotFound)

	w := suite.performJSON(http.MethodGet, "/schedules/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestGetScheduleBadID() {
	w := suite.performJSON(http.MethodGet, "/schedules/not-a-uuid", nil)
	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestListSchedules() {
	suite.mockSvc.EXPECT().List(2, 10).Return(&service.ScheduleListResponse{
		Schedules: []service.ScheduleResponse{{ID: uuid.New()}},
		Total:     11,
		Page:      2,
		PageSize:  10,
	}, nil)

	w := suite.performJSON(http.MethodGet, "/schedules?page=2&page_size=10", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var resp service.ScheduleListResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), int64(11), resp.Total)
}

func (suite *ScheduleHandlerTestSuite) TestDeleteSchedule() {
	id := uuid.New()
	suite.mockSvc.EXPECT().Delete(id).Return(nil)

	w := suite.performJSON(http.MethodDelete, "/schedules/"+id.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestUpdateWorkDayUnknownDate() {
	id := uuid.New()
	suite.mockSvc.EXPECT().UpdateWorkDayTime(id, gomock.Any()).Return(nil, apperrors.ErrWorkDayNotFound)

	w := suite.performJSON(http.MethodPatch, "/schedules/"+id.String()+"/work-days", &service.UpdateWorkDayRequest{
		Date:      time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "18:00",
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestBulkWorkDayTimes() {
	id := uuid.New()
	suite.mockSvc.EXPECT().ApplyBulkTimes(id, gomock.Any()).Return(&service.ScheduleResponse{ID: id}, nil)

	w := suite.performJSON(http.MethodPut, "/schedules/"+id.String()+"/work-days", &service.BulkWorkDayTimesRequest{
		StartTime: "06:00",
		EndTime:   "14:00",
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestSaveNovelty() {
	id := uuid.New()
	noveltyID := uuid.New()
	suite.mockSvc.EXPECT().SaveNovelty(id, gomock.Any()).Return(&service.NoveltyResponse{
		ID:          noveltyID,
		Date:        "2024-03-02",
		NoveltyType: models.NoveltyTypeAbsence,
	}, nil)

	w := suite.performJSON(http.MethodPut, "/schedules/"+id.String()+"/novelties", &service.SaveNoveltyRequest{
		Date:        time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		NoveltyType: models.NoveltyTypeAbsence,
	})

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var resp service.NoveltyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(suite.T(), noveltyID, resp.ID)
}

func (suite *ScheduleHandlerTestSuite) TestSaveNoveltyInvalidType() {
	id := uuid.New()
	suite.mockSvc.EXPECT().SaveNovelty(id, gomock.Any()).Return(nil, apperrors.ErrInvalidNoveltyType)

	w := suite.performJSON(http.MethodPut, "/schedules/"+id.String()+"/novelties", &service.SaveNoveltyRequest{
		Date:        time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		NoveltyType: models.NoveltyType("sabbatical"),
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ScheduleHandlerTestSuite) TestListNovelties() {
	id := uuid.New()
	suite.mockSvc.EXPECT().ListNovelties(id).Return([]service.NoveltyResponse{
		{Date: "2024-03-02", NoveltyType: models.NoveltyTypeOvertime},
	}, nil)

	w := suite.performJSON(http.MethodGet, "/schedules/"+id.String()+"/novelties", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	var resp []service.NoveltyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(suite.T(), resp, 1)
}

func (suite *ScheduleHandlerTestSuite) TestDeleteNoveltyNotFound() {
	id := uuid.New()
	noveltyID := uuid.New()
	suite.mockSvc.EXPECT().DeleteNovelty(id, noveltyID).Return(apperrors.ErrNoveltyNotFound)

	w := suite.performJSON(http.MethodDelete, "/schedules/"+id.String()+"/novelties/"+noveltyID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func TestScheduleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}
