//go:build integration
// +build integration

package service_test

import (
	"testing"
	"time"

	"fleet-operations-backend/internal/database/models"
	"fleet-operations-backend/internal/repository"
	"fleet-operations-backend/internal/service"
	"fleet-operations-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ScheduleNoveltyTestSuite exercises novelty persistence through the service
// against the shared Postgres container
type ScheduleNoveltyTestSuite struct {
	suite.Suite
	base *testutils.BaseTestSuite
	svc  *service.ScheduleService
}

func (suite *ScheduleNoveltyTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	db := suite.base.DB
	suite.svc = service.NewScheduleService(
		repository.NewScheduleRepository(db),
		repository.NewNoveltyRepository(db),
		repository.NewUserRepository(db),
		validator.New(),
	)
}

func (suite *ScheduleNoveltyTestSuite) SetupTest() {
	suite.base.CleanTestDB()
}

func (suite *ScheduleNoveltyTestSuite) TearDownTest() {
	suite.base.CleanTestDB()
}

func (suite *ScheduleNoveltyTestSuite) createSchedule() *service.ScheduleResponse {
	role := testutils.NewRoleFactory().Create()
	suite.Require().NoError(suite.base.DB.Create(role).Error)

	user := testutils.NewUserFactory().WithRole(role.ID)
	suite.Require().NoError(suite.base.DB.Create(user).Error)

	created, err := suite.svc.Create(&service.CreateScheduleRequest{
		UserID:           user.ID,
		StartDate:        time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		WorkingDays:      4,
		RestDays:         3,
		DefaultStartTime: "08:00",
		DefaultEndTime:   "17:00",
	})
	suite.Require().NoError(err)
	return created
}

func (suite *ScheduleNoveltyTestSuite) TestSaveNoveltyReplacesSameDate() {
	sched := suite.createSchedule()
	date := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)

	first, err := suite.svc.SaveNovelty(sched.ID, &service.SaveNoveltyRequest{
		Date:        date,
		NoveltyType: models.NoveltyTypeAbsence,
		Observation: "sick call",
	})
	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, first.ID)

	// same calendar day, different time of day
	second, err := suite.svc.SaveNovelty(sched.ID, &service.SaveNoveltyRequest{
		Date:        date.Add(10 * time.Hour),
		NoveltyType: models.NoveltyTypeOvertime,
		Observation: "extra maneuver",
	})
	suite.Require().NoError(err)
	suite.Equal(first.ID, second.ID)
	suite.Equal(models.NoveltyTypeOvertime, second.NoveltyType)
	suite.Equal("extra maneuver", second.Observation)

	list, err := suite.svc.ListNovelties(sched.ID)
	suite.Require().NoError(err)
	suite.Require().Len(list, 1)
	suite.Equal(first.ID, list[0].ID)
	suite.Equal(models.NoveltyTypeOvertime, list[0].NoveltyType)
}

func (suite *ScheduleNoveltyTestSuite) TestSaveNoveltyDistinctDates() {
	sched := suite.createSchedule()

	_, err := suite.svc.SaveNovelty(sched.ID, &service.SaveNoveltyRequest{
		Date:        time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		NoveltyType: models.NoveltyTypeAbsence,
	})
	suite.Require().NoError(err)

	_, err = suite.svc.SaveNovelty(sched.ID, &service.SaveNoveltyRequest{
		Date:        time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
		NoveltyType: models.NoveltyTypePermission,
	})
	suite.Require().NoError(err)

	list, err := suite.svc.ListNovelties(sched.ID)
	suite.Require().NoError(err)
	suite.Len(list, 2)
}

func TestScheduleNoveltyTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleNoveltyTestSuite))
}
