//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"fleet-operations-backend/internal/database/models"
	"fleet-operations-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ScheduleRepositoryTestSuite runs against the shared Postgres container
type ScheduleRepositoryTestSuite struct {
	suite.Suite
	base            *testutils.BaseTestSuite
	repo            *ScheduleRepository
	noveltyRepo     *NoveltyRepository
	roleFactory     *testutils.RoleFactory
	userFactory     *testutils.UserFactory
	scheduleFactory *testutils.ScheduleFactory
}

func (suite *ScheduleRepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.repo = NewScheduleRepository(suite.base.DB)
	suite.noveltyRepo = NewNoveltyRepository(suite.base.DB)
	suite.roleFactory = testutils.NewRoleFactory()
	suite.userFactory = testutils.NewUserFactory()
	suite.scheduleFactory = testutils.NewScheduleFactory()
}

func (suite *ScheduleRepositoryTestSuite) SetupTest() {
	suite.base.CleanTestDB()
}

func (suite *ScheduleRepositoryTestSuite) TearDownTest() {
	suite.base.CleanTestDB()
}

// createUser persists a role and user so schedule foreign keys resolve
func (suite *ScheduleRepositoryTestSuite) createUser() *models.User {
	role := suite.roleFactory.Create()
	suite.Require().NoError(suite.base.DB.Create(role).Error)

	user := suite.userFactory.WithRole(role.ID)
	suite.Require().NoError(suite.base.DB.Create(user).Error)
	return user
}

func (suite *ScheduleRepositoryTestSuite) TestCreateCascadesWorkDays() {
	user := suite.createUser()
	schedule := suite.scheduleFactory.Create(user.ID)

	err := suite.repo.Create(schedule)

	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, schedule.ID)

	var count int64
	suite.base.DB.Model(&models.WorkDay{}).Where("schedule_id = ?", schedule.ID).Count(&count)
	suite.Equal(int64(4), count)
}

func (suite *ScheduleRepositoryTestSuite) TestGetByIDPreloadsOrdered() {
	user := suite.createUser()
	schedule := suite.scheduleFactory.Create(user.ID)
	suite.Require().NoError(suite.repo.Create(schedule))

	novelty := &models.Novelty{
		ScheduleID:  schedule.ID,
		Date:        time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC),
		NoveltyType: models.NoveltyTypeAbsence,
	}
	suite.Require().NoError(suite.noveltyRepo.Create(novelty))

	found, err := suite.repo.GetByID(schedule.ID)

	suite.Require().NoError(err)
	suite.Equal(user.ID, found.User.ID)
	suite.Require().Len(found.WorkDays, 4)
	for i := 1; i < len(found.WorkDays); i++ {
		suite.True(found.WorkDays[i-1].Date.Before(found.WorkDays[i].Date))
	}
	suite.Require().Len(found.Novelties, 1)
	suite.Equal(models.NoveltyTypeAbsence, found.Novelties[0].NoveltyType)
}

func (suite *ScheduleRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ScheduleRepositoryTestSuite) TestGetWorkDayByDate() {
	user := suite.createUser()
	schedule := suite.scheduleFactory.Create(user.ID)
	suite.Require().NoError(suite.repo.Create(schedule))

	// lookup normalizes to the calendar day regardless of time of day
	workDay, err := suite.repo.GetWorkDay(schedule.ID,
		time.Date(2024, time.March, 3, 14, 45, 0, 0, time.UTC))

	suite.Require().NoError(err)
	suite.Equal("08:00", workDay.StartTime)
	suite.Equal("17:00", workDay.EndTime)

	_, err = suite.repo.GetWorkDay(schedule.ID,
		time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC))
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ScheduleRepositoryTestSuite) TestUpdateWorkDay() {
	user := suite.createUser()
	schedule := suite.scheduleFactory.Create(user.ID)
	suite.Require().NoError(suite.repo.Create(schedule))

	workDay, err := suite.repo.GetWorkDay(schedule.ID, schedule.StartDate)
	suite.Require().NoError(err)

	workDay.StartTime = "10:00"
	workDay.EndTime = "19:00"
	suite.Require().NoError(suite.repo.UpdateWorkDay(workDay))

	reloaded, err := suite.repo.GetWorkDay(schedule.ID, schedule.StartDate)
	suite.Require().NoError(err)
	suite.Equal("10:00", reloaded.StartTime)
	suite.Equal("19:00", reloaded.EndTime)
}

func (suite *ScheduleRepositoryTestSuite) TestUpdateAllWorkDayTimes() {
	user := suite.createUser()
	schedule := suite.scheduleFactory.Create(user.ID)
	suite.Require().NoError(suite.repo.Create(schedule))

	other := suite.scheduleFactory.Create(user.ID)
	other.StartDate = other.StartDate.AddDate(0, 1, 0)
	for i := range other.WorkDays {
		other.WorkDays[i].Date = other.WorkDays[i].Date.AddDate(0, 1, 0)
	}
	suite.Require().NoError(suite.repo.Create(other))

	err := suite.repo.UpdateAllWorkDayTimes(schedule.ID, "06:00", "14:00")
	suite.Require().NoError(err)

	found, err := suite.repo.GetByID(schedule.ID)
	suite.Require().NoError(err)
	for _, wd := range found.WorkDays {
		suite.Equal("06:00", wd.StartTime)
		suite.Equal("14:00", wd.EndTime)
	}

	untouched, err := suite.repo.GetByID(other.ID)
	suite.Require().NoError(err)
	for _, wd := range untouched.WorkDays {
		suite.Equal("08:00", wd.StartTime)
	}
}

func (suite *ScheduleRepositoryTestSuite) TestListPaginated() {
	user := suite.createUser()
	for i := 0; i < 3; i++ {
		schedule := suite.scheduleFactory.Create(user.ID)
		schedule.StartDate = schedule.StartDate.AddDate(0, i, 0)
		for j := range schedule.WorkDays {
			schedule.WorkDays[j].Date = schedule.WorkDays[j].Date.AddDate(0, i, 0)
		}
		suite.Require().NoError(suite.repo.Create(schedule))
	}

	schedules, total, err := suite.repo.List(2, 0)

	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Require().Len(schedules, 2)
	// most recent start date first
	suite.True(schedules[0].StartDate.After(schedules[1].StartDate))
	suite.Equal(user.ID, schedules[0].User.ID)
}

func (suite *ScheduleRepositoryTestSuite) TestGetByUserID() {
	owner := suite.createUser()
	other := suite.createUser()

	suite.Require().NoError(suite.repo.Create(suite.scheduleFactory.Create(owner.ID)))

	schedules, total, err := suite.repo.GetByUserID(owner.ID, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(schedules, 1)

	_, total, err = suite.repo.GetByUserID(other.ID, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(0), total)
}

func (suite *ScheduleRepositoryTestSuite) TestDeleteCascades() {
	user := suite.createUser()
	schedule := suite.scheduleFactory.Create(user.ID)
	suite.Require().NoError(suite.repo.Create(schedule))

	novelty := &models.Novelty{
		ScheduleID:  schedule.ID,
		Date:        schedule.StartDate,
		NoveltyType: models.NoveltyTypeOvertime,
	}
	suite.Require().NoError(suite.noveltyRepo.Create(novelty))

	suite.Require().NoError(suite.repo.Delete(schedule.ID))

	_, err := suite.repo.GetByID(schedule.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	var workDays int64
	suite.base.DB.Model(&models.WorkDay{}).Where("schedule_id = ?", schedule.ID).Count(&workDays)
	suite.Equal(int64(0), workDays)

	var novelties int64
	suite.base.DB.Model(&models.Novelty{}).Where("schedule_id = ?", schedule.ID).Count(&novelties)
	suite.Equal(int64(0), novelties)
}

func (suite *ScheduleRepositoryTestSuite) TestNoveltyLookupByDate() {
	user := suite.createUser()
	schedule := suite.scheduleFactory.Create(user.ID)
	suite.Require().NoError(suite.repo.Create(schedule))

	date := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)
	novelty := &models.Novelty{
		ScheduleID:  schedule.ID,
		Date:        date,
		NoveltyType: models.NoveltyTypePermission,
		Observation: "medical appointment",
	}
	suite.Require().NoError(suite.noveltyRepo.Create(novelty))

	found, err := suite.noveltyRepo.GetByScheduleAndDate(schedule.ID,
		date.Add(9*time.Hour))
	suite.Require().NoError(err)
	suite.Equal(novelty.ID, found.ID)
	suite.Equal("medical appointment", found.Observation)

	_, err = suite.noveltyRepo.GetByScheduleAndDate(schedule.ID,
		date.AddDate(0, 0, 1))
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *ScheduleRepositoryTestSuite) TestNoveltyUniquePerDate() {
	user := suite.createUser()
	schedule := suite.scheduleFactory.Create(user.ID)
	suite.Require().NoError(suite.repo.Create(schedule))

	date := time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)
	first := &models.Novelty{ScheduleID: schedule.ID, Date: date, NoveltyType: models.NoveltyTypeAbsence}
	suite.Require().NoError(suite.noveltyRepo.Create(first))

	duplicate := &models.Novelty{ScheduleID: schedule.ID, Date: date, NoveltyType: models.NoveltyTypeOvertime}
	err := suite.noveltyRepo.Create(duplicate)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

func TestScheduleRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleRepositoryTestSuite))
}
