package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVesselDocumentStatusAt(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC)

	expiry := func(daysFromNow int) *time.Time {
		d := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, daysFromNow)
		return &d
	}

	testCases := []struct {
		name      string
		expiresAt *time.Time
		expected  DocumentStatus
	}{
		{"no expiry", nil, DocumentStatusValid},
		{"expired yesterday", expiry(-1), DocumentStatusExpired},
		{"expires today", expiry(0), DocumentStatusCritical},
		{"expires in 30 days", expiry(30), DocumentStatusCritical},
		{"expires in 31 days", expiry(31), DocumentStatusWarning},
		{"expires in 60 days", expiry(60), DocumentStatusWarning},
		{"expires in 61 days", expiry(61), DocumentStatusValid},
		{"expires far out", expiry(365), DocumentStatusValid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			doc := &VesselDocument{ExpiresAt: tc.expiresAt}
			assert.Equal(t, tc.expected, doc.StatusAt(now))
		})
	}
}

func TestManeuverStatusTransitions(t *testing.T) {
	testCases := []struct {
		from    ManeuverStatus
		to      ManeuverStatus
		allowed bool
	}{
		{ManeuverStatusScheduled, ManeuverStatusInProgress, true},
		{ManeuverStatusScheduled, ManeuverStatusCancelled, true},
		{ManeuverStatusScheduled, ManeuverStatusCompleted, false},
		{ManeuverStatusInProgress, ManeuverStatusCompleted, true},
		{ManeuverStatusInProgress, ManeuverStatusCancelled, true},
		{ManeuverStatusInProgress, ManeuverStatusScheduled, false},
		{ManeuverStatusCompleted, ManeuverStatusScheduled, false},
		{ManeuverStatusCompleted, ManeuverStatusCancelled, false},
		{ManeuverStatusCancelled, ManeuverStatusScheduled, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestMaintenancePlanAdvance(t *testing.T) {
	due := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		periodicity MaintenancePeriodicity
		expected    time.Time
	}{
		{PeriodicityWeekly, time.Date(2024, time.February, 7, 0, 0, 0, 0, time.UTC)},
		{PeriodicityMonthly, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)}, // Jan 31 + 1 month normalizes past Feb
		{PeriodicityQuarterly, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)},
		{PeriodicitySemiannual, time.Date(2024, time.July, 31, 0, 0, 0, 0, time.UTC)},
		{PeriodicityAnnual, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(string(tc.periodicity), func(t *testing.T) {
			plan := &MaintenancePlan{Periodicity: tc.periodicity, NextDueDate: due}
			plan.Advance()
			assert.Equal(t, tc.expected, plan.NextDueDate)
		})
	}
}

func TestRoleCategoryForName(t *testing.T) {
	c, ok := CategoryForName("admin")
	assert.True(t, ok)
	assert.Equal(t, RoleCategoryAdministration, c)

	c, ok = CategoryForName("inspector")
	assert.True(t, ok)
	assert.Equal(t, RoleCategoryInspection, c)

	_, ok = CategoryForName("astronaut")
	assert.False(t, ok)
}

func TestRoleHasPermission(t *testing.T) {
	role := &Role{Permissions: []string{"schedules:write", "vessels:write"}}
	assert.True(t, role.HasPermission("schedules:write"))
	assert.False(t, role.HasPermission("users:write"))

	admin := &Role{Permissions: []string{"*"}}
	assert.True(t, admin.HasPermission("anything:at-all"))

	empty := &Role{}
	assert.False(t, empty.HasPermission("schedules:write"))
}

func TestNoveltyTypeIsValid(t *testing.T) {
	valid := []NoveltyType{
		NoveltyTypeAbsence, NoveltyTypePermission, NoveltyTypeMedicalLeave,
		NoveltyTypeShiftChange, NoveltyTypeLateArrival, NoveltyTypeEarlyDeparture,
		NoveltyTypeOvertime,
	}
	for _, nt := range valid {
		assert.True(t, nt.IsValid(), string(nt))
	}
	assert.False(t, NoveltyType("sabbatical").IsValid())
	assert.False(t, NoveltyType("").IsValid())
}
