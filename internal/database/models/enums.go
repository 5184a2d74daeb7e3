package models

// NoveltyType defines the closed set of date-scoped schedule exceptions
type NoveltyType string

const (
	NoveltyTypeAbsence        NoveltyType = "absence"
	NoveltyTypePermission     NoveltyType = "permission"
	NoveltyTypeMedicalLeave   NoveltyType = "medical_leave"
	NoveltyTypeShiftChange    NoveltyType = "shift_change"
	NoveltyTypeLateArrival    NoveltyType = "late_arrival"
	NoveltyTypeEarlyDeparture NoveltyType = "early_departure"
	NoveltyTypeOvertime       NoveltyType = "overtime"
)

// RoleCategory groups roles into a fixed set of access categories
type RoleCategory string

const (
	RoleCategoryAdministration RoleCategory = "administration"
	RoleCategoryOperations     RoleCategory = "operations"
	RoleCategoryInspection     RoleCategory = "inspection"
	RoleCategoryClientAccess   RoleCategory = "client_access"
)

// VesselType defines the types of fleet vessels
type VesselType string

const (
	VesselTypeTug       VesselType = "tug"
	VesselTypeBarge     VesselType = "barge"
	VesselTypeCargo     VesselType = "cargo"
	VesselTypeTanker    VesselType = "tanker"
	VesselTypePassenger VesselType = "passenger"
	VesselTypeSupport   VesselType = "support"
)

// DocumentStatus is the computed expiration badge of a vessel document
type DocumentStatus string

const (
	DocumentStatusValid    DocumentStatus = "valid"
	DocumentStatusWarning  DocumentStatus = "warning"
	DocumentStatusCritical DocumentStatus = "critical"
	DocumentStatusExpired  DocumentStatus = "expired"
)

// MaintenancePeriodicity defines how often a maintenance plan recurs
type MaintenancePeriodicity string

const (
	PeriodicityWeekly     MaintenancePeriodicity = "weekly"
	PeriodicityMonthly    MaintenancePeriodicity = "monthly"
	PeriodicityQuarterly  MaintenancePeriodicity = "quarterly"
	PeriodicitySemiannual MaintenancePeriodicity = "semiannual"
	PeriodicityAnnual     MaintenancePeriodicity = "annual"
)

// ManeuverType defines the types of port maneuvers
type ManeuverType string

const (
	ManeuverTypeDocking    ManeuverType = "docking"
	ManeuverTypeUndocking  ManeuverType = "undocking"
	ManeuverTypeBerthing   ManeuverType = "berthing"
	ManeuverTypeUnberthing ManeuverType = "unberthing"
	ManeuverTypeAnchorage  ManeuverType = "anchorage"
)

// ManeuverStatus defines the lifecycle states of a maneuver
type ManeuverStatus string

const (
	ManeuverStatusScheduled  ManeuverStatus = "scheduled"
	ManeuverStatusInProgress ManeuverStatus = "in_progress"
	ManeuverStatusCompleted  ManeuverStatus = "completed"
	ManeuverStatusCancelled  ManeuverStatus = "cancelled"
)

// IsValid checks if the NoveltyType is valid
func (n NoveltyType) IsValid() bool {
	switch n {
	case NoveltyTypeAbsence, NoveltyTypePermission, NoveltyTypeMedicalLeave,
		NoveltyTypeShiftChange, NoveltyTypeLateArrival, NoveltyTypeEarlyDeparture,
		NoveltyTypeOvertime:
		return true
	}
	return false
}

// IsValid checks if the RoleCategory is valid
func (r RoleCategory) IsValid() bool {
	switch r {
	case RoleCategoryAdministration, RoleCategoryOperations, RoleCategoryInspection, RoleCategoryClientAccess:
		return true
	}
	return false
}

// IsValid checks if the VesselType is valid
func (v VesselType) IsValid() bool {
	switch v {
	case VesselTypeTug, VesselTypeBarge, VesselTypeCargo, VesselTypeTanker, VesselTypePassenger, VesselTypeSupport:
		return true
	}
	return false
}

// IsValid checks if the MaintenancePeriodicity is valid
func (p MaintenancePeriodicity) IsValid() bool {
	switch p {
	case PeriodicityWeekly, PeriodicityMonthly, PeriodicityQuarterly, PeriodicitySemiannual, PeriodicityAnnual:
		return true
	}
	return false
}

// IsValid checks if the ManeuverType is valid
func (m ManeuverType) IsValid() bool {
	switch m {
	case ManeuverTypeDocking, ManeuverTypeUndocking, ManeuverTypeBerthing, ManeuverTypeUnberthing, ManeuverTypeAnchorage:
		return true
	}
	return false
}

// IsValid checks if the ManeuverStatus is valid
func (m ManeuverStatus) IsValid() bool {
	switch m {
	case ManeuverStatusScheduled, ManeuverStatusInProgress, ManeuverStatusCompleted, ManeuverStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a maneuver status change is allowed.
// Completed and cancelled maneuvers are terminal.
func (m ManeuverStatus) CanTransitionTo(next ManeuverStatus) bool {
	switch m {
	case ManeuverStatusScheduled:
		return next == ManeuverStatusInProgress || next == ManeuverStatusCancelled
	case ManeuverStatusInProgress:
		return next == ManeuverStatusCompleted || next == ManeuverStatusCancelled
	}
	return false
}
