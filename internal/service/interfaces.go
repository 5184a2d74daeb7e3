package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ScheduleServiceInterface defines the contract for schedule operations
type ScheduleServiceInterface interface {
	Create(req *CreateScheduleRequest) (*ScheduleResponse, error)
	GetByID(id uuid.UUID) (*ScheduleResponse, error)
	List(page, pageSize int) (*ScheduleListResponse, error)
	Delete(id uuid.UUID) error
	Preview(req *PreviewRequest) (*PreviewResponse, error)
	UpdateWorkDayTime(scheduleID uuid.UUID, req *UpdateWorkDayRequest) (*ScheduleResponse, error)
	ApplyBulkTimes(scheduleID uuid.UUID, req *BulkWorkDayTimesRequest) (*ScheduleResponse, error)
	SaveNovelty(scheduleID uuid.UUID, req *SaveNoveltyRequest) (*NoveltyResponse, error)
	ListNovelties(scheduleID uuid.UUID) ([]NoveltyResponse, error)
	DeleteNovelty(scheduleID, noveltyID uuid.UUID) error
}

// VesselDocumentServiceInterface defines the contract for vessel document operations
type VesselDocumentServiceInterface interface {
	Create(req *CreateVesselDocumentRequest) (*VesselDocumentResponse, error)
	GetByID(id uuid.UUID) (*VesselDocumentResponse, error)
	ListByVessel(vesselID uuid.UUID) ([]VesselDocumentResponse, error)
	ListExpiring(withinDays, page, pageSize int) (*VesselDocumentListResponse, error)
	Update(id uuid.UUID, req *UpdateVesselDocumentRequest) (*VesselDocumentResponse, error)
	Delete(id uuid.UUID) error
}

// compile-time conformance checks
var (
	_ ScheduleServiceInterface       = (*ScheduleService)(nil)
	_ VesselDocumentServiceInterface = (*VesselDocumentService)(nil)
)
