package services

import (
	"context"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
)

// RecordSvcFacade manages the general record. Every write recomputes the row's commission.
type RecordSvcFacade interface {
	ListRecords(ctx context.Context, params dto.ListRecordsParams) ([]domain.GeneralRecord, error)
	CreateRecord(ctx context.Context, req dto.CreateRecordRequest, creatorUserID string) (*domain.GeneralRecord, error)

	// UpdateRecord applies req to a draft of the stored row and persists it only if it changed.
	UpdateRecord(ctx context.Context, recordID int64, req dto.UpdateRecordRequest, requestingUserID string) (*domain.GeneralRecord, error)
	DeleteRecord(ctx context.Context, recordID int64) error
}

// ReportSvcFacade builds the reports page.
type ReportSvcFacade interface {
	// GetJobBoard groups open jobs by remark. Delivered jobs are excluded.
	GetJobBoard(ctx context.Context) (*domain.JobBoard, error)
}
