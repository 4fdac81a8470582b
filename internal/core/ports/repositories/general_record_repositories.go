package repositories

import (
	"context"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
)

// GeneralRecordReader defines read operations for the general record
type GeneralRecordReader interface {
	FindRecordByID(ctx context.Context, recordID int64) (*domain.GeneralRecord, error)

	// ListRecords lists every row, newest first.
	ListRecords(ctx context.Context) ([]domain.GeneralRecord, error)

	// ListOpenJobs lists rows whose remark is not Delivered.
	ListOpenJobs(ctx context.Context) ([]domain.GeneralRecord, error)
}

// GeneralRecordWriter defines write operations for the general record
type GeneralRecordWriter interface {
	// SaveRecord inserts a row and sets its ID.
	SaveRecord(ctx context.Context, record *domain.GeneralRecord) error
	UpdateRecord(ctx context.Context, record domain.GeneralRecord) error
	DeleteRecord(ctx context.Context, recordID int64) error
}

// GeneralRecordRepositoryFacade combines all general record repository interfaces
type GeneralRecordRepositoryFacade interface {
	GeneralRecordReader
	GeneralRecordWriter
}
