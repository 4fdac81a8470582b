package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/apperrors"
	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	portsrepo "github.com/ashirovtech/shop_dashboard/internal/core/ports/repositories"
	portssvc "github.com/ashirovtech/shop_dashboard/internal/core/ports/services"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
	"github.com/ashirovtech/shop_dashboard/internal/utils/accounting"
)

// RecordService manages the general record.
type RecordService struct {
	BaseService
	recordRepo portsrepo.GeneralRecordRepositoryFacade
}

func NewRecordService(recordRepo portsrepo.GeneralRecordRepositoryFacade) *RecordService {
	return &RecordService{recordRepo: recordRepo}
}

var _ portssvc.RecordSvcFacade = (*RecordService)(nil)

func (s *RecordService) ListRecords(ctx context.Context, params dto.ListRecordsParams) ([]domain.GeneralRecord, error) {
	records, err := s.recordRepo.ListRecords(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list general records")
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	filter := params.Filter()
	filtered := make([]domain.GeneralRecord, 0, len(records))
	for _, r := range records {
		if filter.Matches(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

func (s *RecordService) CreateRecord(ctx context.Context, req dto.CreateRecordRequest, creatorUserID string) (*domain.GeneralRecord, error) {
	record, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	accounting.ApplyCommission(&record)
	record.AuditFields = domain.NewAuditFields(creatorUserID, time.Now())

	if err := s.recordRepo.SaveRecord(ctx, &record); err != nil {
		s.LogError(ctx, err, "Failed to save general record")
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	s.LogInfo(ctx, "General record created", slog.Int64("record_id", record.RecordID))
	return &record, nil
}

// UpdateRecord edits a draft of the stored row. The stored row is untouched unless the draft differs.
func (s *RecordService) UpdateRecord(ctx context.Context, recordID int64, req dto.UpdateRecordRequest, requestingUserID string) (*domain.GeneralRecord, error) {
	original, err := s.recordRepo.FindRecordByID(ctx, recordID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find general record", slog.Int64("record_id", recordID))
		}
		return nil, fmt.Errorf("failed to get record %d: %w", recordID, err)
	}

	edit := domain.BeginEdit(*original)
	if err := req.Apply(&edit.Draft); err != nil {
		return nil, err
	}
	accounting.ApplyCommission(&edit.Draft)

	if !edit.Dirty() {
		s.LogDebug(ctx, "General record unchanged, skipping update", slog.Int64("record_id", recordID))
		return &edit.Original, nil
	}

	edit.Draft.Touch(requestingUserID, time.Now())
	if err := s.recordRepo.UpdateRecord(ctx, edit.Draft); err != nil {
		s.LogError(ctx, err, "Failed to update general record", slog.Int64("record_id", recordID))
		return nil, fmt.Errorf("failed to update record %d: %w", recordID, err)
	}

	s.LogInfo(ctx, "General record updated", slog.Int64("record_id", recordID))
	return &edit.Draft, nil
}

func (s *RecordService) DeleteRecord(ctx context.Context, recordID int64) error {
	if err := s.recordRepo.DeleteRecord(ctx, recordID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete general record", slog.Int64("record_id", recordID))
		}
		return fmt.Errorf("failed to delete record %d: %w", recordID, err)
	}
	s.LogInfo(ctx, "General record deleted", slog.Int64("record_id", recordID))
	return nil
}
