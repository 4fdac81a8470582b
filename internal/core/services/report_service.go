package services

import (
	"context"
	"fmt"

	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	portsrepo "github.com/ashirovtech/shop_dashboard/internal/core/ports/repositories"
	portssvc "github.com/ashirovtech/shop_dashboard/internal/core/ports/services"
)

// ReportService builds the job board of the reports page.
type ReportService struct {
	BaseService
	recordRepo portsrepo.GeneralRecordReader
}

func NewReportService(recordRepo portsrepo.GeneralRecordReader) *ReportService {
	return &ReportService{recordRepo: recordRepo}
}

var _ portssvc.ReportSvcFacade = (*ReportService)(nil)

func (s *ReportService) GetJobBoard(ctx context.Context) (*domain.JobBoard, error) {
	records, err := s.recordRepo.ListOpenJobs(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list open jobs")
		return nil, fmt.Errorf("failed to build job board: %w", err)
	}
	board := domain.NewJobBoard(records)
	return &board, nil
}
