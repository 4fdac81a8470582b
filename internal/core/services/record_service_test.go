package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/apperrors"
	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	"github.com/ashirovtech/shop_dashboard/internal/core/services"
	"github.com/ashirovtech/shop_dashboard/internal/dto"
	"github.com/ashirovtech/shop_dashboard/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RecordServiceTestSuite struct {
	suite.Suite
	mockRepo *MockRecordRepository
	service  *services.RecordService
	reports  *services.ReportService
}

func (suite *RecordServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockRecordRepository)
	suite.service = services.NewRecordService(suite.mockRepo)
	suite.reports = services.NewReportService(suite.mockRepo)
}

func storedRecord() *domain.GeneralRecord {
	dateIn := time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC)
	r := &domain.GeneralRecord{
		RecordID:      7,
		DateIn:        &dateIn,
		CustomerName:  "Chidi",
		ProductName:   "HP EliteBook",
		Description:   "Screen replacement",
		Quantity:      1,
		ServiceCharge: decimal.NewFromInt(1000),
		ExpenseCost:   decimal.NewFromInt(400),
		JobOwner:      domain.JobOwnerPersonal,
		Remark:        domain.RemarkWorkInProgress,
	}
	accounting.ApplyCommission(r)
	return r
}

func (suite *RecordServiceTestSuite) TestCreateRecord_DerivesCommission() {
	ctx := context.Background()
	req := dto.CreateRecordRequest{
		DateIn:        "2025-04-02",
		CustomerName:  "Chidi",
		ServiceCharge: dto.NewAmount(decimal.NewFromInt(1000)),
		ExpenseCost:   dto.NewAmount(decimal.NewFromInt(400)),
		JobOwner:      "In-house",
		Remark:        "Work In Progress",
	}
	suite.mockRepo.On("SaveRecord", ctx, mock.AnythingOfType("*domain.GeneralRecord")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.GeneralRecord).RecordID = 21
		}).Return(nil).Once()

	record, err := suite.service.CreateRecord(ctx, req, "user-1")

	suite.Require().NoError(err)
	suite.Equal(int64(21), record.RecordID)
	suite.True(record.Profit.Equal(decimal.NewFromInt(600)))
	suite.True(record.StaffCommission.Equal(decimal.NewFromInt(30)))
	suite.True(record.NetProfit.Equal(decimal.NewFromInt(570)))
	suite.Equal("user-1", record.CreatedBy)
}

func (suite *RecordServiceTestSuite) TestCreateRecord_BadDate() {
	_, err := suite.service.CreateRecord(context.Background(), dto.CreateRecordRequest{DateIn: "02/04/2025"}, "user-1")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveRecord", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_RecomputesCommissionForThatRow() {
	ctx := context.Background()
	charge := dto.NewAmount(decimal.NewFromInt(2000))
	suite.mockRepo.On("FindRecordByID", ctx, int64(7)).Return(storedRecord(), nil).Once()
	suite.mockRepo.On("UpdateRecord", ctx, mock.MatchedBy(func(r domain.GeneralRecord) bool {
		return r.RecordID == 7 &&
			r.Profit.Equal(decimal.NewFromInt(1600)) &&
			r.StaffCommission.Equal(decimal.NewFromInt(320)) &&
			r.NetProfit.Equal(decimal.NewFromInt(1280)) &&
			r.LastUpdatedBy == "user-2"
	})).Return(nil).Once()

	updated, err := suite.service.UpdateRecord(ctx, 7, dto.UpdateRecordRequest{ServiceCharge: &charge}, "user-2")

	suite.Require().NoError(err)
	suite.True(updated.NetProfit.Equal(decimal.NewFromInt(1280)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_UnchangedDraftIsNotWritten() {
	ctx := context.Background()
	customer := "Chidi"
	suite.mockRepo.On("FindRecordByID", ctx, int64(7)).Return(storedRecord(), nil).Once()

	updated, err := suite.service.UpdateRecord(ctx, 7, dto.UpdateRecordRequest{CustomerName: &customer}, "user-2")

	suite.Require().NoError(err)
	suite.Equal(int64(7), updated.RecordID)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRecord", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestUpdateRecord_UnknownRemark() {
	ctx := context.Background()
	remark := "Lost"
	suite.mockRepo.On("FindRecordByID", ctx, int64(7)).Return(storedRecord(), nil).Once()

	_, err := suite.service.UpdateRecord(ctx, 7, dto.UpdateRecordRequest{Remark: &remark}, "user-2")

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateRecord", mock.Anything, mock.Anything)
}

func (suite *RecordServiceTestSuite) TestListRecords_Filters() {
	ctx := context.Background()
	march := time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	april := time.Date(2025, time.April, 5, 0, 0, 0, 0, time.UTC)
	rows := []domain.GeneralRecord{
		{RecordID: 1, CustomerName: "Chidi Okafor", DateIn: &april},
		{RecordID: 2, CustomerName: "Bola", DateIn: &april},
		{RecordID: 3, CustomerName: "chidi", DateIn: &march},
		{RecordID: 4, CustomerName: "Chidi"},
	}
	suite.mockRepo.On("ListRecords", ctx).Return(rows, nil)

	records, err := suite.service.ListRecords(ctx, dto.ListRecordsParams{Month: "04", Year: "2025", Customer: "CHIDI"})

	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal(int64(1), records[0].RecordID)

	all, err := suite.service.ListRecords(ctx, dto.ListRecordsParams{})
	suite.Require().NoError(err)
	suite.Len(all, 4)
}

func (suite *RecordServiceTestSuite) TestDeleteRecord_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteRecord", ctx, int64(3)).Return(apperrors.ErrNotFound).Once()

	suite.ErrorIs(suite.service.DeleteRecord(ctx, 3), apperrors.ErrNotFound)
}

func (suite *RecordServiceTestSuite) TestGetJobBoard() {
	ctx := context.Background()
	suite.mockRepo.On("ListOpenJobs", ctx).Return([]domain.GeneralRecord{
		{RecordID: 1, Remark: domain.RemarkWorkInProgress},
		{RecordID: 2, Remark: domain.RemarkDebtor},
		{RecordID: 3, Remark: domain.RemarkJobDone},
		{RecordID: 4, Remark: domain.RemarkNone},
	}, nil).Once()

	board, err := suite.reports.GetJobBoard(ctx)

	suite.Require().NoError(err)
	suite.Len(board.WorkInProgress, 1)
	suite.Len(board.Debtor, 1)
	suite.Len(board.JobDone, 1)
}

func TestRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecordServiceTestSuite))
}
