package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/ashirovtech/shop_dashboard/internal/apperrors"
	"github.com/ashirovtech/shop_dashboard/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used by date-only request fields.
const DateLayout = "2006-01-02"

// Amount is a money input of the general record. Blank or unparseable values read as zero.
type Amount struct {
	decimal.Decimal
}

func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		d = decimal.Zero
	}
	a.Decimal = d
	return nil
}

// CreateRecordRequest adds a row to the general record.
// Profit, staff commission and net profit are derived, never accepted from the client.
type CreateRecordRequest struct {
	DateIn        string          `json:"dateIn" binding:"omitempty,datetime=2006-01-02"`
	ProductName   string          `json:"productName" binding:"max=200"`
	CustomerName  string          `json:"customerName" binding:"max=150"`
	Description   string          `json:"description"`
	Quantity      int             `json:"quantity"`
	ServiceCharge Amount          `json:"serviceCharge" swaggertype:"string"`
	PaymentMethod string          `json:"paymentMethod"`
	Location      string          `json:"location"`
	JobOwner      string          `json:"jobOwner" binding:"omitempty,oneof=In-house Personal"`
	ServicedBy    string          `json:"servicedBy"`
	ExpenseCost   Amount          `json:"expenseCost" swaggertype:"string"`
	Remark        string          `json:"remark" binding:"omitempty,oneof='Job Done' Debtor 'Work In Progress' Delivered"`
	DateOut       string          `json:"dateOut" binding:"omitempty,datetime=2006-01-02"`
	Category      string          `json:"category"`
}

// UpdateRecordRequest patches a general-record row. Nil fields are left unchanged;
// an empty date string clears the date.
type UpdateRecordRequest struct {
	DateIn        *string          `json:"dateIn"`
	ProductName   *string          `json:"productName" binding:"omitempty,max=200"`
	CustomerName  *string          `json:"customerName" binding:"omitempty,max=150"`
	Description   *string          `json:"description"`
	Quantity      *int             `json:"quantity"`
	ServiceCharge *Amount          `json:"serviceCharge" swaggertype:"string"`
	PaymentMethod *string          `json:"paymentMethod"`
	Location      *string          `json:"location"`
	JobOwner      *string          `json:"jobOwner"`
	ServicedBy    *string          `json:"servicedBy"`
	ExpenseCost   *Amount          `json:"expenseCost" swaggertype:"string"`
	Remark        *string          `json:"remark"`
	DateOut       *string          `json:"dateOut"`
	Category      *string          `json:"category"`
}

// ListRecordsParams filters the general record.
type ListRecordsParams struct {
	Month    string `form:"month" binding:"omitempty,len=2,numeric"`
	Year     string `form:"year" binding:"omitempty,len=4,numeric"`
	Customer string `form:"customer"`
}

func (p ListRecordsParams) Filter() domain.RecordFilter {
	return domain.RecordFilter{Month: p.Month, Year: p.Year, Customer: p.Customer}
}

// ToDomain builds the record described by the request. Derived fields are left zero.
func (r CreateRecordRequest) ToDomain() (domain.GeneralRecord, error) {
	dateIn, err := ParseDate(r.DateIn)
	if err != nil {
		return domain.GeneralRecord{}, err
	}
	dateOut, err := ParseDate(r.DateOut)
	if err != nil {
		return domain.GeneralRecord{}, err
	}
	return domain.GeneralRecord{
		DateIn:        dateIn,
		ProductName:   strings.TrimSpace(r.ProductName),
		CustomerName:  strings.TrimSpace(r.CustomerName),
		Description:   r.Description,
		Quantity:      r.Quantity,
		ServiceCharge: r.ServiceCharge.Decimal,
		PaymentMethod: r.PaymentMethod,
		Location:      r.Location,
		JobOwner:      domain.JobOwner(r.JobOwner),
		ServicedBy:    r.ServicedBy,
		ExpenseCost:   r.ExpenseCost.Decimal,
		Remark:        domain.Remark(r.Remark),
		DateOut:       dateOut,
		Category:      strings.TrimSpace(r.Category),
	}, nil
}

// Apply patches record with the non-nil fields of the request.
func (r UpdateRecordRequest) Apply(record *domain.GeneralRecord) error {
	if r.DateIn != nil {
		d, err := ParseDate(*r.DateIn)
		if err != nil {
			return err
		}
		record.DateIn = d
	}
	if r.DateOut != nil {
		d, err := ParseDate(*r.DateOut)
		if err != nil {
			return err
		}
		record.DateOut = d
	}
	if r.ProductName != nil {
		record.ProductName = strings.TrimSpace(*r.ProductName)
	}
	if r.CustomerName != nil {
		record.CustomerName = strings.TrimSpace(*r.CustomerName)
	}
	if r.Description != nil {
		record.Description = *r.Description
	}
	if r.Quantity != nil {
		record.Quantity = *r.Quantity
	}
	if r.ServiceCharge != nil {
		record.ServiceCharge = r.ServiceCharge.Decimal
	}
	if r.PaymentMethod != nil {
		record.PaymentMethod = *r.PaymentMethod
	}
	if r.Location != nil {
		record.Location = *r.Location
	}
	if r.JobOwner != nil {
		owner := domain.JobOwner(strings.TrimSpace(*r.JobOwner))
		if owner != domain.JobOwnerNone && owner != domain.JobOwnerInHouse && owner != domain.JobOwnerPersonal {
			return fmt.Errorf("%w: job owner must be In-house or Personal", apperrors.ErrValidation)
		}
		record.JobOwner = owner
	}
	if r.ServicedBy != nil {
		record.ServicedBy = *r.ServicedBy
	}
	if r.ExpenseCost != nil {
		record.ExpenseCost = r.ExpenseCost.Decimal
	}
	if r.Remark != nil {
		remark, ok := domain.ParseRemark(*r.Remark)
		if !ok {
			return fmt.Errorf("%w: unknown remark %q", apperrors.ErrValidation, *r.Remark)
		}
		record.Remark = remark
	}
	if r.Category != nil {
		record.Category = strings.TrimSpace(*r.Category)
	}
	return nil
}

// ParseDate parses a date-only value. An empty string is no date.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, s)
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// RecordResponse is the API view of a general-record row.
type RecordResponse struct {
	RecordID        int64           `json:"recordID"`
	DateIn          *string         `json:"dateIn"`
	ProductName     string          `json:"productName"`
	CustomerName    string          `json:"customerName"`
	Description     string          `json:"description"`
	Quantity        int             `json:"quantity"`
	ServiceCharge   decimal.Decimal `json:"serviceCharge" swaggertype:"string"`
	PaymentMethod   string          `json:"paymentMethod"`
	Location        string          `json:"location"`
	JobOwner        string          `json:"jobOwner"`
	ServicedBy      string          `json:"servicedBy"`
	ExpenseCost     decimal.Decimal `json:"expenseCost" swaggertype:"string"`
	Profit          decimal.Decimal `json:"profit" swaggertype:"string"`
	StaffCommission decimal.Decimal `json:"staffCommission" swaggertype:"string"`
	NetProfit       decimal.Decimal `json:"netProfit" swaggertype:"string"`
	Remark          string          `json:"remark"`
	DateOut         *string         `json:"dateOut"`
	Category        string          `json:"category"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// ListRecordsResponse is the filtered general record with column totals.
type ListRecordsResponse struct {
	Records              []RecordResponse `json:"records"`
	TotalServiceCharge   decimal.Decimal  `json:"totalServiceCharge" swaggertype:"string"`
	TotalExpenseCost     decimal.Decimal  `json:"totalExpenseCost" swaggertype:"string"`
	TotalProfit          decimal.Decimal  `json:"totalProfit" swaggertype:"string"`
	TotalStaffCommission decimal.Decimal  `json:"totalStaffCommission" swaggertype:"string"`
	TotalNetProfit       decimal.Decimal  `json:"totalNetProfit" swaggertype:"string"`
}

func ToRecordResponse(r *domain.GeneralRecord) RecordResponse {
	return RecordResponse{
		RecordID:        r.RecordID,
		DateIn:          formatDate(r.DateIn),
		ProductName:     r.ProductName,
		CustomerName:    r.CustomerName,
		Description:     r.Description,
		Quantity:        r.Quantity,
		ServiceCharge:   r.ServiceCharge,
		PaymentMethod:   r.PaymentMethod,
		Location:        r.Location,
		JobOwner:        string(r.JobOwner),
		ServicedBy:      r.ServicedBy,
		ExpenseCost:     r.ExpenseCost,
		Profit:          r.Profit,
		StaffCommission: r.StaffCommission,
		NetProfit:       r.NetProfit,
		Remark:          string(r.Remark),
		DateOut:         formatDate(r.DateOut),
		Category:        r.Category,
		CreatedAt:       r.CreatedAt,
	}
}

func ToRecordResponses(records []domain.GeneralRecord) []RecordResponse {
	out := make([]RecordResponse, len(records))
	for i := range records {
		out[i] = ToRecordResponse(&records[i])
	}
	return out
}

// ToListRecordsResponse adds the column totals of records.
func ToListRecordsResponse(records []domain.GeneralRecord) ListRecordsResponse {
	resp := ListRecordsResponse{
		Records:              ToRecordResponses(records),
		TotalServiceCharge:   decimal.Zero,
		TotalExpenseCost:     decimal.Zero,
		TotalProfit:          decimal.Zero,
		TotalStaffCommission: decimal.Zero,
		TotalNetProfit:       decimal.Zero,
	}
	for _, r := range records {
		resp.TotalServiceCharge = resp.TotalServiceCharge.Add(r.ServiceCharge)
		resp.TotalExpenseCost = resp.TotalExpenseCost.Add(r.ExpenseCost)
		resp.TotalProfit = resp.TotalProfit.Add(r.Profit)
		resp.TotalStaffCommission = resp.TotalStaffCommission.Add(r.StaffCommission)
		resp.TotalNetProfit = resp.TotalNetProfit.Add(r.NetProfit)
	}
	return resp
}

// JobBoardResponse groups open jobs by remark.
type JobBoardResponse struct {
	WorkInProgress []RecordResponse `json:"workInProgress"`
	JobDone        []RecordResponse `json:"jobDone"`
	Debtor         []RecordResponse `json:"debtor"`
}

func ToJobBoardResponse(b domain.JobBoard) JobBoardResponse {
	return JobBoardResponse{
		WorkInProgress: ToRecordResponses(b.WorkInProgress),
		JobDone:        ToRecordResponses(b.JobDone),
		Debtor:         ToRecordResponses(b.Debtor),
	}
}
