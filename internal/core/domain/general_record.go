package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// JobOwner decides the staff commission rate of a service job.
type JobOwner string

const (
	JobOwnerNone     JobOwner = ""
	JobOwnerInHouse  JobOwner = "In-house"
	JobOwnerPersonal JobOwner = "Personal"
)

// Remark is the workflow status of a service job.
type Remark string

const (
	RemarkNone           Remark = ""
	RemarkJobDone        Remark = "Job Done"
	RemarkDebtor         Remark = "Debtor"
	RemarkWorkInProgress Remark = "Work In Progress"
	RemarkDelivered      Remark = "Delivered"
)

// ParseRemark matches s case-insensitively against the known remarks.
func ParseRemark(s string) (Remark, bool) {
	for _, r := range []Remark{RemarkNone, RemarkJobDone, RemarkDebtor, RemarkWorkInProgress, RemarkDelivered} {
		if strings.EqualFold(strings.TrimSpace(s), string(r)) {
			return r, true
		}
	}
	return "", false
}

// GeneralRecord is one row of the general-record sheet: a service job,
// or a GOODS IN / GOODS OUT movement with a vendor.
type GeneralRecord struct {
	RecordID        int64           `json:"recordID"`
	DateIn          *time.Time      `json:"dateIn"`
	ProductName     string          `json:"productName"`
	CustomerName    string          `json:"customerName"`
	Description     string          `json:"description"`
	Quantity        int             `json:"quantity"`
	ServiceCharge   decimal.Decimal `json:"serviceCharge"`
	PaymentMethod   string          `json:"paymentMethod"`
	Location        string          `json:"location"`
	JobOwner        JobOwner        `json:"jobOwner"`
	ServicedBy      string          `json:"servicedBy"`
	ExpenseCost     decimal.Decimal `json:"expenseCost"`
	Profit          decimal.Decimal `json:"profit"`
	StaffCommission decimal.Decimal `json:"staffCommission"`
	NetProfit       decimal.Decimal `json:"netProfit"`
	Remark          Remark          `json:"remark"`
	DateOut         *time.Time      `json:"dateOut"`
	Category        string          `json:"category"`
	AuditFields
}

// SameContent compares the stored fields of two records, audit fields excluded.
func (r GeneralRecord) SameContent(o GeneralRecord) bool {
	return r.RecordID == o.RecordID &&
		sameDate(r.DateIn, o.DateIn) &&
		r.ProductName == o.ProductName &&
		r.CustomerName == o.CustomerName &&
		r.Description == o.Description &&
		r.Quantity == o.Quantity &&
		r.ServiceCharge.Equal(o.ServiceCharge) &&
		r.PaymentMethod == o.PaymentMethod &&
		r.Location == o.Location &&
		r.JobOwner == o.JobOwner &&
		r.ServicedBy == o.ServicedBy &&
		r.ExpenseCost.Equal(o.ExpenseCost) &&
		r.Profit.Equal(o.Profit) &&
		r.StaffCommission.Equal(o.StaffCommission) &&
		r.NetProfit.Equal(o.NetProfit) &&
		r.Remark == o.Remark &&
		sameDate(r.DateOut, o.DateOut) &&
		r.Category == o.Category
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// RecordFilter narrows the general-record sheet. Empty fields mean no restriction.
type RecordFilter struct {
	Month    string // "01".."12"
	Year     string // "2025"
	Customer string // case-insensitive substring
}

// Matches reports whether r passes every active filter. Rows without a date in
// never match an active month or year filter.
func (f RecordFilter) Matches(r GeneralRecord) bool {
	if f.Month != "" {
		if r.DateIn == nil || fmt.Sprintf("%02d", int(r.DateIn.Month())) != f.Month {
			return false
		}
	}
	if f.Year != "" {
		if r.DateIn == nil || fmt.Sprintf("%d", r.DateIn.Year()) != f.Year {
			return false
		}
	}
	if f.Customer != "" && !containsFold(r.CustomerName, f.Customer) {
		return false
	}
	return true
}

// JobBoard groups open service jobs by status. Delivered jobs are left out.
type JobBoard struct {
	WorkInProgress []GeneralRecord `json:"workInProgress"`
	JobDone        []GeneralRecord `json:"jobDone"`
	Debtor         []GeneralRecord `json:"debtor"`
}

// NewJobBoard sorts records into the board columns.
func NewJobBoard(records []GeneralRecord) JobBoard {
	board := JobBoard{
		WorkInProgress: []GeneralRecord{},
		JobDone:        []GeneralRecord{},
		Debtor:         []GeneralRecord{},
	}
	for _, r := range records {
		remark, _ := ParseRemark(string(r.Remark))
		switch remark {
		case RemarkWorkInProgress:
			board.WorkInProgress = append(board.WorkInProgress, r)
		case RemarkJobDone:
			board.JobDone = append(board.JobDone, r)
		case RemarkDebtor:
			board.Debtor = append(board.Debtor, r)
		}
	}
	return board
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
