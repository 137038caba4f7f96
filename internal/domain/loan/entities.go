package loan

import (
	"time"

	"gorm.io/gorm"
)

type Loan struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	LoanID string `gorm:"size:32;uniqueIndex:ux_loans_loan_id_active" json:"loan_id"`
	// Empty until a borrower is assigned; the submission guard enforces
	// assignment before the loan leaves DRAFT.
	BorrowerID      string    `gorm:"size:32;index:idx_loans_borrower_active" json:"borrower_id"`
	PrincipalMicros int64     `gorm:"column:principal_micros;not null" json:"principal_micros"`
	InterestRateBps int32     `gorm:"column:interest_rate_bps;not null" json:"interest_rate_bps"`
	TermMonths      int32     `gorm:"column:term_months;not null" json:"term_months"`
	Status          Status    `gorm:"size:20;default:'DRAFT'" json:"status"`
	StatusChangedAt time.Time `gorm:"column:status_changed_at" json:"status_changed_at"`

	// First-occurrence lifecycle timestamps. Each is set on first entry to
	// the corresponding status and never overwritten on re-entry.
	SubmittedAt *time.Time `gorm:"column:submitted_at" json:"submitted_at,omitempty"`
	ApprovedAt  *time.Time `gorm:"column:approved_at" json:"approved_at,omitempty"`
	DisbursedAt *time.Time `gorm:"column:disbursed_at" json:"disbursed_at,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy string         `gorm:"size:32" json:"-"`
}

func (Loan) TableName() string { return "loans" }
