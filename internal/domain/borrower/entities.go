package borrower

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("borrower not found")

// Borrower financials are nullable: a missing credit score or income is
// "data not collected", which the approval guards treat differently from a
// zero value.
type Borrower struct {
	ID         uint64 `gorm:"primaryKey;column:id" json:"-"`
	BorrowerID string `gorm:"size:32;uniqueIndex:ux_borrowers_borrower_id_active" json:"borrower_id"`
	FullName   string `gorm:"size:255" json:"full_name"`

	CreditScore        *int   `gorm:"column:credit_score" json:"credit_score,omitempty"`
	AnnualIncomeMicros *int64 `gorm:"column:annual_income_micros" json:"annual_income_micros,omitempty"`
	MonthlyDebtMicros  *int64 `gorm:"column:monthly_debt_micros" json:"monthly_debt_micros,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Borrower) TableName() string { return "borrowers" }
