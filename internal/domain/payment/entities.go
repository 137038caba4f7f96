package payment

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("payment not found")

type Payment struct {
	ID        uint64 `gorm:"primaryKey;column:id"`
	PaymentID string `gorm:"size:32;uniqueIndex:ux_payments_payment_id_active" json:"payment_id"`
	// FK to loans.id (numeric)
	LoanID       uint64    `gorm:"column:loan_id;not null;index" json:"-"`
	AmountMicros int64     `gorm:"column:amount_micros;not null" json:"amount_micros"`
	PaidAt       time.Time `gorm:"column:paid_at" json:"paid_at"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	DeletedBy string         `gorm:"size:32" json:"-"`
}

func (Payment) TableName() string { return "payments" }
