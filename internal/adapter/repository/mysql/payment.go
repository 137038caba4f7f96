package mysql

import (
	"context"

	"gorm.io/gorm"

	paymentDomain "loanbook-backend/internal/domain/payment"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Where("loan_id = ?", loanNumericID).
		Order("paid_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}

// SumByLoanID totals non-deleted payments; gorm's soft-delete scope already
// filters deleted rows, COALESCE covers the no-payments case.
func (r *PaymentRepository) SumByLoanID(ctx context.Context, loanNumericID uint64) (int64, error) {
	var total int64
	res := r.db.WithContext(ctx).
		Model(&paymentDomain.Payment{}).
		Where("loan_id = ?", loanNumericID).
		Select("COALESCE(SUM(amount_micros), 0)").
		Scan(&total)
	return total, res.Error
}
