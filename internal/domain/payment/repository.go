package payment

import "context"

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	ListByLoanID(ctx context.Context, loanNumericID uint64) ([]Payment, error)
	// SumByLoanID totals non-deleted payment amounts for a loan; 0 when the
	// loan has no payments.
	SumByLoanID(ctx context.Context, loanNumericID uint64) (int64, error)
}
