package paymentmock

import (
	"context"

	domain "loanbook-backend/internal/domain/payment"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// SumByLoanID defaults to 0 so transition tests don't have to stub it.
type Repo struct {
	CreateFn       func(ctx context.Context, p *domain.Payment) error
	ListByLoanIDFn func(ctx context.Context, loanNumericID uint64) ([]domain.Payment, error)
	SumByLoanIDFn  func(ctx context.Context, loanNumericID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]domain.Payment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanNumericID)
	}
	return nil, nil
}

func (m *Repo) SumByLoanID(ctx context.Context, loanNumericID uint64) (int64, error) {
	if m.SumByLoanIDFn != nil {
		return m.SumByLoanIDFn(ctx, loanNumericID)
	}
	return 0, nil
}
