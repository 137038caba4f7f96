package eventmock

import (
	"context"

	domain "loanbook-backend/internal/domain/audit"
)

// Repo is a function-backed mock that satisfies audit.Repository. Append
// defaults to collecting events in Appended so tests can assert on the
// ledger without stubbing anything.
type Repo struct {
	AppendFn       func(ctx context.Context, e *domain.Event) error
	ListByLoanIDFn func(ctx context.Context, loanNumericID uint64) ([]domain.Event, error)

	Appended []*domain.Event
}

func (m *Repo) Append(ctx context.Context, e *domain.Event) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	m.Appended = append(m.Appended, e)
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanNumericID uint64) ([]domain.Event, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanNumericID)
	}
	out := make([]domain.Event, 0, len(m.Appended))
	for _, e := range m.Appended {
		if e.LoanID == loanNumericID {
			out = append(out, *e)
		}
	}
	return out, nil
}
