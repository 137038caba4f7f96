package uow

import (
	"context"

	"loanbook-backend/internal/domain/audit"
	"loanbook-backend/internal/domain/borrower"
	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/payment"
)

type Repos struct {
	Loans     loan.Repository
	Borrowers borrower.Repository
	Payments  payment.Repository
	Events    audit.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the loan row first, then pass it in. Serializes
	// concurrent transitions on the same loan for the life of the tx.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
