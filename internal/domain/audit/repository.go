package audit

import "context"

type Repository interface {
	// Append writes one ledger entry. There is deliberately no update or
	// delete: the ledger is append-only.
	Append(ctx context.Context, e *Event) error
	ListByLoanID(ctx context.Context, loanNumericID uint64) ([]Event, error)
}
