package payment

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"loanbook-backend/internal/domain/audit"
	loanDomain "loanbook-backend/internal/domain/loan"
	domain "loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/domain/uow"
	"loanbook-backend/internal/testutil/eventmock"
	"loanbook-backend/internal/testutil/loanmock"
	"loanbook-backend/internal/testutil/paymentmock"
	"loanbook-backend/internal/testutil/uowmock"
)

func setup(l *loanDomain.Loan) (*Usecase, *paymentmock.Repo, *eventmock.Repo) {
	loans := &loanmock.Repo{
		GetByLoanIDForUpdateFn: func(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
			if l == nil || l.LoanID != loanID {
				return nil, gorm.ErrRecordNotFound
			}
			return l, nil
		},
	}
	payments := &paymentmock.Repo{}
	events := &eventmock.Repo{}
	uc := NewUsecase(uowmock.Passthrough(uow.Repos{
		Loans: loans, Payments: payments, Events: events,
	}))
	return uc, payments, events
}

func activeLoan() *loanDomain.Loan {
	return &loanDomain.Loan{
		ID: 5, LoanID: "ln5", PrincipalMicros: 1_000_000_000,
		Status: loanDomain.StatusActive,
	}
}

func TestRecord_HappyPath(t *testing.T) {
	uc, payments, events := setup(activeLoan())
	payments.SumByLoanIDFn = func(context.Context, uint64) (int64, error) {
		return 250_000_000, nil
	}

	dto, err := uc.Record(context.Background(), RecordPaymentInput{
		LoanID: "ln5", AmountMicros: 250_000_000, ActorID: "actor1",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dto.RemainingBalanceMicros != 750_000_000 {
		t.Errorf("remaining = %d", dto.RemainingBalanceMicros)
	}
	if len(events.Appended) != 1 {
		t.Fatalf("expected one ledger entry, got %d", len(events.Appended))
	}
	ev := events.Appended[0]
	if ev.EventType != audit.EventTypePaymentReceived {
		t.Errorf("event type = %s", ev.EventType)
	}
	if ev.Description != "Payment of $25,000.00 received" {
		t.Errorf("description = %q", ev.Description)
	}
}

func TestRecord_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		loan    *loanDomain.Loan
		amount  int64
		wantErr error
	}{
		{name: "zero amount", loan: activeLoan(), amount: 0, wantErr: ErrInvalidAmount},
		{name: "negative amount", loan: activeLoan(), amount: -1, wantErr: ErrInvalidAmount},
		{name: "loan missing", loan: nil, amount: 100, wantErr: loanDomain.ErrNotFound},
		{
			name: "draft loan",
			loan: &loanDomain.Loan{ID: 6, LoanID: "ln5", Status: loanDomain.StatusDraft},
			amount: 100, wantErr: ErrLoanNotServicing,
		},
		{
			name: "paid off loan",
			loan: &loanDomain.Loan{ID: 6, LoanID: "ln5", Status: loanDomain.StatusPaidOff},
			amount: 100, wantErr: ErrLoanNotServicing,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _, events := setup(tt.loan)
			_, err := uc.Record(context.Background(), RecordPaymentInput{
				LoanID: "ln5", AmountMicros: tt.amount, ActorID: "a",
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
			if len(events.Appended) != 0 {
				t.Fatal("rejected payment must not write ledger entries")
			}
		})
	}
}

func TestRecord_ChargedOffAcceptsPayments(t *testing.T) {
	l := activeLoan()
	l.Status = loanDomain.StatusChargedOff
	uc, payments, _ := setup(l)

	created := false
	payments.CreateFn = func(ctx context.Context, p *domain.Payment) error {
		created = true
		if p.LoanID != 5 || p.AmountMicros != 100 {
			t.Fatalf("payment = %+v", p)
		}
		return nil
	}
	if _, err := uc.Record(context.Background(), RecordPaymentInput{
		LoanID: "ln5", AmountMicros: 100, ActorID: "a",
	}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !created {
		t.Fatal("payment not persisted")
	}
}
