package transition

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"loanbook-backend/internal/domain/audit"
	"loanbook-backend/internal/domain/borrower"
	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/uow"
	"loanbook-backend/internal/testutil/borrowermock"
	"loanbook-backend/internal/testutil/eventmock"
	"loanbook-backend/internal/testutil/loanmock"
	"loanbook-backend/internal/testutil/paymentmock"
	"loanbook-backend/internal/testutil/uowmock"
)

type fixture struct {
	loans     *loanmock.Repo
	borrowers *borrowermock.Repo
	payments  *paymentmock.Repo
	events    *eventmock.Repo
	uc        *Usecase
}

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

// newFixture wires a usecase over passthrough mocks serving the given loan
// and borrower. Payments default to zero paid.
func newFixture(t *testing.T, l *loan.Loan, b *borrower.Borrower) *fixture {
	t.Helper()
	f := &fixture{
		loans:     &loanmock.Repo{},
		borrowers: &borrowermock.Repo{},
		payments:  &paymentmock.Repo{},
		events:    &eventmock.Repo{},
	}
	f.loans.GetByLoanIDForUpdateFn = func(ctx context.Context, loanID string) (*loan.Loan, error) {
		if l == nil || l.LoanID != loanID {
			return nil, gorm.ErrRecordNotFound
		}
		return l, nil
	}
	f.loans.GetByLoanIDFn = f.loans.GetByLoanIDForUpdateFn
	f.borrowers.GetByBorrowerIDFn = func(ctx context.Context, borrowerID string) (*borrower.Borrower, error) {
		if b == nil || b.BorrowerID != borrowerID {
			return nil, gorm.ErrRecordNotFound
		}
		return b, nil
	}
	tx := uowmock.Passthrough(uow.Repos{
		Loans:     f.loans,
		Borrowers: f.borrowers,
		Payments:  f.payments,
		Events:    f.events,
	})
	f.uc = NewUsecase(tx, DefaultConfig()).WithClock(func() time.Time { return testNow })
	return f
}

func draftLoan() *loan.Loan {
	return &loan.Loan{
		ID:              7,
		LoanID:          "ln1",
		BorrowerID:      "bw1",
		PrincipalMicros: 1_000_000_000,
		InterestRateBps: 600,
		TermMonths:      60,
		Status:          loan.StatusDraft,
		StatusChangedAt: testNow.Add(-24 * time.Hour),
	}
}

func goodBorrower() *borrower.Borrower {
	score := 720
	return &borrower.Borrower{BorrowerID: "bw1", CreditScore: &score}
}

func TestTransition_HappyPath(t *testing.T) {
	l := draftLoan()
	f := newFixture(t, l, goodBorrower())

	dto, err := f.uc.Transition(context.Background(), TransitionInput{
		LoanID:   "ln1",
		ToStatus: loan.StatusSubmitted,
		ActorID:  "actor1",
		Reason:   "ready for underwriting",
		Metadata: map[string]any{"channel": "web"},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dto.Status != loan.StatusSubmitted {
		t.Errorf("status = %s", dto.Status)
	}
	if !dto.StatusChangedAt.Equal(testNow) {
		t.Errorf("statusChangedAt = %v", dto.StatusChangedAt)
	}
	if dto.SubmittedAt == nil || !dto.SubmittedAt.Equal(testNow) {
		t.Errorf("submittedAt = %v", dto.SubmittedAt)
	}

	if len(f.events.Appended) != 1 {
		t.Fatalf("expected exactly one ledger entry, got %d", len(f.events.Appended))
	}
	ev := f.events.Appended[0]
	if ev.EventType != audit.EventTypeStatusChange {
		t.Errorf("event type = %s", ev.EventType)
	}
	if ev.FromStatus == nil || *ev.FromStatus != loan.StatusDraft {
		t.Errorf("fromStatus = %v", ev.FromStatus)
	}
	if ev.ToStatus == nil || *ev.ToStatus != loan.StatusSubmitted {
		t.Errorf("toStatus = %v", ev.ToStatus)
	}
	if ev.Description != "Status changed from Draft to Submitted" {
		t.Errorf("description = %q", ev.Description)
	}
	if ev.Reason == nil || *ev.Reason != "ready for underwriting" {
		t.Errorf("reason = %v", ev.Reason)
	}
	if !strings.Contains(ev.Metadata, `"channel":"web"`) {
		t.Errorf("metadata = %q", ev.Metadata)
	}
	if ev.ActorID != "actor1" || !ev.OccurredAt.Equal(testNow) {
		t.Errorf("actor/occurredAt = %s/%v", ev.ActorID, ev.OccurredAt)
	}
}

func TestTransition_LoanNotFound(t *testing.T) {
	f := newFixture(t, nil, nil)
	_, err := f.uc.Transition(context.Background(), TransitionInput{
		LoanID: "missing", ToStatus: loan.StatusSubmitted, ActorID: "a",
	})
	if !errors.Is(err, loan.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestTransition_InvalidEdge(t *testing.T) {
	l := draftLoan()
	f := newFixture(t, l, goodBorrower())

	saved := false
	f.loans.SaveFn = func(context.Context, *loan.Loan) error { saved = true; return nil }

	_, err := f.uc.Transition(context.Background(), TransitionInput{
		LoanID: "ln1", ToStatus: loan.StatusActive, ActorID: "a",
	})
	if !errors.Is(err, loan.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
	// message enumerates the valid next statuses
	for _, want := range []string{"SUBMITTED", "WITHDRAWN"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not list %s", err.Error(), want)
		}
	}
	if saved || len(f.events.Appended) != 0 {
		t.Fatal("invalid transition must leave no side effects")
	}
	if l.Status != loan.StatusDraft {
		t.Fatalf("loan status mutated to %s", l.Status)
	}
}

func TestTransition_TerminalState(t *testing.T) {
	l := draftLoan()
	l.Status = loan.StatusDenied
	f := newFixture(t, l, goodBorrower())

	_, err := f.uc.Transition(context.Background(), TransitionInput{
		LoanID: "ln1", ToStatus: loan.StatusUnderReview, ActorID: "a",
	})
	if !errors.Is(err, loan.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
	if !strings.Contains(err.Error(), "terminal") {
		t.Errorf("error %q does not mention terminal state", err.Error())
	}
}

func TestTransition_BorrowerMissing(t *testing.T) {
	l := draftLoan()
	l.BorrowerID = "dangling"
	f := newFixture(t, l, goodBorrower())

	_, err := f.uc.Transition(context.Background(), TransitionInput{
		LoanID: "ln1", ToStatus: loan.StatusSubmitted, ActorID: "a",
	})
	if !errors.Is(err, borrower.ErrNotFound) {
		t.Fatalf("want borrower.ErrNotFound, got %v", err)
	}
}

func TestTransition_GuardRejected_NoSideEffects(t *testing.T) {
	l := draftLoan()
	l.PrincipalMicros = 0
	f := newFixture(t, l, goodBorrower())

	saved := false
	f.loans.SaveFn = func(context.Context, *loan.Loan) error { saved = true; return nil }

	origChangedAt := l.StatusChangedAt
	_, err := f.uc.Transition(context.Background(), TransitionInput{
		LoanID: "ln1", ToStatus: loan.StatusSubmitted, ActorID: "a",
	})
	if !errors.Is(err, loan.ErrGuardRejected) {
		t.Fatalf("want ErrGuardRejected, got %v", err)
	}
	var guardErr *loan.GuardRejectedError
	if !errors.As(err, &guardErr) || !strings.Contains(guardErr.Reason, "Principal") {
		t.Fatalf("reason missing from %v", err)
	}
	if saved || len(f.events.Appended) != 0 {
		t.Fatal("rejected transition must leave no side effects")
	}
	if l.Status != loan.StatusDraft || !l.StatusChangedAt.Equal(origChangedAt) {
		t.Fatal("loan mutated despite rejection")
	}
}

func TestTransition_PayOffUsesPaymentAggregate(t *testing.T) {
	l := draftLoan()
	l.Status = loan.StatusActive
	f := newFixture(t, l, goodBorrower())

	// only half paid back
	f.payments.SumByLoanIDFn = func(context.Context, uint64) (int64, error) {
		return 500_000_000, nil
	}
	_, err := f.uc.Transition(context.Background(), TransitionInput{
		LoanID: "ln1", ToStatus: loan.StatusPaidOff, ActorID: "a",
	})
	if !errors.Is(err, loan.ErrGuardRejected) {
		t.Fatalf("want guard rejection, got %v", err)
	}
	if !strings.Contains(err.Error(), "Remaining balance") {
		t.Errorf("error %q does not mention the balance", err.Error())
	}

	// fully paid
	f.payments.SumByLoanIDFn = func(context.Context, uint64) (int64, error) {
		return 1_000_000_000, nil
	}
	dto, err := f.uc.Transition(context.Background(), TransitionInput{
		LoanID: "ln1", ToStatus: loan.StatusPaidOff, ActorID: "a",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dto.Status != loan.StatusPaidOff {
		t.Errorf("status = %s", dto.Status)
	}
}

func TestTransition_FirstEntryTimestampsIdempotent(t *testing.T) {
	earlier := testNow.Add(-30 * 24 * time.Hour)
	l := draftLoan()
	l.Status = loan.StatusApproved
	l.SubmittedAt = &earlier
	l.ApprovedAt = &earlier
	l.DisbursedAt = &earlier // loan was ACTIVE once before (e.g. refi rollback path)
	f := newFixture(t, l, goodBorrower())

	dto, err := f.uc.Transition(context.Background(), TransitionInput{
		LoanID: "ln1", ToStatus: loan.StatusActive, ActorID: "a",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !dto.DisbursedAt.Equal(earlier) {
		t.Fatalf("disbursedAt overwritten: %v", dto.DisbursedAt)
	}
	if !dto.SubmittedAt.Equal(earlier) || !dto.ApprovedAt.Equal(earlier) {
		t.Fatal("unrelated first-entry timestamps mutated")
	}

	// A second APPROVED→ACTIVE attempt fails structurally (ACTIVE has no
	// self-loop) and must not touch the timestamp either.
	_, err = f.uc.Transition(context.Background(), TransitionInput{
		LoanID: "ln1", ToStatus: loan.StatusActive, ActorID: "a",
	})
	if !errors.Is(err, loan.ErrInvalidTransition) {
		t.Fatalf("want ErrInvalidTransition, got %v", err)
	}
	if !l.DisbursedAt.Equal(earlier) {
		t.Fatal("disbursedAt reset by failed re-entry")
	}
}

func TestTransition_StorageFailureWrapped(t *testing.T) {
	l := draftLoan()
	f := newFixture(t, l, goodBorrower())
	f.loans.SaveFn = func(context.Context, *loan.Loan) error { return errors.New("disk on fire") }

	_, err := f.uc.Transition(context.Background(), TransitionInput{
		LoanID: "ln1", ToStatus: loan.StatusSubmitted, ActorID: "a",
	})
	if !errors.Is(err, loan.ErrStorage) {
		t.Fatalf("want ErrStorage, got %v", err)
	}
}

func TestAvailableTransitions_MatchesGuards(t *testing.T) {
	l := draftLoan()
	l.Status = loan.StatusUnderReview
	score := 580
	b := &borrower.Borrower{BorrowerID: "bw1", CreditScore: &score}
	f := newFixture(t, l, b)

	dto, err := f.uc.AvailableTransitions(context.Background(), "ln1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if dto.CurrentStatus != loan.StatusUnderReview {
		t.Errorf("currentStatus = %s", dto.CurrentStatus)
	}
	if len(dto.Transitions) != 3 {
		t.Fatalf("expected 3 options, got %d", len(dto.Transitions))
	}

	byTarget := map[loan.Status]TransitionOption{}
	for _, opt := range dto.Transitions {
		byTarget[opt.ToStatus] = opt
	}
	approve := byTarget[loan.StatusApproved]
	if approve.Allowed {
		t.Error("approval must be blocked for a 580 score")
	}
	if approve.Reason == nil || !strings.Contains(*approve.Reason, "580") {
		t.Errorf("approval reason = %v", approve.Reason)
	}
	for _, target := range []loan.Status{loan.StatusDenied, loan.StatusInfoRequested} {
		opt := byTarget[target]
		if !opt.Allowed || opt.Reason != nil {
			t.Errorf("%s: allowed=%v reason=%v", target, opt.Allowed, opt.Reason)
		}
	}

	// Parity: the mutating path must agree with the listing.
	_, err = f.uc.Transition(context.Background(), TransitionInput{
		LoanID: "ln1", ToStatus: loan.StatusApproved, ActorID: "a",
	})
	if !errors.Is(err, loan.ErrGuardRejected) {
		t.Fatalf("Transition disagrees with AvailableTransitions: %v", err)
	}
}

func TestAvailableTransitions_Terminal(t *testing.T) {
	l := draftLoan()
	l.Status = loan.StatusPaidOff
	f := newFixture(t, l, goodBorrower())

	dto, err := f.uc.AvailableTransitions(context.Background(), "ln1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(dto.Transitions) != 0 {
		t.Fatalf("terminal loan lists %d options", len(dto.Transitions))
	}
}

func TestAvailableTransitions_NotFound(t *testing.T) {
	f := newFixture(t, nil, nil)
	_, err := f.uc.AvailableTransitions(context.Background(), "missing")
	if !errors.Is(err, loan.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
