package mysql

import (
	"context"
	"testing"
	"time"

	auditDomain "loanbook-backend/internal/domain/audit"
	loanDomain "loanbook-backend/internal/domain/loan"
	"loanbook-backend/pkg/id"
)

func TestEventAppendAndList(t *testing.T) {
	db := openTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	from := loanDomain.StatusDraft
	to := loanDomain.StatusSubmitted

	events := []*auditDomain.Event{
		{
			EventID: id.NewID32(), LoanID: 1, EventType: auditDomain.EventTypeCreated,
			ToStatus: &from, ActorID: "a", OccurredAt: base,
			Description: "Loan created in Draft",
		},
		{
			EventID: id.NewID32(), LoanID: 1, EventType: auditDomain.EventTypeStatusChange,
			FromStatus: &from, ToStatus: &to, ActorID: "a", OccurredAt: base.Add(time.Hour),
			Description: "Status changed from Draft to Submitted",
		},
		{
			EventID: id.NewID32(), LoanID: 2, EventType: auditDomain.EventTypeCreated,
			ActorID: "b", OccurredAt: base, Description: "Loan created",
		},
	}
	for _, e := range events {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := repo.ListByLoanID(ctx, 1)
	if err != nil {
		t.Fatalf("ListByLoanID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}
	// oldest first
	if got[0].EventType != auditDomain.EventTypeCreated || got[1].EventType != auditDomain.EventTypeStatusChange {
		t.Errorf("wrong order: %s then %s", got[0].EventType, got[1].EventType)
	}
	if got[1].FromStatus == nil || *got[1].FromStatus != loanDomain.StatusDraft {
		t.Errorf("fromStatus = %v", got[1].FromStatus)
	}
}
