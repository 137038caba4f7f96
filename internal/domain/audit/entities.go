package audit

import (
	"time"

	"loanbook-backend/internal/domain/loan"
)

// EventType classifies what a ledger entry records.
type EventType string

const (
	EventTypeCreated         EventType = "created"
	EventTypeStatusChange    EventType = "status_change"
	EventTypeUpdated         EventType = "updated"
	EventTypePaymentReceived EventType = "payment_received"
)

// Event is one immutable ledger entry. Rows are append-only: no updates, no
// soft deletes. A status-change event is written in the same transaction as
// the loan state flip, so the ledger can never disagree with current status.
type Event struct {
	ID      uint64 `gorm:"primaryKey;column:id"`
	EventID string `gorm:"size:32;uniqueIndex:ux_loan_events_event_id" json:"event_id"`
	// FK to loans.id (numeric)
	LoanID    uint64    `gorm:"column:loan_id;not null;index" json:"-"`
	EventType EventType `gorm:"size:32;not null" json:"event_type"`
	// FromStatus is null only for a loan's creation event.
	FromStatus  *loan.Status `gorm:"size:20" json:"from_status,omitempty"`
	ToStatus    *loan.Status `gorm:"size:20" json:"to_status,omitempty"`
	ActorID     string       `gorm:"size:32;not null" json:"actor_id"`
	Reason      *string      `gorm:"type:text" json:"reason,omitempty"`
	Metadata    string       `gorm:"column:metadata;type:text" json:"metadata,omitempty"`
	Description string       `gorm:"type:text;not null" json:"description"`
	OccurredAt  time.Time    `gorm:"column:occurred_at;not null;index" json:"occurred_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Event) TableName() string { return "loan_events" }
