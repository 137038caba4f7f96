package loan

import (
	"time"

	domain "loanbook-backend/internal/domain/loan"
)

type CreateLoanInput struct {
	BorrowerID      string `json:"borrower_id"`
	PrincipalMicros int64  `json:"principal_micros"`
	InterestRateBps int32  `json:"interest_rate_bps"`
	TermMonths      int32  `json:"term_months"`
	ActorID         string `json:"-"`
}

type LoanDTO struct {
	LoanID          string        `json:"loan_id"`
	BorrowerID      string        `json:"borrower_id"`
	PrincipalMicros int64         `json:"principal_micros"`
	InterestRateBps int32         `json:"interest_rate_bps"`
	TermMonths      int32         `json:"term_months"`
	Status          domain.Status `json:"status"`
	StatusChangedAt time.Time     `json:"status_changed_at"`
	SubmittedAt     *time.Time    `json:"submitted_at,omitempty"`
	ApprovedAt      *time.Time    `json:"approved_at,omitempty"`
	DisbursedAt     *time.Time    `json:"disbursed_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

type EventDTO struct {
	EventID     string    `json:"event_id"`
	EventType   string    `json:"event_type"`
	FromStatus  *string   `json:"from_status,omitempty"`
	ToStatus    *string   `json:"to_status,omitempty"`
	ActorID     string    `json:"actor_id"`
	Reason      *string   `json:"reason,omitempty"`
	Description string    `json:"description"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func toDTO(l *domain.Loan) *LoanDTO {
	return &LoanDTO{
		LoanID:          l.LoanID,
		BorrowerID:      l.BorrowerID,
		PrincipalMicros: l.PrincipalMicros,
		InterestRateBps: l.InterestRateBps,
		TermMonths:      l.TermMonths,
		Status:          l.Status,
		StatusChangedAt: l.StatusChangedAt,
		SubmittedAt:     l.SubmittedAt,
		ApprovedAt:      l.ApprovedAt,
		DisbursedAt:     l.DisbursedAt,
		CreatedAt:       l.CreatedAt,
	}
}
