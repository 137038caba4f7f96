package transition

import (
	"time"

	"loanbook-backend/internal/domain/borrower"
	"loanbook-backend/internal/domain/loan"
)

// Contract constants. These defaults are part of the API contract with
// callers; tests may inject different thresholds via Config.
const (
	MinCreditScoreForApproval = 620
	MaxDTIRatio               = 0.43
)

// Config carries the guard thresholds. Injected at construction so tests can
// substitute values without process-wide side effects.
type Config struct {
	MinCreditScore int
	MaxDTIRatio    float64
}

func DefaultConfig() Config {
	return Config{
		MinCreditScore: MinCreditScoreForApproval,
		MaxDTIRatio:    MaxDTIRatio,
	}
}

// GuardContext is everything a guard may inspect. RemainingBalanceMicros is
// a pointer on purpose: nil means the caller supplied no balance, which the
// payoff guard treats as a manual override (distinct from a known zero).
type GuardContext struct {
	Loan                   *loan.Loan
	Borrower               *borrower.Borrower
	RemainingBalanceMicros *int64
}

// GuardResult is the outcome of one guard evaluation. Never persisted.
type GuardResult struct {
	Allowed bool
	Reason  string
}

type TransitionInput struct {
	LoanID   string
	ToStatus loan.Status
	ActorID  string
	Reason   string
	Metadata map[string]any
}

type LoanDTO struct {
	LoanID          string      `json:"loan_id"`
	BorrowerID      string      `json:"borrower_id"`
	PrincipalMicros int64       `json:"principal_micros"`
	InterestRateBps int32       `json:"interest_rate_bps"`
	TermMonths      int32       `json:"term_months"`
	Status          loan.Status `json:"status"`
	StatusChangedAt time.Time   `json:"status_changed_at"`
	SubmittedAt     *time.Time  `json:"submitted_at,omitempty"`
	ApprovedAt      *time.Time  `json:"approved_at,omitempty"`
	DisbursedAt     *time.Time  `json:"disbursed_at,omitempty"`
}

// TransitionOption is one entry in an available-transitions listing: a
// graph-reachable next status plus the guard verdict for it.
type TransitionOption struct {
	ToStatus loan.Status `json:"to_status"`
	Allowed  bool        `json:"allowed"`
	Reason   *string     `json:"reason"`
}

type AvailableDTO struct {
	LoanID        string             `json:"loan_id"`
	CurrentStatus loan.Status        `json:"current_status"`
	Transitions   []TransitionOption `json:"transitions"`
}

func toLoanDTO(l *loan.Loan) *LoanDTO {
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
	}
}
