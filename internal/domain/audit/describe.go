package audit

import (
	"fmt"
	"strings"

	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/pkg/money"
)

// DescribeInput carries everything the description formatter may use. The
// output is a formatting contract: deterministic given the same input.
type DescribeInput struct {
	EventType    EventType
	FromStatus   *loan.Status
	ToStatus     *loan.Status
	Changes      []string
	AmountMicros int64
}

// Describe renders the human-readable line stored on a ledger entry, e.g.
// "Status changed from Draft to Submitted".
func Describe(in DescribeInput) string {
	switch in.EventType {
	case EventTypeCreated:
		if in.ToStatus != nil {
			return fmt.Sprintf("Loan created in %s", in.ToStatus.Label())
		}
		return "Loan created"
	case EventTypeStatusChange:
		switch {
		case in.FromStatus != nil && in.ToStatus != nil:
			return fmt.Sprintf("Status changed from %s to %s", in.FromStatus.Label(), in.ToStatus.Label())
		case in.ToStatus != nil:
			return fmt.Sprintf("Status set to %s", in.ToStatus.Label())
		default:
			return "Status changed"
		}
	case EventTypePaymentReceived:
		return fmt.Sprintf("Payment of %s received", money.FormatDollars(in.AmountMicros))
	case EventTypeUpdated:
		if len(in.Changes) > 0 {
			return "Loan updated: " + strings.Join(in.Changes, ", ")
		}
		return "Loan updated"
	default:
		return string(in.EventType)
	}
}
