package transition

import (
	"fmt"

	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/pkg/money"
)

// edge keys the guard table by the ordered (from, to) status pair. Typed
// keys instead of concatenated strings: the compiler catches a bad status
// where a string key would silently never match.
type edge struct {
	from, to loan.Status
}

type guardFunc func(cfg Config, ctx GuardContext) GuardResult

// guards holds the business rules gating structurally valid transitions.
// A graph-valid pair with no entry here is allowed: the graph already gated
// structural validity, so absence of a guard is not absence of permission.
var guards = map[edge]guardFunc{
	{loan.StatusDraft, loan.StatusSubmitted}:      guardSubmit,
	{loan.StatusUnderReview, loan.StatusApproved}: guardApprove,
	{loan.StatusActive, loan.StatusPaidOff}:       guardPayOff,
}

// Evaluate runs the guard registered for (from, to), if any, against ctx.
func Evaluate(cfg Config, from, to loan.Status, ctx GuardContext) GuardResult {
	g, ok := guards[edge{from, to}]
	if !ok {
		return GuardResult{Allowed: true}
	}
	return g(cfg, ctx)
}

func allow() GuardResult { return GuardResult{Allowed: true} }

func reject(reason string) GuardResult { return GuardResult{Allowed: false, Reason: reason} }

// guardSubmit checks that a draft is complete enough to enter underwriting.
func guardSubmit(_ Config, ctx GuardContext) GuardResult {
	l := ctx.Loan
	if l.BorrowerID == "" {
		return reject("Borrower must be assigned before submission")
	}
	if l.PrincipalMicros <= 0 {
		return reject("Principal amount must be greater than zero")
	}
	if l.InterestRateBps < 0 {
		return reject("Interest rate cannot be negative")
	}
	if l.TermMonths < 1 {
		return reject("Term must be at least 1 month")
	}
	return allow()
}

// guardApprove enforces the underwriting thresholds: minimum credit score,
// and when income data exists, a debt-to-income ceiling. A borrower with no
// income on file skips the DTI check entirely; missing income data is not a
// rejection.
func guardApprove(cfg Config, ctx GuardContext) GuardResult {
	b := ctx.Borrower
	if b == nil || b.CreditScore == nil {
		return reject("Credit score is required for approval")
	}
	if *b.CreditScore < cfg.MinCreditScore {
		return reject(fmt.Sprintf("Credit score %d is below the minimum %d required for approval",
			*b.CreditScore, cfg.MinCreditScore))
	}
	payment := money.MonthlyPayment(ctx.Loan.PrincipalMicros, ctx.Loan.InterestRateBps, ctx.Loan.TermMonths)
	dti, ok := money.DebtToIncomeRatio(b.AnnualIncomeMicros, b.MonthlyDebtMicros, payment)
	if ok && dti > cfg.MaxDTIRatio {
		return reject(fmt.Sprintf("Debt-to-income ratio %.2f exceeds the maximum %.2f allowed",
			dti, cfg.MaxDTIRatio))
	}
	return allow()
}

// guardPayOff requires a zero remaining balance. A context with no balance
// at all is a manual override and passes; only a known-positive balance
// blocks the payoff.
func guardPayOff(_ Config, ctx GuardContext) GuardResult {
	if ctx.RemainingBalanceMicros == nil {
		return allow()
	}
	if bal := *ctx.RemainingBalanceMicros; bal > 0 {
		return reject(fmt.Sprintf("Remaining balance of %s must be zero before the loan can be marked paid off",
			money.FormatDollars(bal)))
	}
	return allow()
}
