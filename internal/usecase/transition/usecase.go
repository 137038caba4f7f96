package transition

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"loanbook-backend/internal/domain/audit"
	"loanbook-backend/internal/domain/borrower"
	"loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/uow"
	"loanbook-backend/internal/metrics"
	"loanbook-backend/pkg/id"
)

// Usecase is the transition orchestrator: the one write path for loan
// status. Everything — graph check, guard evaluation, state flip, ledger
// append — runs inside a single transaction holding a row lock on the loan,
// so concurrent transitions on the same loan serialize and the ledger can
// never diverge from loan state.
type Usecase struct {
	uow uow.UnitOfWork
	cfg Config
	now func() time.Time
}

func NewUsecase(tx uow.UnitOfWork, cfg Config) *Usecase {
	return &Usecase{uow: tx, cfg: cfg, now: func() time.Time { return time.Now().UTC() }}
}

// WithClock overrides the time source; tests use this to pin timestamps.
func (u *Usecase) WithClock(now func() time.Time) *Usecase {
	u.now = now
	return u
}

// Transition moves a loan to toStatus, or returns why it cannot. No side
// effects on any failure: the row lock is taken up-front and every check
// happens inside the same transaction as the write.
func (u *Usecase) Transition(ctx context.Context, in TransitionInput) (*LoanDTO, error) {
	if u.uow == nil {
		return nil, loan.ErrStorage
	}
	start := time.Now()
	var (
		dto        *LoanDTO
		fromStatus loan.Status
	)

	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		from := l.Status
		fromStatus = from
		if !loan.ValidTransition(from, in.ToStatus) {
			return &loan.InvalidTransitionError{From: from, To: in.ToStatus, Valid: loan.NextStatuses(from)}
		}

		gctx, err := u.loadGuardContext(ctx, r, l)
		if err != nil {
			return err
		}

		if res := Evaluate(u.cfg, from, in.ToStatus, gctx); !res.Allowed {
			return &loan.GuardRejectedError{From: from, To: in.ToStatus, Reason: res.Reason}
		}

		now := u.now()
		l.Status = in.ToStatus
		l.StatusChangedAt = now
		stampFirstEntry(l, in.ToStatus, now)
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		ev, err := buildEvent(l, from, in, now)
		if err != nil {
			return err
		}
		if err := r.Events.Append(ctx, ev); err != nil {
			return err
		}

		dto = toLoanDTO(l)
		return nil
	})
	if err != nil {
		return nil, u.observeErr(err)
	}

	metrics.TransitionsApplied.WithLabelValues(string(fromStatus), string(in.ToStatus)).Inc()
	metrics.TransitionDuration.Observe(float64(time.Since(start).Milliseconds()))
	return dto, nil
}

// AvailableTransitions evaluates every graph-reachable next status for a
// loan through the same guards Transition uses, without mutating anything.
func (u *Usecase) AvailableTransitions(ctx context.Context, loanID string) (*AvailableDTO, error) {
	if u.uow == nil {
		return nil, loan.ErrStorage
	}
	var dto *AvailableDTO

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return err
		}

		gctx, err := u.loadGuardContext(ctx, r, l)
		if err != nil {
			return err
		}

		next := loan.NextStatuses(l.Status)
		opts := make([]TransitionOption, 0, len(next))
		for _, to := range next {
			res := Evaluate(u.cfg, l.Status, to, gctx)
			opt := TransitionOption{ToStatus: to, Allowed: res.Allowed}
			if res.Reason != "" {
				reason := res.Reason
				opt.Reason = &reason
			}
			opts = append(opts, opt)
		}

		dto = &AvailableDTO{LoanID: l.LoanID, CurrentStatus: l.Status, Transitions: opts}
		return nil
	})
	if err != nil {
		return nil, mapNotFound(err)
	}
	return dto, nil
}

// loadGuardContext assembles what the guards inspect: the borrower (when one
// is assigned; a dangling reference is a hard not-found) and the remaining
// balance derived from the payment aggregate.
func (u *Usecase) loadGuardContext(ctx context.Context, r uow.Repos, l *loan.Loan) (GuardContext, error) {
	gctx := GuardContext{Loan: l}

	if l.BorrowerID != "" {
		b, err := r.Borrowers.GetByBorrowerID(ctx, l.BorrowerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, borrower.ErrNotFound) {
				return gctx, borrower.ErrNotFound
			}
			return gctx, err
		}
		gctx.Borrower = b
	}

	paid, err := r.Payments.SumByLoanID(ctx, l.ID)
	if err != nil {
		return gctx, err
	}
	bal := l.PrincipalMicros - paid
	gctx.RemainingBalanceMicros = &bal
	return gctx, nil
}

// stampFirstEntry sets the first-occurrence lifecycle timestamp for statuses
// that carry one. Idempotent: an already-set timestamp is never overwritten.
func stampFirstEntry(l *loan.Loan, to loan.Status, now time.Time) {
	switch to {
	case loan.StatusSubmitted:
		if l.SubmittedAt == nil {
			l.SubmittedAt = &now
		}
	case loan.StatusApproved:
		if l.ApprovedAt == nil {
			l.ApprovedAt = &now
		}
	case loan.StatusActive:
		if l.DisbursedAt == nil {
			l.DisbursedAt = &now
		}
	}
}

func buildEvent(l *loan.Loan, from loan.Status, in TransitionInput, now time.Time) (*audit.Event, error) {
	fromCopy := from
	toCopy := in.ToStatus
	ev := &audit.Event{
		EventID:    id.NewID32(),
		LoanID:     l.ID,
		EventType:  audit.EventTypeStatusChange,
		FromStatus: &fromCopy,
		ToStatus:   &toCopy,
		ActorID:    in.ActorID,
		OccurredAt: now,
		Description: audit.Describe(audit.DescribeInput{
			EventType:  audit.EventTypeStatusChange,
			FromStatus: &fromCopy,
			ToStatus:   &toCopy,
		}),
	}
	if in.Reason != "" {
		reason := in.Reason
		ev.Reason = &reason
	}
	if len(in.Metadata) > 0 {
		raw, err := json.Marshal(in.Metadata)
		if err != nil {
			return nil, fmt.Errorf("encode transition metadata: %w", err)
		}
		ev.Metadata = string(raw)
	}
	return ev, nil
}

// observeErr maps storage sentinels to domain errors and counts the
// rejection kind.
func (u *Usecase) observeErr(err error) error {
	err = mapNotFound(err)
	switch {
	case errors.Is(err, loan.ErrNotFound), errors.Is(err, borrower.ErrNotFound):
		metrics.TransitionsRejected.WithLabelValues(metrics.KindNotFound).Inc()
	case errors.Is(err, loan.ErrInvalidTransition):
		metrics.TransitionsRejected.WithLabelValues(metrics.KindInvalidTransition).Inc()
	case errors.Is(err, loan.ErrGuardRejected):
		metrics.TransitionsRejected.WithLabelValues(metrics.KindGuardRejected).Inc()
	default:
		metrics.TransitionsRejected.WithLabelValues(metrics.KindStorage).Inc()
		return fmt.Errorf("%w: %v", loan.ErrStorage, err)
	}
	return err
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return loan.ErrNotFound
	}
	return err
}
