package loan

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"loanbook-backend/internal/domain/audit"
	domain "loanbook-backend/internal/domain/loan"
	"loanbook-backend/internal/domain/uow"
	"loanbook-backend/pkg/id"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

var ErrInvalidInput = errors.New("invalid loan input")

// Create opens a DRAFT loan and writes its creation ledger entry in the same
// transaction. Drafts are deliberately permissive: a zero principal or term
// is accepted here and rejected by the submission guard, not at creation.
func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*LoanDTO, error) {
	if in.PrincipalMicros < 0 || in.InterestRateBps < 0 || in.TermMonths < 0 {
		return nil, ErrInvalidInput
	}
	if in.BorrowerID != "" && len(in.BorrowerID) != 32 {
		return nil, ErrInvalidInput
	}

	now := time.Now().UTC()
	l := &domain.Loan{
		LoanID:          id.NewID32(),
		BorrowerID:      in.BorrowerID,
		PrincipalMicros: in.PrincipalMicros,
		InterestRateBps: in.InterestRateBps,
		TermMonths:      in.TermMonths,
		Status:          domain.StatusDraft,
		StatusChangedAt: now,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		status := l.Status
		ev := &audit.Event{
			EventID:    id.NewID32(),
			LoanID:     l.ID,
			EventType:  audit.EventTypeCreated,
			ToStatus:   &status,
			ActorID:    in.ActorID,
			OccurredAt: now,
			Description: audit.Describe(audit.DescribeInput{
				EventType: audit.EventTypeCreated,
				ToStatus:  &status,
			}),
		}
		return r.Events.Append(ctx, ev)
	})
	if err != nil {
		return nil, err
	}
	return toDTO(l), nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*LoanDTO, error) {
	var dto *LoanDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return err
		}
		dto = toDTO(l)
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return dto, nil
}

// Events lists a loan's ledger entries, oldest first.
func (u *Usecase) Events(ctx context.Context, loanID string) ([]EventDTO, error) {
	var out []EventDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		l, err := r.Loans.GetByLoanID(ctx, loanID)
		if err != nil {
			return err
		}
		events, err := r.Events.ListByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		out = make([]EventDTO, 0, len(events))
		for _, e := range events {
			dto := EventDTO{
				EventID:     e.EventID,
				EventType:   string(e.EventType),
				ActorID:     e.ActorID,
				Reason:      e.Reason,
				Description: e.Description,
				OccurredAt:  e.OccurredAt,
			}
			if e.FromStatus != nil {
				s := string(*e.FromStatus)
				dto.FromStatus = &s
			}
			if e.ToStatus != nil {
				s := string(*e.ToStatus)
				dto.ToStatus = &s
			}
			out = append(out, dto)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return out, nil
}
