package payment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"loanbook-backend/internal/domain/audit"
	loanDomain "loanbook-backend/internal/domain/loan"
	domain "loanbook-backend/internal/domain/payment"
	"loanbook-backend/internal/domain/uow"
	"loanbook-backend/internal/metrics"
	"loanbook-backend/pkg/id"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

var (
	ErrInvalidAmount = errors.New("payment amount must be positive")
	// ErrLoanNotServicing: payments only apply to funded loans.
	ErrLoanNotServicing = errors.New("loan is not in a servicing status")
)

type RecordPaymentInput struct {
	LoanID       string
	AmountMicros int64
	ActorID      string
}

type PaymentDTO struct {
	PaymentID              string    `json:"payment_id"`
	LoanID                 string    `json:"loan_id"`
	AmountMicros           int64     `json:"amount_micros"`
	PaidAt                 time.Time `json:"paid_at"`
	RemainingBalanceMicros int64     `json:"remaining_balance_micros"`
}

// servicingStatuses are the funded states a payment can be posted against.
var servicingStatuses = map[loanDomain.Status]bool{
	loanDomain.StatusActive:     true,
	loanDomain.StatusDelinquent: true,
	loanDomain.StatusDefault:    true,
	loanDomain.StatusChargedOff: true,
}

// Record posts a payment against a loan and appends the matching ledger
// entry in the same transaction. The loan row is locked so the payment
// aggregate a concurrent transition reads is never mid-write.
func (u *Usecase) Record(ctx context.Context, in RecordPaymentInput) (*PaymentDTO, error) {
	if in.AmountMicros <= 0 {
		return nil, ErrInvalidAmount
	}
	var dto *PaymentDTO

	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loanDomain.Loan) error {
		if !servicingStatuses[l.Status] {
			return ErrLoanNotServicing
		}

		now := time.Now().UTC()
		p := &domain.Payment{
			PaymentID:    id.NewID32(),
			LoanID:       l.ID,
			AmountMicros: in.AmountMicros,
			PaidAt:       now,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		ev := &audit.Event{
			EventID:    id.NewID32(),
			LoanID:     l.ID,
			EventType:  audit.EventTypePaymentReceived,
			ActorID:    in.ActorID,
			OccurredAt: now,
			Description: audit.Describe(audit.DescribeInput{
				EventType:    audit.EventTypePaymentReceived,
				AmountMicros: in.AmountMicros,
			}),
		}
		if err := r.Events.Append(ctx, ev); err != nil {
			return err
		}

		paid, err := r.Payments.SumByLoanID(ctx, l.ID)
		if err != nil {
			return err
		}
		dto = &PaymentDTO{
			PaymentID:              p.PaymentID,
			LoanID:                 l.LoanID,
			AmountMicros:           p.AmountMicros,
			PaidAt:                 p.PaidAt,
			RemainingBalanceMicros: l.PrincipalMicros - paid,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, err
	}

	metrics.PaymentsRecorded.Inc()
	return dto, nil
}
