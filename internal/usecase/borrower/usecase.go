package borrower

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "loanbook-backend/internal/domain/borrower"
	"loanbook-backend/pkg/id"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

var ErrInvalidInput = errors.New("invalid borrower input")

type CreateBorrowerInput struct {
	FullName           string `json:"full_name"`
	CreditScore        *int   `json:"credit_score"`
	AnnualIncomeMicros *int64 `json:"annual_income_micros"`
	MonthlyDebtMicros  *int64 `json:"monthly_debt_micros"`
}

type BorrowerDTO struct {
	BorrowerID         string `json:"borrower_id"`
	FullName           string `json:"full_name"`
	CreditScore        *int   `json:"credit_score,omitempty"`
	AnnualIncomeMicros *int64 `json:"annual_income_micros,omitempty"`
	MonthlyDebtMicros  *int64 `json:"monthly_debt_micros,omitempty"`
}

func (u *Usecase) Create(ctx context.Context, in CreateBorrowerInput) (*BorrowerDTO, error) {
	if in.FullName == "" {
		return nil, ErrInvalidInput
	}
	if in.CreditScore != nil && (*in.CreditScore < 300 || *in.CreditScore > 850) {
		return nil, ErrInvalidInput
	}
	if in.AnnualIncomeMicros != nil && *in.AnnualIncomeMicros < 0 {
		return nil, ErrInvalidInput
	}
	if in.MonthlyDebtMicros != nil && *in.MonthlyDebtMicros < 0 {
		return nil, ErrInvalidInput
	}

	b := &domain.Borrower{
		BorrowerID:         id.NewID32(),
		FullName:           in.FullName,
		CreditScore:        in.CreditScore,
		AnnualIncomeMicros: in.AnnualIncomeMicros,
		MonthlyDebtMicros:  in.MonthlyDebtMicros,
	}
	if err := u.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return toDTO(b), nil
}

func (u *Usecase) Get(ctx context.Context, borrowerID string) (*BorrowerDTO, error) {
	b, err := u.repo.GetByBorrowerID(ctx, borrowerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(b), nil
}

func toDTO(b *domain.Borrower) *BorrowerDTO {
	return &BorrowerDTO{
		BorrowerID:         b.BorrowerID,
		FullName:           b.FullName,
		CreditScore:        b.CreditScore,
		AnnualIncomeMicros: b.AnnualIncomeMicros,
		MonthlyDebtMicros:  b.MonthlyDebtMicros,
	}
}
