package borrower

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	domain "loanbook-backend/internal/domain/borrower"
	"loanbook-backend/internal/testutil/borrowermock"
)

func intPtr(v int) *int     { return &v }
func i64Ptr(v int64) *int64 { return &v }

func TestUsecase_Create(t *testing.T) {
	tests := []struct {
		name    string
		in      CreateBorrowerInput
		wantErr error
	}{
		{
			name: "full financials",
			in: CreateBorrowerInput{
				FullName:           "Ada Lovelace",
				CreditScore:        intPtr(720),
				AnnualIncomeMicros: i64Ptr(800_000_000),
				MonthlyDebtMicros:  i64Ptr(10_000_000),
			},
		},
		{
			// financials are optional; missing data is legal and the
			// approval guard decides what it means
			name: "name only",
			in:   CreateBorrowerInput{FullName: "Grace Hopper"},
		},
		{name: "missing name", in: CreateBorrowerInput{}, wantErr: ErrInvalidInput},
		{
			name:    "score below range",
			in:      CreateBorrowerInput{FullName: "X", CreditScore: intPtr(299)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "score above range",
			in:      CreateBorrowerInput{FullName: "X", CreditScore: intPtr(851)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative income",
			in:      CreateBorrowerInput{FullName: "X", AnnualIncomeMicros: i64Ptr(-1)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "negative debt",
			in:      CreateBorrowerInput{FullName: "X", MonthlyDebtMicros: i64Ptr(-1)},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUsecase(&borrowermock.Repo{})
			dto, err := uc.Create(context.Background(), tt.in)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
			if len(dto.BorrowerID) != 32 {
				t.Errorf("borrower id %q not 32 chars", dto.BorrowerID)
			}
			if dto.FullName != tt.in.FullName {
				t.Errorf("name = %q", dto.FullName)
			}
		})
	}
}

func TestUsecase_Get_NotFound(t *testing.T) {
	repo := &borrowermock.Repo{
		GetByBorrowerIDFn: func(context.Context, string) (*domain.Borrower, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(repo)
	_, err := uc.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
