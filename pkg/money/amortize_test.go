package money

import "testing"

func i64(v int64) *int64 { return &v }

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	// zero interest = linear schedule, ceiled
	got := MonthlyPayment(500_000_000, 0, 12)
	if got != 41_666_667 {
		t.Fatalf("MonthlyPayment = %d, want 41666667", got)
	}
}

func TestMonthlyPayment_Annuity(t *testing.T) {
	// $100,000 at 6.00% over 60 months ≈ $1,933.28/mo
	got := MonthlyPayment(1_000_000_000, 600, 60)
	if got < 19_330_000 || got > 19_340_000 {
		t.Fatalf("MonthlyPayment = %d micros, want ~19_332_800", got)
	}
	// payment must at least cover principal over the term
	if got*60 < 1_000_000_000 {
		t.Fatalf("total payments %d undercollect principal", got*60)
	}
}

func TestMonthlyPayment_Degenerate(t *testing.T) {
	if got := MonthlyPayment(0, 600, 60); got != 0 {
		t.Errorf("zero principal: got %d", got)
	}
	if got := MonthlyPayment(1_000_000, 600, 0); got != 0 {
		t.Errorf("zero term: got %d", got)
	}
}

func TestDebtToIncomeRatio(t *testing.T) {
	tests := []struct {
		name    string
		income  *int64
		debt    *int64
		payment int64
		want    float64
		wantOK  bool
	}{
		{
			name:   "no income data",
			income: nil, debt: i64(30_000_000), payment: 19_332_802,
			wantOK: false,
		},
		{
			name:   "zero income",
			income: i64(0), debt: i64(30_000_000), payment: 19_332_802,
			wantOK: false,
		},
		{
			// $50k income, $3k debt, ~$1,933 payment → DTI ≈ 1.18
			name:   "over ceiling",
			income: i64(500_000_000), debt: i64(30_000_000), payment: 19_332_802,
			want: 1.184, wantOK: true,
		},
		{
			name:   "nil debt counts as zero",
			income: i64(1_200_000_000), debt: nil, payment: 10_000_000,
			want: 0.1, wantOK: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DebtToIncomeRatio(tt.income, tt.debt, tt.payment)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got < tt.want-0.01 || got > tt.want+0.01 {
				t.Fatalf("ratio = %v, want ~%v", got, tt.want)
			}
		})
	}
}
