package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlyPayment_ZeroRate(t *testing.T) {
	assert.Equal(t, 83333.0, MonthlyPayment(1000000, 0, 12))
	assert.Equal(t, 100000.0, MonthlyPayment(1200000, 0, 12))
}

func TestMonthlyPayment_StandardAnnuity(t *testing.T) {
	// 1.000.000 at 14.4% annual over 12 months: monthly rate 0.012
	got := MonthlyPayment(1000000, 14.4, 12)
	assert.InDelta(t, 89975, got, 1)

	got = MonthlyPayment(2000000, 18, 24)
	assert.InDelta(t, 99848, got, 1)
}

func TestMonthlyPayment_PositiveFinite(t *testing.T) {
	cases := []struct {
		principal float64
		rate      float64
		term      int
	}{
		{1, 0, 1},
		{500000, 0.1, 6},
		{1000000, 14.4, 12},
		{50000000, 24, 180},
		{1000000000, 36, 360},
	}
	for _, tc := range cases {
		got := MonthlyPayment(tc.principal, tc.rate, tc.term)
		assert.True(t, got > 0, "payment must be positive for %+v, got %v", tc, got)
		assert.False(t, math.IsInf(got, 0), "payment must be finite for %+v", tc)
		assert.False(t, math.IsNaN(got), "payment must be a number for %+v", tc)
		assert.Equal(t, got, math.Round(got), "payment must be a whole currency unit")
	}
}

func TestMonthlyPayment_WholeUnitRounding(t *testing.T) {
	got := MonthlyPayment(1000, 12, 12)
	assert.Equal(t, got, math.Trunc(got))
}
