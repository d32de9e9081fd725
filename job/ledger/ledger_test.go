package ledger

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeBalance(t *testing.T) {
	tests := []struct {
		name           string
		contractAmount float64
		depositAmount  float64
		isDepositPaid  bool
		payments       []float64
		want           float64
	}{
		{
			name:           "no deposit no payments",
			contractAmount: 5000,
			depositAmount:  1000,
			want:           5000,
		},
		{
			name:           "unpaid deposit is not deducted",
			contractAmount: 12000,
			depositAmount:  2000,
			payments:       []float64{1000},
			want:           11000,
		},
		{
			name:           "paid deposit and payments",
			contractAmount: 12000,
			depositAmount:  2000,
			isDepositPaid:  true,
			payments:       []float64{1000, 1500},
			want:           7500,
		},
		{
			name:           "overpayment goes negative, not clamped",
			contractAmount: 1000,
			depositAmount:  500,
			isDepositPaid:  true,
			payments:       []float64{800},
			want:           -300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBalance(tt.contractAmount, tt.depositAmount, tt.isDepositPaid, tt.payments)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedger_DepositAndPaymentRoundTrip(t *testing.T) {
	l := New(5000, 1000, false, nil, nil)
	assert.Equal(t, 5000.0, l.Balance)

	l = l.SetDepositPaid(true)
	assert.Equal(t, 4000.0, l.Balance)

	l, err := l.AddPayment("p1", 2000)
	assert.NoError(t, err)
	assert.Equal(t, 2000.0, l.Balance)

	l, err = l.RemovePayment(0)
	assert.NoError(t, err)
	assert.Equal(t, 4000.0, l.Balance)
	assert.Empty(t, l.Payments)
}

func TestLedger_AddPaymentInvalidAmounts(t *testing.T) {
	l := New(5000, 0, false, nil, nil)

	for _, amount := range []float64{-5, 0, math.NaN(), math.Inf(1), math.Inf(-1)} {
		got, err := l.AddPayment("p1", amount)

		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Equal(t, l, got)
	}
}

func TestLedger_RemovePayment(t *testing.T) {
	l := New(5000, 0, false, []float64{100, 200, 300}, []string{"a", "b", "c"})

	l2, err := l.RemovePayment(1)
	assert.NoError(t, err)
	assert.Equal(t, []float64{100, 300}, l2.Amounts())
	assert.Equal(t, 4600.0, l2.Balance)

	_, err = l.RemovePayment(3)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = l.RemovePayment(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestLedger_RemovePaymentByID(t *testing.T) {
	l := New(5000, 0, false, []float64{100, 200}, []string{"a", "b"})

	l2, err := l.RemovePaymentByID("a")
	assert.NoError(t, err)
	assert.Equal(t, []float64{200}, l2.Amounts())

	_, err = l.RemovePaymentByID("missing")
	assert.ErrorIs(t, err, ErrPaymentNotFound)
}

func TestLedger_SetAmounts(t *testing.T) {
	l := New(5000, 1000, true, nil, nil)

	l2, err := l.SetContractAmount(6000)
	assert.NoError(t, err)
	assert.Equal(t, 5000.0, l2.Balance)

	l2, err = l2.SetDepositAmount(500)
	assert.NoError(t, err)
	assert.Equal(t, 5500.0, l2.Balance)

	_, err = l.SetContractAmount(-1)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = l.SetDepositAmount(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestLedger_Immutability(t *testing.T) {
	l := New(5000, 0, false, []float64{100}, []string{"a"})

	_, err := l.AddPayment("b", 50)
	assert.NoError(t, err)

	assert.Equal(t, []float64{100}, l.Amounts())
	assert.Equal(t, 4900.0, l.Balance)
}
