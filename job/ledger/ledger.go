// Package ledger keeps a job's financial state consistent. Every mutation
// returns a new Ledger with the balance recomputed; callers persist the
// whole set of ledger fields together so the stored balance can never
// drift from its inputs.
package ledger

import "math"

// Entry is one payment with a stable in-memory id. The persisted form is
// the bare amount; ids exist so callers can remove a payment without
// depending on its position.
type Entry struct {
	ID     string
	Amount float64
}

// Ledger is the financial state of a job. The zero value is an empty
// ledger. Ledger values are immutable; mutating operations return a copy.
type Ledger struct {
	ContractAmount float64
	DepositAmount  float64
	IsDepositPaid  bool
	Payments       []Entry
	Balance        float64
}

// ComputeBalance returns contract minus the paid deposit minus the sum of
// payments. The result may be negative (overpayment); that is surfaced,
// never clamped.
func ComputeBalance(contractAmount, depositAmount float64, isDepositPaid bool, payments []float64) float64 {
	balance := contractAmount

	if isDepositPaid {
		balance -= depositAmount
	}

	for _, p := range payments {
		balance -= p
	}

	return balance
}

// New builds a ledger from persisted job fields, recomputing the balance.
func New(contractAmount, depositAmount float64, isDepositPaid bool, amounts []float64, ids []string) Ledger {
	payments := make([]Entry, len(amounts))
	for i, amount := range amounts {
		var id string
		if i < len(ids) {
			id = ids[i]
		}

		payments[i] = Entry{ID: id, Amount: amount}
	}

	l := Ledger{
		ContractAmount: contractAmount,
		DepositAmount:  depositAmount,
		IsDepositPaid:  isDepositPaid,
		Payments:       payments,
	}

	return l.recompute()
}

// Amounts returns the payment amounts in order, the persisted wire form.
func (l Ledger) Amounts() []float64 {
	amounts := make([]float64, len(l.Payments))
	for i, p := range l.Payments {
		amounts[i] = p.Amount
	}

	return amounts
}

func (l Ledger) recompute() Ledger {
	l.Balance = ComputeBalance(l.ContractAmount, l.DepositAmount, l.IsDepositPaid, l.Amounts())
	return l
}

func (l Ledger) clonePayments() []Entry {
	payments := make([]Entry, len(l.Payments))
	copy(payments, l.Payments)

	return payments
}

func validAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0)
}

// AddPayment appends a payment and recomputes the balance.
func (l Ledger) AddPayment(id string, amount float64) (Ledger, error) {
	if amount <= 0 || !validAmount(amount) {
		return l, ErrInvalidAmount
	}

	l.Payments = append(l.clonePayments(), Entry{ID: id, Amount: amount})

	return l.recompute(), nil
}

// RemovePayment removes the payment at the given position and recomputes
// the balance. Positional removal is unsafe under concurrent edits from
// another session; see RemovePaymentByID.
func (l Ledger) RemovePayment(index int) (Ledger, error) {
	if index < 0 || index >= len(l.Payments) {
		return l, ErrIndexOutOfRange
	}

	payments := l.clonePayments()
	l.Payments = append(payments[:index], payments[index+1:]...)

	return l.recompute(), nil
}

// RemovePaymentByID removes the payment with the given id.
func (l Ledger) RemovePaymentByID(id string) (Ledger, error) {
	for i, p := range l.Payments {
		if p.ID != "" && p.ID == id {
			return l.RemovePayment(i)
		}
	}

	return l, ErrPaymentNotFound
}

// SetDepositPaid flips the deposit-paid flag and recomputes the balance
// without altering the deposit amount.
func (l Ledger) SetDepositPaid(flag bool) Ledger {
	l.IsDepositPaid = flag
	return l.recompute()
}

// SetContractAmount replaces the contract amount and recomputes.
func (l Ledger) SetContractAmount(amount float64) (Ledger, error) {
	if amount < 0 || !validAmount(amount) {
		return l, ErrInvalidAmount
	}

	l.ContractAmount = amount

	return l.recompute(), nil
}

// SetDepositAmount replaces the deposit amount and recomputes.
func (l Ledger) SetDepositAmount(amount float64) (Ledger, error) {
	if amount < 0 || !validAmount(amount) {
		return l, ErrInvalidAmount
	}

	l.DepositAmount = amount

	return l.recompute(), nil
}
