package model

import "fieldservice/shared"

// Balance is what is left to pay on a service request after its completed payments.
type Balance struct {
	TotalCost        float64
	PaidAmount       float64
	RemainingBalance float64
	OverpaidAmount   float64
}

// NewBalance never reports a negative remaining balance. Any excess payment is reported as overpaid.
func NewBalance(totalCost, paidAmount float64) Balance {
	totalCost = shared.RoundMoney(totalCost)
	paidAmount = shared.RoundMoney(paidAmount)
	diff := shared.RoundMoney(totalCost - paidAmount)

	return Balance{
		TotalCost:        totalCost,
		PaidAmount:       paidAmount,
		RemainingBalance: max(diff, 0),
		OverpaidAmount:   max(-diff, 0),
	}
}
