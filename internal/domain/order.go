package domain

import "time"

// Order is one POS sales order parsed from the Sales service response.
// Orders without a first send time, or with a non-positive total, are
// incomplete or test data and never reach aggregation.
type Order struct {
	ID            string
	Number        string
	Name          string
	Total         float64
	FirstSendTime *time.Time // UTC, nil when the order never fired
	Payments      []Payment
}

// Payment is one tender applied to an order. Split-tender tips arrive in the
// nested detail records.
type Payment struct {
	ID         string
	Amount     float64
	TenderID   string
	TipAmount  float64
	EmployeeID string
	TillNumber string
	Details    []PaymentDetail
}

// PaymentDetail is one split-tender entry under a payment.
type PaymentDetail struct {
	Amount    float64
	TenderID  string
	TipAmount float64
}

// TotalTips sums the tip amounts across all payments of the order. Detail
// records are additive when their tip amount is positive.
func (o Order) TotalTips() float64 {
	var tips float64

	for _, p := range o.Payments {
		if p.TipAmount > 0 {
			tips += p.TipAmount
		}
		for _, d := range p.Details {
			if d.TipAmount > 0 {
				tips += d.TipAmount
			}
		}
	}

	return tips
}
