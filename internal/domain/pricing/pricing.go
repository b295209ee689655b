// Package pricing is the single place quote amounts are computed.
//
// Every named quantity is rounded half-up to 2 decimals as soon as it is
// produced, and later quantities are derived from the rounded values.
package pricing

import (
	"math"

	"quotedesk/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ServiceChargePercentage is the fixed platform fee applied to the subtotal.
const ServiceChargePercentage = 0.5

// PaymentFeePercentage is deducted from every payment for net-of-fee reporting.
const PaymentFeePercentage = 0.5

var hundred = decimal.NewFromInt(100)

// Input is everything the engine needs.
type Input struct {
	LineItems         []entities.LineItem
	VATPercentage     float64
	DepositPercentage float64
}

// Breakdown holds the computed amounts.
type Breakdown struct {
	ItemTotals          []float64 `json:"item_totals"`
	Subtotal            float64   `json:"subtotal"`
	VATAmount           float64   `json:"vat_amount"`
	ServiceChargeAmount float64   `json:"service_charge_amount"`
	Total               float64   `json:"total"`
	DepositAmount       float64   `json:"deposit_amount"`
	FinalPaymentAmount  float64   `json:"final_payment_amount"`
	DepositNetOfFee     float64   `json:"deposit_net_of_fee"`
	FinalNetOfFee       float64   `json:"final_net_of_fee"`
}

// Round2 rounds half-up to 2 decimals. NaN and infinities become 0.
func Round2(v float64) float64 {
	return round2(dec(v)).InexactFloat64()
}

func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// dec coerces malformed numbers to 0.
func dec(v float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

func nonNegative(v float64) decimal.Decimal {
	d := dec(v)
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func percentOf(base decimal.Decimal, pct float64) decimal.Decimal {
	return base.Mul(nonNegative(pct)).Div(hundred)
}

// ItemTotal is quantity x price rounded to 2 decimals.
func ItemTotal(item entities.LineItem) float64 {
	return itemTotal(item).InexactFloat64()
}

func itemTotal(item entities.LineItem) decimal.Decimal {
	qty := item.Quantity
	if qty < 0 {
		qty = 0
	}
	return round2(decimal.NewFromInt(int64(qty)).Mul(nonNegative(item.Price)))
}

// Calculate runs the full pricing chain.
func Calculate(in Input) Breakdown {
	out := Breakdown{ItemTotals: make([]float64, 0, len(in.LineItems))}

	subtotal := decimal.Zero
	for _, it := range in.LineItems {
		t := itemTotal(it)
		out.ItemTotals = append(out.ItemTotals, t.InexactFloat64())
		subtotal = subtotal.Add(t)
	}
	subtotal = round2(subtotal)

	vat := round2(percentOf(subtotal, in.VATPercentage))
	service := round2(percentOf(subtotal, ServiceChargePercentage))
	total := round2(subtotal.Add(vat).Add(service))
	deposit := round2(percentOf(total, in.DepositPercentage))
	final := total.Sub(deposit)

	out.Subtotal = subtotal.InexactFloat64()
	out.VATAmount = vat.InexactFloat64()
	out.ServiceChargeAmount = service.InexactFloat64()
	out.Total = total.InexactFloat64()
	out.DepositAmount = deposit.InexactFloat64()
	out.FinalPaymentAmount = final.InexactFloat64()
	out.DepositNetOfFee = netOfFee(deposit).InexactFloat64()
	out.FinalNetOfFee = netOfFee(final).InexactFloat64()
	return out
}

// Apply recomputes the amount fields of q from its line items and percentages.
func Apply(q entities.Quote) entities.Quote {
	b := Calculate(Input{
		LineItems:         q.LineItems,
		VATPercentage:     q.VATPercentage,
		DepositPercentage: q.DepositPercentage,
	})
	q.ServiceChargePercentage = ServiceChargePercentage
	q.Subtotal = b.Subtotal
	q.VATAmount = b.VATAmount
	q.ServiceChargeAmount = b.ServiceChargeAmount
	q.Total = b.Total
	q.DepositAmount = b.DepositAmount
	q.FinalPaymentAmount = b.FinalPaymentAmount
	return q
}

// BreakdownOf returns the breakdown for an already priced quote.
func BreakdownOf(q entities.Quote) Breakdown {
	return Calculate(Input{
		LineItems:         q.LineItems,
		VATPercentage:     q.VATPercentage,
		DepositPercentage: q.DepositPercentage,
	})
}

// PaymentFee is the per-payment fee (0.5% of amount), unrounded.
func PaymentFee(amount float64) float64 {
	return percentOf(dec(amount), PaymentFeePercentage).InexactFloat64()
}

// NetOfFee is amount minus the per-payment fee, rounded to 2 decimals.
func NetOfFee(amount float64) float64 {
	return netOfFee(dec(amount)).InexactFloat64()
}

func netOfFee(amount decimal.Decimal) decimal.Decimal {
	return round2(amount.Sub(percentOf(amount, PaymentFeePercentage)))
}

// Sum adds amounts exactly and rounds the result to 2 decimals.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(dec(a))
	}
	return round2(total).InexactFloat64()
}

// Sub returns a-b rounded to 2 decimals.
func Sub(a, b float64) float64 {
	return round2(dec(a).Sub(dec(b))).InexactFloat64()
}

// PercentOf returns pct% of base rounded to 2 decimals.
func PercentOf(base, pct float64) float64 {
	return round2(percentOf(dec(base), pct)).InexactFloat64()
}

// Ratio returns num/den rounded to 2 decimals, or 0 when den is 0.
func Ratio(num, den float64) float64 {
	d := dec(den)
	if d.IsZero() {
		return 0
	}
	return round2(dec(num).Div(d)).InexactFloat64()
}
