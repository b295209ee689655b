package response

import (
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/pricing"
)

type QuoteResponse struct {
	entities.Quote
	Stage string `json:"stage,omitempty"`
}

type QuoteCollectionResponse struct {
	Draft         []entities.Quote `json:"draft"`
	Sent          []entities.Quote `json:"sent"`
	Accepted      []entities.Quote `json:"accepted"`
	ScheduledWork []entities.Quote `json:"scheduled_work"`
	Complete      []entities.Quote `json:"complete"`
	Count         int              `json:"count"`
}

type PricingResponse struct {
	pricing.Breakdown
	ServiceChargePercentage float64 `json:"service_charge_percentage"`
	PaymentFeePercentage    float64 `json:"payment_fee_percentage"`
}

func FromQuote(q entities.Quote, stage entities.Stage) QuoteResponse {
	return QuoteResponse{Quote: q, Stage: string(stage)}
}

func FromQuoteCollection(c entities.QuoteCollection) QuoteCollectionResponse {
	c = c.Normalize()
	return QuoteCollectionResponse{
		Draft:         c[entities.StageDraft],
		Sent:          c[entities.StageSent],
		Accepted:      c[entities.StageAccepted],
		ScheduledWork: c[entities.StageScheduledWork],
		Complete:      c[entities.StageComplete],
		Count:         c.Count(),
	}
}

func FromBreakdown(b pricing.Breakdown) PricingResponse {
	return PricingResponse{
		Breakdown:               b,
		ServiceChargePercentage: pricing.ServiceChargePercentage,
		PaymentFeePercentage:    pricing.PaymentFeePercentage,
	}
}
