package request

import (
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase"
)

type LineItemRequest struct {
	Description string `json:"description"`
	Quantity    Count  `json:"quantity"`
	Price       Number `json:"price"`
}

// QuoteRequest is the quote form payload. Numeric fields accept numbers or
// numeric strings; anything else counts as 0.
type QuoteRequest struct {
	CustomerName      string            `json:"customer_name"`
	ContactMethod     string            `json:"contact_method"`
	ContactValue      string            `json:"contact_value"`
	Address           string            `json:"address"`
	Description       string            `json:"description"`
	LineItems         []LineItemRequest `json:"line_items"`
	VATPercentage     Number            `json:"vat_percentage"`
	DepositPercentage Number            `json:"deposit_percentage"`
}

// SendQuoteRequest is QuoteRequest plus the draft it was edited from, if any.
type SendQuoteRequest struct {
	QuoteRequest
	DraftID string `json:"draft_id"`
}

func (r QuoteRequest) ToInput() usecase.QuoteInput {
	items := make([]entities.LineItem, 0, len(r.LineItems))
	for _, it := range r.LineItems {
		items = append(items, entities.LineItem{
			Description: it.Description,
			Quantity:    it.Quantity.Int(),
			Price:       it.Price.Float(),
		})
	}
	return usecase.QuoteInput{
		CustomerName:      r.CustomerName,
		ContactMethod:     r.ContactMethod,
		ContactValue:      r.ContactValue,
		Address:           r.Address,
		Description:       r.Description,
		LineItems:         items,
		VATPercentage:     r.VATPercentage.Float(),
		DepositPercentage: r.DepositPercentage.Float(),
	}
}
