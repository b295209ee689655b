package response

import (
	"encoding/json"
	"time"

	"quotedesk/internal/domain/entities"
)

type PaymentRecordResponse struct {
	ID                string    `json:"id"`
	QuoteID           string    `json:"quote_id"`
	PaymentType       string    `json:"payment_type"`
	Amount            float64   `json:"amount"`
	NetAmount         float64   `json:"net_amount"`
	Status            string    `json:"status"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	ProviderStatus    string    `json:"provider_status,omitempty"`
	PaymentDate       time.Time `json:"payment_date"`

	ProviderPayload map[string]interface{} `json:"provider_payload,omitempty"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentRecordResponse {
	res := PaymentRecordResponse{
		ID:                p.ID,
		QuoteID:           p.QuoteID,
		PaymentType:       p.PaymentType,
		Amount:            p.Amount,
		NetAmount:         p.NetAmount,
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
		PaymentDate:       p.CreatedAt,
	}
	if len(p.ProviderResponse) > 0 {
		var payload map[string]interface{}
		if err := json.Unmarshal(p.ProviderResponse, &payload); err == nil {
			res.ProviderPayload = payload
		}
	}
	return res
}

func FromPaymentRecords(items []entities.PaymentRecord) []PaymentRecordResponse {
	out := make([]PaymentRecordResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPaymentRecord(p))
	}
	return out
}
