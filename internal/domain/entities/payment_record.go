package entities

import (
	"encoding/json"
	"time"
)

// PaymentRecordStatus is the provider outcome of a charge attempt.
type PaymentRecordStatus string

const (
	PaymentRecordApproved PaymentRecordStatus = "approved"
	PaymentRecordDenied   PaymentRecordStatus = "denied"
)

// PaymentRecord is one charge attempt against a quote that reached the
// provider.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (quote_id-index): quote_id
//
// ProviderResponse keeps the provider body as returned, for audit.
type PaymentRecord struct {
	ID                string              `json:"id"`
	QuoteID           string              `json:"quote_id"`
	PaymentType       string              `json:"payment_type"`
	Amount            float64             `json:"amount"`
	NetAmount         float64             `json:"net_amount"`
	Status            PaymentRecordStatus `json:"status"`
	ProviderPaymentID string              `json:"provider_payment_id"`
	ProviderStatus    string              `json:"provider_status"`
	CreatedAt         time.Time           `json:"created_at"`

	ProviderResponse json.RawMessage `json:"provider_response,omitempty"`
}
