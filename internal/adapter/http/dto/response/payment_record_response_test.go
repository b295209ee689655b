package response

import (
	"encoding/json"
	"testing"
	"time"

	"quotedesk/internal/domain/entities"
)

func TestFromPaymentRecord(t *testing.T) {
	now := time.Now().UTC()
	p := entities.PaymentRecord{
		ID:                "pay-1",
		QuoteID:           "quote-1",
		PaymentType:       "deposit",
		Amount:            57.75,
		NetAmount:         57.46,
		Status:            entities.PaymentRecordApproved,
		ProviderPaymentID: "123",
		CreatedAt:         now,
		ProviderResponse:  json.RawMessage(`{"status":"approved"}`),
	}

	res := FromPaymentRecord(p)
	if res.ID != "pay-1" || res.QuoteID != "quote-1" || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.PaymentDate.Equal(now) || res.NetAmount != 57.46 {
		t.Fatalf("unexpected amounts or date: %+v", res)
	}
	if res.ProviderPayload["status"] != "approved" {
		t.Fatalf("unexpected provider payload: %+v", res.ProviderPayload)
	}

	p.ProviderResponse = json.RawMessage(`not json`)
	if res := FromPaymentRecord(p); res.ProviderPayload != nil {
		t.Fatalf("expected unparsable payload dropped, got %+v", res.ProviderPayload)
	}

	if out := FromPaymentRecords(nil); out == nil || len(out) != 0 {
		t.Fatalf("expected empty list, got %#v", out)
	}
}
