package request

import (
	"encoding/json"
	"testing"
)

func TestQuoteRequest_LenientNumbers(t *testing.T) {
	raw := `{
		"customer_name": "Jane",
		"vat_percentage": "15",
		"deposit_percentage": "abc",
		"line_items": [
			{"description": "Labour", "quantity": "2", "price": 50},
			{"description": "Parts", "quantity": null, "price": "oops"},
			{"description": "Misc", "quantity": 1.9, "price": {"x": 1}}
		]
	}`

	var r QuoteRequest
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in := r.ToInput()

	if in.VATPercentage != 15 || in.DepositPercentage != 0 {
		t.Fatalf("unexpected percentages: %v %v", in.VATPercentage, in.DepositPercentage)
	}
	if in.LineItems[0].Quantity != 2 || in.LineItems[0].Price != 50 {
		t.Fatalf("unexpected first item: %+v", in.LineItems[0])
	}
	if in.LineItems[1].Quantity != 0 || in.LineItems[1].Price != 0 {
		t.Fatalf("expected malformed values to become 0: %+v", in.LineItems[1])
	}
	if in.LineItems[2].Quantity != 1 || in.LineItems[2].Price != 0 {
		t.Fatalf("unexpected third item: %+v", in.LineItems[2])
	}
}

func TestSendQuoteRequest_Embedded(t *testing.T) {
	var r SendQuoteRequest
	if err := json.Unmarshal([]byte(`{"draft_id":"draft-1","customer_name":"Jane"}`), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.DraftID != "draft-1" || r.CustomerName != "Jane" {
		t.Fatalf("unexpected request: %+v", r)
	}
}
