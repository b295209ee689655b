package response

import (
	"encoding/json"
	"strings"
	"testing"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/pricing"
)

func TestFromQuoteCollection_AlwaysListsEveryStage(t *testing.T) {
	c := entities.QuoteCollection{entities.StageSent: {{ID: "quote-1"}}}
	r := FromQuoteCollection(c)
	if r.Count != 1 || len(r.Sent) != 1 {
		t.Fatalf("unexpected response: %+v", r)
	}

	b, _ := json.Marshal(r)
	if !strings.Contains(string(b), `"draft":[]`) || !strings.Contains(string(b), `"scheduled_work":[]`) {
		t.Fatalf("expected empty buckets as arrays, got %s", b)
	}
}

func TestFromQuote_FlattensStage(t *testing.T) {
	b, _ := json.Marshal(FromQuote(entities.Quote{ID: "quote-1"}, entities.StageAccepted))
	if !strings.Contains(string(b), `"id":"quote-1"`) || !strings.Contains(string(b), `"stage":"accepted"`) {
		t.Fatalf("unexpected json %s", b)
	}
}

func TestFromBreakdown(t *testing.T) {
	r := FromBreakdown(pricing.Breakdown{Total: 115.5})
	if r.Total != 115.5 || r.ServiceChargePercentage != 0.5 || r.PaymentFeePercentage != 0.5 {
		t.Fatalf("unexpected response: %+v", r)
	}
}
