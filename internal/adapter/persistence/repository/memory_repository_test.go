package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"quotedesk/internal/domain/entities"
)

func TestKeyValueMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewKeyValueMemoryRepository()

	v, err := r.Get(ctx, "quotes")
	if err != nil || v != nil {
		t.Fatalf("expected absent key, got %q err=%v", v, err)
	}

	in := []byte(`{"draft":[]}`)
	if err := r.Set(ctx, "quotes", in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	in[0] = 'X'

	v, _ = r.Get(ctx, "quotes")
	if string(v) != `{"draft":[]}` {
		t.Fatalf("stored value was aliased: %q", v)
	}

	if err := r.Delete(ctx, "quotes"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := r.Get(ctx, "quotes"); v != nil {
		t.Fatalf("expected deleted key")
	}
}

func TestInvitationMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewInvitationMemoryRepository()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	_, _ = r.Create(ctx, entities.TeamInvitation{ID: "i-2", BusinessID: "biz-1", Email: "b@x.io", Status: entities.InvitationStatusPending, CreatedAt: base.Add(time.Hour)})
	_, _ = r.Create(ctx, entities.TeamInvitation{ID: "i-1", BusinessID: "biz-1", Email: "a@x.io", Status: entities.InvitationStatusPending, CreatedAt: base})
	_, _ = r.Create(ctx, entities.TeamInvitation{ID: "i-3", BusinessID: "biz-2", Email: "c@x.io", Status: entities.InvitationStatusActive, CreatedAt: base})

	if _, err := r.Create(ctx, entities.TeamInvitation{ID: "i-1"}); !errors.Is(err, ErrInvitationExists) {
		t.Fatalf("expected ErrInvitationExists, got %v", err)
	}

	list, _ := r.ListByBusinessID(ctx, "biz-1")
	if len(list) != 2 || list[0].ID != "i-1" || list[1].ID != "i-2" {
		t.Fatalf("unexpected list: %+v", list)
	}

	pending, _ := r.ListPending(ctx)
	if len(pending) != 2 {
		t.Fatalf("expected 2 pending, got %d", len(pending))
	}

	updated, _ := r.UpdateStatus(ctx, "i-1", entities.InvitationStatusActive)
	if updated.Status != entities.InvitationStatusActive {
		t.Fatalf("unexpected status: %s", updated.Status)
	}
	if missing, _ := r.UpdateStatus(ctx, "nope", entities.InvitationStatusActive); missing.ID != "" {
		t.Fatalf("expected empty result for missing id")
	}

	if ok, _ := r.Delete(ctx, "i-2"); !ok {
		t.Fatalf("expected delete to report true")
	}
	if ok, _ := r.Delete(ctx, "i-2"); ok {
		t.Fatalf("expected second delete to report false")
	}
}

func TestNamespacedKey(t *testing.T) {
	if got := namespacedKey("", "quotes"); got != "quotes" {
		t.Fatalf("unexpected %q", got)
	}
	if got := namespacedKey("user-1", "quotes"); got != "user-1:quotes" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestPaymentRecordMemoryRepository(t *testing.T) {
	ctx := context.Background()
	r := NewPaymentRecordMemoryRepository()
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	_, _ = r.Create(ctx, entities.PaymentRecord{ID: "p-2", QuoteID: "quote-1", CreatedAt: base.Add(time.Hour)})
	_, _ = r.Create(ctx, entities.PaymentRecord{ID: "p-1", QuoteID: "quote-1", CreatedAt: base})
	_, _ = r.Create(ctx, entities.PaymentRecord{ID: "p-3", QuoteID: "quote-2", CreatedAt: base})

	if _, err := r.Create(ctx, entities.PaymentRecord{ID: "p-1"}); !errors.Is(err, ErrPaymentRecordExists) {
		t.Fatalf("expected ErrPaymentRecordExists, got %v", err)
	}

	got, err := r.ListByQuoteID(ctx, "quote-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p-1" || got[1].ID != "p-2" {
		t.Fatalf("expected oldest first, got %+v", got)
	}

	none, _ := r.ListByQuoteID(ctx, "quote-9")
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}
}

func TestPaymentRecordItemMapping(t *testing.T) {
	created := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	p := entities.PaymentRecord{
		ID:               "p-1",
		QuoteID:          "quote-1",
		PaymentType:      "deposit",
		Amount:           57.75,
		NetAmount:        57.46,
		Status:           entities.PaymentRecordApproved,
		CreatedAt:        created,
		ProviderResponse: []byte(`{"id":1}`),
	}

	it := toPaymentRecordItem(p)
	if it.CreatedAt != "2025-03-10T09:30:00Z" || it.Status != "approved" {
		t.Fatalf("unexpected item: %+v", it)
	}

	back := fromPaymentRecordItem(it)
	if !back.CreatedAt.Equal(created) || string(back.ProviderResponse) != `{"id":1}` || back.Amount != 57.75 {
		t.Fatalf("unexpected record: %+v", back)
	}
	if fromPaymentRecordItem(paymentRecordItem{}).ProviderResponse != nil {
		t.Fatalf("expected nil provider response for empty item")
	}
}

func TestSortInvitations(t *testing.T) {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	items := []entities.TeamInvitation{
		{ID: "i-3", BusinessID: "biz-c", CreatedAt: base.Add(time.Minute)},
		{ID: "i-2", BusinessID: "biz-b", CreatedAt: base},
		{ID: "i-1", BusinessID: "biz-a", CreatedAt: base},
	}

	sortInvitations(items)
	got := []string{items[0].ID, items[1].ID, items[2].ID}
	if got[0] != "i-1" || got[1] != "i-2" || got[2] != "i-3" {
		t.Fatalf("expected oldest first then by id, got %v", got)
	}
}
