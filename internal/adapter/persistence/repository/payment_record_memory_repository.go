package repository

import (
	"context"
	"errors"
	"sort"
	"sync"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"
)

var ErrPaymentRecordExists = errors.New("payment record id already exists")

// PaymentRecordMemoryRepository keeps charge history in process memory.
type PaymentRecordMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.PaymentRecord
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordMemoryRepository)(nil)

func NewPaymentRecordMemoryRepository() *PaymentRecordMemoryRepository {
	return &PaymentRecordMemoryRepository{items: map[string]entities.PaymentRecord{}}
}

func (r *PaymentRecordMemoryRepository) Create(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[p.ID]; ok {
		return entities.PaymentRecord{}, ErrPaymentRecordExists
	}
	r.items[p.ID] = p
	return p, nil
}

func (r *PaymentRecordMemoryRepository) ListByQuoteID(_ context.Context, quoteID string) ([]entities.PaymentRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.PaymentRecord{}
	for _, p := range r.items {
		if p.QuoteID == quoteID {
			out = append(out, p)
		}
	}
	sortPaymentRecords(out)
	return out, nil
}

// sortPaymentRecords orders oldest first.
func sortPaymentRecords(items []entities.PaymentRecord) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].ID < items[j].ID
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
}
