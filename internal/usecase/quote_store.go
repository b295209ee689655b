package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/infrastructure/logger"
	"quotedesk/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Key-value keys owned by the application.
const (
	KeyQuotes       = "quotes"
	KeyTeamMembers  = "teamMembers"
	KeyBusinessInfo = "businessInfo"
	KeyUserInfo     = "userInfo"
)

// QuoteStore owns the authoritative in-memory QuoteCollection.
//
// Every change swaps the whole collection under the lock, so a reader never
// sees a quote in zero or two buckets. The new collection is then written to
// the key-value store; a failed write is logged and the in-memory state stays
// authoritative.
type QuoteStore struct {
	mu     sync.Mutex
	quotes entities.QuoteCollection
	kv     interfaces.IKeyValueStore
	log    *zap.Logger
}

func NewQuoteStore(kv interfaces.IKeyValueStore, log *zap.Logger) *QuoteStore {
	return &QuoteStore{
		quotes: entities.NewQuoteCollection(),
		kv:     kv,
		log:    logger.OrNop(log),
	}
}

// Load restores the collection. A missing or unreadable value yields the
// empty collection; only a failing store is reported.
func (s *QuoteStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kv == nil {
		return nil
	}
	raw, err := s.kv.Get(ctx, KeyQuotes)
	if err != nil {
		s.log.Warn("[quote][store] load failed", zap.Error(err))
		return err
	}
	if raw == nil {
		s.log.Info("[quote][store] no saved quotes, starting empty")
		s.quotes = entities.NewQuoteCollection()
		return nil
	}

	var c entities.QuoteCollection
	if err := json.Unmarshal(raw, &c); err != nil {
		s.log.Warn("[quote][store] saved quotes unreadable, starting empty", zap.Error(err))
		s.quotes = entities.NewQuoteCollection()
		return nil
	}
	s.quotes = c.Normalize()
	s.log.Info("[quote][store] loaded", zap.Int("count", s.quotes.Count()))
	return nil
}

// Snapshot returns a deep copy of the current collection.
func (s *QuoteStore) Snapshot() entities.QuoteCollection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quotes.Clone()
}

// Update applies fn to the current collection and swaps in its result. When fn
// fails nothing changes.
func (s *QuoteStore) Update(ctx context.Context, fn func(c entities.QuoteCollection) (entities.QuoteCollection, entities.Quote, error)) (entities.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, q, err := fn(s.quotes)
	if err != nil {
		return entities.Quote{}, err
	}
	s.quotes = next.Normalize()
	s.persist(ctx)
	return q, nil
}

// Replace swaps in c wholesale.
func (s *QuoteStore) Replace(ctx context.Context, c entities.QuoteCollection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes = c.Clone()
	s.persist(ctx)
}

// persist runs with the lock held so writes land in the order the
// collections were produced.
func (s *QuoteStore) persist(ctx context.Context) {
	if s.kv == nil {
		return
	}
	b, err := json.Marshal(s.quotes)
	if err != nil {
		s.log.Warn("[quote][store] marshal failed", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, KeyQuotes, b); err != nil {
		s.log.Warn("[quote][store] save failed, keeping in-memory state", zap.Error(err))
	}
}
