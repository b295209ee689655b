package usecase

import (
	"sync"

	"quotedesk/internal/domain/entities"
)

// AppState holds the signed-in business and user profiles.
//
// Any component may read it. Only ProfileUseCase writes to it.
type AppState struct {
	mu       sync.RWMutex
	business entities.BusinessProfile
	user     entities.UserProfile
}

func NewAppState() *AppState {
	return &AppState{}
}

func (s *AppState) Business() entities.BusinessProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.business
}

func (s *AppState) User() entities.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *AppState) setBusiness(b entities.BusinessProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.business = b
}

func (s *AppState) setUser(u entities.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = u
}

func (s *AppState) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.business = entities.BusinessProfile{}
	s.user = entities.UserProfile{}
}
