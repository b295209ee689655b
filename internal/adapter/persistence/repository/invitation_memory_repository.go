package repository

import (
	"context"
	"errors"
	"sync"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"
)

var ErrInvitationExists = errors.New("invitation id already exists")

// InvitationMemoryRepository keeps invitations in process memory.
type InvitationMemoryRepository struct {
	mu    sync.RWMutex
	items map[string]entities.TeamInvitation
}

var _ interfaces.IInvitationRepository = (*InvitationMemoryRepository)(nil)

func NewInvitationMemoryRepository() *InvitationMemoryRepository {
	return &InvitationMemoryRepository{items: map[string]entities.TeamInvitation{}}
}

func (r *InvitationMemoryRepository) Create(_ context.Context, inv entities.TeamInvitation) (entities.TeamInvitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[inv.ID]; ok {
		return entities.TeamInvitation{}, ErrInvitationExists
	}
	r.items[inv.ID] = inv
	return inv, nil
}

func (r *InvitationMemoryRepository) GetByID(_ context.Context, id string) (entities.TeamInvitation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.items[id], nil
}

func (r *InvitationMemoryRepository) ListByBusinessID(_ context.Context, businessID string) ([]entities.TeamInvitation, error) {
	return r.filter(func(inv entities.TeamInvitation) bool { return inv.BusinessID == businessID }), nil
}

func (r *InvitationMemoryRepository) ListPending(_ context.Context) ([]entities.TeamInvitation, error) {
	return r.filter(entities.TeamInvitation.IsPending), nil
}

func (r *InvitationMemoryRepository) UpdateStatus(_ context.Context, id string, status entities.InvitationStatus) (entities.TeamInvitation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, ok := r.items[id]
	if !ok {
		return entities.TeamInvitation{}, nil
	}
	inv.Status = status
	r.items[id] = inv
	return inv, nil
}

func (r *InvitationMemoryRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

// filter returns matches oldest first so callers see a stable order.
func (r *InvitationMemoryRepository) filter(keep func(entities.TeamInvitation) bool) []entities.TeamInvitation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entities.TeamInvitation{}
	for _, inv := range r.items {
		if keep(inv) {
			out = append(out, inv)
		}
	}
	sortInvitations(out)
	return out
}
