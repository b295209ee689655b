package interfaces

import (
	"context"
	"quotedesk/internal/domain/entities"
)

// IInvitationRepository abstracts the team invitation table.
//
// Lookups that find nothing return a zero TeamInvitation (empty ID) and a nil error.
type IInvitationRepository interface {
	Create(ctx context.Context, inv entities.TeamInvitation) (entities.TeamInvitation, error)
	GetByID(ctx context.Context, id string) (entities.TeamInvitation, error)
	ListByBusinessID(ctx context.Context, businessID string) ([]entities.TeamInvitation, error)
	ListPending(ctx context.Context) ([]entities.TeamInvitation, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvitationStatus) (entities.TeamInvitation, error)
	Delete(ctx context.Context, id string) (bool, error)
}
