package usecase

import (
	"context"
	"strings"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/invitation"
	"quotedesk/internal/infrastructure/logger"
	"quotedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IInvitationUseCase manages team invitations.
//
// Requested behavior:
//   - Invite stores a pending invitation with a lowercased email.
//   - Listing a business refreshes the cached team list.
//   - An email resolves to a pending invitation strictest tier first.
type IInvitationUseCase interface {
	Invite(ctx context.Context, businessID, email, role string) (entities.TeamInvitation, error)
	ListByBusiness(ctx context.Context, businessID string) ([]entities.TeamInvitation, error)
	Activate(ctx context.Context, id string) (entities.TeamInvitation, error)
	Delete(ctx context.Context, id string) error
	ResolveByEmail(ctx context.Context, email string) (invitation.Match, error)
	Join(ctx context.Context, in UserInput) (invitation.Match, entities.UserProfile, error)
}

type InvitationUseCase struct {
	repo     interfaces.IInvitationRepository
	kv       interfaces.IKeyValueStore
	state    *AppState
	profiles IProfileUseCase
	matcher  *invitation.Matcher
	clock    interfaces.IClock
	log      *zap.Logger
}

var _ IInvitationUseCase = (*InvitationUseCase)(nil)

func NewInvitationUseCase(
	repo interfaces.IInvitationRepository,
	kv interfaces.IKeyValueStore,
	state *AppState,
	profiles IProfileUseCase,
	clock interfaces.IClock,
	log *zap.Logger,
) *InvitationUseCase {
	return &InvitationUseCase{
		repo:     repo,
		kv:       kv,
		state:    state,
		profiles: profiles,
		matcher:  invitation.NewMatcher(),
		clock:    clock,
		log:      logger.OrNop(log),
	}
}

// businessID falls back to the signed-in business.
func (u *InvitationUseCase) businessID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" && u.state != nil {
		id = u.state.Business().ID
	}
	if id == "" {
		return "", invalid(ErrBusinessRequired, "")
	}
	return id, nil
}

func (u *InvitationUseCase) Invite(ctx context.Context, businessID, email, role string) (entities.TeamInvitation, error) {
	bid, err := u.businessID(businessID)
	if err != nil {
		return entities.TeamInvitation{}, err
	}
	email = invitation.Normalize(email)
	if !validEmail(email) {
		return entities.TeamInvitation{}, invalid(ErrInvalidEmail, email)
	}
	role = strings.TrimSpace(role)
	if role == "" {
		role = RoleMember
	}

	existing, err := u.repo.ListByBusinessID(ctx, bid)
	if err != nil {
		u.log.Warn("[invitation][usecase] list before invite failed", zap.String("business_id", bid), zap.Error(err))
		return entities.TeamInvitation{}, err
	}
	for _, inv := range existing {
		if inv.IsPending() && invitation.Normalize(inv.Email) == email {
			return entities.TeamInvitation{}, ErrInvitationExists
		}
	}

	inv := entities.TeamInvitation{
		ID:         uuid.NewString(),
		BusinessID: bid,
		Email:      email,
		Role:       role,
		Status:     entities.InvitationStatusPending,
		CreatedAt:  u.clock.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		u.log.Warn("[invitation][usecase] create failed", zap.String("business_id", bid), zap.Error(err))
		return entities.TeamInvitation{}, err
	}
	u.log.Info("[invitation][usecase] invited",
		zap.String("invitation_id", created.ID),
		zap.String("business_id", bid),
		zap.String("role", role),
	)
	return created, nil
}

func (u *InvitationUseCase) ListByBusiness(ctx context.Context, businessID string) ([]entities.TeamInvitation, error) {
	bid, err := u.businessID(businessID)
	if err != nil {
		return nil, err
	}
	items, err := u.repo.ListByBusinessID(ctx, bid)
	if err != nil {
		return nil, err
	}
	saveJSON(ctx, u.kv, u.log, KeyTeamMembers, items)
	return items, nil
}

func (u *InvitationUseCase) Activate(ctx context.Context, id string) (entities.TeamInvitation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TeamInvitation{}, ErrInvitationNotFound
	}
	inv, err := u.repo.UpdateStatus(ctx, id, entities.InvitationStatusActive)
	if err != nil {
		return entities.TeamInvitation{}, err
	}
	if inv.ID == "" {
		return entities.TeamInvitation{}, ErrInvitationNotFound
	}
	u.log.Info("[invitation][usecase] activated", zap.String("invitation_id", id))
	return inv, nil
}

func (u *InvitationUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvitationNotFound
	}
	ok, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvitationNotFound
	}
	u.log.Info("[invitation][usecase] deleted", zap.String("invitation_id", id))
	return nil
}

func (u *InvitationUseCase) ResolveByEmail(ctx context.Context, email string) (invitation.Match, error) {
	if invitation.Normalize(email) == "" {
		return invitation.Match{}, invalid(ErrInvalidEmail, "email is required")
	}
	pending, err := u.repo.ListPending(ctx)
	if err != nil {
		return invitation.Match{}, err
	}
	m, ok := u.matcher.Resolve(email, pending)
	if !ok {
		u.log.Info("[invitation][usecase] no invitation found")
		return invitation.Match{}, ErrInvitationNotFound
	}
	u.log.Info("[invitation][usecase] invitation resolved",
		zap.String("invitation_id", m.Invitation.ID),
		zap.String("tier", string(m.Tier)),
	)
	return m, nil
}

// Join signs a new user into the business that invited them. The invitation
// is activated first; local profiles change only once that succeeds.
func (u *InvitationUseCase) Join(ctx context.Context, in UserInput) (invitation.Match, entities.UserProfile, error) {
	if err := validateUser(in); err != nil {
		return invitation.Match{}, entities.UserProfile{}, err
	}
	m, err := u.ResolveByEmail(ctx, in.Email)
	if err != nil {
		return invitation.Match{}, entities.UserProfile{}, err
	}
	if strings.TrimSpace(m.BusinessID) == "" {
		return invitation.Match{}, entities.UserProfile{}, invalid(ErrBusinessRequired, "invitation has no business")
	}

	activated, err := u.Activate(ctx, m.Invitation.ID)
	if err != nil {
		u.log.Warn("[invitation][usecase] activate on join failed", zap.String("invitation_id", m.Invitation.ID), zap.Error(err))
		return invitation.Match{}, entities.UserProfile{}, err
	}

	usr, err := u.profiles.JoinBusiness(ctx, in, m.BusinessID, m.Invitation.Role)
	if err != nil {
		if _, rerr := u.repo.UpdateStatus(ctx, activated.ID, entities.InvitationStatusPending); rerr != nil {
			u.log.Error("[invitation][usecase] revert to pending failed", zap.String("invitation_id", activated.ID), zap.Error(rerr))
		}
		return invitation.Match{}, entities.UserProfile{}, err
	}
	m.Invitation = activated
	return m, usr, nil
}
