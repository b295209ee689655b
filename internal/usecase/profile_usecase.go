package usecase

import (
	"context"
	"strings"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/infrastructure/logger"
	"quotedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	RoleOwner  = "owner"
	RoleMember = "member"
)

type BusinessInput struct {
	Name      string
	Trade     string
	Address   string
	Phone     string
	Email     string
	VATNumber string
}

type UserInput struct {
	FullName string
	Email    string
}

type OnboardingInput struct {
	Business BusinessInput
	User     UserInput
}

// IProfileUseCase is the single writer of AppState.
type IProfileUseCase interface {
	Load(ctx context.Context) error
	Onboard(ctx context.Context, in OnboardingInput) (entities.BusinessProfile, entities.UserProfile, error)
	UpdateBusiness(ctx context.Context, in BusinessInput) (entities.BusinessProfile, error)
	UpdateUser(ctx context.Context, in UserInput) (entities.UserProfile, error)
	JoinBusiness(ctx context.Context, in UserInput, businessID, role string) (entities.UserProfile, error)
	Current(ctx context.Context) (entities.BusinessProfile, entities.UserProfile)
	Reset(ctx context.Context)
}

type ProfileUseCase struct {
	state *AppState
	kv    interfaces.IKeyValueStore
	clock interfaces.IClock
	log   *zap.Logger
}

var _ IProfileUseCase = (*ProfileUseCase)(nil)

func NewProfileUseCase(state *AppState, kv interfaces.IKeyValueStore, clock interfaces.IClock, log *zap.Logger) *ProfileUseCase {
	return &ProfileUseCase{state: state, kv: kv, clock: clock, log: logger.OrNop(log)}
}

// Load restores both profiles from the key-value store.
func (u *ProfileUseCase) Load(ctx context.Context) error {
	var b entities.BusinessProfile
	if ok, err := loadJSON(ctx, u.kv, u.log, KeyBusinessInfo, &b); err != nil {
		u.log.Warn("[profile][usecase] load business failed", zap.Error(err))
		return err
	} else if ok {
		u.state.setBusiness(b)
	}

	var usr entities.UserProfile
	if ok, err := loadJSON(ctx, u.kv, u.log, KeyUserInfo, &usr); err != nil {
		u.log.Warn("[profile][usecase] load user failed", zap.Error(err))
		return err
	} else if ok {
		u.state.setUser(usr)
	}
	return nil
}

func (u *ProfileUseCase) Onboard(ctx context.Context, in OnboardingInput) (entities.BusinessProfile, entities.UserProfile, error) {
	if err := validateBusiness(in.Business); err != nil {
		return entities.BusinessProfile{}, entities.UserProfile{}, err
	}
	if err := validateUser(in.User); err != nil {
		return entities.BusinessProfile{}, entities.UserProfile{}, err
	}

	now := u.clock.Now().UTC()
	b := applyBusiness(entities.BusinessProfile{ID: uuid.NewString()}, in.Business)
	b.UpdatedAt = now
	usr := entities.UserProfile{
		ID:         uuid.NewString(),
		FullName:   strings.TrimSpace(in.User.FullName),
		Email:      strings.ToLower(strings.TrimSpace(in.User.Email)),
		BusinessID: b.ID,
		Role:       RoleOwner,
		UpdatedAt:  now,
	}

	u.state.setBusiness(b)
	u.state.setUser(usr)
	saveJSON(ctx, u.kv, u.log, KeyBusinessInfo, b)
	saveJSON(ctx, u.kv, u.log, KeyUserInfo, usr)

	u.log.Info("[profile][usecase] onboarding complete", zap.String("business_id", b.ID), zap.String("user_id", usr.ID))
	return b, usr, nil
}

func (u *ProfileUseCase) UpdateBusiness(ctx context.Context, in BusinessInput) (entities.BusinessProfile, error) {
	if err := validateBusiness(in); err != nil {
		return entities.BusinessProfile{}, err
	}
	b := u.state.Business()
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b = applyBusiness(b, in)
	b.UpdatedAt = u.clock.Now().UTC()

	u.state.setBusiness(b)
	saveJSON(ctx, u.kv, u.log, KeyBusinessInfo, b)
	u.log.Info("[profile][usecase] business updated", zap.String("business_id", b.ID))
	return b, nil
}

func (u *ProfileUseCase) UpdateUser(ctx context.Context, in UserInput) (entities.UserProfile, error) {
	if err := validateUser(in); err != nil {
		return entities.UserProfile{}, err
	}
	usr := u.state.User()
	if usr.ID == "" {
		usr.ID = uuid.NewString()
	}
	usr.FullName = strings.TrimSpace(in.FullName)
	usr.Email = strings.ToLower(strings.TrimSpace(in.Email))
	usr.UpdatedAt = u.clock.Now().UTC()

	u.state.setUser(usr)
	saveJSON(ctx, u.kv, u.log, KeyUserInfo, usr)
	u.log.Info("[profile][usecase] user updated", zap.String("user_id", usr.ID))
	return usr, nil
}

// JoinBusiness records the user as a member of an existing business.
func (u *ProfileUseCase) JoinBusiness(ctx context.Context, in UserInput, businessID, role string) (entities.UserProfile, error) {
	if err := validateUser(in); err != nil {
		return entities.UserProfile{}, err
	}
	businessID = strings.TrimSpace(businessID)
	if businessID == "" {
		return entities.UserProfile{}, invalid(ErrBusinessRequired, "")
	}
	if strings.TrimSpace(role) == "" {
		role = RoleMember
	}

	usr := entities.UserProfile{
		ID:         uuid.NewString(),
		FullName:   strings.TrimSpace(in.FullName),
		Email:      strings.ToLower(strings.TrimSpace(in.Email)),
		BusinessID: businessID,
		Role:       role,
		UpdatedAt:  u.clock.Now().UTC(),
	}
	u.state.setUser(usr)
	if b := u.state.Business(); b.ID != businessID {
		u.state.setBusiness(entities.BusinessProfile{ID: businessID})
		saveJSON(ctx, u.kv, u.log, KeyBusinessInfo, u.state.Business())
	}
	saveJSON(ctx, u.kv, u.log, KeyUserInfo, usr)

	u.log.Info("[profile][usecase] joined business", zap.String("business_id", businessID), zap.String("role", role))
	return usr, nil
}

func (u *ProfileUseCase) Current(ctx context.Context) (entities.BusinessProfile, entities.UserProfile) {
	return u.state.Business(), u.state.User()
}

// Reset forgets both profiles and the cached team list.
func (u *ProfileUseCase) Reset(ctx context.Context) {
	u.state.clear()
	deleteKey(ctx, u.kv, u.log, KeyBusinessInfo)
	deleteKey(ctx, u.kv, u.log, KeyUserInfo)
	deleteKey(ctx, u.kv, u.log, KeyTeamMembers)
	u.log.Warn("[profile][usecase] profiles cleared")
}

func applyBusiness(b entities.BusinessProfile, in BusinessInput) entities.BusinessProfile {
	b.Name = strings.TrimSpace(in.Name)
	b.Trade = strings.TrimSpace(in.Trade)
	b.Address = strings.TrimSpace(in.Address)
	b.Phone = strings.TrimSpace(in.Phone)
	b.Email = strings.ToLower(strings.TrimSpace(in.Email))
	b.VATNumber = strings.TrimSpace(in.VATNumber)
	return b
}

func validateBusiness(in BusinessInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid(ErrInvalidProfile, "business name is required")
	}
	if e := strings.TrimSpace(in.Email); e != "" && !validEmail(e) {
		return invalid(ErrInvalidEmail, e)
	}
	return nil
}

func validateUser(in UserInput) error {
	if strings.TrimSpace(in.FullName) == "" {
		return invalid(ErrInvalidProfile, "full name is required")
	}
	if !validEmail(in.Email) {
		return invalid(ErrInvalidEmail, strings.TrimSpace(in.Email))
	}
	return nil
}
