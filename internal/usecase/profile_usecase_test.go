package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/infrastructure/clock"
	mock_interfaces "quotedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProfileUseCase_Onboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock_interfaces.NewMockIKeyValueStore(ctrl)
	kv.EXPECT().Set(gomock.Any(), KeyBusinessInfo, gomock.Any()).Return(nil)
	kv.EXPECT().Set(gomock.Any(), KeyUserInfo, gomock.Any()).Return(errors.New("offline"))

	state := NewAppState()
	uc := NewProfileUseCase(state, kv, clock.NewFake(day1), nil)

	b, usr, err := uc.Onboard(context.Background(), OnboardingInput{
		Business: BusinessInput{Name: " Ace Plumbing ", Email: "Office@Ace.co"},
		User:     UserInput{FullName: "Ann", Email: "ann@ace.co"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID == "" || b.Name != "Ace Plumbing" || b.Email != "office@ace.co" {
		t.Fatalf("unexpected business: %+v", b)
	}
	if usr.BusinessID != b.ID || usr.Role != RoleOwner {
		t.Fatalf("unexpected user: %+v", usr)
	}
	if state.Business().ID != b.ID || state.User().ID != usr.ID {
		t.Fatalf("app state not updated")
	}
}

func TestProfileUseCase_Validation(t *testing.T) {
	uc := NewProfileUseCase(NewAppState(), nil, clock.NewFake(day1), nil)
	ctx := context.Background()

	if _, _, err := uc.Onboard(ctx, OnboardingInput{User: UserInput{FullName: "A", Email: "a@b.co"}}); !errors.Is(err, ErrInvalidProfile) {
		t.Fatalf("expected ErrInvalidProfile, got %v", err)
	}
	if _, err := uc.UpdateUser(ctx, UserInput{FullName: "A", Email: "bad"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := uc.UpdateBusiness(ctx, BusinessInput{Name: "X", Email: "bad"}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestProfileUseCase_LoadAndUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock_interfaces.NewMockIKeyValueStore(ctrl)
	saved, _ := json.Marshal(entities.BusinessProfile{ID: "biz-1", Name: "Old"})
	kv.EXPECT().Get(gomock.Any(), KeyBusinessInfo).Return(saved, nil)
	kv.EXPECT().Get(gomock.Any(), KeyUserInfo).Return(nil, nil)
	kv.EXPECT().Set(gomock.Any(), KeyBusinessInfo, gomock.Any()).Return(nil)

	state := NewAppState()
	uc := NewProfileUseCase(state, kv, clock.NewFake(day1), nil)
	if err := uc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Business().Name != "Old" || state.User().ID != "" {
		t.Fatalf("unexpected state after load: %+v %+v", state.Business(), state.User())
	}

	b, err := uc.UpdateBusiness(context.Background(), BusinessInput{Name: "New", VATNumber: "GB123"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.ID != "biz-1" || b.Name != "New" || b.VATNumber != "GB123" {
		t.Fatalf("unexpected business: %+v", b)
	}
}

func TestProfileUseCase_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	kv := mock_interfaces.NewMockIKeyValueStore(ctrl)
	kv.EXPECT().Delete(gomock.Any(), KeyBusinessInfo).Return(nil)
	kv.EXPECT().Delete(gomock.Any(), KeyUserInfo).Return(nil)
	kv.EXPECT().Delete(gomock.Any(), KeyTeamMembers).Return(errors.New("ignored"))

	state := NewAppState()
	state.setBusiness(entities.BusinessProfile{ID: "biz-1"})
	NewProfileUseCase(state, kv, clock.NewFake(day1), nil).Reset(context.Background())

	if state.Business().ID != "" {
		t.Fatalf("expected cleared state")
	}
}
