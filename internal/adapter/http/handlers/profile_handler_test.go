package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"quotedesk/internal/adapter/http/handlers/mocks"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase"

	"go.uber.org/mock/gomock"
)

func TestProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIProfileUseCase(ctrl)
	quotes := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewProfileHandler(uc, quotes)

	r := newTestRouter()
	r.GET("/v1/profile", h.GetProfile)
	r.POST("/v1/profile/onboarding", h.Onboard)
	r.PUT("/v1/profile/business", h.UpdateBusiness)
	r.PUT("/v1/profile/user", h.UpdateUser)
	r.DELETE("/v1/data", h.ResetData)

	t.Run("get", func(t *testing.T) {
		uc.EXPECT().Current(gomock.Any()).Return(entities.BusinessProfile{ID: "biz-1"}, entities.UserProfile{ID: "u-1"})
		if w := perform(r, http.MethodGet, "/v1/profile", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("onboard", func(t *testing.T) {
		uc.EXPECT().Onboard(gomock.Any(), usecase.OnboardingInput{
			Business: usecase.BusinessInput{Name: "Ace"},
			User:     usecase.UserInput{FullName: "Ann", Email: "ann@ace.co"},
		}).Return(entities.BusinessProfile{ID: "biz-1"}, entities.UserProfile{ID: "u-1"}, nil)

		w := perform(r, http.MethodPost, "/v1/profile/onboarding", `{"business":{"name":"Ace"},"user":{"full_name":"Ann","email":"ann@ace.co"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(entities.UserProfile{}, fmt.Errorf("%w: email", usecase.ErrValidation))
		if w := perform(r, http.MethodPut, "/v1/profile/user", `{"full_name":"A","email":"x"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("update business", func(t *testing.T) {
		uc.EXPECT().UpdateBusiness(gomock.Any(), usecase.BusinessInput{Name: "Ace 2"}).Return(entities.BusinessProfile{ID: "biz-1", Name: "Ace 2"}, nil)
		if w := perform(r, http.MethodPut, "/v1/profile/business", `{"name":"Ace 2"}`); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reset data", func(t *testing.T) {
		quotes.EXPECT().Reset(gomock.Any())
		uc.EXPECT().Reset(gomock.Any())
		if w := perform(r, http.MethodDelete, "/v1/data", ""); w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}

func TestPing(t *testing.T) {
	r := newTestRouter()
	r.GET("/v1/ping", Ping)
	if w := perform(r, http.MethodGet, "/v1/ping", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
