package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"quotedesk/internal/adapter/http/handlers/mocks"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/invitation"
	"quotedesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInvitationRouter(t *testing.T) (*gin.Engine, *mocks.MockIInvitationUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIInvitationUseCase(ctrl)
	h := NewInvitationHandler(uc)

	r := newTestRouter()
	r.POST("/v1/invitations", h.Invite)
	r.GET("/v1/invitations", h.ListByBusiness)
	r.PATCH("/v1/invitations/:id/activate", h.Activate)
	r.DELETE("/v1/invitations/:id", h.Delete)
	r.POST("/v1/invitations/resolve", h.Resolve)
	r.POST("/v1/invitations/join", h.Join)
	return r, uc
}

func TestInvitationHandler_Invite(t *testing.T) {
	t.Run("missing email", func(t *testing.T) {
		r, _ := newInvitationRouter(t)
		if w := perform(r, http.MethodPost, "/v1/invitations", `{"business_id":"biz-1"}`); w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate", func(t *testing.T) {
		r, uc := newInvitationRouter(t)
		uc.EXPECT().Invite(gomock.Any(), "biz-1", "a@b.co", "").Return(entities.TeamInvitation{}, usecase.ErrInvitationExists)
		if w := perform(r, http.MethodPost, "/v1/invitations", `{"business_id":"biz-1","email":"a@b.co"}`); w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newInvitationRouter(t)
		uc.EXPECT().Invite(gomock.Any(), "biz-1", "a@b.co", "admin").
			Return(entities.TeamInvitation{ID: "i-1", BusinessID: "biz-1", Email: "a@b.co", Status: entities.InvitationStatusPending}, nil)
		w := perform(r, http.MethodPost, "/v1/invitations", `{"business_id":"biz-1","email":"a@b.co","role":"admin"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "pending" {
			t.Fatalf("unexpected body: %v", body)
		}
	})
}

func TestInvitationHandler_Resolve(t *testing.T) {
	r, uc := newInvitationRouter(t)
	uc.EXPECT().ResolveByEmail(gomock.Any(), "smith@biz.co").Return(invitation.Match{
		Invitation: entities.TeamInvitation{ID: "i-1", BusinessID: "biz-1"},
		BusinessID: "biz-1",
		Tier:       invitation.TierSubstring,
	}, nil)

	w := perform(r, http.MethodPost, "/v1/invitations/resolve", `{"email":"smith@biz.co"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["tier"] != "substring" || body["business_id"] != "biz-1" {
		t.Fatalf("unexpected body: %v", body)
	}

	uc.EXPECT().ResolveByEmail(gomock.Any(), "nobody@x.io").Return(invitation.Match{}, usecase.ErrInvitationNotFound)
	if w := perform(r, http.MethodPost, "/v1/invitations/resolve", `{"email":"nobody@x.io"}`); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestInvitationHandler_ListActivateDeleteJoin(t *testing.T) {
	r, uc := newInvitationRouter(t)

	uc.EXPECT().ListByBusiness(gomock.Any(), "biz-1").Return([]entities.TeamInvitation{{ID: "i-1"}}, nil)
	if w := perform(r, http.MethodGet, "/v1/invitations?business_id=biz-1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().Activate(gomock.Any(), "i-1").Return(entities.TeamInvitation{ID: "i-1", Status: entities.InvitationStatusActive}, nil)
	if w := perform(r, http.MethodPatch, "/v1/invitations/i-1/activate", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	uc.EXPECT().Delete(gomock.Any(), "i-2").Return(usecase.ErrInvitationNotFound)
	if w := perform(r, http.MethodDelete, "/v1/invitations/i-2", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	uc.EXPECT().Join(gomock.Any(), usecase.UserInput{FullName: "Tess", Email: "t@x.io"}).
		Return(invitation.Match{BusinessID: "biz-1", Tier: invitation.TierExact}, entities.UserProfile{ID: "u-1", BusinessID: "biz-1"}, nil)
	if w := perform(r, http.MethodPost, "/v1/invitations/join", `{"full_name":"Tess","email":"t@x.io"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestMapInvitationError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{fmt.Errorf("%w: x", usecase.ErrValidation), http.StatusBadRequest},
		{usecase.ErrInvitationNotFound, http.StatusNotFound},
		{usecase.ErrInvitationExists, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := mapInvitationError(tc.err); got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
