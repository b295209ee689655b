package handlers

import (
	"errors"
	"net/http"

	request "quotedesk/internal/adapter/http/dto/request"
	response "quotedesk/internal/adapter/http/dto/response"
	"quotedesk/internal/usecase"
	"quotedesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInvitationPayload = pkg.NewDomainErrorSimple("INVALID_INVITATION_INPUT", "Invalid invitation payload", http.StatusBadRequest)
)

type InvitationHandler struct {
	usecase usecase.IInvitationUseCase
}

func NewInvitationHandler(uc usecase.IInvitationUseCase) *InvitationHandler {
	return &InvitationHandler{usecase: uc}
}

func (h *InvitationHandler) Invite(c *gin.Context) {
	var payload request.InvitationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvitationPayload.HTTPStatus, errInvalidInvitationPayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.Invite(c.Request.Context(), payload.BusinessID, payload.Email, payload.Role)
	if err != nil {
		appErr := mapInvitationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromInvitation(inv))
}

func (h *InvitationHandler) ListByBusiness(c *gin.Context) {
	items, err := h.usecase.ListByBusiness(c.Request.Context(), c.Query("business_id"))
	if err != nil {
		appErr := mapInvitationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvitations(items))
}

func (h *InvitationHandler) Activate(c *gin.Context) {
	inv, err := h.usecase.Activate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvitationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvitation(inv))
}

func (h *InvitationHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInvitationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InvitationHandler) Resolve(c *gin.Context) {
	var payload request.ResolveInvitationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvitationPayload.HTTPStatus, errInvalidInvitationPayload.ToHTTPError())
		return
	}

	m, err := h.usecase.ResolveByEmail(c.Request.Context(), payload.Email)
	if err != nil {
		appErr := mapInvitationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromMatch(m))
}

func (h *InvitationHandler) Join(c *gin.Context) {
	var payload request.JoinTeamRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvitationPayload.HTTPStatus, errInvalidInvitationPayload.ToHTTPError())
		return
	}

	m, usr, err := h.usecase.Join(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapInvitationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"match": response.FromMatch(m), "user": usr})
}

func mapInvitationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvitationNotFound):
		return pkg.NewDomainErrorSimple("INVITATION_NOT_FOUND", "No invitation found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvitationExists):
		return pkg.NewDomainErrorSimple("INVITATION_ALREADY_EXISTS", "A pending invitation already exists for this email", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
