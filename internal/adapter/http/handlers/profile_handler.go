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
	errInvalidProfilePayload = pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid profile payload", http.StatusBadRequest)
)

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
	quotes  usecase.IQuoteUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase, quotes usecase.IQuoteUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc, quotes: quotes}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	b, u := h.usecase.Current(c.Request.Context())
	c.JSON(http.StatusOK, response.FromProfiles(b, u))
}

func (h *ProfileHandler) Onboard(c *gin.Context) {
	var payload request.OnboardingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}

	b, u, err := h.usecase.Onboard(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProfiles(b, u))
}

func (h *ProfileHandler) UpdateBusiness(c *gin.Context) {
	var payload request.BusinessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}

	b, err := h.usecase.UpdateBusiness(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *ProfileHandler) UpdateUser(c *gin.Context) {
	var payload request.UserRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}

	u, err := h.usecase.UpdateUser(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, u)
}

// ResetData wipes every quote bucket, both profiles and the team cache.
func (h *ProfileHandler) ResetData(c *gin.Context) {
	h.quotes.Reset(c.Request.Context())
	h.usecase.Reset(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
