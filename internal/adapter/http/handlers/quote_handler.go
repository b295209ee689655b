package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	request "quotedesk/internal/adapter/http/dto/request"
	response "quotedesk/internal/adapter/http/dto/response"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/lifecycle"
	"quotedesk/internal/usecase"
	"quotedesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles quote editing, lookup and stage transitions.
type QuoteHandler struct {
	usecase   usecase.IQuoteUseCase
	documents usecase.IDocumentUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, documents usecase.IDocumentUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc, documents: documents}
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	if stage := strings.TrimSpace(c.Query("stage")); stage != "" {
		quotes, err := h.usecase.ListStage(c.Request.Context(), stage)
		if err != nil {
			appErr := mapQuoteError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		out := make([]response.QuoteResponse, 0, len(quotes))
		for _, q := range quotes {
			out = append(out, response.FromQuote(q, entities.Stage(stage)))
		}
		c.JSON(http.StatusOK, out)
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteCollection(h.usecase.List(c.Request.Context())))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	q, stage, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q, stage))
}

func (h *QuoteHandler) PricingPreview(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	b, err := h.usecase.PricingPreview(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBreakdown(b))
}

func (h *QuoteHandler) CreateDraft(c *gin.Context) {
	h.saveDraft(c, "", http.StatusCreated)
}

func (h *QuoteHandler) UpdateDraft(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}
	h.saveDraft(c, id, http.StatusOK)
}

func (h *QuoteHandler) saveDraft(c *gin.Context, id string, status int) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.SaveDraft(c.Request.Context(), id, payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(status, response.FromQuote(q, entities.StageDraft))
}

func (h *QuoteHandler) DeleteDraft(c *gin.Context) {
	if _, err := h.usecase.DeleteDraft(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SendQuote composes and sends in one step. A draft_id in the body marks an
// edited draft that is replaced by the sent quote.
func (h *QuoteHandler) SendQuote(c *gin.Context) {
	var payload request.SendQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	q, err := h.usecase.SendQuote(c.Request.Context(), payload.DraftID, payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromQuote(q, entities.StageSent))
}

func (h *QuoteHandler) SendDraft(c *gin.Context) {
	h.transition(c, h.usecase.SendDraft, entities.StageSent)
}

func (h *QuoteHandler) Resend(c *gin.Context) {
	h.transition(c, h.usecase.Resend, entities.StageSent)
}

func (h *QuoteHandler) Accept(c *gin.Context) {
	h.transition(c, h.usecase.Accept, entities.StageAccepted)
}

func (h *QuoteHandler) MarkDepositPaid(c *gin.Context) {
	h.transition(c, h.usecase.MarkDepositPaid, entities.StageScheduledWork)
}

func (h *QuoteHandler) MarkWorkComplete(c *gin.Context) {
	h.transition(c, h.usecase.MarkWorkComplete, entities.StageComplete)
}

func (h *QuoteHandler) MarkFinalPayment(c *gin.Context) {
	h.transition(c, h.usecase.MarkFinalPayment, entities.StageComplete)
}

func (h *QuoteHandler) transition(
	c *gin.Context,
	apply func(ctx context.Context, id string) (entities.Quote, error),
	stage entities.Stage,
) {
	q, err := apply(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q, stage))
}

func (h *QuoteHandler) QuotePDF(c *gin.Context) {
	b, q, err := h.documents.QuotePDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.pdf"`, q.ID))
	c.Data(http.StatusOK, "application/pdf", b)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrChargeNotApplied):
		return pkg.NewDomainError("CHARGE_NOT_APPLIED", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, lifecycle.ErrMissingQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, lifecycle.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found in the expected stage", http.StatusNotFound)
	case errors.Is(err, lifecycle.ErrQuoteAlreadyPaid):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_PAID", "Quote already paid", http.StatusConflict)
	case errors.Is(err, lifecycle.ErrQuoteExists):
		return pkg.NewDomainErrorSimple("QUOTE_ALREADY_SENT", "Quote already exists outside drafts", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainError("PAYMENT_NOT_APPROVED", "Payment was not approved", err, http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_GATEWAY_FAILED", "Payment provider unavailable, try again", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrDocumentRenderFailed):
		return pkg.NewDomainError("DOCUMENT_RENDER_FAILED", "Could not render document", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
