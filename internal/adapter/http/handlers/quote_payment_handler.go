package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	response "quotedesk/internal/adapter/http/dto/response"
	"quotedesk/internal/usecase"
	"quotedesk/pkg"

	"github.com/gin-gonic/gin"
)

// QuotePaymentHandler charges deposits and final payments. The body is
// forwarded to the payment provider; the amount always comes from the quote.
type QuotePaymentHandler struct {
	usecase usecase.IQuotePaymentUseCase
}

func NewQuotePaymentHandler(uc usecase.IQuotePaymentUseCase) *QuotePaymentHandler {
	return &QuotePaymentHandler{usecase: uc}
}

func (h *QuotePaymentHandler) ChargeDeposit(c *gin.Context) {
	h.charge(c, h.usecase.ChargeDeposit)
}

func (h *QuotePaymentHandler) ChargeFinalPayment(c *gin.Context) {
	h.charge(c, h.usecase.ChargeFinalPayment)
}

func (h *QuotePaymentHandler) ListPayments(c *gin.Context) {
	items, err := h.usecase.Payments(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecords(items))
}

func (h *QuotePaymentHandler) charge(
	c *gin.Context,
	apply func(ctx context.Context, id string, payload json.RawMessage) (usecase.PaymentResult, error),
) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := apply(c.Request.Context(), c.Param("id"), json.RawMessage(body))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}
