package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"quotedesk/internal/usecase"
	"quotedesk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPeriodQuery = pkg.NewDomainErrorSimple("INVALID_PERIOD", "month and year must be integers", http.StatusBadRequest)
)

type ReportHandler struct {
	usecase   usecase.IReportUseCase
	documents usecase.IDocumentUseCase
}

func NewReportHandler(uc usecase.IReportUseCase, documents usecase.IDocumentUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc, documents: documents}
}

func (h *ReportHandler) Monthly(c *gin.Context) {
	month, year, ok := periodQuery(c)
	if !ok {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return
	}

	r, err := h.usecase.Monthly(c.Request.Context(), month, year)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ReportHandler) Yearly(c *gin.Context) {
	_, year, ok := periodQuery(c)
	if !ok {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return
	}

	r, err := h.usecase.Yearly(c.Request.Context(), year)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ReportHandler) IncomeStatementPDF(c *gin.Context) {
	month, year, ok := periodQuery(c)
	if !ok {
		c.JSON(errInvalidPeriodQuery.HTTPStatus, errInvalidPeriodQuery.ToHTTPError())
		return
	}

	b, err := h.documents.IncomeStatementPDF(c.Request.Context(), month, year)
	if err != nil {
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="income-statement-%d-%02d.pdf"`, year, month))
	c.Data(http.StatusOK, "application/pdf", b)
}

// periodQuery reads optional month and year query parameters. Missing
// values are 0 and resolved to the current period by the use case.
func periodQuery(c *gin.Context) (month, year int, ok bool) {
	parse := func(key string) (int, bool) {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			return 0, true
		}
		v, err := strconv.Atoi(raw)
		return v, err == nil
	}
	if month, ok = parse("month"); !ok {
		return 0, 0, false
	}
	if year, ok = parse("year"); !ok {
		return 0, 0, false
	}
	return month, year, true
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainError("INVALID_PERIOD", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDocumentRenderFailed):
		return pkg.NewDomainError("DOCUMENT_RENDER_FAILED", "Could not render document", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
