package interfaces

import (
	"context"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/pricing"
	"quotedesk/internal/domain/reporting"
)

// QuoteDocument carries a quote with every amount already computed.
type QuoteDocument struct {
	Business  entities.BusinessProfile
	Quote     entities.Quote
	Stage     entities.Stage
	Breakdown pricing.Breakdown
}

// IncomeStatementDocument carries an already aggregated monthly report.
type IncomeStatementDocument struct {
	Business entities.BusinessProfile
	Report   reporting.MonthlyReport
}

// IDocumentRenderer turns computed data into a binary document. It performs no
// calculation of its own.
type IDocumentRenderer interface {
	RenderQuote(ctx context.Context, doc QuoteDocument) ([]byte, error)
	RenderIncomeStatement(ctx context.Context, doc IncomeStatementDocument) ([]byte, error)
}
