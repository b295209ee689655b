package usecase

import (
	"context"
	"fmt"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/pricing"
	"quotedesk/internal/infrastructure/logger"
	"quotedesk/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IDocumentUseCase produces shareable documents. All amounts are computed
// here and handed to the renderer ready to print.
type IDocumentUseCase interface {
	QuotePDF(ctx context.Context, id string) ([]byte, entities.Quote, error)
	IncomeStatementPDF(ctx context.Context, month, year int) ([]byte, error)
}

type DocumentUseCase struct {
	quotes   IQuoteUseCase
	reports  IReportUseCase
	state    *AppState
	renderer interfaces.IDocumentRenderer
	log      *zap.Logger
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(quotes IQuoteUseCase, reports IReportUseCase, state *AppState, renderer interfaces.IDocumentRenderer, log *zap.Logger) *DocumentUseCase {
	return &DocumentUseCase{quotes: quotes, reports: reports, state: state, renderer: renderer, log: logger.OrNop(log)}
}

func (u *DocumentUseCase) business() entities.BusinessProfile {
	if u.state == nil {
		return entities.BusinessProfile{}
	}
	return u.state.Business()
}

func (u *DocumentUseCase) QuotePDF(ctx context.Context, id string) ([]byte, entities.Quote, error) {
	q, stage, err := u.quotes.Get(ctx, id)
	if err != nil {
		return nil, entities.Quote{}, err
	}

	doc := interfaces.QuoteDocument{
		Business:  u.business(),
		Quote:     q,
		Stage:     stage,
		Breakdown: pricing.BreakdownOf(q),
	}
	b, err := u.renderer.RenderQuote(ctx, doc)
	if err != nil {
		u.log.Error("[document][usecase] quote render failed", zap.String("quote_id", q.ID), zap.Error(err))
		return nil, entities.Quote{}, fmt.Errorf("%w: %v", ErrDocumentRenderFailed, err)
	}
	u.log.Info("[document][usecase] quote rendered", zap.String("quote_id", q.ID), zap.Int("bytes", len(b)))
	return b, q, nil
}

func (u *DocumentUseCase) IncomeStatementPDF(ctx context.Context, month, year int) ([]byte, error) {
	r, err := u.reports.Monthly(ctx, month, year)
	if err != nil {
		return nil, err
	}

	b, err := u.renderer.RenderIncomeStatement(ctx, interfaces.IncomeStatementDocument{
		Business: u.business(),
		Report:   r,
	})
	if err != nil {
		u.log.Error("[document][usecase] income statement render failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrDocumentRenderFailed, err)
	}
	return b, nil
}
