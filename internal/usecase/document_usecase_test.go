package usecase

import (
	"context"
	"errors"
	"testing"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/infrastructure/clock"
	"quotedesk/internal/usecase/interfaces"
	mock_interfaces "quotedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDocumentUseCase_QuotePDF(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
	quotes, _, _, _ := newQuoteFixture(t)
	q, _ := quotes.SendQuote(context.Background(), "", sampleInput())

	state := NewAppState()
	state.setBusiness(entities.BusinessProfile{ID: "biz-1", Name: "Ace"})
	uc := NewDocumentUseCase(quotes, nil, state, renderer, nil)

	renderer.EXPECT().RenderQuote(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, doc interfaces.QuoteDocument) ([]byte, error) {
			if doc.Business.Name != "Ace" || doc.Stage != entities.StageSent {
				t.Fatalf("unexpected document: %+v", doc)
			}
			if doc.Breakdown.Total != 115.5 || doc.Breakdown.FinalNetOfFee != 57.46 {
				t.Fatalf("unexpected breakdown: %+v", doc.Breakdown)
			}
			return []byte("%PDF-1.3"), nil
		})

	b, got, err := uc.QuotePDF(context.Background(), q.ID)
	if err != nil || string(b) != "%PDF-1.3" || got.ID != q.ID {
		t.Fatalf("unexpected result: %q %+v err=%v", b, got, err)
	}
}

func TestDocumentUseCase_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	renderer := mock_interfaces.NewMockIDocumentRenderer(ctrl)
	quotes, _, _, _ := newQuoteFixture(t)
	reports := NewReportUseCase(NewQuoteStore(nil, nil), clock.NewFake(day1), nil)
	uc := NewDocumentUseCase(quotes, reports, nil, renderer, nil)

	if _, _, err := uc.QuotePDF(context.Background(), "missing"); !IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	renderer.EXPECT().RenderIncomeStatement(gomock.Any(), gomock.Any()).Return(nil, errors.New("font missing"))
	if _, err := uc.IncomeStatementPDF(context.Background(), 3, 2025); !errors.Is(err, ErrDocumentRenderFailed) {
		t.Fatalf("expected ErrDocumentRenderFailed, got %v", err)
	}

	if _, err := uc.IncomeStatementPDF(context.Background(), 14, 2025); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}
