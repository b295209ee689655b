package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/infrastructure/clock"
)

func seededStore(t *testing.T) *QuoteStore {
	t.Helper()
	s := NewQuoteStore(nil, nil)
	c := entities.NewQuoteCollection()
	c[entities.StageScheduledWork] = []entities.Quote{
		{ID: "q-dep", Date: "2025-03-01", Total: 200, DepositAmount: 100, DepositDate: "2025-03-05"},
	}
	c[entities.StageComplete] = []entities.Quote{
		{ID: "q-fin", Date: "2025-02-10", Total: 100, DepositAmount: 50, DepositDate: "2025-02-12", FinalPaymentDate: "2025-03-20", IsPaid: true},
	}
	c[entities.StageSent] = []entities.Quote{{ID: "q-sent", Date: "2025-03-02"}}
	s.Replace(context.Background(), c)
	return s
}

func TestReportUseCase_Monthly(t *testing.T) {
	uc := NewReportUseCase(seededStore(t), clock.NewFake(day1), nil)

	r, err := uc.Monthly(context.Background(), 3, 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Current.GrossRevenue != 150 || r.Current.ServiceFees != 0.75 || r.Current.NetRevenue != 149.25 {
		t.Fatalf("unexpected revenue: %+v", r.Current)
	}
	if r.Current.QuotesSent != 2 || r.Current.QuotesConverted != 1 || r.Current.QuoteConversion != 50 {
		t.Fatalf("unexpected conversion: %+v", r.Current)
	}
	if r.Previous.GrossRevenue != 50 || r.Changes.GrossRevenue != 200 {
		t.Fatalf("unexpected previous/changes: prev=%v change=%v", r.Previous.GrossRevenue, r.Changes.GrossRevenue)
	}
}

func TestReportUseCase_DefaultsToCurrentMonth(t *testing.T) {
	uc := NewReportUseCase(seededStore(t), clock.NewFake(day1), nil)
	r, err := uc.Monthly(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Current.Period.Month != time.March || r.Current.Period.Year != 2025 {
		t.Fatalf("unexpected period: %+v", r.Current.Period)
	}
}

func TestReportUseCase_InvalidPeriod(t *testing.T) {
	uc := NewReportUseCase(seededStore(t), clock.NewFake(day1), nil)
	if _, err := uc.Monthly(context.Background(), 13, 2025); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
	if _, err := uc.Yearly(context.Background(), -1); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestReportUseCase_Yearly(t *testing.T) {
	uc := NewReportUseCase(seededStore(t), clock.NewFake(day1), nil)
	r, err := uc.Yearly(context.Background(), 2025)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Months) != 12 || r.GrossRevenue != 200 || r.JobsCompleted != 1 {
		t.Fatalf("unexpected yearly report: gross=%v jobs=%d months=%d", r.GrossRevenue, r.JobsCompleted, len(r.Months))
	}
}
