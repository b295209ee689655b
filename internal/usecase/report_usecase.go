package usecase

import (
	"context"
	"fmt"
	"time"

	"quotedesk/internal/domain/dates"
	"quotedesk/internal/domain/reporting"
	"quotedesk/internal/infrastructure/logger"
	"quotedesk/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IReportUseCase exposes income reporting over the current quotes.
type IReportUseCase interface {
	Monthly(ctx context.Context, month, year int) (reporting.MonthlyReport, error)
	Yearly(ctx context.Context, year int) (reporting.YearlyReport, error)
}

type ReportUseCase struct {
	store *QuoteStore
	clock interfaces.IClock
	log   *zap.Logger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(store *QuoteStore, clock interfaces.IClock, log *zap.Logger) *ReportUseCase {
	return &ReportUseCase{store: store, clock: clock, log: logger.OrNop(log)}
}

// period resolves a (month, year) pair. Zero values mean the current month
// or year.
func (u *ReportUseCase) period(month, year int) (dates.Period, error) {
	now := dates.PeriodOf(u.clock.Now())
	if month == 0 {
		month = int(now.Month)
	}
	if year == 0 {
		year = now.Year
	}
	p := dates.Period{Month: time.Month(month), Year: year}
	if !p.Valid() {
		return dates.Period{}, invalid(ErrInvalidPeriod, fmt.Sprintf("month=%d year=%d", month, year))
	}
	return p, nil
}

func (u *ReportUseCase) Monthly(ctx context.Context, month, year int) (reporting.MonthlyReport, error) {
	p, err := u.period(month, year)
	if err != nil {
		return reporting.MonthlyReport{}, err
	}
	r := reporting.Monthly(u.store.Snapshot(), p)
	u.log.Debug("[report][usecase] monthly computed",
		zap.Int("month", int(p.Month)),
		zap.Int("year", p.Year),
		zap.Float64("gross_revenue", r.Current.GrossRevenue),
	)
	return r, nil
}

func (u *ReportUseCase) Yearly(ctx context.Context, year int) (reporting.YearlyReport, error) {
	p, err := u.period(0, year)
	if err != nil {
		return reporting.YearlyReport{}, err
	}
	return reporting.Yearly(u.store.Snapshot(), p.Year), nil
}
