package reporting

import (
	"math/rand"
	"testing"
	"time"

	"quotedesk/internal/domain/dates"
	"quotedesk/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var march = dates.Period{Month: time.March, Year: 2025}

func TestRevenue_DepositAndFinalSameMonth(t *testing.T) {
	c := entities.NewQuoteCollection()
	c[entities.StageScheduledWork] = []entities.Quote{
		{ID: "quote-1", Total: 200, DepositAmount: 100, DepositDate: "2025-03-04"},
	}
	c[entities.StageComplete] = []entities.Quote{
		{ID: "quote-2", Total: 80, DepositAmount: 30, DepositDate: "2025-02-10", CompletedDate: "2025-03-01", FinalPaymentDate: "2025-03-20", IsPaid: true},
	}

	m := Compute(c, march)

	require.Len(t, m.Payments, 2)
	assert.Equal(t, PaymentTypeDeposit, m.Payments[0].PaymentType)
	assert.Equal(t, 100.0, m.Payments[0].PaymentAmount)
	assert.Equal(t, PaymentTypeFinal, m.Payments[1].PaymentType)
	assert.Equal(t, "2025-03-20", m.Payments[1].PaymentDate)
	assert.Equal(t, 50.0, m.Payments[1].PaymentAmount)
	assert.Equal(t, 150.0, m.GrossRevenue)
	assert.Equal(t, 0.75, m.ServiceFees)
	assert.Equal(t, 149.25, m.NetRevenue)
	assert.Equal(t, 1, m.JobsCompleted)
	assert.Equal(t, 150.0, m.AverageJobSize)
}

func TestDepositAmount_DerivedWhenMissing(t *testing.T) {
	q := entities.Quote{Total: 115.5, DepositPercentage: 50}
	assert.Equal(t, 57.75, DepositAmount(q))
	assert.Equal(t, 57.75, FinalAmount(q))

	q.DepositAmount = 20
	assert.Equal(t, 20.0, DepositAmount(q))
	assert.Equal(t, 95.5, FinalAmount(q))
}

func TestCompletedJobs_PrefersFinalPaymentDate(t *testing.T) {
	c := entities.NewQuoteCollection()
	c[entities.StageComplete] = []entities.Quote{
		{ID: "paid-in-april", CompletedDate: "2025-03-28", FinalPaymentDate: "2025-04-02", IsPaid: true},
		{ID: "unpaid-march", CompletedDate: "2025-03-15"},
		{ID: "paid-march", CompletedDate: "2025-02-27", FinalPaymentDate: "2025-03-01", IsPaid: true},
	}

	jobs := CompletedJobs(c, march)
	ids := []string{}
	for _, q := range jobs {
		ids = append(ids, q.ID)
	}
	assert.Equal(t, []string{"unpaid-march", "paid-march"}, ids)
}

func TestConversion(t *testing.T) {
	c := entities.NewQuoteCollection()
	c[entities.StageDraft] = []entities.Quote{{ID: "d", Date: "2025-03-01"}}
	c[entities.StageSent] = []entities.Quote{{ID: "s1", Date: "2025-03-01"}, {ID: "s2", Date: "2025-03-02"}}
	c[entities.StageAccepted] = []entities.Quote{{ID: "a", Date: "2025-03-05"}}
	c[entities.StageComplete] = []entities.Quote{{ID: "c", Date: "2025-03-07"}, {ID: "old", Date: "2025-01-07"}}

	sent, converted, rate := Conversion(c, march)
	assert.Equal(t, 4, sent)
	assert.Equal(t, 2, converted)
	assert.Equal(t, 50.0, rate)

	_, _, rate = Conversion(entities.NewQuoteCollection(), march)
	assert.Equal(t, 0.0, rate)
}

func TestConversion_Bounded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		c := entities.NewQuoteCollection()
		for j := 0; j < rng.Intn(20); j++ {
			s := entities.Stages[rng.Intn(len(entities.Stages))]
			day := 1 + rng.Intn(28)
			month := time.Month(2 + rng.Intn(3))
			c[s] = append(c[s], entities.Quote{Date: time.Date(2025, month, day, 0, 0, 0, 0, time.UTC).Format(dates.Layout)})
		}
		_, _, rate := Conversion(c, march)
		if rate < 0 || rate > 100 {
			t.Fatalf("conversion out of bounds: %v", rate)
		}
	}
}

func TestMonthly_PreviousWrapsYear(t *testing.T) {
	c := entities.NewQuoteCollection()
	c[entities.StageComplete] = []entities.Quote{
		{ID: "dec", Total: 100, DepositAmount: 40, DepositDate: "2024-12-01", CompletedDate: "2024-12-10", FinalPaymentDate: "2024-12-12", IsPaid: true},
		{ID: "jan", Total: 300, DepositAmount: 100, DepositDate: "2025-01-03", CompletedDate: "2025-01-10", FinalPaymentDate: "2025-01-20", IsPaid: true},
	}

	r := Monthly(c, dates.Period{Month: time.January, Year: 2025})

	assert.Equal(t, dates.Period{Month: time.December, Year: 2024}, r.Previous.Period)
	assert.Equal(t, 100.0, r.Previous.GrossRevenue)
	assert.Equal(t, 300.0, r.Current.GrossRevenue)
	assert.Equal(t, 200.0, r.Changes.GrossRevenue)
	assert.Equal(t, 0.0, r.Changes.JobsCompleted)
}

func TestDelta(t *testing.T) {
	assert.Equal(t, 100.0, Delta(5, 0))
	assert.Equal(t, 0.0, Delta(0, 0))
	assert.Equal(t, 0.0, Delta(-3, 0))
	assert.Equal(t, -50.0, Delta(50, 100))
	assert.Equal(t, 25.0, Delta(125, 100))
}

func TestYearly(t *testing.T) {
	c := entities.NewQuoteCollection()
	c[entities.StageComplete] = []entities.Quote{
		{ID: "q1", Total: 100, DepositAmount: 50, DepositDate: "2025-02-01", CompletedDate: "2025-02-05", FinalPaymentDate: "2025-03-01", IsPaid: true},
	}

	y := Yearly(c, 2025)
	require.Len(t, y.Months, 12)
	assert.Equal(t, 50.0, y.Months[1].GrossRevenue)
	assert.Equal(t, 50.0, y.Months[2].GrossRevenue)
	assert.Equal(t, 100.0, y.GrossRevenue)
	assert.Equal(t, 0.5, y.ServiceFees)
	assert.Equal(t, 99.5, y.NetRevenue)
	assert.Equal(t, 1, y.JobsCompleted)
}
