// Package reporting derives month-scoped income metrics from a quote collection.
package reporting

import (
	"time"

	"quotedesk/internal/domain/dates"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/pricing"
)

type PaymentType string

const (
	PaymentTypeDeposit PaymentType = "Deposit"
	PaymentTypeFinal   PaymentType = "Final Payment"
)

// Payment is one money movement attributed to a period.
type Payment struct {
	Quote         entities.Quote `json:"quote"`
	PaymentType   PaymentType    `json:"payment_type"`
	PaymentDate   string         `json:"payment_date"`
	PaymentAmount float64        `json:"payment_amount"`
	ServiceFee    float64        `json:"service_fee"`
	NetAmount     float64        `json:"net_amount"`
}

// Metrics are the figures reported for one calendar month.
type Metrics struct {
	Period          dates.Period     `json:"period"`
	CompletedJobs   []entities.Quote `json:"completed_jobs"`
	Payments        []Payment        `json:"payments"`
	GrossRevenue    float64          `json:"gross_revenue"`
	ServiceFees     float64          `json:"service_fees"`
	NetRevenue      float64          `json:"net_revenue"`
	JobsCompleted   int              `json:"jobs_completed"`
	QuotesSent      int              `json:"quotes_sent"`
	QuotesConverted int              `json:"quotes_converted"`
	QuoteConversion float64          `json:"quote_conversion"`
	AverageJobSize  float64          `json:"average_job_size"`
}

// Changes holds percentage deltas against the previous month.
type Changes struct {
	GrossRevenue    float64 `json:"gross_revenue"`
	NetRevenue      float64 `json:"net_revenue"`
	JobsCompleted   float64 `json:"jobs_completed"`
	QuoteConversion float64 `json:"quote_conversion"`
	AverageJobSize  float64 `json:"average_job_size"`
}

// MonthlyReport is the current month, the month before, and the deltas.
type MonthlyReport struct {
	Current  Metrics `json:"current"`
	Previous Metrics `json:"previous"`
	Changes  Changes `json:"changes"`
}

// YearlyReport breaks a year down month by month.
type YearlyReport struct {
	Year          int       `json:"year"`
	Months        []Metrics `json:"months"`
	GrossRevenue  float64   `json:"gross_revenue"`
	ServiceFees   float64   `json:"service_fees"`
	NetRevenue    float64   `json:"net_revenue"`
	JobsCompleted int       `json:"jobs_completed"`
}

var convertedStages = map[entities.Stage]bool{
	entities.StageAccepted:      true,
	entities.StageScheduledWork: true,
	entities.StageComplete:      true,
}

var issuedStages = []entities.Stage{
	entities.StageSent,
	entities.StageAccepted,
	entities.StageScheduledWork,
	entities.StageComplete,
}

// CompletedJobs returns Complete quotes whose final payment date, or failing
// that completion date, falls in p.
func CompletedJobs(c entities.QuoteCollection, p dates.Period) []entities.Quote {
	out := []entities.Quote{}
	for _, q := range c[entities.StageComplete] {
		ref := q.FinalPaymentDate
		if ref == "" {
			ref = q.CompletedDate
		}
		if p.Contains(ref) {
			out = append(out, q)
		}
	}
	return out
}

// DepositAmount prefers the stored amount and derives it from the total otherwise.
func DepositAmount(q entities.Quote) float64 {
	if q.DepositAmount != 0 {
		return q.DepositAmount
	}
	return pricing.PercentOf(q.Total, q.DepositPercentage)
}

// FinalAmount is total minus the deposit.
func FinalAmount(q entities.Quote) float64 {
	return pricing.Sub(q.Total, DepositAmount(q))
}

// DepositPayments are ScheduledWork or Complete quotes whose deposit landed in p.
func DepositPayments(c entities.QuoteCollection, p dates.Period) []Payment {
	out := []Payment{}
	for _, s := range []entities.Stage{entities.StageScheduledWork, entities.StageComplete} {
		for _, q := range c[s] {
			if p.Contains(q.DepositDate) {
				out = append(out, newPayment(q, PaymentTypeDeposit, q.DepositDate, DepositAmount(q)))
			}
		}
	}
	return out
}

// FinalPayments are Complete quotes whose final payment landed in p.
func FinalPayments(c entities.QuoteCollection, p dates.Period) []Payment {
	out := []Payment{}
	for _, q := range c[entities.StageComplete] {
		if p.Contains(q.FinalPaymentDate) {
			out = append(out, newPayment(q, PaymentTypeFinal, q.FinalPaymentDate, FinalAmount(q)))
		}
	}
	return out
}

// CombinedPayments is deposits followed by final payments for p.
func CombinedPayments(c entities.QuoteCollection, p dates.Period) []Payment {
	return append(DepositPayments(c, p), FinalPayments(c, p)...)
}

func newPayment(q entities.Quote, kind PaymentType, date string, amount float64) Payment {
	return Payment{
		Quote:         q,
		PaymentType:   kind,
		PaymentDate:   date,
		PaymentAmount: amount,
		ServiceFee:    pricing.Round2(pricing.PaymentFee(amount)),
		NetAmount:     pricing.NetOfFee(amount),
	}
}

// Revenue sums the payments. Fees are summed unrounded and rounded once.
func Revenue(payments []Payment) (gross, fees, net float64) {
	amounts := make([]float64, 0, len(payments))
	rawFees := make([]float64, 0, len(payments))
	for _, p := range payments {
		amounts = append(amounts, p.PaymentAmount)
		rawFees = append(rawFees, pricing.PaymentFee(p.PaymentAmount))
	}
	gross = pricing.Sum(amounts...)
	fees = pricing.Sum(rawFees...)
	net = pricing.Sub(gross, fees)
	return gross, fees, net
}

// Conversion counts quotes first sent in p across the issued stages and
// returns how many of those moved past Sent, with the percentage.
func Conversion(c entities.QuoteCollection, p dates.Period) (sent, converted int, rate float64) {
	for _, s := range issuedStages {
		for _, q := range c[s] {
			if !p.Contains(q.Date) {
				continue
			}
			sent++
			if convertedStages[s] {
				converted++
			}
		}
	}
	if sent == 0 {
		return 0, 0, 0
	}
	return sent, converted, pricing.Ratio(float64(converted)*100, float64(sent))
}

// Compute builds the metrics for one period.
func Compute(c entities.QuoteCollection, p dates.Period) Metrics {
	c = c.Normalize()
	m := Metrics{
		Period:        p,
		CompletedJobs: CompletedJobs(c, p),
		Payments:      CombinedPayments(c, p),
	}
	m.GrossRevenue, m.ServiceFees, m.NetRevenue = Revenue(m.Payments)
	m.JobsCompleted = len(m.CompletedJobs)
	m.QuotesSent, m.QuotesConverted, m.QuoteConversion = Conversion(c, p)
	if m.JobsCompleted > 0 {
		m.AverageJobSize = pricing.Ratio(m.GrossRevenue, float64(m.JobsCompleted))
	}
	return m
}

// Monthly computes p and the month before it, plus the deltas.
func Monthly(c entities.QuoteCollection, p dates.Period) MonthlyReport {
	cur := Compute(c, p)
	prev := Compute(c, p.Previous())
	return MonthlyReport{
		Current:  cur,
		Previous: prev,
		Changes: Changes{
			GrossRevenue:    Delta(cur.GrossRevenue, prev.GrossRevenue),
			NetRevenue:      Delta(cur.NetRevenue, prev.NetRevenue),
			JobsCompleted:   Delta(float64(cur.JobsCompleted), float64(prev.JobsCompleted)),
			QuoteConversion: Delta(cur.QuoteConversion, prev.QuoteConversion),
			AverageJobSize:  Delta(cur.AverageJobSize, prev.AverageJobSize),
		},
	}
}

// Yearly computes every month of year.
func Yearly(c entities.QuoteCollection, year int) YearlyReport {
	r := YearlyReport{Year: year, Months: make([]Metrics, 0, 12)}
	gross := make([]float64, 0, 12)
	fees := make([]float64, 0, 12)
	for m := time.January; m <= time.December; m++ {
		mm := Compute(c, dates.Period{Month: m, Year: year})
		r.Months = append(r.Months, mm)
		gross = append(gross, mm.GrossRevenue)
		fees = append(fees, mm.ServiceFees)
		r.JobsCompleted += mm.JobsCompleted
	}
	r.GrossRevenue = pricing.Sum(gross...)
	r.ServiceFees = pricing.Sum(fees...)
	r.NetRevenue = pricing.Sub(r.GrossRevenue, r.ServiceFees)
	return r
}

// Delta is the percentage change from previous to current. A zero previous
// value reports 100 when current grew and 0 otherwise.
func Delta(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return pricing.Ratio((current-previous)*100, previous)
}
