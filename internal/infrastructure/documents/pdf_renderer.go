package documents

import (
	"context"
	"fmt"
	"strings"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/reporting"
	"quotedesk/internal/usecase/interfaces"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// PDFRenderer lays out quotes and income statements. Every figure it prints
// is taken as given from the document.
type PDFRenderer struct {
	currency string
}

var _ interfaces.IDocumentRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer(currency string) *PDFRenderer {
	if currency == "" {
		currency = "£"
	}
	return &PDFRenderer{currency: currency}
}

func (r *PDFRenderer) money(v float64) string {
	return fmt.Sprintf("%s%.2f", r.currency, v)
}

func newDocument() core.Maroto {
	cfg := config.NewBuilder().
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
		}).
		Build()
	return maroto.New(cfg)
}

func businessHeader(m core.Maroto, b entities.BusinessProfile, title string) {
	m.AddRow(12,
		text.NewCol(8, title, props.Text{Size: 20, Style: fontstyle.Bold, Align: align.Left}),
		text.NewCol(4, b.Name, props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}),
	)
	contact := strings.TrimSpace(strings.Join(nonEmpty(b.Address, b.Phone, b.Email), " | "))
	m.AddRow(8,
		col.New(6),
		text.NewCol(6, contact, props.Text{Size: 8, Align: align.Right}),
	)
	if b.VATNumber != "" {
		m.AddRow(6,
			col.New(6),
			text.NewCol(6, "VAT no. "+b.VATNumber, props.Text{Size: 8, Align: align.Right}),
		)
	}
}

func (r *PDFRenderer) RenderQuote(ctx context.Context, doc interfaces.QuoteDocument) ([]byte, error) {
	q := doc.Quote
	b := doc.Breakdown
	m := newDocument()

	businessHeader(m, doc.Business, "Quote")

	m.AddRow(24,
		col.New(6).Add(
			text.New("Quote number: "+q.ID, props.Text{Top: 0}),
			text.New("Date: "+q.Date, props.Text{Top: 5}),
			text.New("Status: "+stageLabel(doc.Stage), props.Text{Top: 10}),
		),
		col.New(6).Add(
			text.New("Prepared for", props.Text{Style: fontstyle.Bold}),
			text.New(q.CustomerName, props.Text{Top: 5}),
			text.New(q.Address, props.Text{Top: 10}),
			text.New(q.ContactValue, props.Text{Top: 15}),
		),
	)

	if q.Description != "" {
		m.AddRow(14, text.NewCol(12, q.Description, props.Text{Size: 9, Top: 2}))
	}

	m.AddRow(10,
		text.NewCol(6, "Description", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Qty", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Unit price", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Amount", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	for i, item := range q.LineItems {
		amount := 0.0
		if i < len(b.ItemTotals) {
			amount = b.ItemTotals[i]
		}
		m.AddRow(8,
			text.NewCol(6, item.Description, props.Text{Size: 9}),
			text.NewCol(2, fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, r.money(item.Price), props.Text{Size: 9, Align: align.Right}),
			text.NewCol(2, r.money(amount), props.Text{Size: 9, Align: align.Right}),
		)
	}

	totals := [][2]string{
		{"Subtotal", r.money(b.Subtotal)},
		{fmt.Sprintf("VAT (%g%%)", q.VATPercentage), r.money(b.VATAmount)},
		{fmt.Sprintf("Service charge (%g%%)", q.ServiceChargePercentage), r.money(b.ServiceChargeAmount)},
		{"Total", r.money(b.Total)},
		{fmt.Sprintf("Deposit (%g%%)", q.DepositPercentage), r.money(b.DepositAmount)},
		{"Final payment", r.money(b.FinalPaymentAmount)},
	}
	for _, row := range totals {
		style := fontstyle.Normal
		if row[0] == "Total" {
			style = fontstyle.Bold
		}
		m.AddRow(7,
			col.New(7),
			text.NewCol(3, row[0], props.Text{Size: 9, Style: style}),
			text.NewCol(2, row[1], props.Text{Size: 9, Style: style, Align: align.Right}),
		)
	}

	if q.IsPaid {
		m.AddRow(12, text.NewCol(12, "Paid in full on "+q.FinalPaymentDate, props.Text{Size: 12, Style: fontstyle.Bold, Top: 4}))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return out.GetBytes(), nil
}

func (r *PDFRenderer) RenderIncomeStatement(ctx context.Context, doc interfaces.IncomeStatementDocument) ([]byte, error) {
	cur := doc.Report.Current
	m := newDocument()

	businessHeader(m, doc.Business, "Income statement")
	m.AddRow(10, text.NewCol(12, fmt.Sprintf("%s %d", cur.Period.Month, cur.Period.Year), props.Text{Size: 12, Top: 2}))

	summary := [][3]string{
		{"Gross revenue", r.money(cur.GrossRevenue), pct(doc.Report.Changes.GrossRevenue)},
		{"Service fees", r.money(cur.ServiceFees), ""},
		{"Net revenue", r.money(cur.NetRevenue), pct(doc.Report.Changes.NetRevenue)},
		{"Jobs completed", fmt.Sprintf("%d", cur.JobsCompleted), pct(doc.Report.Changes.JobsCompleted)},
		{"Quote conversion", fmt.Sprintf("%.2f%%", cur.QuoteConversion), pct(doc.Report.Changes.QuoteConversion)},
		{"Average job size", r.money(cur.AverageJobSize), pct(doc.Report.Changes.AverageJobSize)},
	}
	for _, row := range summary {
		m.AddRow(7,
			text.NewCol(6, row[0], props.Text{Size: 9}),
			text.NewCol(3, row[1], props.Text{Size: 9, Align: align.Right}),
			text.NewCol(3, row[2], props.Text{Size: 8, Align: align.Right}),
		)
	}

	m.AddRow(12, text.NewCol(12, "Payments", props.Text{Size: 12, Style: fontstyle.Bold, Top: 4}))
	m.AddRow(8,
		text.NewCol(2, "Date", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(4, "Customer", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Type", props.Text{Style: fontstyle.Bold, Size: 9}),
		text.NewCol(2, "Gross", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
		text.NewCol(2, "Net of fee", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right}),
	)
	for _, p := range cur.Payments {
		m.AddRow(7, paymentRow(r, p)...)
	}
	if len(cur.Payments) == 0 {
		m.AddRow(7, text.NewCol(12, "No payments in this period", props.Text{Size: 9}))
	}

	out, err := m.Generate()
	if err != nil {
		return nil, err
	}
	return out.GetBytes(), nil
}

func paymentRow(r *PDFRenderer, p reporting.Payment) []core.Col {
	return []core.Col{
		text.NewCol(2, p.PaymentDate, props.Text{Size: 9}),
		text.NewCol(4, p.Quote.CustomerName, props.Text{Size: 9}),
		text.NewCol(2, string(p.PaymentType), props.Text{Size: 9}),
		text.NewCol(2, r.money(p.PaymentAmount), props.Text{Size: 9, Align: align.Right}),
		text.NewCol(2, r.money(p.NetAmount), props.Text{Size: 9, Align: align.Right}),
	}
}

func pct(v float64) string {
	if v == 0 {
		return "-"
	}
	return fmt.Sprintf("%+.1f%% vs last month", v)
}

func stageLabel(s entities.Stage) string {
	switch s {
	case entities.StageDraft:
		return "Draft"
	case entities.StageSent:
		return "Sent"
	case entities.StageAccepted:
		return "Accepted"
	case entities.StageScheduledWork:
		return "Scheduled work"
	case entities.StageComplete:
		return "Complete"
	}
	return string(s)
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
