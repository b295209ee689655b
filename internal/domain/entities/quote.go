package entities

// Stage is one of the five fixed quote lifecycle buckets.
//
// Domain notes:
//   - A quote lives in exactly one bucket at a time.
//   - Moving between buckets is a move, never a copy.
type Stage string

const (
	StageDraft         Stage = "draft"
	StageSent          Stage = "sent"
	StageAccepted      Stage = "accepted"
	StageScheduledWork Stage = "scheduled_work"
	StageComplete      Stage = "complete"
)

// Stages lists every bucket in lifecycle order.
var Stages = []Stage{StageDraft, StageSent, StageAccepted, StageScheduledWork, StageComplete}

func (s Stage) Valid() bool {
	for _, st := range Stages {
		if s == st {
			return true
		}
	}
	return false
}

type ContactMethod string

const (
	ContactMethodPhone ContactMethod = "phone"
	ContactMethodEmail ContactMethod = "email"
)

// ID prefixes tell where a quote originated.
const (
	DraftIDPrefix = "draft-"
	SentIDPrefix  = "quote-"
)

// LineItem is owned by its parent Quote.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// Quote is one job estimate.
//
// Monetary representation:
//   - Amount fields are derived from LineItems by the pricing package and
//     rounded half-up to 2 decimals at every step.
//
// Dates:
//   - All dates are calendar dates in ISO YYYY-MM-DD form.
//   - Date holds the first send date; SentDates accumulates the original
//     send plus every resend.
type Quote struct {
	ID            string        `json:"id"`
	CustomerName  string        `json:"customer_name"`
	ContactMethod ContactMethod `json:"contact_method"`
	ContactValue  string        `json:"contact_value"`
	Address       string        `json:"address"`
	Description   string        `json:"description"`
	LineItems     []LineItem    `json:"line_items"`

	VATPercentage           float64 `json:"vat_percentage"`
	DepositPercentage       float64 `json:"deposit_percentage"`
	ServiceChargePercentage float64 `json:"service_charge_percentage"`

	Subtotal            float64 `json:"subtotal"`
	VATAmount           float64 `json:"vat_amount"`
	ServiceChargeAmount float64 `json:"service_charge_amount"`
	Total               float64 `json:"total"`
	DepositAmount       float64 `json:"deposit_amount"`
	FinalPaymentAmount  float64 `json:"final_payment_amount"`

	Date             string   `json:"date,omitempty"`
	SentDates        []string `json:"sent_dates,omitempty"`
	AcceptedDate     string   `json:"accepted_date,omitempty"`
	DepositDate      string   `json:"deposit_date,omitempty"`
	CompletedDate    string   `json:"completed_date,omitempty"`
	FinalPaymentDate string   `json:"final_payment_date,omitempty"`
	IsPaid           bool     `json:"is_paid"`
}

// Clone returns a deep copy so bucket slices never share backing arrays.
func (q Quote) Clone() Quote {
	out := q
	if q.LineItems != nil {
		out.LineItems = append([]LineItem(nil), q.LineItems...)
	}
	if q.SentDates != nil {
		out.SentDates = append([]string(nil), q.SentDates...)
	}
	return out
}

// QuoteCollection maps each stage to its quotes, most recently moved in first.
// It is the unit of persistence.
type QuoteCollection map[Stage][]Quote

// NewQuoteCollection returns a collection with every bucket present and empty.
func NewQuoteCollection() QuoteCollection {
	c := make(QuoteCollection, len(Stages))
	for _, s := range Stages {
		c[s] = []Quote{}
	}
	return c
}

// Normalize makes sure all five buckets exist and drops unknown keys.
func (c QuoteCollection) Normalize() QuoteCollection {
	out := NewQuoteCollection()
	for _, s := range Stages {
		if qs, ok := c[s]; ok && qs != nil {
			out[s] = qs
		}
	}
	return out
}

// Clone deep-copies every bucket.
func (c QuoteCollection) Clone() QuoteCollection {
	out := make(QuoteCollection, len(Stages))
	for _, s := range Stages {
		src := c[s]
		dst := make([]Quote, len(src))
		for i, q := range src {
			dst[i] = q.Clone()
		}
		out[s] = dst
	}
	return out
}

// Find returns the quote with the given id and the bucket that holds it.
func (c QuoteCollection) Find(id string) (Quote, Stage, bool) {
	for _, s := range Stages {
		for _, q := range c[s] {
			if q.ID == id {
				return q, s, true
			}
		}
	}
	return Quote{}, "", false
}

// IndexIn returns the position of id inside a bucket, or -1.
func (c QuoteCollection) IndexIn(stage Stage, id string) int {
	for i, q := range c[stage] {
		if q.ID == id {
			return i
		}
	}
	return -1
}

// Count returns the number of quotes across all buckets.
func (c QuoteCollection) Count() int {
	n := 0
	for _, s := range Stages {
		n += len(c[s])
	}
	return n
}
