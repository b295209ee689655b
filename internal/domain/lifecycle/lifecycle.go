// Package lifecycle moves quotes between stage buckets.
//
// Every transition is pure: it receives a collection, returns a new one and
// never mutates its input. Removal from the source bucket and insertion at the
// head of the destination bucket happen in the same returned value, so a
// caller that swaps collections atomically never exposes a half-moved quote.
package lifecycle

import (
	"errors"
	"strings"

	"quotedesk/internal/domain/entities"
)

var (
	ErrQuoteNotFound    = errors.New("quote not found")
	ErrQuoteAlreadyPaid = errors.New("quote already paid")
	ErrQuoteExists      = errors.New("quote already exists outside drafts")
	ErrMissingQuoteID   = errors.New("missing quote id")
)

// Transition is the shape shared by the id-based stage transitions.
type Transition func(c entities.QuoteCollection, id, today string) (entities.QuoteCollection, entities.Quote, error)

// SaveDraft creates a Draft entry or updates the existing one in place.
func SaveDraft(c entities.QuoteCollection, q entities.Quote) (entities.QuoteCollection, entities.Quote, error) {
	q.ID = strings.TrimSpace(q.ID)
	if q.ID == "" {
		return c, entities.Quote{}, ErrMissingQuoteID
	}
	if _, stage, ok := c.Find(q.ID); ok && stage != entities.StageDraft {
		return c, entities.Quote{}, ErrQuoteNotFound
	}

	out := c.Clone()
	q = q.Clone()
	if i := out.IndexIn(entities.StageDraft, q.ID); i >= 0 {
		out[entities.StageDraft][i] = q
		return out, q, nil
	}
	out[entities.StageDraft] = prepend(out[entities.StageDraft], q)
	return out, q, nil
}

// Send puts q at the head of Sent and stamps its send date. When q.ID names an
// existing draft (edit-then-send) that draft is removed in the same step.
func Send(c entities.QuoteCollection, q entities.Quote, today string) (entities.QuoteCollection, entities.Quote, error) {
	q.ID = strings.TrimSpace(q.ID)
	if q.ID == "" {
		return c, entities.Quote{}, ErrMissingQuoteID
	}
	if _, stage, ok := c.Find(q.ID); ok && stage != entities.StageDraft {
		return c, entities.Quote{}, ErrQuoteExists
	}

	out := c.Clone()
	out[entities.StageDraft] = remove(out[entities.StageDraft], q.ID)

	q = q.Clone()
	q.Date = today
	q.SentDates = []string{today}
	out[entities.StageSent] = prepend(out[entities.StageSent], q)
	return out, q, nil
}

// Resend appends today to SentDates. The quote stays where it is in Sent and
// its original Date is untouched.
func Resend(c entities.QuoteCollection, id, today string) (entities.QuoteCollection, entities.Quote, error) {
	return update(c, id, entities.StageSent, func(q *entities.Quote) error {
		if q.Date == "" {
			q.Date = today
		}
		q.SentDates = append(q.SentDates, today)
		return nil
	})
}

// Accept moves a Sent quote to Accepted.
func Accept(c entities.QuoteCollection, id, today string) (entities.QuoteCollection, entities.Quote, error) {
	return move(c, id, entities.StageSent, entities.StageAccepted, func(q *entities.Quote) {
		q.AcceptedDate = today
	})
}

// MarkDepositPaid moves an Accepted quote to ScheduledWork.
func MarkDepositPaid(c entities.QuoteCollection, id, today string) (entities.QuoteCollection, entities.Quote, error) {
	return move(c, id, entities.StageAccepted, entities.StageScheduledWork, func(q *entities.Quote) {
		q.DepositDate = today
	})
}

// MarkWorkComplete moves a ScheduledWork quote to Complete, unpaid.
func MarkWorkComplete(c entities.QuoteCollection, id, today string) (entities.QuoteCollection, entities.Quote, error) {
	return move(c, id, entities.StageScheduledWork, entities.StageComplete, func(q *entities.Quote) {
		q.CompletedDate = today
		q.IsPaid = false
	})
}

// MarkFinalPayment settles an unpaid Complete quote. It stays in Complete.
func MarkFinalPayment(c entities.QuoteCollection, id, today string) (entities.QuoteCollection, entities.Quote, error) {
	return update(c, id, entities.StageComplete, func(q *entities.Quote) error {
		if q.IsPaid {
			return ErrQuoteAlreadyPaid
		}
		q.FinalPaymentDate = today
		q.IsPaid = true
		return nil
	})
}

// DeleteDraft removes a Draft permanently.
func DeleteDraft(c entities.QuoteCollection, id string) (entities.QuoteCollection, entities.Quote, error) {
	id = strings.TrimSpace(id)
	i := c.IndexIn(entities.StageDraft, id)
	if id == "" || i < 0 {
		return c, entities.Quote{}, ErrQuoteNotFound
	}
	removed := c[entities.StageDraft][i].Clone()
	out := c.Clone()
	out[entities.StageDraft] = remove(out[entities.StageDraft], id)
	return out, removed, nil
}

// Reset returns an empty collection.
func Reset() entities.QuoteCollection {
	return entities.NewQuoteCollection()
}

func move(c entities.QuoteCollection, id string, from, to entities.Stage, stamp func(q *entities.Quote)) (entities.QuoteCollection, entities.Quote, error) {
	id = strings.TrimSpace(id)
	i := c.IndexIn(from, id)
	if id == "" || i < 0 {
		return c, entities.Quote{}, ErrQuoteNotFound
	}

	out := c.Clone()
	q := out[from][i]
	stamp(&q)
	out[from] = remove(out[from], id)
	out[to] = prepend(out[to], q)
	return out, q.Clone(), nil
}

func update(c entities.QuoteCollection, id string, stage entities.Stage, fn func(q *entities.Quote) error) (entities.QuoteCollection, entities.Quote, error) {
	id = strings.TrimSpace(id)
	i := c.IndexIn(stage, id)
	if id == "" || i < 0 {
		return c, entities.Quote{}, ErrQuoteNotFound
	}

	out := c.Clone()
	q := out[stage][i]
	if err := fn(&q); err != nil {
		return c, entities.Quote{}, err
	}
	out[stage][i] = q
	return out, q.Clone(), nil
}

func prepend(qs []entities.Quote, q entities.Quote) []entities.Quote {
	out := make([]entities.Quote, 0, len(qs)+1)
	out = append(out, q)
	return append(out, qs...)
}

func remove(qs []entities.Quote, id string) []entities.Quote {
	out := make([]entities.Quote, 0, len(qs))
	for _, q := range qs {
		if q.ID != id {
			out = append(out, q)
		}
	}
	return out
}
