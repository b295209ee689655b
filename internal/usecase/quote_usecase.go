package usecase

import (
	"context"
	"errors"
	"math"
	"net/mail"
	"strings"

	"quotedesk/internal/domain/dates"
	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/lifecycle"
	"quotedesk/internal/domain/pricing"
	"quotedesk/internal/infrastructure/logger"
	"quotedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// QuoteInput is the editable part of a quote as submitted by the form.
type QuoteInput struct {
	CustomerName      string
	ContactMethod     string
	ContactValue      string
	Address           string
	Description       string
	LineItems         []entities.LineItem
	VATPercentage     float64
	DepositPercentage float64
}

// IQuoteUseCase drives quotes through their lifecycle.
//
// Requested behavior:
//   - Drafts can be saved partially; sending requires contact information.
//   - Every stage change is a move between buckets stamped with today's date.
//   - A missing quote is reported as not found and leaves state unchanged.
type IQuoteUseCase interface {
	SaveDraft(ctx context.Context, id string, in QuoteInput) (entities.Quote, error)
	SendQuote(ctx context.Context, draftID string, in QuoteInput) (entities.Quote, error)
	SendDraft(ctx context.Context, id string) (entities.Quote, error)
	Resend(ctx context.Context, id string) (entities.Quote, error)
	Accept(ctx context.Context, id string) (entities.Quote, error)
	MarkDepositPaid(ctx context.Context, id string) (entities.Quote, error)
	MarkWorkComplete(ctx context.Context, id string) (entities.Quote, error)
	MarkFinalPayment(ctx context.Context, id string) (entities.Quote, error)
	DeleteDraft(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) entities.QuoteCollection
	ListStage(ctx context.Context, stage string) ([]entities.Quote, error)
	Get(ctx context.Context, id string) (entities.Quote, entities.Stage, error)
	PricingPreview(ctx context.Context, in QuoteInput) (pricing.Breakdown, error)
	Reset(ctx context.Context)
}

type QuoteUseCase struct {
	store *QuoteStore
	clock interfaces.IClock
	log   *zap.Logger
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(store *QuoteStore, clock interfaces.IClock, log *zap.Logger) *QuoteUseCase {
	return &QuoteUseCase{store: store, clock: clock, log: logger.OrNop(log)}
}

func (u *QuoteUseCase) today() string {
	return todayOf(u.clock)
}

// todayOf is the calendar date stamped on transitions.
func todayOf(c interfaces.IClock) string {
	return dates.Format(c.Now())
}

func (u *QuoteUseCase) SaveDraft(ctx context.Context, id string, in QuoteInput) (entities.Quote, error) {
	if err := validatePercentages(in); err != nil {
		return entities.Quote{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		id = entities.DraftIDPrefix + uuid.NewString()
	}
	q := buildQuote(id, in)

	saved, err := u.store.Update(ctx, func(c entities.QuoteCollection) (entities.QuoteCollection, entities.Quote, error) {
		return lifecycle.SaveDraft(c, q)
	})
	if err != nil {
		u.log.Info("[quote][usecase] save draft rejected", zap.String("quote_id", id), zap.Error(err))
		return entities.Quote{}, err
	}
	u.log.Info("[quote][usecase] draft saved", zap.String("quote_id", saved.ID), zap.Float64("total", saved.Total))
	return saved, nil
}

// SendQuote sends a freshly composed quote. A non-empty draftID marks the
// edit-then-send flow: the quote keeps the draft's id and the draft is
// removed in the same step.
func (u *QuoteUseCase) SendQuote(ctx context.Context, draftID string, in QuoteInput) (entities.Quote, error) {
	if err := validateForSend(in); err != nil {
		return entities.Quote{}, err
	}
	id := strings.TrimSpace(draftID)
	fromDraft := id != ""
	if !fromDraft {
		id = entities.SentIDPrefix + uuid.NewString()
	}
	q := buildQuote(id, in)
	today := u.today()

	sent, err := u.store.Update(ctx, func(c entities.QuoteCollection) (entities.QuoteCollection, entities.Quote, error) {
		if fromDraft && c.IndexIn(entities.StageDraft, id) < 0 {
			return c, entities.Quote{}, lifecycle.ErrQuoteNotFound
		}
		return lifecycle.Send(c, q, today)
	})
	if err != nil {
		u.log.Info("[quote][usecase] send rejected", zap.String("quote_id", id), zap.Error(err))
		return entities.Quote{}, err
	}
	u.log.Info("[quote][usecase] quote sent", zap.String("quote_id", sent.ID), zap.String("date", sent.Date))
	return sent, nil
}

// SendDraft sends a stored draft as it is.
func (u *QuoteUseCase) SendDraft(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	today := u.today()

	sent, err := u.store.Update(ctx, func(c entities.QuoteCollection) (entities.QuoteCollection, entities.Quote, error) {
		i := c.IndexIn(entities.StageDraft, id)
		if id == "" || i < 0 {
			return c, entities.Quote{}, lifecycle.ErrQuoteNotFound
		}
		draft := c[entities.StageDraft][i]
		if err := validateForSend(inputOf(draft)); err != nil {
			return c, entities.Quote{}, err
		}
		return lifecycle.Send(c, pricing.Apply(draft), today)
	})
	if err != nil {
		u.log.Info("[quote][usecase] send draft rejected", zap.String("quote_id", id), zap.Error(err))
		return entities.Quote{}, err
	}
	u.log.Info("[quote][usecase] draft sent", zap.String("quote_id", sent.ID), zap.String("date", sent.Date))
	return sent, nil
}

func (u *QuoteUseCase) Resend(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, "resend", id, lifecycle.Resend)
}

func (u *QuoteUseCase) Accept(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, "accept", id, lifecycle.Accept)
}

func (u *QuoteUseCase) MarkDepositPaid(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, "deposit-paid", id, lifecycle.MarkDepositPaid)
}

func (u *QuoteUseCase) MarkWorkComplete(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, "work-complete", id, lifecycle.MarkWorkComplete)
}

func (u *QuoteUseCase) MarkFinalPayment(ctx context.Context, id string) (entities.Quote, error) {
	return u.transition(ctx, "final-payment", id, lifecycle.MarkFinalPayment)
}

func (u *QuoteUseCase) transition(ctx context.Context, action, id string, fn lifecycle.Transition) (entities.Quote, error) {
	today := u.today()
	q, err := u.store.Update(ctx, func(c entities.QuoteCollection) (entities.QuoteCollection, entities.Quote, error) {
		return fn(c, id, today)
	})
	if err != nil {
		u.log.Info("[quote][usecase] transition rejected",
			zap.String("action", action),
			zap.String("quote_id", id),
			zap.Error(err),
		)
		return entities.Quote{}, err
	}
	u.log.Info("[quote][usecase] transition applied", zap.String("action", action), zap.String("quote_id", q.ID))
	return q, nil
}

func (u *QuoteUseCase) DeleteDraft(ctx context.Context, id string) (entities.Quote, error) {
	removed, err := u.store.Update(ctx, func(c entities.QuoteCollection) (entities.QuoteCollection, entities.Quote, error) {
		return lifecycle.DeleteDraft(c, id)
	})
	if err != nil {
		return entities.Quote{}, err
	}
	u.log.Info("[quote][usecase] draft deleted", zap.String("quote_id", removed.ID))
	return removed, nil
}

func (u *QuoteUseCase) List(ctx context.Context) entities.QuoteCollection {
	return u.store.Snapshot()
}

func (u *QuoteUseCase) ListStage(ctx context.Context, stage string) ([]entities.Quote, error) {
	s := entities.Stage(strings.TrimSpace(stage))
	if !s.Valid() {
		return nil, invalid(ErrInvalidStage, stage)
	}
	return u.store.Snapshot()[s], nil
}

func (u *QuoteUseCase) Get(ctx context.Context, id string) (entities.Quote, entities.Stage, error) {
	q, stage, ok := u.store.Snapshot().Find(strings.TrimSpace(id))
	if !ok {
		return entities.Quote{}, "", lifecycle.ErrQuoteNotFound
	}
	return q, stage, nil
}

func (u *QuoteUseCase) PricingPreview(ctx context.Context, in QuoteInput) (pricing.Breakdown, error) {
	if err := validatePercentages(in); err != nil {
		return pricing.Breakdown{}, err
	}
	return pricing.Calculate(pricing.Input{
		LineItems:         in.LineItems,
		VATPercentage:     in.VATPercentage,
		DepositPercentage: in.DepositPercentage,
	}), nil
}

func (u *QuoteUseCase) Reset(ctx context.Context) {
	u.store.Replace(ctx, lifecycle.Reset())
	u.log.Warn("[quote][usecase] all quotes cleared")
}

func buildQuote(id string, in QuoteInput) entities.Quote {
	items := make([]entities.LineItem, 0, len(in.LineItems))
	for _, it := range in.LineItems {
		it.Description = strings.TrimSpace(it.Description)
		items = append(items, it)
	}
	return pricing.Apply(entities.Quote{
		ID:                id,
		CustomerName:      strings.TrimSpace(in.CustomerName),
		ContactMethod:     entities.ContactMethod(strings.ToLower(strings.TrimSpace(in.ContactMethod))),
		ContactValue:      strings.TrimSpace(in.ContactValue),
		Address:           strings.TrimSpace(in.Address),
		Description:       strings.TrimSpace(in.Description),
		LineItems:         items,
		VATPercentage:     sanitizePercentage(in.VATPercentage),
		DepositPercentage: sanitizePercentage(in.DepositPercentage),
	})
}

func inputOf(q entities.Quote) QuoteInput {
	return QuoteInput{
		CustomerName:      q.CustomerName,
		ContactMethod:     string(q.ContactMethod),
		ContactValue:      q.ContactValue,
		Address:           q.Address,
		Description:       q.Description,
		LineItems:         q.LineItems,
		VATPercentage:     q.VATPercentage,
		DepositPercentage: q.DepositPercentage,
	}
}

func sanitizePercentage(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func validatePercentages(in QuoteInput) error {
	if v := sanitizePercentage(in.VATPercentage); v < 0 || v > 100 {
		return invalid(ErrInvalidPercentage, "vat_percentage must be between 0 and 100")
	}
	if v := sanitizePercentage(in.DepositPercentage); v < 0 || v > 100 {
		return invalid(ErrInvalidPercentage, "deposit_percentage must be between 0 and 100")
	}
	return nil
}

func validateForSend(in QuoteInput) error {
	if err := validatePercentages(in); err != nil {
		return err
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return invalid(ErrInvalidQuote, "customer name is required")
	}
	value := strings.TrimSpace(in.ContactValue)
	switch entities.ContactMethod(strings.ToLower(strings.TrimSpace(in.ContactMethod))) {
	case entities.ContactMethodEmail:
		if !validEmail(value) {
			return invalid(ErrInvalidContact, "a valid email address is required")
		}
	case entities.ContactMethodPhone:
		if value == "" {
			return invalid(ErrInvalidContact, "a phone number is required")
		}
	default:
		return invalid(ErrInvalidContact, "contact method must be phone or email")
	}
	if len(in.LineItems) == 0 {
		return invalid(ErrInvalidQuote, "at least one line item is required")
	}
	return nil
}

func validEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// IsNotFound reports whether err means the referenced entity does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, lifecycle.ErrQuoteNotFound) || errors.Is(err, ErrInvitationNotFound)
}
