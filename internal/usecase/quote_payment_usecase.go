package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/lifecycle"
	"quotedesk/internal/domain/pricing"
	"quotedesk/internal/domain/reporting"
	"quotedesk/internal/infrastructure/logger"
	"quotedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const providerStatusApproved = "approved"

// PaymentResult is a settled charge and the quote after its transition.
type PaymentResult struct {
	Quote             entities.Quote        `json:"quote"`
	PaymentType       reporting.PaymentType `json:"payment_type"`
	Amount            float64               `json:"amount"`
	ServiceFee        float64               `json:"service_fee"`
	NetAmount         float64               `json:"net_amount"`
	ProviderPaymentID string                `json:"provider_payment_id"`
	ProviderStatus    string                `json:"provider_status"`
	ProviderResponse  json.RawMessage       `json:"provider_response,omitempty"`
}

// IQuotePaymentUseCase charges deposits and final payments.
//
// Requested behavior:
//   - The amount charged always comes from the stored quote, never the caller.
//   - The stage transition is applied only after the provider approves the charge.
type IQuotePaymentUseCase interface {
	ChargeDeposit(ctx context.Context, id string, payload json.RawMessage) (PaymentResult, error)
	ChargeFinalPayment(ctx context.Context, id string, payload json.RawMessage) (PaymentResult, error)
	Payments(ctx context.Context, id string) ([]entities.PaymentRecord, error)
}

type QuotePaymentUseCase struct {
	store   *QuoteStore
	gateway interfaces.IPaymentGateway
	records interfaces.IPaymentRecordRepository
	clock   interfaces.IClock
	log     *zap.Logger
}

var _ IQuotePaymentUseCase = (*QuotePaymentUseCase)(nil)

// NewQuotePaymentUseCase wires the charge flow. records may be nil, in which
// case charge attempts are not kept.
func NewQuotePaymentUseCase(
	store *QuoteStore,
	gateway interfaces.IPaymentGateway,
	records interfaces.IPaymentRecordRepository,
	clock interfaces.IClock,
	log *zap.Logger,
) *QuotePaymentUseCase {
	return &QuotePaymentUseCase{store: store, gateway: gateway, records: records, clock: clock, log: logger.OrNop(log)}
}

// Payments lists the charge attempts recorded for a quote, oldest first.
func (u *QuotePaymentUseCase) Payments(ctx context.Context, id string) ([]entities.PaymentRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, lifecycle.ErrQuoteNotFound
	}
	if _, _, ok := u.store.Snapshot().Find(id); !ok {
		return nil, lifecycle.ErrQuoteNotFound
	}
	if u.records == nil {
		return []entities.PaymentRecord{}, nil
	}
	return u.records.ListByQuoteID(ctx, id)
}

func (u *QuotePaymentUseCase) ChargeDeposit(ctx context.Context, id string, payload json.RawMessage) (PaymentResult, error) {
	id = strings.TrimSpace(id)
	c := u.store.Snapshot()
	i := c.IndexIn(entities.StageAccepted, id)
	if id == "" || i < 0 {
		return PaymentResult{}, lifecycle.ErrQuoteNotFound
	}
	q := c[entities.StageAccepted][i]
	return u.charge(ctx, q, reporting.PaymentTypeDeposit, reporting.DepositAmount(q), payload, lifecycle.MarkDepositPaid)
}

func (u *QuotePaymentUseCase) ChargeFinalPayment(ctx context.Context, id string, payload json.RawMessage) (PaymentResult, error) {
	id = strings.TrimSpace(id)
	c := u.store.Snapshot()
	i := c.IndexIn(entities.StageComplete, id)
	if id == "" || i < 0 {
		return PaymentResult{}, lifecycle.ErrQuoteNotFound
	}
	q := c[entities.StageComplete][i]
	if q.IsPaid {
		return PaymentResult{}, lifecycle.ErrQuoteAlreadyPaid
	}
	return u.charge(ctx, q, reporting.PaymentTypeFinal, reporting.FinalAmount(q), payload, lifecycle.MarkFinalPayment)
}

func (u *QuotePaymentUseCase) charge(
	ctx context.Context,
	q entities.Quote,
	kind reporting.PaymentType,
	amount float64,
	payload json.RawMessage,
	apply lifecycle.Transition,
) (PaymentResult, error) {
	u.log.Info("[payment][usecase] charge start",
		zap.String("quote_id", q.ID),
		zap.String("payment_type", string(kind)),
		zap.Float64("amount", amount),
	)
	if amount <= 0 {
		return PaymentResult{}, invalid(ErrInvalidPaymentAmount, string(kind))
	}
	if u.gateway == nil {
		return PaymentResult{}, fmt.Errorf("%w: gateway not configured", ErrPaymentGatewayFailed)
	}

	body, err := enrichPayload(payload, q, kind, amount)
	if err != nil {
		return PaymentResult{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		u.log.Warn("[payment][usecase] gateway failed", zap.String("quote_id", q.ID), zap.Error(err))
		return PaymentResult{}, fmt.Errorf("%w: %v", ErrPaymentGatewayFailed, err)
	}
	approved := strings.EqualFold(providerStatus, providerStatusApproved)
	u.record(ctx, q.ID, kind, amount, approved, providerID, providerStatus, providerResp)
	if !approved {
		u.log.Warn("[payment][usecase] charge not approved",
			zap.String("quote_id", q.ID),
			zap.String("provider_status", providerStatus),
		)
		return PaymentResult{}, fmt.Errorf("%w: status %s", ErrPaymentNotApproved, providerStatus)
	}

	today := todayOf(u.clock)
	updated, err := u.store.Update(ctx, func(c entities.QuoteCollection) (entities.QuoteCollection, entities.Quote, error) {
		return apply(c, q.ID, today)
	})
	if err != nil {
		// The charge went through but the quote moved meanwhile.
		u.log.Error("[payment][usecase] transition after charge failed",
			zap.String("quote_id", q.ID),
			zap.String("provider_payment_id", providerID),
			zap.Error(err),
		)
		return PaymentResult{}, fmt.Errorf("%w: provider payment %s: %v", ErrChargeNotApplied, providerID, err)
	}

	u.log.Info("[payment][usecase] charge success",
		zap.String("quote_id", q.ID),
		zap.String("provider_payment_id", providerID),
	)
	return PaymentResult{
		Quote:             updated,
		PaymentType:       kind,
		Amount:            amount,
		ServiceFee:        pricing.Round2(pricing.PaymentFee(amount)),
		NetAmount:         pricing.NetOfFee(amount),
		ProviderPaymentID: providerID,
		ProviderStatus:    providerStatus,
		ProviderResponse:  providerResp,
	}, nil
}

// record keeps the charge attempt. A failed write is logged and does not
// undo a charge the provider already accepted.
func (u *QuotePaymentUseCase) record(
	ctx context.Context,
	quoteID string,
	kind reporting.PaymentType,
	amount float64,
	approved bool,
	providerID, providerStatus string,
	providerResp json.RawMessage,
) {
	if u.records == nil {
		return
	}
	status := entities.PaymentRecordDenied
	if approved {
		status = entities.PaymentRecordApproved
	}
	_, err := u.records.Create(ctx, entities.PaymentRecord{
		ID:                uuid.NewString(),
		QuoteID:           quoteID,
		PaymentType:       string(kind),
		Amount:            amount,
		NetAmount:         pricing.NetOfFee(amount),
		Status:            status,
		ProviderPaymentID: providerID,
		ProviderStatus:    providerStatus,
		CreatedAt:         u.clock.Now().UTC(),
		ProviderResponse:  providerResp,
	})
	if err != nil {
		u.log.Warn("[payment][usecase] record failed", zap.String("quote_id", quoteID), zap.Error(err))
	}
}

// enrichPayload fills the provider request from the quote. The amount always
// comes from the quote.
func enrichPayload(payload json.RawMessage, q entities.Quote, kind reporting.PaymentType, amount float64) (json.RawMessage, error) {
	req := map[string]any{}
	if len(payload) > 0 {
		if !json.Valid(payload) {
			return nil, invalid(ErrInvalidQuote, "payment payload must be a JSON object")
		}
		if err := json.Unmarshal(payload, &req); err != nil {
			return nil, invalid(ErrInvalidQuote, "payment payload must be a JSON object")
		}
	}

	if !hasNonEmptyString(req, "external_reference") {
		req["external_reference"] = q.ID
	}
	if !hasNonEmptyString(req, "description") {
		req["description"] = fmt.Sprintf("%s for quote %s", kind, q.ID)
	}
	if q.ContactMethod == entities.ContactMethodEmail && q.ContactValue != "" {
		payer, _ := req["payer"].(map[string]any)
		if payer == nil {
			payer = map[string]any{}
		}
		if !hasNonEmptyString(payer, "email") {
			payer["email"] = q.ContactValue
		}
		req["payer"] = payer
	}
	req["transaction_amount"] = amount

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}
