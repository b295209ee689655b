package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/domain/lifecycle"
	"quotedesk/internal/infrastructure/clock"
	mock_interfaces "quotedesk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func acceptedQuote(t *testing.T) (*QuoteUseCase, *QuoteStore, entities.Quote) {
	t.Helper()
	quotes, store, _, _ := newQuoteFixture(t)
	q, _ := quotes.SendQuote(context.Background(), "", sampleInput())
	q, _ = quotes.Accept(context.Background(), q.ID)
	return quotes, store, q
}

func TestQuotePaymentUseCase_ChargeDeposit(t *testing.T) {
	_, store, q := acceptedQuote(t)
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewQuotePaymentUseCase(store, gateway, nil, clock.NewFake(day1), nil)

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
			var req map[string]any
			if err := json.Unmarshal(payload, &req); err != nil {
				t.Fatalf("payload is not json: %v", err)
			}
			if req["transaction_amount"] != 57.75 || req["external_reference"] != q.ID || req["payment_method_id"] != "pix" {
				t.Fatalf("unexpected payload: %v", req)
			}
			payer, _ := req["payer"].(map[string]any)
			if payer["email"] != "jane@example.com" {
				t.Fatalf("expected payer email from quote, got %v", req["payer"])
			}
			return "123", "approved", json.RawMessage(`{"id":123}`), nil
		})

	res, err := uc.ChargeDeposit(context.Background(), q.ID, json.RawMessage(`{"payment_method_id":"pix","transaction_amount":1}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Amount != 57.75 || res.NetAmount != 57.46 || res.ProviderPaymentID != "123" {
		t.Fatalf("unexpected result: %+v", res)
	}
	assertOnlyIn(t, store.Snapshot(), q.ID, entities.StageScheduledWork)
	if res.Quote.DepositDate != "2025-03-10" {
		t.Fatalf("expected deposit date stamped, got %+v", res.Quote)
	}
}

func TestQuotePaymentUseCase_FailuresLeaveStateUnchanged(t *testing.T) {
	cases := []struct {
		name   string
		status string
		err    error
		want   error
	}{
		{"gateway error", "", errors.New("timeout"), ErrPaymentGatewayFailed},
		{"rejected", "rejected", nil, ErrPaymentNotApproved},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, store, q := acceptedQuote(t)
			ctrl := gomock.NewController(t)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewQuotePaymentUseCase(store, gateway, nil, clock.NewFake(day1), nil)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("1", tc.status, nil, tc.err)

			_, err := uc.ChargeDeposit(context.Background(), q.ID, nil)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			assertOnlyIn(t, store.Snapshot(), q.ID, entities.StageAccepted)
		})
	}
}

func TestQuotePaymentUseCase_Preconditions(t *testing.T) {
	quotes, store, q := acceptedQuote(t)
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewQuotePaymentUseCase(store, gateway, nil, clock.NewFake(day1), nil)
	ctx := context.Background()

	if _, err := uc.ChargeFinalPayment(ctx, q.ID, nil); !errors.Is(err, lifecycle.ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
	if _, err := uc.ChargeDeposit(ctx, q.ID, json.RawMessage(`{`)); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for bad payload, got %v", err)
	}

	_, _ = quotes.MarkDepositPaid(ctx, q.ID)
	_, _ = quotes.MarkWorkComplete(ctx, q.ID)
	_, _ = quotes.MarkFinalPayment(ctx, q.ID)
	if _, err := uc.ChargeFinalPayment(ctx, q.ID, nil); !errors.Is(err, lifecycle.ErrQuoteAlreadyPaid) {
		t.Fatalf("expected ErrQuoteAlreadyPaid, got %v", err)
	}
}

func TestQuotePaymentUseCase_ChargeFinalPayment(t *testing.T) {
	quotes, store, q := acceptedQuote(t)
	ctx := context.Background()
	_, _ = quotes.MarkDepositPaid(ctx, q.ID)
	_, _ = quotes.MarkWorkComplete(ctx, q.ID)

	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("9", "approved", nil, nil)
	uc := NewQuotePaymentUseCase(store, gateway, nil, clock.NewFake(day1), nil)

	res, err := uc.ChargeFinalPayment(ctx, q.ID, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Quote.IsPaid || res.Amount != 57.75 || res.ServiceFee != 0.29 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestQuotePaymentUseCase_RecordsAttempts(t *testing.T) {
	_, store, q := acceptedQuote(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	records := mock_interfaces.NewMockIPaymentRecordRepository(ctrl)
	uc := NewQuotePaymentUseCase(store, gateway, records, clock.NewFake(day1), nil)

	gomock.InOrder(
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("1", "rejected", nil, nil),
		records.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
				if p.Status != entities.PaymentRecordDenied || p.QuoteID != q.ID || p.PaymentType != "Deposit" || p.ID == "" {
					t.Fatalf("unexpected record: %+v", p)
				}
				return p, nil
			}),
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("2", "approved", nil, nil),
		records.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentRecord{}, errors.New("table missing")),
	)

	if _, err := uc.ChargeDeposit(ctx, q.ID, nil); !errors.Is(err, ErrPaymentNotApproved) {
		t.Fatalf("expected ErrPaymentNotApproved, got %v", err)
	}
	// A failed record write does not undo an approved charge.
	if _, err := uc.ChargeDeposit(ctx, q.ID, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertOnlyIn(t, store.Snapshot(), q.ID, entities.StageScheduledWork)

	records.EXPECT().ListByQuoteID(gomock.Any(), q.ID).Return([]entities.PaymentRecord{{ID: "r-1"}}, nil)
	got, err := uc.Payments(ctx, q.ID)
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected payments: %+v err=%v", got, err)
	}
	if _, err := uc.Payments(ctx, "quote-missing"); !errors.Is(err, lifecycle.ErrQuoteNotFound) {
		t.Fatalf("expected ErrQuoteNotFound, got %v", err)
	}
}

func TestQuotePaymentUseCase_QuoteMovedDuringCharge(t *testing.T) {
	quotes, store, q := acceptedQuote(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewQuotePaymentUseCase(store, gateway, nil, clock.NewFake(day1), nil)

	gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ json.RawMessage) (string, string, json.RawMessage, error) {
			// Deposit marked by hand while the provider was answering.
			if _, err := quotes.MarkDepositPaid(ctx, q.ID); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			return "pay-77", "approved", nil, nil
		})

	_, err := uc.ChargeDeposit(ctx, q.ID, nil)
	if !errors.Is(err, ErrChargeNotApplied) {
		t.Fatalf("expected ErrChargeNotApplied, got %v", err)
	}
	if errors.Is(err, lifecycle.ErrQuoteNotFound) {
		t.Fatalf("charge failure must not read as not found: %v", err)
	}
	if !strings.Contains(err.Error(), "pay-77") {
		t.Fatalf("expected provider payment id in error, got %v", err)
	}
}
