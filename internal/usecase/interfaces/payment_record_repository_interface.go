package interfaces

import (
	"context"

	"quotedesk/internal/domain/entities"
)

// IPaymentRecordRepository keeps the charge history of each quote.
type IPaymentRecordRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.PaymentRecord, error)
}
