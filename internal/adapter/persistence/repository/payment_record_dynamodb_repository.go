package repository

import (
	"context"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsQuoteIDIndex     = "quote_id-index"
)

type paymentRecordItem struct {
	ID                string  `dynamodbav:"id"`
	QuoteID           string  `dynamodbav:"quote_id"`
	PaymentType       string  `dynamodbav:"payment_type"`
	Amount            float64 `dynamodbav:"amount"`
	NetAmount         float64 `dynamodbav:"net_amount"`
	Status            string  `dynamodbav:"status"`
	ProviderPaymentID string  `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus    string  `dynamodbav:"provider_status,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	ProviderResponse  string  `dynamodbav:"provider_response,omitempty"`
}

// PaymentRecordDynamoRepository persists PaymentRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
type PaymentRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRecordRepository = (*PaymentRecordDynamoRepository)(nil)

func NewPaymentRecordDynamoRepository(ddb *dynamodb.Client, tableName string) *PaymentRecordDynamoRepository {
	if tableName == "" {
		tableName = defaultPaymentsTableName
	}
	return &PaymentRecordDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentRecordDynamoRepository) Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error) {
	av, err := attributevalue.MarshalMap(toPaymentRecordItem(p))
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	return p, nil
}

func (r *PaymentRecordDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.PaymentRecord, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})

	items := []entities.PaymentRecord{}
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it paymentRecordItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromPaymentRecordItem(it))
		}
	}
	sortPaymentRecords(items)
	return items, nil
}

func toPaymentRecordItem(p entities.PaymentRecord) paymentRecordItem {
	return paymentRecordItem{
		ID:                p.ID,
		QuoteID:           p.QuoteID,
		PaymentType:       p.PaymentType,
		Amount:            p.Amount,
		NetAmount:         p.NetAmount,
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
		CreatedAt:         p.CreatedAt.UTC().Format(time.RFC3339Nano),
		ProviderResponse:  string(p.ProviderResponse),
	}
}

func fromPaymentRecordItem(it paymentRecordItem) entities.PaymentRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	p := entities.PaymentRecord{
		ID:                it.ID,
		QuoteID:           it.QuoteID,
		PaymentType:       it.PaymentType,
		Amount:            it.Amount,
		NetAmount:         it.NetAmount,
		Status:            entities.PaymentRecordStatus(it.Status),
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderStatus:    it.ProviderStatus,
		CreatedAt:         createdAt,
	}
	if it.ProviderResponse != "" {
		p.ProviderResponse = []byte(it.ProviderResponse)
	}
	return p
}
