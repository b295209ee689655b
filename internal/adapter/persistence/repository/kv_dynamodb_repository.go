package repository

import (
	"context"

	"quotedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultKVTableName = "kv_store"

type kvItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// KeyValueDynamoRepository stores serialized values in a DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
type KeyValueDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	namespace string
}

var _ interfaces.IKeyValueStore = (*KeyValueDynamoRepository)(nil)

func NewKeyValueDynamoRepository(ddb *dynamodb.Client, tableName, namespace string) *KeyValueDynamoRepository {
	if tableName == "" {
		tableName = defaultKVTableName
	}
	return &KeyValueDynamoRepository{ddb: ddb, tableName: tableName, namespace: namespace}
}

func (r *KeyValueDynamoRepository) Get(ctx context.Context, key string) ([]byte, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: namespacedKey(r.namespace, key)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return []byte(it.Value), nil
}

func (r *KeyValueDynamoRepository) Set(ctx context.Context, key string, value []byte) error {
	av, err := attributevalue.MarshalMap(kvItem{
		Key:       namespacedKey(r.namespace, key),
		Value:     string(value),
		UpdatedAt: nowString(),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *KeyValueDynamoRepository) Delete(ctx context.Context, key string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: namespacedKey(r.namespace, key)},
		},
	})
	return err
}
