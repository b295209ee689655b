package repository

import (
	"context"
	"errors"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultInvitationsTableName = "team_invitations"
	invitationsBusinessIDIndex  = "business_id-index"
)

type invitationItem struct {
	ID         string `dynamodbav:"id"`
	BusinessID string `dynamodbav:"business_id"`
	Email      string `dynamodbav:"email"`
	Role       string `dynamodbav:"role"`
	Status     string `dynamodbav:"status"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at,omitempty"`
}

// InvitationDynamoRepository persists TeamInvitation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: business_id-index (PK: business_id)
type InvitationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInvitationRepository = (*InvitationDynamoRepository)(nil)

func NewInvitationDynamoRepository(ddb *dynamodb.Client, tableName string) *InvitationDynamoRepository {
	if tableName == "" {
		tableName = defaultInvitationsTableName
	}
	return &InvitationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *InvitationDynamoRepository) Create(ctx context.Context, inv entities.TeamInvitation) (entities.TeamInvitation, error) {
	av, err := attributevalue.MarshalMap(toInvitationItem(inv))
	if err != nil {
		return entities.TeamInvitation{}, err
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
		return entities.TeamInvitation{}, err
	}
	return inv, nil
}

func (r *InvitationDynamoRepository) GetByID(ctx context.Context, id string) (entities.TeamInvitation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TeamInvitation{}, err
	}
	if len(out.Item) == 0 {
		return entities.TeamInvitation{}, nil
	}

	var it invitationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TeamInvitation{}, err
	}
	return fromInvitationItem(it), nil
}

func (r *InvitationDynamoRepository) ListByBusinessID(ctx context.Context, businessID string) ([]entities.TeamInvitation, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(invitationsBusinessIDIndex),
		KeyConditionExpression: aws.String("business_id = :bid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":bid": &types.AttributeValueMemberS{Value: businessID},
		},
	})

	items := []entities.TeamInvitation{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeInvitations(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	sortInvitations(items)
	return items, nil
}

// ListPending scans for pending invitations. Invitation tables stay small
// (one row per invited team member) so a filtered scan is acceptable.
func (r *InvitationDynamoRepository) ListPending(ctx context.Context) ([]entities.TeamInvitation, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.InvitationStatusPending)},
		},
	})

	items := []entities.TeamInvitation{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeInvitations(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	// Scan order is arbitrary; the matcher takes the first hit.
	sortInvitations(items)
	return items, nil
}

func (r *InvitationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.InvitationStatus) (entities.TeamInvitation, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: nowString()},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.TeamInvitation{}, nil
		}
		return entities.TeamInvitation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.TeamInvitation{}, nil
	}

	var it invitationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.TeamInvitation{}, err
	}
	return fromInvitationItem(it), nil
}

func (r *InvitationDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func decodeInvitations(raw []map[string]types.AttributeValue) ([]entities.TeamInvitation, error) {
	out := make([]entities.TeamInvitation, 0, len(raw))
	for _, r := range raw {
		var it invitationItem
		if err := attributevalue.UnmarshalMap(r, &it); err != nil {
			return nil, err
		}
		out = append(out, fromInvitationItem(it))
	}
	return out, nil
}

func toInvitationItem(inv entities.TeamInvitation) invitationItem {
	return invitationItem{
		ID:         inv.ID,
		BusinessID: inv.BusinessID,
		Email:      inv.Email,
		Role:       inv.Role,
		Status:     string(inv.Status),
		CreatedAt:  inv.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromInvitationItem(it invitationItem) entities.TeamInvitation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.TeamInvitation{
		ID:         it.ID,
		BusinessID: it.BusinessID,
		Email:      it.Email,
		Role:       it.Role,
		Status:     entities.InvitationStatus(it.Status),
		CreatedAt:  createdAt,
	}
}
