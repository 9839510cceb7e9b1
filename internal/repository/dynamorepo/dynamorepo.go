package dynamorepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/jmcvetta/isitfoo/internal/model"
)

// DynamoRepository is a DynamoDB implementation of CheckRepository
type DynamoRepository struct {
	client    *dynamodb.Client
	tableName string
}

// NewDynamoRepository creates a new DynamoDB-backed repository
func NewDynamoRepository(client *dynamodb.Client, tableName string) *DynamoRepository {
	return &DynamoRepository{
		client:    client,
		tableName: tableName,
	}
}

// Store saves a check record to DynamoDB
// Uses the word as the PK and the check key as the SK
func (r *DynamoRepository) Store(ctx context.Context, record *model.CheckRecord) error {
	if record == nil {
		return fmt.Errorf("check record cannot be nil")
	}

	// Marshal the DTO into DynamoDB attribute values
	item, err := attributevalue.MarshalMap(FromDomain(record))
	if err != nil {
		return fmt.Errorf("failed to marshal check record: %w", err)
	}

	// Use ConditionExpression to ensure the item doesn't already exist
	// This matches the behavior of MemoryRepository.Store which returns ErrAlreadyExists
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(pk) AND attribute_not_exists(sk)"),
	})

	if err != nil {
		// A conditional check failure means the item already exists
		var ccfe *types.ConditionalCheckFailedException
		if errors.As(err, &ccfe) {
			return model.ErrAlreadyExists
		}
		return fmt.Errorf("failed to store check record: %w", err)
	}

	return nil
}

// Get retrieves a check record by word and check key from DynamoDB
func (r *DynamoRepository) Get(ctx context.Context, word, checkKey string) (*model.CheckRecord, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: word},
			"sk": &types.AttributeValueMemberS{Value: checkKey},
		},
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get check record: %w", err)
	}

	if result.Item == nil {
		return nil, model.ErrNotFound
	}

	var dto DynamoDTO
	if err := attributevalue.UnmarshalMap(result.Item, &dto); err != nil {
		return nil, fmt.Errorf("failed to unmarshal check record: %w", err)
	}

	return dto.ToDomain(), nil
}

// List retrieves all check records from DynamoDB
func (r *DynamoRepository) List(ctx context.Context) ([]*model.CheckRecord, error) {
	var records []*model.CheckRecord

	// Use Scan to retrieve all items
	// Note: For production use with large tables, consider using pagination
	result, err := r.client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})

	if err != nil {
		return nil, fmt.Errorf("failed to scan check records: %w", err)
	}

	for _, item := range result.Items {
		var dto DynamoDTO
		if err := attributevalue.UnmarshalMap(item, &dto); err != nil {
			return nil, fmt.Errorf("failed to unmarshal check record: %w", err)
		}
		records = append(records, dto.ToDomain())
	}

	return records, nil
}

// Delete removes a check record by word and check key from DynamoDB
func (r *DynamoRepository) Delete(ctx context.Context, word, checkKey string) error {
	// Use ConditionExpression to ensure the item exists before deleting
	// This matches the behavior of MemoryRepository.Delete which returns ErrNotFound
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: word},
			"sk": &types.AttributeValueMemberS{Value: checkKey},
		},
		ConditionExpression: aws.String("attribute_exists(pk) AND attribute_exists(sk)"),
	})

	if err != nil {
		// A conditional check failure means the item doesn't exist
		var ccfe *types.ConditionalCheckFailedException
		if errors.As(err, &ccfe) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete check record: %w", err)
	}

	return nil
}

// UnconditionalDelete removes a check record without requiring it to exist
func (r *DynamoRepository) UnconditionalDelete(ctx context.Context, word, checkKey string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"pk": &types.AttributeValueMemberS{Value: word},
			"sk": &types.AttributeValueMemberS{Value: checkKey},
		},
	})

	if err != nil {
		return fmt.Errorf("failed to delete check record: %w", err)
	}

	return nil
}
