package dynamodb

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/savaki/paper-a-day/pkg/models"
)

// ReadRecordRepository handles DynamoDB operations for read records
type ReadRecordRepository struct {
	client    *dynamodb.Client
	tableName string
}

// NewReadRecordRepository creates a new read record repository
func NewReadRecordRepository(client *dynamodb.Client, tableName string) *ReadRecordRepository {
	return &ReadRecordRepository{
		client:    client,
		tableName: tableName,
	}
}

// Save stores a read record in DynamoDB.
// There is no condition on the put: confirming the same paper twice writes twice.
func (r *ReadRecordRepository) Save(ctx context.Context, rec *models.ReadRecord) error {
	item, err := marshalRecord(rec)
	if err != nil {
		return err
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &r.tableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put item: %w", err)
	}

	log.Printf("Saved read record %s (%s) to DynamoDB", rec.ID, rec.SubmissionID)
	return nil
}

// GetByID retrieves a read record by Slack file ID
func (r *ReadRecordRepository) GetByID(ctx context.Context, id string) (*models.ReadRecord, error) {
	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &r.tableName,
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("read record not found: %s", id)
	}

	var rec models.ReadRecord
	err = attributevalue.UnmarshalMap(result.Item, &rec)
	if err != nil {
		return nil, fmt.Errorf("unmarshal read record: %w", err)
	}

	return &rec, nil
}

// ListByUser scans the table for every read recorded by a user
func (r *ReadRecordRepository) ListByUser(ctx context.Context, user string) ([]*models.ReadRecord, error) {
	input := &dynamodb.ScanInput{
		TableName:        &r.tableName,
		FilterExpression: stringPtr("#user = :user"),
		ExpressionAttributeNames: map[string]string{
			"#user": "user",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user": &types.AttributeValueMemberS{Value: user},
		},
	}

	var records []*models.ReadRecord
	paginator := dynamodb.NewScanPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("scan by user: %w", err)
		}

		var batch []*models.ReadRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("unmarshal read records: %w", err)
		}
		records = append(records, batch...)
	}

	return records, nil
}

func marshalRecord(rec *models.ReadRecord) (map[string]types.AttributeValue, error) {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return nil, fmt.Errorf("marshal read record: %w", err)
	}
	return item, nil
}

// Helper functions
func stringPtr(s string) *string {
	return &s
}
