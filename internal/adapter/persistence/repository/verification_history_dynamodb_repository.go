package repository

import (
	"context"
	"errors"
	"time"

	"eligibility_hub/internal/domain/entities"
	"eligibility_hub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultHistoryTableName = "verification_history"
	historyMemberIDIndex    = "member_id-index"
)

type verificationItem struct {
	ID                string `dynamodbav:"id"`
	MemberID          string `dynamodbav:"member_id"`
	PayerName         string `dynamodbav:"payer_name,omitempty"`
	QueueStatus       string `dynamodbav:"queue_status"`
	EligibilityStatus string `dynamodbav:"eligibility_status"`
	ServiceDate       string `dynamodbav:"service_date,omitempty"`
	CheckedAt         string `dynamodbav:"checked_at"`
}

// VerificationHistoryDynamoRepository persists the verification audit trail
// in DynamoDB.
//
// Table requirements:
//   - PK: id (submission id, string)
//   - GSI: member_id-index (PK: member_id)
//
// The submission id as PK plus a conditional put makes the append naturally
// idempotent: a submission is recorded at most once.

type VerificationHistoryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVerificationHistoryRepository = (*VerificationHistoryDynamoRepository)(nil)

func NewVerificationHistoryDynamoRepository(ddb *dynamodb.Client, tableName string) *VerificationHistoryDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("HISTORY_TABLE", defaultHistoryTableName)
	}
	return &VerificationHistoryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *VerificationHistoryDynamoRepository) Append(ctx context.Context, rec entities.VerificationRecord) (entities.VerificationRecord, error) {
	it := toVerificationItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.VerificationRecord{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Already recorded by an earlier refresh; keep the first row.
			return rec, nil
		}
		return entities.VerificationRecord{}, err
	}
	return rec, nil
}

func (r *VerificationHistoryDynamoRepository) GetByID(ctx context.Context, id string) (entities.VerificationRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.VerificationRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.VerificationRecord{}, nil
	}

	var it verificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.VerificationRecord{}, err
	}
	return fromVerificationItem(it), nil
}

func (r *VerificationHistoryDynamoRepository) ListByMemberID(ctx context.Context, memberID string) ([]entities.VerificationRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(historyMemberIDIndex),
		KeyConditionExpression: aws.String("member_id = :mid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":mid": &types.AttributeValueMemberS{Value: memberID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.VerificationRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it verificationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromVerificationItem(it))
	}
	return items, nil
}

func toVerificationItem(rec entities.VerificationRecord) verificationItem {
	return verificationItem{
		ID:                rec.ID,
		MemberID:          rec.MemberID,
		PayerName:         rec.PayerName,
		QueueStatus:       string(rec.QueueStatus),
		EligibilityStatus: string(rec.EligibilityStatus),
		ServiceDate:       rec.ServiceDate,
		CheckedAt:         rec.CheckedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromVerificationItem(it verificationItem) entities.VerificationRecord {
	checkedAt, _ := time.Parse(time.RFC3339Nano, it.CheckedAt)
	return entities.VerificationRecord{
		ID:                it.ID,
		MemberID:          it.MemberID,
		PayerName:         it.PayerName,
		QueueStatus:       entities.QueueStatus(it.QueueStatus),
		EligibilityStatus: entities.EligibilityStatus(it.EligibilityStatus),
		ServiceDate:       it.ServiceDate,
		CheckedAt:         checkedAt,
	}
}
