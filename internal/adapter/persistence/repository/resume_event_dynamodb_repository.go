package repository

import (
	"context"
	"sort"

	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type resumeEventItem struct {
	HoldID       string `dynamodbav:"hold_id"`
	ID           string `dynamodbav:"id"`
	BillID       string `dynamodbav:"bill_id"`
	CustomerKey  string `dynamodbav:"customer_key"`
	Role         string `dynamodbav:"role"`
	Outcome      string `dynamodbav:"outcome"`
	OverrideUsed bool   `dynamodbav:"override_used"`
	At           string `dynamodbav:"at"`
}

// ResumeEventDynamoRepository keeps the resume audit trail.
//
// Table requirements:
//   - PK: hold_id (string), SK: id (string)
type ResumeEventDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IResumeAuditRepository = (*ResumeEventDynamoRepository)(nil)

func NewResumeEventDynamoRepository(ddb DynamoAPI, tables DynamoTables) *ResumeEventDynamoRepository {
	return &ResumeEventDynamoRepository{ddb: ddb, tableName: tables.ResumeEvents}
}

func (r *ResumeEventDynamoRepository) AppendResumeEvent(ctx context.Context, e entities.ResumeEvent) error {
	av, err := attributevalue.MarshalMap(resumeEventItem{
		HoldID:       e.HoldID,
		ID:           e.ID,
		BillID:       e.BillID,
		CustomerKey:  e.CustomerKey,
		Role:         string(e.Role),
		Outcome:      string(e.Outcome),
		OverrideUsed: e.OverrideUsed,
		At:           formatTime(e.At),
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

func (r *ResumeEventDynamoRepository) ListResumeEvents(ctx context.Context, holdID string) ([]entities.ResumeEvent, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("hold_id = :h"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":h": &types.AttributeValueMemberS{Value: holdID},
		},
		ConsistentRead: aws.Bool(true),
	})

	var out []entities.ResumeEvent
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it resumeEventItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, entities.ResumeEvent{
				ID:           it.ID,
				HoldID:       it.HoldID,
				BillID:       it.BillID,
				CustomerKey:  it.CustomerKey,
				Role:         entities.Role(it.Role),
				Outcome:      entities.ResumeOutcome(it.Outcome),
				OverrideUsed: it.OverrideUsed,
				At:           parseTime(it.At),
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out, nil
}
