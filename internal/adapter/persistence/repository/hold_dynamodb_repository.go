package repository

import (
	"context"
	"time"

	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/infrastructure/database"
	"thirupugazh_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type holdItem struct {
	ID           string `dynamodbav:"id"`
	BillID       string `dynamodbav:"bill_id"`
	CustomerName string `dynamodbav:"customer_name"`
	CustomerKey  string `dynamodbav:"customer_key"`
	HeldAt       string `dynamodbav:"held_at"`
	DayWindowID  string `dynamodbav:"day_window_id"`
}

// HoldDynamoRepository persists holds in DynamoDB and moves the owning bill in the same
// transaction.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: customer_key-index (PK: customer_key)
//   - GSI: bill_id-index (PK: bill_id)
//
// GSI reads are eventually consistent; ClaimHold re-checks the hold by primary key.
type HoldDynamoRepository struct {
	ddb    DynamoAPI
	tables DynamoTables
}

var _ interfaces.IHoldRepository = (*HoldDynamoRepository)(nil)

func NewHoldDynamoRepository(ddb DynamoAPI, tables DynamoTables) *HoldDynamoRepository {
	return &HoldDynamoRepository{ddb: ddb, tables: tables}
}

func (r *HoldDynamoRepository) CreateHold(ctx context.Context, h entities.HoldRecord, b entities.Bill) error {
	billPut, err := putBill(r.tables.Bills, b, entities.BillStatusDraft)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(toHoldItem(h))
	if err != nil {
		return err
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			billPut,
			{
				Put: &types.Put{
					TableName:                aws.String(r.tables.Holds),
					Item:                     av,
					ConditionExpression:      aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
		},
	})
	if failed, ok := canceledAt(err); ok && len(failed) > 0 {
		return interfaces.ErrBillStateConflict
	}
	return err
}

func (r *HoldDynamoRepository) GetHold(ctx context.Context, id string) (entities.HoldRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Holds),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.HoldRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.HoldRecord{}, nil
	}

	var it holdItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.HoldRecord{}, err
	}
	return fromHoldItem(it), nil
}

func (r *HoldDynamoRepository) FindHoldsByCustomerKey(ctx context.Context, customerKey string) ([]entities.HoldRecord, error) {
	holds, err := queryHolds(ctx, r.ddb, r.tables.Holds, database.HoldsCustomerKeyIndex, "customer_key", customerKey)
	if err != nil {
		return nil, err
	}
	sortHolds(holds)
	return holds, nil
}

// ListHoldsPage scans the table and pages in (HeldAt, ID) order. The hold set of a single
// counter is small, so the scan stays cheap and the order stays stable across pages.
func (r *HoldDynamoRepository) ListHoldsPage(ctx context.Context, cursor string, limit int) ([]entities.HoldRecord, string, error) {
	var all []entities.HoldRecord
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tables.Holds),
		ConsistentRead: aws.Bool(true),
	})
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, "", err
		}
		for _, raw := range out.Items {
			var it holdItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, "", err
			}
			all = append(all, fromHoldItem(it))
		}
	}

	page, next := pageHolds(all, cursor, limit)
	return page, next, nil
}

func (r *HoldDynamoRepository) ClaimHold(ctx context.Context, holdID string, resumedAt time.Time) (entities.Bill, error) {
	hold, err := r.GetHold(ctx, holdID)
	if err != nil {
		return entities.Bill{}, err
	}
	if hold.ID == "" {
		return entities.Bill{}, interfaces.ErrHoldClaimed
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Delete: &types.Delete{
					TableName: aws.String(r.tables.Holds),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: holdID},
					},
					ConditionExpression:      aws.String("attribute_exists(#id)"),
					ExpressionAttributeNames: map[string]string{"#id": "id"},
				},
			},
			{
				Update: &types.Update{
					TableName: aws.String(r.tables.Bills),
					Key: map[string]types.AttributeValue{
						"id": &types.AttributeValueMemberS{Value: hold.BillID},
					},
					UpdateExpression:    aws.String("SET #status = :resumed, #updated_at = :updated_at"),
					ConditionExpression: aws.String("#status = :held"),
					ExpressionAttributeNames: map[string]string{
						"#status":     "status",
						"#updated_at": "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":resumed":    &types.AttributeValueMemberS{Value: string(entities.BillStatusResumed)},
						":held":       &types.AttributeValueMemberS{Value: string(entities.BillStatusHeld)},
						":updated_at": &types.AttributeValueMemberS{Value: formatTime(resumedAt)},
					},
				},
			},
		},
	})
	if failed, ok := canceledAt(err); ok {
		if failed[0] {
			return entities.Bill{}, interfaces.ErrHoldClaimed
		}
		if failed[1] {
			return entities.Bill{}, interfaces.ErrBillStateConflict
		}
	}
	if err != nil {
		return entities.Bill{}, err
	}

	return getBill(ctx, r.ddb, r.tables.Bills, hold.BillID)
}

func queryHolds(ctx context.Context, ddb DynamoAPI, table, index, attr, value string) ([]entities.HoldRecord, error) {
	p := dynamodb.NewQueryPaginator(ddb, &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String("#k = :v"),
		ExpressionAttributeNames: map[string]string{
			"#k": attr,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})

	var holds []entities.HoldRecord
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it holdItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			holds = append(holds, fromHoldItem(it))
		}
	}
	return holds, nil
}

func toHoldItem(h entities.HoldRecord) holdItem {
	return holdItem{
		ID:           h.ID,
		BillID:       h.BillID,
		CustomerName: h.CustomerName,
		CustomerKey:  h.CustomerKey,
		HeldAt:       formatTime(entities.HoldTimestamp(h.HeldAt)),
		DayWindowID:  h.DayWindowID.String(),
	}
}

func fromHoldItem(it holdItem) entities.HoldRecord {
	return entities.HoldRecord{
		ID:           it.ID,
		BillID:       it.BillID,
		CustomerName: it.CustomerName,
		CustomerKey:  it.CustomerKey,
		HeldAt:       parseTime(it.HeldAt),
		DayWindowID:  entities.DayWindowID(it.DayWindowID),
	}
}
