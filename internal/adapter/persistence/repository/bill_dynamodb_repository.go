package repository

import (
	"context"
	"strconv"
	"strings"

	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

type lineItemItem struct {
	MenuItemID     string `dynamodbav:"menu_item_id"`
	Name           string `dynamodbav:"name"`
	UnitPriceCents int64  `dynamodbav:"unit_price_cents"`
	Quantity       int    `dynamodbav:"quantity"`
}

type billItem struct {
	ID              string         `dynamodbav:"id"`
	Items           []lineItemItem `dynamodbav:"items"`
	DiscountPercent string         `dynamodbav:"discount_percent"`
	CustomerName    string         `dynamodbav:"customer_name,omitempty"`
	CustomerPhone   string         `dynamodbav:"customer_phone,omitempty"`
	Status          string         `dynamodbav:"status"`
	CreatedAt       string         `dynamodbav:"created_at"`
	UpdatedAt       string         `dynamodbav:"updated_at"`
}

// BillDynamoRepository persists bills in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Writes carry a status condition so a held or paid bill is never overwritten by a stale cart.
type BillDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IBillRepository = (*BillDynamoRepository)(nil)

func NewBillDynamoRepository(ddb DynamoAPI, tables DynamoTables) *BillDynamoRepository {
	return &BillDynamoRepository{ddb: ddb, tableName: tables.Bills}
}

func (r *BillDynamoRepository) SaveBill(ctx context.Context, b entities.Bill) error {
	av, err := attributevalue.MarshalMap(toBillItem(b))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id) OR #status IN (:draft, :resumed)"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":draft":   &types.AttributeValueMemberS{Value: string(entities.BillStatusDraft)},
			":resumed": &types.AttributeValueMemberS{Value: string(entities.BillStatusResumed)},
		},
	})
	if isConditionFailed(err) {
		return interfaces.ErrBillStateConflict
	}
	return err
}

func (r *BillDynamoRepository) GetBill(ctx context.Context, id string) (entities.Bill, error) {
	return getBill(ctx, r.ddb, r.tableName, id)
}

func getBill(ctx context.Context, ddb DynamoAPI, table, id string) (entities.Bill, error) {
	out, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Bill{}, err
	}
	if len(out.Item) == 0 {
		return entities.Bill{}, nil
	}

	var it billItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Bill{}, err
	}
	return fromBillItem(it), nil
}

// putBill builds the transactional put of b, conditioned on the current status being one of
// allowed.
func putBill(table string, b entities.Bill, allowed ...entities.BillStatus) (types.TransactWriteItem, error) {
	av, err := attributevalue.MarshalMap(toBillItem(b))
	if err != nil {
		return types.TransactWriteItem{}, err
	}

	values := make(map[string]types.AttributeValue, len(allowed))
	keys := make([]string, 0, len(allowed))
	for i, s := range allowed {
		key := ":s" + strconv.Itoa(i)
		values[key] = &types.AttributeValueMemberS{Value: string(s)}
		keys = append(keys, key)
	}
	cond := "#status IN (" + strings.Join(keys, ", ") + ")"

	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:                 aws.String(table),
			Item:                      av,
			ConditionExpression:       aws.String(cond),
			ExpressionAttributeNames:  map[string]string{"#status": "status"},
			ExpressionAttributeValues: values,
		},
	}, nil
}

func toBillItem(b entities.Bill) billItem {
	items := make([]lineItemItem, 0, len(b.Items))
	for _, li := range b.Items {
		items = append(items, lineItemItem(li))
	}
	return billItem{
		ID:              b.ID,
		Items:           items,
		DiscountPercent: b.DiscountPercent.String(),
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		Status:          string(b.Status),
		CreatedAt:       formatTime(b.CreatedAt),
		UpdatedAt:       formatTime(b.UpdatedAt),
	}
}

func fromBillItem(it billItem) entities.Bill {
	var items []entities.LineItem
	for _, li := range it.Items {
		items = append(items, entities.LineItem(li))
	}
	pct, _ := decimal.NewFromString(it.DiscountPercent)
	return entities.Bill{
		ID:              it.ID,
		Items:           items,
		DiscountPercent: pct,
		CustomerName:    it.CustomerName,
		CustomerPhone:   it.CustomerPhone,
		Status:          entities.BillStatus(it.Status),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}
