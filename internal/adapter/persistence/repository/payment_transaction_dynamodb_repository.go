package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/infrastructure/database"
	"thirupugazh_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type paymentTransactionItem struct {
	TransactionID      string `dynamodbav:"transaction_id"`
	BillID             string `dynamodbav:"bill_id"`
	PaymentMode        string `dynamodbav:"payment_mode"`
	SubtotalCents      int64  `dynamodbav:"subtotal_cents"`
	DiscountCents      int64  `dynamodbav:"discount_cents"`
	FinalTotalCents    int64  `dynamodbav:"final_total_cents"`
	CustomerName       string `dynamodbav:"customer_name,omitempty"`
	CustomerPhone      string `dynamodbav:"customer_phone,omitempty"`
	CashDetails        string `dynamodbav:"cash_details,omitempty"`
	DayWindowID        string `dynamodbav:"day_window_id"`
	ClosedAt           string `dynamodbav:"closed_at"`
	ProviderStatus     string `dynamodbav:"provider_status,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// PaymentTransactionDynamoRepository is the transaction ledger in DynamoDB.
//
// Table requirements:
//   - PK: transaction_id (string)
//   - GSI: day_window_id-index (PK: day_window_id)
//
// FinalizeBill writes the transaction, the paid bill and the removal of leftover holds in one
// TransactWriteItems call.
type PaymentTransactionDynamoRepository struct {
	ddb    DynamoAPI
	tables DynamoTables
}

var _ interfaces.IPaymentTransactionRepository = (*PaymentTransactionDynamoRepository)(nil)

func NewPaymentTransactionDynamoRepository(ddb DynamoAPI, tables DynamoTables) *PaymentTransactionDynamoRepository {
	return &PaymentTransactionDynamoRepository{ddb: ddb, tables: tables}
}

func (r *PaymentTransactionDynamoRepository) GetTransaction(ctx context.Context, transactionID string) (entities.PaymentTransaction, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tables.Transactions),
		Key: map[string]types.AttributeValue{
			"transaction_id": &types.AttributeValueMemberS{Value: transactionID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentTransaction{}, nil
	}

	var it paymentTransactionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromPaymentTransactionItem(it), nil
}

func (r *PaymentTransactionDynamoRepository) FinalizeBill(ctx context.Context, txn entities.PaymentTransaction, b entities.Bill) error {
	av, err := attributevalue.MarshalMap(toPaymentTransactionItem(txn))
	if err != nil {
		return err
	}
	billPut, err := putBill(r.tables.Bills, b, entities.BillStatusDraft, entities.BillStatusResumed)
	if err != nil {
		return err
	}

	leftovers, err := queryHolds(ctx, r.ddb, r.tables.Holds, database.HoldsBillIDIndex, "bill_id", b.ID)
	if err != nil {
		return fmt.Errorf("find holds of bill %s: %w", b.ID, err)
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:                aws.String(r.tables.Transactions),
				Item:                     av,
				ConditionExpression:      aws.String("attribute_not_exists(#tid)"),
				ExpressionAttributeNames: map[string]string{"#tid": "transaction_id"},
			},
		},
		billPut,
	}
	for _, h := range leftovers {
		items = append(items, types.TransactWriteItem{
			Delete: &types.Delete{
				TableName: aws.String(r.tables.Holds),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: h.ID},
				},
			},
		})
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if failed, ok := canceledAt(err); ok {
		if failed[0] {
			return interfaces.ErrTransactionExists
		}
		if failed[1] {
			return interfaces.ErrBillStateConflict
		}
	}
	return err
}

func (r *PaymentTransactionDynamoRepository) ListTransactionsByDayWindow(ctx context.Context, id entities.DayWindowID) ([]entities.PaymentTransaction, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tables.Transactions),
		IndexName:              aws.String(database.TransactionsDayWindowIDIndex),
		KeyConditionExpression: aws.String("day_window_id = :w"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":w": &types.AttributeValueMemberS{Value: id.String()},
		},
	})

	var out []entities.PaymentTransaction
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it paymentTransactionItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			out = append(out, fromPaymentTransactionItem(it))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClosedAt.Before(out[j].ClosedAt) })
	return out, nil
}

func toPaymentTransactionItem(t entities.PaymentTransaction) paymentTransactionItem {
	return paymentTransactionItem{
		TransactionID:      t.TransactionID,
		BillID:             t.BillID,
		PaymentMode:        string(t.PaymentMode),
		SubtotalCents:      t.SubtotalCents,
		DiscountCents:      t.DiscountCents,
		FinalTotalCents:    t.FinalTotalCents,
		CustomerName:       t.CustomerName,
		CustomerPhone:      t.CustomerPhone,
		CashDetails:        t.CashDetails,
		DayWindowID:        t.DayWindowID.String(),
		ClosedAt:           formatTime(t.ClosedAt),
		ProviderStatus:     t.ProviderStatus,
		ProviderPayloadRaw: string(t.ProviderPayload),
	}
}

func fromPaymentTransactionItem(it paymentTransactionItem) entities.PaymentTransaction {
	var payload json.RawMessage
	if it.ProviderPayloadRaw != "" {
		payload = json.RawMessage(it.ProviderPayloadRaw)
	}
	return entities.PaymentTransaction{
		TransactionID:   it.TransactionID,
		BillID:          it.BillID,
		PaymentMode:     entities.PaymentMode(it.PaymentMode),
		SubtotalCents:   it.SubtotalCents,
		DiscountCents:   it.DiscountCents,
		FinalTotalCents: it.FinalTotalCents,
		CustomerName:    it.CustomerName,
		CustomerPhone:   it.CustomerPhone,
		CashDetails:     it.CashDetails,
		DayWindowID:     entities.DayWindowID(it.DayWindowID),
		ClosedAt:        parseTime(it.ClosedAt),
		ProviderStatus:  it.ProviderStatus,
		ProviderPayload: payload,
	}
}
