package repository

import (
	"context"
	"testing"
	"time"

	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTables = DynamoTables{Bills: "bills", Holds: "holds", Transactions: "payment_transactions", ResumeEvents: "resume_events"}

type fakeDynamo struct {
	items       map[string]map[string]types.AttributeValue
	queryItems  []map[string]types.AttributeValue
	scanItems   []map[string]types.AttributeValue
	putErr      error
	transactErr error

	puts      []*dynamodb.PutItemInput
	queries   []*dynamodb.QueryInput
	transacts []*dynamodb.TransactWriteItemsInput
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) store(t *testing.T, table, id string, v any) {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	require.NoError(t, err)
	f.items[table+"|"+id] = av
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	for _, v := range in.Key {
		if s, ok := v.(*types.AttributeValueMemberS); ok {
			return &dynamodb.GetItemOutput{Item: f.items[aws.ToString(in.TableName)+"|"+s.Value]}, nil
		}
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts = append(f.puts, in)
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	return &dynamodb.QueryOutput{Items: f.queryItems}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, _ *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return &dynamodb.ScanOutput{Items: f.scanItems}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.transacts = append(f.transacts, in)
	return &dynamodb.TransactWriteItemsOutput{}, f.transactErr
}

func canceled(codes ...string) error {
	reasons := make([]types.CancellationReason, 0, len(codes))
	for _, c := range codes {
		reasons = append(reasons, types.CancellationReason{Code: aws.String(c)})
	}
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}

func TestBillDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("conditional put failure is a state conflict", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.putErr = &types.ConditionalCheckFailedException{}
		repo := NewBillDynamoRepository(ddb, testTables)

		err := repo.SaveBill(ctx, draftBill("bill-1"))
		require.ErrorIs(t, err, interfaces.ErrBillStateConflict)
		require.Len(t, ddb.puts, 1)
		assert.Equal(t, "attribute_not_exists(#id) OR #status IN (:draft, :resumed)", aws.ToString(ddb.puts[0].ConditionExpression))
	})

	t.Run("round trip", func(t *testing.T) {
		ddb := newFakeDynamo()
		b := draftBill("bill-1")
		b.DiscountPercent = decimal.RequireFromString("10")
		ddb.store(t, "bills", "bill-1", toBillItem(b))
		repo := NewBillDynamoRepository(ddb, testTables)

		got, err := repo.GetBill(ctx, "bill-1")
		require.NoError(t, err)
		assert.Equal(t, b.Items, got.Items)
		assert.True(t, b.DiscountPercent.Equal(got.DiscountPercent))
		assert.True(t, b.CreatedAt.Equal(got.CreatedAt))

		missing, err := repo.GetBill(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, missing.ID)
	})
}

func TestHoldDynamoRepository_CreateHold(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewHoldDynamoRepository(ddb, testTables)
	hold := entities.HoldRecord{ID: "h1", BillID: "bill-1", CustomerKey: "alice", HeldAt: time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)}

	require.NoError(t, repo.CreateHold(ctx, hold, heldCopy(draftBill("bill-1"))))
	require.Len(t, ddb.transacts, 1)
	items := ddb.transacts[0].TransactItems
	require.Len(t, items, 2)
	assert.Equal(t, "bills", aws.ToString(items[0].Put.TableName))
	assert.Equal(t, "#status IN (:s0)", aws.ToString(items[0].Put.ConditionExpression))
	assert.Equal(t, "holds", aws.ToString(items[1].Put.TableName))

	ddb.transactErr = canceled("ConditionalCheckFailed", "None")
	require.ErrorIs(t, repo.CreateHold(ctx, hold, heldCopy(draftBill("bill-1"))), interfaces.ErrBillStateConflict)
}

func TestHoldDynamoRepository_ClaimHold(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	hold := entities.HoldRecord{ID: "h1", BillID: "bill-1", CustomerKey: "alice", HeldAt: at}

	setup := func(t *testing.T) (*fakeDynamo, *HoldDynamoRepository) {
		ddb := newFakeDynamo()
		ddb.store(t, "holds", "h1", toHoldItem(hold))
		resumed := draftBill("bill-1")
		resumed.Status = entities.BillStatusResumed
		ddb.store(t, "bills", "bill-1", toBillItem(resumed))
		return ddb, NewHoldDynamoRepository(ddb, testTables)
	}

	t.Run("success", func(t *testing.T) {
		ddb, repo := setup(t)
		b, err := repo.ClaimHold(ctx, "h1", at)
		require.NoError(t, err)
		assert.Equal(t, entities.BillStatusResumed, b.Status)

		items := ddb.transacts[0].TransactItems
		require.Len(t, items, 2)
		assert.Equal(t, "attribute_exists(#id)", aws.ToString(items[0].Delete.ConditionExpression))
		assert.Equal(t, "#status = :held", aws.ToString(items[1].Update.ConditionExpression))
	})

	t.Run("missing hold", func(t *testing.T) {
		ddb, repo := setup(t)
		_, err := repo.ClaimHold(ctx, "other", at)
		require.ErrorIs(t, err, interfaces.ErrHoldClaimed)
		assert.Empty(t, ddb.transacts)
	})

	t.Run("lost the race", func(t *testing.T) {
		ddb, repo := setup(t)
		ddb.transactErr = canceled("ConditionalCheckFailed", "None")
		_, err := repo.ClaimHold(ctx, "h1", at)
		require.ErrorIs(t, err, interfaces.ErrHoldClaimed)
	})

	t.Run("bill not held", func(t *testing.T) {
		ddb, repo := setup(t)
		ddb.transactErr = canceled("None", "ConditionalCheckFailed")
		_, err := repo.ClaimHold(ctx, "h1", at)
		require.ErrorIs(t, err, interfaces.ErrBillStateConflict)
	})
}

func TestHoldDynamoRepository_ListHoldsPage(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	base := time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"c", "a", "b"} {
		av, err := attributevalue.MarshalMap(toHoldItem(entities.HoldRecord{ID: id, HeldAt: base.Add(time.Duration(len(id)+i) * time.Second)}))
		require.NoError(t, err)
		ddb.scanItems = append(ddb.scanItems, av)
	}
	repo := NewHoldDynamoRepository(ddb, testTables)

	page, next, err := repo.ListHoldsPage(ctx, "", 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "c", page[0].ID)
	assert.Equal(t, "a", page[1].ID)

	page, next, err = repo.ListHoldsPage(ctx, next, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b", page[0].ID)
	assert.Empty(t, next)
}

func TestPaymentTransactionDynamoRepository_FinalizeBill(t *testing.T) {
	ctx := context.Background()
	leftover, err := attributevalue.MarshalMap(toHoldItem(entities.HoldRecord{ID: "h9", BillID: "bill-1"}))
	require.NoError(t, err)

	paid := draftBill("bill-1")
	paid.Status = entities.BillStatusPaid
	txn := entities.PaymentTransaction{TransactionID: "T1", BillID: "bill-1", DayWindowID: "2026-10-16", ProviderPayload: []byte(`{"id":1}`)}

	t.Run("writes transaction, bill and leftover hold removal together", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.queryItems = []map[string]types.AttributeValue{leftover}
		repo := NewPaymentTransactionDynamoRepository(ddb, testTables)

		require.NoError(t, repo.FinalizeBill(ctx, txn, paid))
		require.Len(t, ddb.queries, 1)
		assert.Equal(t, "bill_id-index", aws.ToString(ddb.queries[0].IndexName))

		items := ddb.transacts[0].TransactItems
		require.Len(t, items, 3)
		assert.Equal(t, "payment_transactions", aws.ToString(items[0].Put.TableName))
		assert.Equal(t, "#status IN (:s0, :s1)", aws.ToString(items[1].Put.ConditionExpression))
		assert.Equal(t, "holds", aws.ToString(items[2].Delete.TableName))
	})

	t.Run("duplicate transaction id", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.transactErr = canceled("ConditionalCheckFailed", "None")
		repo := NewPaymentTransactionDynamoRepository(ddb, testTables)
		require.ErrorIs(t, repo.FinalizeBill(ctx, txn, paid), interfaces.ErrTransactionExists)
	})

	t.Run("bill no longer payable", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.transactErr = canceled("None", "ConditionalCheckFailed")
		repo := NewPaymentTransactionDynamoRepository(ddb, testTables)
		require.ErrorIs(t, repo.FinalizeBill(ctx, txn, paid), interfaces.ErrBillStateConflict)
	})

	t.Run("read back", func(t *testing.T) {
		ddb := newFakeDynamo()
		ddb.store(t, "payment_transactions", "T1", toPaymentTransactionItem(txn))
		repo := NewPaymentTransactionDynamoRepository(ddb, testTables)

		got, err := repo.GetTransaction(ctx, "T1")
		require.NoError(t, err)
		assert.Equal(t, "bill-1", got.BillID)
		assert.JSONEq(t, `{"id":1}`, string(got.ProviderPayload))
	})
}

func TestResumeEventDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewResumeEventDynamoRepository(ddb, testTables)
	at := time.Date(2026, 10, 17, 15, 1, 0, 0, time.UTC)

	require.NoError(t, repo.AppendResumeEvent(ctx, entities.ResumeEvent{ID: "2", HoldID: "h1", Outcome: entities.ResumeOutcomeGranted, At: at.Add(time.Second)}))
	require.Len(t, ddb.puts, 1)
	assert.Equal(t, "resume_events", aws.ToString(ddb.puts[0].TableName))

	for _, e := range []resumeEventItem{
		{HoldID: "h1", ID: "2", Outcome: "granted", At: formatTime(at.Add(time.Second))},
		{HoldID: "h1", ID: "1", Outcome: "expired_blocked", At: formatTime(at)},
	} {
		av, err := attributevalue.MarshalMap(e)
		require.NoError(t, err)
		ddb.queryItems = append(ddb.queryItems, av)
	}

	events, err := repo.ListResumeEvents(ctx, "h1")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entities.ResumeOutcomeExpiredBlocked, events[0].Outcome)
	assert.Equal(t, entities.ResumeOutcomeGranted, events[1].Outcome)
}
