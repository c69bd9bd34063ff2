package repository

import (
	"context"

	posconfig "thirupugazh_pos/internal/config"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// DynamoAPI is the subset of *dynamodb.Client the repositories call.
type DynamoAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, in *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

var _ DynamoAPI = (*dynamodb.Client)(nil)

// DynamoTables names the tables; see database.TableDefinitions for their keys.
type DynamoTables struct {
	Bills        string
	Holds        string
	Transactions string
	ResumeEvents string
}

func DynamoTablesFromConfig(cfg posconfig.DynamoDBConfig) DynamoTables {
	return DynamoTables{
		Bills:        cfg.BillsTable,
		Holds:        cfg.HoldsTable,
		Transactions: cfg.TransactionsTable,
		ResumeEvents: cfg.ResumeEventsTable,
	}
}
