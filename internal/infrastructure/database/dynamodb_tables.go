package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	posconfig "thirupugazh_pos/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// Index names shared with the DynamoDB repositories.
const (
	HoldsCustomerKeyIndex        = "customer_key-index"
	HoldsBillIDIndex             = "bill_id-index"
	TransactionsDayWindowIDIndex = "day_window_id-index"
)

// TableDefinitions describes every table the service reads or writes.
func TableDefinitions(cfg posconfig.DynamoDBConfig) []*dynamodb.CreateTableInput {
	return []*dynamodb.CreateTableInput{
		{
			TableName:            aws.String(cfg.BillsTable),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: stringAttrs("id"),
			KeySchema:            hashKey("id"),
		},
		{
			TableName:            aws.String(cfg.HoldsTable),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: stringAttrs("id", "customer_key", "bill_id"),
			KeySchema:            hashKey("id"),
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				allProjected(HoldsCustomerKeyIndex, "customer_key"),
				allProjected(HoldsBillIDIndex, "bill_id"),
			},
		},
		{
			TableName:            aws.String(cfg.TransactionsTable),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: stringAttrs("transaction_id", "day_window_id"),
			KeySchema:            hashKey("transaction_id"),
			GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
				allProjected(TransactionsDayWindowIDIndex, "day_window_id"),
			},
		},
		{
			TableName:            aws.String(cfg.ResumeEventsTable),
			BillingMode:          types.BillingModePayPerRequest,
			AttributeDefinitions: stringAttrs("hold_id", "id"),
			KeySchema: []types.KeySchemaElement{
				{AttributeName: aws.String("hold_id"), KeyType: types.KeyTypeHash},
				{AttributeName: aws.String("id"), KeyType: types.KeyTypeRange},
			},
		},
	}
}

// EnsureDynamoTables creates missing tables and waits until they are active. Existing tables
// are left untouched.
func EnsureDynamoTables(ctx context.Context, ddb *dynamodb.Client, cfg posconfig.DynamoDBConfig, log *zap.Logger) error {
	waiter := dynamodb.NewTableExistsWaiter(ddb)
	for _, def := range TableDefinitions(cfg) {
		name := aws.ToString(def.TableName)

		_, err := ddb.CreateTable(ctx, def)
		var inUse *types.ResourceInUseException
		switch {
		case err == nil:
			log.Info("dynamodb table created", zap.String("table", name))
		case errors.As(err, &inUse):
			continue
		default:
			return fmt.Errorf("create table %s: %w", name, err)
		}

		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: def.TableName}, 2*time.Minute); err != nil {
			return fmt.Errorf("wait for table %s: %w", name, err)
		}
	}
	return nil
}

func stringAttrs(names ...string) []types.AttributeDefinition {
	out := make([]types.AttributeDefinition, 0, len(names))
	for _, n := range names {
		out = append(out, types.AttributeDefinition{AttributeName: aws.String(n), AttributeType: types.ScalarAttributeTypeS})
	}
	return out
}

func hashKey(name string) []types.KeySchemaElement {
	return []types.KeySchemaElement{{AttributeName: aws.String(name), KeyType: types.KeyTypeHash}}
}

func allProjected(index, key string) types.GlobalSecondaryIndex {
	return types.GlobalSecondaryIndex{
		IndexName:  aws.String(index),
		KeySchema:  hashKey(key),
		Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
	}
}
