package database

import (
	"context"
	"strings"

	posconfig "thirupugazh_pos/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client from the dynamodb block of pos.yml.
//
// Local-friendly settings:
//   - region (default: us-east-1)
//   - access_key_id / secret_access_key (default: local)
//   - endpoint (optional; e.g. http://dynamodb:8000)
func ConnectDynamoDB(ctx context.Context, cfg posconfig.DynamoDBConfig) (*dynamodb.Client, error) {
	awsCfg, err := newDynamoDBConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func newDynamoDBConfig(ctx context.Context, cfg posconfig.DynamoDBConfig) (aws.Config, error) {
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	creds := credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")

	return config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(creds),
	)
}
