package repository

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// scanAll pages through a table filtering on a single string attribute.
// Listing volumes here are reference-data sized, so a filtered Scan is
// acceptable; swap for a GSI Query if a table outgrows it.
func scanAll(ctx context.Context, ddb *dynamodb.Client, tableName, attrName, attrValue string) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(tableName),
		FilterExpression: aws.String("#attr = :val"),
		ExpressionAttributeNames: map[string]string{
			"#attr": attrName,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":val": &types.AttributeValueMemberS{Value: attrValue},
		},
	}
	return scanPages(ctx, ddb, input)
}

// scanTable pages through a whole table without a filter.
func scanTable(ctx context.Context, ddb *dynamodb.Client, tableName string) ([]map[string]types.AttributeValue, error) {
	return scanPages(ctx, ddb, &dynamodb.ScanInput{TableName: aws.String(tableName)})
}

func scanPages(ctx context.Context, ddb *dynamodb.Client, input *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
