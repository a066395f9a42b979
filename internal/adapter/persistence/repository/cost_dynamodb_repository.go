package repository

import (
	"context"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCostsTableName = "equipment_costs"

type costItem struct {
	ID          string  `dynamodbav:"id"`
	EquipmentID string  `dynamodbav:"equipment_id"`
	Type        string  `dynamodbav:"cost_type"`
	Value       float64 `dynamodbav:"cost_value"`
	Date        string  `dynamodbav:"cost_date"`
	Description string  `dynamodbav:"description"`
	CreatedAt   string  `dynamodbav:"created_at"`
}

// CostDynamoRepository persists the equipment cost ledger in DynamoDB.
// Rows reference equipment by id only; deleting an equipment leaves its
// cost rows in place.

type CostDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICostRepository = (*CostDynamoRepository)(nil)

func NewCostDynamoRepository(ddb *dynamodb.Client) *CostDynamoRepository {
	return &CostDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EQUIPMENT_COSTS_TABLE", defaultCostsTableName),
	}
}

func (r *CostDynamoRepository) Create(ctx context.Context, cost entities.EquipmentCost) (entities.EquipmentCost, error) {
	av, err := attributevalue.MarshalMap(costItem{
		ID:          cost.ID,
		EquipmentID: cost.EquipmentID,
		Type:        string(cost.Type),
		Value:       cost.Value,
		Date:        cost.Date.UTC().Format(time.RFC3339Nano),
		Description: cost.Description,
		CreatedAt:   cost.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.EquipmentCost{}, err
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
		return entities.EquipmentCost{}, err
	}
	return cost, nil
}

func (r *CostDynamoRepository) GetByID(ctx context.Context, id string) (entities.EquipmentCost, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EquipmentCost{}, err
	}
	if len(out.Item) == 0 {
		return entities.EquipmentCost{}, nil
	}

	var it costItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EquipmentCost{}, err
	}
	return fromCostItem(it), nil
}

func (r *CostDynamoRepository) List(ctx context.Context) ([]entities.EquipmentCost, error) {
	items, err := scanTable(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	costs := make([]entities.EquipmentCost, 0, len(items))
	for _, raw := range items {
		var it costItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		costs = append(costs, fromCostItem(it))
	}
	return costs, nil
}

// ListByDateRange filters in memory after a full scan. Date strings are
// RFC3339Nano with trimmed zeros, so lexicographic filtering on the server
// side would be unreliable.
func (r *CostDynamoRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.EquipmentCost, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	costs := make([]entities.EquipmentCost, 0, len(all))
	for _, cost := range all {
		if cost.Date.Before(from) || !cost.Date.Before(to) {
			continue
		}
		costs = append(costs, cost)
	}
	return costs, nil
}

func (r *CostDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func fromCostItem(it costItem) entities.EquipmentCost {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.EquipmentCost{
		ID:          it.ID,
		EquipmentID: it.EquipmentID,
		Type:        entities.CostType(it.Type),
		Value:       it.Value,
		Date:        date,
		Description: it.Description,
		CreatedAt:   createdAt,
	}
}
