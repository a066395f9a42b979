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

const defaultEquipmentTableName = "equipment"

type equipmentItem struct {
	ID                   string `dynamodbav:"id"`
	InternalCode         string `dynamodbav:"internal_code"`
	Name                 string `dynamodbav:"name"`
	Category             string `dynamodbav:"category"`
	Owner                string `dynamodbav:"owner"`
	ResponsibleCompanyID string `dynamodbav:"responsible_company_id"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

// EquipmentDynamoRepository persists fleet assets in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type EquipmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEquipmentRepository = (*EquipmentDynamoRepository)(nil)

func NewEquipmentDynamoRepository(ddb *dynamodb.Client) *EquipmentDynamoRepository {
	return &EquipmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("EQUIPMENT_TABLE", defaultEquipmentTableName),
	}
}

func (r *EquipmentDynamoRepository) Create(ctx context.Context, eq entities.Equipment) (entities.Equipment, error) {
	av, err := attributevalue.MarshalMap(toEquipmentItem(eq))
	if err != nil {
		return entities.Equipment{}, err
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
		return entities.Equipment{}, err
	}
	return eq, nil
}

func (r *EquipmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Equipment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Equipment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Equipment{}, nil
	}

	var it equipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Equipment{}, err
	}
	return fromEquipmentItem(it), nil
}

func (r *EquipmentDynamoRepository) List(ctx context.Context) ([]entities.Equipment, error) {
	items, err := scanTable(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	equipment := make([]entities.Equipment, 0, len(items))
	for _, raw := range items {
		var it equipmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		equipment = append(equipment, fromEquipmentItem(it))
	}
	return equipment, nil
}

func (r *EquipmentDynamoRepository) Update(ctx context.Context, eq entities.Equipment) (entities.Equipment, error) {
	av, err := attributevalue.MarshalMap(toEquipmentItem(eq))
	if err != nil {
		return entities.Equipment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Equipment{}, err
	}
	return eq, nil
}

func (r *EquipmentDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toEquipmentItem(eq entities.Equipment) equipmentItem {
	return equipmentItem{
		ID:                   eq.ID,
		InternalCode:         eq.InternalCode,
		Name:                 eq.Name,
		Category:             eq.Category,
		Owner:                string(eq.Owner),
		ResponsibleCompanyID: eq.ResponsibleCompanyID,
		CreatedAt:            eq.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            eq.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEquipmentItem(it equipmentItem) entities.Equipment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Equipment{
		ID:                   it.ID,
		InternalCode:         it.InternalCode,
		Name:                 it.Name,
		Category:             it.Category,
		Owner:                entities.EquipmentOwner(it.Owner),
		ResponsibleCompanyID: it.ResponsibleCompanyID,
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}
}
