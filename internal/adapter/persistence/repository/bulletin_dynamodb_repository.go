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

const defaultBulletinsTableName = "measurement_bulletins"

type measurementItemRecord struct {
	CodeSAP                  string  `dynamodbav:"code_sap"`
	Description              string  `dynamodbav:"description"`
	Unit                     string  `dynamodbav:"unit"`
	UnitPrice                float64 `dynamodbav:"unit_price"`
	PlannedQuantity          float64 `dynamodbav:"planned_quantity"`
	AccumulatedPreviousQty   float64 `dynamodbav:"accumulated_previous_qty"`
	MeasuredQuantity         float64 `dynamodbav:"measured_quantity"`
	TotalAccumulatedQty      float64 `dynamodbav:"total_accumulated_qty"`
	AccumulatedPreviousValue float64 `dynamodbav:"accumulated_previous_value"`
	MeasuredValue            float64 `dynamodbav:"measured_value"`
	TotalAccumulatedValue    float64 `dynamodbav:"total_accumulated_value"`
	TotalContractValue       float64 `dynamodbav:"total_contract_value"`
	BalanceValue             float64 `dynamodbav:"balance_value"`
	ExecutionPercentage      float64 `dynamodbav:"execution_percentage"`
}

type bulletinRecord struct {
	ID            string                  `dynamodbav:"id"`
	ProjectID     string                  `dynamodbav:"project_id"`
	ReferenceDate string                  `dynamodbav:"reference_date"`
	Period        string                  `dynamodbav:"period"`
	Type          string                  `dynamodbav:"bulletin_type"`
	Items         []measurementItemRecord `dynamodbav:"items"`
	TotalValue    float64                 `dynamodbav:"total_value"`
	FileName      string                  `dynamodbav:"file_name"`
	UploadDate    string                  `dynamodbav:"upload_date"`
}

// BulletinDynamoRepository persists measurement bulletins in DynamoDB as
// whole documents, line items embedded.
//
// Table requirements:
//   - PK: id (string)
//
// Line items never change after Create; UpdateMetadata rewrites header
// attributes only.

type BulletinDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBulletinRepository = (*BulletinDynamoRepository)(nil)

func NewBulletinDynamoRepository(ddb *dynamodb.Client) *BulletinDynamoRepository {
	return &BulletinDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MEASUREMENT_BULLETINS_TABLE", defaultBulletinsTableName),
	}
}

func (r *BulletinDynamoRepository) Create(ctx context.Context, b entities.MeasurementBulletin) (entities.MeasurementBulletin, error) {
	av, err := attributevalue.MarshalMap(toBulletinRecord(b))
	if err != nil {
		return entities.MeasurementBulletin{}, err
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
		return entities.MeasurementBulletin{}, err
	}
	return b, nil
}

func (r *BulletinDynamoRepository) GetByID(ctx context.Context, id string) (entities.MeasurementBulletin, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MeasurementBulletin{}, err
	}
	if len(out.Item) == 0 {
		return entities.MeasurementBulletin{}, nil
	}

	var rec bulletinRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.MeasurementBulletin{}, err
	}
	return fromBulletinRecord(rec), nil
}

func (r *BulletinDynamoRepository) ListByProject(ctx context.Context, projectID string) ([]entities.MeasurementBulletin, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName, "project_id", projectID)
	if err != nil {
		return nil, err
	}

	bulletins := make([]entities.MeasurementBulletin, 0, len(items))
	for _, raw := range items {
		var rec bulletinRecord
		if err := attributevalue.UnmarshalMap(raw, &rec); err != nil {
			return nil, err
		}
		bulletins = append(bulletins, fromBulletinRecord(rec))
	}
	return bulletins, nil
}

// UpdateMetadata rewrites the header attributes only; the embedded item list
// and the stored total are left untouched.
func (r *BulletinDynamoRepository) UpdateMetadata(ctx context.Context, b entities.MeasurementBulletin) (entities.MeasurementBulletin, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: b.ID},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #reference_date = :reference_date, #period = :period, #bulletin_type = :bulletin_type"),
		ExpressionAttributeNames: map[string]string{
			"#id":             "id",
			"#reference_date": "reference_date",
			"#period":         "period",
			"#bulletin_type":  "bulletin_type",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":reference_date": &types.AttributeValueMemberS{Value: b.ReferenceDate.UTC().Format(time.RFC3339Nano)},
			":period":         &types.AttributeValueMemberS{Value: b.Period},
			":bulletin_type":  &types.AttributeValueMemberS{Value: string(b.Type)},
		},
	})
	if err != nil {
		return entities.MeasurementBulletin{}, err
	}
	return b, nil
}

func (r *BulletinDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toBulletinRecord(b entities.MeasurementBulletin) bulletinRecord {
	rec := bulletinRecord{
		ID:            b.ID,
		ProjectID:     b.ProjectID,
		ReferenceDate: b.ReferenceDate.UTC().Format(time.RFC3339Nano),
		Period:        b.Period,
		Type:          string(b.Type),
		TotalValue:    b.TotalValue,
		FileName:      b.FileName,
		UploadDate:    b.UploadDate.UTC().Format(time.RFC3339Nano),
	}
	for _, item := range b.Items {
		rec.Items = append(rec.Items, measurementItemRecord(item))
	}
	return rec
}

func fromBulletinRecord(rec bulletinRecord) entities.MeasurementBulletin {
	referenceDate, _ := time.Parse(time.RFC3339Nano, rec.ReferenceDate)
	uploadDate, _ := time.Parse(time.RFC3339Nano, rec.UploadDate)
	b := entities.MeasurementBulletin{
		ID:            rec.ID,
		ProjectID:     rec.ProjectID,
		ReferenceDate: referenceDate,
		Period:        rec.Period,
		Type:          entities.IndexType(rec.Type),
		TotalValue:    rec.TotalValue,
		FileName:      rec.FileName,
		UploadDate:    uploadDate,
	}
	for _, item := range rec.Items {
		b.Items = append(b.Items, entities.MeasurementItem(item))
	}
	return b
}
