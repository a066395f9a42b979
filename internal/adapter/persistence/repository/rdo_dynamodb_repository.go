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

const defaultRDOsTableName = "rdos"

type rdoProductionItem struct {
	ID              string  `dynamodbav:"id"`
	RDOID           string  `dynamodbav:"rdo_id"`
	IndexID         string  `dynamodbav:"index_id"`
	EquipmentID     string  `dynamodbav:"equipment_id"`
	Km              float64 `dynamodbav:"km"`
	City            string  `dynamodbav:"city"`
	Segment         string  `dynamodbav:"segment"`
	MeasurementType string  `dynamodbav:"measurement_type"`
	Quantity        float64 `dynamodbav:"quantity"`
	FrozenPrice     float64 `dynamodbav:"frozen_price"`
	TotalValue      float64 `dynamodbav:"total_value"`
	Observation     string  `dynamodbav:"observation"`
}

type rdoImpactItem struct {
	ID          string `dynamodbav:"id"`
	Type        string `dynamodbav:"impact_type"`
	Description string `dynamodbav:"description"`
	Duration    string `dynamodbav:"duration"`
}

type rdoItem struct {
	ID              string              `dynamodbav:"id"`
	ProjectID       string              `dynamodbav:"project_id"`
	Date            string              `dynamodbav:"rdo_date"`
	Status          string              `dynamodbav:"status"`
	Items           []rdoProductionItem `dynamodbav:"items"`
	Impacts         []rdoImpactItem     `dynamodbav:"impacts"`
	TotalDailyValue float64             `dynamodbav:"total_daily_value"`
	CreatedAt       string              `dynamodbav:"created_at"`
	UpdatedAt       string              `dynamodbav:"updated_at"`
}

// RDODynamoRepository persists daily reports in DynamoDB as whole documents,
// items and impacts embedded.
//
// Table requirements:
//   - PK: id (string)
//
// Frozen prices are stored exactly as handed over; nothing in this layer
// recomputes an item value.

type RDODynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRDORepository = (*RDODynamoRepository)(nil)

func NewRDODynamoRepository(ddb *dynamodb.Client) *RDODynamoRepository {
	return &RDODynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RDOS_TABLE", defaultRDOsTableName),
	}
}

func (r *RDODynamoRepository) Save(ctx context.Context, rdo entities.RDO) (entities.RDO, error) {
	av, err := attributevalue.MarshalMap(toRDOItem(rdo))
	if err != nil {
		return entities.RDO{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.RDO{}, err
	}
	return rdo, nil
}

func (r *RDODynamoRepository) GetByID(ctx context.Context, id string) (entities.RDO, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RDO{}, err
	}
	if len(out.Item) == 0 {
		return entities.RDO{}, nil
	}

	var it rdoItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RDO{}, err
	}
	return fromRDOItem(it), nil
}

func (r *RDODynamoRepository) ListByProject(ctx context.Context, projectID string) ([]entities.RDO, error) {
	var items []map[string]types.AttributeValue
	var err error
	if projectID == "" {
		items, err = scanTable(ctx, r.ddb, r.tableName)
	} else {
		items, err = scanAll(ctx, r.ddb, r.tableName, "project_id", projectID)
	}
	if err != nil {
		return nil, err
	}

	rdos := make([]entities.RDO, 0, len(items))
	for _, raw := range items {
		var it rdoItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		rdos = append(rdos, fromRDOItem(it))
	}
	return rdos, nil
}

// ListByMonth returns the project's reports with from <= date < to.
func (r *RDODynamoRepository) ListByMonth(ctx context.Context, projectID string, from, to time.Time) ([]entities.RDO, error) {
	all, err := r.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	rdos := make([]entities.RDO, 0, len(all))
	for _, rdo := range all {
		if rdo.Date.Before(from) || !rdo.Date.Before(to) {
			continue
		}
		rdos = append(rdos, rdo)
	}
	return rdos, nil
}

func (r *RDODynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toRDOItem(rdo entities.RDO) rdoItem {
	it := rdoItem{
		ID:              rdo.ID,
		ProjectID:       rdo.ProjectID,
		Date:            rdo.Date.UTC().Format(time.RFC3339Nano),
		Status:          string(rdo.Status),
		TotalDailyValue: rdo.TotalDailyValue,
		CreatedAt:       rdo.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       rdo.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, item := range rdo.Items {
		it.Items = append(it.Items, rdoProductionItem{
			ID:              item.ID,
			RDOID:           item.RDOID,
			IndexID:         item.IndexID,
			EquipmentID:     item.EquipmentID,
			Km:              item.Km,
			City:            item.City,
			Segment:         item.Segment,
			MeasurementType: string(item.MeasurementType),
			Quantity:        item.Quantity,
			FrozenPrice:     item.FrozenPrice,
			TotalValue:      item.TotalValue,
			Observation:     item.Observation,
		})
	}
	for _, impact := range rdo.Impacts {
		it.Impacts = append(it.Impacts, rdoImpactItem{
			ID:          impact.ID,
			Type:        string(impact.Type),
			Description: impact.Description,
			Duration:    impact.Duration,
		})
	}
	return it
}

func fromRDOItem(it rdoItem) entities.RDO {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	rdo := entities.RDO{
		ID:              it.ID,
		ProjectID:       it.ProjectID,
		Date:            date,
		Status:          entities.RDOStatus(it.Status),
		TotalDailyValue: it.TotalDailyValue,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	for _, item := range it.Items {
		rdo.Items = append(rdo.Items, entities.RDOItem{
			ID:              item.ID,
			RDOID:           item.RDOID,
			IndexID:         item.IndexID,
			EquipmentID:     item.EquipmentID,
			Km:              item.Km,
			City:            item.City,
			Segment:         item.Segment,
			MeasurementType: entities.MeasurementType(item.MeasurementType),
			Quantity:        item.Quantity,
			FrozenPrice:     item.FrozenPrice,
			TotalValue:      item.TotalValue,
			Observation:     item.Observation,
		})
	}
	for _, impact := range it.Impacts {
		rdo.Impacts = append(rdo.Impacts, entities.RDOImpact{
			ID:          impact.ID,
			Type:        entities.ImpactType(impact.Type),
			Description: impact.Description,
			Duration:    impact.Duration,
		})
	}
	return rdo
}
