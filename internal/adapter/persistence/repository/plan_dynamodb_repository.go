package repository

import (
	"context"
	"fmt"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPlansTableName = "monthly_plans"

type planItemRecord struct {
	IndexID         string  `dynamodbav:"index_id"`
	PlannedQuantity float64 `dynamodbav:"planned_quantity"`
	TotalValue      float64 `dynamodbav:"total_value"`
}

type planEquipmentRecord struct {
	EquipmentID        string  `dynamodbav:"equipment_id"`
	Status             string  `dynamodbav:"status"`
	TargetProductive   float64 `dynamodbav:"target_productive"`
	TargetUnproductive float64 `dynamodbav:"target_unproductive"`
	EstimatedCost      float64 `dynamodbav:"estimated_cost"`
}

type planRecord struct {
	PlanKey    string                `dynamodbav:"plan_key"`
	ID         string                `dynamodbav:"id"`
	ProjectID  string                `dynamodbav:"project_id"`
	Month      int                   `dynamodbav:"month"`
	Year       int                   `dynamodbav:"year"`
	Items      []planItemRecord      `dynamodbav:"items"`
	Fleet      []planEquipmentRecord `dynamodbav:"fleet"`
	TotalValue float64               `dynamodbav:"total_value"`
	CreatedAt  string                `dynamodbav:"created_at"`
	UpdatedAt  string                `dynamodbav:"updated_at"`
}

// PlanDynamoRepository persists monthly baselines in DynamoDB.
//
// Table requirements:
//   - PK: plan_key (string) = projectID#year#month
//
// One row per (project, month, year); Save replaces the row for that key.

type PlanDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPlanRepository = (*PlanDynamoRepository)(nil)

func NewPlanDynamoRepository(ddb *dynamodb.Client) *PlanDynamoRepository {
	return &PlanDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MONTHLY_PLANS_TABLE", defaultPlansTableName),
	}
}

func planKey(projectID string, month, year int) string {
	return fmt.Sprintf("%s#%d#%02d", projectID, year, month)
}

func (r *PlanDynamoRepository) GetByKey(ctx context.Context, projectID string, month, year int) (entities.MonthlyPlan, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"plan_key": &types.AttributeValueMemberS{Value: planKey(projectID, month, year)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MonthlyPlan{}, err
	}
	if len(out.Item) == 0 {
		return entities.MonthlyPlan{}, nil
	}

	var rec planRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.MonthlyPlan{}, err
	}
	return fromPlanRecord(rec), nil
}

func (r *PlanDynamoRepository) Save(ctx context.Context, plan entities.MonthlyPlan) (entities.MonthlyPlan, error) {
	av, err := attributevalue.MarshalMap(toPlanRecord(plan))
	if err != nil {
		return entities.MonthlyPlan{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.MonthlyPlan{}, err
	}
	return plan, nil
}

func toPlanRecord(plan entities.MonthlyPlan) planRecord {
	rec := planRecord{
		PlanKey:    planKey(plan.ProjectID, plan.Month, plan.Year),
		ID:         plan.ID,
		ProjectID:  plan.ProjectID,
		Month:      plan.Month,
		Year:       plan.Year,
		TotalValue: plan.TotalValue,
		CreatedAt:  plan.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  plan.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	for _, item := range plan.Items {
		rec.Items = append(rec.Items, planItemRecord{
			IndexID:         item.IndexID,
			PlannedQuantity: item.PlannedQuantity,
			TotalValue:      item.TotalValue,
		})
	}
	for _, eq := range plan.Fleet {
		rec.Fleet = append(rec.Fleet, planEquipmentRecord{
			EquipmentID:        eq.EquipmentID,
			Status:             string(eq.Status),
			TargetProductive:   eq.TargetProductive,
			TargetUnproductive: eq.TargetUnproductive,
			EstimatedCost:      eq.EstimatedCost,
		})
	}
	return rec
}

func fromPlanRecord(rec planRecord) entities.MonthlyPlan {
	createdAt, _ := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	plan := entities.MonthlyPlan{
		ID:         rec.ID,
		ProjectID:  rec.ProjectID,
		Month:      rec.Month,
		Year:       rec.Year,
		TotalValue: rec.TotalValue,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
	for _, item := range rec.Items {
		plan.Items = append(plan.Items, entities.PlanItem{
			IndexID:         item.IndexID,
			PlannedQuantity: item.PlannedQuantity,
			TotalValue:      item.TotalValue,
		})
	}
	for _, eq := range rec.Fleet {
		plan.Fleet = append(plan.Fleet, entities.PlanEquipment{
			EquipmentID:        eq.EquipmentID,
			Status:             entities.FleetStatus(eq.Status),
			TargetProductive:   eq.TargetProductive,
			TargetUnproductive: eq.TargetUnproductive,
			EstimatedCost:      eq.EstimatedCost,
		})
	}
	return plan
}
