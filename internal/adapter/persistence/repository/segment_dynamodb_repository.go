package repository

import (
	"context"
	"sort"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultSegmentsTableName = "project_segments"

type segmentItem struct {
	ID          string  `dynamodbav:"id"`
	ProjectID   string  `dynamodbav:"project_id"`
	StartKm     float64 `dynamodbav:"start_km"`
	EndKm       float64 `dynamodbav:"end_km"`
	City        string  `dynamodbav:"city"`
	SegmentName string  `dynamodbav:"segment_name"`
}

// SegmentDynamoRepository persists the kilometer-range reference table in
// DynamoDB.

type SegmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISegmentRepository = (*SegmentDynamoRepository)(nil)

func NewSegmentDynamoRepository(ddb *dynamodb.Client) *SegmentDynamoRepository {
	return &SegmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PROJECT_SEGMENTS_TABLE", defaultSegmentsTableName),
	}
}

func (r *SegmentDynamoRepository) Create(ctx context.Context, s entities.ProjectSegment) (entities.ProjectSegment, error) {
	av, err := attributevalue.MarshalMap(segmentItem{
		ID:          s.ID,
		ProjectID:   s.ProjectID,
		StartKm:     s.StartKm,
		EndKm:       s.EndKm,
		City:        s.City,
		SegmentName: s.SegmentName,
	})
	if err != nil {
		return entities.ProjectSegment{}, err
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
		return entities.ProjectSegment{}, err
	}
	return s, nil
}

func (r *SegmentDynamoRepository) ListByProject(ctx context.Context, projectID string) ([]entities.ProjectSegment, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName, "project_id", projectID)
	if err != nil {
		return nil, err
	}

	segments := make([]entities.ProjectSegment, 0, len(items))
	for _, raw := range items {
		var it segmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		segments = append(segments, entities.ProjectSegment{
			ID:          it.ID,
			ProjectID:   it.ProjectID,
			StartKm:     it.StartKm,
			EndKm:       it.EndKm,
			City:        it.City,
			SegmentName: it.SegmentName,
		})
	}

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].StartKm < segments[j].StartKm
	})
	return segments, nil
}
