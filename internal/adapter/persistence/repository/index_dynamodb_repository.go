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

const (
	defaultIndicesTableName   = "contract_indices"
	defaultRevisionsTableName = "index_revisions"
)

type indexItem struct {
	ID               string  `dynamodbav:"id"`
	ProjectID        string  `dynamodbav:"project_id"`
	ItemCode         string  `dynamodbav:"item_code"`
	CodeSAP          string  `dynamodbav:"code_sap"`
	Description      string  `dynamodbav:"description"`
	Unit             string  `dynamodbav:"unit"`
	Type             string  `dynamodbav:"index_type"`
	CurrentPrice     float64 `dynamodbav:"current_price"`
	TotalQuantity    float64 `dynamodbav:"total_quantity"`
	TotalValue       float64 `dynamodbav:"total_value"`
	Revision         int     `dynamodbav:"revision"`
	LastRevisionDate string  `dynamodbav:"last_revision_date"`
	CreatedAt        string  `dynamodbav:"created_at"`
	UpdatedAt        string  `dynamodbav:"updated_at"`
}

type revisionItem struct {
	ID            string  `dynamodbav:"id"`
	IndexID       string  `dynamodbav:"index_id"`
	Price         float64 `dynamodbav:"price"`
	Quantity      float64 `dynamodbav:"quantity"`
	EffectiveDate string  `dynamodbav:"effective_date"`
	Reason        string  `dynamodbav:"reason"`
	CreatedAt     string  `dynamodbav:"created_at"`
}

// IndexDynamoRepository persists ContractIndex snapshots and their revision
// history in DynamoDB.
//
// Table requirements:
//   - contract_indices: PK id (string)
//   - index_revisions: PK id (string); rows are append-only
//
// Update replaces the whole snapshot row; the previous state lives on only as
// revision records.

type IndexDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	revisionsTable string
}

var _ interfaces.IIndexRepository = (*IndexDynamoRepository)(nil)

func NewIndexDynamoRepository(ddb *dynamodb.Client) *IndexDynamoRepository {
	return &IndexDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("CONTRACT_INDICES_TABLE", defaultIndicesTableName),
		revisionsTable: getenvDefault("INDEX_REVISIONS_TABLE", defaultRevisionsTableName),
	}
}

func (r *IndexDynamoRepository) Create(ctx context.Context, idx entities.ContractIndex) (entities.ContractIndex, error) {
	av, err := attributevalue.MarshalMap(toIndexItem(idx))
	if err != nil {
		return entities.ContractIndex{}, err
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
		return entities.ContractIndex{}, err
	}
	return idx, nil
}

func (r *IndexDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContractIndex, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContractIndex{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContractIndex{}, nil
	}

	var it indexItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContractIndex{}, err
	}
	return fromIndexItem(it), nil
}

func (r *IndexDynamoRepository) ListByProject(ctx context.Context, projectID string) ([]entities.ContractIndex, error) {
	items, err := scanAll(ctx, r.ddb, r.tableName, "project_id", projectID)
	if err != nil {
		return nil, err
	}

	indices := make([]entities.ContractIndex, 0, len(items))
	for _, raw := range items {
		var it indexItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		indices = append(indices, fromIndexItem(it))
	}
	return indices, nil
}

// Update rewrites the full snapshot row. Used by the revision flow after the
// history record is appended.
func (r *IndexDynamoRepository) Update(ctx context.Context, idx entities.ContractIndex) (entities.ContractIndex, error) {
	av, err := attributevalue.MarshalMap(toIndexItem(idx))
	if err != nil {
		return entities.ContractIndex{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ContractIndex{}, err
	}
	return idx, nil
}

func (r *IndexDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *IndexDynamoRepository) AddRevision(ctx context.Context, rev entities.IndexRevision) (entities.IndexRevision, error) {
	av, err := attributevalue.MarshalMap(revisionItem{
		ID:            rev.ID,
		IndexID:       rev.IndexID,
		Price:         rev.Price,
		Quantity:      rev.Quantity,
		EffectiveDate: rev.EffectiveDate.UTC().Format(time.RFC3339Nano),
		Reason:        rev.Reason,
		CreatedAt:     rev.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.IndexRevision{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.revisionsTable),
		Item:      av,
	})
	if err != nil {
		return entities.IndexRevision{}, err
	}
	return rev, nil
}

func (r *IndexDynamoRepository) ListRevisions(ctx context.Context, indexID string) ([]entities.IndexRevision, error) {
	items, err := scanAll(ctx, r.ddb, r.revisionsTable, "index_id", indexID)
	if err != nil {
		return nil, err
	}

	revisions := make([]entities.IndexRevision, 0, len(items))
	for _, raw := range items {
		var it revisionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		effectiveDate, _ := time.Parse(time.RFC3339Nano, it.EffectiveDate)
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		revisions = append(revisions, entities.IndexRevision{
			ID:            it.ID,
			IndexID:       it.IndexID,
			Price:         it.Price,
			Quantity:      it.Quantity,
			EffectiveDate: effectiveDate,
			Reason:        it.Reason,
			CreatedAt:     createdAt,
		})
	}
	return revisions, nil
}

func toIndexItem(idx entities.ContractIndex) indexItem {
	return indexItem{
		ID:               idx.ID,
		ProjectID:        idx.ProjectID,
		ItemCode:         idx.ItemCode,
		CodeSAP:          idx.CodeSAP,
		Description:      idx.Description,
		Unit:             idx.Unit,
		Type:             string(idx.Type),
		CurrentPrice:     idx.CurrentPrice,
		TotalQuantity:    idx.TotalQuantity,
		TotalValue:       idx.TotalValue,
		Revision:         idx.Revision,
		LastRevisionDate: idx.LastRevisionDate.UTC().Format(time.RFC3339Nano),
		CreatedAt:        idx.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        idx.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromIndexItem(it indexItem) entities.ContractIndex {
	lastRevisionDate, _ := time.Parse(time.RFC3339Nano, it.LastRevisionDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ContractIndex{
		ID:               it.ID,
		ProjectID:        it.ProjectID,
		ItemCode:         it.ItemCode,
		CodeSAP:          it.CodeSAP,
		Description:      it.Description,
		Unit:             it.Unit,
		Type:             entities.IndexType(it.Type),
		CurrentPrice:     it.CurrentPrice,
		TotalQuantity:    it.TotalQuantity,
		TotalValue:       it.TotalValue,
		Revision:         it.Revision,
		LastRevisionDate: lastRevisionDate,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
