package repository

import (
	"context"
	"time"

	"gestao_obras/internal/domain/entities"
	"gestao_obras/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultCompaniesTableName = "companies"

type companyItem struct {
	ID            string `dynamodbav:"id"`
	Name          string `dynamodbav:"name"`
	IsGroupMember bool   `dynamodbav:"is_group_member"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// CompanyDynamoRepository persists Company entities in DynamoDB.

type CompanyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICompanyRepository = (*CompanyDynamoRepository)(nil)

func NewCompanyDynamoRepository(ddb *dynamodb.Client) *CompanyDynamoRepository {
	return &CompanyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMPANIES_TABLE", defaultCompaniesTableName),
	}
}

func (r *CompanyDynamoRepository) Create(ctx context.Context, c entities.Company) (entities.Company, error) {
	av, err := attributevalue.MarshalMap(companyItem{
		ID:            c.ID,
		Name:          c.Name,
		IsGroupMember: c.IsGroupMember,
		CreatedAt:     c.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Company{}, err
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
		return entities.Company{}, err
	}
	return c, nil
}

func (r *CompanyDynamoRepository) List(ctx context.Context) ([]entities.Company, error) {
	items, err := scanTable(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}

	companies := make([]entities.Company, 0, len(items))
	for _, raw := range items {
		var it companyItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		companies = append(companies, entities.Company{
			ID:            it.ID,
			Name:          it.Name,
			IsGroupMember: it.IsGroupMember,
			CreatedAt:     createdAt,
		})
	}
	return companies, nil
}
