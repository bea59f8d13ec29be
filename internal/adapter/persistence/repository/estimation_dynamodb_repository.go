package repository

import (
	"context"

	"gmcl_backoffice/internal/domain/entities"
	"gmcl_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimationsTableName = "estimations"

type estimationItem struct {
	ID                string   `dynamodbav:"id"`
	Type              string   `dynamodbav:"type"`
	FullName          string   `dynamodbav:"full_name"`
	Email             string   `dynamodbav:"email"`
	Phone             string   `dynamodbav:"phone"`
	Brand             string   `dynamodbav:"brand"`
	Model             string   `dynamodbav:"model"`
	Trim              string   `dynamodbav:"trim"`
	Year              int      `dynamodbav:"year"`
	Description       string   `dynamodbav:"description"`
	Images            []string `dynamodbav:"images"`
	Seen              []string `dynamodbav:"seen"`
	PreferredLanguage string   `dynamodbav:"preferred_language"`
	ContactMethod     string   `dynamodbav:"contact_method"`
	Reply             bool     `dynamodbav:"reply"`
	ReplyBy           string   `dynamodbav:"reply_by"`
	ReplyMessage      string   `dynamodbav:"reply_message"`
	ReplyDate         string   `dynamodbav:"reply_date"`
	CreatedAt         string   `dynamodbav:"created_at"`
	UpdatedAt         string   `dynamodbav:"updated_at"`
}

// EstimationDynamoRepository persists Estimation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Update replaces the full item: mark-as-seen and reply flows do
// read-modify-write in the use case, last write wins.
type EstimationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimationRepository = (*EstimationDynamoRepository)(nil)

func NewEstimationDynamoRepository(ddb *dynamodb.Client) *EstimationDynamoRepository {
	return &EstimationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ESTIMATIONS_TABLE", defaultEstimationsTableName),
	}
}

func (r *EstimationDynamoRepository) Create(ctx context.Context, e entities.Estimation) (entities.Estimation, error) {
	av, err := attributevalue.MarshalMap(toEstimationItem(e))
	if err != nil {
		return entities.Estimation{}, err
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
		return entities.Estimation{}, err
	}
	return e, nil
}

func (r *EstimationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimation{}, nil
	}

	var it estimationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimation{}, err
	}
	return fromEstimationItem(it), nil
}

func (r *EstimationDynamoRepository) List(ctx context.Context) ([]entities.Estimation, error) {
	var result []entities.Estimation
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []estimationItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, fromEstimationItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return result, nil
}

func (r *EstimationDynamoRepository) Update(ctx context.Context, e entities.Estimation) (entities.Estimation, error) {
	av, err := attributevalue.MarshalMap(toEstimationItem(e))
	if err != nil {
		return entities.Estimation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Estimation{}, err
	}
	return e, nil
}

func (r *EstimationDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

func toEstimationItem(e entities.Estimation) estimationItem {
	return estimationItem{
		ID:                e.ID,
		Type:              e.Type,
		FullName:          e.FullName,
		Email:             e.Email,
		Phone:             e.Phone,
		Brand:             e.Brand,
		Model:             e.Model,
		Trim:              e.Trim,
		Year:              e.Year,
		Description:       e.Description,
		Images:            e.Images,
		Seen:              e.Seen,
		PreferredLanguage: e.PreferredLanguage,
		ContactMethod:     e.ContactMethod,
		Reply:             e.Reply,
		ReplyBy:           e.ReplyBy,
		ReplyMessage:      e.ReplyMessage,
		ReplyDate:         formatTime(e.ReplyDate),
		CreatedAt:         formatTime(e.CreatedAt),
		UpdatedAt:         formatTime(e.UpdatedAt),
	}
}

func fromEstimationItem(it estimationItem) entities.Estimation {
	return entities.Estimation{
		ID:                it.ID,
		Type:              it.Type,
		FullName:          it.FullName,
		Email:             it.Email,
		Phone:             it.Phone,
		Brand:             it.Brand,
		Model:             it.Model,
		Trim:              it.Trim,
		Year:              it.Year,
		Description:       it.Description,
		Images:            it.Images,
		Seen:              it.Seen,
		PreferredLanguage: it.PreferredLanguage,
		ContactMethod:     it.ContactMethod,
		Reply:             it.Reply,
		ReplyBy:           it.ReplyBy,
		ReplyMessage:      it.ReplyMessage,
		ReplyDate:         parseTime(it.ReplyDate),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
