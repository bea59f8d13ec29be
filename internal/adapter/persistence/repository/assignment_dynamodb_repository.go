package repository

import (
	"context"
	"errors"
	"sort"

	"gmcl_backoffice/internal/domain/entities"
	"gmcl_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultAssignmentsTableName = "assignments"

type assignmentItem struct {
	ID           string `dynamodbav:"id"`
	EmployeeName string `dynamodbav:"employee_name"`
	ItemName     string `dynamodbav:"item_name"`
	ItemID       string `dynamodbav:"item_id"`
	Date         string `dynamodbav:"date"`
	Quantity     int    `dynamodbav:"quantity"`
	CreatedAt    string `dynamodbav:"created_at"`
}

// AssignmentDynamoRepository persists Assignment entities in DynamoDB (PK: id).
//
// DeleteByItemID backs the stock-deletion cascade: it removes every
// assignment referencing the given stock id and reports how many went.
type AssignmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAssignmentRepository = (*AssignmentDynamoRepository)(nil)

func NewAssignmentDynamoRepository(ddb *dynamodb.Client) *AssignmentDynamoRepository {
	return &AssignmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ASSIGNMENTS_TABLE", defaultAssignmentsTableName),
	}
}

func (r *AssignmentDynamoRepository) Create(ctx context.Context, a entities.Assignment) (entities.Assignment, error) {
	av, err := attributevalue.MarshalMap(toAssignmentItem(a))
	if err != nil {
		return entities.Assignment{}, err
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
		return entities.Assignment{}, err
	}
	return a, nil
}

func (r *AssignmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Assignment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Assignment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Assignment{}, nil
	}

	var it assignmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Assignment{}, err
	}
	return fromAssignmentItem(it), nil
}

// List returns all assignments, newest first.
func (r *AssignmentDynamoRepository) List(ctx context.Context) ([]entities.Assignment, error) {
	return r.scan(ctx, nil)
}

// ListByItemID returns assignments referencing one stock item, newest first.
func (r *AssignmentDynamoRepository) ListByItemID(ctx context.Context, itemID string) ([]entities.Assignment, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#item_id = :item_id"),
		ExpressionAttributeNames: map[string]string{
			"#item_id": "item_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":item_id": &types.AttributeValueMemberS{Value: itemID},
		},
	})
}

func (r *AssignmentDynamoRepository) scan(ctx context.Context, input *dynamodb.ScanInput) ([]entities.Assignment, error) {
	if input == nil {
		input = &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	}

	var result []entities.Assignment
	var startKey map[string]types.AttributeValue

	for {
		input.ExclusiveStartKey = startKey
		out, err := r.ddb.Scan(ctx, input)
		if err != nil {
			return nil, err
		}

		var items []assignmentItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, fromAssignmentItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})
	return result, nil
}

func (r *AssignmentDynamoRepository) Update(ctx context.Context, a entities.Assignment) (entities.Assignment, error) {
	av, err := attributevalue.MarshalMap(toAssignmentItem(a))
	if err != nil {
		return entities.Assignment{}, err
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Assignment{}, nil
		}
		return entities.Assignment{}, err
	}
	return a, nil
}

func (r *AssignmentDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func (r *AssignmentDynamoRepository) DeleteByItemID(ctx context.Context, itemID string) (int, error) {
	linked, err := r.ListByItemID(ctx, itemID)
	if err != nil {
		return 0, err
	}

	deleted := 0
	for _, a := range linked {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: a.ID},
			},
		})
		if err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}

func toAssignmentItem(a entities.Assignment) assignmentItem {
	return assignmentItem{
		ID:           a.ID,
		EmployeeName: a.EmployeeName,
		ItemName:     a.ItemName,
		ItemID:       a.ItemID,
		Date:         formatTime(a.Date),
		Quantity:     a.Quantity,
		CreatedAt:    formatTime(a.CreatedAt),
	}
}

func fromAssignmentItem(it assignmentItem) entities.Assignment {
	return entities.Assignment{
		ID:           it.ID,
		EmployeeName: it.EmployeeName,
		ItemName:     it.ItemName,
		ItemID:       it.ItemID,
		Date:         parseTime(it.Date),
		Quantity:     it.Quantity,
		CreatedAt:    parseTime(it.CreatedAt),
	}
}
