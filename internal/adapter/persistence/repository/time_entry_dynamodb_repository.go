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

const defaultTimeEntriesTableName = "time_entries"

type timeEntryItem struct {
	ID           string  `dynamodbav:"id"`
	EmployeeName string  `dynamodbav:"employee_name"`
	Date         string  `dynamodbav:"date"`
	StartTime    string  `dynamodbav:"start_time"`
	EndTime      string  `dynamodbav:"end_time"`
	Hours        float64 `dynamodbav:"hours"`
	Note         string  `dynamodbav:"note"`
	CreatedAt    string  `dynamodbav:"created_at"`
	UpdatedAt    string  `dynamodbav:"updated_at"`
}

// TimeEntryDynamoRepository persists TimeEntry entities in DynamoDB (PK: id).
type TimeEntryDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITimeEntryRepository = (*TimeEntryDynamoRepository)(nil)

func NewTimeEntryDynamoRepository(ddb *dynamodb.Client) *TimeEntryDynamoRepository {
	return &TimeEntryDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TIME_ENTRIES_TABLE", defaultTimeEntriesTableName),
	}
}

func (r *TimeEntryDynamoRepository) Create(ctx context.Context, t entities.TimeEntry) (entities.TimeEntry, error) {
	av, err := attributevalue.MarshalMap(toTimeEntryItem(t))
	if err != nil {
		return entities.TimeEntry{}, err
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
		return entities.TimeEntry{}, err
	}
	return t, nil
}

func (r *TimeEntryDynamoRepository) GetByID(ctx context.Context, id string) (entities.TimeEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TimeEntry{}, err
	}
	if len(out.Item) == 0 {
		return entities.TimeEntry{}, nil
	}

	var it timeEntryItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TimeEntry{}, err
	}
	return fromTimeEntryItem(it), nil
}

// List returns entries matching the filter, most recent day first.
func (r *TimeEntryDynamoRepository) List(ctx context.Context, filter interfaces.TimeEntryFilter) ([]entities.TimeEntry, error) {
	var result []entities.TimeEntry
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []timeEntryItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			entry := fromTimeEntryItem(it)
			if matchesTimeEntryFilter(entry, filter) {
				result = append(result, entry)
			}
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

func matchesTimeEntryFilter(t entities.TimeEntry, filter interfaces.TimeEntryFilter) bool {
	if filter.EmployeeName != "" && t.EmployeeName != filter.EmployeeName {
		return false
	}
	if !filter.From.IsZero() && t.Date.Before(filter.From) {
		return false
	}
	if !filter.To.IsZero() && !t.Date.Before(filter.To) {
		return false
	}
	return true
}

func (r *TimeEntryDynamoRepository) Update(ctx context.Context, t entities.TimeEntry) (entities.TimeEntry, error) {
	av, err := attributevalue.MarshalMap(toTimeEntryItem(t))
	if err != nil {
		return entities.TimeEntry{}, err
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
			return entities.TimeEntry{}, nil
		}
		return entities.TimeEntry{}, err
	}
	return t, nil
}

func (r *TimeEntryDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toTimeEntryItem(t entities.TimeEntry) timeEntryItem {
	return timeEntryItem{
		ID:           t.ID,
		EmployeeName: t.EmployeeName,
		Date:         formatTime(t.Date),
		StartTime:    t.StartTime,
		EndTime:      t.EndTime,
		Hours:        t.Hours,
		Note:         t.Note,
		CreatedAt:    formatTime(t.CreatedAt),
		UpdatedAt:    formatTime(t.UpdatedAt),
	}
}

func fromTimeEntryItem(it timeEntryItem) entities.TimeEntry {
	return entities.TimeEntry{
		ID:           it.ID,
		EmployeeName: it.EmployeeName,
		Date:         parseTime(it.Date),
		StartTime:    it.StartTime,
		EndTime:      it.EndTime,
		Hours:        it.Hours,
		Note:         it.Note,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
