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

const defaultStocksTableName = "stocks"

type stockItem struct {
	ID               string `dynamodbav:"id"`
	Name             string `dynamodbav:"name"`
	Quantity         int    `dynamodbav:"quantity"`
	Category         string `dynamodbav:"category"`
	QuantityConsumed int    `dynamodbav:"quantity_consumed"`
	CreatedAt        string `dynamodbav:"created_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// StockDynamoRepository persists Stock entities in DynamoDB (PK: id).
type StockDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IStockRepository = (*StockDynamoRepository)(nil)

func NewStockDynamoRepository(ddb *dynamodb.Client) *StockDynamoRepository {
	return &StockDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("STOCKS_TABLE", defaultStocksTableName),
	}
}

func (r *StockDynamoRepository) Create(ctx context.Context, s entities.Stock) (entities.Stock, error) {
	av, err := attributevalue.MarshalMap(toStockItem(s))
	if err != nil {
		return entities.Stock{}, err
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
		return entities.Stock{}, err
	}
	return s, nil
}

func (r *StockDynamoRepository) GetByID(ctx context.Context, id string) (entities.Stock, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Stock{}, err
	}
	if len(out.Item) == 0 {
		return entities.Stock{}, nil
	}

	var it stockItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Stock{}, err
	}
	return fromStockItem(it), nil
}

// List returns all stocks, newest first.
func (r *StockDynamoRepository) List(ctx context.Context) ([]entities.Stock, error) {
	var result []entities.Stock
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []stockItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			result = append(result, fromStockItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *StockDynamoRepository) Update(ctx context.Context, s entities.Stock) (entities.Stock, error) {
	av, err := attributevalue.MarshalMap(toStockItem(s))
	if err != nil {
		return entities.Stock{}, err
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
			return entities.Stock{}, nil
		}
		return entities.Stock{}, err
	}
	return s, nil
}

func (r *StockDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toStockItem(s entities.Stock) stockItem {
	return stockItem{
		ID:               s.ID,
		Name:             s.Name,
		Quantity:         s.Quantity,
		Category:         s.Category,
		QuantityConsumed: s.QuantityConsumed,
		CreatedAt:        formatTime(s.CreatedAt),
		UpdatedAt:        formatTime(s.UpdatedAt),
	}
}

func fromStockItem(it stockItem) entities.Stock {
	return entities.Stock{
		ID:               it.ID,
		Name:             it.Name,
		Quantity:         it.Quantity,
		Category:         it.Category,
		QuantityConsumed: it.QuantityConsumed,
		CreatedAt:        parseTime(it.CreatedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}
