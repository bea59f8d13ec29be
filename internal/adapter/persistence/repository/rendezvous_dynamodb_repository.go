package repository

import (
	"context"
	"errors"
	"time"

	"gmcl_backoffice/internal/domain/entities"
	"gmcl_backoffice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRendezVousTableName = "rendezvous"

type rendezVousItem struct {
	ID                string `dynamodbav:"id"`
	ClientFullName    string `dynamodbav:"client_full_name"`
	ClientPhoneNumber string `dynamodbav:"client_phone_number"`
	ClientEmail       string `dynamodbav:"client_email"`
	Date              string `dynamodbav:"date"`
	Heure             string `dynamodbav:"heure"`
	Type              string `dynamodbav:"type"`
	Description       string `dynamodbav:"description"`
	EstimationID      string `dynamodbav:"estimation_id"`
	Confirmation      bool   `dynamodbav:"confirmation"`
	ConfirmedBy       string `dynamodbav:"confirmed_by"`
	ConfirmedAt       string `dynamodbav:"confirmed_at"`
	PreferredLanguage string `dynamodbav:"preferred_language"`
	ContactMethod     string `dynamodbav:"contact_method"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// RendezVousDynamoRepository persists RendezVous entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Date-window listings scan the table and filter on the parsed date. A
// repair shop's appointment table stays small enough that a scan is fine.
type RendezVousDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRendezVousRepository = (*RendezVousDynamoRepository)(nil)

func NewRendezVousDynamoRepository(ddb *dynamodb.Client) *RendezVousDynamoRepository {
	return &RendezVousDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RENDEZVOUS_TABLE", defaultRendezVousTableName),
	}
}

func (r *RendezVousDynamoRepository) Create(ctx context.Context, rdv entities.RendezVous) (entities.RendezVous, error) {
	av, err := attributevalue.MarshalMap(toRendezVousItem(rdv))
	if err != nil {
		return entities.RendezVous{}, err
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
		return entities.RendezVous{}, err
	}
	return rdv, nil
}

func (r *RendezVousDynamoRepository) GetByID(ctx context.Context, id string) (entities.RendezVous, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.RendezVous{}, err
	}
	if len(out.Item) == 0 {
		return entities.RendezVous{}, nil
	}

	var it rendezVousItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.RendezVous{}, err
	}
	return fromRendezVousItem(it), nil
}

func (r *RendezVousDynamoRepository) List(ctx context.Context) ([]entities.RendezVous, error) {
	return r.scan(ctx, func(entities.RendezVous) bool { return true })
}

func (r *RendezVousDynamoRepository) ListByDateRange(ctx context.Context, from, to time.Time) ([]entities.RendezVous, error) {
	return r.scan(ctx, func(rdv entities.RendezVous) bool {
		return !rdv.Date.Before(from) && rdv.Date.Before(to)
	})
}

func (r *RendezVousDynamoRepository) scan(ctx context.Context, keep func(entities.RendezVous) bool) ([]entities.RendezVous, error) {
	var result []entities.RendezVous
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []rendezVousItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			rdv := fromRendezVousItem(it)
			if keep(rdv) {
				result = append(result, rdv)
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return result, nil
}

func (r *RendezVousDynamoRepository) Update(ctx context.Context, rdv entities.RendezVous) (entities.RendezVous, error) {
	av, err := attributevalue.MarshalMap(toRendezVousItem(rdv))
	if err != nil {
		return entities.RendezVous{}, err
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
			return entities.RendezVous{}, nil
		}
		return entities.RendezVous{}, err
	}
	return rdv, nil
}

// Confirm flips the confirmation flag and records who confirmed and when.
// Re-confirming an already-confirmed appointment overwrites both fields.
func (r *RendezVousDynamoRepository) Confirm(ctx context.Context, id, confirmedBy string, confirmedAt time.Time) (entities.RendezVous, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #confirmation = :confirmation, #confirmed_by = :confirmed_by, #confirmed_at = :confirmed_at, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":confirmation": &types.AttributeValueMemberBOOL{Value: true},
			":confirmed_by": &types.AttributeValueMemberS{Value: confirmedBy},
			":confirmed_at": &types.AttributeValueMemberS{Value: formatTime(confirmedAt)},
			":updated_at":   &types.AttributeValueMemberS{Value: formatTime(confirmedAt)},
		},
		ExpressionAttributeNames: mergeNames(map[string]string{
			"#confirmation": "confirmation",
			"#confirmed_by": "confirmed_by",
			"#confirmed_at": "confirmed_at",
			"#updated_at":   "updated_at",
		}, map[string]string{"#id": "id"}),
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.RendezVous{}, nil
		}
		return entities.RendezVous{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.RendezVous{}, nil
	}

	var it rendezVousItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.RendezVous{}, err
	}
	return fromRendezVousItem(it), nil
}

func (r *RendezVousDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
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

func toRendezVousItem(rdv entities.RendezVous) rendezVousItem {
	return rendezVousItem{
		ID:                rdv.ID,
		ClientFullName:    rdv.ClientFullName,
		ClientPhoneNumber: rdv.ClientPhoneNumber,
		ClientEmail:       rdv.ClientEmail,
		Date:              formatTime(rdv.Date),
		Heure:             rdv.Heure,
		Type:              rdv.Type,
		Description:       rdv.Description,
		EstimationID:      rdv.EstimationID,
		Confirmation:      rdv.Confirmation,
		ConfirmedBy:       rdv.ConfirmedBy,
		ConfirmedAt:       formatTime(rdv.ConfirmedAt),
		PreferredLanguage: rdv.PreferredLanguage,
		ContactMethod:     rdv.ContactMethod,
		CreatedAt:         formatTime(rdv.CreatedAt),
		UpdatedAt:         formatTime(rdv.UpdatedAt),
	}
}

func fromRendezVousItem(it rendezVousItem) entities.RendezVous {
	return entities.RendezVous{
		ID:                it.ID,
		ClientFullName:    it.ClientFullName,
		ClientPhoneNumber: it.ClientPhoneNumber,
		ClientEmail:       it.ClientEmail,
		Date:              parseTime(it.Date),
		Heure:             it.Heure,
		Type:              it.Type,
		Description:       it.Description,
		EstimationID:      it.EstimationID,
		Confirmation:      it.Confirmation,
		ConfirmedBy:       it.ConfirmedBy,
		ConfirmedAt:       parseTime(it.ConfirmedAt),
		PreferredLanguage: it.PreferredLanguage,
		ContactMethod:     it.ContactMethod,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
