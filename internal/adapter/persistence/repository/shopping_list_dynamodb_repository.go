package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"productivity_api/internal/domain/entities"
	"productivity_api/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultShoppingListsTableName = "shopping_lists"
	ownerIndexName                = "owner_id-index"
)

var ErrShoppingListExists = errors.New("shopping list already exists")

// dynamoAPI is the subset of *dynamodb.Client the repository calls.
type dynamoAPI interface {
	dynamodb.QueryAPIClient
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type shoppingItemRecord struct {
	ID             string  `dynamodbav:"id"`
	Name           string  `dynamodbav:"name"`
	Quantity       string  `dynamodbav:"quantity"`
	Unit           string  `dynamodbav:"unit"`
	EstimatedPrice string  `dynamodbav:"estimated_price"`
	ActualPrice    *string `dynamodbav:"actual_price,omitempty"`
	Category       string  `dynamodbav:"category"`
	Priority       string  `dynamodbav:"priority"`
	Notes          string  `dynamodbav:"notes,omitempty"`
	Completed      bool    `dynamodbav:"completed"`
	CompletedAt    string  `dynamodbav:"completed_at,omitempty"`
	CreatedAt      string  `dynamodbav:"created_at"`
	UpdatedAt      string  `dynamodbav:"updated_at"`
}

type shoppingListRecord struct {
	ID                 string               `dynamodbav:"id"`
	OwnerID            string               `dynamodbav:"owner_id"`
	Name               string               `dynamodbav:"name"`
	Description        string               `dynamodbav:"description,omitempty"`
	Items              []shoppingItemRecord `dynamodbav:"items"`
	Status             string               `dynamodbav:"status"`
	Budget             *string              `dynamodbav:"budget,omitempty"`
	TotalEstimatedCost string               `dynamodbav:"total_estimated_cost"`
	TotalActualCost    string               `dynamodbav:"total_actual_cost"`
	Color              string               `dynamodbav:"color"`
	Category           string               `dynamodbav:"category"`
	DueDate            string               `dynamodbav:"due_date,omitempty"`
	CompletedAt        string               `dynamodbav:"completed_at,omitempty"`
	Version            int64                `dynamodbav:"version"`
	CreatedAt          string               `dynamodbav:"created_at"`
	UpdatedAt          string               `dynamodbav:"updated_at"`
}

// ShoppingListDynamoRepository stores each aggregate, items included, as one
// DynamoDB item.
//
// Table requirements:
//   - PK: id (string)
//   - GSI owner_id-index: PK owner_id (string), projection ALL
//
// Replace and Delete are conditional on the version attribute.

type ShoppingListDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IShoppingListRepository = (*ShoppingListDynamoRepository)(nil)

// NewShoppingListDynamoRepository falls back to SHOPPING_LISTS_TABLE, then
// "shopping_lists", when tableName is empty.
func NewShoppingListDynamoRepository(ddb *dynamodb.Client, tableName string) *ShoppingListDynamoRepository {
	return newShoppingListDynamoRepository(ddb, tableName)
}

func newShoppingListDynamoRepository(ddb dynamoAPI, tableName string) *ShoppingListDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("SHOPPING_LISTS_TABLE", defaultShoppingListsTableName)
	}
	return &ShoppingListDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *ShoppingListDynamoRepository) Create(ctx context.Context, l entities.ShoppingList) (entities.ShoppingList, error) {
	av, err := attributevalue.MarshalMap(toShoppingListRecord(l))
	if err != nil {
		return entities.ShoppingList{}, fmt.Errorf("marshal shopping list: %w", err)
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
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ShoppingList{}, ErrShoppingListExists
		}
		return entities.ShoppingList{}, fmt.Errorf("put shopping list: %w", err)
	}
	return l, nil
}

func (r *ShoppingListDynamoRepository) GetByID(ctx context.Context, id string) (entities.ShoppingList, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ShoppingList{}, fmt.Errorf("get shopping list: %w", err)
	}
	if len(out.Item) == 0 {
		return entities.ShoppingList{}, nil
	}

	var rec shoppingListRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return entities.ShoppingList{}, fmt.Errorf("unmarshal shopping list: %w", err)
	}
	return fromShoppingListRecord(rec), nil
}

// ListByOwnerID reads every page of the owner index. Index reads are
// eventually consistent.
func (r *ShoppingListDynamoRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.ShoppingList, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ownerIndexName),
		KeyConditionExpression: aws.String("#owner_id = :owner_id"),
		ExpressionAttributeNames: map[string]string{
			"#owner_id": "owner_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner_id": &types.AttributeValueMemberS{Value: ownerID},
		},
	})

	lists := []entities.ShoppingList{}
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query shopping lists by owner: %w", err)
		}
		var recs []shoppingListRecord
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &recs); err != nil {
			return nil, fmt.Errorf("unmarshal shopping lists: %w", err)
		}
		for _, rec := range recs {
			lists = append(lists, fromShoppingListRecord(rec))
		}
	}
	return lists, nil
}

func (r *ShoppingListDynamoRepository) Replace(ctx context.Context, l entities.ShoppingList) (entities.ShoppingList, error) {
	expected := l.Version
	l.Version = expected + 1
	l.UpdatedAt = r.now()

	av, err := attributevalue.MarshalMap(toShoppingListRecord(l))
	if err != nil {
		return entities.ShoppingList{}, fmt.Errorf("marshal shopping list: %w", err)
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                 aws.String(r.tableName),
		Item:                      av,
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected_version"),
		ExpressionAttributeNames:  mergeNames(map[string]string{"#id": "id"}, versionNames()),
		ExpressionAttributeValues: versionValues(expected),
	})
	if err != nil {
		return entities.ShoppingList{}, mapConditionalError(err, "replace shopping list")
	}
	return l, nil
}

func (r *ShoppingListDynamoRepository) Delete(ctx context.Context, id string, expectedVersion int64) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #version = :expected_version"),
		ExpressionAttributeNames:  mergeNames(map[string]string{"#id": "id"}, versionNames()),
		ExpressionAttributeValues: versionValues(expectedVersion),
	})
	if err != nil {
		return mapConditionalError(err, "delete shopping list")
	}
	return nil
}

func versionNames() map[string]string {
	return map[string]string{"#version": "version"}
}

func versionValues(expected int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		":expected_version": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
	}
}

// mapConditionalError turns a failed version check into ErrVersionConflict.
// A list deleted in the meantime fails the same check; the caller's reload
// then reports it as not found.
func mapConditionalError(err error, op string) error {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return interfaces.ErrVersionConflict
	}
	return fmt.Errorf("%s: %w", op, err)
}

func toShoppingListRecord(l entities.ShoppingList) shoppingListRecord {
	items := l.Items.All()
	recs := make([]shoppingItemRecord, 0, len(items))
	for _, it := range items {
		recs = append(recs, shoppingItemRecord{
			ID:             it.ID,
			Name:           it.Name,
			Quantity:       floatToString(it.Quantity),
			Unit:           string(it.Unit),
			EstimatedPrice: floatToString(it.EstimatedPrice),
			ActualPrice:    optionalFloatToString(it.ActualPrice),
			Category:       string(it.Category),
			Priority:       string(it.Priority),
			Notes:          it.Notes,
			Completed:      it.Completed,
			CompletedAt:    formatOptionalTime(it.CompletedAt),
			CreatedAt:      formatTime(it.CreatedAt),
			UpdatedAt:      formatTime(it.UpdatedAt),
		})
	}

	return shoppingListRecord{
		ID:                 l.ID,
		OwnerID:            l.OwnerID,
		Name:               l.Name,
		Description:        l.Description,
		Items:              recs,
		Status:             string(l.Status),
		Budget:             optionalFloatToString(l.Budget),
		TotalEstimatedCost: floatToString(l.TotalEstimatedCost),
		TotalActualCost:    floatToString(l.TotalActualCost),
		Color:              string(l.Color),
		Category:           string(l.Category),
		DueDate:            formatOptionalTime(l.DueDate),
		CompletedAt:        formatOptionalTime(l.CompletedAt),
		Version:            l.Version,
		CreatedAt:          formatTime(l.CreatedAt),
		UpdatedAt:          formatTime(l.UpdatedAt),
	}
}

func fromShoppingListRecord(rec shoppingListRecord) entities.ShoppingList {
	items := make([]entities.ShoppingItem, 0, len(rec.Items))
	for _, it := range rec.Items {
		items = append(items, entities.ShoppingItem{
			ID:             it.ID,
			Name:           it.Name,
			Quantity:       parseFloat(it.Quantity),
			Unit:           entities.ItemUnit(it.Unit),
			EstimatedPrice: parseFloat(it.EstimatedPrice),
			ActualPrice:    parseOptionalFloat(it.ActualPrice),
			Category:       entities.ItemCategory(it.Category),
			Priority:       entities.ItemPriority(it.Priority),
			Notes:          it.Notes,
			Completed:      it.Completed,
			CompletedAt:    parseOptionalTime(it.CompletedAt),
			CreatedAt:      parseTime(it.CreatedAt),
			UpdatedAt:      parseTime(it.UpdatedAt),
		})
	}

	return entities.ShoppingList{
		ID:                 rec.ID,
		OwnerID:            rec.OwnerID,
		Name:               rec.Name,
		Description:        rec.Description,
		Items:              entities.NewItemCollection(items...),
		Status:             entities.ListStatus(rec.Status),
		Budget:             parseOptionalFloat(rec.Budget),
		TotalEstimatedCost: parseFloat(rec.TotalEstimatedCost),
		TotalActualCost:    parseFloat(rec.TotalActualCost),
		Color:              entities.ListColor(rec.Color),
		Category:           entities.ListCategory(rec.Category),
		DueDate:            parseOptionalTime(rec.DueDate),
		CompletedAt:        parseOptionalTime(rec.CompletedAt),
		Version:            rec.Version,
		CreatedAt:          parseTime(rec.CreatedAt),
		UpdatedAt:          parseTime(rec.UpdatedAt),
	}
}
