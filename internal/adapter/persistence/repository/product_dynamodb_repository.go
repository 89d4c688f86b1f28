package repository

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"emilykids_erp/internal/domain/entities"
	"emilykids_erp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultProductsTableName = "produtos"

type productItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"nome"`
	SKU       string `dynamodbav:"sku"`
	Price     string `dynamodbav:"preco"`
	Available int    `dynamodbav:"estoque_disponivel"`
	Reserved  int    `dynamodbav:"estoque_reservado"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ProductDynamoRepository persists Product entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Stock counters are mutated exclusively through conditional update
// expressions (ADD with a guard on the source counter), so concurrent
// reservations and deductions serialize on DynamoDB instead of on the
// application.

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	it := toProductItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Product{}, err
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
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Product{}, err
	}
	if len(out.Item) == 0 {
		return entities.Product{}, nil
	}

	var it productItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Product, 0, len(out.Items))
	for _, raw := range out.Items {
		var it productItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProductItem(it))
	}
	return items, nil
}

// Reserve moves qty from available to reserved.
func (r *ProductDynamoRepository) Reserve(ctx context.Context, id string, qty int) (entities.Product, error) {
	return r.updateCounters(ctx, id,
		"SET #avail = #avail - :q, #res = #res + :q, #updated_at = :updated_at",
		"attribute_exists(#id) AND #avail >= :q", qty)
}

// Release moves qty from reserved back to available.
func (r *ProductDynamoRepository) Release(ctx context.Context, id string, qty int) (entities.Product, error) {
	return r.updateCounters(ctx, id,
		"SET #res = #res - :q, #avail = #avail + :q, #updated_at = :updated_at",
		"attribute_exists(#id) AND #res >= :q", qty)
}

// Deduct removes qty from available directly (direct sales and conversion).
func (r *ProductDynamoRepository) Deduct(ctx context.Context, id string, qty int) (entities.Product, error) {
	return r.updateCounters(ctx, id,
		"SET #avail = #avail - :q, #updated_at = :updated_at",
		"attribute_exists(#id) AND #avail >= :q", qty)
}

// Adjust applies a signed correction to available. Negative deltas are
// guarded so availability never goes below zero.
func (r *ProductDynamoRepository) Adjust(ctx context.Context, id string, delta int) (entities.Product, error) {
	cond := "attribute_exists(#id)"
	if delta < 0 {
		cond = "attribute_exists(#id) AND #avail >= :abs"
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	values := map[string]types.AttributeValue{
		":q":          &types.AttributeValueMemberN{Value: strconv.Itoa(delta)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	if delta < 0 {
		values[":abs"] = &types.AttributeValueMemberN{Value: strconv.Itoa(-delta)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String("SET #avail = #avail + :q, #updated_at = :updated_at"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#avail":      "estoque_disponivel",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	return r.counterResult(out, err)
}

func (r *ProductDynamoRepository) updateCounters(ctx context.Context, id, updateExpr, condExpr string, qty int) (entities.Product, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	// DynamoDB rejects unused expression attribute names, so only map the
	// placeholders the expressions actually reference.
	names := map[string]string{
		"#id":         "id",
		"#updated_at": "updated_at",
	}
	if strings.Contains(updateExpr+condExpr, "#avail") {
		names["#avail"] = "estoque_disponivel"
	}
	if strings.Contains(updateExpr+condExpr, "#res") {
		names["#res"] = "estoque_reservado"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String(condExpr),
		UpdateExpression:    aws.String(updateExpr),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":q":          &types.AttributeValueMemberN{Value: strconv.Itoa(qty)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: names,
		ReturnValues:             types.ReturnValueAllNew,
	})
	return r.counterResult(out, err)
}

func (r *ProductDynamoRepository) counterResult(out *dynamodb.UpdateItemOutput, err error) (entities.Product, error) {
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Product{}, nil
		}
		return entities.Product{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Product{}, nil
	}
	var it productItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     floatToString(p.Price),
		Available: p.Available,
		Reserved:  p.Reserved,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProductItem(it productItem) entities.Product {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.Product{
		ID:        it.ID,
		Name:      it.Name,
		SKU:       it.SKU,
		Price:     price,
		Available: it.Available,
		Reserved:  it.Reserved,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
