package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"emilykids_erp/internal/domain/entities"
	"emilykids_erp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "orcamentos"

type quoteLineItem struct {
	ProductID   string `dynamodbav:"produto_id"`
	ProductName string `dynamodbav:"produto_nome,omitempty"`
	SKU         string `dynamodbav:"sku,omitempty"`
	Quantity    int    `dynamodbav:"quantidade"`
	UnitPrice   string `dynamodbav:"preco_unitario"`
	Subtotal    string `dynamodbav:"subtotal"`
}

type quoteItem struct {
	ID           string          `dynamodbav:"id"`
	CustomerID   string          `dynamodbav:"cliente_id"`
	Items        []quoteLineItem `dynamodbav:"itens"`
	Discount     string          `dynamodbav:"desconto"`
	Freight      string          `dynamodbav:"frete"`
	Total        string          `dynamodbav:"total"`
	Status       string          `dynamodbav:"status"`
	CancelReason string          `dynamodbav:"motivo_cancelamento,omitempty"`
	CancelledAt  string          `dynamodbav:"cancelado_em,omitempty"`
	CreatedAt    string          `dynamodbav:"created_at"`
	UpdatedAt    string          `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	it := toQuoteItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	return quotes, nil
}

// UpdateStatus transitions from -> to under a condition on the current
// status. A failed condition (missing quote or different status) yields the
// zero value, not an error.
func (r *QuoteDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.QuoteStatus, reason string) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	updateExpr := "SET #status = :to, #updated_at = :updated_at"
	values := map[string]types.AttributeValue{
		":from":       &types.AttributeValueMemberS{Value: string(from)},
		":to":         &types.AttributeValueMemberS{Value: string(to)},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#id":         "id",
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	if reason != "" {
		updateExpr += ", #motivo = :motivo, #cancelado_em = :cancelado_em"
		values[":motivo"] = &types.AttributeValueMemberS{Value: reason}
		values[":cancelado_em"] = &types.AttributeValueMemberS{Value: now}
		names["#motivo"] = "motivo_cancelamento"
		names["#cancelado_em"] = "cancelado_em"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:           q.ID,
		CustomerID:   q.CustomerID,
		Items:        toQuoteLineItems(q.Items),
		Discount:     floatToString(q.Discount),
		Freight:      floatToString(q.Freight),
		Total:        floatToString(q.Total),
		Status:       string(q.Status),
		CancelReason: q.CancelReason,
		CreatedAt:    q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if q.CancelledAt != nil {
		it.CancelledAt = q.CancelledAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	discount, _ := strconv.ParseFloat(it.Discount, 64)
	freight, _ := strconv.ParseFloat(it.Freight, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)

	q := entities.Quote{
		ID:           it.ID,
		CustomerID:   it.CustomerID,
		Items:        fromQuoteLineItems(it.Items),
		Discount:     discount,
		Freight:      freight,
		Total:        total,
		Status:       entities.QuoteStatus(it.Status),
		CancelReason: it.CancelReason,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	if it.CancelledAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CancelledAt); err == nil {
			q.CancelledAt = &t
		}
	}
	return q
}

func toQuoteLineItems(items []entities.LineItem) []quoteLineItem {
	out := make([]quoteLineItem, 0, len(items))
	for _, it := range items {
		out = append(out, quoteLineItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			SKU:         it.SKU,
			Quantity:    it.Quantity,
			UnitPrice:   floatToString(it.UnitPrice),
			Subtotal:    floatToString(it.Subtotal),
		})
	}
	return out
}

func fromQuoteLineItems(items []quoteLineItem) []entities.LineItem {
	out := make([]entities.LineItem, 0, len(items))
	for _, it := range items {
		price, _ := strconv.ParseFloat(it.UnitPrice, 64)
		subtotal, _ := strconv.ParseFloat(it.Subtotal, 64)
		line := entities.LineItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			SKU:         it.SKU,
			Quantity:    it.Quantity,
			UnitPrice:   price,
			Subtotal:    subtotal,
		}
		if line.Subtotal == 0 {
			line.Subtotal = line.LineSubtotal()
		}
		out = append(out, line)
	}
	return out
}
