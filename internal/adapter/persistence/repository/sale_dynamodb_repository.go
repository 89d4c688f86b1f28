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

const defaultSalesTableName = "vendas"

type saleItem struct {
	ID              string          `dynamodbav:"id"`
	CustomerID      string          `dynamodbav:"cliente_id"`
	QuoteID         string          `dynamodbav:"orcamento_id,omitempty"`
	Items           []quoteLineItem `dynamodbav:"itens"`
	Discount        string          `dynamodbav:"desconto"`
	Freight         string          `dynamodbav:"frete"`
	Total           string          `dynamodbav:"total"`
	PaymentMethod   string          `dynamodbav:"forma_pagamento"`
	InstallmentsNum int             `dynamodbav:"numero_parcelas"`
	DueDate         string          `dynamodbav:"data_vencimento"`
	Notes           string          `dynamodbav:"observacoes,omitempty"`
	Cancelled       bool            `dynamodbav:"cancelada"`
	CancelReason    string          `dynamodbav:"motivo_cancelamento,omitempty"`
	CancelledAt     string          `dynamodbav:"cancelada_em,omitempty"`
	CreatedAt       string          `dynamodbav:"created_at"`
	UpdatedAt       string          `dynamodbav:"updated_at"`
}

// SaleDynamoRepository persists Sale entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type SaleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb *dynamodb.Client) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SALES_TABLE", defaultSalesTableName),
	}
}

func (r *SaleDynamoRepository) Create(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	it := toSaleItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Sale{}, err
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
		return entities.Sale{}, err
	}
	return s, nil
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Sale{}, err
	}
	if len(out.Item) == 0 {
		return entities.Sale{}, nil
	}

	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) List(ctx context.Context) ([]entities.Sale, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	sales := make([]entities.Sale, 0, len(out.Items))
	for _, raw := range out.Items {
		var it saleItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		sales = append(sales, fromSaleItem(it))
	}
	return sales, nil
}

// Cancel flips the cancelada flag under the condition it was false. A failed
// condition (missing sale or already cancelled) yields the zero value.
func (r *SaleDynamoRepository) Cancel(ctx context.Context, id, reason string) (entities.Sale, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #cancelada = :false"),
		UpdateExpression:    aws.String("SET #cancelada = :true, #motivo = :motivo, #cancelada_em = :cancelada_em, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":false":        &types.AttributeValueMemberBOOL{Value: false},
			":true":         &types.AttributeValueMemberBOOL{Value: true},
			":motivo":       &types.AttributeValueMemberS{Value: reason},
			":cancelada_em": &types.AttributeValueMemberS{Value: now},
			":updated_at":   &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#cancelada":    "cancelada",
			"#motivo":       "motivo_cancelamento",
			"#cancelada_em": "cancelada_em",
			"#updated_at":   "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Sale{}, nil
		}
		return entities.Sale{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Sale{}, nil
	}
	var it saleItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func toSaleItem(s entities.Sale) saleItem {
	it := saleItem{
		ID:              s.ID,
		CustomerID:      s.CustomerID,
		QuoteID:         s.QuoteID,
		Items:           toQuoteLineItems(s.Items),
		Discount:        floatToString(s.Discount),
		Freight:         floatToString(s.Freight),
		Total:           floatToString(s.Total),
		PaymentMethod:   string(s.PaymentMethod),
		InstallmentsNum: s.InstallmentsNum,
		DueDate:         s.DueDate.UTC().Format(time.RFC3339Nano),
		Notes:           s.Notes,
		Cancelled:       s.Cancelled,
		CancelReason:    s.CancelReason,
		CreatedAt:       s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.CancelledAt != nil {
		it.CancelledAt = s.CancelledAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromSaleItem(it saleItem) entities.Sale {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	discount, _ := strconv.ParseFloat(it.Discount, 64)
	freight, _ := strconv.ParseFloat(it.Freight, 64)
	total, _ := strconv.ParseFloat(it.Total, 64)

	s := entities.Sale{
		ID:              it.ID,
		CustomerID:      it.CustomerID,
		QuoteID:         it.QuoteID,
		Items:           fromQuoteLineItems(it.Items),
		Discount:        discount,
		Freight:         freight,
		Total:           total,
		PaymentMethod:   entities.PaymentMethod(it.PaymentMethod),
		InstallmentsNum: it.InstallmentsNum,
		DueDate:         dueDate,
		Notes:           it.Notes,
		Cancelled:       it.Cancelled,
		CancelReason:    it.CancelReason,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if it.CancelledAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.CancelledAt); err == nil {
			s.CancelledAt = &t
		}
	}
	return s
}
