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

const (
	defaultReceivablesTableName = "contas_receber"
	receivablesSaleIDIndex      = "venda_id-index"
)

type installmentItem struct {
	ID        string `dynamodbav:"id"`
	SaleID    string `dynamodbav:"venda_id"`
	Number    int    `dynamodbav:"numero"`
	Amount    string `dynamodbav:"valor"`
	DueDate   string `dynamodbav:"data_vencimento"`
	Status    string `dynamodbav:"status"`
	PaidAt    string `dynamodbav:"pago_em,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ReceivableDynamoRepository persists accounts-receivable installments in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: venda_id-index (PK: venda_id)

type ReceivableDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IReceivableRepository = (*ReceivableDynamoRepository)(nil)

func NewReceivableDynamoRepository(ddb *dynamodb.Client) *ReceivableDynamoRepository {
	return &ReceivableDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECEIVABLES_TABLE", defaultReceivablesTableName),
	}
}

func (r *ReceivableDynamoRepository) CreateBatch(ctx context.Context, installments []entities.Installment) error {
	for _, inst := range installments {
		av, err := attributevalue.MarshalMap(toInstallmentItem(inst))
		if err != nil {
			return err
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
			return err
		}
	}
	return nil
}

func (r *ReceivableDynamoRepository) GetByID(ctx context.Context, id string) (entities.Installment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Installment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Installment{}, nil
	}

	var it installmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Installment{}, err
	}
	return fromInstallmentItem(it), nil
}

func (r *ReceivableDynamoRepository) ListBySaleID(ctx context.Context, saleID string) ([]entities.Installment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(receivablesSaleIDIndex),
		KeyConditionExpression: aws.String("venda_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberS{Value: saleID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Installment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it installmentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromInstallmentItem(it))
	}
	return items, nil
}

func (r *ReceivableDynamoRepository) MarkPaid(ctx context.Context, id string) (entities.Installment, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pendente"),
		UpdateExpression:    aws.String("SET #status = :pago, #pago_em = :now, #updated_at = :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pendente": &types.AttributeValueMemberS{Value: string(entities.InstallmentStatusPendente)},
			":pago":     &types.AttributeValueMemberS{Value: string(entities.InstallmentStatusPago)},
			":now":      &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#status":     "status",
			"#pago_em":    "pago_em",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Installment{}, nil
		}
		return entities.Installment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Installment{}, nil
	}
	var it installmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Installment{}, err
	}
	return fromInstallmentItem(it), nil
}

func (r *ReceivableDynamoRepository) CancelPendingBySaleID(ctx context.Context, saleID string) (int, error) {
	installments, err := r.ListBySaleID(ctx, saleID)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	cancelled := 0
	for _, inst := range installments {
		if inst.Status != entities.InstallmentStatusPendente {
			continue
		}
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: inst.ID},
			},
			ConditionExpression: aws.String("attribute_exists(#id) AND #status = :pendente"),
			UpdateExpression:    aws.String("SET #status = :cancelado, #updated_at = :now"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pendente":  &types.AttributeValueMemberS{Value: string(entities.InstallmentStatusPendente)},
				":cancelado": &types.AttributeValueMemberS{Value: string(entities.InstallmentStatusCancelado)},
				":now":       &types.AttributeValueMemberS{Value: now},
			},
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#updated_at": "updated_at",
			},
		})
		if err != nil {
			var cfe *types.ConditionalCheckFailedException
			if errors.As(err, &cfe) {
				continue
			}
			return cancelled, err
		}
		cancelled++
	}
	return cancelled, nil
}

func toInstallmentItem(i entities.Installment) installmentItem {
	it := installmentItem{
		ID:        i.ID,
		SaleID:    i.SaleID,
		Number:    i.Number,
		Amount:    floatToString(i.Amount),
		DueDate:   i.DueDate.UTC().Format(time.RFC3339Nano),
		Status:    string(i.Status),
		CreatedAt: i.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: i.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if i.PaidAt != nil {
		it.PaidAt = i.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromInstallmentItem(it installmentItem) entities.Installment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	dueDate, _ := time.Parse(time.RFC3339Nano, it.DueDate)
	amount, _ := strconv.ParseFloat(it.Amount, 64)

	inst := entities.Installment{
		ID:        it.ID,
		SaleID:    it.SaleID,
		Number:    it.Number,
		Amount:    amount,
		DueDate:   dueDate,
		Status:    entities.InstallmentStatus(it.Status),
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
	if it.PaidAt != "" {
		if t, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			inst.PaidAt = &t
		}
	}
	return inst
}
