package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"emilykids_erp/internal/domain/entities"
	"emilykids_erp/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// SQSAPI is the slice of the SQS client the publisher needs.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSPublisher pushes sale lifecycle events to an SQS queue so reporting and
// notification consumers stay decoupled from the request path.
type SQSPublisher struct {
	client   SQSAPI
	queueURL string
}

var _ interfaces.IEventPublisher = (*SQSPublisher)(nil)

func NewSQSPublisher(client SQSAPI, queueURL string) *SQSPublisher {
	return &SQSPublisher{client: client, queueURL: queueURL}
}

type saleEvent struct {
	Type       string    `json:"type"`
	SaleID     string    `json:"venda_id"`
	QuoteID    string    `json:"orcamento_id,omitempty"`
	CustomerID string    `json:"cliente_id"`
	Total      float64   `json:"total"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (p *SQSPublisher) PublishSaleEvent(ctx context.Context, eventType string, sale entities.Sale) error {
	body, err := json.Marshal(saleEvent{
		Type:       eventType,
		SaleID:     sale.ID,
		QuoteID:    sale.QuoteID,
		CustomerID: sale.CustomerID,
		Total:      sale.Total,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal sale event: %w", err)
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]sqstypes.MessageAttributeValue{
			"event_type": {
				DataType:    aws.String("String"),
				StringValue: aws.String(eventType),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("send sale event: %w", err)
	}
	return nil
}
