package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"emilykids_erp/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/requester"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway settles card installment payments through Mercado Pago.
//
// Mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) approves everything
// locally; used in dev and in the test environment.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken, config.WithHTTPClient(newIdempotencyRequester(nil)))
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

type idempotencyKeyCtx struct{}

// idempotencyRequester overrides the X-Idempotency-Key header with the value
// carried in the request context. The sdk generates a fresh key per attempt,
// which would let a retried charge go through twice.
type idempotencyRequester struct {
	next requester.Requester
}

func newIdempotencyRequester(next requester.Requester) *idempotencyRequester {
	if next == nil {
		next = &http.Client{Timeout: 30 * time.Second}
	}
	return &idempotencyRequester{next: next}
}

func (r *idempotencyRequester) Do(req *http.Request) (*http.Response, error) {
	if key, ok := req.Context().Value(idempotencyKeyCtx{}).(string); ok && key != "" {
		req.Header.Set("X-Idempotency-Key", key)
	}
	return r.next.Do(req)
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, req interfaces.PaymentRequest) (string, string, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock create success provider_payment_id=%s valor=%.2f ref=%s", id, req.Amount, req.ExternalReference)
		return id, "approved", nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", ErrMercadoPagoGatewayNotConfigured
	}

	installments := req.Installments
	if installments < 1 {
		installments = 1
	}

	mpReq := payment.Request{
		TransactionAmount: req.Amount,
		Description:       req.Description,
		ExternalReference: req.ExternalReference,
		PaymentMethodID:   req.PaymentMethodID,
		Installments:      installments,
	}
	if email := strings.TrimSpace(req.PayerEmail); email != "" {
		mpReq.Payer = &payment.PayerRequest{Email: email}
	}

	if key := strings.TrimSpace(req.IdempotencyKey); key != "" {
		ctx = context.WithValue(ctx, idempotencyKeyCtx{}, key)
	}
	resp, err := g.client.Create(ctx, mpReq)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed ref=%s err=%v", req.ExternalReference, err)
		return "", "", err
	}

	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return fmt.Sprintf("%d", resp.ID), resp.Status, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
