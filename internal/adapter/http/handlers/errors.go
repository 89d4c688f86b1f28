package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"emilykids_erp/internal/usecase"
	"emilykids_erp/internal/validation"
	"emilykids_erp/pkg"

	"github.com/gin-gonic/gin"
)

var validate = validation.New()

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// bindJSON binds and validates the payload, answering the error envelope
// itself. Handlers short-circuit on a non-nil return.
func bindJSON(c *gin.Context, out any) error {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return err
	}
	if err := validate.Struct(out); err != nil {
		appErr := mapValidationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return err
	}
	return nil
}

func mapValidationError(err error) *pkg.AppError {
	if validation.HasDuplicateItemViolation(err) {
		return pkg.NewDomainErrorSimple("ITEM_ALREADY_ADDED", "Item already added", http.StatusConflict)
	}
	return pkg.NewDomainError("INVALID_REQUEST", "Invalid request payload", err, http.StatusBadRequest)
}

// mapDomainError translates use case sentinels into the HTTP error envelope.
func mapDomainError(err error) *pkg.AppError {
	var stockErr *usecase.StockUnavailableError
	if errors.As(err, &stockErr) {
		return pkg.NewDomainErrorSimple("STOCK_UNAVAILABLE", stockErr.Error(), http.StatusUnprocessableEntity)
	}

	switch {
	case errors.Is(err, usecase.ErrStockUnavailable):
		return pkg.NewDomainErrorSimple("STOCK_UNAVAILABLE", "Insufficient stock", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrDuplicateItem):
		return pkg.NewDomainErrorSimple("ITEM_ALREADY_ADDED", "Item already added", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoItems):
		return pkg.NewDomainErrorSimple("NO_ITEMS", "At least one line item is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentMethodRequired):
		return pkg.NewDomainErrorSimple("PAYMENT_METHOD_REQUIRED", "Select a payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCancelReasonRequired):
		return pkg.NewDomainErrorSimple("CANCEL_REASON_REQUIRED", "Cancellation reason is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotOpen):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_OPEN", "Quote is not open", http.StatusConflict)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSaleAlreadyCancelled):
		return pkg.NewDomainErrorSimple("SALE_ALREADY_CANCELLED", "Sale already cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstallmentNotFound):
		return pkg.NewDomainErrorSimple("INSTALLMENT_NOT_FOUND", "Installment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInstallmentAlreadyPaid):
		return pkg.NewDomainErrorSimple("INSTALLMENT_ALREADY_PAID", "Installment already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallmentCancelled):
		return pkg.NewDomainErrorSimple("INSTALLMENT_CANCELLED", "Installment is cancelled", http.StatusConflict)
	case errors.Is(err, usecase.ErrInstallmentStatusChanged):
		return pkg.NewDomainErrorSimple("INSTALLMENT_STATUS_CHANGED", "Installment status changed, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed), errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment gateway error", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidSaleID),
		errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidInstallmentID),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidUnitPrice),
		errors.Is(err, usecase.ErrInvalidAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidCustomerName),
		errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidProductSKU),
		errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrInvalidStockDelta):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

// pageParams reads 1-based pagination from the query string.
func pageParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, pageSize
}
