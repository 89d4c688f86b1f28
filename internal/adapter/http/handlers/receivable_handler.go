package handlers

import (
	"log"
	"net/http"

	request "emilykids_erp/internal/adapter/http/dto/request"
	response "emilykids_erp/internal/adapter/http/dto/response"
	"emilykids_erp/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ReceivableHandler exposes the contas a receber endpoints.

type ReceivableHandler struct {
	usecase usecase.IReceivableUseCase
}

func NewReceivableHandler(uc usecase.IReceivableUseCase) *ReceivableHandler {
	return &ReceivableHandler{usecase: uc}
}

// ListBySale lists the installments generated for one sale.
func (h *ReceivableHandler) ListBySale(c *gin.Context) {
	installments, err := h.usecase.ListBySaleID(c.Request.Context(), c.Query("venda_id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	page, pageSize := pageParams(c)
	paged, meta := response.Paginate(response.FromInstallments(installments), page, pageSize)
	c.JSON(http.StatusOK, response.OKPage(paged, meta))
}

func (h *ReceivableHandler) GetInstallment(c *gin.Context) {
	inst, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromInstallment(inst)))
}

// PayInstallment settles one installment. Card payments are charged through
// the payment gateway before the installment is marked as paid.
func (h *ReceivableHandler) PayInstallment(c *gin.Context) {
	var payload request.PayInstallmentRequest
	if err := bindJSON(c, &payload); err != nil {
		return
	}

	id := c.Param("id")
	log.Printf("[receber][handler] pay requested conta_id=%s forma=%s", id, payload.PaymentMethod)

	inst, err := h.usecase.Pay(c.Request.Context(), id, payload.ToCommand())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromInstallment(inst)))
}
