package handlers

import (
	"log"
	"net/http"

	request "emilykids_erp/internal/adapter/http/dto/request"
	response "emilykids_erp/internal/adapter/http/dto/response"
	"emilykids_erp/internal/usecase"
	"emilykids_erp/pkg"

	"github.com/gin-gonic/gin"
)

// SaleHandler handles HTTP requests for sales (vendas).

type SaleHandler struct {
	usecase usecase.ISaleUseCase
}

func NewSaleHandler(uc usecase.ISaleUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc}
}

// CreateSale creates a direct sale (no originating quote), deducting stock
// immediately.
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var payload request.CreateSaleRequest
	if err := bindJSON(c, &payload); err != nil {
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid data_vencimento", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sale, err := h.usecase.Create(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromSale(sale)))
}

func (h *SaleHandler) ListSales(c *gin.Context) {
	sales, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	page, pageSize := pageParams(c)
	paged, meta := response.Paginate(response.FromSales(sales), page, pageSize)
	c.JSON(http.StatusOK, response.OKPage(paged, meta))
}

func (h *SaleHandler) GetSale(c *gin.Context) {
	sale, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromSale(sale)))
}

// CancelSale cancels a sale: stock goes back to available and pending
// installments are cancelled. Requires a non-empty motivo.
func (h *SaleHandler) CancelSale(c *gin.Context) {
	saleID := c.Param("id")

	var payload request.CancelRequest
	if err := bindJSON(c, &payload); err != nil {
		return
	}

	log.Printf("[venda][handler] cancel start venda_id=%s", saleID)
	sale, err := h.usecase.Cancel(c.Request.Context(), saleID, payload.Reason)
	if err != nil {
		log.Printf("[venda][handler] cancel failed venda_id=%s err=%v", saleID, err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[venda][handler] cancel success venda_id=%s", saleID)

	c.JSON(http.StatusOK, response.OK(response.FromSale(sale)))
}
