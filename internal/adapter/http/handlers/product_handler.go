package handlers

import (
	"net/http"

	request "emilykids_erp/internal/adapter/http/dto/request"
	response "emilykids_erp/internal/adapter/http/dto/response"
	"emilykids_erp/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles the product catalog and manual stock adjustments.

type ProductHandler struct {
	usecase usecase.IProductUseCase
}

func NewProductHandler(uc usecase.IProductUseCase) *ProductHandler {
	return &ProductHandler{usecase: uc}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.CreateProductRequest
	if err := bindJSON(c, &payload); err != nil {
		return
	}

	product, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromProduct(product)))
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	page, pageSize := pageParams(c)
	paged, meta := response.Paginate(response.FromProducts(products), page, pageSize)
	c.JSON(http.StatusOK, response.OKPage(paged, meta))
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromProduct(product)))
}

// AdjustStock applies a manual signed correction to available stock.
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	var payload request.AdjustStockRequest
	if err := bindJSON(c, &payload); err != nil {
		return
	}

	product, err := h.usecase.AdjustStock(c.Request.Context(), c.Param("id"), payload.Delta)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromProduct(product)))
}
