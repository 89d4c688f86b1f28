package handlers

import (
	"net/http"

	request "emilykids_erp/internal/adapter/http/dto/request"
	response "emilykids_erp/internal/adapter/http/dto/response"
	"emilykids_erp/internal/usecase"

	"github.com/gin-gonic/gin"
)

// StockHandler exposes the availability check the quote builder runs before
// adding an item.

type StockHandler struct {
	usecase usecase.IStockUseCase
}

func NewStockHandler(uc usecase.IStockUseCase) *StockHandler {
	return &StockHandler{usecase: uc}
}

// CheckAvailability is a pure query; it never reserves stock.
func (h *StockHandler) CheckAvailability(c *gin.Context) {
	var payload request.StockCheckRequest
	if err := bindJSON(c, &payload); err != nil {
		return
	}

	availability, err := h.usecase.CheckAvailability(c.Request.Context(), payload.ProductID, payload.Quantity)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromStockAvailability(availability)))
}
