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

// QuoteHandler handles HTTP requests for quotes (orçamentos), including the
// conversion to sale.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuote persists a new quote and reserves stock for its items.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := bindJSON(c, &payload); err != nil {
		return
	}

	quote, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.OK(response.FromQuote(quote)))
}

func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	page, pageSize := pageParams(c)
	paged, meta := response.Paginate(response.FromQuotes(quotes), page, pageSize)
	c.JSON(http.StatusOK, response.OKPage(paged, meta))
}

func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromQuote(quote)))
}

// ConvertQuote finalizes a quote into a sale, accepting the edited item
// buffer from the conversion dialog.
func (h *QuoteHandler) ConvertQuote(c *gin.Context) {
	quoteID := c.Param("id")

	var payload request.ConvertQuoteRequest
	if err := bindJSON(c, &payload); err != nil {
		return
	}

	cmd, err := payload.ToCommand()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_REQUEST", "Invalid data_vencimento", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[orcamento][handler] convert start orcamento_id=%s forma_pagamento=%s itens=%d", quoteID, cmd.PaymentMethod, len(cmd.Items))
	sale, err := h.usecase.ConvertToSale(c.Request.Context(), quoteID, cmd)
	if err != nil {
		log.Printf("[orcamento][handler] convert failed orcamento_id=%s err=%v", quoteID, err)
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[orcamento][handler] convert success orcamento_id=%s venda_id=%s", quoteID, sale.ID)

	c.JSON(http.StatusCreated, response.OK(response.FromSale(sale)))
}

// CancelQuote cancels an open quote, releasing its stock reservation.
func (h *QuoteHandler) CancelQuote(c *gin.Context) {
	var payload request.CancelRequest
	if err := bindJSON(c, &payload); err != nil {
		return
	}

	quote, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromQuote(quote)))
}

// ReturnQuote returns an open quote's reserved stock without cancelling it
// for a reason.
func (h *QuoteHandler) ReturnQuote(c *gin.Context) {
	quote, err := h.usecase.ReturnToStock(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDomainError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OK(response.FromQuote(quote)))
}
