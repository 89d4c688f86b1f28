package routes

import (
	"emilykids_erp/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstoque       = "/estoque"
	PathOrcamentos    = "/orcamentos"
	PathVendas        = "/vendas"
	PathContasReceber = "/contas-receber"
)

func addSalesRoutes(rg *gin.RouterGroup, stockHandler *handlers.StockHandler, quoteHandler *handlers.QuoteHandler, saleHandler *handlers.SaleHandler, receivableHandler *handlers.ReceivableHandler) {
	estoque := rg.Group(PathEstoque)
	{
		estoque.POST("/check-disponibilidade", stockHandler.CheckAvailability)
	}

	orcamentos := rg.Group(PathOrcamentos)
	{
		orcamentos.POST("", quoteHandler.CreateQuote)
		orcamentos.GET("", quoteHandler.ListQuotes)
		orcamentos.GET("/:id", quoteHandler.GetQuote)
		orcamentos.POST("/:id/converter-venda", quoteHandler.ConvertQuote)
		orcamentos.POST("/:id/cancelar", quoteHandler.CancelQuote)
		orcamentos.POST("/:id/retornar-estoque", quoteHandler.ReturnQuote)
	}

	vendas := rg.Group(PathVendas)
	{
		vendas.POST("", saleHandler.CreateSale)
		vendas.GET("", saleHandler.ListSales)
		vendas.GET("/:id", saleHandler.GetSale)
		vendas.POST("/:id/cancelar", saleHandler.CancelSale)
	}

	contasReceber := rg.Group(PathContasReceber)
	{
		contasReceber.GET("", receivableHandler.ListBySale)
		contasReceber.GET("/:id", receivableHandler.GetInstallment)
		contasReceber.POST("/:id/pagar", receivableHandler.PayInstallment)
	}
}
