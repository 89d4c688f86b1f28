package routes

import (
	"emilykids_erp/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProdutos = "/produtos"
	PathClientes = "/clientes"
)

func addRegistryRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler, customerHandler *handlers.CustomerHandler) {
	produtos := rg.Group(PathProdutos)
	{
		produtos.POST("", productHandler.CreateProduct)
		produtos.GET("", productHandler.ListProducts)
		produtos.GET("/:id", productHandler.GetProduct)
		produtos.PATCH("/:id/ajustar-estoque", productHandler.AdjustStock)
	}

	clientes := rg.Group(PathClientes)
	{
		clientes.POST("", customerHandler.CreateCustomer)
		clientes.GET("", customerHandler.ListCustomers)
		clientes.GET("/:id", customerHandler.GetCustomer)
	}
}
