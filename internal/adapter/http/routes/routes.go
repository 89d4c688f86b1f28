package routes

import (
	"log"
	_ "emilykids_erp/docs" // This will be auto-generated
	"emilykids_erp/internal/adapter/http/handlers"
	repository2 "emilykids_erp/internal/adapter/persistence/repository"
	"emilykids_erp/internal/infrastructure/database"
	"emilykids_erp/internal/infrastructure/events"
	"emilykids_erp/internal/infrastructure/payments"
	"emilykids_erp/internal/usecase"
	"emilykids_erp/internal/usecase/interfaces"
	"os"
	"strconv"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	productRepo := repository2.NewProductDynamoRepository(ddb)
	customerRepo := repository2.NewCustomerDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	saleRepo := repository2.NewSaleDynamoRepository(ddb)
	receivableRepo := repository2.NewReceivableDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var publisher interfaces.IEventPublisher
	if queueURL := os.Getenv("SALES_EVENTS_QUEUE_URL"); queueURL != "" {
		publisher = events.NewSQSPublisher(database.ConnectSQS(), queueURL)
	} else {
		log.Printf("SALES_EVENTS_QUEUE_URL not set, sale events disabled")
	}

	stockUseCase := usecase.NewStockUseCase(productRepo)
	productUseCase := usecase.NewProductUseCase(productRepo)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, saleRepo, productRepo, customerRepo, receivableRepo, publisher)
	saleUseCase := usecase.NewSaleUseCase(saleRepo, productRepo, customerRepo, receivableRepo, publisher)
	receivableUseCase := usecase.NewReceivableUseCase(receivableRepo, paymentGateway)

	stockHandler := handlers.NewStockHandler(stockUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	saleHandler := handlers.NewSaleHandler(saleUseCase)
	receivableHandler := handlers.NewReceivableHandler(receivableUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSalesRoutes(v1, stockHandler, quoteHandler, saleHandler, receivableHandler)
	addRegistryRoutes(v1, productHandler, customerHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

// corsConfig allows the SPA origins set via CORS_ALLOWED_ORIGINS (comma
// separated), defaulting to a permissive policy for local development.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cfg
}
