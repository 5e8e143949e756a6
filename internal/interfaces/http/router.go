package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/ecommerce-manager/internal/application/auth"
	"github.com/tu-usuario/ecommerce-manager/internal/application/orders"
	"github.com/tu-usuario/ecommerce-manager/internal/application/reports"
	"github.com/tu-usuario/ecommerce-manager/internal/application/usecase"
	"github.com/tu-usuario/ecommerce-manager/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	OrderUC   *orders.OrderUseCase
	ReceiptUC *orders.ReceiptUseCase
	ReportUC  *reports.ReportUseCase
	AuthUC    *auth.AuthUseCase
	JWTSecret string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)
	customerOnly := RequireRole(entity.RoleCustomer)

	// Products: lectura para todos los autenticados, escritura solo admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Put("/:id/stock", adminOnly, productHandler.SetStock)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Orders: los clientes colocan y consultan las suyas, el admin lista todas
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC, deps.ReceiptUC)
	ordersGroup.Post("/", customerOnly, orderHandler.Place)
	ordersGroup.Get("/", adminOnly, orderHandler.ListAll)
	ordersGroup.Get("/mine", customerOnly, orderHandler.History)
	ordersGroup.Get("/:id/receipt", customerOnly, orderHandler.Receipt)

	// Reports (solo admin)
	reportsGroup := protected.Group("/reports", adminOnly)
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/sales", reportHandler.SalesSummary)
	reportsGroup.Get("/sales-trend", reportHandler.SalesTrend)
	reportsGroup.Get("/inventory", reportHandler.InventoryLevels)
}
