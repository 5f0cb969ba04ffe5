package router

import (
	"time"

	"showroom/internal/config"
	"showroom/internal/handler"
	"showroom/internal/infra"
	"showroom/internal/middleware"
	"showroom/internal/repository"
	"showroom/internal/repository/memory"
	"showroom/internal/service"
	"showroom/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// repos bundles one storage backend's repository set.
type repos struct {
	products  repository.ProductRepository
	customers repository.CustomerRepository
	suppliers repository.SupplierRepository
	sales     repository.SaleRepository
	movements repository.StockMovementRepository
	settings  repository.SettingsRepository
	tx        repository.Transactor
}

func buildRepos(cfg *config.Config, db *gorm.DB) repos {
	if cfg.StorageBackend == config.StoragePostgres {
		return repos{
			products:  repository.NewProductRepository(db),
			customers: repository.NewCustomerRepository(db),
			suppliers: repository.NewSupplierRepository(db),
			sales:     repository.NewSaleRepository(db),
			movements: repository.NewStockMovementRepository(db),
			settings:  repository.NewSettingsRepository(db),
			tx:        repository.NewTransactor(db),
		}
	}
	store := memory.NewStore()
	return repos{
		products:  memory.NewProductRepository(store),
		customers: memory.NewCustomerRepository(store),
		suppliers: memory.NewSupplierRepository(store),
		sales:     memory.NewSaleRepository(store),
		movements: memory.NewStockMovementRepository(store),
		settings:  memory.NewSettingsRepository(store),
		tx:        store,
	}
}

// New wires all dependencies and returns a configured Gin engine plus the
// dispatcher whose worker pool the caller starts.
// Dependency graph: Handler ← Service ← Repository ← DB / memory store
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*gin.Engine, *worker.Dispatcher) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	rp := buildRepos(cfg, db)

	// ── Async delivery ───────────────────────────────────────────────────────
	// The dispatcher only exists when SMTP is configured; services treat a
	// nil dispatcher as "email delivery disabled".
	var dispatcher *worker.Dispatcher
	if cfg.SMTPHost != "" {
		mailer := infra.NewMailer(cfg)
		breaker := infra.NewCircuitBreaker(infra.DefaultCBConfig())
		dispatcher = worker.NewDispatcher(64)
		receiptWorker := worker.NewReceiptWorker(rp.sales, rp.settings, mailer, breaker)
		dispatcher.Register(worker.JobTypeReceiptEmail, receiptWorker.Process)
	}

	// ── Services ─────────────────────────────────────────────────────────────
	catalogSvc := service.NewCatalogService(rp.products, rp.suppliers, rp.movements, rp.tx)
	customerSvc := service.NewCustomerService(rp.customers, rp.tx)
	supplierSvc := service.NewSupplierService(rp.suppliers, rp.tx, cfg.Strict())
	salesSvc := service.NewSalesService(rp.sales, rp.products, rp.customers, rp.movements, rp.tx, cfg.Strict(), dispatcher)
	inventorySvc := service.NewInventoryService(rp.movements, rp.products, cfg.LowStockThreshold)
	dashboardSvc := service.NewDashboardService(rp.sales, rp.products, rp.customers, inventorySvc, rdb)
	settingsSvc := service.NewSettingsService(rp.settings)
	receiptSvc := service.NewReceiptService(rp.sales, rp.customers, rp.settings, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(catalogSvc)
	customersH := handler.NewCustomersHandler(customerSvc)
	suppliersH := handler.NewSuppliersHandler(supplierSvc)
	salesH := handler.NewSalesHandler(salesSvc)
	inventoryH := handler.NewInventoryHandler(inventorySvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)
	settingsH := handler.NewSettingsHandler(settingsSvc)
	receiptsH := handler.NewReceiptsHandler(receiptSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db, rdb))

	v1 := r.Group("/v1")
	{
		v1.POST("/products", productsH.Create)
		v1.GET("/products", productsH.List)
		v1.GET("/products/:code", productsH.Get)
		v1.PUT("/products/:code", productsH.Update)
		v1.DELETE("/products/:code", productsH.Delete)
		v1.POST("/products/:code/restock", productsH.Restock)

		v1.POST("/customers", customersH.Create)
		v1.GET("/customers", customersH.List)
		v1.GET("/customers/:code", customersH.Get)
		v1.PUT("/customers/:code", customersH.Update)

		v1.POST("/suppliers", suppliersH.Create)
		v1.GET("/suppliers", suppliersH.List)
		v1.GET("/suppliers/:code", suppliersH.Get)
		v1.PUT("/suppliers/:code", suppliersH.Update)
		v1.POST("/suppliers/:code/payments", suppliersH.RecordPayment)

		v1.POST("/sales", salesH.Record)
		v1.GET("/sales", salesH.List)
		v1.GET("/sales/:invoice", salesH.Get)
		v1.PATCH("/sales/:invoice/payment-status", salesH.UpdatePaymentStatus)
		v1.GET("/sales/:invoice/receipt", receiptsH.Download)
		v1.POST("/sales/:invoice/receipt/email", receiptsH.Email)

		v1.GET("/inventory/movements", inventoryH.ListMovements)
		v1.GET("/inventory/low-stock", inventoryH.LowStock)

		v1.GET("/dashboard", dashboardH.Overview)

		v1.GET("/settings", settingsH.Get)
		v1.PUT("/settings", settingsH.Update)
		v1.GET("/tags", handler.Tags)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r, dispatcher
}
