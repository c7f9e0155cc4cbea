package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-manager/internal/audit"
	"github.com/BruksfildServices01/barbershop-manager/internal/auth"
	"github.com/BruksfildServices01/barbershop-manager/internal/config"
	domainAppointment "github.com/BruksfildServices01/barbershop-manager/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-manager/internal/handlers"
	"github.com/BruksfildServices01/barbershop-manager/internal/infra/payment"
	infraRepo "github.com/BruksfildServices01/barbershop-manager/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-manager/internal/infra/storage"
	"github.com/BruksfildServices01/barbershop-manager/internal/metrics"
	"github.com/BruksfildServices01/barbershop-manager/internal/middleware"
	"github.com/BruksfildServices01/barbershop-manager/internal/timezone"
	ucAccount "github.com/BruksfildServices01/barbershop-manager/internal/usecase/account"
	ucAppointment "github.com/BruksfildServices01/barbershop-manager/internal/usecase/appointment"
	ucBarber "github.com/BruksfildServices01/barbershop-manager/internal/usecase/barber"
	ucCatalog "github.com/BruksfildServices01/barbershop-manager/internal/usecase/catalog"
	ucExpense "github.com/BruksfildServices01/barbershop-manager/internal/usecase/expense"
	ucHaircut "github.com/BruksfildServices01/barbershop-manager/internal/usecase/haircut"
	ucInventory "github.com/BruksfildServices01/barbershop-manager/internal/usecase/inventory"
	ucReport "github.com/BruksfildServices01/barbershop-manager/internal/usecase/report"
)

// maxImageUpload limita o multipart antes da conversão para webp.
const maxImageUpload = 8 << 20

// Deps reúne a infraestrutura já montada pelo main.
// Store e Links nil desligam upload de imagem e pagamentos.
type Deps struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      *zap.Logger
	Auth     *auth.LocalProvider
	Audit    *audit.Dispatcher
	AuditLog *audit.Logger
	Metrics  *metrics.Ledger
	Gatherer prometheus.Gatherer
	Store    storage.ObjectStore
	Links    payment.Links
	Clock    timezone.Clock
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.App.CORSOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	timeout := cfg.DB.StoreTimeout

	userRepo := infraRepo.NewUserGormRepository(d.DB, timeout)
	catalogRepo := infraRepo.NewCatalogGormRepository(d.DB, timeout)
	haircutRepo := infraRepo.NewHaircutGormRepository(d.DB, timeout)
	inventoryRepo := infraRepo.NewInventoryGormRepository(d.DB, timeout)
	expenseRepo := infraRepo.NewExpenseGormRepository(d.DB, timeout)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB, timeout)

	grid := domainAppointment.GridFromConfig(cfg.Schedule)
	opts := ucAccount.Options{
		CheckEmailDomains: cfg.App.CheckEmailDomains,
		DefaultTimezone:   cfg.App.DefaultTimezone,
	}

	// ======================================================
	// 🧠 USE CASES
	// ======================================================
	listServicesUC := ucCatalog.NewListServices(catalogRepo)
	bookUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		userRepo,
		catalogRepo,
		grid,
		d.Audit,
		d.Metrics,
		d.Clock,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(
		ucAccount.NewRegisterAdmin(userRepo, d.Auth, d.Audit, d.Clock, opts),
		ucAccount.NewRegisterBarber(userRepo, d.Auth, d.Audit, d.Clock, opts),
		ucAccount.NewLogin(userRepo, d.Auth),
		ucAccount.NewLogout(d.Auth),
	)
	meHandler := handlers.NewMeHandler(userRepo)
	barbershopHandler := handlers.NewBarbershopHandler(
		userRepo,
		ucAccount.NewUpdateBarbershop(userRepo, d.Audit, d.Clock),
	)

	barberHandler := handlers.NewBarberHandler(
		ucBarber.NewListBarbers(userRepo),
		ucBarber.NewCreateBarber(userRepo, d.Auth, d.Audit, d.Log, d.Clock),
		ucBarber.NewApproveBarber(userRepo, d.Audit, d.Metrics, d.Clock),
		ucBarber.NewRejectBarber(userRepo, d.Audit, d.Metrics, d.Clock),
		ucBarber.NewToggleBarberActive(userRepo, d.Audit, d.Metrics, d.Clock),
	)

	serviceHandler := handlers.NewServiceHandler(
		listServicesUC,
		ucCatalog.NewSaveService(catalogRepo, haircutRepo, d.Audit, d.Clock),
	)

	haircutHandler := handlers.NewHaircutHandler(
		ucHaircut.NewRegisterHaircut(userRepo, catalogRepo, haircutRepo, d.Audit, d.Clock),
		ucHaircut.NewReview(haircutRepo, d.Audit, d.Metrics, d.Clock),
		ucHaircut.NewListHaircuts(haircutRepo, userRepo),
		ucHaircut.NewPendingHaircuts(haircutRepo),
	)

	inventoryHandler := handlers.NewInventoryHandler(
		ucInventory.NewListProducts(inventoryRepo),
		ucInventory.NewFindByBarcode(inventoryRepo),
		ucInventory.NewSaveProduct(inventoryRepo, d.Audit, d.Clock),
		ucInventory.NewDeleteProduct(inventoryRepo, d.Audit),
		ucInventory.NewAdjustStock(inventoryRepo, d.Audit, d.Clock),
		ucInventory.NewSellProduct(inventoryRepo, d.Audit, d.Metrics, d.Clock),
		ucInventory.NewListSales(inventoryRepo),
		ucInventory.NewSalesStats(inventoryRepo, userRepo, d.Clock),
		ucInventory.NewUploadProductImage(inventoryRepo, d.Store, cfg.S3.MaxImageSide, d.Audit, d.Clock),
		maxImageUpload,
	)

	expenseHandler := handlers.NewExpenseHandler(
		ucExpense.NewCreateExpense(expenseRepo, d.Audit, d.Clock),
		ucExpense.NewDeleteExpense(expenseRepo, d.Audit),
		ucExpense.NewListExpenses(expenseRepo),
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookUC,
		ucAppointment.NewListAppointmentsByDate(appointmentRepo),
		ucAppointment.NewListAppointmentsByMonth(appointmentRepo),
		ucAppointment.NewConfirmAppointment(appointmentRepo, d.Audit, d.Metrics, d.Clock),
		ucAppointment.NewCompleteAppointment(appointmentRepo, d.Audit, d.Metrics, d.Clock),
		ucAppointment.NewCancelAppointment(appointmentRepo, d.Audit, d.Metrics, d.Clock),
		ucAppointment.NewCreatePaymentLink(appointmentRepo, d.Links, d.Audit),
	)

	reportHandler := handlers.NewReportHandler(
		ucReport.NewDashboard(userRepo, haircutRepo, d.Clock),
		ucReport.NewEarnings(userRepo, haircutRepo, d.Clock),
		ucReport.NewRevenue(userRepo, haircutRepo, d.Clock),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLog)

	publicHandler := handlers.NewPublicHandler(
		userRepo,
		ucBarber.NewListActiveBarbers(userRepo),
		listServicesUC,
		ucAppointment.NewGetAvailability(appointmentRepo, userRepo, grid),
		bookUC,
	)

	// ======================================================
	// 🩺 OPERAÇÃO
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(d.Gatherer)))
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/public/shops", publicHandler.ListShops)

		publicAPI := api.Group("/public/shops/:shopID")
		{
			publicAPI.GET("", publicHandler.GetShop)
			publicAPI.GET("/barbers", publicHandler.ListBarbers)
			publicAPI.GET("/services", publicHandler.ListServices)
			publicAPI.GET("/barbers/:barberID/availability", publicHandler.Availability)
			publicAPI.POST("/appointments", publicHandler.Book)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/register/barber", authHandler.RegisterBarber)
		api.POST("/auth/login", authHandler.Login)

		authed := api.Group("/")
		authed.Use(middleware.AuthMiddleware(d.Auth, userRepo))
		{
			authed.POST("/auth/logout", authHandler.Logout)
			authed.GET("/me", meHandler.GetMe)
		}

		// ------------------------------
		// 🔐 API PRIVADA (conta ativa)
		// ------------------------------
		secured := authed.Group("/")
		secured.Use(middleware.RequireActive())
		{
			secured.GET("/me/barbershop", barbershopHandler.GetMeBarbershop)

			secured.GET("/barbers", barberHandler.List)

			secured.GET("/services", serviceHandler.List)

			// ------------------------------
			// HAIRCUTS
			// ------------------------------
			secured.POST("/haircuts", haircutHandler.Register)
			secured.GET("/haircuts", haircutHandler.List)

			// ------------------------------
			// INVENTORY
			// ------------------------------
			secured.GET("/products", inventoryHandler.List)
			secured.GET("/products/barcode/:barcode", inventoryHandler.FindByBarcode)
			secured.POST("/sales", inventoryHandler.Sell)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.POST("/appointments/:id/payment-link", appointmentHandler.PaymentLink)

			secured.GET("/reports/earnings", reportHandler.Earnings)
		}

		// ------------------------------
		// 👑 ADMIN
		// ------------------------------
		admin := secured.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.PATCH("/me/barbershop", barbershopHandler.UpdateMeBarbershop)

			admin.POST("/barbers", barberHandler.Create)
			admin.PATCH("/barbers/:id/approve", barberHandler.Approve)
			admin.PATCH("/barbers/:id/reject", barberHandler.Reject)
			admin.PATCH("/barbers/:id/toggle", barberHandler.Toggle)

			admin.POST("/services", serviceHandler.Create)
			admin.PATCH("/services/:id", serviceHandler.Update)
			admin.DELETE("/services/:id", serviceHandler.Delete)

			admin.GET("/haircuts/pending", haircutHandler.Pending)
			admin.PATCH("/haircuts/:id/approve", haircutHandler.Approve)
			admin.PATCH("/haircuts/:id/reject", haircutHandler.Reject)

			admin.POST("/products", inventoryHandler.Create)
			admin.PATCH("/products/:id", inventoryHandler.Update)
			admin.DELETE("/products/:id", inventoryHandler.Delete)
			admin.PATCH("/products/:id/stock", inventoryHandler.AdjustStock)
			admin.POST("/products/:id/image", inventoryHandler.UploadImage)
			admin.GET("/sales", inventoryHandler.ListSales)
			admin.GET("/sales/stats", inventoryHandler.Stats)

			admin.POST("/expenses", expenseHandler.Create)
			admin.GET("/expenses", expenseHandler.List)
			admin.DELETE("/expenses/:id", expenseHandler.Delete)

			admin.GET("/reports/dashboard", reportHandler.Dashboard)
			admin.GET("/reports/revenue", reportHandler.Revenue)

			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
