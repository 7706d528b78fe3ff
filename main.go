package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aurora/config"
	"aurora/database"
	appointmentRepo "aurora/database/repository/appointment"
	auditRepo "aurora/database/repository/audit"
	bookingRequestRepo "aurora/database/repository/bookingrequest"
	catalogRepo "aurora/database/repository/catalog"
	clientRepo "aurora/database/repository/client"
	consentRepo "aurora/database/repository/consent"
	inventoryRepo "aurora/database/repository/inventory"
	invoiceRepo "aurora/database/repository/invoice"
	staffRepo "aurora/database/repository/staff"
	"aurora/handlers"
	"aurora/middleware"
	"aurora/models"
	"aurora/monitoring"
	"aurora/routes"
	auditSvc "aurora/services/audit"
	"aurora/services/booking"
	bookingRequestSvc "aurora/services/bookingrequest"
	consentSvc "aurora/services/consent"
	"aurora/services/payment"
	"aurora/services/search"
	"aurora/services/storage"
	"aurora/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()

	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	if err := utils.InitSentry(config.AppConfig.SentryDSN); err != nil {
		logger.Warn("sentry disabled", zap.Error(err))
	}

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()
	monitoring.Init()

	stripe.Key = config.AppConfig.StripeKey

	storageSvc, err := storage.New()
	if err != nil {
		logger.Fatal("failed to initialize storage", zap.Error(err))
	}

	searchSvc, err := search.NewElasticsearchService(config.AppConfig.ElasticsearchAddr)
	if err != nil {
		logger.Warn("search disabled", zap.Error(err))
		searchSvc = nil
	}
	producer := auditSvc.NewKafkaProducer(config.AppConfig.KafkaBrokers)
	if producer != nil {
		defer producer.Close()
	}

	// Repositories.
	appointments := appointmentRepo.NewMongoAppointmentRepo()
	audits := auditRepo.NewMongoAuditRepo()
	catalogs := catalogRepo.NewMongoCatalogRepo()
	clients := clientRepo.NewMongoClientRepo()
	consents := consentRepo.NewMongoConsentRepo()
	inventory := inventoryRepo.NewMongoInventoryRepo()
	invoices := invoiceRepo.NewMongoInvoiceRepo()
	staff := staffRepo.NewMongoStaffRepo()
	bookingRequests := bookingRequestRepo.NewMemoryBookingRequestRepo()

	seedCatalogs(catalogs, logger)

	// Services.
	recorder := &auditSvc.DefaultRecorder{
		Repo:     audits,
		Producer: producer,
		Topic:    config.AppConfig.KafkaAuditTopic,
		Logger:   logger,
	}
	bookingSvc := &booking.DefaultBookingSessionService{
		Cache:      utils.GetSessionCacheClient(),
		Catalog:    catalogs,
		Appts:      appointments,
		Audit:      recorder,
		SessionTTL: time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
		Logger:     logger,
	}
	requestSvc := &bookingRequestSvc.DefaultRequestService{
		Repo:   bookingRequests,
		Logger: logger,
	}
	consentService := &consentSvc.DefaultConsentService{
		Repo:         consents,
		Storage:      storageSvc,
		Search:       searchSvc,
		Audit:        recorder,
		ValidityDays: config.AppConfig.ConsentValidityDays,
		Logger:       logger,
	}
	chargeSvc := &payment.UnifiedChargeService{
		Invoices: invoices,
		Audit:    recorder,
		Logger:   logger,
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(middleware.SentryMiddleware())
	router.Use(middleware.PrometheusMetrics())
	router.Use(middleware.RateLimitMiddleware())

	var storageDir string
	if local, ok := storageSvc.(*storage.LocalStorageService); ok {
		storageDir = local.Root()
	}

	routes.RegisterRoutes(router, routes.Handlers{
		Booking:        handlers.NewBookingHandler(bookingSvc, catalogs, logger),
		BookingRequest: handlers.NewBookingRequestHandler(requestSvc, logger),
		Consent:        handlers.NewConsentHandler(consentService, logger),
		Catalog:        handlers.NewCatalogHandler(catalogs, clients, searchSvc, logger),
		Inventory:      handlers.NewInventoryHandler(inventory, logger),
		Staff:          handlers.NewStaffHandler(staff, logger),
		Audit:          handlers.NewAuditHandler(audits, logger),
		Payment:        handlers.NewPaymentHandler(chargeSvc, logger),
		Appointment:    handlers.NewAppointmentHandler(appointments, logger),
	}, storageDir)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
	}
	logger.Info("server stopped")
}

// seedCatalogs loads the fixed demo catalogs on first start. Existing entries
// are never overwritten.
func seedCatalogs(repo catalogRepo.CatalogRepository, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	services := []models.Service{
		{ID: "svc_botox", Name: "Botox", DurationMinutes: 30, Price: 350, RequiresConsent: true},
		{ID: "svc_filler", Name: "Dermal Filler", DurationMinutes: 45, Price: 600, RequiresConsent: true},
		{ID: "svc_facial", Name: "Signature Facial", DurationMinutes: 60, Price: 150},
		{ID: "svc_laser", Name: "Laser Hair Removal", DurationMinutes: 30, Price: 200},
		{ID: "svc_peel", Name: "Chemical Peel", DurationMinutes: 45, Price: 175},
	}
	providers := []models.Provider{
		{ID: "prov_chen", Name: "Dr. Alice Chen", Specialty: "Injectables", Rating: 4.9},
		{ID: "prov_moss", Name: "Brianna Moss", Specialty: "Laser", Rating: 4.8},
		{ID: "prov_ortiz", Name: "Carla Ortiz", Specialty: "Skincare", Rating: 4.7},
	}
	locations := []models.Location{
		{ID: "loc_downtown", Name: "Downtown", Address: "120 Main St"},
		{ID: "loc_uptown", Name: "Uptown", Address: "48 Grove Ave"},
	}

	if err := repo.Seed(ctx, services, providers, locations); err != nil {
		logger.Warn("failed to seed catalogs", zap.Error(err))
	}
}
