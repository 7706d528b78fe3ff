package routes

import (
	"net/http"
	"time"

	"aurora/handlers"
	"aurora/middleware"
	"aurora/monitoring"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every HTTP handler the router mounts.
type Handlers struct {
	Booking        *handlers.BookingHandler
	BookingRequest *handlers.BookingRequestHandler
	Consent        *handlers.ConsentHandler
	Catalog        *handlers.CatalogHandler
	Inventory      *handlers.InventoryHandler
	Staff          *handlers.StaffHandler
	Audit          *handlers.AuditHandler
	Payment        *handlers.PaymentHandler
	Appointment    *handlers.AppointmentHandler
}

// RegisterRoutes mounts the full API surface on the given engine. storageDir
// is served under /storage when non-empty (local file backend).
func RegisterRoutes(router *gin.Engine, h Handlers, storageDir string) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(monitoring.Handler()))

	if storageDir != "" {
		router.Static("/storage", storageDir)
	}

	api := router.Group("/api")
	api.Use(middleware.Identity())

	// Public booking-request intake.
	api.POST("/bookings", h.BookingRequest.SubmitBookingRequest)
	api.GET("/bookings", h.BookingRequest.ListBookingRequests)

	// Booking wizard sessions.
	session := api.Group("/booking/session")
	{
		session.POST("", h.Booking.InitiateSession)
		session.GET("/:sessionID", h.Booking.GetSession)
		session.PUT("/:sessionID", h.Booking.ApplySelection)
		session.POST("/:sessionID/back", h.Booking.StepBack)
		session.POST("/:sessionID/confirm", h.Booking.ConfirmBooking)
		session.DELETE("/:sessionID", h.Booking.CancelSession)
	}

	// Catalogs and clients.
	api.GET("/services", h.Catalog.ListServices)
	api.GET("/providers", h.Catalog.ListProviders)
	api.GET("/locations", h.Catalog.ListLocations)
	api.GET("/clients", h.Catalog.ListClients)
	api.GET("/clients/:id", h.Catalog.GetClient)

	// Consent forms.
	consents := api.Group("/consents")
	{
		consents.GET("", h.Consent.ListConsents)
		consents.GET("/:id", h.Consent.GetConsent)
		consents.POST("", h.Consent.CreateConsent)
		consents.POST("/:id", h.Consent.UpdateConsent)
		consents.DELETE("/:id", h.Consent.DeleteConsent)
	}

	api.GET("/appointments", h.Appointment.ListAppointments)
	api.GET("/inventory", h.Inventory.ListInventory)
	api.GET("/staff", h.Staff.ListStaff)

	// Admin-only mutations and reports.
	admin := api.Group("")
	admin.Use(middleware.AdminAuth())
	{
		admin.POST("/clients", h.Catalog.CreateClient)
		admin.PUT("/clients/:id", h.Catalog.UpdateClient)
		admin.DELETE("/clients/:id", h.Catalog.DeleteClient)

		admin.POST("/inventory", h.Inventory.CreateInventoryItem)
		admin.PUT("/inventory/:id", h.Inventory.UpdateInventoryItem)
		admin.DELETE("/inventory/:id", h.Inventory.DeleteInventoryItem)

		admin.POST("/staff", h.Staff.CreateStaffMember)
		admin.PUT("/staff/:id", h.Staff.UpdateStaffMember)
		admin.DELETE("/staff/:id", h.Staff.DeleteStaffMember)

		admin.GET("/audit", h.Audit.ListAuditEvents)

		admin.POST("/payments/charge", h.Payment.ProcessCharge)
		admin.GET("/payments/invoices", h.Payment.ListInvoices)
	}
}
