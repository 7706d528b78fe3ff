package handlers

import (
	"net/http"
	"strings"

	"aurora/listview"
	"aurora/middleware"
	"aurora/models"
	"aurora/services/payment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the point-of-sale charge endpoints.
type PaymentHandler struct {
	ChargeSvc payment.ChargeService
	Logger    *zap.Logger
}

// NewPaymentHandler creates a new PaymentHandler instance.
func NewPaymentHandler(svc payment.ChargeService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{ChargeSvc: svc, Logger: logger}
}

// ProcessCharge handles POST /api/payments/charge (admin).
func (h *PaymentHandler) ProcessCharge(c *gin.Context) {
	var req payment.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid charge payload", "details": err.Error()})
		return
	}
	req.Actor = middleware.UserIDFrom(c)

	inv, err := h.ChargeSvc.ProcessCharge(c.Request.Context(), req)
	if err != nil {
		if strings.Contains(err.Error(), "invalid charge request") ||
			strings.Contains(err.Error(), "unsupported payment method") {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		h.Logger.Error("ProcessCharge: failed", zap.Error(err))
		c.JSON(http.StatusPaymentRequired, gin.H{"message": "Charge failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Charge captured",
		"invoice": inv,
	})
}

// ListInvoices handles GET /api/payments/invoices (admin). Supports method=
// and status= filters; the response carries revenue summary cards.
func (h *PaymentHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.ChargeSvc.ListInvoices(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListInvoices: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch invoices"})
		return
	}

	filtered := listview.Filter(invoices,
		listview.Equals(c.Query("method"), func(i models.Invoice) string { return i.Method }),
		listview.Equals(c.Query("status"), func(i models.Invoice) string { return i.Status }),
	)
	summary := listview.Summarize(filtered,
		listview.Count[models.Invoice](),
		listview.Sum("total_amount", func(i models.Invoice) float64 { return float64(i.Amount) }),
		listview.CountIf("paid", func(i models.Invoice) bool { return i.Status == "paid" }),
	)

	c.JSON(http.StatusOK, gin.H{"data": filtered, "summary": summary})
}
