package payment

import (
	"context"
	"fmt"
	"time"

	invoiceRepo "aurora/database/repository/invoice"
	"aurora/models"
	"aurora/services/audit"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// ChargeRequest is one point-of-sale charge.
type ChargeRequest struct {
	ClientID        string `json:"client_id"`
	Amount          int64  `json:"amount"` // smallest currency unit
	Currency        string `json:"currency"`
	Method          string `json:"method"` // "card" or "cash"
	PaymentMethodID string `json:"payment_method_id,omitempty"`
	Actor           string `json:"-"`
}

// ChargeService captures charges and records invoices.
type ChargeService interface {
	ProcessCharge(ctx context.Context, req ChargeRequest) (*models.Invoice, error)
	ListInvoices(ctx context.Context) ([]models.Invoice, error)
}

// UnifiedChargeService implements ChargeService. Card charges go through
// Stripe PaymentIntents; cash is recorded directly.
type UnifiedChargeService struct {
	Invoices invoiceRepo.InvoiceRepository
	Audit    audit.Recorder
	Logger   *zap.Logger

	// IntentCreator can be swapped in tests. Nil means the real Stripe call.
	IntentCreator func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

func validateRequest(req ChargeRequest) error {
	if req.ClientID == "" {
		return fmt.Errorf("client_id is required")
	}
	if req.Amount <= 0 {
		return fmt.Errorf("amount must be positive")
	}
	if req.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if req.Method == "card" && req.PaymentMethodID == "" {
		return fmt.Errorf("payment_method_id is required for card charges")
	}
	return nil
}

// ProcessCharge validates and captures the charge.
func (s *UnifiedChargeService) ProcessCharge(ctx context.Context, req ChargeRequest) (*models.Invoice, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("invalid charge request: %w", err)
	}

	inv := &models.Invoice{
		ClientID:  req.ClientID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		Status:    "pending",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	switch req.Method {
	case "card":
		return s.processCardCharge(ctx, req, inv)
	case "cash":
		return s.processCashCharge(ctx, req, inv)
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", req.Method)
	}
}

func (s *UnifiedChargeService) processCardCharge(ctx context.Context, req ChargeRequest, inv *models.Invoice) (*models.Invoice, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.Amount),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.PaymentMethodID),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx

	create := s.IntentCreator
	if create == nil {
		create = paymentintent.New
	}
	pi, err := create(params)
	if err != nil {
		inv.Status = "failed"
		inv.UpdatedAt = time.Now()
		if _, storeErr := s.Invoices.Create(ctx, *inv); storeErr != nil {
			s.Logger.Error("failed to record failed charge", zap.Error(storeErr))
		}
		return nil, fmt.Errorf("card charge failed: %w", err)
	}

	inv.PaymentID = pi.ID
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()
	return s.finalize(ctx, req, inv)
}

func (s *UnifiedChargeService) processCashCharge(ctx context.Context, req ChargeRequest, inv *models.Invoice) (*models.Invoice, error) {
	inv.Status = "paid"
	inv.UpdatedAt = time.Now()
	return s.finalize(ctx, req, inv)
}

func (s *UnifiedChargeService) finalize(ctx context.Context, req ChargeRequest, inv *models.Invoice) (*models.Invoice, error) {
	id, err := s.Invoices.Create(ctx, *inv)
	if err != nil {
		return nil, fmt.Errorf("failed to record invoice: %w", err)
	}
	inv.ID = id

	if s.Audit != nil {
		actor := req.Actor
		if actor == "" {
			actor = "system"
		}
		s.Audit.Record(ctx, models.AuditEvent{
			Actor:    actor,
			Action:   "charge.captured",
			Entity:   "invoice",
			EntityID: inv.ID,
			Detail:   fmt.Sprintf("%d %s via %s", inv.Amount, inv.Currency, inv.Method),
		})
	}

	s.Logger.Info("charge captured",
		zap.String("invoice", inv.ID), zap.String("method", inv.Method))
	return inv, nil
}

// ListInvoices returns every invoice, newest first.
func (s *UnifiedChargeService) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	return s.Invoices.GetAll(ctx)
}
