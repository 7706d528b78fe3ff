package payment

import (
	"context"
	"errors"
	"testing"

	"aurora/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

type fakeInvoiceRepo struct {
	invoices []models.Invoice
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, inv models.Invoice) (string, error) {
	inv.ID = "inv_1"
	r.invoices = append(r.invoices, inv)
	return inv.ID, nil
}

func (r *fakeInvoiceRepo) GetAll(ctx context.Context) ([]models.Invoice, error) {
	return r.invoices, nil
}

func newChargeService(intent func(*stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)) (*UnifiedChargeService, *fakeInvoiceRepo) {
	repo := &fakeInvoiceRepo{}
	return &UnifiedChargeService{
		Invoices:      repo,
		Logger:        zap.NewNop(),
		IntentCreator: intent,
	}, repo
}

func cardRequest() ChargeRequest {
	return ChargeRequest{
		ClientID:        "client_1",
		Amount:          35000,
		Currency:        "usd",
		Method:          "card",
		PaymentMethodID: "pm_visa",
	}
}

func TestProcessChargeValidation(t *testing.T) {
	svc, repo := newChargeService(nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*ChargeRequest)
	}{
		{"missing client", func(r *ChargeRequest) { r.ClientID = "" }},
		{"zero amount", func(r *ChargeRequest) { r.Amount = 0 }},
		{"negative amount", func(r *ChargeRequest) { r.Amount = -100 }},
		{"missing currency", func(r *ChargeRequest) { r.Currency = "" }},
		{"card without payment method", func(r *ChargeRequest) { r.PaymentMethodID = "" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := cardRequest()
			tc.mutate(&req)
			_, err := svc.ProcessCharge(ctx, req)
			assert.ErrorContains(t, err, "invalid charge request")
		})
	}
	assert.Empty(t, repo.invoices)
}

func TestProcessChargeUnsupportedMethod(t *testing.T) {
	svc, _ := newChargeService(nil)

	req := cardRequest()
	req.Method = "barter"
	_, err := svc.ProcessCharge(context.Background(), req)
	assert.ErrorContains(t, err, "unsupported payment method")
}

func TestCardChargeCaptured(t *testing.T) {
	svc, repo := newChargeService(func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		assert.Equal(t, int64(35000), *params.Amount)
		assert.Equal(t, "usd", *params.Currency)
		assert.Equal(t, "pm_visa", *params.PaymentMethod)
		assert.True(t, *params.Confirm)
		return &stripe.PaymentIntent{ID: "pi_123"}, nil
	})

	inv, err := svc.ProcessCharge(context.Background(), cardRequest())
	require.NoError(t, err)
	assert.Equal(t, "paid", inv.Status)
	assert.Equal(t, "pi_123", inv.PaymentID)
	require.Len(t, repo.invoices, 1)
}

func TestCardChargeFailureRecordsFailedInvoice(t *testing.T) {
	svc, repo := newChargeService(func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		return nil, errors.New("card declined")
	})

	_, err := svc.ProcessCharge(context.Background(), cardRequest())
	assert.ErrorContains(t, err, "card charge failed")

	require.Len(t, repo.invoices, 1)
	assert.Equal(t, "failed", repo.invoices[0].Status)
}

func TestCashChargePaidDirectly(t *testing.T) {
	svc, repo := newChargeService(func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
		t.Fatal("cash charges must not touch the card processor")
		return nil, nil
	})

	req := cardRequest()
	req.Method = "cash"
	req.PaymentMethodID = ""
	inv, err := svc.ProcessCharge(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "paid", inv.Status)
	assert.Empty(t, inv.PaymentID)
	require.Len(t, repo.invoices, 1)
}
