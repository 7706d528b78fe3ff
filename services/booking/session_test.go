package booking

import (
	"context"
	"testing"
	"time"

	catalogRepo "aurora/database/repository/catalog"
	"aurora/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubCatalog struct{}

func (stubCatalog) Services(ctx context.Context) ([]models.Service, error) {
	return []models.Service{{ID: "svc_botox", Name: "Botox"}}, nil
}

func (stubCatalog) ServiceByID(ctx context.Context, id string) (*models.Service, error) {
	if id == "svc_botox" {
		return &models.Service{ID: id, Name: "Botox"}, nil
	}
	return nil, catalogRepo.ErrNotFound
}

func (stubCatalog) Providers(ctx context.Context) ([]models.Provider, error) {
	return []models.Provider{{ID: "prov_chen", Name: "Dr. Alice Chen"}}, nil
}

func (stubCatalog) ProviderByID(ctx context.Context, id string) (*models.Provider, error) {
	if id == "prov_chen" {
		return &models.Provider{ID: id, Name: "Dr. Alice Chen"}, nil
	}
	return nil, catalogRepo.ErrNotFound
}

func (stubCatalog) Locations(ctx context.Context) ([]models.Location, error) {
	return []models.Location{{ID: "loc_downtown", Name: "Downtown"}}, nil
}

func (stubCatalog) LocationByID(ctx context.Context, id string) (*models.Location, error) {
	if id == "loc_downtown" {
		return &models.Location{ID: id, Name: "Downtown"}, nil
	}
	return nil, catalogRepo.ErrNotFound
}

func (stubCatalog) Seed(ctx context.Context, services []models.Service, providers []models.Provider, locations []models.Location) error {
	return nil
}

type stubApptRepo struct {
	created []models.Appointment
}

func (r *stubApptRepo) Create(ctx context.Context, appt models.Appointment) (string, error) {
	appt.ID = "appt_1"
	r.created = append(r.created, appt)
	return appt.ID, nil
}

func (r *stubApptRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	for i := range r.created {
		if r.created[i].ID == id {
			return &r.created[i], nil
		}
	}
	return nil, nil
}

func (r *stubApptRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return r.created, nil
}

type stubRecorder struct {
	events []models.AuditEvent
}

func (r *stubRecorder) Record(ctx context.Context, event models.AuditEvent) {
	r.events = append(r.events, event)
}

func newTestService(t *testing.T) (*DefaultBookingSessionService, *miniredis.Miniredis, *stubApptRepo, *stubRecorder) {
	t.Helper()
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	appts := &stubApptRepo{}
	recorder := &stubRecorder{}
	svc := &DefaultBookingSessionService{
		Cache:      cache,
		Catalog:    stubCatalog{},
		Appts:      appts,
		Audit:      recorder,
		SessionTTL: 30 * time.Minute,
		Logger:     zap.NewNop(),
	}
	return svc, mr, appts, recorder
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

// walkToStep drives a fresh session forward to the given step.
func walkToStep(t *testing.T, svc *DefaultBookingSessionService, target int) *models.BookingSession {
	t.Helper()
	ctx := context.Background()
	session, err := svc.InitiateSession(ctx)
	require.NoError(t, err)

	selections := []Selection{
		{Step: 1, ServiceID: "svc_botox"},
		{Step: 2, ProviderID: "prov_chen"},
		{Step: 3, LocationID: "loc_downtown"},
		{Step: 4, Date: futureDate()},
		{Step: 5, TimeSlot: "9:30 AM"},
		{Step: 6, ClientInfo: &models.ClientInfo{Name: "Dana", Email: "dana@example.com", Phone: "555-0100"}},
	}
	for _, sel := range selections {
		if session.Step >= target {
			break
		}
		session, err = svc.ApplySelection(ctx, session.SessionID, sel)
		require.NoError(t, err)
	}
	require.Equal(t, target, session.Step)
	return session
}

func TestInitiateSessionStartsAtStepOne(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	session, err := svc.InitiateSession(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, models.StepSelectService, session.Step)

	loaded, err := svc.GetSession(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, session.SessionID, loaded.SessionID)
}

func TestFullWizardWalkAndConfirm(t *testing.T) {
	svc, mr, appts, recorder := newTestService(t)
	session := walkToStep(t, svc, models.StepConfirmation)

	appt, err := svc.ConfirmBooking(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", appt.Status)
	assert.Equal(t, "svc_botox", appt.ServiceID)
	assert.Equal(t, "9:30 AM", appt.TimeSlot)
	assert.Equal(t, "Dana", appt.ClientName)

	require.Len(t, appts.created, 1)
	require.Len(t, recorder.events, 1)
	assert.Equal(t, "appointment.confirmed", recorder.events[0].Action)

	// The session is discarded after confirmation.
	assert.False(t, mr.Exists(session.SessionID))
	_, err = svc.GetSession(context.Background(), session.SessionID)
	assert.True(t, IsCode(err, CodeSessionNotFound))
}

func TestApplySelectionRejectsWrongStep(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	session := walkToStep(t, svc, models.StepSelectProvider)

	// Session is at step 2; a step-4 selection must not advance anything.
	_, err := svc.ApplySelection(context.Background(), session.SessionID, Selection{Step: 4, Date: futureDate()})
	assert.True(t, IsCode(err, CodeStepMismatch))

	loaded, err := svc.GetSession(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSelectProvider, loaded.Step)
	assert.Empty(t, loaded.Date)
}

func TestApplySelectionRejectsUnknownCatalogEntries(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	session := walkToStep(t, svc, models.StepSelectService)

	_, err := svc.ApplySelection(context.Background(), session.SessionID, Selection{Step: 1, ServiceID: "svc_nope"})
	assert.True(t, IsCode(err, CodeInvalidSelection))

	loaded, err := svc.GetSession(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSelectService, loaded.Step)
}

func TestApplySelectionValidatesDate(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	for _, tc := range []struct {
		name string
		date string
	}{
		{"malformed", "07/04/2026"},
		{"past", "2020-01-01"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			session := walkToStep(t, svc, models.StepSelectDate)
			_, err := svc.ApplySelection(ctx, session.SessionID, Selection{Step: 4, Date: tc.date})
			assert.True(t, IsCode(err, CodeInvalidSelection))
		})
	}

	// Today is not in the past.
	session := walkToStep(t, svc, models.StepSelectDate)
	_, err := svc.ApplySelection(ctx, session.SessionID, Selection{Step: 4, Date: time.Now().Format("2006-01-02")})
	assert.NoError(t, err)
}

func TestApplySelectionRejectsOffGridSlot(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	session := walkToStep(t, svc, models.StepSelectTime)

	_, err := svc.ApplySelection(context.Background(), session.SessionID, Selection{Step: 5, TimeSlot: "9:15 AM"})
	assert.True(t, IsCode(err, CodeInvalidSelection))
}

func TestClientInfoRequiresAllContactFields(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	session := walkToStep(t, svc, models.StepEnterClientInfo)

	_, err := svc.ApplySelection(context.Background(), session.SessionID, Selection{
		Step:       6,
		ClientInfo: &models.ClientInfo{Name: "Dana", Email: "  ", Phone: ""},
	})
	require.True(t, IsCode(err, CodeIncomplete))
	assert.Contains(t, err.(*SessionError).Message, "email")
	assert.Contains(t, err.(*SessionError).Message, "phone")
}

func TestStepBackPreservesSelections(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()
	session := walkToStep(t, svc, models.StepSelectDate)

	back, err := svc.StepBack(ctx, session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSelectLocation, back.Step)
	assert.Equal(t, "svc_botox", back.ServiceID)
	assert.Equal(t, "prov_chen", back.ProviderID)
	assert.Equal(t, "loc_downtown", back.LocationID)

	// Re-applying the location moves forward again with everything intact.
	forward, err := svc.ApplySelection(ctx, back.SessionID, Selection{Step: 3, LocationID: "loc_downtown"})
	require.NoError(t, err)
	assert.Equal(t, models.StepSelectDate, forward.Step)
	assert.Equal(t, "svc_botox", forward.ServiceID)
}

func TestStepBackBoundaries(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	first := walkToStep(t, svc, models.StepSelectService)
	_, err := svc.StepBack(ctx, first.SessionID)
	assert.True(t, IsCode(err, CodeStepMismatch))

	last := walkToStep(t, svc, models.StepConfirmation)
	_, err = svc.StepBack(ctx, last.SessionID)
	assert.True(t, IsCode(err, CodeStepMismatch))
}

func TestConfirmBeforeConfirmationStepFails(t *testing.T) {
	svc, _, appts, _ := newTestService(t)
	session := walkToStep(t, svc, models.StepSelectTime)

	_, err := svc.ConfirmBooking(context.Background(), session.SessionID)
	assert.True(t, IsCode(err, CodeStepMismatch))
	assert.Empty(t, appts.created)
}

func TestSessionExpiresAfterTTL(t *testing.T) {
	svc, mr, _, _ := newTestService(t)
	session := walkToStep(t, svc, models.StepSelectProvider)

	mr.FastForward(31 * time.Minute)

	_, err := svc.GetSession(context.Background(), session.SessionID)
	assert.True(t, IsCode(err, CodeSessionNotFound))
}

func TestEachSelectionRefreshesTTL(t *testing.T) {
	svc, mr, _, _ := newTestService(t)
	session := walkToStep(t, svc, models.StepSelectService)

	mr.FastForward(20 * time.Minute)
	_, err := svc.ApplySelection(context.Background(), session.SessionID, Selection{Step: 1, ServiceID: "svc_botox"})
	require.NoError(t, err)

	// 20 + 20 > 30, but the selection reset the clock.
	mr.FastForward(20 * time.Minute)
	loaded, err := svc.GetSession(context.Background(), session.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StepSelectProvider, loaded.Step)
}

func TestCancelSessionIsIdempotent(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	session := walkToStep(t, svc, models.StepSelectProvider)

	require.NoError(t, svc.CancelSession(context.Background(), session.SessionID))
	require.NoError(t, svc.CancelSession(context.Background(), session.SessionID))

	_, err := svc.GetSession(context.Background(), session.SessionID)
	assert.True(t, IsCode(err, CodeSessionNotFound))
}
