package consent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	consentRepo "aurora/database/repository/consent"
	"aurora/models"
	"aurora/services/audit"
	"aurora/services/search"
	"aurora/services/storage"

	"go.uber.org/zap"
)

// MaxFileSize is the upload cap for consent documents.
const MaxFileSize = 5 * 1024 * 1024

// ErrNotFound is returned when the addressed consent form does not exist.
var ErrNotFound = consentRepo.ErrNotFound

var allowedFileTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
}

// ValidationError is a rejection with a caller-facing message. Validation
// always runs before any storage or network side effect.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// FileUpload describes an uploaded consent document.
type FileUpload struct {
	Content     io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// Input carries the full consent field set. Updates resend every field; File
// nil on update means "keep the existing file".
type Input struct {
	ClientID         string
	ServiceID        string
	FormType         string
	DigitalSignature string
	File             *FileUpload
	Actor            string
}

// ConsentService manages the consent form lifecycle.
type ConsentService interface {
	List(ctx context.Context) ([]models.ConsentFormView, error)
	Get(ctx context.Context, id string) (*models.ConsentFormView, error)
	Create(ctx context.Context, in Input) (*models.ConsentFormView, error)
	Update(ctx context.Context, id string, in Input) (*models.ConsentFormView, error)
	Delete(ctx context.Context, id, actor string) error
}

// DefaultConsentService implements ConsentService.
type DefaultConsentService struct {
	Repo         consentRepo.ConsentRepository
	Storage      storage.StorageService
	Search       search.SearchService
	Audit        audit.Recorder
	ValidityDays int
	Logger       *zap.Logger
}

// ValidateFile rejects disallowed types and oversized uploads. A nil file is
// valid (uploads are optional).
func ValidateFile(f *FileUpload) error {
	if f == nil {
		return nil
	}
	if !allowedFileTypes[f.ContentType] {
		return &ValidationError{Message: "Invalid file type. Allowed types are PDF, JPEG and PNG."}
	}
	if f.Size > MaxFileSize {
		return &ValidationError{Message: "File is too large. The maximum size is 5MB."}
	}
	return nil
}

func validateFields(in Input) error {
	if in.ClientID == "" {
		return &ValidationError{Message: "client_id is required"}
	}
	if in.ServiceID == "" {
		return &ValidationError{Message: "service_id is required"}
	}
	switch in.FormType {
	case models.FormTypeConsent, models.FormTypeGFE, models.FormTypeIntake:
	default:
		return &ValidationError{Message: "form_type must be one of consent, gfe, intake"}
	}
	return nil
}

// List returns every consent form with its derived status.
func (s *DefaultConsentService) List(ctx context.Context) ([]models.ConsentFormView, error) {
	forms, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch consent forms: %w", err)
	}
	views := make([]models.ConsentFormView, len(forms))
	for i, form := range forms {
		views[i] = s.view(form)
	}
	return views, nil
}

// Get returns one consent form with its derived status and file link.
func (s *DefaultConsentService) Get(ctx context.Context, id string) (*models.ConsentFormView, error) {
	form, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := s.view(*form)
	return &view, nil
}

// Create validates the submission, stores the optional file and inserts the
// record. File validation happens before anything is written anywhere.
func (s *DefaultConsentService) Create(ctx context.Context, in Input) (*models.ConsentFormView, error) {
	if err := validateFields(in); err != nil {
		return nil, err
	}
	if err := ValidateFile(in.File); err != nil {
		return nil, err
	}

	form := models.ConsentForm{
		ClientID:         in.ClientID,
		ServiceID:        in.ServiceID,
		FormType:         in.FormType,
		DigitalSignature: in.DigitalSignature,
	}

	if in.File != nil {
		ref, err := s.Storage.Save(ctx, in.File.Content, in.File.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to store consent file: %w", err)
		}
		form.FileURL = ref
	}
	if in.DigitalSignature != "" || in.File != nil {
		now := time.Now()
		form.DateSigned = &now
	}

	id, err := s.Repo.Create(ctx, form)
	if err != nil {
		return nil, fmt.Errorf("failed to create consent form: %w", err)
	}
	form.ID = id

	s.index(ctx, form)
	s.record(ctx, in.Actor, "consent.created", form.ID, form.FormType)

	view := s.view(form)
	return &view, nil
}

// Update replaces the record's fields. The file is replaced only when a new
// one is supplied; otherwise the existing file is kept.
func (s *DefaultConsentService) Update(ctx context.Context, id string, in Input) (*models.ConsentFormView, error) {
	if err := validateFields(in); err != nil {
		return nil, err
	}
	if err := ValidateFile(in.File); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	form := *existing
	form.ClientID = in.ClientID
	form.ServiceID = in.ServiceID
	form.FormType = in.FormType
	form.DigitalSignature = in.DigitalSignature

	if in.File != nil {
		ref, err := s.Storage.Save(ctx, in.File.Content, in.File.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to store consent file: %w", err)
		}
		if existing.FileURL != "" {
			if err := s.Storage.Delete(ctx, existing.FileURL); err != nil {
				s.Logger.Warn("failed to delete replaced consent file",
					zap.String("file", existing.FileURL), zap.Error(err))
			}
		}
		form.FileURL = ref
	}
	if form.DateSigned == nil && (in.DigitalSignature != "" || in.File != nil) {
		now := time.Now()
		form.DateSigned = &now
	}

	if err := s.Repo.Update(ctx, form); err != nil {
		return nil, fmt.Errorf("failed to update consent form: %w", err)
	}

	s.index(ctx, form)
	s.record(ctx, in.Actor, "consent.updated", form.ID, form.FormType)

	view := s.view(form)
	return &view, nil
}

// Delete removes the record and its stored file. Irreversible.
func (s *DefaultConsentService) Delete(ctx context.Context, id, actor string) error {
	form, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	if form.FileURL != "" {
		if err := s.Storage.Delete(ctx, form.FileURL); err != nil {
			s.Logger.Warn("failed to delete consent file",
				zap.String("file", form.FileURL), zap.Error(err))
		}
	}
	if s.Search != nil {
		if err := s.Search.Delete(ctx, search.IndexConsents, id); err != nil {
			s.Logger.Warn("failed to remove consent from search index", zap.Error(err))
		}
	}
	s.record(ctx, actor, "consent.deleted", id, form.FormType)
	return nil
}

func (s *DefaultConsentService) view(form models.ConsentForm) models.ConsentFormView {
	view := models.ConsentFormView{
		ConsentForm: form,
		Status:      DeriveStatus(form, s.ValidityDays, time.Now()),
	}
	if form.FileURL != "" {
		view.FileLink = s.Storage.URL(form.FileURL)
	}
	return view
}

func (s *DefaultConsentService) index(ctx context.Context, form models.ConsentForm) {
	if s.Search == nil {
		return
	}
	if err := s.Search.Index(ctx, search.IndexConsents, form.ID, form); err != nil {
		s.Logger.Warn("failed to index consent form", zap.Error(err))
	}
}

func (s *DefaultConsentService) record(ctx context.Context, actor, action, id, detail string) {
	if s.Audit == nil {
		return
	}
	if actor == "" {
		actor = "system"
	}
	s.Audit.Record(ctx, models.AuditEvent{
		Actor:    actor,
		Action:   action,
		Entity:   "consent",
		EntityID: id,
		Detail:   detail,
	})
}

// IsNotFound reports whether err means the consent form does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
