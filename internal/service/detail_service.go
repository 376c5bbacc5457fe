package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/onecx/announcement-console/internal/dto"
	"github.com/onecx/announcement-console/internal/models"
	"github.com/onecx/announcement-console/internal/notice"
	appErrors "github.com/onecx/announcement-console/pkg/errors"
)

type detailClient interface {
	GetAnnouncementByID(ctx context.Context, id string) (*models.Announcement, error)
	CreateAnnouncement(ctx context.Context, req dto.CreateAnnouncementRequest) (*models.Announcement, error)
	UpdateAnnouncementByID(ctx context.Context, id string, req dto.UpdateAnnouncementRequest) (*models.Announcement, error)
}

// FormMode drives the detail dialog lifecycle.
type FormMode string

const (
	FormModeCreate FormMode = "CREATE"
	FormModeEdit   FormMode = "EDIT"
	FormModeView   FormMode = "VIEW"
	FormModeCopy   FormMode = "COPY"
)

// InvalidDateRange is reported whenever both dates are set and the start is
// not strictly before the end.
const InvalidDateRange = "invalidDateRange"

// AnnouncementForm holds the editable field values of the detail dialog.
type AnnouncementForm struct {
	ID                string                      `json:"id,omitempty"`
	ModificationCount int                         `json:"modificationCount"`
	Title             string                      `json:"title"`
	Content           string                      `json:"content,omitempty"`
	ProductName       string                      `json:"productName,omitempty"`
	WorkspaceName     string                      `json:"workspaceName,omitempty"`
	Type              models.AnnouncementType     `json:"type,omitempty"`
	Priority          models.AnnouncementPriority `json:"priority,omitempty"`
	Status            models.AnnouncementStatus   `json:"status,omitempty"`
	StartDate         *time.Time                  `json:"startDate,omitempty"`
	EndDate           *time.Time                  `json:"endDate,omitempty"`
}

// DateRangeError validates the cross-field rule on the two dates. It is
// checked on every date change and again on save.
func (f AnnouncementForm) DateRangeError() string {
	if f.StartDate != nil && f.EndDate != nil && !f.StartDate.Before(*f.EndDate) {
		return InvalidDateRange
	}
	return ""
}

// DetailService is the state machine behind the announcement detail dialog.
// The caller decides which mode to open; saving dispatches create or update
// and reports back through the result callback so the search page can close
// the dialog and refresh.
type DetailService struct {
	client   detailClient
	validate *validator.Validate
	notifier notice.Notifier
	logger   *zap.Logger
	onResult func(changed bool)

	mu       sync.Mutex
	mode     FormMode
	open     bool
	enabled  bool
	form     AnnouncementForm
	errorKey string
}

// NewDetailService constructs the state machine. The enum validations are
// registered on the shared validator instance.
func NewDetailService(client detailClient, validate *validator.Validate, notifier notice.Notifier, logger *zap.Logger, onResult func(changed bool)) *DetailService {
	if validate == nil {
		validate = validator.New()
	}
	if notifier == nil {
		notifier = notice.Fanout{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if onResult == nil {
		onResult = func(bool) {}
	}

	registerAnnouncementValidations(validate)

	return &DetailService{
		client:   client,
		validate: validate,
		notifier: notifier,
		logger:   logger,
		onResult: onResult,
		mode:     FormModeCreate,
	}
}

func registerAnnouncementValidations(validate *validator.Validate) {
	_ = validate.RegisterValidation("announcementtype", func(fl validator.FieldLevel) bool {
		switch models.AnnouncementType(fl.Field().String()) {
		case models.AnnouncementTypeInfo, models.AnnouncementTypeEvent, models.AnnouncementTypeMaintenance:
			return true
		default:
			return false
		}
	})
	_ = validate.RegisterValidation("announcementpriority", func(fl validator.FieldLevel) bool {
		switch models.AnnouncementPriority(fl.Field().String()) {
		case models.AnnouncementPriorityImportant, models.AnnouncementPriorityNormal, models.AnnouncementPriorityLow:
			return true
		default:
			return false
		}
	})
	_ = validate.RegisterValidation("announcementstatus", func(fl validator.FieldLevel) bool {
		switch models.AnnouncementStatus(fl.Field().String()) {
		case models.AnnouncementStatusActive, models.AnnouncementStatusInactive:
			return true
		default:
			return false
		}
	})
}

// Open (re)initializes the form when the dialog opens. Caller-misuse
// conditions (missing id for VIEW/EDIT, an id on CREATE) leave the form
// untouched and are not surfaced to the user.
func (s *DetailService) Open(ctx context.Context, mode FormMode, ann *models.Announcement) {
	switch mode {
	case FormModeView, FormModeEdit:
		if ann == nil || ann.ID == "" {
			s.logger.Debug("detail dialog opened without id", zap.String("mode", string(mode)))
			return
		}
		s.openWithFetch(ctx, mode, ann.ID)
	case FormModeCreate:
		if ann != nil && ann.ID != "" {
			s.logger.Debug("create mode opened with an identified record")
			return
		}
		s.mu.Lock()
		s.mode = mode
		s.form = defaultForm()
		s.enabled = true
		s.open = true
		s.errorKey = ""
		s.mu.Unlock()
	case FormModeCopy:
		if ann == nil {
			s.logger.Debug("copy mode opened without a source record")
			return
		}
		source := ann.Copy()
		s.mu.Lock()
		s.mode = mode
		s.form = formFromModel(source)
		s.enabled = true
		s.open = true
		s.errorKey = ""
		s.mu.Unlock()
	}
}

func (s *DetailService) openWithFetch(ctx context.Context, mode FormMode, id string) {
	fetched, err := s.client.GetAnnouncementByID(ctx, id)

	s.mu.Lock()
	s.mode = mode
	s.open = true
	if err != nil {
		s.form = defaultForm()
		s.enabled = false
		s.errorKey = appErrors.MessageKey(err)
		s.mu.Unlock()
		s.logger.Error("announcement fetch failed", zap.String("id", id), zap.Error(err))
		s.notifier.Notify(notice.Error("announcement could not be loaded", appErrors.MessageKey(err)))
		return
	}
	s.form = formFromModel(*fetched)
	s.enabled = mode == FormModeEdit
	s.errorKey = ""
	s.mu.Unlock()
}

// UpdateForm replaces the editable field values while the dialog is open and
// the form is enabled.
func (s *DetailService) UpdateForm(form AnnouncementForm) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open || !s.enabled {
		return
	}
	// identity and concurrency counter stay under the dialog's control
	form.ID = s.form.ID
	form.ModificationCount = s.form.ModificationCount
	s.form = form
}

// Save validates and dispatches the form. Validation failures surface as a
// warning notice and never reach the network. On success the dialog closes
// and the result callback asks the caller to refresh; on failure it stays
// open.
func (s *DetailService) Save(ctx context.Context) error {
	s.mu.Lock()
	if !s.open || !s.enabled {
		s.mu.Unlock()
		return nil
	}
	mode := s.mode
	form := s.form
	s.mu.Unlock()

	if key := form.DateRangeError(); key != "" {
		s.notifier.Notify(notice.Warn("start date must lie before the end date"))
		return appErrors.Clone(appErrors.ErrValidation, key)
	}

	var err error
	switch mode {
	case FormModeEdit:
		req := updateRequestFromForm(form)
		if vErr := s.validate.Struct(req); vErr != nil {
			s.notifier.Notify(notice.Warn("announcement data is incomplete or invalid"))
			return appErrors.Wrap(vErr, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement")
		}
		_, err = s.client.UpdateAnnouncementByID(ctx, form.ID, req)
	case FormModeCreate, FormModeCopy:
		req := createRequestFromForm(form)
		if vErr := s.validate.Struct(req); vErr != nil {
			s.notifier.Notify(notice.Warn("announcement data is incomplete or invalid"))
			return appErrors.Wrap(vErr, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement")
		}
		_, err = s.client.CreateAnnouncement(ctx, req)
	default:
		return nil
	}

	if err != nil {
		s.logger.Error("announcement save failed", zap.String("mode", string(mode)), zap.Error(err))
		s.notifier.Notify(notice.Error("announcement could not be saved", appErrors.MessageKey(err)))
		return err
	}

	s.mu.Lock()
	s.open = false
	s.enabled = false
	s.mu.Unlock()

	if mode == FormModeEdit {
		s.notifier.Notify(notice.Success("announcement updated"))
	} else {
		s.notifier.Notify(notice.Success("announcement created"))
	}
	s.onResult(true)
	return nil
}

// Close abandons the dialog without saving.
func (s *DetailService) Close() {
	s.mu.Lock()
	s.open = false
	s.enabled = false
	s.mu.Unlock()
	s.onResult(false)
}

// Mode returns the mode of the last open.
func (s *DetailService) Mode() FormMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// IsOpen reports whether the dialog is open.
func (s *DetailService) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Enabled reports whether the form accepts input.
func (s *DetailService) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enabled
}

// Form returns the current field values.
func (s *DetailService) Form() AnnouncementForm {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// ErrorKey returns the translation key of the last load failure.
func (s *DetailService) ErrorKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorKey
}

func defaultForm() AnnouncementForm {
	return AnnouncementForm{
		Type:     models.AnnouncementTypeInfo,
		Priority: models.AnnouncementPriorityNormal,
		Status:   models.AnnouncementStatusInactive,
	}
}

func formFromModel(a models.Announcement) AnnouncementForm {
	return AnnouncementForm{
		ID:                a.ID,
		ModificationCount: a.ModificationCount,
		Title:             a.Title,
		Content:           a.Content,
		ProductName:       a.ProductName,
		WorkspaceName:     a.WorkspaceName,
		Type:              a.Type,
		Priority:          a.Priority,
		Status:            a.Status,
		StartDate:         a.StartDate,
		EndDate:           a.EndDate,
	}
}

func createRequestFromForm(f AnnouncementForm) dto.CreateAnnouncementRequest {
	return dto.CreateAnnouncementRequest{
		Title:         f.Title,
		Content:       f.Content,
		ProductName:   f.ProductName,
		WorkspaceName: f.WorkspaceName,
		Type:          f.Type,
		Priority:      f.Priority,
		Status:        f.Status,
		StartDate:     f.StartDate,
		EndDate:       f.EndDate,
	}
}

func updateRequestFromForm(f AnnouncementForm) dto.UpdateAnnouncementRequest {
	return dto.UpdateAnnouncementRequest{
		ModificationCount: f.ModificationCount,
		Title:             f.Title,
		Content:           f.Content,
		ProductName:       f.ProductName,
		WorkspaceName:     f.WorkspaceName,
		Type:              f.Type,
		Priority:          f.Priority,
		Status:            f.Status,
		StartDate:         f.StartDate,
		EndDate:           f.EndDate,
	}
}
