package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/onecx/announcement-console/internal/dto"
	"github.com/onecx/announcement-console/internal/models"
	"github.com/onecx/announcement-console/internal/notice"
	appErrors "github.com/onecx/announcement-console/pkg/errors"
)

type searchClient interface {
	SearchAnnouncements(ctx context.Context, req dto.SearchAnnouncementRequest) (*dto.SearchAnnouncementResponse, error)
	DeleteAnnouncementByID(ctx context.Context, id string) error
}

// DialogMode enumerates what the detail dialog is currently doing.
type DialogMode string

const (
	DialogClosed   DialogMode = "CLOSED"
	DialogCreating DialogMode = "CREATING"
	DialogViewing  DialogMode = "VIEWING"
	DialogEditing  DialogMode = "EDITING"
	DialogCopying  DialogMode = "COPYING"
)

// DialogState is the explicit union over the dialog lifecycle. Selected is
// nil only for DialogClosed and DialogCreating.
type DialogState struct {
	Mode     DialogMode
	Selected *models.Announcement
}

// SearchService orchestrates the announcement search page: it owns the
// criteria baseline, the result list and the dialog state of the row actions.
type SearchService struct {
	client   searchClient
	notifier notice.Notifier
	logger   *zap.Logger

	mu           sync.Mutex
	baseline     dto.SearchCriteria
	results      []models.Announcement
	searching    bool
	errorKey     string
	dialog       DialogState
	deleteDialog bool
	deleteTarget *models.Announcement
	seq          uint64
}

// NewSearchService constructs the orchestrator.
func NewSearchService(client searchClient, notifier notice.Notifier, logger *zap.Logger) *SearchService {
	if notifier == nil {
		notifier = notice.Fanout{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{
		client:   client,
		notifier: notifier,
		logger:   logger,
		dialog:   DialogState{Mode: DialogClosed},
	}
}

// Search runs a search. With reuseCriteria the stored baseline is used as-is,
// e.g. to refresh after a detail dialog closed; otherwise the given criteria
// become the new baseline. Responses of superseded searches are discarded so
// a slow earlier request cannot overwrite a faster later one.
func (s *SearchService) Search(ctx context.Context, criteria dto.SearchCriteria, reuseCriteria bool) ([]models.Announcement, error) {
	s.mu.Lock()
	if !reuseCriteria {
		s.baseline = criteria
	}
	effective := s.baseline
	s.seq++
	seq := s.seq
	s.searching = true
	s.mu.Unlock()

	resp, err := s.client.SearchAnnouncements(ctx, effective.ToRequest())

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		// a newer search is in flight or already answered
		return s.resultsLocked(), nil
	}
	s.searching = false

	if err != nil {
		s.results = nil
		s.errorKey = appErrors.MessageKey(err)
		s.logger.Error("announcement search failed", zap.Error(err))
		s.notifier.Notify(notice.Error("announcements could not be loaded", s.errorKey))
		return nil, err
	}

	s.errorKey = ""
	if resp == nil || resp.Stream == nil {
		s.results = []models.Announcement{}
	} else {
		s.results = resp.Stream
	}
	if len(s.results) == 0 {
		s.notifier.Notify(notice.Info("no announcements found"))
	}
	return s.resultsLocked(), nil
}

// ResetCriteria clears the baseline and the result list.
func (s *SearchService) ResetCriteria() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseline.Reset()
	s.results = nil
	s.errorKey = ""
}

// Results returns a copy of the current result list.
func (s *SearchService) Results() []models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resultsLocked()
}

// Searching reports whether a search is outstanding.
func (s *SearchService) Searching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searching
}

// ErrorKey returns the translation key of the last failure, empty when the
// last search succeeded.
func (s *SearchService) ErrorKey() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errorKey
}

// Dialog returns the current dialog state.
func (s *SearchService) Dialog() DialogState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dialog
}

// DeleteDialogVisible reports whether the delete confirmation is open.
func (s *SearchService) DeleteDialogVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deleteDialog
}

// CreateNew opens the dialog in create mode.
func (s *SearchService) CreateNew() {
	s.setDialog(DialogState{Mode: DialogCreating})
}

// View opens the dialog read-only on the given row.
func (s *SearchService) View(a models.Announcement) {
	s.setDialog(DialogState{Mode: DialogViewing, Selected: &a})
}

// Edit opens the dialog for editing the given row.
func (s *SearchService) Edit(a models.Announcement) {
	s.setDialog(DialogState{Mode: DialogEditing, Selected: &a})
}

// CopyOf opens the dialog on a clone of the given row. The clone has no
// identity, so saving it is routed as a create.
func (s *SearchService) CopyOf(a models.Announcement) {
	clone := a.Copy()
	s.setDialog(DialogState{Mode: DialogCopying, Selected: &clone})
}

// CloseDialog closes the detail dialog. With changed, the baseline criteria
// are re-run so the list reflects the saved record.
func (s *SearchService) CloseDialog(ctx context.Context, changed bool) {
	s.setDialog(DialogState{Mode: DialogClosed})
	if changed {
		_, _ = s.Search(ctx, dto.SearchCriteria{}, true)
	}
}

// RequestDelete opens the delete confirmation for the given row.
func (s *SearchService) RequestDelete(a models.Announcement) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteTarget = &a
	s.deleteDialog = true
}

// CancelDelete closes the confirmation without deleting.
func (s *SearchService) CancelDelete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleteTarget = nil
	s.deleteDialog = false
}

// ConfirmDelete deletes the selected row remotely. On success only that row
// is dropped from the in-memory list, without a refetch; on failure the list
// and the open confirmation stay as they are.
func (s *SearchService) ConfirmDelete(ctx context.Context) error {
	s.mu.Lock()
	target := s.deleteTarget
	s.mu.Unlock()
	if target == nil || target.ID == "" {
		return nil
	}

	if err := s.client.DeleteAnnouncementByID(ctx, target.ID); err != nil {
		s.logger.Error("announcement delete failed", zap.String("id", target.ID), zap.Error(err))
		s.notifier.Notify(notice.Error("announcement could not be deleted", appErrors.MessageKey(err)))
		return err
	}

	s.mu.Lock()
	kept := s.results[:0]
	for _, a := range s.results {
		if a.ID != target.ID {
			kept = append(kept, a)
		}
	}
	s.results = kept
	s.deleteTarget = nil
	s.deleteDialog = false
	s.mu.Unlock()

	s.notifier.Notify(notice.Success("announcement deleted"))
	return nil
}

func (s *SearchService) setDialog(state DialogState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dialog = state
}

func (s *SearchService) resultsLocked() []models.Announcement {
	out := make([]models.Announcement, len(s.results))
	copy(out, s.results)
	return out
}
