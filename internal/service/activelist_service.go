package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/onecx/announcement-console/internal/dto"
	"github.com/onecx/announcement-console/internal/models"
)

type activeListClient interface {
	SearchAnnouncements(ctx context.Context, req dto.SearchAnnouncementRequest) (*dto.SearchAnnouncementResponse, error)
}

// ActiveListService is the embeddable list widget: active announcements of
// the current workspace, restricted to workspace-global entries.
type ActiveListService struct {
	client  activeListClient
	logger  *zap.Logger
	metrics *MetricsService

	workspaceName string

	mu    sync.Mutex
	items []models.Announcement
}

// NewActiveListService constructs the widget for one workspace.
func NewActiveListService(client activeListClient, workspaceName string, logger *zap.Logger, metrics *MetricsService) *ActiveListService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActiveListService{
		client:        client,
		logger:        logger,
		metrics:       metrics,
		workspaceName: workspaceName,
	}
}

// SetWorkspace re-targets the widget; callers refresh afterwards.
func (s *ActiveListService) SetWorkspace(workspaceName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workspaceName = workspaceName
}

// Refresh fetches active announcements for the workspace and keeps only the
// workspace-global ones, sorted by priority. A fetch failure degrades to an
// empty displayed list.
func (s *ActiveListService) Refresh(ctx context.Context) {
	s.mu.Lock()
	req := dto.SearchAnnouncementRequest{
		WorkspaceName: s.workspaceName,
		Status:        models.AnnouncementStatusActive,
	}
	s.mu.Unlock()

	resp, err := s.client.SearchAnnouncements(ctx, req)
	if err != nil {
		s.logger.Error("active announcement fetch failed", zap.Error(err))
		if s.metrics != nil {
			s.metrics.IncWidgetRefresh("active_list", "error")
		}
		s.mu.Lock()
		s.items = nil
		s.mu.Unlock()
		return
	}
	if s.metrics != nil {
		s.metrics.IncWidgetRefresh("active_list", "ok")
	}

	var filtered []models.Announcement
	if resp != nil {
		for _, a := range resp.Stream {
			if a.ProductName != "" {
				// product-scoped entries belong to the banner, not this list
				continue
			}
			filtered = append(filtered, a)
		}
	}
	sortByPriority(filtered)

	s.mu.Lock()
	s.items = filtered
	s.mu.Unlock()
}

// Items returns a copy of the currently displayed announcements.
func (s *ActiveListService) Items() []models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Announcement, len(s.items))
	copy(out, s.items)
	return out
}
