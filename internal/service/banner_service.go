package service

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/onecx/announcement-console/internal/dto"
	"github.com/onecx/announcement-console/internal/models"
	"github.com/onecx/announcement-console/internal/store"
	"github.com/onecx/announcement-console/pkg/config"
)

type bannerClient interface {
	SearchAnnouncementBanners(ctx context.Context, req dto.SearchAnnouncementRequest) (*dto.SearchAnnouncementResponse, error)
}

// BannerService is the read-only carousel widget: it fetches active
// announcements for its embedding context, drops what the user already
// dismissed and keeps the list sorted by priority.
type BannerService struct {
	client    bannerClient
	dismissed *store.DismissedStore
	logger    *zap.Logger
	metrics   *MetricsService

	workspaceName  string
	productName    string
	welcomeProduct string

	mu    sync.Mutex
	items []models.Announcement
}

// NewBannerService constructs the widget for one embedding context.
func NewBannerService(client bannerClient, dismissed *store.DismissedStore, embedCtx config.ContextConfig, bannerCfg config.BannerConfig, logger *zap.Logger, metrics *MetricsService) *BannerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BannerService{
		client:         client,
		dismissed:      dismissed,
		logger:         logger,
		metrics:        metrics,
		workspaceName:  embedCtx.WorkspaceName,
		productName:    embedCtx.ProductName,
		welcomeProduct: bannerCfg.WelcomeProductName,
	}
}

// SetContext re-targets the widget; the host calls this when the embedding
// workspace or owning product changes, followed by a Refresh.
func (s *BannerService) SetContext(workspaceName, productName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workspaceName = workspaceName
	s.productName = productName
}

// Refresh fetches active announcements for the current context. A fetch
// failure degrades to an empty displayed list instead of an error state.
func (s *BannerService) Refresh(ctx context.Context) {
	s.mu.Lock()
	req := dto.SearchAnnouncementRequest{
		WorkspaceName: s.workspaceName,
		ProductName:   s.productName,
		Status:        models.AnnouncementStatusActive,
	}
	s.mu.Unlock()

	resp, err := s.client.SearchAnnouncementBanners(ctx, req)
	if err != nil {
		s.logger.Error("banner fetch failed", zap.Error(err))
		s.countRefresh("banner", "error")
		s.mu.Lock()
		s.items = nil
		s.mu.Unlock()
		return
	}
	s.countRefresh("banner", "ok")

	var stream []models.Announcement
	if resp != nil {
		stream = resp.Stream
	}
	filtered := s.filter(ctx, stream)
	sortByPriority(filtered)

	s.mu.Lock()
	s.items = filtered
	s.mu.Unlock()
}

// Items returns a copy of the currently displayed announcements.
func (s *BannerService) Items() []models.Announcement {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Announcement, len(s.items))
	copy(out, s.items)
	return out
}

// Dismiss hides the announcement with the given id: the id is persisted into
// the dismissed set and the item leaves the displayed list in the same call.
// A storage failure leaves both unchanged.
func (s *BannerService) Dismiss(ctx context.Context, id string) error {
	if err := s.dismissed.Dismiss(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, a := range s.items {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	s.items = kept
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.IncDismissal()
	}
	return nil
}

// filter applies the dismissal set (read from the store at filter time, not
// cached) and suppresses everything inside the welcome product context.
func (s *BannerService) filter(ctx context.Context, in []models.Announcement) []models.Announcement {
	s.mu.Lock()
	welcome := s.welcomeProduct != "" && s.productName == s.welcomeProduct
	s.mu.Unlock()
	if welcome {
		return nil
	}

	ignored := s.dismissed.IDs(ctx)
	out := make([]models.Announcement, 0, len(in))
	for _, a := range in {
		if _, ok := ignored[a.ID]; ok {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (s *BannerService) countRefresh(widget, outcome string) {
	if s.metrics != nil {
		s.metrics.IncWidgetRefresh(widget, outcome)
	}
}

// sortByPriority orders announcements by descending priority weight,
// keeping the backend order within equal priorities.
func sortByPriority(items []models.Announcement) {
	sort.SliceStable(items, func(i, j int) bool {
		return models.PriorityWeight(items[i].Priority) > models.PriorityWeight(items[j].Priority)
	})
}
