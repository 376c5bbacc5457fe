package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onecx/announcement-console/internal/dto"
	"github.com/onecx/announcement-console/internal/models"
	"github.com/onecx/announcement-console/internal/store"
	"github.com/onecx/announcement-console/pkg/config"
)

type bannerClientStub struct {
	resp *dto.SearchAnnouncementResponse
	err  error
	reqs []dto.SearchAnnouncementRequest
}

func (s *bannerClientStub) SearchAnnouncementBanners(ctx context.Context, req dto.SearchAnnouncementRequest) (*dto.SearchAnnouncementResponse, error) {
	s.reqs = append(s.reqs, req)
	return s.resp, s.err
}

func bannerStream(pairs ...string) *dto.SearchAnnouncementResponse {
	// pairs alternate id, priority
	stream := make([]models.Announcement, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		stream = append(stream, models.Announcement{
			ID:       pairs[i],
			Priority: models.AnnouncementPriority(pairs[i+1]),
			Status:   models.AnnouncementStatusActive,
		})
	}
	return &dto.SearchAnnouncementResponse{Stream: stream}
}

func newBanner(client bannerClient, kv store.KeyValueStore) (*BannerService, *store.DismissedStore) {
	if kv == nil {
		kv = store.NewMemoryStore()
	}
	dismissed := store.NewDismissedStore(kv, nil)
	embedCtx := config.ContextConfig{WorkspaceName: "admin", ProductName: "onecx-shell"}
	bannerCfg := config.BannerConfig{WelcomeProductName: "onecx-welcome"}
	return NewBannerService(client, dismissed, embedCtx, bannerCfg, nil, nil), dismissed
}

func TestRefreshRequestsActiveForContext(t *testing.T) {
	client := &bannerClientStub{resp: bannerStream()}
	svc, _ := newBanner(client, nil)

	svc.Refresh(context.Background())

	require.Len(t, client.reqs, 1)
	assert.Equal(t, "admin", client.reqs[0].WorkspaceName)
	assert.Equal(t, "onecx-shell", client.reqs[0].ProductName)
	assert.Equal(t, models.AnnouncementStatusActive, client.reqs[0].Status)
}

func TestRefreshSortsByPriority(t *testing.T) {
	client := &bannerClientStub{resp: bannerStream(
		"n1", "NORMAL",
		"l1", "LOW",
		"i1", "IMPORTANT",
		"n2", "NORMAL",
	)}
	svc, _ := newBanner(client, nil)

	svc.Refresh(context.Background())

	items := svc.Items()
	require.Len(t, items, 4)
	assert.Equal(t, "i1", items[0].ID)
	assert.Equal(t, "n1", items[1].ID, "equal priorities keep backend order")
	assert.Equal(t, "n2", items[2].ID)
	assert.Equal(t, "l1", items[3].ID)
}

func TestRefreshFiltersDismissedIDs(t *testing.T) {
	client := &bannerClientStub{resp: bannerStream("a1", "NORMAL", "a2", "NORMAL")}
	svc, dismissed := newBanner(client, nil)
	require.NoError(t, dismissed.Dismiss(context.Background(), "a1"))

	svc.Refresh(context.Background())

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "a2", items[0].ID)
}

func TestRefreshReadsDismissalsAtFilterTime(t *testing.T) {
	client := &bannerClientStub{resp: bannerStream("a1", "NORMAL")}
	svc, dismissed := newBanner(client, nil)

	svc.Refresh(context.Background())
	require.Len(t, svc.Items(), 1)

	// dismissal recorded by another widget instance between refreshes
	require.NoError(t, dismissed.Dismiss(context.Background(), "a1"))
	svc.Refresh(context.Background())

	assert.Empty(t, svc.Items())
}

func TestRefreshSuppressesWelcomeProduct(t *testing.T) {
	client := &bannerClientStub{resp: bannerStream("a1", "IMPORTANT")}
	svc, _ := newBanner(client, nil)
	svc.SetContext("admin", "onecx-welcome")

	svc.Refresh(context.Background())

	assert.Empty(t, svc.Items())
}

func TestRefreshFailureDegradesToEmpty(t *testing.T) {
	client := &bannerClientStub{resp: bannerStream("a1", "NORMAL")}
	svc, _ := newBanner(client, nil)
	svc.Refresh(context.Background())
	require.Len(t, svc.Items(), 1)

	client.err = errors.New("gateway timeout")
	svc.Refresh(context.Background())

	assert.Empty(t, svc.Items())
}

func TestDismissPersistsAndRemoves(t *testing.T) {
	kv := store.NewMemoryStore()
	client := &bannerClientStub{resp: bannerStream("a1", "NORMAL", "a2", "NORMAL")}
	svc, _ := newBanner(client, kv)
	svc.Refresh(context.Background())

	require.NoError(t, svc.Dismiss(context.Background(), "a1"))

	items := svc.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "a2", items[0].ID)

	raw, err := kv.Get(context.Background(), store.DismissedKey)
	require.NoError(t, err)
	assert.JSONEq(t, `["a1"]`, string(raw))
}

func TestDismissAppendsToExistingSet(t *testing.T) {
	kv := store.NewMemoryStore()
	client := &bannerClientStub{resp: bannerStream("a2", "NORMAL")}
	svc, dismissed := newBanner(client, kv)
	require.NoError(t, dismissed.Dismiss(context.Background(), "a1"))
	svc.Refresh(context.Background())

	require.NoError(t, svc.Dismiss(context.Background(), "a2"))

	raw, err := kv.Get(context.Background(), store.DismissedKey)
	require.NoError(t, err)
	assert.JSONEq(t, `["a1","a2"]`, string(raw))
}

func TestDismissStorageFailureLeavesItems(t *testing.T) {
	kv := store.NewMemoryStore()
	client := &bannerClientStub{resp: bannerStream("a1", "NORMAL")}
	svc, _ := newBanner(client, kv)
	svc.Refresh(context.Background())

	kv.FailWrites = errors.New("quota exceeded")
	require.Error(t, svc.Dismiss(context.Background(), "a1"))

	items := svc.Items()
	require.Len(t, items, 1, "the item stays visible when persistence fails")
	assert.Equal(t, "a1", items[0].ID)

	_, err := kv.Get(context.Background(), store.DismissedKey)
	assert.ErrorIs(t, err, store.ErrNotFound)
}
