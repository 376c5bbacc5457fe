package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onecx/announcement-console/internal/dto"
	"github.com/onecx/announcement-console/internal/models"
)

type activeListClientStub struct {
	resp *dto.SearchAnnouncementResponse
	err  error
	reqs []dto.SearchAnnouncementRequest
}

func (s *activeListClientStub) SearchAnnouncements(ctx context.Context, req dto.SearchAnnouncementRequest) (*dto.SearchAnnouncementResponse, error) {
	s.reqs = append(s.reqs, req)
	return s.resp, s.err
}

func TestActiveListRequestsActiveForWorkspace(t *testing.T) {
	client := &activeListClientStub{resp: &dto.SearchAnnouncementResponse{}}
	svc := NewActiveListService(client, "admin", nil, nil)

	svc.Refresh(context.Background())

	require.Len(t, client.reqs, 1)
	assert.Equal(t, "admin", client.reqs[0].WorkspaceName)
	assert.Equal(t, models.AnnouncementStatusActive, client.reqs[0].Status)
	assert.Empty(t, client.reqs[0].ProductName)
}

func TestActiveListDropsProductScopedEntries(t *testing.T) {
	client := &activeListClientStub{resp: &dto.SearchAnnouncementResponse{Stream: []models.Announcement{
		{ID: "w1", Priority: models.AnnouncementPriorityNormal},
		{ID: "p1", ProductName: "onecx-theme", Priority: models.AnnouncementPriorityImportant},
		{ID: "w2", Priority: models.AnnouncementPriorityImportant},
	}}}
	svc := NewActiveListService(client, "admin", nil, nil)

	svc.Refresh(context.Background())

	items := svc.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "w2", items[0].ID, "important entries come first")
	assert.Equal(t, "w1", items[1].ID)
}

func TestActiveListFailureDegradesToEmpty(t *testing.T) {
	client := &activeListClientStub{resp: &dto.SearchAnnouncementResponse{Stream: []models.Announcement{{ID: "w1"}}}}
	svc := NewActiveListService(client, "admin", nil, nil)
	svc.Refresh(context.Background())
	require.Len(t, svc.Items(), 1)

	client.err = errors.New("bad gateway")
	svc.Refresh(context.Background())

	assert.Empty(t, svc.Items())
}

func TestActiveListSetWorkspace(t *testing.T) {
	client := &activeListClientStub{resp: &dto.SearchAnnouncementResponse{}}
	svc := NewActiveListService(client, "admin", nil, nil)
	svc.SetWorkspace("sales")

	svc.Refresh(context.Background())

	require.Len(t, client.reqs, 1)
	assert.Equal(t, "sales", client.reqs[0].WorkspaceName)
}
