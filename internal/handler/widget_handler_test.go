package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onecx/announcement-console/internal/dto"
	"github.com/onecx/announcement-console/internal/models"
)

func bannerBackend(t *testing.T, stream []models.Announcement, lastReq *dto.SearchAnnouncementRequest) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost &&
			(r.URL.Path == "/announcements/banner/search" || r.URL.Path == "/announcements/search"):
			if lastReq != nil {
				_ = json.NewDecoder(r.Body).Decode(lastReq)
			}
			_ = json.NewEncoder(w).Encode(dto.SearchAnnouncementResponse{Stream: stream})
		default:
			http.NotFound(w, r)
		}
	})
}

func TestBannerEndpointSortsByPriority(t *testing.T) {
	stream := []models.Announcement{
		{ID: "n1", Priority: models.AnnouncementPriorityNormal},
		{ID: "i1", Priority: models.AnnouncementPriorityImportant},
	}
	r, _ := newConsole(t, bannerBackend(t, stream, nil))

	w := doJSON(t, r, http.MethodGet, "/widgets/banner", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.Announcement
	decodeEnvelope(t, w, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "i1", got[0].ID)
}

func TestBannerEndpointContextOverride(t *testing.T) {
	var lastReq dto.SearchAnnouncementRequest
	r, _ := newConsole(t, bannerBackend(t, nil, &lastReq))

	w := doJSON(t, r, http.MethodGet, "/widgets/banner?workspaceName=sales&productName=onecx-theme", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sales", lastReq.WorkspaceName)
	assert.Equal(t, "onecx-theme", lastReq.ProductName)
	assert.Equal(t, models.AnnouncementStatusActive, lastReq.Status)
}

func TestBannerEndpointWelcomeProductStaysEmpty(t *testing.T) {
	stream := []models.Announcement{{ID: "a1", Priority: models.AnnouncementPriorityImportant}}
	r, _ := newConsole(t, bannerBackend(t, stream, nil))

	w := doJSON(t, r, http.MethodGet, "/widgets/banner?workspaceName=admin&productName=onecx-welcome", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.Announcement
	decodeEnvelope(t, w, &got)
	assert.Empty(t, got)
}

func TestDismissEndpointHidesOnNextFetch(t *testing.T) {
	stream := []models.Announcement{{ID: "a1"}, {ID: "a2"}}
	r, _ := newConsole(t, bannerBackend(t, stream, nil))
	require.Equal(t, http.StatusOK, doJSON(t, r, http.MethodGet, "/widgets/banner", nil).Code)

	w := doJSON(t, r, http.MethodPost, "/widgets/banner/a1/dismiss", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/widgets/banner", nil)
	var got []models.Announcement
	decodeEnvelope(t, w, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "a2", got[0].ID)
}

func TestActiveListEndpointDropsProductScoped(t *testing.T) {
	stream := []models.Announcement{
		{ID: "w1"},
		{ID: "p1", ProductName: "onecx-theme"},
	}
	r, _ := newConsole(t, bannerBackend(t, stream, nil))

	w := doJSON(t, r, http.MethodGet, "/widgets/active-list", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got []models.Announcement
	decodeEnvelope(t, w, &got)
	require.Len(t, got, 1)
	assert.Equal(t, "w1", got[0].ID)
}

func TestActiveListEndpointBackendFailureDegrades(t *testing.T) {
	r, _ := newConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))

	w := doJSON(t, r, http.MethodGet, "/widgets/active-list", nil)

	require.Equal(t, http.StatusOK, w.Code, "widget fetch failures degrade to an empty list")
	var got []models.Announcement
	decodeEnvelope(t, w, &got)
	assert.Empty(t, got)
}
