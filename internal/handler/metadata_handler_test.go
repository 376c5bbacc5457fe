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

func TestMetadataEndpointAggregates(t *testing.T) {
	r, _ := newConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch req.URL.Path {
		case "/workspaces":
			_ = json.NewEncoder(w).Encode([]models.WorkspaceRef{{Name: "admin", DisplayName: "Administration"}})
		case "/products":
			_ = json.NewEncoder(w).Encode([]models.ProductRef{{Name: "onecx-theme"}})
		case "/announcements/scopes":
			_ = json.NewEncoder(w).Encode(models.UsedScopes{
				WorkspaceNames: []string{"admin", "gone"},
				ProductNames:   []string{"onecx-theme"},
			})
		default:
			http.NotFound(w, req)
		}
	}))

	w := doJSON(t, r, http.MethodGet, "/metadata", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got dto.Metadata
	decodeEnvelope(t, w, &got)
	require.Len(t, got.AllWorkspaces, 1)
	assert.Equal(t, "Administration", got.AllWorkspaces[0].Label)
	require.Len(t, got.UsedWorkspaces, 2)
	assert.Equal(t, "gone", got.UsedWorkspaces[1].Label, "names missing from the catalog keep their raw name")
	require.Len(t, got.UsedProducts, 1)
	assert.Equal(t, "onecx-theme", got.UsedProducts[0].Label)
}

func TestMetadataEndpointToleratesBackendFailure(t *testing.T) {
	r, _ := newConsole(t, http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))

	w := doJSON(t, r, http.MethodGet, "/metadata", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var got dto.Metadata
	decodeEnvelope(t, w, &got)
	assert.Empty(t, got.AllWorkspaces)
	assert.Empty(t, got.UsedProducts)
}
