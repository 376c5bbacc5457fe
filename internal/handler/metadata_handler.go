package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onecx/announcement-console/internal/dto"
	"github.com/onecx/announcement-console/pkg/response"
)

type metadataLoader interface {
	Load(ctx context.Context) dto.Metadata
}

// MetadataHandler serves the aggregated workspace/product dropdown data.
type MetadataHandler struct {
	loader metadataLoader
}

// NewMetadataHandler builds a new handler.
func NewMetadataHandler(loader metadataLoader) *MetadataHandler {
	return &MetadataHandler{loader: loader}
}

// Get godoc
// @Summary Workspace and product metadata for the filter dropdowns
// @Tags Announcements
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /metadata [get]
func (h *MetadataHandler) Get(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.loader.Load(c.Request.Context()))
}
