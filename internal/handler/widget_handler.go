package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onecx/announcement-console/internal/service"
	appErrors "github.com/onecx/announcement-console/pkg/errors"
	"github.com/onecx/announcement-console/pkg/response"
)

// WidgetHandler exposes the two embeddable read-only widgets.
type WidgetHandler struct {
	banner     *service.BannerService
	activeList *service.ActiveListService
}

// NewWidgetHandler builds a new handler.
func NewWidgetHandler(banner *service.BannerService, activeList *service.ActiveListService) *WidgetHandler {
	return &WidgetHandler{banner: banner, activeList: activeList}
}

// Banner godoc
// @Summary Banner carousel data
// @Tags Widgets
// @Produce json
// @Param workspaceName query string false "Override the embedding workspace"
// @Param productName query string false "Override the owning product"
// @Success 200 {object} response.Envelope
// @Router /widgets/banner [get]
func (h *WidgetHandler) Banner(c *gin.Context) {
	if ws, ok := c.GetQuery("workspaceName"); ok {
		h.banner.SetContext(ws, c.Query("productName"))
	}
	h.banner.Refresh(c.Request.Context())
	response.JSON(c, http.StatusOK, h.banner.Items())
}

// Dismiss godoc
// @Summary Hide a banner announcement for this user
// @Tags Widgets
// @Param id path string true "Announcement id"
// @Router /widgets/banner/{id}/dismiss [post]
func (h *WidgetHandler) Dismiss(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "announcement id required"))
		return
	}
	if err := h.banner.Dismiss(c.Request.Context(), id); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "dismissal could not be persisted"))
		return
	}
	response.NoContent(c)
}

// ActiveList godoc
// @Summary Workspace-global active announcements
// @Tags Widgets
// @Produce json
// @Param workspaceName query string false "Override the embedding workspace"
// @Success 200 {object} response.Envelope
// @Router /widgets/active-list [get]
func (h *WidgetHandler) ActiveList(c *gin.Context) {
	if ws, ok := c.GetQuery("workspaceName"); ok {
		h.activeList.SetWorkspace(ws)
	}
	h.activeList.Refresh(c.Request.Context())
	response.JSON(c, http.StatusOK, h.activeList.Items())
}
