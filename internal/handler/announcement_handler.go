package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/onecx/announcement-console/internal/dto"
	"github.com/onecx/announcement-console/internal/models"
	"github.com/onecx/announcement-console/internal/notice"
	"github.com/onecx/announcement-console/internal/service"
	appErrors "github.com/onecx/announcement-console/pkg/errors"
	"github.com/onecx/announcement-console/pkg/response"
)

// AnnouncementHandler exposes the admin page of the console: search plus the
// detail-dialog lifecycle the host shell drives.
type AnnouncementHandler struct {
	search  *service.SearchService
	detail  *service.DetailService
	notices *notice.Recorder
}

// NewAnnouncementHandler builds a new handler.
func NewAnnouncementHandler(search *service.SearchService, detail *service.DetailService, notices *notice.Recorder) *AnnouncementHandler {
	return &AnnouncementHandler{search: search, detail: detail, notices: notices}
}

// dialogSnapshot is what the shell renders after a dialog transition.
type dialogSnapshot struct {
	Mode     service.FormMode         `json:"mode"`
	Open     bool                     `json:"open"`
	Enabled  bool                     `json:"enabled"`
	Form     service.AnnouncementForm `json:"form"`
	ErrorKey string                   `json:"errorKey,omitempty"`
}

// Search godoc
// @Summary Search announcements
// @Tags Announcements
// @Accept json
// @Produce json
// @Param reuse query boolean false "Reuse the stored criteria baseline"
// @Param payload body dto.SearchCriteria true "Search criteria"
// @Success 200 {object} response.Envelope
// @Router /announcements/search [post]
func (h *AnnouncementHandler) Search(c *gin.Context) {
	var criteria dto.SearchCriteria
	reuse := c.Query("reuse") == "true"
	if !reuse {
		if err := c.ShouldBindJSON(&criteria); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid search criteria"))
			return
		}
	}

	results, err := h.search.Search(c.Request.Context(), criteria, reuse)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dto.SearchAnnouncementResponse{Stream: results, TotalElements: int64(len(results))})
}

// ResetCriteria godoc
// @Summary Reset search criteria and results
// @Tags Announcements
// @Router /announcements/search/reset [post]
func (h *AnnouncementHandler) ResetCriteria(c *gin.Context) {
	h.search.ResetCriteria()
	response.NoContent(c)
}

// OpenDialog godoc
// @Summary Open the detail dialog
// @Tags Announcements
// @Accept json
// @Produce json
// @Param mode path string true "Dialog mode" Enums(create, view, edit, copy)
// @Param payload body models.Announcement false "Row the action was invoked on"
// @Success 200 {object} response.Envelope
// @Router /announcements/dialog/{mode} [post]
func (h *AnnouncementHandler) OpenDialog(c *gin.Context) {
	var mode service.FormMode
	switch c.Param("mode") {
	case "create":
		mode = service.FormModeCreate
	case "view":
		mode = service.FormModeView
	case "edit":
		mode = service.FormModeEdit
	case "copy":
		mode = service.FormModeCopy
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "unknown dialog mode"))
		return
	}

	var row *models.Announcement
	if c.Request.ContentLength > 0 {
		var body models.Announcement
		if err := c.ShouldBindJSON(&body); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid announcement payload"))
			return
		}
		row = &body
	}

	switch mode {
	case service.FormModeCreate:
		h.search.CreateNew()
	case service.FormModeView:
		if row != nil {
			h.search.View(*row)
		}
	case service.FormModeEdit:
		if row != nil {
			h.search.Edit(*row)
		}
	case service.FormModeCopy:
		if row != nil {
			h.search.CopyOf(*row)
		}
	}

	h.detail.Open(c.Request.Context(), mode, row)
	h.respondDialog(c)
}

// UpdateForm godoc
// @Summary Replace the dialog's field values
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body service.AnnouncementForm true "Field values"
// @Success 200 {object} response.Envelope
// @Router /announcements/dialog/form [put]
func (h *AnnouncementHandler) UpdateForm(c *gin.Context) {
	var form service.AnnouncementForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid form payload"))
		return
	}
	h.detail.UpdateForm(form)
	response.JSON(c, http.StatusOK, gin.H{"dateRangeError": h.detail.Form().DateRangeError()})
}

// SaveDialog godoc
// @Summary Save the open dialog
// @Tags Announcements
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /announcements/dialog/save [post]
func (h *AnnouncementHandler) SaveDialog(c *gin.Context) {
	if err := h.detail.Save(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	h.respondDialog(c)
}

// CloseDialog godoc
// @Summary Close the dialog without saving
// @Tags Announcements
// @Router /announcements/dialog/close [post]
func (h *AnnouncementHandler) CloseDialog(c *gin.Context) {
	h.detail.Close()
	response.NoContent(c)
}

// Delete godoc
// @Summary Delete an announcement
// @Tags Announcements
// @Param id path string true "Announcement id"
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	h.search.RequestDelete(models.Announcement{ID: c.Param("id")})
	if err := h.search.ConfirmDelete(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Notices godoc
// @Summary Drain the notices queued for the shell
// @Tags Announcements
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /notices [get]
func (h *AnnouncementHandler) Notices(c *gin.Context) {
	if h.notices == nil {
		response.JSON(c, http.StatusOK, []notice.Notice{})
		return
	}
	drained := h.notices.Drain()
	if drained == nil {
		drained = []notice.Notice{}
	}
	response.JSON(c, http.StatusOK, drained)
}

func (h *AnnouncementHandler) respondDialog(c *gin.Context) {
	response.JSON(c, http.StatusOK, dialogSnapshot{
		Mode:     h.detail.Mode(),
		Open:     h.detail.IsOpen(),
		Enabled:  h.detail.Enabled(),
		Form:     h.detail.Form(),
		ErrorKey: h.detail.ErrorKey(),
	})
}
