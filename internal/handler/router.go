package handler

import "github.com/gin-gonic/gin"

// Register mounts the console surface onto the given group. Hosts embed the
// module by attaching this group wherever their routing puts it.
func Register(rg *gin.RouterGroup, announcements *AnnouncementHandler, metadata *MetadataHandler, widgets *WidgetHandler) {
	rg.POST("/announcements/search", announcements.Search)
	rg.POST("/announcements/search/reset", announcements.ResetCriteria)
	rg.POST("/announcements/dialog/save", announcements.SaveDialog)
	rg.POST("/announcements/dialog/close", announcements.CloseDialog)
	rg.POST("/announcements/dialog/:mode", announcements.OpenDialog)
	rg.PUT("/announcements/dialog/form", announcements.UpdateForm)
	rg.DELETE("/announcements/:id", announcements.Delete)
	rg.GET("/notices", announcements.Notices)

	rg.GET("/metadata", metadata.Get)

	rg.GET("/widgets/banner", widgets.Banner)
	rg.POST("/widgets/banner/:id/dismiss", widgets.Dismiss)
	rg.GET("/widgets/active-list", widgets.ActiveList)
}
