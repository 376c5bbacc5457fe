package dto

import (
	"time"

	"github.com/onecx/announcement-console/internal/models"
)

// SearchAnnouncementResponse is the stream-shaped answer of the backend
// search operations. An absent stream means no results.
type SearchAnnouncementResponse struct {
	Stream        []models.Announcement `json:"stream"`
	TotalElements int64                 `json:"totalElements,omitempty"`
}

// CreateAnnouncementRequest is the create payload of the backend.
type CreateAnnouncementRequest struct {
	Title         string                      `json:"title" validate:"required,min=2,max=255"`
	Content       string                      `json:"content,omitempty" validate:"max=1000"`
	ProductName   string                      `json:"productName,omitempty"`
	WorkspaceName string                      `json:"workspaceName,omitempty"`
	Type          models.AnnouncementType     `json:"type,omitempty" validate:"omitempty,announcementtype"`
	Priority      models.AnnouncementPriority `json:"priority,omitempty" validate:"omitempty,announcementpriority"`
	Status        models.AnnouncementStatus   `json:"status,omitempty" validate:"omitempty,announcementstatus"`
	StartDate     *time.Time                  `json:"startDate" validate:"required"`
	EndDate       *time.Time                  `json:"endDate,omitempty"`
}

// UpdateAnnouncementRequest is the update payload; ModificationCount carries
// the optimistic-concurrency counter of the record being replaced.
type UpdateAnnouncementRequest struct {
	ModificationCount int                         `json:"modificationCount"`
	Title             string                      `json:"title" validate:"required,min=2,max=255"`
	Content           string                      `json:"content,omitempty" validate:"max=1000"`
	ProductName       string                      `json:"productName,omitempty"`
	WorkspaceName     string                      `json:"workspaceName,omitempty"`
	Type              models.AnnouncementType     `json:"type,omitempty" validate:"omitempty,announcementtype"`
	Priority          models.AnnouncementPriority `json:"priority,omitempty" validate:"omitempty,announcementpriority"`
	Status            models.AnnouncementStatus   `json:"status,omitempty" validate:"omitempty,announcementstatus"`
	StartDate         *time.Time                  `json:"startDate" validate:"required"`
	EndDate           *time.Time                  `json:"endDate,omitempty"`
}

// ScopeOption is a dropdown entry of the metadata aggregate. Label falls back
// to the raw name when the catalog no longer knows the entry.
type ScopeOption struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Metadata combines the full workspace/product catalogs with the subset
// actually referenced by existing announcements.
type Metadata struct {
	AllWorkspaces  []ScopeOption `json:"allWorkspaces"`
	UsedWorkspaces []ScopeOption `json:"usedWorkspaces"`
	AllProducts    []ScopeOption `json:"allProducts"`
	UsedProducts   []ScopeOption `json:"usedProducts"`
}
