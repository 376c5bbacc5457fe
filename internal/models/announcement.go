package models

import "time"

// AnnouncementType classifies an announcement.
type AnnouncementType string

const (
	AnnouncementTypeInfo        AnnouncementType = "INFO"
	AnnouncementTypeEvent       AnnouncementType = "EVENT"
	AnnouncementTypeMaintenance AnnouncementType = "SYSTEM_MAINTENANCE"
)

// AnnouncementPriority defines ordering for announcements.
type AnnouncementPriority string

const (
	AnnouncementPriorityImportant AnnouncementPriority = "IMPORTANT"
	AnnouncementPriorityNormal    AnnouncementPriority = "NORMAL"
	AnnouncementPriorityLow       AnnouncementPriority = "LOW"
)

// AnnouncementStatus is the lifecycle state of an announcement.
type AnnouncementStatus string

const (
	AnnouncementStatusActive   AnnouncementStatus = "ACTIVE"
	AnnouncementStatusInactive AnnouncementStatus = "INACTIVE"
)

// PriorityWeight maps a priority onto its sort weight. Unknown or unset
// priorities sort below LOW.
func PriorityWeight(p AnnouncementPriority) int {
	switch p {
	case AnnouncementPriorityImportant:
		return 3
	case AnnouncementPriorityNormal:
		return 2
	default:
		return 1
	}
}

// Announcement is a banner-style notice scoped to a workspace and/or product.
// Absence of both scopes means the announcement is global. ModificationCount
// is the optimistic-concurrency counter required by updates.
type Announcement struct {
	ID                string               `json:"id,omitempty"`
	ModificationCount int                  `json:"modificationCount"`
	Title             string               `json:"title"`
	Content           string               `json:"content,omitempty"`
	ProductName       string               `json:"productName,omitempty"`
	WorkspaceName     string               `json:"workspaceName,omitempty"`
	Type              AnnouncementType     `json:"type,omitempty"`
	Priority          AnnouncementPriority `json:"priority,omitempty"`
	Status            AnnouncementStatus   `json:"status,omitempty"`
	StartDate         *time.Time           `json:"startDate,omitempty"`
	EndDate           *time.Time           `json:"endDate,omitempty"`
}

// Copy returns a value clone with cleared identity so a subsequent save is
// routed as a create.
func (a Announcement) Copy() Announcement {
	clone := a
	clone.ID = ""
	clone.ModificationCount = 0
	return clone
}

// WorkspaceRef is a catalog entry of the portal's workspace inventory.
type WorkspaceRef struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
}

// ProductRef is a catalog entry of the portal's product inventory.
type ProductRef struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
}

// UsedScopes lists the workspace and product names referenced by at least one
// existing announcement.
type UsedScopes struct {
	WorkspaceNames []string `json:"workspaceNames"`
	ProductNames   []string `json:"productNames"`
}
