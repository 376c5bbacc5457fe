package dto

import (
	"strings"
	"time"

	"github.com/onecx/announcement-console/internal/models"
)

// workspaceAll is the pseudo value the workspace dropdown uses for "no
// workspace filter". It must never reach the backend.
const workspaceAll = "all"

// farFuture widens open or same-day ranges so searches still match
// future-dated records.
var farFuture = time.Date(3000, time.January, 1, 0, 0, 0, 0, time.UTC)

// SearchCriteria holds the filter fields of the announcement search panel.
// Priority, status and type are multi-select controls; the backend accepts a
// single value each, so the mapping narrows to the first selection.
type SearchCriteria struct {
	Title         string                        `json:"title,omitempty"`
	WorkspaceName string                        `json:"workspaceName,omitempty"`
	ProductName   string                        `json:"productName,omitempty"`
	Priorities    []models.AnnouncementPriority `json:"priorities,omitempty"`
	Statuses      []models.AnnouncementStatus   `json:"statuses,omitempty"`
	Types         []models.AnnouncementType     `json:"types,omitempty"`
	StartDateFrom *time.Time                    `json:"startDateFrom,omitempty"`
	StartDateTo   *time.Time                    `json:"startDateTo,omitempty"`
}

// SearchAnnouncementRequest is the search payload of the announcement
// backend. Empty fields are omitted rather than sent as empty strings.
type SearchAnnouncementRequest struct {
	Title         string                      `json:"title,omitempty"`
	WorkspaceName string                      `json:"workspaceName,omitempty"`
	ProductName   string                      `json:"productName,omitempty"`
	Priority      models.AnnouncementPriority `json:"priority,omitempty"`
	Status        models.AnnouncementStatus   `json:"status,omitempty"`
	Type          models.AnnouncementType     `json:"type,omitempty"`
	StartDateFrom *time.Time                  `json:"startDateFrom,omitempty"`
	StartDateTo   *time.Time                  `json:"startDateTo,omitempty"`
}

// ToRequest maps the entered criteria onto the backend payload.
func (c SearchCriteria) ToRequest() SearchAnnouncementRequest {
	req := SearchAnnouncementRequest{
		Title:       strings.TrimSpace(c.Title),
		ProductName: strings.TrimSpace(c.ProductName),
	}

	workspace := strings.TrimSpace(c.WorkspaceName)
	if workspace != "" && !strings.EqualFold(workspace, workspaceAll) {
		req.WorkspaceName = workspace
	}

	if len(c.Priorities) > 0 {
		req.Priority = c.Priorities[0]
	}
	if len(c.Statuses) > 0 {
		req.Status = c.Statuses[0]
	}
	if len(c.Types) > 0 {
		req.Type = c.Types[0]
	}

	if c.StartDateFrom != nil {
		from := *c.StartDateFrom
		req.StartDateFrom = &from
		if c.StartDateTo == nil || sameDay(from, *c.StartDateTo) {
			to := farFuture
			req.StartDateTo = &to
		} else {
			to := *c.StartDateTo
			req.StartDateTo = &to
		}
	}

	return req
}

// Reset restores all filter fields to their empty state.
func (c *SearchCriteria) Reset() {
	*c = SearchCriteria{}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
