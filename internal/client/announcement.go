package client

import (
	"context"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/onecx/announcement-console/internal/dto"
	"github.com/onecx/announcement-console/internal/models"
)

// SearchAnnouncements runs the admin search.
func (c *Client) SearchAnnouncements(ctx context.Context, req dto.SearchAnnouncementRequest) (*dto.SearchAnnouncementResponse, error) {
	out := &dto.SearchAnnouncementResponse{}
	if err := c.do(ctx, "searchAnnouncements", resty.MethodPost, "/announcements/search", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// SearchAnnouncementBanners runs the banner-scoped search used by the
// embeddable widgets.
func (c *Client) SearchAnnouncementBanners(ctx context.Context, req dto.SearchAnnouncementRequest) (*dto.SearchAnnouncementResponse, error) {
	out := &dto.SearchAnnouncementResponse{}
	if err := c.do(ctx, "searchAnnouncementBanners", resty.MethodPost, "/announcements/banner/search", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAnnouncementByID fetches one full record.
func (c *Client) GetAnnouncementByID(ctx context.Context, id string) (*models.Announcement, error) {
	out := &models.Announcement{}
	if err := c.do(ctx, "getAnnouncementById", resty.MethodGet, "/announcements/"+url.PathEscape(id), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAnnouncement creates a record and returns the stored version.
func (c *Client) CreateAnnouncement(ctx context.Context, req dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	out := &models.Announcement{}
	if err := c.do(ctx, "createAnnouncement", resty.MethodPost, "/announcements", req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateAnnouncementByID replaces a record; the request carries the
// modification count the backend checks for concurrent edits.
func (c *Client) UpdateAnnouncementByID(ctx context.Context, id string, req dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	out := &models.Announcement{}
	if err := c.do(ctx, "updateAnnouncementById", resty.MethodPut, "/announcements/"+url.PathEscape(id), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteAnnouncementByID removes a record.
func (c *Client) DeleteAnnouncementByID(ctx context.Context, id string) error {
	return c.do(ctx, "deleteAnnouncementById", resty.MethodDelete, "/announcements/"+url.PathEscape(id), nil, nil)
}

// GetAllWorkspaceNames lists the workspace catalog.
func (c *Client) GetAllWorkspaceNames(ctx context.Context) ([]models.WorkspaceRef, error) {
	var out []models.WorkspaceRef
	if err := c.do(ctx, "getAllWorkspaceNames", resty.MethodGet, "/workspaces", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAllProductNames lists the product catalog.
func (c *Client) GetAllProductNames(ctx context.Context) ([]models.ProductRef, error) {
	var out []models.ProductRef
	if err := c.do(ctx, "getAllProductNames", resty.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAnnouncementScopes lists the workspace and product names referenced by
// at least one existing announcement.
func (c *Client) GetAnnouncementScopes(ctx context.Context) (*models.UsedScopes, error) {
	out := &models.UsedScopes{}
	if err := c.do(ctx, "getAllProductsWithAnnouncements", resty.MethodGet, "/announcements/scopes", nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
