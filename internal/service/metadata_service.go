package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/onecx/announcement-console/internal/dto"
	"github.com/onecx/announcement-console/internal/models"
)

type metadataClient interface {
	GetAllWorkspaceNames(ctx context.Context) ([]models.WorkspaceRef, error)
	GetAllProductNames(ctx context.Context) ([]models.ProductRef, error)
	GetAnnouncementScopes(ctx context.Context) (*models.UsedScopes, error)
}

// MetadataService aggregates the workspace/product catalogs with the names
// actually referenced by existing announcements, for the filter dropdowns.
type MetadataService struct {
	client metadataClient
	logger *zap.Logger
}

// NewMetadataService constructs the loader.
func NewMetadataService(client metadataClient, logger *zap.Logger) *MetadataService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MetadataService{client: client, logger: logger}
}

// Load fetches the three sources and combines them. Each fetch fails
// independently: a failure is logged and yields an empty list for that one
// source without blocking the other two. Referenced names missing from the
// catalog keep their raw name as label, which covers announcements pointing
// at workspaces or products that no longer exist.
func (s *MetadataService) Load(ctx context.Context) dto.Metadata {
	workspaces, err := s.client.GetAllWorkspaceNames(ctx)
	if err != nil {
		s.logger.Error("workspace catalog fetch failed", zap.Error(err))
		workspaces = nil
	}

	products, err := s.client.GetAllProductNames(ctx)
	if err != nil {
		s.logger.Error("product catalog fetch failed", zap.Error(err))
		products = nil
	}

	scopes, err := s.client.GetAnnouncementScopes(ctx)
	if err != nil {
		s.logger.Error("announcement scopes fetch failed", zap.Error(err))
		scopes = &models.UsedScopes{}
	}

	workspaceLabels := make(map[string]string, len(workspaces))
	allWorkspaces := make([]dto.ScopeOption, 0, len(workspaces))
	for _, w := range workspaces {
		workspaceLabels[w.Name] = labelOf(w.Name, w.DisplayName)
		allWorkspaces = append(allWorkspaces, dto.ScopeOption{Name: w.Name, Label: labelOf(w.Name, w.DisplayName)})
	}

	productLabels := make(map[string]string, len(products))
	allProducts := make([]dto.ScopeOption, 0, len(products))
	for _, p := range products {
		productLabels[p.Name] = labelOf(p.Name, p.DisplayName)
		allProducts = append(allProducts, dto.ScopeOption{Name: p.Name, Label: labelOf(p.Name, p.DisplayName)})
	}

	return dto.Metadata{
		AllWorkspaces:  allWorkspaces,
		UsedWorkspaces: resolveOptions(scopes.WorkspaceNames, workspaceLabels),
		AllProducts:    allProducts,
		UsedProducts:   resolveOptions(scopes.ProductNames, productLabels),
	}
}

func resolveOptions(names []string, labels map[string]string) []dto.ScopeOption {
	options := make([]dto.ScopeOption, 0, len(names))
	for _, name := range names {
		label, ok := labels[name]
		if !ok {
			label = name
		}
		options = append(options, dto.ScopeOption{Name: name, Label: label})
	}
	return options
}

func labelOf(name, displayName string) string {
	if displayName != "" {
		return displayName
	}
	return name
}
