package catalog

import (
	"context"

	"kapehan/internal/logger"

	"go.uber.org/zap"
)

// Service defines read access to the menu.
type Service interface {
	Products(ctx context.Context) []Product
	ProductsByCategory(ctx context.Context, category Category) []Product
	Addons(ctx context.Context) []Addon
	AddonByID(ctx context.Context, id string) *Addon
}

// service implements the Service interface
type service struct {
	repo Repository
}

// NewService creates a new catalog service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Products(ctx context.Context) []Product {
	return s.repo.Products(ctx)
}

// ProductsByCategory retrieves the grid for one category, in catalog order.
func (s *service) ProductsByCategory(ctx context.Context, category Category) []Product {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ProductsByCategory"),
		zap.String("category", string(category)),
	)

	products := s.repo.ProductsByCategory(ctx, category)

	log.Debug("category grid resolved", zap.Int("count", len(products)))
	return products
}

func (s *service) Addons(ctx context.Context) []Addon {
	return s.repo.Addons(ctx)
}

func (s *service) AddonByID(ctx context.Context, id string) *Addon {
	return s.repo.AddonByID(ctx, id)
}
