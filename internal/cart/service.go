package cart

import (
	"context"

	"kapehan/internal/catalog"
	"kapehan/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service defines the business logic for the cart.
type Service interface {
	Add(ctx context.Context, item Item)
	RemoveAt(ctx context.Context, index int) error
	Items(ctx context.Context) []Item
	Len(ctx context.Context) int
	Clear(ctx context.Context)
	ItemTotal(ctx context.Context, item Item) decimal.Decimal
	Total(ctx context.Context) decimal.Decimal
}

// service implements the Service interface
type service struct {
	repo        Repository
	catalogRepo catalog.Repository
}

// NewService creates a new cart service
func NewService(repo Repository, catalogRepo catalog.Repository) Service {
	return &service{repo: repo, catalogRepo: catalogRepo}
}

// Add appends a new line, even when an identical configuration already
// exists. Quantities below 1 are clamped, not rejected.
func (s *service) Add(ctx context.Context, item Item) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Add"),
		zap.String("product", item.Product.Name),
	)

	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.repo.Append(ctx, item)
	log.Info("cart line added",
		zap.Int("quantity", item.Quantity),
		zap.String("size", string(item.Size)),
		zap.Int("lines", s.repo.Len(ctx)))
}

// RemoveAt removes the line at index. Callers are responsible for asking
// the user first; this only guards the index.
func (s *service) RemoveAt(ctx context.Context, index int) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RemoveAt"),
		zap.Int("index", index),
	)

	if err := s.repo.RemoveAt(ctx, index); err != nil {
		log.Warn("cart line removal rejected", zap.Error(err))
		return err
	}

	log.Info("cart line removed", zap.Int("lines", s.repo.Len(ctx)))
	return nil
}

func (s *service) Items(ctx context.Context) []Item {
	return s.repo.Items(ctx)
}

func (s *service) Len(ctx context.Context) int {
	return s.repo.Len(ctx)
}

func (s *service) Clear(ctx context.Context) {
	s.repo.Clear(ctx)
	logger.FromCtx(ctx).Info("cart cleared",
		zap.String("layer", "service"),
		zap.String("method", "Clear"))
}

// ItemTotal prices one line: (base size price + matched add-on prices)
// multiplied by quantity. Unknown add-on ids contribute zero.
func (s *service) ItemTotal(ctx context.Context, item Item) decimal.Decimal {
	base := item.Product.Prices[item.Size]

	addonTotal := decimal.Zero
	for _, id := range item.Addons {
		if addon := s.catalogRepo.AddonByID(ctx, id); addon != nil {
			addonTotal = addonTotal.Add(addon.Price)
		}
	}

	return base.Add(addonTotal).Mul(decimal.NewFromInt(int64(item.Quantity)))
}

// Total sums ItemTotal over every line; zero for an empty cart.
func (s *service) Total(ctx context.Context) decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.repo.Items(ctx) {
		total = total.Add(s.ItemTotal(ctx, item))
	}
	return total
}
