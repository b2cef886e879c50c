package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepositoryProducts(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	products := repo.Products(ctx)
	require.Len(t, products, 14, "Menu should have 14 products")

	t.Run("Per-category counts", func(t *testing.T) {
		counts := map[Category]int{}
		for _, p := range products {
			counts[p.Category]++
		}
		assert.Equal(t, 6, counts[CategoryCoffee])
		assert.Equal(t, 4, counts[CategoryMilkTea])
		assert.Equal(t, 4, counts[CategoryFrappe])
	})

	t.Run("Every product has all three sizes priced", func(t *testing.T) {
		for _, p := range products {
			for _, size := range Sizes() {
				price, ok := p.Prices[size]
				require.True(t, ok, "%s missing size %s", p.Name, size)
				assert.True(t, price.IsPositive(), "%s size %s should have a positive price", p.Name, size)
			}
		}
	})
}

func TestRepositoryProductsByCategory(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	t.Run("Only matching category, catalog order", func(t *testing.T) {
		coffee := repo.ProductsByCategory(ctx, CategoryCoffee)
		require.Len(t, coffee, 6)
		names := make([]string, 0, len(coffee))
		for _, p := range coffee {
			assert.Equal(t, CategoryCoffee, p.Category)
			names = append(names, p.Name)
		}
		assert.Equal(t, []string{"Americano", "Butterscotch", "Cappuccino", "Espresso", "Macchiato", "Mocha"}, names)
	})

	t.Run("Duplicate name across categories does not collide", func(t *testing.T) {
		frappe := repo.ProductsByCategory(ctx, CategoryFrappe)
		require.Len(t, frappe, 4)
		assert.Equal(t, "Mocha", frappe[3].Name)
		assert.Equal(t, CategoryFrappe, frappe[3].Category)
		assert.True(t, decimal.NewFromInt(60).Equal(frappe[3].Prices[SizeLarge]))
	})
}

func TestRepositoryAddons(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	addons := repo.Addons(ctx)
	require.Len(t, addons, 4, "Menu should have 4 add-ons")

	t.Run("Lookup by id", func(t *testing.T) {
		pearls := repo.AddonByID(ctx, "pearls")
		require.NotNil(t, pearls)
		assert.Equal(t, "Pearls", pearls.Name)
		assert.True(t, decimal.NewFromInt(5).Equal(pearls.Price))
	})

	t.Run("Unknown id returns nil", func(t *testing.T) {
		assert.Nil(t, repo.AddonByID(ctx, "extra_shot"))
	})
}
