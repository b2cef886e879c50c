package order

import (
	"context"
	"testing"

	"kapehan/internal/cart"
	"kapehan/internal/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (Service, cart.Service, catalog.Repository) {
	catalogRepo := catalog.NewRepository()
	cartSvc := cart.NewService(cart.NewRepository(), catalogRepo)
	return NewService(cartSvc), cartSvc, catalogRepo
}

func espresso(t *testing.T, repo catalog.Repository) catalog.Product {
	t.Helper()
	for _, p := range repo.ProductsByCategory(context.Background(), catalog.CategoryCoffee) {
		if p.Name == "Espresso" {
			return p
		}
	}
	t.Fatal("Espresso not found")
	return catalog.Product{}
}

func TestPlace(t *testing.T) {
	ctx := context.Background()

	t.Run("Synthesizes a Preparing placement and clears the cart", func(t *testing.T) {
		svc, cartSvc, catalogRepo := newTestService()

		cartSvc.Add(ctx, cart.Item{
			Product:  espresso(t, catalogRepo),
			Quantity: 2,
			Size:     catalog.SizeLarge,
			Addons:   []string{"pearls", "whipped_cream"},
		})
		require.True(t, decimal.NewFromInt(116).Equal(cartSvc.Total(ctx)))

		placement := svc.Place(ctx, Details{
			Name:        "Ana",
			PhoneNumber: "09171234567",
			PaymentMode: PaymentCash,
			PickupTime:  "10",
		})

		require.NotNil(t, placement)
		assert.Len(t, placement.OrderID, 9)
		assert.Equal(t, StatusPreparing, placement.Status)
		assert.Equal(t, 10, placement.EstimatedTime)

		assert.Equal(t, 0, cartSvc.Len(ctx))
		assert.True(t, decimal.Zero.Equal(cartSvc.Total(ctx)))
	})

	t.Run("Commits the draft details", func(t *testing.T) {
		svc, _, _ := newTestService()

		details := Details{Name: "Ben", PhoneNumber: "555", PaymentMode: PaymentCard, PickupTime: "20"}
		svc.Place(ctx, details)

		assert.Equal(t, details, svc.Details(ctx))
	})

	t.Run("Empty cart and empty contact fields still place", func(t *testing.T) {
		svc, cartSvc, _ := newTestService()

		placement := svc.Place(ctx, Details{PaymentMode: PaymentCash, PickupTime: "5"})

		require.NotNil(t, placement)
		assert.Equal(t, StatusPreparing, placement.Status)
		assert.Equal(t, 5, placement.EstimatedTime)
		assert.Equal(t, 0, cartSvc.Len(ctx))
	})

	t.Run("New placement replaces the previous one", func(t *testing.T) {
		svc, _, _ := newTestService()

		first := svc.Place(ctx, Details{PaymentMode: PaymentCash, PickupTime: "5"})
		second := svc.Place(ctx, Details{PaymentMode: PaymentCard, PickupTime: "30"})

		current := svc.Current(ctx)
		require.NotNil(t, current)
		assert.Equal(t, second.OrderID, current.OrderID)
		assert.NotEqual(t, first.OrderID, current.OrderID)
		assert.Equal(t, 30, current.EstimatedTime)
	})

	t.Run("Unparsable pickup time falls back to the default", func(t *testing.T) {
		svc, _, _ := newTestService()

		placement := svc.Place(ctx, Details{PaymentMode: PaymentCash, PickupTime: "soon"})

		assert.Equal(t, 15, placement.EstimatedTime)
	})
}

func TestCurrentWithoutOrder(t *testing.T) {
	svc, _, _ := newTestService()
	assert.Nil(t, svc.Current(context.Background()))
}

func TestDefaultDetails(t *testing.T) {
	d := DefaultDetails()
	assert.Empty(t, d.Name)
	assert.Empty(t, d.PhoneNumber)
	assert.Equal(t, PaymentCash, d.PaymentMode)
	assert.Equal(t, DefaultPickupTime, d.PickupTime)
}
