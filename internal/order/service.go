package order

import (
	"context"
	"strconv"

	"kapehan/internal/cart"
	"kapehan/internal/logger"
	"kapehan/internal/utils"

	"go.uber.org/zap"
)

type Service interface {
	Place(ctx context.Context, details Details) *Placement
	Details(ctx context.Context) Details
	Current(ctx context.Context) *Placement
}

// service holds the committed checkout details and the latest placement.
type service struct {
	cartSvc   cart.Service
	details   Details
	placement *Placement
}

func NewService(cartSvc cart.Service) Service {
	return &service{
		cartSvc: cartSvc,
		details: DefaultDetails(),
	}
}

// Place commits the draft details, synthesizes a fresh Preparing placement
// and clears the cart. No validation happens here: empty name, empty phone
// and even an empty cart all place an order.
func (s *service) Place(ctx context.Context, details Details) *Placement {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Place"),
	)

	s.details = details

	minutes, err := strconv.Atoi(details.PickupTime)
	if err != nil {
		// Only reachable through direct API misuse; the UI offers the
		// enumerated windows.
		minutes, _ = strconv.Atoi(DefaultPickupTime)
	}

	s.placement = &Placement{
		OrderID:       utils.GenerateOrderID(),
		Status:        StatusPreparing,
		EstimatedTime: minutes,
	}

	total := s.cartSvc.Total(ctx)
	s.cartSvc.Clear(ctx)

	log.Info("order placed",
		zap.String("order_id", s.placement.OrderID),
		zap.String("payment_mode", string(details.PaymentMode)),
		zap.Int("estimated_minutes", minutes),
		zap.String("total", total.StringFixed(2)))

	return s.placement
}

// Details returns the last committed checkout details, used to seed the
// next checkout draft.
func (s *service) Details(_ context.Context) Details {
	return s.details
}

// Current returns the most recent placement, or nil when no order exists.
func (s *service) Current(_ context.Context) *Placement {
	return s.placement
}
