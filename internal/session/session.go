package session

import (
	"context"

	"kapehan/internal/cart"
	"kapehan/internal/catalog"
	"kapehan/internal/logger"
	"kapehan/internal/order"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Confirmer answers the prompt shown before a destructive cart removal.
// The terminal UI backs it with an inline y/n question.
type Confirmer interface {
	Confirm(message string) bool
}

const removeLinePrompt = "Are you sure you want to remove this item from the cart?"

// Session is the root controller for one ordering session. It owns every
// piece of page state: the selected category, the configurator draft, the
// checkout draft and the active overlay. All mutations go through its
// methods; state lives for the run of the process.
type Session struct {
	id string

	catalogSvc catalog.Service
	cartSvc    cart.Service
	orderSvc   order.Service
	confirmer  Confirmer

	category catalog.Category
	overlay  Overlay

	// configurator draft
	selected *catalog.Product
	quantity int
	size     catalog.Size
	addons   map[string]struct{}

	// checkout draft, seeded from the committed details on OpenCart
	draft order.Details
}

func New(catalogSvc catalog.Service, cartSvc cart.Service, orderSvc order.Service, confirmer Confirmer) *Session {
	s := &Session{
		id:         uuid.NewString(),
		catalogSvc: catalogSvc,
		cartSvc:    cartSvc,
		orderSvc:   orderSvc,
		confirmer:  confirmer,
		category:   catalog.CategoryCoffee,
	}
	s.resetSelections()
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) withID(ctx context.Context) context.Context {
	return logger.WithSessionID(ctx, s.id)
}

// --- Catalog browsing ---

func (s *Session) Category() catalog.Category {
	return s.category
}

func (s *Session) SetCategory(ctx context.Context, category catalog.Category) {
	s.category = category
	logger.FromCtx(s.withID(ctx)).Info("category selected",
		zap.String("category", string(category)))
}

// VisibleProducts returns the grid for the selected category.
func (s *Session) VisibleProducts(ctx context.Context) []catalog.Product {
	return s.catalogSvc.ProductsByCategory(s.withID(ctx), s.category)
}

func (s *Session) Overlay() Overlay {
	return s.overlay
}

func (s *Session) Addons(ctx context.Context) []catalog.Addon {
	return s.catalogSvc.Addons(s.withID(ctx))
}

// --- Item configurator ---

// BeginConfigure opens the configurator for a product, resetting the
// draft to its defaults so nothing carries over from a prior session.
func (s *Session) BeginConfigure(ctx context.Context, product catalog.Product) {
	s.resetSelections()
	s.selected = &product
	s.overlay = OverlayConfigurator

	logger.FromCtx(s.withID(ctx)).Info("configuring product",
		zap.String("product", product.Name),
		zap.String("category", string(product.Category)))
}

func (s *Session) Selected() *catalog.Product {
	return s.selected
}

func (s *Session) Quantity() int {
	return s.quantity
}

// SetQuantity clamps anything below 1 up to 1.
func (s *Session) SetQuantity(quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.quantity = quantity
}

func (s *Session) Size() catalog.Size {
	return s.size
}

func (s *Session) SetSize(size catalog.Size) {
	s.size = size
}

func (s *Session) HasAddon(id string) bool {
	_, ok := s.addons[id]
	return ok
}

// ToggleAddon flips set membership: selecting an already-selected add-on
// removes it.
func (s *Session) ToggleAddon(id string) {
	if _, ok := s.addons[id]; ok {
		delete(s.addons, id)
		return
	}
	s.addons[id] = struct{}{}
}

// CancelConfigure discards the draft and closes the configurator without
// touching the cart.
func (s *Session) CancelConfigure(ctx context.Context) {
	s.selected = nil
	s.resetSelections()
	s.overlay = OverlayNone

	logger.FromCtx(s.withID(ctx)).Info("configuration cancelled")
}

// ConfirmConfigure appends the configured line to the cart and resets the
// draft. Without a selected product it only closes the overlay.
func (s *Session) ConfirmConfigure(ctx context.Context) {
	ctx = s.withID(ctx)

	if s.selected != nil {
		s.cartSvc.Add(ctx, cart.Item{
			Product:  *s.selected,
			Quantity: s.quantity,
			Size:     s.size,
			Addons:   s.selectedAddons(ctx),
		})
	}

	s.selected = nil
	s.resetSelections()
	s.overlay = OverlayNone
}

// selectedAddons flattens the draft set in catalog order, so lines render
// deterministically.
func (s *Session) selectedAddons(ctx context.Context) []string {
	if len(s.addons) == 0 {
		return nil
	}
	ids := make([]string, 0, len(s.addons))
	for _, addon := range s.catalogSvc.Addons(ctx) {
		if _, ok := s.addons[addon.ID]; ok {
			ids = append(ids, addon.ID)
		}
	}
	return ids
}

func (s *Session) resetSelections() {
	s.quantity = 1
	s.size = catalog.SizeMedium
	s.addons = make(map[string]struct{})
}

// --- Cart & checkout ---

// OpenCart opens the panel with a draft seeded from the last committed
// details, so cancelling never corrupts them.
func (s *Session) OpenCart(ctx context.Context) {
	s.draft = s.orderSvc.Details(s.withID(ctx))
	s.overlay = OverlayCart
}

func (s *Session) CloseCart(_ context.Context) {
	s.overlay = OverlayNone
}

func (s *Session) Draft() order.Details {
	return s.draft
}

// CommittedDetails returns the details committed by the last placement.
func (s *Session) CommittedDetails(ctx context.Context) order.Details {
	return s.orderSvc.Details(s.withID(ctx))
}

func (s *Session) SetCustomerName(name string) {
	s.draft.Name = name
}

func (s *Session) SetPhoneNumber(phone string) {
	s.draft.PhoneNumber = phone
}

func (s *Session) SetPaymentMode(mode order.PaymentMode) {
	s.draft.PaymentMode = mode
}

func (s *Session) SetPickupTime(minutes string) {
	s.draft.PickupTime = minutes
}

func (s *Session) CartItems(ctx context.Context) []cart.Item {
	return s.cartSvc.Items(s.withID(ctx))
}

func (s *Session) CartLen(ctx context.Context) int {
	return s.cartSvc.Len(s.withID(ctx))
}

// LineViews returns render-ready cart rows.
func (s *Session) LineViews(ctx context.Context, currency string) []*cart.LineView {
	return cart.MapItemsToView(s.withID(ctx), s.cartSvc, currency)
}

func (s *Session) CartTotal(ctx context.Context) string {
	return s.cartSvc.Total(s.withID(ctx)).StringFixed(2)
}

// RemoveLine asks the Confirmer before delegating to the cart; a declined
// prompt aborts with no state change.
func (s *Session) RemoveLine(ctx context.Context, index int) error {
	if !s.confirmer.Confirm(removeLinePrompt) {
		logger.FromCtx(s.withID(ctx)).Info("cart line removal declined",
			zap.Int("index", index))
		return nil
	}
	return s.cartSvc.RemoveAt(s.withID(ctx), index)
}

// PlaceOrder commits the draft, synthesizes the placement, closes the
// panel and resets the configurator defaults as a hygiene step.
func (s *Session) PlaceOrder(ctx context.Context) *order.Placement {
	placement := s.orderSvc.Place(s.withID(ctx), s.draft)

	s.overlay = OverlayNone
	s.selected = nil
	s.resetSelections()

	return placement
}

// --- Order status ---

func (s *Session) OpenStatus(_ context.Context) {
	s.overlay = OverlayStatus
}

func (s *Session) CloseStatus(_ context.Context) {
	s.overlay = OverlayNone
}

// Status returns the most recent placement, or nil when no order exists.
func (s *Session) Status(ctx context.Context) *order.Placement {
	return s.orderSvc.Current(s.withID(ctx))
}
