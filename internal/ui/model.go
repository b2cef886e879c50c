package ui

import (
	"context"

	"kapehan/internal/catalog"
	"kapehan/internal/order"
	"kapehan/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// field is the focused checkout input inside the cart overlay.
type field int

const (
	fieldNone field = iota
	fieldName
	fieldPhone
	fieldPayment
	fieldPickup
)

type Config struct {
	StoreName string
	Currency  string
}

// Model renders one ordering session. Every transition is a synchronous
// key handler; there are no commands, timers or background messages.
type Model struct {
	ctx      context.Context
	sess     *session.Session
	approval *Approval

	storeName string
	currency  string

	productCursor int
	lineCursor    int
	focus         field
	pendingRemove int
	quitting      bool
}

func New(sess *session.Session, approval *Approval, cfg Config) Model {
	return Model{
		ctx:           context.Background(),
		sess:          sess,
		approval:      approval,
		storeName:     cfg.StoreName,
		currency:      cfg.Currency,
		pendingRemove: -1,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.sess.Overlay() {
	case session.OverlayConfigurator:
		return m.updateConfigurator(key), nil
	case session.OverlayCart:
		return m.updateCart(key), nil
	case session.OverlayStatus:
		return m.updateStatus(key), nil
	default:
		return m.updateGrid(key)
	}
}

func (m Model) updateGrid(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	products := m.sess.VisibleProducts(m.ctx)

	switch key.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "up":
		if m.productCursor > 0 {
			m.productCursor--
		}
	case "down":
		if m.productCursor < len(products)-1 {
			m.productCursor++
		}
	case "left":
		m.cycleCategory(-1)
	case "right":
		m.cycleCategory(1)
	case "enter":
		if m.productCursor < len(products) {
			m.sess.BeginConfigure(m.ctx, products[m.productCursor])
		}
	case "c":
		m.sess.OpenCart(m.ctx)
		m.lineCursor = 0
		m.focus = fieldNone
		m.pendingRemove = -1
	case "o":
		m.sess.OpenStatus(m.ctx)
	}
	return m, nil
}

func (m *Model) cycleCategory(delta int) {
	cats := catalog.Categories()
	idx := 0
	for i, c := range cats {
		if c == m.sess.Category() {
			idx = i
		}
	}
	idx = (idx + delta + len(cats)) % len(cats)
	m.sess.SetCategory(m.ctx, cats[idx])
	m.productCursor = 0
}

func (m Model) updateConfigurator(key tea.KeyMsg) Model {
	switch key.String() {
	case "esc":
		m.sess.CancelConfigure(m.ctx)
	case "enter":
		m.sess.ConfirmConfigure(m.ctx)
	case "up", "+":
		m.sess.SetQuantity(m.sess.Quantity() + 1)
	case "down", "-":
		m.sess.SetQuantity(m.sess.Quantity() - 1)
	case "s":
		m.sess.SetSize(catalog.SizeSmall)
	case "m":
		m.sess.SetSize(catalog.SizeMedium)
	case "l":
		m.sess.SetSize(catalog.SizeLarge)
	case "1", "2", "3", "4":
		addons := m.sess.Addons(m.ctx)
		idx := int(key.String()[0] - '1')
		if idx < len(addons) {
			m.sess.ToggleAddon(addons[idx].ID)
		}
	}
	return m
}

func (m Model) updateCart(key tea.KeyMsg) Model {
	// The removal prompt takes over until answered.
	if m.pendingRemove >= 0 {
		switch key.String() {
		case "y", "n":
			m.approval.grant(key.String() == "y")
			_ = m.sess.RemoveLine(m.ctx, m.pendingRemove)
			m.pendingRemove = -1
			if n := m.sess.CartLen(m.ctx); m.lineCursor >= n {
				m.lineCursor = max(0, n-1)
			}
		case "esc":
			m.pendingRemove = -1
		}
		return m
	}

	switch m.focus {
	case fieldName, fieldPhone:
		return m.updateTextField(key)
	case fieldPayment:
		switch key.String() {
		case "left", "right":
			m.togglePayment()
		case "tab":
			m.focus = fieldPickup
		case "esc":
			m.focus = fieldNone
		case "enter":
			return m.placeOrder()
		}
		return m
	case fieldPickup:
		switch key.String() {
		case "left":
			m.cyclePickup(-1)
		case "right":
			m.cyclePickup(1)
		case "tab", "esc":
			m.focus = fieldNone
		case "enter":
			return m.placeOrder()
		}
		return m
	}

	switch key.String() {
	case "esc":
		m.sess.CloseCart(m.ctx)
	case "tab":
		m.focus = fieldName
	case "up":
		if m.lineCursor > 0 {
			m.lineCursor--
		}
	case "down":
		if m.lineCursor < m.sess.CartLen(m.ctx)-1 {
			m.lineCursor++
		}
	case "x":
		if m.sess.CartLen(m.ctx) > 0 {
			m.pendingRemove = m.lineCursor
		}
	case "enter":
		return m.placeOrder()
	}
	return m
}

// updateTextField routes keystrokes into the focused name/phone input.
func (m Model) updateTextField(key tea.KeyMsg) Model {
	switch key.Type {
	case tea.KeyRunes:
		m.setFocused(m.focused() + string(key.Runes))
	case tea.KeySpace:
		m.setFocused(m.focused() + " ")
	case tea.KeyBackspace:
		if runes := []rune(m.focused()); len(runes) > 0 {
			m.setFocused(string(runes[:len(runes)-1]))
		}
	case tea.KeyTab:
		m.focus++
	case tea.KeyEsc:
		m.focus = fieldNone
	case tea.KeyEnter:
		return m.placeOrder()
	}
	return m
}

func (m Model) focused() string {
	if m.focus == fieldName {
		return m.sess.Draft().Name
	}
	return m.sess.Draft().PhoneNumber
}

func (m Model) setFocused(value string) {
	if m.focus == fieldName {
		m.sess.SetCustomerName(value)
		return
	}
	m.sess.SetPhoneNumber(value)
}

func (m Model) togglePayment() {
	if m.sess.Draft().PaymentMode == order.PaymentCash {
		m.sess.SetPaymentMode(order.PaymentCard)
		return
	}
	m.sess.SetPaymentMode(order.PaymentCash)
}

func (m Model) cyclePickup(delta int) {
	times := order.PickupTimes
	idx := 0
	for i, t := range times {
		if t == m.sess.Draft().PickupTime {
			idx = i
		}
	}
	idx = (idx + delta + len(times)) % len(times)
	m.sess.SetPickupTime(times[idx])
}

func (m Model) placeOrder() Model {
	m.sess.PlaceOrder(m.ctx)
	m.focus = fieldNone
	m.lineCursor = 0
	return m
}

func (m Model) updateStatus(key tea.KeyMsg) Model {
	switch key.String() {
	case "esc", "enter":
		m.sess.CloseStatus(m.ctx)
	}
	return m
}
