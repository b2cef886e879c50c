package ui

import (
	"fmt"
	"strconv"
	"strings"

	"kapehan/internal/catalog"
	"kapehan/internal/order"
	"kapehan/internal/session"
	"kapehan/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return "Salamat! Come again.\n"
	}

	switch m.sess.Overlay() {
	case session.OverlayConfigurator:
		return m.viewConfigurator()
	case session.OverlayCart:
		return m.viewCart()
	case session.OverlayStatus:
		return m.viewStatus()
	default:
		return m.viewGrid()
	}
}

func (m Model) viewGrid() string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s\n\n", m.storeName)
	fmt.Fprintf(b, "Category: < %s >\n\n", m.sess.Category())

	for i, p := range m.sess.VisibleProducts(m.ctx) {
		marker := " "
		if i == m.productCursor {
			marker = ">"
		}
		fmt.Fprintf(b, " %s %-13s %s | %s | %s\n", marker, p.Name,
			utils.FormatAmount(m.currency, p.Prices[catalog.SizeSmall]),
			utils.FormatAmount(m.currency, p.Prices[catalog.SizeMedium]),
			utils.FormatAmount(m.currency, p.Prices[catalog.SizeLarge]))
	}

	fmt.Fprintln(b, "\nControls: left/right category, up/down select, enter add to cart, c cart, o status, q quit")
	return b.String()
}

func (m Model) viewConfigurator() string {
	product := m.sess.Selected()
	if product == nil {
		return ""
	}

	b := &strings.Builder{}
	fmt.Fprintf(b, "%s\n\n", product.Name)
	fmt.Fprintf(b, "Quantity: %d\n\n", m.sess.Quantity())

	b.WriteString("Size:")
	for _, size := range catalog.Sizes() {
		if m.sess.Size() == size {
			fmt.Fprintf(b, " [%s]", size)
		} else {
			fmt.Fprintf(b, "  %s ", size)
		}
	}
	b.WriteString("\n\nAdd-ons:\n")

	for i, addon := range m.sess.Addons(m.ctx) {
		mark := "[ ]"
		if m.sess.HasAddon(addon.ID) {
			mark = "[x]"
		}
		fmt.Fprintf(b, " %d %s %s (+%s)\n", i+1, mark, addon.Name,
			utils.FormatAmount(m.currency, addon.Price))
	}

	fmt.Fprintln(b, "\nControls: +/- quantity, s/m/l size, 1-4 add-ons, enter add to cart, esc cancel")
	return b.String()
}

func (m Model) viewCart() string {
	b := &strings.Builder{}
	b.WriteString("Your Cart\n\n")

	views := m.sess.LineViews(m.ctx, m.currency)
	if len(views) == 0 {
		b.WriteString("  (no items yet)\n")
	}
	for _, v := range views {
		marker := " "
		if v.Index == m.lineCursor {
			marker = ">"
		}
		fmt.Fprintf(b, " %s %s (%s) x%d\n", marker, v.Name, v.Size, v.Quantity)
		fmt.Fprintf(b, "     Add-ons: %s\n", v.Addons)
		fmt.Fprintf(b, "     Item Total: %s\n", v.Total)
	}

	fmt.Fprintf(b, "\nTotal: %s%s\n\n", m.currency, m.sess.CartTotal(m.ctx))

	draft := m.sess.Draft()
	fmt.Fprintf(b, " %s Name: %s\n", m.focusMarker(fieldName), draft.Name)
	fmt.Fprintf(b, " %s Phone Number: %s\n", m.focusMarker(fieldPhone), draft.PhoneNumber)
	fmt.Fprintf(b, " %s Payment Mode: %s\n", m.focusMarker(fieldPayment), draft.PaymentMode)
	fmt.Fprintf(b, " %s Pickup Time: %s minutes\n", m.focusMarker(fieldPickup), draft.PickupTime)

	if m.pendingRemove >= 0 {
		b.WriteString("\nRemove this item from the cart? (y/n)\n")
	} else {
		fmt.Fprintln(b, "\nControls: up/down select line, x remove, tab fields, left/right change value, enter place order, esc close")
	}
	return b.String()
}

func (m Model) focusMarker(f field) string {
	if m.focus == f {
		return ">"
	}
	return " "
}

func (m Model) viewStatus() string {
	b := &strings.Builder{}
	b.WriteString("Order Status\n\n")

	status := m.sess.Status(m.ctx)
	if status == nil {
		b.WriteString("No active order found.\n")
	} else {
		fmt.Fprintf(b, "Order ID: %s\n", status.OrderID)
		fmt.Fprintf(b, "Status: %s\n", status.Status)
		fmt.Fprintf(b, "Estimated Time: %d minutes\n\n", status.EstimatedTime)

		steps := order.InjectVariables(
			order.GetInstructions(m.sess.CommittedDetails(m.ctx).PaymentMode),
			order.InstructionVars{
				"order_id": status.OrderID,
				"minutes":  strconv.Itoa(status.EstimatedTime),
			},
		)
		for _, step := range steps {
			fmt.Fprintf(b, " - %s\n", step)
		}
	}

	fmt.Fprintln(b, "\nControls: esc close")
	return b.String()
}
