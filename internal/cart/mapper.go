package cart

import (
	"context"
	"strings"

	"kapehan/internal/utils"
)

// LineView is a render-ready cart row.
type LineView struct {
	Index    int
	Name     string
	Size     string
	Quantity int
	Addons   string
	Total    string
}

// MapItemsToView flattens the cart into display rows. Add-ons render as a
// comma-joined id list, "None" when the line has none.
func MapItemsToView(ctx context.Context, svc Service, currency string) []*LineView {
	items := svc.Items(ctx)

	views := make([]*LineView, 0, len(items))
	for i, item := range items {
		addons := strings.Join(item.Addons, ", ")
		if addons == "" {
			addons = "None"
		}

		views = append(views, &LineView{
			Index:    i,
			Name:     item.Product.Name,
			Size:     string(item.Size),
			Quantity: item.Quantity,
			Addons:   addons,
			Total:    utils.FormatAmount(currency, svc.ItemTotal(ctx, item)),
		})
	}

	return views
}
