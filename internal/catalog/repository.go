package catalog

import "context"

type Repository interface {
	Products(ctx context.Context) []Product
	ProductsByCategory(ctx context.Context, category Category) []Product
	Addons(ctx context.Context) []Addon
	AddonByID(ctx context.Context, id string) *Addon
}

// repository serves the fixed menu from memory. Reference data only,
// nothing here mutates after construction.
type repository struct {
	products []Product
	addons   []Addon
	addonIdx map[string]Addon
}

func NewRepository() Repository {
	idx := make(map[string]Addon, len(defaultAddons))
	for _, a := range defaultAddons {
		idx[a.ID] = a
	}

	return &repository{
		products: defaultProducts,
		addons:   defaultAddons,
		addonIdx: idx,
	}
}

func (r *repository) Products(_ context.Context) []Product {
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out
}

// ProductsByCategory preserves catalog order.
func (r *repository) ProductsByCategory(_ context.Context, category Category) []Product {
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (r *repository) Addons(_ context.Context) []Addon {
	out := make([]Addon, len(r.addons))
	copy(out, r.addons)
	return out
}

// AddonByID returns nil for ids not on the menu.
func (r *repository) AddonByID(_ context.Context, id string) *Addon {
	if a, ok := r.addonIdx[id]; ok {
		return &a
	}
	return nil
}
