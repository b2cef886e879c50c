package catalog

import "github.com/shopspring/decimal"

type Category string

const (
	CategoryCoffee  Category = "Coffee"
	CategoryMilkTea Category = "Milk Tea"
	CategoryFrappe  Category = "Frappe"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{CategoryCoffee, CategoryMilkTea, CategoryFrappe}
}

type Size string

const (
	SizeSmall  Size = "S"
	SizeMedium Size = "M"
	SizeLarge  Size = "L"
)

// Sizes returns every cup size in display order.
func Sizes() []Size {
	return []Size{SizeSmall, SizeMedium, SizeLarge}
}

type Product struct {
	Name     string                   `json:"name"`
	Image    string                   `json:"image"`
	Category Category                 `json:"category"`
	Prices   map[Size]decimal.Decimal `json:"prices"`
}

type Addon struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}
