package catalog

import "github.com/shopspring/decimal"

func priceTable(s, m, l int64) map[Size]decimal.Decimal {
	return map[Size]decimal.Decimal{
		SizeSmall:  decimal.NewFromInt(s),
		SizeMedium: decimal.NewFromInt(m),
		SizeLarge:  decimal.NewFromInt(l),
	}
}

// The fixed menu. Product names may repeat across categories ("Mocha");
// the category filter keeps display unambiguous.
var defaultProducts = []Product{
	{Name: "Americano", Image: "americano.png", Category: CategoryCoffee, Prices: priceTable(28, 38, 48)},
	{Name: "Butterscotch", Image: "butterscotch.png", Category: CategoryCoffee, Prices: priceTable(28, 38, 48)},
	{Name: "Cappuccino", Image: "cappucino.png", Category: CategoryCoffee, Prices: priceTable(28, 38, 48)},
	{Name: "Espresso", Image: "espresso.png", Category: CategoryCoffee, Prices: priceTable(28, 38, 48)},
	{Name: "Macchiato", Image: "machiatto.png", Category: CategoryCoffee, Prices: priceTable(28, 38, 48)},
	{Name: "Mocha", Image: "mocha.png", Category: CategoryCoffee, Prices: priceTable(28, 38, 48)},
	{Name: "Classic", Image: "butterscotch.png", Category: CategoryMilkTea, Prices: priceTable(28, 38, 48)},
	{Name: "Taro", Image: "butterscotch.png", Category: CategoryMilkTea, Prices: priceTable(28, 38, 48)},
	{Name: "Brown Sugar", Image: "butterscotch.png", Category: CategoryMilkTea, Prices: priceTable(28, 38, 48)},
	{Name: "Matcha", Image: "butterscotch.png", Category: CategoryMilkTea, Prices: priceTable(28, 38, 48)},
	{Name: "Chocolate", Image: "butterscotch.png", Category: CategoryFrappe, Prices: priceTable(40, 50, 60)},
	{Name: "Caramel", Image: "butterscotch.png", Category: CategoryFrappe, Prices: priceTable(40, 50, 60)},
	{Name: "Vanilla", Image: "butterscotch.png", Category: CategoryFrappe, Prices: priceTable(40, 50, 60)},
	{Name: "Mocha", Image: "butterscotch.png", Category: CategoryFrappe, Prices: priceTable(40, 50, 60)},
}

var defaultAddons = []Addon{
	{ID: "pearls", Name: "Pearls", Price: decimal.NewFromInt(5)},
	{ID: "whipped_cream", Name: "Whipped Cream", Price: decimal.NewFromInt(5)},
	{ID: "cream_cheese", Name: "Cream Cheese", Price: decimal.NewFromInt(5)},
	{ID: "nata_jelly", Name: "Nata Jelly", Price: decimal.NewFromInt(5)},
}
