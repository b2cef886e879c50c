package cart

import "kapehan/internal/catalog"

// Item is one configured cart line. Lines are append-only: once created
// they can only be removed, never edited in place.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
	Size     catalog.Size    `json:"size"`
	Addons   []string        `json:"addons"`
}
