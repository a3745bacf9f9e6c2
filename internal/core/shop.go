package core

// ItemKind enumerates the effects a shop item can have.
type ItemKind string

// ItemKindColor changes the buyer's display color to the item's value.
const ItemKindColor ItemKind = "color"

// ShopItem is one purchasable entry in the catalog. Items are immutable and
// defined once at hub construction.
type ShopItem struct {
	ID    string
	Name  string
	Cost  int
	Kind  ItemKind
	Value string
}

// Catalog is the static, process-lifetime table of purchasable items.
type Catalog struct {
	items map[string]ShopItem
	order []string
}

// NewCatalog builds a catalog from items, preserving their order for listing.
func NewCatalog(items []ShopItem) *Catalog {
	c := &Catalog{items: make(map[string]ShopItem, len(items))}
	for _, item := range items {
		c.items[item.ID] = item
		c.order = append(c.order, item.ID)
	}
	return c
}

// DefaultCatalog returns the built-in color catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog([]ShopItem{
		{ID: "color_red", Name: "Crimson Red", Cost: 10, Kind: ItemKindColor, Value: "#e74c3c"},
		{ID: "color_blue", Name: "Royal Blue", Cost: 10, Kind: ItemKindColor, Value: "#3498db"},
		{ID: "color_green", Name: "Emerald Green", Cost: 10, Kind: ItemKindColor, Value: "#2ecc71"},
		{ID: "color_orange", Name: "Sunset Orange", Cost: 15, Kind: ItemKindColor, Value: "#e67e22"},
		{ID: "color_purple", Name: "Deep Purple", Cost: 15, Kind: ItemKindColor, Value: "#9b59b6"},
		{ID: "color_gold", Name: "Gold", Cost: 25, Kind: ItemKindColor, Value: "#f1c40f"},
	})
}

// Item looks up an item by id.
func (c *Catalog) Item(id string) (ShopItem, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Items returns the catalog entries in definition order.
func (c *Catalog) Items() []ShopItem {
	items := make([]ShopItem, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, c.items[id])
	}
	return items
}
