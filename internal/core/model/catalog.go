package model

import "slices"

// Catalog is the ordered list of item templates offered for dragging.
type Catalog struct {
	items []Item
}

// NewCatalog creates a catalog holding a copy of items.
func NewCatalog(items []Item) Catalog {
	return Catalog{items: slices.Clone(items)}
}

// Items returns a copy of the catalog entries.
func (catalog Catalog) Items() []Item {
	return slices.Clone(catalog.items)
}

// Len returns the number of entries.
func (catalog Catalog) Len() int {
	return len(catalog.items)
}

// At returns the entry at index.
func (catalog Catalog) At(index int) (Item, bool) {
	if index < 0 || index >= len(catalog.items) {
		return Item{}, false
	}
	return catalog.items[index], true
}

// WithAddedItem appends item.
func (catalog Catalog) WithAddedItem(item Item) Catalog {
	items := slices.Clone(catalog.items)
	return Catalog{items: append(items, item)}
}

// WithRemovedItem drops every entry equal to item.
func (catalog Catalog) WithRemovedItem(item Item) Catalog {
	items := slices.DeleteFunc(slices.Clone(catalog.items), func(existing Item) bool {
		return existing == item
	})
	return Catalog{items: items}
}

// WithUpdatedItem replaces every entry equal to oldItem with newItem.
func (catalog Catalog) WithUpdatedItem(oldItem, newItem Item) Catalog {
	items := slices.Clone(catalog.items)
	for index, existing := range items {
		if existing == oldItem {
			items[index] = newItem
		}
	}
	return Catalog{items: items}
}
