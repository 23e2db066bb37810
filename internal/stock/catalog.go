package stock

import "github.com/MrJamesThe3rd/khata/internal/document"

// Catalog is an in-memory snapshot of a stock master, used while editing a
// document.
type Catalog struct {
	items map[string]*Item
}

func NewCatalog(items []*Item) *Catalog {
	c := &Catalog{items: make(map[string]*Item, len(items))}
	for _, it := range items {
		c.items[Key(it.Name)] = it
	}

	return c
}

func (c *Catalog) Find(name string) (document.StockMatch, bool) {
	k := Key(name)
	if k == "" {
		return document.StockMatch{}, false
	}

	it, ok := c.items[k]
	if !ok {
		return document.StockMatch{}, false
	}

	return document.StockMatch{
		HSNCode:        it.HSN,
		Rate:           it.Rate,
		TaxRatePercent: it.TaxRate,
		Unit:           it.Unit,
	}, true
}

func (c *Catalog) Len() int {
	return len(c.items)
}
