package seed

import (
	"strings"

	"pkg.jsn.cam/levelup/pkg/pools"
	"pkg.jsn.cam/levelup/pkg/prng"
)

const (
	CategoryGroceries = "Groceries"
	CategoryCafe      = "Cafe"

	cafeTaxRate = 0.08
)

// Receipt generates a receipt for store on date. An empty store is drawn from
// the store pool. The cafe store gets 1-3 single-quantity items and 8% tax;
// every other store gets 4-15 grocery items with quantity 1-3 and no tax.
func (g *Generator) Receipt(date, store string) Receipt {
	r := g.rng
	if store == "" {
		store = prng.Pick(r, pools.Stores)
	}
	isCafe := store == pools.CafeStore

	var (
		numItems int
		pool     []pools.CatalogItem
		category string
	)
	if isCafe {
		numItems, pool, category = r.IntRange(1, 3), pools.CafeItems, CategoryCafe
	} else {
		numItems, pool, category = r.IntRange(4, 15), pools.GroceryItems, CategoryGroceries
	}

	selected := prng.PickN(r, pool, numItems)
	items := make([]ReceiptItem, 0, len(selected))
	subtotal := 0.0
	for _, it := range selected {
		qty := 1
		if !isCafe {
			qty = r.IntRange(1, 3)
		}
		price := toFixed2(it.Price * (0.9 + r.Raw()*0.2))
		subtotal += toFixed2(price * float64(qty))

		sub := it.Subcategory
		if sub == "" {
			sub = category
		}
		items = append(items, ReceiptItem{
			Name:         it.Name,
			Price:        price,
			Quantity:     qty,
			Category:     category,
			Subcategory:  sub,
			Store:        store,
			StorePrice:   price,
			PricePerUnit: price,
		})
	}

	subtotal = toFixed2(subtotal)
	tax := 0.0
	if isCafe {
		tax = toFixed2(subtotal * cafeTaxRate)
	}

	return Receipt{
		ID:            ReceiptID(store, date),
		Date:          date,
		Store:         store,
		StoreLocation: store + " Location",
		Category:      category,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Total:         toFixed2(subtotal + tax),
		Notes:         store + " receipt - " + date,
	}
}

// ReceiptID builds "receipt_<letters of store, lowercased>_<YYYYMMDD>".
func ReceiptID(store, date string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(store) {
		if c >= 'a' && c <= 'z' {
			b.WriteRune(c)
		}
	}
	return "receipt_" + b.String() + "_" + strings.ReplaceAll(date, "-", "")
}
