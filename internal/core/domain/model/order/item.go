package order

import (
	"fiesta/internal/pkg/errs"
)

// Item is a line in an order. The catalog reference is optional (the catalog
// entry may be deleted later), but the name and price snapshots are always
// present so catalog edits never retroactively alter historical orders. The
// line total is stored at order time, not derived at read time.
type Item struct {
	foodID    *int64
	name      string
	price     int64
	qty       int
	lineTotal int64
}

// NewItem creates an order line, capturing the name/price snapshot and
// computing the line total as price * qty.
func NewItem(foodID *int64, name string, price int64, qty int) (Item, error) {
	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if price <= 0 {
		return Item{}, errs.NewValueIsRequiredError("item price")
	}
	if qty <= 0 {
		return Item{}, errs.NewValueIsRequiredError("item qty")
	}

	return Item{
		foodID:    foodID,
		name:      name,
		price:     price,
		qty:       qty,
		lineTotal: price * int64(qty),
	}, nil
}

// RestoreItem reconstructs a line from persistence. The stored line total is
// taken as-is rather than recomputed, keeping historical totals stable.
func RestoreItem(foodID *int64, name string, price int64, qty int, lineTotal int64) Item {
	return Item{
		foodID:    foodID,
		name:      name,
		price:     price,
		qty:       qty,
		lineTotal: lineTotal,
	}
}

// FoodID returns the optional catalog reference.
func (i Item) FoodID() *int64 {
	return i.foodID
}

// Name returns the name snapshot taken at order time.
func (i Item) Name() string {
	return i.name
}

// Price returns the price snapshot taken at order time.
func (i Item) Price() int64 {
	return i.price
}

// Qty returns the ordered quantity.
func (i Item) Qty() int {
	return i.qty
}

// LineTotal returns the stored line total (price snapshot * qty).
func (i Item) LineTotal() int64 {
	return i.lineTotal
}
