// Package cart holds one session's pre-checkout state. A cart is either empty
// or bound to a single restaurant; every line references a menu item by id and
// carries the unit price snapshotted when the line was added.
package cart

import (
	"errors"
)

// ErrDifferentRestaurant is returned when an add would mix restaurants and the
// caller has not confirmed discarding the current cart.
var ErrDifferentRestaurant = errors.New("cart contains items from another restaurant")

type Item struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"` // cents
}

type Line struct {
	Item Item `json:"item"`
	Qty  int  `json:"qty"`
}

func (l Line) Total() int64 {
	return l.Item.UnitPrice * int64(l.Qty)
}

type Cart struct {
	RestaurantID uint   `json:"restaurantId"` // 0 while empty
	Lines        []Line `json:"lines"`
}

func New() *Cart {
	return &Cart{}
}

func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// AddItem appends the item or increments its existing line. Adding across
// restaurants requires replace=true, which discards the current cart first;
// without it the cart is left untouched. Lines are keyed by item id, so two
// distinct items sharing a name stay distinct.
func (c *Cart) AddItem(item Item, restaurantID uint, replace bool) error {
	if !c.Empty() && c.RestaurantID != restaurantID {
		if !replace {
			return ErrDifferentRestaurant
		}
		c.Clear()
	}
	if c.Empty() {
		c.RestaurantID = restaurantID
	}
	for i := range c.Lines {
		if c.Lines[i].Item.ID == item.ID {
			c.Lines[i].Qty++
			return nil
		}
	}
	c.Lines = append(c.Lines, Line{Item: item, Qty: 1})
	return nil
}

// Remove deletes the matching line. Removing the last line unbinds the
// restaurant so the next add may come from anywhere.
func (c *Cart) Remove(itemID uint) {
	for i := range c.Lines {
		if c.Lines[i].Item.ID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			break
		}
	}
	if c.Empty() {
		c.RestaurantID = 0
	}
}

// SetQuantity overwrites a line's quantity; qty <= 0 removes the line. A zero
// quantity line is never kept.
func (c *Cart) SetQuantity(itemID uint, qty int) {
	if qty <= 0 {
		c.Remove(itemID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].Item.ID == itemID {
			c.Lines[i].Qty = qty
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Lines = nil
	c.RestaurantID = 0
}

// Total recomputes the sum of line totals on every call.
func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.Lines {
		total += l.Total()
	}
	return total
}
