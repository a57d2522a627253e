package models

// CartEntry is one product line in the cart.
type CartEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is the full shopping cart for one client session. It is serialized
// and overwritten as a whole on every mutation.
type Cart struct {
	Entries []CartEntry `json:"entries"`
}

// TotalItems returns the sum of all entry quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, e := range c.Entries {
		total += e.Quantity
	}
	return total
}

// TotalCost returns the sum of price times quantity across entries.
func (c *Cart) TotalCost() float64 {
	total := 0.0
	for _, e := range c.Entries {
		total += e.Product.Price * float64(e.Quantity)
	}
	return total
}
