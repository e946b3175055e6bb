package models

import "time"

// CartItem is one line in a client's shopping cart.
type CartItem struct {
	ID            string  `json:"id"`
	ProductID     string  `json:"productId"`
	Name          string  `json:"name"`
	Image         string  `json:"image,omitempty"`
	Size          string  `json:"size,omitempty"`
	Material      string  `json:"material,omitempty"`
	Customization string  `json:"customization,omitempty"`
	Price         float64 `json:"price"` // unit price
	Quantity      int     `json:"quantity"`
}

// Cart is the persisted shopping cart. ItemCount and Total are derived
// from Items and recomputed on every mutation before the cart is stored.
type Cart struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"itemCount"`
	Total     float64    `json:"total"`
	UpdatedAt time.Time  `json:"updatedAt,omitempty"`
}

// Recalculate refreshes the derived ItemCount and Total fields.
func (c *Cart) Recalculate() {
	count := 0
	total := 0.0
	for _, item := range c.Items {
		count += item.Quantity
		total += item.Price * float64(item.Quantity)
	}
	c.ItemCount = count
	c.Total = total
}
