package model

// OrderItem is one cart line: a product snapshot and how many units of
// it the customer is ordering.
type OrderItem struct {
	Product Product `json:"product"`
	Count   int     `json:"count"`
}

// Cart holds the items of one order-building session, keyed by product
// id with at most one entry per product. Iteration order is insertion
// order; it carries no meaning beyond stable rendering.
type Cart struct {
	order []string
	items map[string]*OrderItem
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{items: make(map[string]*OrderItem)}
}

// Add puts count units of product into the cart, merging with an
// existing entry for the same product. Counts below one are ignored.
func (c *Cart) Add(product Product, count int) {
	if count <= 0 {
		return
	}
	id := product.ID.Hex()
	if item, ok := c.items[id]; ok {
		item.Count += count
		return
	}
	c.order = append(c.order, id)
	c.items[id] = &OrderItem{Product: product, Count: count}
}

// SetCount replaces the count for the given product. A count of zero or
// less removes the entry. Unknown products are a no-op.
func (c *Cart) SetCount(productID string, count int) {
	item, ok := c.items[productID]
	if !ok {
		return
	}
	if count <= 0 {
		c.Remove(productID)
		return
	}
	item.Count = count
}

// Remove deletes the entry for the given product, if present.
func (c *Cart) Remove(productID string) {
	if _, ok := c.items[productID]; !ok {
		return
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Item returns the cart entry for the given product id.
func (c *Cart) Item(productID string) (OrderItem, bool) {
	item, ok := c.items[productID]
	if !ok {
		return OrderItem{}, false
	}
	return *item, true
}

// Items returns all entries in insertion order.
func (c *Cart) Items() []OrderItem {
	items := make([]OrderItem, 0, len(c.order))
	for _, id := range c.order {
		items = append(items, *c.items[id])
	}
	return items
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Clear removes every entry.
func (c *Cart) Clear() {
	c.order = nil
	c.items = make(map[string]*OrderItem)
}

// TotalWeight returns the combined weight of the cart in kg, used to
// drive container suggestions.
func (c *Cart) TotalWeight() float64 {
	var total float64
	for _, id := range c.order {
		item := c.items[id]
		total += item.Product.Kg * float64(item.Count)
	}
	return total
}
