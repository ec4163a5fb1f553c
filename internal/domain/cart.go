package domain

// CartItemType distinguishes what kind of catalog entry a line item is
type CartItemType string

const (
	ItemService CartItemType = "service"
	ItemProduct CartItemType = "product"
	ItemPackage CartItemType = "package"
)

// CartItem is one line item the client intends to purchase
type CartItem struct {
	ID           string       `json:"id"`
	Type         CartItemType `json:"type"`
	Name         string       `json:"name"`
	Price        int64        `json:"price"`
	Quantity     int          `json:"quantity"`
	Image        string       `json:"image,omitempty"`
	BarbershopID string       `json:"barbershopId"`
}

// Cart aggregates the line items of one session, scoped to a single
// barbershop. An empty BarbershopID means no location is selected yet.
type Cart struct {
	Items        []CartItem `json:"items"`
	Total        int64      `json:"total"`
	BarbershopID string     `json:"barbershopId"`
}

// NewCart returns the empty-cart state.
func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// IsEmpty returns true if the cart has no line items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount sums quantities across all line items, not distinct entries
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// RecomputeTotal derives Total from the line items. Total is never set
// directly anywhere else.
func (c *Cart) RecomputeTotal() {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}
	c.Total = total
}

// FindItem returns the index of the line item with the given id, or -1.
func (c *Cart) FindItem(id string) int {
	for i := range c.Items {
		if c.Items[i].ID == id {
			return i
		}
	}
	return -1
}

// RemoveItem drops the line item with the given id. Returns false if the id
// was not in the cart.
func (c *Cart) RemoveItem(id string) bool {
	i := c.FindItem(id)
	if i < 0 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}
