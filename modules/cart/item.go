package cart

// Product is an item as offered by the catalog, before it lands in the cart.
type Product struct {
	ID       string  `json:"id" validate:"required"`
	Title    string  `json:"title"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
}

// Item is a cart line.
type Item struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	ImageURL string  `json:"image_url"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

func (item *Item) IncQuantity(by int) {
	item.Quantity = item.Quantity + by
}

// Subtotal of the line.
func (item Item) Subtotal() float64 {
	return item.Price * float64(item.Quantity)
}

func newItem(p Product) Item {
	return Item{
		ID:       p.ID,
		Title:    p.Title,
		ImageURL: p.ImageURL,
		Price:    p.Price,
		Quantity: 1,
	}
}

// Items in cart order.
type Items []Item

func (list Items) index(id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}

// Total price of every line.
func (list Items) Total() (total float64) {
	for _, item := range list {
		total += item.Subtotal()
	}
	return
}

// Count of units across lines.
func (list Items) Count() (n int) {
	for _, item := range list {
		n += item.Quantity
	}
	return
}
