package domain

type Product struct {
	ID        string  `db:"id" json:"id"`
	UserID    string  `db:"user_id" json:"userId"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"price"`
	Quantity  int     `db:"quantity" json:"quantity"`
	ImageURL  string  `db:"image_url" json:"imageUrl,omitempty"`
	CreatedAt string  `db:"created_at" json:"createdAt"`
	UpdatedAt string  `db:"updated_at" json:"updatedAt,omitempty"`
}

// Invoice is immutable once settled; items keep the product name and price
// as of sale time, so later catalog edits never rewrite history.
type Invoice struct {
	ID        string        `db:"id" json:"id"`
	UserID    string        `db:"user_id" json:"userId"`
	Items     []InvoiceItem `json:"items"`
	Total     float64       `db:"total" json:"totalAmount"`
	CreatedAt string        `db:"created_at" json:"createdAt"`
}

type InvoiceItem struct {
	ProductID string  `db:"product_id" json:"productId"`
	Name      string  `db:"name" json:"name"`
	Price     float64 `db:"price" json:"price"`
	Qty       int     `db:"qty" json:"quantity"`
}
