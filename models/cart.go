package models

import "time"

// MaxLineQuantity bounds the quantity a single cart entry can hold.
const MaxLineQuantity = 10000

// CartEntry references a product by id; display data and price are resolved
// from the catalog when needed.
type CartEntry struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

type CartLine struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	Price     int64  `json:"price"`
	Discount  int64  `json:"discount"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

type CartView struct {
	Items        []CartLine `json:"items"`
	ItemCount    int        `json:"item_count"`
	Subtotal     int64      `json:"subtotal"`
	SubtotalText string     `json:"subtotal_text,omitempty"`
}

type CartNotification struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	ImageURL  string `json:"image_url"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size,omitempty"`
}

type CartSession struct {
	SessionID string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CheckoutSummary struct {
	SessionID  string     `json:"session_id"`
	Items      []CartLine `json:"items"`
	ItemCount  int        `json:"item_count"`
	Subtotal   int64      `json:"subtotal"`
	CheckedOut time.Time  `json:"checked_out_at"`
}
