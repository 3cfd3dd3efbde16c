package entity

import "github.com/google/uuid"

// Subcategory is a purchasable item name under a category.
type Subcategory struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Category represents one taxonomy entry for data transfer between layers.
// The ordering of a []Category slice is significant to the parser's category
// matcher (first match wins), so repositories return them in name order.
type Category struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}
