package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vendor represents a supplier for data transfer between layers.
type Vendor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	GSTIN     string    `json:"gstin,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
