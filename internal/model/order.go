package model

import "time"

const (
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCanceled   = "Canceled"
)

// orderTransitions guards the shipping lifecycle:
// Processing -> Shipped -> Delivered, Canceled only before delivery.
var orderTransitions = map[string][]string{
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCanceled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCanceled},
	OrderStatusDelivered:  {},
	OrderStatusCanceled:   {},
}

func CanTransitionOrder(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type ShippingAddress struct {
	Name       string `gorm:"size:128"`
	Line1      string `gorm:"size:256"`
	Line2      string `gorm:"size:256"`
	City       string `gorm:"size:128"`
	State      string `gorm:"size:64"`
	PostalCode string `gorm:"size:32"`
	Country    string `gorm:"size:8"`
}

// Order is a physical-goods purchase awaiting shipment. Product fields are a
// snapshot taken at checkout time, not a reference into the catalog, so the
// record survives later product edits or deletion.
type Order struct {
	ID                 string  `gorm:"primaryKey;size:64;not null"`
	UserID             string  `gorm:"size:64;index;not null"` // buyer
	ProductID          string  `gorm:"size:64;index;not null"`
	ProductName        string  `gorm:"size:128;not null"`
	ProductDescription string  `gorm:"size:512"`
	Price              float64 `gorm:"not null"` // dollars, snapshot
	Currency           string  `gorm:"size:8;not null"`
	ImageURL           string  `gorm:"size:512"`

	Shipping ShippingAddress `gorm:"embedded;embeddedPrefix:shipping_"`

	Status string `gorm:"size:32;index;not null"` // Processing, Shipped, Delivered, Canceled
	// PaymentRef is the idempotency key: one order per payment attempt,
	// enforced by the unique index even if two reconciles race.
	PaymentRef string `gorm:"size:128;uniqueIndex;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
