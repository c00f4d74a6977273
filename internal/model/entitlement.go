package model

import "time"

const EntitlementStatusActive = "active"

// Entitlement grants a buyer ongoing access to a digital product. The
// composite primary key makes repeated grants for the same (buyer, product)
// converge to a single row.
type Entitlement struct {
	UserID     string `gorm:"primaryKey;size:64;not null"`
	ProductID  string `gorm:"primaryKey;size:64;not null"`
	Status     string `gorm:"size:16;not null"`
	PaymentRef string `gorm:"size:128;index;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
