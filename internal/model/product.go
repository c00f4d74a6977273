package model

import "time"

type ProductCategory = string

const (
	CategorySupplements   ProductCategory = "Supplements"
	CategoryWorkoutPlan   ProductCategory = "Workout Plan"
	CategoryNutritionPlan ProductCategory = "Nutrition Plan"
)

// IsShippable reports whether a category needs physical delivery.
// Everything except supplements is a digital grant.
func IsShippable(category ProductCategory) bool {
	return category == CategorySupplements
}

type Product struct {
	ID          string  `gorm:"primaryKey;size:64;not null"` // product sku
	Name        string  `gorm:"size:128;not null"`
	Description string  `gorm:"size:512"`
	Price       float64 `gorm:"not null"` // dollars
	Currency    string  `gorm:"size:8;not null"`
	Category    string  `gorm:"size:32;index;not null"` // Supplements, Workout Plan, Nutrition Plan
	ImageURL    string  `gorm:"size:512"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
