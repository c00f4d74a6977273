package repository

import (
	"context"
	"fitmarket/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Seed(ctx context.Context) error
	FindByID(ctx context.Context, productID string) (*model.Product, error)
	List(ctx context.Context) ([]*model.Product, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{
		db: db,
	}
}

func (r *productRepoImpl) Seed(ctx context.Context) error {
	products := []model.Product{
		{ID: "whey_protein", Name: "Whey Protein 2kg", Description: "Chocolate whey protein isolate", Price: 59.00, Currency: "usd", Category: model.CategorySupplements},
		{ID: "creatine_500", Name: "Creatine Monohydrate 500g", Description: "Micronized creatine powder", Price: 24.50, Currency: "usd", Category: model.CategorySupplements},
		{ID: "hypertrophy_12w", Name: "12-Week Hypertrophy Program", Description: "Progressive overload workout plan", Price: 39.99, Currency: "usd", Category: model.CategoryWorkoutPlan},
		{ID: "cutting_meal_plan", Name: "Cutting Meal Plan", Description: "8-week calorie-cycled nutrition plan", Price: 29.99, Currency: "usd", Category: model.CategoryNutritionPlan},
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&products).Error
}

func (r *productRepoImpl) FindByID(ctx context.Context, productID string) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Where("id = ?", productID).
		First(&product).Error

	if err != nil {
		return nil, err
	}

	return &product, nil
}

func (r *productRepoImpl) List(ctx context.Context) ([]*model.Product, error) {
	var products []*model.Product
	err := r.db.WithContext(ctx).
		Order("created_at").
		Find(&products).Error

	if err != nil {
		return nil, err
	}

	return products, nil
}
