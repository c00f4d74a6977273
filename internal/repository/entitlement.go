package repository

import (
	"context"
	"errors"
	"fitmarket/internal/model"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EntitlementRepository interface {
	Upsert(ctx context.Context, entitlement *model.Entitlement) error
	FindByPaymentRef(ctx context.Context, paymentRef string) (*model.Entitlement, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Entitlement, error)
}

type entitlementRepoImpl struct {
	db *gorm.DB
}

func NewEntitlementRepository(db *gorm.DB) EntitlementRepository {
	return &entitlementRepoImpl{
		db: db,
	}
}

// Upsert merges on the (user_id, product_id) key. Two racing grants for the
// same purchase converge to one row instead of duplicating.
func (r *entitlementRepoImpl) Upsert(ctx context.Context, entitlement *model.Entitlement) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"status":      entitlement.Status,
			"payment_ref": entitlement.PaymentRef,
			"updated_at":  time.Now(),
		}),
	}).Create(&entitlement).Error
}

func (r *entitlementRepoImpl) FindByPaymentRef(ctx context.Context, paymentRef string) (*model.Entitlement, error) {
	var entitlement model.Entitlement
	err := r.db.WithContext(ctx).
		Where("payment_ref = ?", paymentRef).
		First(&entitlement).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &entitlement, nil
}

func (r *entitlementRepoImpl) ListByUser(ctx context.Context, userID string) ([]*model.Entitlement, error) {
	var entitlements []*model.Entitlement
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entitlements).Error

	if err != nil {
		return nil, err
	}

	return entitlements, nil
}
