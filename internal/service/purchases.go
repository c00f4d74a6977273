package service

import (
	"context"
	"errors"
	"fitmarket/internal/model"
	"fitmarket/internal/repository"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrBadTransition = errors.New("invalid order status transition")
	ErrOrderNotFound = errors.New("order not found")
)

// PurchaseService reads fulfilled purchases back for buyers and moves
// shippable orders through their lifecycle for the fulfillment desk.
type PurchaseService interface {
	ListOrders(ctx context.Context, userID string) ([]*model.Order, error)
	ListEntitlements(ctx context.Context, userID string) ([]*model.Entitlement, error)
	AdvanceOrder(ctx context.Context, orderID, nextStatus string) (*model.Order, error)
}

type purchaseServiceImpl struct {
	orderRepo       repository.OrderRepository
	entitlementRepo repository.EntitlementRepository
}

func NewPurchaseService(
	orderRepo repository.OrderRepository,
	entitlementRepo repository.EntitlementRepository,
) PurchaseService {
	return &purchaseServiceImpl{
		orderRepo:       orderRepo,
		entitlementRepo: entitlementRepo,
	}
}

func (s *purchaseServiceImpl) ListOrders(ctx context.Context, userID string) ([]*model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *purchaseServiceImpl) ListEntitlements(ctx context.Context, userID string) ([]*model.Entitlement, error) {
	return s.entitlementRepo.ListByUser(ctx, userID)
}

func (s *purchaseServiceImpl) AdvanceOrder(ctx context.Context, orderID, nextStatus string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load order: %v", ErrStore, err)
	}

	if !model.CanTransitionOrder(order.Status, nextStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrBadTransition, order.Status, nextStatus)
	}

	if err := s.orderRepo.Transition(ctx, orderID, order.Status, nextStatus); err != nil {
		return nil, fmt.Errorf("%w: transition order: %v", ErrStore, err)
	}

	order.Status = nextStatus
	return order, nil
}
