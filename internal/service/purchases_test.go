package service

import (
	"context"
	"fitmarket/internal/model"
	"fitmarket/internal/repository"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newPurchaseFixture(t *testing.T) (PurchaseService, repository.OrderRepository) {
	t.Helper()

	db := newTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	return NewPurchaseService(orderRepo, repository.NewEntitlementRepository(db)), orderRepo
}

func seedOrder(t *testing.T, orderRepo repository.OrderRepository, status string) *model.Order {
	t.Helper()

	order := &model.Order{
		ID:          uuid.NewString(),
		UserID:      "u1",
		ProductID:   "whey_protein",
		ProductName: "Whey Protein 2kg",
		Price:       59.00,
		Currency:    "usd",
		Status:      status,
		PaymentRef:  "pi_" + uuid.NewString(),
	}
	require.NoError(t, orderRepo.Create(context.Background(), order))
	return order
}

func TestAdvanceOrderFollowsLifecycle(t *testing.T) {
	purchases, orderRepo := newPurchaseFixture(t)
	ctx := context.Background()

	order := seedOrder(t, orderRepo, model.OrderStatusProcessing)

	shipped, err := purchases.AdvanceOrder(ctx, order.ID, model.OrderStatusShipped)
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusShipped, shipped.Status)

	delivered, err := purchases.AdvanceOrder(ctx, order.ID, model.OrderStatusDelivered)
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusDelivered, delivered.Status)
}

func TestAdvanceOrderRejectsIllegalTransitions(t *testing.T) {
	purchases, orderRepo := newPurchaseFixture(t)
	ctx := context.Background()

	delivered := seedOrder(t, orderRepo, model.OrderStatusDelivered)
	_, err := purchases.AdvanceOrder(ctx, delivered.ID, model.OrderStatusCanceled)
	require.ErrorIs(t, err, ErrBadTransition)

	processing := seedOrder(t, orderRepo, model.OrderStatusProcessing)
	_, err = purchases.AdvanceOrder(ctx, processing.ID, model.OrderStatusDelivered)
	require.ErrorIs(t, err, ErrBadTransition)
}

func TestAdvanceOrderUnknownOrder(t *testing.T) {
	purchases, _ := newPurchaseFixture(t)

	_, err := purchases.AdvanceOrder(context.Background(), "missing", model.OrderStatusShipped)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListOrdersAndEntitlementsAreScopedToBuyer(t *testing.T) {
	db := newTestDB(t)
	orderRepo := repository.NewOrderRepository(db)
	entitlementRepo := repository.NewEntitlementRepository(db)
	purchases := NewPurchaseService(orderRepo, entitlementRepo)
	ctx := context.Background()

	seedOrder(t, orderRepo, model.OrderStatusProcessing)
	require.NoError(t, entitlementRepo.Upsert(ctx, &model.Entitlement{
		UserID: "u2", ProductID: "p1", Status: model.EntitlementStatusActive, PaymentRef: "pi_x",
	}))

	orders, err := purchases.ListOrders(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 1)

	entitlements, err := purchases.ListEntitlements(ctx, "u1")
	require.NoError(t, err)
	require.Empty(t, entitlements)
}
