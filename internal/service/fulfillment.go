package service

import (
	"context"
	"fitmarket/internal/dto"
	"fitmarket/internal/model"
	"fitmarket/internal/repository"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	StatePending   = "pending"
	StateFulfilled = "fulfilled"
	StateFailed    = "failed"
)

type FulfillmentService interface {
	// Reconcile converts a payment reference into at most one durable
	// purchase record. Safe to call any number of times for the same
	// reference: reloads, double redirects and concurrent tabs all land on
	// the same record.
	Reconcile(ctx context.Context, reference string) (*dto.ReconcileResponse, error)
}

type fulfillmentServiceImpl struct {
	checkoutService CheckoutService
	orderRepo       repository.OrderRepository
	entitlementRepo repository.EntitlementRepository
	logger          *slog.Logger
}

func NewFulfillmentService(
	checkoutService CheckoutService,
	orderRepo repository.OrderRepository,
	entitlementRepo repository.EntitlementRepository,
	logger *slog.Logger,
) FulfillmentService {
	return &fulfillmentServiceImpl{
		checkoutService: checkoutService,
		orderRepo:       orderRepo,
		entitlementRepo: entitlementRepo,
		logger:          logger,
	}
}

func (s *fulfillmentServiceImpl) Reconcile(ctx context.Context, reference string) (*dto.ReconcileResponse, error) {
	status, err := s.checkoutService.GetSessionStatus(ctx, reference)
	if err != nil {
		return nil, err
	}

	bucket, known := BucketFor(status.Status)
	if !known {
		return nil, fmt.Errorf("%w: unrecognized status %q", ErrProvider, status.Status)
	}

	switch bucket {
	case BucketPending:
		return &dto.ReconcileResponse{State: StatePending}, nil
	case BucketFailure:
		return &dto.ReconcileResponse{
			State:   StateFailed,
			Message: fmt.Sprintf("payment %s", status.Status),
		}, nil
	}

	meta := status.Metadata
	if meta.UserID == "" || meta.ProductID == "" {
		// A succeeded payment without purchase metadata is either corruption
		// or a reference that was never ours. Never fulfill it silently.
		s.logger.Error("succeeded payment carries no purchase metadata",
			"payment_ref", reference,
			"user_id", meta.UserID,
			"product_id", meta.ProductID,
		)
		return nil, fmt.Errorf("%w: reference %s", ErrMetadataMissing, reference)
	}

	// Idempotency check: a record stamped with this reference, in either
	// collection, means the purchase is already fulfilled.
	existingOrder, err := s.orderRepo.FindByPaymentRef(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("%w: lookup order: %v", ErrStore, err)
	}
	if existingOrder != nil {
		return &dto.ReconcileResponse{State: StateFulfilled, Kind: "order", RecordID: existingOrder.ID}, nil
	}

	existingEntitlement, err := s.entitlementRepo.FindByPaymentRef(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("%w: lookup entitlement: %v", ErrStore, err)
	}
	if existingEntitlement != nil {
		return &dto.ReconcileResponse{
			State:    StateFulfilled,
			Kind:     "entitlement",
			RecordID: existingEntitlement.UserID + "_" + existingEntitlement.ProductID,
		}, nil
	}

	// Branch on the category captured at checkout, not the catalog: the
	// product may have been edited or deleted since.
	if model.IsShippable(meta.Category) {
		return s.createOrder(ctx, reference, status)
	}
	return s.grantEntitlement(ctx, reference, meta)
}

func (s *fulfillmentServiceImpl) createOrder(ctx context.Context, reference string, status *SessionStatus) (*dto.ReconcileResponse, error) {
	meta := status.Metadata
	order := &model.Order{
		ID:                 uuid.NewString(),
		UserID:             meta.UserID,
		ProductID:          meta.ProductID,
		ProductName:        meta.ProductName,
		ProductDescription: meta.ProductDescription,
		Price:              meta.Price(),
		Currency:           "usd",
		ImageURL:           meta.ImageURL,
		Status:             model.OrderStatusProcessing,
		PaymentRef:         reference,
	}
	if status.Shipping != nil {
		order.Shipping = model.ShippingAddress{
			Name:       status.Shipping.Name,
			Line1:      status.Shipping.Address.Line1,
			Line2:      status.Shipping.Address.Line2,
			City:       status.Shipping.Address.City,
			State:      status.Shipping.Address.State,
			PostalCode: status.Shipping.Address.PostalCode,
			Country:    status.Shipping.Address.Country,
		}
	}

	err := withRetry(ctx, func() error {
		return s.orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create order: %v", ErrStore, err)
	}

	s.logger.Info("order created", "order_id", order.ID, "payment_ref", reference, "user_id", meta.UserID)
	return &dto.ReconcileResponse{State: StateFulfilled, Kind: "order", RecordID: order.ID}, nil
}

func (s *fulfillmentServiceImpl) grantEntitlement(ctx context.Context, reference string, meta model.PurchaseMetadata) (*dto.ReconcileResponse, error) {
	entitlement := &model.Entitlement{
		UserID:     meta.UserID,
		ProductID:  meta.ProductID,
		Status:     model.EntitlementStatusActive,
		PaymentRef: reference,
	}

	err := withRetry(ctx, func() error {
		return s.entitlementRepo.Upsert(ctx, entitlement)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: grant entitlement: %v", ErrStore, err)
	}

	s.logger.Info("entitlement granted", "payment_ref", reference, "user_id", meta.UserID, "product_id", meta.ProductID)
	return &dto.ReconcileResponse{
		State:    StateFulfilled,
		Kind:     "entitlement",
		RecordID: meta.UserID + "_" + meta.ProductID,
	}, nil
}

const writeAttempts = 3

// withRetry retries a store write with a short linear backoff. Retrying the
// whole write is safe: nothing commits until it succeeds, and the caller's
// idempotency check re-runs on the next reconcile anyway.
func withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= writeAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == writeAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 100 * time.Millisecond):
		}
	}
	return err
}
