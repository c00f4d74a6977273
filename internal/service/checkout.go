package service

import (
	"context"
	"errors"
	"fitmarket/internal/client"
	"fitmarket/internal/dto"
	"fitmarket/internal/model"
	"fitmarket/internal/repository"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SessionStatus is the authoritative provider-side view of one payment
// attempt: its status plus the purchase snapshot attached at creation time.
type SessionStatus struct {
	Status   ProviderStatus
	Metadata model.PurchaseMetadata
	Shipping *model.StripeShipping
}

type CheckoutService interface {
	CreateSession(ctx context.Context, buyerID string, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error)
	GetSessionStatus(ctx context.Context, reference string) (*SessionStatus, error)
}

type checkoutServiceImpl struct {
	stripeClient client.StripeClient
	baseURL      string
	productRepo  repository.ProductRepository
}

func NewCheckoutService(
	stripeClient client.StripeClient,
	baseURL string,
	productRepo repository.ProductRepository,
) CheckoutService {
	return &checkoutServiceImpl{
		stripeClient: stripeClient,
		baseURL:      baseURL,
		productRepo:  productRepo,
	}
}

// amountCents converts a dollar price to minor currency units.
func amountCents(price float64) int64 {
	return decimal.NewFromFloat(price).Shift(2).Round(0).IntPart()
}

func (s *checkoutServiceImpl) CreateSession(ctx context.Context, buyerID string, req *dto.CreateSessionRequest) (*dto.CreateSessionResponse, error) {
	product, err := s.productRepo.FindByID(ctx, req.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrProductNotFound, req.ProductID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load product: %v", ErrStore, err)
	}

	metadata := model.PurchaseMetadata{
		UserID:             buyerID,
		ProductID:          product.ID,
		ProductName:        product.Name,
		ProductDescription: product.Description,
		ProductPrice:       decimal.NewFromFloat(product.Price).StringFixed(2),
		ImageURL:           product.ImageURL,
		Category:           product.Category,
	}

	if req.Flow == "session" {
		session, err := s.stripeClient.CreateCheckoutSession(ctx, &client.CreateCheckoutSessionRequest{
			ProductName: product.Name,
			ImageURL:    product.ImageURL,
			Amount:      amountCents(product.Price),
			Currency:    product.Currency,
			Metadata:    metadata.ToMap(),
			ReturnURL:   fmt.Sprintf("%s/dashboard/checkout/return?session_id={CHECKOUT_SESSION_ID}", s.baseURL),
		})
		if err != nil {
			return nil, fmt.Errorf("%w: create checkout session: %v", ErrProvider, err)
		}

		return &dto.CreateSessionResponse{
			Reference:    session.ID,
			ClientSecret: session.ClientSecret,
		}, nil
	}

	intent, err := s.stripeClient.CreatePaymentIntent(ctx, &client.CreatePaymentIntentRequest{
		Amount:   amountCents(product.Price),
		Currency: product.Currency,
		Metadata: metadata.ToMap(),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create payment intent: %v", ErrProvider, err)
	}

	return &dto.CreateSessionResponse{
		Reference:    intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}

// GetSessionStatus resolves a payment reference against the provider.
// Checkout-session references carry a cs_ prefix; everything else is treated
// as a payment intent. Provider failures (network, unknown reference) are
// terminal from the caller's perspective.
func (s *checkoutServiceImpl) GetSessionStatus(ctx context.Context, reference string) (*SessionStatus, error) {
	if strings.HasPrefix(reference, "cs_") {
		session, err := s.stripeClient.GetCheckoutSession(ctx, reference)
		if err != nil {
			return nil, fmt.Errorf("%w: get checkout session: %v", ErrProvider, err)
		}

		return &SessionStatus{
			Status:   ProviderStatus(session.Status),
			Metadata: model.PurchaseMetadataFromMap(session.Metadata),
			Shipping: session.ShippingDetails,
		}, nil
	}

	intent, err := s.stripeClient.GetPaymentIntent(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("%w: get payment intent: %v", ErrProvider, err)
	}

	return &SessionStatus{
		Status:   ProviderStatus(intent.Status),
		Metadata: model.PurchaseMetadataFromMap(intent.Metadata),
		Shipping: intent.Shipping,
	}, nil
}
