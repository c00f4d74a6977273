package service

import (
	"context"
	"fitmarket/internal/client"
	"fitmarket/internal/model"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.Order{},
		&model.Entitlement{},
	))

	return db
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStripe is an in-memory stand-in for the provider.
type fakeStripe struct {
	intents  map[string]*model.PaymentIntent
	sessions map[string]*model.CheckoutSession

	createdIntents  []*client.CreatePaymentIntentRequest
	createdSessions []*client.CreateCheckoutSessionRequest
}

func newFakeStripe() *fakeStripe {
	return &fakeStripe{
		intents:  make(map[string]*model.PaymentIntent),
		sessions: make(map[string]*model.CheckoutSession),
	}
}

func (f *fakeStripe) CreatePaymentIntent(_ context.Context, req *client.CreatePaymentIntentRequest) (*model.PaymentIntent, error) {
	f.createdIntents = append(f.createdIntents, req)
	intent := &model.PaymentIntent{
		ID:           "pi_" + uuid.NewString(),
		Status:       "requires_payment_method",
		ClientSecret: "secret_" + uuid.NewString(),
		Amount:       req.Amount,
		Currency:     req.Currency,
		Metadata:     req.Metadata,
	}
	f.intents[intent.ID] = intent
	return intent, nil
}

func (f *fakeStripe) GetPaymentIntent(_ context.Context, intentID string) (*model.PaymentIntent, error) {
	intent, ok := f.intents[intentID]
	if !ok {
		return nil, fmt.Errorf("no such payment_intent: %s", intentID)
	}
	return intent, nil
}

func (f *fakeStripe) CreateCheckoutSession(_ context.Context, req *client.CreateCheckoutSessionRequest) (*model.CheckoutSession, error) {
	f.createdSessions = append(f.createdSessions, req)
	session := &model.CheckoutSession{
		ID:           "cs_" + uuid.NewString(),
		Status:       "open",
		ClientSecret: "secret_" + uuid.NewString(),
		Metadata:     req.Metadata,
	}
	f.sessions[session.ID] = session
	return session, nil
}

func (f *fakeStripe) GetCheckoutSession(_ context.Context, sessionID string) (*model.CheckoutSession, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("no such checkout session: %s", sessionID)
	}
	return session, nil
}

// addIntent registers a finished payment attempt directly, for reconcile tests.
func (f *fakeStripe) addIntent(id, status string, metadata map[string]string, shipping *model.StripeShipping) {
	f.intents[id] = &model.PaymentIntent{
		ID:       id,
		Status:   status,
		Metadata: metadata,
		Shipping: shipping,
	}
}
