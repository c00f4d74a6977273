package model

import "strconv"

// Metadata keys attached to the payment intent / checkout session at
// creation time. Read back verbatim at reconciliation time; never re-derived
// from the catalog.
const (
	MetaUserID             = "userId"
	MetaProductID          = "productId"
	MetaProductName        = "productName"
	MetaProductDescription = "productDescription"
	MetaProductPrice       = "productPrice"
	MetaImageURL           = "imageUrl"
	MetaCategory           = "category"
)

// PurchaseMetadata is the snapshot of what was bought, carried on the
// provider side of the payment reference.
type PurchaseMetadata struct {
	UserID             string
	ProductID          string
	ProductName        string
	ProductDescription string
	ProductPrice       string // decimal string, dollars
	ImageURL           string
	Category           string
}

func PurchaseMetadataFromMap(m map[string]string) PurchaseMetadata {
	return PurchaseMetadata{
		UserID:             m[MetaUserID],
		ProductID:          m[MetaProductID],
		ProductName:        m[MetaProductName],
		ProductDescription: m[MetaProductDescription],
		ProductPrice:       m[MetaProductPrice],
		ImageURL:           m[MetaImageURL],
		Category:           m[MetaCategory],
	}
}

func (m PurchaseMetadata) ToMap() map[string]string {
	return map[string]string{
		MetaUserID:             m.UserID,
		MetaProductID:          m.ProductID,
		MetaProductName:        m.ProductName,
		MetaProductDescription: m.ProductDescription,
		MetaProductPrice:       m.ProductPrice,
		MetaImageURL:           m.ImageURL,
		MetaCategory:           m.Category,
	}
}

// Price parses the dollar snapshot; 0 when absent or malformed.
func (m PurchaseMetadata) Price() float64 {
	p, err := strconv.ParseFloat(m.ProductPrice, 64)
	if err != nil {
		return 0
	}
	return p
}

type StripeAddress struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type StripeShipping struct {
	Name    string        `json:"name"`
	Address StripeAddress `json:"address"`
}

type StripeCustomerDetails struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// PaymentIntent is the subset of the provider's payment-intent resource the
// service reads.
type PaymentIntent struct {
	ID           string            `json:"id"`
	Status       string            `json:"status"`
	ClientSecret string            `json:"client_secret"`
	Amount       int64             `json:"amount"`
	Currency     string            `json:"currency"`
	Metadata     map[string]string `json:"metadata"`
	Shipping     *StripeShipping   `json:"shipping"`
}

// CheckoutSession is the subset of the provider's checkout-session resource
// the service reads.
type CheckoutSession struct {
	ID              string                 `json:"id"`
	Status          string                 `json:"status"` // open, complete, expired
	ClientSecret    string                 `json:"client_secret"`
	PaymentIntentID string                 `json:"payment_intent"`
	Metadata        map[string]string      `json:"metadata"`
	CustomerDetails *StripeCustomerDetails `json:"customer_details"`
	ShippingDetails *StripeShipping        `json:"shipping_details"`
}
