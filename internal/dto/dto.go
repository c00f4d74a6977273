package dto

type CreateSessionRequest struct {
	ProductID string `json:"product_id"`
	// Flow selects the provider integration: "intent" (default) returns a
	// payment-intent client secret, "session" an embedded checkout session.
	Flow string `json:"flow"`
}

type CreateSessionResponse struct {
	Reference    string `json:"reference"`
	ClientSecret string `json:"client_secret"`
}

type ReconcileResponse struct {
	State    string `json:"state"` // pending, fulfilled, failed
	Message  string `json:"message,omitempty"`
	Kind     string `json:"kind,omitempty"` // order, entitlement
	RecordID string `json:"record_id,omitempty"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
