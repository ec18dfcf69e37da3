package models

// Gateway payment statuses we act on
const (
	PaymentStatusApproved = "approved"
	PaymentStatusPending  = "pending"
	PaymentStatusRejected = "rejected"
)

// WebhookNotification - asynchronous gateway delivery. Only the payment id is
// trusted, the authoritative status is re-fetched from the gateway.
type WebhookNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// CheckoutResponse - redirect target for a minted checkout session
type CheckoutResponse struct {
	PreferenceID string `json:"preference_id"`
	InitPoint    string `json:"init_point"`
}
