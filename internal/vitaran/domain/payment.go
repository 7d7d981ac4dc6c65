package domain

import "encoding/json"

// OrderRequest is what we ask the payment gateway to create.
type OrderRequest struct {
	Amount   int64  // minor units (paise for INR)
	Currency string // ISO 4217
	Receipt  string
}

// PaymentOrder is handed to the browser checkout: the public key id and the
// gateway's order object, untouched.
type PaymentOrder struct {
	Key   string
	Order json.RawMessage
}
