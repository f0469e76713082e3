package stripe

import "encoding/json"

type CreateCheckoutSessionInput struct {
	SuccessURL  string
	CancelURL   string
	ProductName string
	Description string
	AmountCents int64
	Currency    string
	LeadID      string
	BrokerID    string
}

type CheckoutSession struct {
	ID          string            `json:"id"`
	URL         string            `json:"url"`
	AmountTotal int64             `json:"amount_total"`
	Currency    string            `json:"currency"`
	Metadata    map[string]string `json:"metadata"`
}

// Event is the webhook envelope. Data.Object is kept raw so only completed
// checkout sessions get decoded.
type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object json.RawMessage `json:"object"`
	} `json:"data"`
}

type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
