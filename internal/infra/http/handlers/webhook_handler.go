package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/xavierca1/lead-exchange/internal/infra/http/middleware"
	"github.com/xavierca1/lead-exchange/internal/infra/integration/stripe"
	"github.com/xavierca1/lead-exchange/internal/usecase"
)

type WebhookHandler struct {
	FinalizeUC    *usecase.FinalizeUnlockUseCase
	WebhookSecret string
	Now           usecase.Clock
}

func NewWebhookHandler(finalizeUC *usecase.FinalizeUnlockUseCase, webhookSecret string, now usecase.Clock) *WebhookHandler {
	if now == nil {
		now = time.Now
	}
	return &WebhookHandler{FinalizeUC: finalizeUC, WebhookSecret: webhookSecret, Now: now}
}

// Handle receives signed payment events. Nothing in the payload is trusted
// before the signature verifies. Unknown event types are acknowledged and
// ignored; completion events with missing metadata are permanent 400s.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_body", "Could not read request body")
		return
	}

	event, err := stripe.ConstructEvent(body, r.Header.Get("Stripe-Signature"), h.WebhookSecret, h.Now())
	if err != nil {
		log.Printf("[WEBHOOK] signature rejected: %v", err)
		middleware.RecordWebhookRejection("signature")
		writeError(w, http.StatusBadRequest, "invalid_signature", "Webhook signature verification failed")
		return
	}

	if event.Type != stripe.EventCheckoutSessionCompleted {
		writeJSON(w, http.StatusOK, map[string]bool{"received": true})
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Object, &session); err != nil {
		middleware.RecordWebhookRejection("payload")
		writeError(w, http.StatusBadRequest, "bad_payload", "Could not decode checkout session")
		return
	}

	leadID := session.Metadata["lead_id"]
	brokerID := session.Metadata["broker_id"]

	if leadID == "" || brokerID == "" || session.ID == "" || session.AmountTotal <= 0 || session.Currency == "" {
		middleware.RecordWebhookRejection("metadata")
		writeError(w, http.StatusBadRequest, "missing_metadata", "Missing required checkout metadata")
		return
	}

	output, err := h.FinalizeUC.Execute(r.Context(), usecase.FinalizeUnlockInput{
		LeadID:      leadID,
		BrokerID:    brokerID,
		SessionID:   session.ID,
		AmountCents: session.AmountTotal,
		Currency:    session.Currency,
	})
	if err != nil {
		log.Printf("[WEBHOOK] finalize failed for lead %s: %v", leadID, err)
		writeError(w, http.StatusInternalServerError, "finalize_failed", "Unlock completion failed")
		return
	}

	if output.Performed {
		middleware.RecordUnlockCompleted()
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"received":  true,
		"completed": output.Performed,
	})
}
