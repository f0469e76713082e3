package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/lead-exchange/internal/entity"
	"github.com/xavierca1/lead-exchange/internal/infra/integration/stripe"
	"github.com/xavierca1/lead-exchange/internal/usecase"
)

const webhookSecret = "whsec_test_secret"

var webhookNow = time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC)

type mockUnlockRepo struct {
	mock.Mock
}

func (m *mockUnlockRepo) FinalizeUnlock(ctx context.Context, tx *entity.UnlockTransaction) (usecase.FinalizeResult, error) {
	args := m.Called(ctx, tx)
	return args.Get(0).(usecase.FinalizeResult), args.Error(1)
}

func newWebhookHandler(unlockRepo *mockUnlockRepo) *WebhookHandler {
	clock := func() time.Time { return webhookNow }
	finalizeUC := usecase.NewFinalizeUnlockUseCase(unlockRepo, nil, nil, nil, clock)
	return NewWebhookHandler(finalizeUC, webhookSecret, clock)
}

func completedEventBody(t *testing.T, metadata map[string]string) []byte {
	t.Helper()

	session := map[string]any{
		"id":           "cs_test_abc",
		"amount_total": 24900,
		"currency":     "aud",
		"metadata":     metadata,
	}
	object, err := json.Marshal(session)
	if err != nil {
		t.Fatalf("session marshal failed: %v", err)
	}

	return []byte(fmt.Sprintf(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":%s}}`, object))
}

func postWebhook(handler *WebhookHandler, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/stripe", bytes.NewReader(body))
	if signature != "" {
		req.Header.Set("Stripe-Signature", signature)
	}

	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestWebhookCompletedSessionUnlocksLead(t *testing.T) {
	unlockRepo := new(mockUnlockRepo)
	unlockRepo.On("FinalizeUnlock", mock.Anything, mock.MatchedBy(func(tx *entity.UnlockTransaction) bool {
		return tx.LeadID == "lead-1" &&
			tx.BrokerID == "broker-a" &&
			tx.StripeSessionID == "cs_test_abc" &&
			tx.AmountCents == 24900 &&
			tx.Currency == "aud"
	})).Return(usecase.FinalizeResult{Performed: true}, nil)

	body := completedEventBody(t, map[string]string{"lead_id": "lead-1", "broker_id": "broker-a"})
	rec := postWebhook(newWebhookHandler(unlockRepo), body, stripe.SignPayload(body, webhookSecret, webhookNow))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"completed":true`)
	unlockRepo.AssertExpectations(t)
}

func TestWebhookReplayAcknowledgedWithoutCompletion(t *testing.T) {
	unlockRepo := new(mockUnlockRepo)
	unlockRepo.On("FinalizeUnlock", mock.Anything, mock.Anything).
		Return(usecase.FinalizeResult{Performed: false, Reason: usecase.ReasonAlreadyRecorded}, nil)

	body := completedEventBody(t, map[string]string{"lead_id": "lead-1", "broker_id": "broker-a"})
	rec := postWebhook(newWebhookHandler(unlockRepo), body, stripe.SignPayload(body, webhookSecret, webhookNow))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"completed":false`)
}

func TestWebhookMissingSignatureRejected(t *testing.T) {
	unlockRepo := new(mockUnlockRepo)

	body := completedEventBody(t, map[string]string{"lead_id": "lead-1", "broker_id": "broker-a"})
	rec := postWebhook(newWebhookHandler(unlockRepo), body, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_signature")
	unlockRepo.AssertNotCalled(t, "FinalizeUnlock", mock.Anything, mock.Anything)
}

func TestWebhookTamperedBodyRejected(t *testing.T) {
	unlockRepo := new(mockUnlockRepo)

	body := completedEventBody(t, map[string]string{"lead_id": "lead-1", "broker_id": "broker-a"})
	signature := stripe.SignPayload(body, webhookSecret, webhookNow)
	tampered := bytes.Replace(body, []byte("lead-1"), []byte("lead-2"), 1)

	rec := postWebhook(newWebhookHandler(unlockRepo), tampered, signature)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_signature")
	unlockRepo.AssertNotCalled(t, "FinalizeUnlock", mock.Anything, mock.Anything)
}

func TestWebhookStaleTimestampRejected(t *testing.T) {
	unlockRepo := new(mockUnlockRepo)

	body := completedEventBody(t, map[string]string{"lead_id": "lead-1", "broker_id": "broker-a"})
	signature := stripe.SignPayload(body, webhookSecret, webhookNow.Add(-6*time.Minute))

	rec := postWebhook(newWebhookHandler(unlockRepo), body, signature)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	unlockRepo.AssertNotCalled(t, "FinalizeUnlock", mock.Anything, mock.Anything)
}

func TestWebhookUnknownEventTypeAcknowledged(t *testing.T) {
	unlockRepo := new(mockUnlockRepo)

	body := []byte(`{"id":"evt_2","type":"invoice.paid","data":{"object":{}}}`)
	rec := postWebhook(newWebhookHandler(unlockRepo), body, stripe.SignPayload(body, webhookSecret, webhookNow))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"received":true`)
	unlockRepo.AssertNotCalled(t, "FinalizeUnlock", mock.Anything, mock.Anything)
}

func TestWebhookMissingMetadataRejected(t *testing.T) {
	unlockRepo := new(mockUnlockRepo)

	body := completedEventBody(t, map[string]string{"lead_id": "lead-1"})
	rec := postWebhook(newWebhookHandler(unlockRepo), body, stripe.SignPayload(body, webhookSecret, webhookNow))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing_metadata")
	unlockRepo.AssertNotCalled(t, "FinalizeUnlock", mock.Anything, mock.Anything)
}
