package stripe

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var signNow = time.Date(2026, 3, 10, 9, 5, 0, 0, time.UTC)

func TestVerifySignatureAcceptsValidHeader(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	header := SignPayload(payload, "whsec_a", signNow)

	err := VerifySignature(payload, header, "whsec_a", DefaultTolerance, signNow)
	assert.NoError(t, err)
}

func TestVerifySignatureRejectsWrongSecret(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	header := SignPayload(payload, "whsec_a", signNow)

	err := VerifySignature(payload, header, "whsec_b", DefaultTolerance, signNow)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifySignatureRejectsTamperedPayload(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	header := SignPayload(payload, "whsec_a", signNow)

	err := VerifySignature([]byte(`{"id":"evt_2"}`), header, "whsec_a", DefaultTolerance, signNow)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerifySignatureRejectsMissingHeader(t *testing.T) {
	err := VerifySignature([]byte(`{}`), "", "whsec_a", DefaultTolerance, signNow)
	assert.ErrorIs(t, err, ErrMissingSignature)
}

func TestVerifySignatureRejectsStaleTimestamp(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	header := SignPayload(payload, "whsec_a", signNow.Add(-DefaultTolerance-time.Second))

	err := VerifySignature(payload, header, "whsec_a", DefaultTolerance, signNow)
	assert.ErrorIs(t, err, ErrStaleTimestamp)
}

func TestVerifySignatureRejectsMalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no signature element", fmt.Sprintf("t=%d", signNow.Unix())},
		{"no timestamp", "v1=deadbeef"},
		{"garbage timestamp", "t=notanumber,v1=deadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifySignature([]byte(`{}`), tt.header, "whsec_a", DefaultTolerance, signNow)
			assert.ErrorIs(t, err, ErrInvalidSignature)
		})
	}
}

func TestVerifySignatureAcceptsAnyMatchingCandidate(t *testing.T) {
	payload := []byte(`{"id":"evt_1"}`)
	valid := SignPayload(payload, "whsec_a", signNow)

	// A rotated endpoint sends multiple v1 candidates; one match is enough.
	stale := "0000000000000000000000000000000000000000000000000000000000000000"
	header := fmt.Sprintf("%s,v1=%s", valid, stale)

	err := VerifySignature(payload, header, "whsec_a", DefaultTolerance, signNow)
	assert.NoError(t, err)
}
