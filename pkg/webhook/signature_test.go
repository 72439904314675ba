package webhook_test

import (
	"encoding/hex"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agencyscope/agencyscope/pkg/webhook"
)

func TestSignPayload(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		secret  string
		payload []byte
		wantErr error
	}{
		{
			name:    "valid signature",
			secret:  "whsec_123",
			payload: []byte(`{"type":"subscription.updated"}`),
		},
		{
			name:    "empty secret",
			secret:  "",
			payload: []byte(`{}`),
			wantErr: webhook.ErrInvalidConfiguration,
		},
		{
			name:    "empty payload",
			secret:  "whsec_123",
			payload: nil,
			wantErr: webhook.ErrInvalidPayload,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			headers, err := webhook.SignPayload(tt.secret, tt.payload)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, headers.ID)
			assert.NotZero(t, headers.Timestamp)

			_, err = hex.DecodeString(headers.Signature)
			assert.NoError(t, err, "signature should be hex encoded")
		})
	}
}

func TestVerifySignature(t *testing.T) {
	t.Parallel()

	secret := "whsec_test"
	payload := []byte(`{"type":"subscription.created","data":{"id":"sub_1"}}`)

	valid, err := webhook.SignPayload(secret, payload)
	require.NoError(t, err)

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		assert.NoError(t, webhook.VerifySignature(secret, payload, valid, 5*time.Minute))
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()
		err := webhook.VerifySignature("whsec_other", payload, valid, 5*time.Minute)
		assert.ErrorIs(t, err, webhook.ErrSignatureMismatch)
	})

	t.Run("tampered payload", func(t *testing.T) {
		t.Parallel()
		err := webhook.VerifySignature(secret, []byte(`{"type":"subscription.deleted"}`), valid, 5*time.Minute)
		assert.ErrorIs(t, err, webhook.ErrSignatureMismatch)
	})

	t.Run("expired timestamp", func(t *testing.T) {
		t.Parallel()
		old := webhook.SignatureHeaders{
			Signature: valid.Signature,
			Timestamp: time.Now().Add(-2 * time.Hour).Unix(),
			ID:        valid.ID,
		}
		err := webhook.VerifySignature(secret, payload, old, 5*time.Minute)
		assert.ErrorIs(t, err, webhook.ErrSignatureExpired)
	})

	t.Run("age check disabled", func(t *testing.T) {
		t.Parallel()
		// Re-sign with an old timestamp to keep the signature consistent.
		assert.NoError(t, webhook.VerifySignature(secret, payload, valid, 0))
	})
}

func TestExtractSignatureHeaders(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		signed, err := webhook.SignPayload("s", []byte("x"))
		require.NoError(t, err)

		h := http.Header{}
		signed.Apply(h)

		got, err := webhook.ExtractSignatureHeaders(h)
		require.NoError(t, err)
		assert.Equal(t, signed, got)
	})

	t.Run("missing signature", func(t *testing.T) {
		t.Parallel()

		h := http.Header{}
		h.Set(webhook.HeaderTimestamp, strconv.FormatInt(time.Now().Unix(), 10))

		_, err := webhook.ExtractSignatureHeaders(h)
		assert.ErrorIs(t, err, webhook.ErrMissingHeaders)
	})

	t.Run("bad timestamp", func(t *testing.T) {
		t.Parallel()

		h := http.Header{}
		h.Set(webhook.HeaderSignature, "abc")
		h.Set(webhook.HeaderTimestamp, "not-a-number")

		_, err := webhook.ExtractSignatureHeaders(h)
		assert.ErrorIs(t, err, webhook.ErrMissingHeaders)
	})
}
