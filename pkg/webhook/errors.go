package webhook

import "errors"

var (
	// ErrInvalidConfiguration indicates missing or invalid signing setup (e.g. empty secret).
	ErrInvalidConfiguration = errors.New("invalid webhook configuration")
	// ErrInvalidPayload indicates an empty or unusable payload.
	ErrInvalidPayload = errors.New("invalid webhook payload")
	// ErrMissingHeaders indicates the required signature headers are absent or malformed.
	ErrMissingHeaders = errors.New("missing webhook signature headers")
	// ErrSignatureMismatch indicates the payload signature does not match.
	ErrSignatureMismatch = errors.New("webhook signature mismatch")
	// ErrSignatureExpired indicates the signature timestamp is outside the allowed window.
	ErrSignatureExpired = errors.New("webhook signature expired")
)
