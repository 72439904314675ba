// Package webhook implements HMAC-SHA256 webhook signing and verification
// using the id/timestamp/signature header trio common to major providers.
//
// The signature covers "timestamp.payload" so a captured delivery cannot be
// replayed outside the configured age window. Verification uses constant-time
// comparison.
//
// Inbound verification:
//
//	headers, err := webhook.ExtractSignatureHeaders(r.Header)
//	if err != nil { /* 400 */ }
//	if err := webhook.VerifySignature(secret, body, headers, 5*time.Minute); err != nil { /* 400 */ }
package webhook
