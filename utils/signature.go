package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// SignatureHeader is the HTTP header Linear uses to deliver the webhook
// signature: an HMAC-SHA256 hex digest of the raw request body.
const SignatureHeader = "Linear-Signature"

// VerifySignature checks that signature is the HMAC-SHA256 hex digest of
// body under secret. The comparison is constant-time. Fails closed: a
// missing signature, missing secret, or malformed hex all yield false.
func VerifySignature(body []byte, signature, secret string) bool {
	if signature == "" || secret == "" {
		return false
	}

	// Accept both raw hex and "sha256=<hex>" prefixed formats
	sig := strings.TrimPrefix(strings.TrimSpace(signature), "sha256=")
	sigBytes, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(sigBytes, mac.Sum(nil))
}

// ExtractSignature performs a case-insensitive lookup of the signature
// header in a raw header map. Returns "" if the header is absent or empty.
func ExtractSignature(headers map[string][]string) string {
	for key, values := range headers {
		if strings.EqualFold(key, SignatureHeader) {
			if len(values) > 0 && values[0] != "" {
				return values[0]
			}
		}
	}
	return ""
}
