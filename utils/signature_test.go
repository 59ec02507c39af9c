package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signBody(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "test_webhook_secret"
	body := []byte(`{"action":"create","type":"Comment"}`)
	validSig := signBody(body, secret)

	tests := []struct {
		name      string
		body      []byte
		signature string
		secret    string
		expected  bool
	}{
		{
			name:      "valid signature",
			body:      body,
			signature: validSig,
			secret:    secret,
			expected:  true,
		},
		{
			name:      "valid signature with sha256 prefix",
			body:      body,
			signature: "sha256=" + validSig,
			secret:    secret,
			expected:  true,
		},
		{
			name:      "signature over different body",
			body:      []byte(`{"action":"update","type":"Comment"}`),
			signature: validSig,
			secret:    secret,
			expected:  false,
		},
		{
			name:      "wrong secret",
			body:      body,
			signature: validSig,
			secret:    "other_secret",
			expected:  false,
		},
		{
			name:      "missing signature fails closed",
			body:      body,
			signature: "",
			secret:    secret,
			expected:  false,
		},
		{
			name:      "missing secret fails closed",
			body:      body,
			signature: validSig,
			secret:    "",
			expected:  false,
		},
		{
			name:      "malformed hex",
			body:      body,
			signature: "not-hex-at-all",
			secret:    secret,
			expected:  false,
		},
		{
			name:      "truncated signature",
			body:      body,
			signature: validSig[:20],
			secret:    secret,
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, VerifySignature(tt.body, tt.signature, tt.secret))
		})
	}
}

func TestVerifySignature_SingleByteMutationFlips(t *testing.T) {
	secret := "test_webhook_secret"
	body := []byte(`{"action":"create"}`)
	sig := signBody(body, secret)

	assert.True(t, VerifySignature(body, sig, secret))

	mutated := []byte(sig)
	if mutated[0] == '0' {
		mutated[0] = '1'
	} else {
		mutated[0] = '0'
	}
	assert.False(t, VerifySignature(body, string(mutated), secret))
}

func TestExtractSignature(t *testing.T) {
	sig := "abcdef0123456789"

	tests := []struct {
		name     string
		headers  http.Header
		expected string
	}{
		{
			name:     "canonical header name",
			headers:  http.Header{"Linear-Signature": {sig}},
			expected: sig,
		},
		{
			name:     "lowercase header name",
			headers:  http.Header{"linear-signature": {sig}},
			expected: sig,
		},
		{
			name:     "absent header",
			headers:  http.Header{"Content-Type": {"application/json"}},
			expected: "",
		},
		{
			name:     "empty value",
			headers:  http.Header{"Linear-Signature": {""}},
			expected: "",
		},
		{
			name:     "nil headers",
			headers:  nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSignature(tt.headers))
		})
	}
}
