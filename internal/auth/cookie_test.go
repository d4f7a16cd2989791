package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndVerify(t *testing.T) {
	signer := NewCookieSigner("test-secret")

	signed := signer.Sign("some-token")
	value, err := signer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "some-token", value)
}

func TestVerifyRejectsTampering(t *testing.T) {
	signer := NewCookieSigner("test-secret")
	other := NewCookieSigner("other-secret")

	tests := []struct {
		name  string
		value string
	}{
		{"missing separator", "justonevalue"},
		{"garbage signature", "c29tZS10b2tlbg==|bm90LWEtc2lnbmF0dXJl"},
		{"signed under different secret", other.Sign("some-token")},
		{"bad base64", "!!!|!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := signer.Verify(tt.value)
			assert.Error(t, err)
		})
	}
}

func TestSecretRotationInvalidatesCookies(t *testing.T) {
	old := NewCookieSigner("old-secret")
	signed := old.Sign("some-token")

	rotated := NewCookieSigner("new-secret")
	_, err := rotated.Verify(signed)
	assert.Error(t, err)
}
