package jwt_test

import (
	"strings"
	"testing"

	"tick/config"
	"tick/infras/jwt"

	"github.com/stretchr/testify/assert"
)

func newCodec(secret string) jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "tick-test"
	cfg.JWT.Secret = secret

	return jwt.New(cfg)
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := newCodec("tatasalt")

	token, err := codec.Issue("user-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := codec.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "auth", claims.Access)
}

func TestVerifyTamperedToken(t *testing.T) {
	codec := newCodec("tatasalt")

	token, err := codec.Issue("user-1")
	assert.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'a' {
		sig[0] = 'b'
	} else {
		sig[0] = 'a'
	}
	parts[2] = string(sig)

	_, err = codec.Verify(strings.Join(parts, "."))
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := newCodec("secret-one").Issue("user-1")
	assert.NoError(t, err)

	_, err = newCodec("secret-two").Verify(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestVerifyMalformed(t *testing.T) {
	codec := newCodec("tatasalt")

	_, err := codec.Verify("not-a-token")
	assert.ErrorIs(t, err, jwt.ErrMalformedToken)

	_, err = codec.Verify("")
	assert.ErrorIs(t, err, jwt.ErrMalformedToken)
}

func TestIssueDeterministicWithoutExpiry(t *testing.T) {
	codec := newCodec("tatasalt")

	first, err := codec.Issue("user-1")
	assert.NoError(t, err)

	second, err := codec.Issue("user-1")
	assert.NoError(t, err)

	// No issued-at claim is set when expiry is disabled, so identical
	// claims sign to identical tokens.
	assert.Equal(t, first, second)
}
