package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"firebase.google.com/go/auth"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/time"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestJWTVerifier(t *testing.T) {
	tp := timeprovider.NewRealTimeProvider()
	verifier := NewJWTVerifier(secret, "ev-rewards", tp)
	ctx := context.Background()

	t.Run("Valid token", func(t *testing.T) {
		token, err := IssueToken(secret, "ev-rewards", "driver@example.com", coreport.Minute, tp)
		require.NoError(t, err)

		id, err := verifier.Verify(ctx, token)

		require.NoError(t, err)
		assert.Equal(t, "driver@example.com", id.Email)
		assert.Equal(t, "driver@example.com", id.Subject)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := IssueToken("other", "ev-rewards", "driver@example.com", coreport.Minute, tp)
		require.NoError(t, err)

		_, err = verifier.Verify(ctx, token)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := IssueToken(secret, "ev-rewards", "driver@example.com", -coreport.Minute, tp)
		require.NoError(t, err)

		_, err = verifier.Verify(ctx, token)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Wrong issuer", func(t *testing.T) {
		token, err := IssueToken(secret, "someone-else", "driver@example.com", coreport.Minute, tp)
		require.NoError(t, err)

		_, err = verifier.Verify(ctx, token)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Missing email claim", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Issuer:    "ev-rewards",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = verifier.Verify(ctx, token)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Unsigned token", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Email: "x@example.com"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = verifier.Verify(ctx, token)

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Garbage and empty", func(t *testing.T) {
		_, err := verifier.Verify(ctx, "not.a.token")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)

		_, err = verifier.Verify(ctx, " ")
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}

type stubIDTokens struct {
	token *auth.Token
	err   error
}

func (s stubIDTokens) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return s.token, s.err
}

func TestFirebaseVerifier(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid token", func(t *testing.T) {
		v := NewFirebaseVerifierWithClient(stubIDTokens{token: &auth.Token{
			UID:    "uid-1",
			Claims: map[string]interface{}{"email": "driver@example.com"},
		}}, logger.NewNoopLogger())

		id, err := v.Verify(ctx, "token")

		require.NoError(t, err)
		assert.Equal(t, "uid-1", id.Subject)
		assert.Equal(t, "driver@example.com", id.Email)
	})

	t.Run("Rejected token", func(t *testing.T) {
		v := NewFirebaseVerifierWithClient(stubIDTokens{err: errors.New("expired")}, logger.NewNoopLogger())

		_, err := v.Verify(ctx, "token")

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("No email", func(t *testing.T) {
		v := NewFirebaseVerifierWithClient(stubIDTokens{token: &auth.Token{UID: "uid-2", Claims: map[string]interface{}{}}}, logger.NewNoopLogger())

		_, err := v.Verify(ctx, "token")

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Empty token", func(t *testing.T) {
		v := NewFirebaseVerifierWithClient(stubIDTokens{}, logger.NewNoopLogger())

		_, err := v.Verify(ctx, "")

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}
