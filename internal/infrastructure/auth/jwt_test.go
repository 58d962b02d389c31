package auth

import (
	"testing"
	"time"

	"github.com/felipesbcabral/desafio-pc-sub000/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func testConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                "test-secret-key-at-least-32-chars",
		AccessTokenExpiration: 15 * time.Minute,
		Issuer:                "debt-titles",
	}
}

func newTestJWTService(t *testing.T, now *time.Time) *JWTService {
	t.Helper()
	svc, err := NewJWTService(testConfig(), WithClock(func() time.Time { return *now }))
	require.NoError(t, err)
	return svc
}

func TestNewJWTService(t *testing.T) {
	t.Run("requires secret", func(t *testing.T) {
		_, err := NewJWTService(config.JWTConfig{})
		assert.ErrorIs(t, err, ErrEmptySecret)
	})

	t.Run("defaults expiration", func(t *testing.T) {
		svc, err := NewJWTService(config.JWTConfig{Secret: "s"})
		require.NoError(t, err)
		assert.Equal(t, time.Hour, svc.Expiration())
	})
}

func TestGenerateAndValidate(t *testing.T) {
	now := testNow
	svc := newTestJWTService(t, &now)

	token, err := svc.Generate("admin")
	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, testNow.Add(15*time.Minute), token.ExpiresAt)

	claims, err := svc.Validate(token.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "debt-titles", claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestValidate_Expired(t *testing.T) {
	now := testNow
	svc := newTestJWTService(t, &now)

	token, err := svc.Generate("admin")
	require.NoError(t, err)

	now = testNow.Add(16 * time.Minute)
	_, err = svc.Validate(token.Token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidate_NotYetValid(t *testing.T) {
	now := testNow
	svc := newTestJWTService(t, &now)

	token, err := svc.Generate("admin")
	require.NoError(t, err)

	now = testNow.Add(-time.Hour)
	_, err = svc.Validate(token.Token)
	assert.ErrorIs(t, err, ErrTokenNotYetValid)
}

func TestValidate_Rejections(t *testing.T) {
	now := testNow
	svc := newTestJWTService(t, &now)

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Validate("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.Secret = "another-secret-key-at-least-32ch"
		other, err := NewJWTService(cfg, WithClock(func() time.Time { return now }))
		require.NoError(t, err)
		token, err := other.Generate("admin")
		require.NoError(t, err)

		_, err = svc.Validate(token.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other issuer", func(t *testing.T) {
		cfg := testConfig()
		cfg.Issuer = "someone-else"
		other, err := NewJWTService(cfg, WithClock(func() time.Time { return now }))
		require.NoError(t, err)
		token, err := other.Generate("admin")
		require.NoError(t, err)

		_, err = svc.Validate(token.Token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("alg none", func(t *testing.T) {
		claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			Issuer:    "debt-titles",
			Audience:  jwt.ClaimStrings{"debt-titles"},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Validate(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "debt-titles",
			Audience:  jwt.ClaimStrings{"debt-titles"},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		}}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testConfig().Secret))
		require.NoError(t, err)

		_, err = svc.Validate(signed)
		assert.ErrorIs(t, err, ErrMissingSubject)
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
			Subject:  "admin",
			Issuer:   "debt-titles",
			Audience: jwt.ClaimStrings{"debt-titles"},
		}}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testConfig().Secret))
		require.NoError(t, err)

		_, err = svc.Validate(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
