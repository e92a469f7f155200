package auth

import (
	"testing"
	"time"

	"checkin/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(secret string) *config.Config {
	cfg := &config.Config{Session: &config.SessionConfig{TokenTTL: 2 * time.Hour}}
	cfg.SecretKey.Session = secret

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(testConfig("test_session_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := svc.GenerateSessionToken("google-sub-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "google-sub-1", claims.UserID)
	assert.Equal(t, "google-sub-1", claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.Equal(t, 2*time.Hour, svc.SessionDuration())
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(testConfig(""))
	assert.Error(t, err)
}

func TestJWTService_DefaultDuration(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Session = "secret"

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, svc.SessionDuration())
}

func TestJWTService_InvalidTokens(t *testing.T) {
	svc, err := NewJWTService(testConfig("secret-a"))
	require.NoError(t, err)
	other, err := NewJWTService(testConfig("secret-b"))
	require.NoError(t, err)

	foreign, err := other.GenerateSessionToken("user-1")
	require.NoError(t, err)

	expiredSvc := svc.(*jwtService)
	expiredSvc.now = func() time.Time { return time.Now().Add(-3 * time.Hour) }
	expired, err := expiredSvc.GenerateSessionToken("user-1")
	require.NoError(t, err)
	expiredSvc.now = time.Now

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": "user-1", "iss": sessionIssuer}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "empty", token: ""},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
		{name: "alg none", token: noneAlg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateSessionToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
