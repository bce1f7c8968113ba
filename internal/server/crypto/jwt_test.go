package crypto_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/IvanChernomyrdin/go-bookmarks/internal/server/crypto"
)

func testJWTConfig() crypto.JWTConfig {
	return crypto.JWTConfig{
		Issuer:     "bookmarks",
		Audience:   "bookmarks-api",
		SigningKey: "0123456789abcdef0123456789abcdef",
		AccessTTL:  time.Minute,
	}
}

func TestNewAccessToken_RoundTrip(t *testing.T) {
	cfg := testJWTConfig()

	tok, err := crypto.NewAccessToken(42, "a@b.c", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, email, err := crypto.ParseAccessToken(tok, cfg)
	require.NoError(t, err)
	require.Equal(t, int64(42), id)
	require.Equal(t, "a@b.c", email)
}

func TestNewAccessToken_Claims(t *testing.T) {
	cfg := testJWTConfig()

	tok, err := crypto.NewAccessToken(5, "x@y.z", cfg)
	require.NoError(t, err)

	claims := &crypto.AccessClaims{}
	_, err = jwt.ParseWithClaims(tok, claims, func(*jwt.Token) (any, error) {
		return []byte(cfg.SigningKey), nil
	})
	require.NoError(t, err)
	require.Equal(t, "5", claims.Subject)
	require.Equal(t, "bookmarks", claims.Issuer)
	require.Equal(t, jwt.ClaimStrings{"bookmarks-api"}, claims.Audience)
	require.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParseAccessToken_Rejects(t *testing.T) {
	cfg := testJWTConfig()
	good, err := crypto.NewAccessToken(1, "a@b.c", cfg)
	require.NoError(t, err)

	expiredCfg := cfg
	expiredCfg.AccessTTL = -time.Minute
	expired, err := crypto.NewAccessToken(1, "a@b.c", expiredCfg)
	require.NoError(t, err)

	otherKey := cfg
	otherKey.SigningKey = "ffffffffffffffffffffffffffffffff"

	otherAud := cfg
	otherAud.Audience = "someone-else"

	tests := []struct {
		name string
		raw  string
		cfg  crypto.JWTConfig
	}{
		{"garbage", "not-a-jwt", cfg},
		{"expired", expired, cfg},
		{"wrong key", good, otherKey},
		{"wrong audience", good, otherAud},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := crypto.ParseAccessToken(tt.raw, tt.cfg)
			require.ErrorIs(t, err, crypto.ErrInvalidToken)
		})
	}
}

func TestParseAccessToken_RejectsNonHS256(t *testing.T) {
	cfg := testJWTConfig()
	claims := crypto.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, _, err = crypto.ParseAccessToken(raw, cfg)
	require.ErrorIs(t, err, crypto.ErrInvalidToken)
}
