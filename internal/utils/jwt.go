package utils // package utils provides helper functions for token creation and hashing

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// ErrNoSecret is returned when token creation or parsing is attempted
// without a signing secret. The secret is injected by callers rather than
// read from a global so tests can use distinct secrets per case.
var ErrNoSecret = errors.New("jwt: signing secret is empty")

// Claims are the identity facts embedded in an access token: the user's
// id, username and role, plus the registered expiry/issued-at fields. They
// exist only inside the token and are reconstructed on every verification;
// nothing is stored server-side.
type Claims struct {
	UserID   uint64 `json:"uid"`
	Username string `json:"username,omitempty"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AccessToken pairs a signed JWT string with its expiration time. Access
// tokens are carried in the Authorization header on protected endpoints.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user. The TTL is
// given in minutes; expiry and issued-at are set from the current UTC
// time. An empty secret is a configuration error.
func NewAccessToken(secret string, userID uint64, username, role string, ttlMin int) (AccessToken, error) {
	if secret == "" {
		return AccessToken{}, ErrNoSecret
	}
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}

// ParseAccessToken verifies the signature and expiry of a token and
// returns its claims. Verification is all-or-nothing: any signature,
// format or expiry problem yields an error and no claims. Expired tokens
// surface jwt.ErrTokenExpired so callers can distinguish them if needed.
func ParseAccessToken(secret, token string) (*Claims, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything but HMAC; an attacker must
		// not be able to downgrade the algorithm.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tok.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
