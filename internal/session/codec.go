// Package session signs and verifies the compact tokens that stand in for
// re-authentication on every request. A token is the sole carrier of
// identity for its lifetime: claims are trusted as of verification time and
// are never re-checked against the credential store.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cogbio/labsite/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is fixed; there is no refresh or rotation. Expiry forces a
// fresh login.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, wrong algorithm, expired. Callers must treat all of
// them as "no session".
var ErrInvalidToken = errors.New("invalid session token")

// Identity is the set of claims embedded in a token.
type Identity struct {
	AccountID uint
	Email     string
	Name      string
	Role      models.Role
	MemberID  *uint
}

type tokenClaims struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	MemberID *uint  `json:"member_id,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens with a server-side HMAC secret.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Sign mints a token for identity expiring after ttl. Non-positive ttl
// values fall back to TokenTTL.
func (codec *Codec) Sign(identity Identity, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = TokenTTL
	}
	now := time.Now()

	claims := tokenClaims{
		Email:    identity.Email,
		Name:     identity.Name,
		Role:     string(identity.Role),
		MemberID: identity.MemberID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(identity.AccountID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(codec.secret)
}

// Verify decodes a token and returns the embedded identity, or
// ErrInvalidToken for any failure mode.
func (codec *Codec) Verify(raw string) (Identity, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return codec.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return Identity{}, ErrInvalidToken
	}

	accountID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		AccountID: uint(accountID),
		Email:     claims.Email,
		Name:      claims.Name,
		Role:      models.Role(claims.Role),
		MemberID:  claims.MemberID,
	}, nil
}
