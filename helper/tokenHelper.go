package helper

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("the token is invalid")
	ErrTokenExpired = errors.New("token is expired")
)

type SignedDetails struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenHelper issues and verifies the HS256 bearer credential.
type TokenHelper struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenHelper(secret string, ttl time.Duration) *TokenHelper {
	return &TokenHelper{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// GenerateToken signs a credential carrying email that expires after the TTL.
func (h *TokenHelper) GenerateToken(email string) (string, error) {
	if email == "" {
		return "", fmt.Errorf("%w: empty identity claim", ErrTokenInvalid)
	}
	now := h.now()
	claims := &SignedDetails{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(h.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.secret)
}

// ValidateToken checks signature, signing method and expiry.
func (h *TokenHelper) ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			return h.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(h.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid || claims.Email == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
