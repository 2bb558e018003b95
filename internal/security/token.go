package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fastlane-backend/internal/domain"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Caller is the resolved identity of the authenticated requester, threaded
// explicitly through every gated operation. UserID is the underlying person
// record that also owns the caller's driver and employee records, which is
// what member-tier ownership checks compare against.
type Caller struct {
	AccountID int64
	UserID    int64
	Role      domain.AccountType
}

// IsMember reports whether the caller sits in the restricted tier.
func (c Caller) IsMember() bool {
	return c.Role.IsMember()
}

// IsAdmin reports whether the caller holds the top administrative tier.
func (c Caller) IsAdmin() bool {
	return c.Role.IsAdmin()
}

// AccountClaims carries the caller identity inside an access token.
type AccountClaims struct {
	AccountID int64  `json:"account_id"`
	UserID    int64  `json:"user_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateAccessToken(account *domain.Account) (string, error)
	ValidateToken(tokenString string) (Caller, error)
}

type tokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expiryMinutes int) TokenManager {
	if expiryMinutes <= 0 {
		expiryMinutes = 60
	}
	return &tokenManager{
		secret: []byte(secret),
		expiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

func (m *tokenManager) GenerateAccessToken(account *domain.Account) (string, error) {
	claims := AccountClaims{
		AccountID: account.ID,
		UserID:    account.UserID,
		Role:      string(account.AccountType),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(account.ID, 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "fastlane-backend",
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (Caller, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccountClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Caller{}, ErrExpiredToken
		}
		return Caller{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*AccountClaims)
	if !ok || !token.Valid {
		return Caller{}, ErrInvalidToken
	}
	return Caller{
		AccountID: claims.AccountID,
		UserID:    claims.UserID,
		Role:      domain.AccountType(claims.Role),
	}, nil
}
