package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/yeremiapane/store-order-api/models"
)

// TokenService signs and verifies identity tokens. It is constructed
// explicitly and injected wherever tokens are handled; there is no package
// level secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

type tokenClaims struct {
	EmployeeID uint        `json:"employee_id"`
	Role       models.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token carrying the employee id and role.
func (ts *TokenService) Issue(employeeID uint, role models.Role) (string, error) {
	claims := &tokenClaims{
		EmployeeID: employeeID,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ts.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "store-order-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.secret)
}

// Verify checks the signature and expiry and recovers the identity. Any
// failure collapses to a single "invalid" outcome; distinguishing an absent
// credential from a rejected one is the caller's job.
func (ts *TokenService) Verify(tokenString string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || claims.EmployeeID == 0 || !claims.Role.Valid() {
		return Identity{}, errors.New("invalid token claims")
	}

	return Identity{EmployeeID: claims.EmployeeID, Role: claims.Role}, nil
}
