package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-sheet-sync/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
	ErrInvalidTokenParams         = errors.New("issuer, operator, ttl and sign key are required")
	ErrTokenWithoutOperator       = errors.New("token names no operator")
)

// GenerateJWTToken signs an HS256 token whose subject is operator.
//
//	token, err := utils.GenerateJWTToken("go-sheet-sync", "ops@bank", time.Hour, "secret")
func GenerateJWTToken(issuer, operator string, ttl time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || operator == "" || ttl == 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	issuedAt := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   operator,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
	})

	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("sign operator token: %w", err)
	}

	return models.Token{Token: token, SignedString: signed, Operator: operator}, nil
}

// ValidateAndParseJWTToken accepts only HS256 tokens signed with signKey,
// issued by issuer, carrying an expiry that has not passed and a subject.
func ValidateAndParseJWTToken(tokenString, signKey, issuer string) (models.Token, error) {
	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(*jwt.Token) (any, error) { return []byte(signKey), nil },
		jwt.WithIssuer(issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse operator token: %w", err)
	}
	if claims.Subject == "" {
		return models.Token{}, ErrTokenWithoutOperator
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims.RegisteredClaims,
		SignedString:     tokenString,
		Operator:         claims.Subject,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <t>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}
	return parts[1], nil
}
