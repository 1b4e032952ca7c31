package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sheet-sync/internal/logger"
	"github.com/MKhiriev/go-sheet-sync/internal/utils"
	"github.com/MKhiriev/go-sheet-sync/models"
	"github.com/golang-jwt/jwt/v5"
)

// auth is an HTTP middleware that enforces JWT-based authentication of
// operators.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// with the configured sign key and issuer, and on success stores the
// operator named by the token in the request context under
// [utils.OperatorCtxKey]. Every rejection answers 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Str("func", "*Handler.auth").Send()
			unauthorized(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Send()
			unauthorized(w, err)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokenSignKey, h.tokenIssuer)
		if err != nil {
			switch {
			case errors.Is(err, jwt.ErrTokenExpired):
				log.Err(err).Str("func", "*Handler.auth").Msg("token expired")
				unauthorized(w, ErrTokenExpired)
			default:
				log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
				unauthorized(w, ErrInvalidToken)
			}
			return
		}

		l := log.With().Str("operator", token.Operator).Logger()
		ctx := context.WithValue(l.WithContext(r.Context()), utils.OperatorCtxKey, token.Operator)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusUnauthorized)
}
