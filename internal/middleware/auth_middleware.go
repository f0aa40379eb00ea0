package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey string

const (
	ContextKeyUserID     = contextKey("userID")
	ContextKeyPropertyID = contextKey("propertyID")
	ContextKeyRole       = contextKey("role")
)

// UserLookup resolves the token subject to a stored user.
type UserLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// AuthMiddleware guards protected endpoints. Reads the JWT from
// Authorization: Bearer ..., verifies it and confirms the user still exists.
// Any failure returns 401.
func AuthMiddleware(secret []byte, users UserLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr, err := extractAccessToken(r)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, err.Error(), nil,
				)
				return
			}

			claims, vErr := ValidateToken(tokenStr, secret, time.Now())
			if vErr != nil {
				if errors.Is(vErr, jwt.ErrTokenExpired) {
					utils.RespondErrorWithCode(
						w, http.StatusUnauthorized, utils.ErrCodeTokenExpired, "Token expired", nil, vErr,
					)
					return
				}
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token", nil, vErr,
				)
				return
			}

			sub, _ := claims["sub"].(string)
			userID, err := uuid.Parse(sub)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid token payload", nil, err,
				)
				return
			}

			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				utils.RespondErrorWithCode(
					w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to load user", nil, err,
				)
				return
			}
			if user == nil || !user.IsActive {
				utils.RespondErrorWithCode(
					w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "User not found", nil,
				)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUserID, userID)
			if role, ok := claims["role"].(string); ok {
				ctx = context.WithValue(ctx, ContextKeyRole, models.UserRole(role))
			}
			if pid, ok := claims["property_id"].(string); ok && pid != "" {
				if propertyID, err := uuid.Parse(pid); err == nil {
					ctx = context.WithValue(ctx, ContextKeyPropertyID, propertyID)
				}
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractAccessToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return "", errors.New("missing Authorization header")
	}
	token := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	if token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ContextKeyUserID).(uuid.UUID)
	return id, ok
}

func PropertyIDFromContext(ctx context.Context) *uuid.UUID {
	if id, ok := ctx.Value(ContextKeyPropertyID).(uuid.UUID); ok {
		return &id
	}
	return nil
}

func RoleFromContext(ctx context.Context) models.UserRole {
	role, _ := ctx.Value(ContextKeyRole).(models.UserRole)
	return role
}
