package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

type fakeUsers map[uuid.UUID]*models.User

func (f fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	return f[id], nil
}

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return s
}

func validClaims(userID uuid.UUID, propertyID string, role string) jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"iss":         TokenIssuer,
		"sub":         userID.String(),
		"username":    "manager1",
		"property_id": propertyID,
		"role":        role,
		"iat":         now.Unix(),
		"exp":         now.Add(time.Hour).Unix(),
	}
}

func runAuth(t *testing.T, users fakeUsers, header string) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()
	var seen *http.Request
	h := AuthMiddleware(testSecret, users)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r
		w.WriteHeader(http.StatusNoContent)
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec, seen
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestAuthMiddleware_ValidTokenPopulatesContext(t *testing.T) {
	userID, propertyID := uuid.New(), uuid.New()
	users := fakeUsers{userID: {ID: userID, IsActive: true, Role: models.RoleManager}}
	token := signToken(t, testSecret, validClaims(userID, propertyID.String(), "manager"))

	rec, seen := runAuth(t, users, "Bearer "+token)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, seen)

	gotID, ok := UserIDFromContext(seen.Context())
	require.True(t, ok)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, models.RoleManager, RoleFromContext(seen.Context()))
	require.NotNil(t, PropertyIDFromContext(seen.Context()))
	assert.Equal(t, propertyID, *PropertyIDFromContext(seen.Context()))
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, seen := runAuth(t, fakeUsers{}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
	assert.Equal(t, utils.ErrCodeUnauthorized, decodeError(t, rec).Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	userID := uuid.New()
	claims := validClaims(userID, "", "admin")
	claims["exp"] = time.Now().Add(-time.Minute).Unix()

	rec, _ := runAuth(t, fakeUsers{userID: {ID: userID, IsActive: true}}, "Bearer "+signToken(t, testSecret, claims))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, utils.ErrCodeTokenExpired, body.Code)
	assert.Equal(t, "Token expired", body.Message)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	userID := uuid.New()
	token := signToken(t, []byte("other-secret"), validClaims(userID, "", "admin"))

	rec, _ := runAuth(t, fakeUsers{userID: {ID: userID, IsActive: true}}, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decodeError(t, rec).Message)
}

func TestAuthMiddleware_WrongIssuer(t *testing.T) {
	userID := uuid.New()
	claims := validClaims(userID, "", "admin")
	claims["iss"] = "someone-else"

	rec, _ := runAuth(t, fakeUsers{userID: {ID: userID, IsActive: true}}, "Bearer "+signToken(t, testSecret, claims))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_BadSubject(t *testing.T) {
	claims := validClaims(uuid.New(), "", "admin")
	claims["sub"] = "not-a-uuid"

	rec, _ := runAuth(t, fakeUsers{}, "Bearer "+signToken(t, testSecret, claims))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token payload", decodeError(t, rec).Message)
}

func TestAuthMiddleware_UnknownOrInactiveUser(t *testing.T) {
	inactive := uuid.New()
	users := fakeUsers{inactive: {ID: inactive, IsActive: false}}

	for name, id := range map[string]uuid.UUID{"unknown": uuid.New(), "inactive": inactive} {
		t.Run(name, func(t *testing.T) {
			rec, _ := runAuth(t, users, "Bearer "+signToken(t, testSecret, validClaims(id, "", "admin")))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "User not found", decodeError(t, rec).Message)
		})
	}
}

func TestRequireRole(t *testing.T) {
	h := RequireRole(models.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for role, want := range map[models.UserRole]int{
		models.RoleAdmin:   http.StatusOK,
		models.RoleManager: http.StatusForbidden,
		"":                 http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
		if role != "" {
			req = req.WithContext(context.WithValue(req.Context(), ContextKeyRole, role))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, "role %q", role)
	}
}
