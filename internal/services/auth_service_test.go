package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/middleware"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func newAuthFixture(t *testing.T) (*AuthService, *fakeUserRepo, *models.User) {
	t.Helper()
	hash, err := utils.HashPassword("s3cret!")
	require.NoError(t, err)

	propID := uuid.New()
	manager := &models.User{
		ID: uuid.New(), PropertyID: &propID, Username: "meera", Email: "meera@example.com",
		PasswordHash: hash, Role: models.RoleManager, IsActive: true,
	}
	disabled := &models.User{
		ID: uuid.New(), Username: "gone", Email: "gone@example.com",
		PasswordHash: hash, Role: models.RoleStaff, IsActive: false,
	}
	repo := &fakeUserRepo{users: map[string]*models.User{"meera": manager, "gone": disabled}}
	return NewAuthService(repo, NewJWTService(testSecret, time.Hour)), repo, manager
}

func TestAuthService_LoginIssuesVerifiableToken(t *testing.T) {
	svc, repo, manager := newAuthFixture(t)
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)
	svc.now = fixedClock(now)

	resp, err := svc.Login(context.Background(), dtos.LoginRequest{Username: " meera ", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, manager.ID, resp.User.ID)
	require.NotNil(t, resp.User.LastLogin)
	assert.Equal(t, []uuid.UUID{manager.ID}, repo.lastLogins)

	claims, err := middleware.ValidateToken(resp.AccessToken, testSecret, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, manager.ID.String(), claims["sub"])
	assert.Equal(t, "manager", claims["role"])
	assert.Equal(t, "meera", claims["username"])
	assert.Equal(t, manager.PropertyID.String(), claims["property_id"])

	_, err = middleware.ValidateToken(resp.AccessToken, testSecret, now.Add(2*time.Hour))
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = middleware.ValidateToken(resp.AccessToken, []byte("other"), now)
	assert.Error(t, err)
}

func TestAuthService_LoginRejections(t *testing.T) {
	svc, repo, _ := newAuthFixture(t)

	cases := map[string]dtos.LoginRequest{
		"wrong password": {Username: "meera", Password: "nope"},
		"unknown user":   {Username: "ghost", Password: "s3cret!"},
		"inactive user":  {Username: "gone", Password: "s3cret!"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), req)
			var appErr *utils.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusUnauthorized, appErr.StatusCode)
			assert.Equal(t, utils.ErrCodeInvalidCredentials, appErr.Code)
		})
	}
	assert.Empty(t, repo.lastLogins)
}

func TestAuthService_Me(t *testing.T) {
	svc, _, manager := newAuthFixture(t)

	u, err := svc.Me(context.Background(), manager.ID)
	require.NoError(t, err)
	assert.Equal(t, "meera", u.Username)

	_, err = svc.Me(context.Background(), uuid.New())
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
}
