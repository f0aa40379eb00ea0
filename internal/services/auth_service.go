package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/constants"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repositories.UserRepository
	jwt      JWTService
	now      func() time.Time
}

func NewAuthService(userRepo repositories.UserRepository, jwt JWTService) *AuthService {
	return &AuthService{userRepo: userRepo, jwt: jwt, now: time.Now}
}

func invalidCredentials() *utils.AppError {
	return &utils.AppError{
		StatusCode: http.StatusUnauthorized,
		Code:       utils.ErrCodeInvalidCredentials,
		Message:    "Invalid username or password",
	}
}

// Login checks the password and issues an access token.
func (s *AuthService) Login(ctx context.Context, req dtos.LoginRequest) (*dtos.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, utils.Internal("Failed to load user", err)
	}
	if user == nil || !user.IsActive || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, invalidCredentials()
	}

	now := s.now()
	token, err := s.jwt.GenerateAccessToken(user, now)
	if err != nil {
		return nil, utils.Internal("Failed to issue token", err)
	}
	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		utils.Logger.WithError(err).Warnf("Failed to stamp last_login for user %s", user.ID)
	} else {
		user.LastLogin = &now
	}

	utils.Logger.Infof("User %s logged in", user.Username)
	return &dtos.LoginResponse{
		AccessToken: token,
		TokenType:   constants.TokenTypeBearer,
		ExpiresIn:   int64(s.jwt.TTL().Seconds()),
		User:        user,
	}, nil
}

// Me returns the authenticated user.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, utils.Internal("Failed to load user", err)
	}
	if user == nil {
		return nil, utils.NotFound("User not found")
	}
	return user, nil
}
