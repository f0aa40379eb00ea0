package services

import (
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/middleware"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWTService signs HS256 access tokens for logged-in users.
type JWTService interface {
	GenerateAccessToken(user *models.User, now time.Time) (string, error)
	TTL() time.Duration
}

type jwtService struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTService(secret []byte, ttl time.Duration) JWTService {
	return &jwtService{secret: secret, ttl: ttl}
}

func (j *jwtService) TTL() time.Duration { return j.ttl }

func (j *jwtService) GenerateAccessToken(user *models.User, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"iss":      middleware.TokenIssuer,
		"sub":      user.ID.String(),
		"username": user.Username,
		"role":     string(user.Role),
		"iat":      now.Unix(),
		"exp":      now.Add(j.ttl).Unix(),
	}
	if user.PropertyID != nil {
		claims["property_id"] = user.PropertyID.String()
	} else {
		claims["property_id"] = nil
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}
