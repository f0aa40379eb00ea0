package controllers

import (
	"net/http"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/middleware"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/services"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/go-playground/validator/v10"
)

type AuthController struct {
	authService *services.AuthService
	validate    *validator.Validate
}

func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
		validate:    validator.New(),
	}
}

// POST /api/v1/auth/login
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if !decodeAndValidate(w, r, c.validate, &req) {
		return
	}

	resp, err := c.authService.Login(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GET /api/v1/auth/me
func (c *AuthController) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing user in context", nil)
		return
	}

	user, err := c.authService.Me(r.Context(), userID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user)
}
