package controllers

import (
	"context"
	"net/http"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserController is mounted behind RequireRole(admin); the service itself is
// not property scoped.
type UserController struct {
	userService *services.UserService
	validate    *validator.Validate
	pageSize    int
}

func NewUserController(userService *services.UserService, pageSize int) *UserController {
	return &UserController{userService: userService, validate: validator.New(), pageSize: pageSize}
}

// GET /api/v1/users
func (c *UserController) ListHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, repositories.UserListSpec, c.pageSize,
		func(ctx context.Context, _ services.Scope, q services.ListQuery) (*dtos.Page[*models.User], error) {
			return c.userService.List(ctx, q)
		})
}

// POST /api/v1/users
func (c *UserController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, c.validate,
		func(ctx context.Context, _ services.Scope, req dtos.CreateUserRequest) (*models.User, error) {
			return c.userService.Create(ctx, req)
		})
}

// GET /api/v1/users/{id}
func (c *UserController) GetHandler(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, "User", func(ctx context.Context, _ services.Scope, id uuid.UUID) (*models.User, error) {
		return c.userService.Get(ctx, id)
	})
}

// PATCH /api/v1/users/{id}
func (c *UserController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, c.validate, "User",
		func(ctx context.Context, _ services.Scope, id uuid.UUID, req dtos.UpdateUserRequest) (*models.User, error) {
			return c.userService.Update(ctx, id, req)
		})
}

// DELETE /api/v1/users/{id}
func (c *UserController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, "User", func(ctx context.Context, _ services.Scope, id uuid.UUID) error {
		return c.userService.Delete(ctx, id)
	})
}
