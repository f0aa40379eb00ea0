package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

// Scope is the caller identity taken from the access token.
type Scope struct {
	UserID     uuid.UUID
	PropertyID *uuid.UUID
	Role       models.UserRole
}

// Restricted returns the property a non-admin user is pinned to.
func (s Scope) Restricted() (uuid.UUID, bool) {
	if s.Role == models.RoleAdmin || s.PropertyID == nil {
		return uuid.Nil, false
	}
	return *s.PropertyID, true
}

func (s Scope) CanAccess(propertyID uuid.UUID) bool {
	pinned, ok := s.Restricted()
	return !ok || pinned == propertyID
}

// PropertyFilter narrows an optional property filter to the caller's scope.
// A restricted caller asking for another property gets a not-found error.
func (s Scope) PropertyFilter(requested *uuid.UUID) (*uuid.UUID, error) {
	pinned, ok := s.Restricted()
	if !ok {
		return requested, nil
	}
	if requested != nil && *requested != pinned {
		return nil, utils.NotFound("Property not found")
	}
	return &pinned, nil
}

// ListQuery is a validated list request: filters plus 1-based paging.
type ListQuery struct {
	Filters  map[string]any
	Search   string
	Ordering string
	Page     int
	PageSize int
}

func (q ListQuery) params() repositories.ListParams {
	page, size := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}
	return repositories.ListParams{
		Filters:  q.Filters,
		Search:   q.Search,
		Ordering: q.Ordering,
		Limit:    size,
		Offset:   (page - 1) * size,
	}
}

// scoped forces filter to the caller's property when the caller is restricted.
func (q ListQuery) scoped(scope Scope, filter string) ListQuery {
	pinned, ok := scope.Restricted()
	if !ok {
		return q
	}
	return q.with(filter, pinned)
}

// with returns a copy of q with one more filter.
func (q ListQuery) with(filter string, value any) ListQuery {
	filters := make(map[string]any, len(q.Filters)+1)
	for k, v := range q.Filters {
		filters[k] = v
	}
	filters[filter] = value
	q.Filters = filters
	return q
}

func newPage[T any](items []T, total int, q ListQuery) *dtos.Page[T] {
	page := q.Page
	if page < 1 {
		page = 1
	}
	return &dtos.Page[T]{Data: items, Total: total, Page: page, PageSize: q.PageSize}
}

// repoError translates repository failures into AppErrors.
func repoError(err error, entity, action string) error {
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var listErr *repositories.ListParamError
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return utils.NotFound(entity + " not found")
	case errors.As(err, &listErr):
		return utils.BadRequest("Invalid list parameters",
			[]utils.FieldError{{Field: listErr.Field, Message: listErr.Message}})
	case errors.Is(err, utils.ErrRowVersionConflict):
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeRowVersionConflict,
			Message:    entity + " was modified concurrently, please retry",
			Err:        err,
		}
	case errors.Is(err, utils.ErrBedOccupied):
		return utils.BadRequest("Bed is already occupied",
			[]utils.FieldError{{Field: "bed_id", Message: "This bed is already occupied."}})
	case errors.Is(err, utils.ErrBedNotOccupied):
		return utils.BadRequest("Bed is not occupied",
			[]utils.FieldError{{Field: "is_occupied", Message: "This bed is not occupied."}})
	case errors.Is(err, utils.ErrResidentAssigned):
		return utils.BadRequest("Resident already occupies another bed",
			[]utils.FieldError{{Field: "resident_id", Message: "Release the resident's current bed first."}})
	case errors.Is(err, utils.ErrResidentOnBed):
		return utils.BadRequest("Resident still occupies a bed",
			[]utils.FieldError{{Field: "resident_id", Message: "Release the resident's bed before deleting."}})
	case repositories.IsUniqueViolation(err, ""):
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    entity + " already exists",
			Err:        err,
		}
	case repositories.IsForeignKeyViolation(err):
		return utils.BadRequest("Referenced record does not exist", nil)
	}
	return utils.Internal("Failed to "+action+" "+entity, err)
}

// fieldError builds a 400 with a single field message.
func fieldError(message, field, detail string) *utils.AppError {
	return utils.BadRequest(message, []utils.FieldError{{Field: field, Message: detail}})
}

// loadScoped fetches one row and hides rows outside the caller's property.
func loadScoped[T comparable](
	ctx context.Context,
	scope Scope,
	id uuid.UUID,
	entity string,
	get func(context.Context, uuid.UUID) (T, error),
	propertyOf func(T) uuid.UUID,
) (T, error) {
	var zero T
	item, err := get(ctx, id)
	if err != nil {
		return zero, utils.Internal("Failed to load "+strings.ToLower(entity), err)
	}
	if item == zero || !scope.CanAccess(propertyOf(item)) {
		return zero, utils.NotFound(entity + " not found")
	}
	return item, nil
}

// requireAccess rejects writes aimed at a property outside the caller's scope.
func requireAccess(scope Scope, propertyID uuid.UUID) error {
	if !scope.CanAccess(propertyID) {
		return utils.NotFound("Property not found")
	}
	return nil
}
