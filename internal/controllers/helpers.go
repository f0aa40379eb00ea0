package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/constants"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/middleware"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/services"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// scopeFromRequest reads the caller identity that AuthMiddleware stored.
func scopeFromRequest(r *http.Request) services.Scope {
	ctx := r.Context()
	userID, _ := middleware.UserIDFromContext(ctx)
	return services.Scope{
		UserID:     userID,
		PropertyID: middleware.PropertyIDFromContext(ctx),
		Role:       middleware.RoleFromContext(ctx),
	}
}

// pathID parses the {id} route variable. Malformed ids are reported as not found.
func pathID(r *http.Request, entity string) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, utils.NotFound(entity + " not found")
	}
	return id, nil
}

// decodeAndValidate reads a JSON body into dst and runs its validator tags.
// An empty body decodes as {}. It writes the error response itself and
// reports whether to continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v *validator.Validate, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return false
	}
	if err := v.Struct(dst); err != nil {
		utils.RespondValidationError(w, err)
		return false
	}
	return true
}

func queryError(field, message string) *utils.AppError {
	return utils.BadRequest("Invalid query parameters", []utils.FieldError{{Field: field, Message: message}})
}

func positiveInt(raw, field string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, queryError(field, "A positive integer is required.")
	}
	return n, nil
}

// listQuery turns page, page_size, search, ordering and the entity's filters
// into a ListQuery.
func listQuery(r *http.Request, spec repositories.ListSpec, defaultPageSize int) (services.ListQuery, error) {
	q := r.URL.Query()

	page, err := positiveInt(q.Get("page"), "page", 1)
	if err != nil {
		return services.ListQuery{}, err
	}
	size, err := positiveInt(q.Get("page_size"), "page_size", defaultPageSize)
	if err != nil {
		return services.ListQuery{}, err
	}
	if size > constants.MaxPageSize {
		size = constants.MaxPageSize
	}

	filters, err := spec.ParseFilters(q)
	if err != nil {
		var listErr *repositories.ListParamError
		if errors.As(err, &listErr) {
			return services.ListQuery{}, queryError(listErr.Field, listErr.Message)
		}
		return services.ListQuery{}, queryError("", err.Error())
	}

	ordering := strings.TrimSpace(q.Get("ordering"))
	if err := spec.ValidateOrdering(ordering); err != nil {
		return services.ListQuery{}, queryError("ordering", err.Error())
	}

	return services.ListQuery{
		Filters:  filters,
		Search:   strings.TrimSpace(q.Get("search")),
		Ordering: ordering,
		Page:     page,
		PageSize: size,
	}, nil
}

// queryUUID reads an optional uuid query parameter.
func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, queryError(name, "Must be a valid UUID.")
	}
	return &id, nil
}

// queryDate reads an optional YYYY-MM-DD query parameter.
func queryDate(r *http.Request, name string) (*models.Date, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	d, err := models.ParseDate(raw)
	if err != nil {
		return nil, queryError(name, "Enter a date in YYYY-MM-DD format.")
	}
	return &d, nil
}

func serveList[T any](w http.ResponseWriter, r *http.Request, spec repositories.ListSpec, pageSize int, list func(context.Context, services.Scope, services.ListQuery) (*dtos.Page[T], error)) {
	q, err := listQuery(r, spec, pageSize)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	page, err := list(r.Context(), scopeFromRequest(r), q)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, page)
}

func serveGet[T any](w http.ResponseWriter, r *http.Request, entity string, get func(context.Context, services.Scope, uuid.UUID) (T, error)) {
	id, err := pathID(r, entity)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	item, err := get(r.Context(), scopeFromRequest(r), id)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}

func serveCreate[Req any, T any](w http.ResponseWriter, r *http.Request, v *validator.Validate, create func(context.Context, services.Scope, Req) (T, error)) {
	serveBody(w, r, v, http.StatusCreated, create)
}

// serveBody decodes a request body, runs fn and responds with status.
func serveBody[Req any, T any](w http.ResponseWriter, r *http.Request, v *validator.Validate, status int, fn func(context.Context, services.Scope, Req) (T, error)) {
	var req Req
	if !decodeAndValidate(w, r, v, &req) {
		return
	}
	out, err := fn(r.Context(), scopeFromRequest(r), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, status, out)
}

func serveUpdate[Req any, T any](w http.ResponseWriter, r *http.Request, v *validator.Validate, entity string, update func(context.Context, services.Scope, uuid.UUID, Req) (T, error)) {
	id, err := pathID(r, entity)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	var req Req
	if !decodeAndValidate(w, r, v, &req) {
		return
	}
	item, err := update(r.Context(), scopeFromRequest(r), id, req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}

func serveDelete(w http.ResponseWriter, r *http.Request, entity string, del func(context.Context, services.Scope, uuid.UUID) error) {
	id, err := pathID(r, entity)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if err := del(r.Context(), scopeFromRequest(r), id); err != nil {
		utils.HandleAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
