package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/constants"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireAppError(t *testing.T, err error, status int) *utils.AppError {
	t.Helper()
	var appErr *utils.AppError
	require.True(t, errors.As(err, &appErr), "expected *utils.AppError, got %v", err)
	assert.Equal(t, status, appErr.StatusCode)
	return appErr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

func TestListQuery_Defaults(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/residents", nil)

	q, err := listQuery(req, repositories.ResidentListSpec, 25)
	require.NoError(t, err)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 25, q.PageSize)
	assert.Empty(t, q.Filters)
	assert.Empty(t, q.Ordering)
}

func TestListQuery_ParsesEverything(t *testing.T) {
	pid := uuid.New()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/residents?page=3&page_size=10&property_id="+pid.String()+
			"&is_active=false&rent_type=weekly&search=%20ravi%20&ordering=-rent,name", nil)

	q, err := listQuery(req, repositories.ResidentListSpec, 50)
	require.NoError(t, err)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 10, q.PageSize)
	assert.Equal(t, pid, q.Filters["property_id"])
	assert.Equal(t, false, q.Filters["is_active"])
	assert.Equal(t, "weekly", q.Filters["rent_type"])
	assert.Equal(t, "ravi", q.Search)
	assert.Equal(t, "-rent,name", q.Ordering)
}

func TestListQuery_ClampsPageSize(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/residents?page_size=5000", nil)

	q, err := listQuery(req, repositories.ResidentListSpec, 50)
	require.NoError(t, err)
	assert.Equal(t, constants.MaxPageSize, q.PageSize)
}

func TestListQuery_Rejections(t *testing.T) {
	cases := []struct {
		name  string
		query string
		field string
	}{
		{"zero page", "page=0", "page"},
		{"text page", "page=abc", "page"},
		{"negative page size", "page_size=-1", "page_size"},
		{"bad uuid filter", "property_id=not-a-uuid", "property_id"},
		{"bad bool filter", "is_active=maybe", "is_active"},
		{"unknown enum", "rent_type=yearly", "rent_type"},
		{"unknown ordering", "ordering=password", "ordering"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/residents?"+tc.query, nil)
			_, err := listQuery(req, repositories.ResidentListSpec, 50)
			appErr := requireAppError(t, err, http.StatusBadRequest)
			details, ok := appErr.Details.([]utils.FieldError)
			require.True(t, ok)
			require.Len(t, details, 1)
			assert.Equal(t, tc.field, details[0].Field)
		})
	}
}

func TestPathID(t *testing.T) {
	id := uuid.New()
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": id.String()})
	got, err := pathID(req, "Bed")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	req = mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": "42"})
	_, err = pathID(req, "Bed")
	appErr := requireAppError(t, err, http.StatusNotFound)
	assert.Equal(t, "Bed not found", appErr.Message)
}

func TestQueryDate(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?start_date=2024-02-29", nil)
	d, err := queryDate(req, "start_date")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "2024-02-29", d.String())

	d, err = queryDate(req, "end_date")
	require.NoError(t, err)
	assert.Nil(t, d)

	req = httptest.NewRequest(http.MethodGet, "/?start_date=2024-02-30", nil)
	_, err = queryDate(req, "start_date")
	requireAppError(t, err, http.StatusBadRequest)
}

type noteRequest struct {
	Title string  `json:"title" validate:"required,max=10"`
	Notes *string `json:"notes,omitempty"`
}

type optionalRequest struct {
	Notes *string `json:"notes,omitempty"`
}

func TestDecodeAndValidate(t *testing.T) {
	v := validator.New()

	t.Run("valid", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"ok"}`))
		var dst noteRequest
		assert.True(t, decodeAndValidate(rr, req, v, &dst))
		assert.Equal(t, "ok", dst.Title)
	})

	t.Run("empty body is an empty object", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
		var dst optionalRequest
		assert.True(t, decodeAndValidate(rr, req, v, &dst))
		assert.Nil(t, dst.Notes)
	})

	t.Run("malformed json", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":`))
		var dst noteRequest
		assert.False(t, decodeAndValidate(rr, req, v, &dst))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, utils.ErrCodeInvalidPayload, decodeError(t, rr).Code)
	})

	t.Run("validator failure", func(t *testing.T) {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"far too long a title"}`))
		var dst noteRequest
		assert.False(t, decodeAndValidate(rr, req, v, &dst))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, utils.ErrCodeValidation, decodeError(t, rr).Code)
	})
}
