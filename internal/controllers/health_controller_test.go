package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func TestHealthCheckHandler(t *testing.T) {
	c := NewHealthController(fakePinger{})
	rr := httptest.NewRecorder()
	c.HealthCheckHandler(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body dtos.HealthResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "pgadmin-api", body.Service)
}

func TestReadyHandler(t *testing.T) {
	t.Run("connected", func(t *testing.T) {
		rr := httptest.NewRecorder()
		NewHealthController(fakePinger{}).ReadyHandler(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		var body dtos.ReadyResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "ready", body.Status)
		assert.Equal(t, "connected", body.Database)
	})

	t.Run("unreachable", func(t *testing.T) {
		rr := httptest.NewRecorder()
		c := NewHealthController(fakePinger{err: errors.New("connection refused")})
		c.ReadyHandler(rr, httptest.NewRequest(http.MethodGet, "/ready", nil))

		require.Equal(t, http.StatusServiceUnavailable, rr.Code)
		var body dtos.ReadyResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
		assert.Equal(t, "not_ready", body.Status)
		assert.Equal(t, "connection refused", body.Error)
	})
}
