//go:build dev_test && integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/app"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/config"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/routes"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var (
	cfg        *config.Config
	baseURL    string
	adminToken string
	httpClient = &http.Client{Timeout: 15 * time.Second}
)

// TestMain creates a throwaway admin directly in the database and logs it in
// against the running service at APP_URL.
func TestMain(m *testing.M) {
	utils.InitLogger(config.AppName)
	cfg = config.LoadConfig()

	baseURL = strings.TrimRight(cfg.AppUrl, "/")
	if baseURL == "" {
		log.Fatal("APP_URL must point at a running pgadmin-api")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("connect to DB: %v", err)
	}

	ctx := context.Background()
	userRepo := repositories.NewUserRepository(application.DB)

	password := "integration-" + uuid.NewString()[:8]
	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}
	admin := &models.User{
		ID:           uuid.New(),
		Username:     "it-admin-" + uuid.NewString()[:8],
		Email:        "it-admin-" + uuid.NewString()[:8] + "@pgadmin.local",
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	admin.RowVersion = 1
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}

	adminToken = login(admin.Username, password)
	log.Printf("pgadmin-api integration tests: baseURL=%s, env=%s", baseURL, os.Getenv("ENV"))

	code := m.Run()

	if err := userRepo.Delete(ctx, admin.ID); err != nil {
		log.Printf("cleanup admin %s: %v", admin.ID, err)
	}
	application.Close()
	os.Exit(code)
}

func login(username, password string) string {
	body, _ := json.Marshal(dtos.LoginRequest{Username: username, Password: password})
	resp, err := httpClient.Post(baseURL+routes.AuthLogin, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		log.Fatalf("login status %d: %s", resp.StatusCode, raw)
	}
	var out dtos.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Fatalf("decode login: %v", err)
	}
	return out.AccessToken
}

// doJSON sends payload (if any) with the admin token and decodes the
// response into out when out is non-nil. It returns the status code.
func doJSON(t *testing.T, method, path string, payload, out any) int {
	t.Helper()

	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, baseURL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if out != nil && resp.StatusCode < 300 && len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, out), string(raw))
	}
	return resp.StatusCode
}

func withID(route string, id uuid.UUID) string {
	return strings.Replace(route, "{id}", id.String(), 1)
}
