package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func baseEnv() map[string]string {
	return map[string]string{
		"APP_PORT":   "8080",
		"DB_URL":     "postgres://localhost/pg",
		"JWT_SECRET": "s3cret",
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	cfg, err := FromLookup(mapLookup(baseEnv()))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, []byte("s3cret"), cfg.JWTSecret)
	assert.Equal(t, "UTC", cfg.DefaultTimeZone)
	assert.Equal(t, 50, cfg.PageSize)
	assert.Equal(t, "properties", cfg.GCSUploadPrefix)
	assert.Equal(t, 900*time.Second, cfg.GCSSignedURLExpiry)
	assert.Nil(t, cfg.GCSCredentialsJSON)
	assert.False(t, cfg.LDFlag_SeedDbWithTestData)
}

func TestFromLookup_Overrides(t *testing.T) {
	env := baseEnv()
	env["PAGE_SIZE"] = "25"
	env["GCS_SIGNED_URL_EXPIRY"] = "60"
	env["DEFAULT_TIME_ZONE"] = "Asia/Kolkata"
	env["SEED_DB_WITH_TEST_DATA"] = "true"

	cfg, err := FromLookup(mapLookup(env))
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.PageSize)
	assert.Equal(t, time.Minute, cfg.GCSSignedURLExpiry)
	assert.Equal(t, "Asia/Kolkata", cfg.DefaultTimeZone)
	assert.True(t, cfg.LDFlag_SeedDbWithTestData)
}

func TestFromLookup_MissingRequired(t *testing.T) {
	for _, key := range []string{"APP_PORT", "DB_URL", "JWT_SECRET"} {
		t.Run(key, func(t *testing.T) {
			env := baseEnv()
			delete(env, key)
			_, err := FromLookup(mapLookup(env))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestFromLookup_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"PAGE_SIZE":             "500",
		"GCS_SIGNED_URL_EXPIRY": "-1",
		"DEFAULT_TIME_ZONE":     "Mars/Olympus",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			env := baseEnv()
			env[key] = val
			_, err := FromLookup(mapLookup(env))
			require.Error(t, err)
		})
	}
}

func TestOverlay_PrefersSecrets(t *testing.T) {
	get := overlay(map[string]string{"DB_URL": "from-bws"}, mapLookup(baseEnv()))
	assert.Equal(t, "from-bws", get("DB_URL"))
	assert.Equal(t, "8080", get("APP_PORT"))
}
