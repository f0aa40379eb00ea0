package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/constants"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"
)

type Config struct {
	AppName string
	AppPort string
	AppUrl  string
	Env     string

	// Database
	DBUrl string

	// Auth
	JWTSecret []byte

	// Defaults
	DefaultTimeZone string
	PageSize        int

	// Uploads
	GCSBucket          string
	GCSUploadPrefix    string
	GCSSignedURLExpiry time.Duration
	GCSCredentialsJSON []byte

	// Notifications
	SendGridAPIKey   string
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromPhone  string

	GoogleMapsAPIKey string

	// LaunchDarkly flags
	LDFlag_CORSHighSecurity    bool
	LDFlag_SeedDbWithTestData  bool
	LDFlag_SendgridFromEmail   string
	LDFlag_SendgridSandboxMode bool
}

const LDConnectionTimeout = 5 * time.Second

// build-time overrides
var (
	AppName             = utils.ServiceName
	LDServerContextKey  = "pgadmin-api-server"
	LDServerContextKind = "service"
)

// secretKeys may be supplied by Bitwarden instead of the environment.
var secretKeys = []string{
	"DB_URL",
	"JWT_SECRET",
	"SENDGRID_API_KEY",
	"TWILIO_ACCOUNT_SID",
	"TWILIO_AUTH_TOKEN",
	"GCS_CREDENTIALS_JSON",
	"GOOGLE_MAPS_API_KEY",
}

func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	lookup := os.Getenv
	if token := os.Getenv("BWS_ACCESS_TOKEN"); token != "" {
		secrets := fetchSecrets(token, os.Getenv("BWS_ORGANIZATION_ID"), os.Getenv("ENV"))
		lookup = overlay(secrets, os.Getenv)
	}

	cfg, err := FromLookup(lookup)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Invalid configuration")
	}

	if key := os.Getenv("LD_SDK_KEY"); key != "" {
		loadFlags(cfg, key)
	} else {
		utils.Logger.Info("LD_SDK_KEY not set, using environment defaults for flags")
	}

	utils.Logger.Info("Config loaded successfully")
	return cfg
}

// FromLookup builds a Config from a key lookup, applying defaults.
// Flags are seeded from the environment so that LaunchDarkly is optional.
func FromLookup(get func(string) string) (*Config, error) {
	cfg := &Config{
		AppName:            AppName,
		AppPort:            get("APP_PORT"),
		AppUrl:             get("APP_URL"),
		Env:                get("ENV"),
		DBUrl:              get("DB_URL"),
		JWTSecret:          []byte(get("JWT_SECRET")),
		DefaultTimeZone:    orDefault(get("DEFAULT_TIME_ZONE"), "UTC"),
		PageSize:           constants.DefaultPageSize,
		GCSBucket:          get("GCS_BUCKET"),
		GCSUploadPrefix:    orDefault(get("GCS_UPLOAD_PREFIX"), constants.DefaultUploadPrefix),
		GCSSignedURLExpiry: constants.DefaultSignedURLExpiry,
		SendGridAPIKey:     get("SENDGRID_API_KEY"),
		TwilioAccountSID:   get("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:    get("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:    get("TWILIO_FROM_PHONE"),
		GoogleMapsAPIKey:   get("GOOGLE_MAPS_API_KEY"),

		LDFlag_CORSHighSecurity:    boolOr(get("CORS_HIGH_SECURITY"), false),
		LDFlag_SeedDbWithTestData:  boolOr(get("SEED_DB_WITH_TEST_DATA"), false),
		LDFlag_SendgridFromEmail:   orDefault(get("SENDGRID_FROM_EMAIL"), constants.DefaultFromEmail),
		LDFlag_SendgridSandboxMode: boolOr(get("SENDGRID_SANDBOX_MODE"), false),
	}

	if creds := get("GCS_CREDENTIALS_JSON"); creds != "" {
		cfg.GCSCredentialsJSON = []byte(creds)
	}

	if cfg.AppPort == "" {
		return nil, fmt.Errorf("APP_PORT env var is missing")
	}
	if cfg.DBUrl == "" {
		return nil, fmt.Errorf("DB_URL is missing")
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET is missing")
	}
	if _, err := time.LoadLocation(cfg.DefaultTimeZone); err != nil {
		return nil, fmt.Errorf("DEFAULT_TIME_ZONE %q is not a valid IANA zone: %w", cfg.DefaultTimeZone, err)
	}

	if raw := get("PAGE_SIZE"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > constants.MaxPageSize {
			return nil, fmt.Errorf("PAGE_SIZE must be between 1 and %d", constants.MaxPageSize)
		}
		cfg.PageSize = n
	}
	if raw := get("GCS_SIGNED_URL_EXPIRY"); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("GCS_SIGNED_URL_EXPIRY must be a positive number of seconds")
		}
		cfg.GCSSignedURLExpiry = time.Duration(secs) * time.Second
	}

	return cfg, nil
}

func fetchSecrets(token, orgID, env string) map[string]string {
	client, err := utils.NewBWSSecretsClient(token, orgID)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize BWSSecretsClient")
	}
	defer client.Close()

	appSecretsName := fmt.Sprintf("%s-%s", AppName, env)
	appSecrets, err := client.GetBWSSecrets(appSecretsName)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to fetch app secrets from BWS")
	}

	out := make(map[string]string, len(secretKeys))
	for _, k := range secretKeys {
		if v, ok := appSecrets[k]; ok && v != "" {
			out[k] = v
		}
	}
	utils.Logger.Infof("Loaded %d secrets from BWS project %s", len(out), appSecretsName)
	return out
}

// overlay prefers secrets over the fallback lookup.
func overlay(secrets map[string]string, fallback func(string) string) func(string) string {
	return func(k string) string {
		if v, ok := secrets[k]; ok {
			return v
		}
		return fallback(k)
	}
}

func loadFlags(cfg *Config, sdkKey string) {
	ldClient, err := ld.MakeClient(sdkKey, LDConnectionTimeout)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to create LaunchDarkly client")
	}
	if !ldClient.Initialized() {
		ldClient.Close()
		utils.Logger.Fatal("LaunchDarkly client failed to initialize")
	}
	defer ldClient.Close()

	ctx := ldcontext.NewWithKind(ldcontext.Kind(LDServerContextKind), LDServerContextKey)

	corsHighSecurity, err := ldClient.BoolVariation("cors_high_security", ctx, cfg.LDFlag_CORSHighSecurity)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Error retrieving cors_high_security flag")
	}
	utils.Logger.Debugf("cors_high_security flag: %t", corsHighSecurity)

	seedDb, err := ldClient.BoolVariation("seed_db_with_test_data", ctx, cfg.LDFlag_SeedDbWithTestData)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Error retrieving seed_db_with_test_data flag")
	}
	utils.Logger.Debugf("seed_db_with_test_data flag: %t", seedDb)

	sgFrom, err := ldClient.StringVariation("sendgrid_from_email", ctx, cfg.LDFlag_SendgridFromEmail)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Error retrieving sendgrid_from_email flag")
	}
	if strings.TrimSpace(sgFrom) == "" {
		utils.Logger.Warnf("sendgrid_from_email flag is empty, defaulting to %s", constants.DefaultFromEmail)
		sgFrom = constants.DefaultFromEmail
	}

	sgSandbox, err := ldClient.BoolVariation("sendgrid_sandbox_mode", ctx, cfg.LDFlag_SendgridSandboxMode)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Error retrieving sendgrid_sandbox_mode flag")
	}
	utils.Logger.Debugf("sendgrid_sandbox_mode flag: %t", sgSandbox)

	cfg.LDFlag_CORSHighSecurity = corsHighSecurity
	cfg.LDFlag_SeedDbWithTestData = seedDb
	cfg.LDFlag_SendgridFromEmail = sgFrom
	cfg.LDFlag_SendgridSandboxMode = sgSandbox
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func boolOr(raw string, def bool) bool {
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return b
}
