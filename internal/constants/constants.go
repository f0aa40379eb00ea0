package constants

import "time"

// Paging
const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Auth
const (
	TokenIssuer     = "pgadmin-api"
	TokenTTL        = 24 * time.Hour
	TokenTypeBearer = "Bearer"
)

// Billing
const (
	DueSoonWindowDays       = 5
	TopExpenseCategories    = 5
	HistoricalDefaultMonths = 5
	HistoricalMaxMonths     = 60
)

// Uploads
const (
	DefaultUploadPrefix     = "properties"
	DefaultSignedURLExpiry  = 900 * time.Second
	StoragePublicURLFormat  = "https://storage.googleapis.com/%s/%s"
	UploadKindResidentPhoto = "resident_photo"
	UploadKindAadharFile    = "aadhar_file"
)

// Seeding
const (
	DefaultAdminUsername = "admin"
	DefaultAdminEmail    = "admin@pgadmin.local"
	SamplePropertyName   = "Sample PG"
)

// Reminders
const (
	ReminderEmailSubject = "Rent reminder from %s"
	DefaultFromEmail     = "no-reply@pgadmin.local"
	DefaultFromName      = "PG Admin"
)
