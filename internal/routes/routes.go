package routes

const (
	// Health
	Health = "/health"
	Ready  = "/ready"

	// Auth
	AuthLogin = "/api/v1/auth/login"
	AuthMe    = "/api/v1/auth/me"

	// Properties
	Properties               = "/api/v1/properties"
	PropertyByID             = "/api/v1/properties/{id}"
	PropertySummary          = "/api/v1/properties/{id}/summary"
	PropertyOccupancyDetail  = "/api/v1/properties/{id}/occupancy_detail"
	PropertyHomeSummary      = "/api/v1/properties/{id}/home_summary"
	PropertyFinancialSummary = "/api/v1/properties/{id}/financial_summary"
	PropertyHistorical       = "/api/v1/properties/{id}/historical"
	PropertyReminders        = "/api/v1/properties/{id}/reminders"

	// Layout
	Floors        = "/api/v1/floors"
	FloorByID     = "/api/v1/floors/{id}"
	Rooms         = "/api/v1/rooms"
	RoomByID      = "/api/v1/rooms/{id}"
	Beds          = "/api/v1/beds"
	BedsAvailable = "/api/v1/beds/available"
	BedByID       = "/api/v1/beds/{id}"

	// Residents
	Residents        = "/api/v1/residents"
	ResidentsDueSoon = "/api/v1/residents/due_soon"
	ResidentsOverdue = "/api/v1/residents/overdue"
	ResidentByID     = "/api/v1/residents/{id}"

	// Occupancy
	Occupancy            = "/api/v1/occupancy"
	OccupancyOccupied    = "/api/v1/occupancy/occupied"
	OccupancyAvailable   = "/api/v1/occupancy/available"
	OccupancyAssign      = "/api/v1/occupancy/assign"
	OccupancyByID        = "/api/v1/occupancy/{id}"
	OccupancyRelease     = "/api/v1/occupancy/{id}/release"
	OccupancyHistory     = "/api/v1/occupancy-history"
	OccupancyHistoryByID = "/api/v1/occupancy-history/{id}"

	// Finance
	Expenses           = "/api/v1/expenses"
	ExpensesByCategory = "/api/v1/expenses/by_category"
	ExpensesSummary    = "/api/v1/expenses/summary"
	ExpenseByID        = "/api/v1/expenses/{id}"
	Payments           = "/api/v1/payments"
	PaymentsSummary    = "/api/v1/payments/summary"
	PaymentsByResident = "/api/v1/payments/by_resident"
	PaymentByID        = "/api/v1/payments/{id}"

	// Maintenance
	Maintenance           = "/api/v1/maintenance-requests"
	MaintenanceOpen       = "/api/v1/maintenance-requests/open_requests"
	MaintenanceByPriority = "/api/v1/maintenance-requests/by_priority"
	MaintenanceByID       = "/api/v1/maintenance-requests/{id}"
	MaintenanceResolve    = "/api/v1/maintenance-requests/{id}/resolve"

	// Users (admin only)
	Users    = "/api/v1/users"
	UserByID = "/api/v1/users/{id}"

	// Uploads
	UploadsResident = "/api/v1/uploads/resident"
)
