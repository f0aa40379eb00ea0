package dtos

import (
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Name          string   `json:"name" validate:"required,max=255"`
	Address       string   `json:"address" validate:"required"`
	City          string   `json:"city" validate:"required,max=100"`
	State         string   `json:"state" validate:"required,max=100"`
	ZipCode       string   `json:"zip_code" validate:"required,max=20"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	TimeZone      *string  `json:"time_zone,omitempty" validate:"omitempty,timezone"`
	FloorsCount   *int     `json:"floors_count,omitempty" validate:"omitempty,gte=0,lte=100"`
	RoomsPerFloor *int     `json:"rooms_per_floor,omitempty" validate:"omitempty,gte=0,lte=99"`
	BedsPerRoom   *int     `json:"beds_per_room,omitempty" validate:"omitempty,gte=0,lte=26"`
	Description   *string  `json:"description,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

type UpdatePropertyRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Address       *string  `json:"address,omitempty" validate:"omitempty,min=1"`
	City          *string  `json:"city,omitempty" validate:"omitempty,min=1,max=100"`
	State         *string  `json:"state,omitempty" validate:"omitempty,min=1,max=100"`
	ZipCode       *string  `json:"zip_code,omitempty" validate:"omitempty,min=1,max=20"`
	Latitude      *float64 `json:"latitude,omitempty" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64 `json:"longitude,omitempty" validate:"omitempty,gte=-180,lte=180"`
	TimeZone      *string  `json:"time_zone,omitempty" validate:"omitempty,timezone"`
	FloorsCount   *int     `json:"floors_count,omitempty" validate:"omitempty,gte=0,lte=100"`
	RoomsPerFloor *int     `json:"rooms_per_floor,omitempty" validate:"omitempty,gte=0,lte=99"`
	BedsPerRoom   *int     `json:"beds_per_room,omitempty" validate:"omitempty,gte=0,lte=26"`
	Description   *string  `json:"description,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

type PropertySummary struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	TotalBeds       int       `json:"total_beds"`
	OccupiedBeds    int       `json:"occupied_beds"`
	AvailableBeds   int       `json:"available_beds"`
	ActiveResidents int       `json:"active_residents"`
	TotalResidents  int       `json:"total_residents"`
}

/*──────────────────────────────────────────────────────────
  Occupancy tree: property → floors → rooms → beds
──────────────────────────────────────────────────────────*/

type OccupancyDetail struct {
	PropertyID          uuid.UUID     `json:"property_id"`
	PropertyName        string        `json:"property_name"`
	Address             string        `json:"address"`
	City                string        `json:"city"`
	State               string        `json:"state"`
	ZipCode             string        `json:"zip_code"`
	Description         *string       `json:"description"`
	TotalFloors         int           `json:"total_floors"`
	TotalRooms          int           `json:"total_rooms"`
	TotalBeds           int           `json:"total_beds"`
	OccupiedBeds        int           `json:"occupied_beds"`
	AvailableBeds       int           `json:"available_beds"`
	OccupancyPercentage float64       `json:"occupancy_percentage"`
	Floors              []FloorDetail `json:"floors"`
}

type FloorDetail struct {
	FloorID             uuid.UUID    `json:"floor_id"`
	FloorLevel          int          `json:"floor_level"`
	FloorName           string       `json:"floor_name"`
	TotalBeds           int          `json:"total_beds"`
	OccupiedBeds        int          `json:"occupied_beds"`
	AvailableBeds       int          `json:"available_beds"`
	OccupancyPercentage float64      `json:"occupancy_percentage"`
	Rooms               []RoomDetail `json:"rooms"`
}

type RoomDetail struct {
	RoomID              uuid.UUID       `json:"room_id"`
	RoomNumber          string          `json:"room_number"`
	RoomName            *string         `json:"room_name"`
	RoomType            models.RoomType `json:"room_type"`
	TotalBeds           int             `json:"total_beds"`
	OccupiedCount       int             `json:"occupied_count"`
	AvailableCount      int             `json:"available_count"`
	OccupancyPercentage float64         `json:"occupancy_percentage"`
	Beds                []BedDetail     `json:"beds"`
}

type BedDetail struct {
	BedID        uuid.UUID  `json:"bed_id"`
	BedNumber    string     `json:"bed_number"`
	BedName      *string    `json:"bed_name"`
	IsOccupied   bool       `json:"is_occupied"`
	ResidentID   *uuid.UUID `json:"resident_id,omitempty"`
	ResidentName *string    `json:"resident_name,omitempty"`
}

type HomeSummary struct {
	PropertyID          uuid.UUID   `json:"property_id"`
	PropertyName        string      `json:"property_name"`
	AsOf                models.Date `json:"as_of"`
	TotalBeds           int         `json:"total_beds"`
	OccupiedBeds        int         `json:"occupied_beds"`
	AvailableBeds       int         `json:"available_beds"`
	OccupancyPercentage float64     `json:"occupancy_percentage"`
	ActiveResidents     int         `json:"active_residents"`
	DueSoonCount        int         `json:"due_soon_count"`
	OverdueCount        int         `json:"overdue_count"`
	OverdueTotal        float64     `json:"overdue_total"`
	ThisMonthIncome     float64     `json:"this_month_income"`
	ThisMonthExpenses   float64     `json:"this_month_expenses"`
	OpenMaintenance     int         `json:"open_maintenance"`
}

type MonthlyFinancial struct {
	Month    int     `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
}

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

type FinancialSummary struct {
	PropertyID           uuid.UUID          `json:"property_id"`
	Year                 int                `json:"year"`
	Monthly              []MonthlyFinancial `json:"monthly"`
	Income               []float64          `json:"income"`
	Expenses             []float64          `json:"expenses"`
	TotalIncome          float64            `json:"total_income"`
	TotalExpenses        float64            `json:"total_expenses"`
	Net                  float64            `json:"net"`
	TopExpenseCategories []CategoryTotal    `json:"top_expense_categories"`
}

type HistoricalMonth struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Net      float64 `json:"net"`
	MoveIns  int     `json:"move_ins"`
	MoveOuts int     `json:"move_outs"`
}

type HistoricalSummary struct {
	PropertyID    uuid.UUID         `json:"property_id"`
	StartDate     models.Date       `json:"start_date"`
	EndDate       models.Date       `json:"end_date"`
	Months        []HistoricalMonth `json:"months"`
	TotalIncome   float64           `json:"total_income"`
	TotalExpenses float64           `json:"total_expenses"`
	Net           float64           `json:"net"`
}

type ReminderResult struct {
	PropertyID uuid.UUID `json:"property_id"`
	Residents  int       `json:"residents"`
	EmailsSent int       `json:"emails_sent"`
	SMSSent    int       `json:"sms_sent"`
	Failures   int       `json:"failures"`
}
