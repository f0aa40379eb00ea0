package models

type RoomType string

const (
	RoomTypeSingle    RoomType = "single"
	RoomTypeDouble    RoomType = "double"
	RoomTypeTriple    RoomType = "triple"
	RoomTypeDormitory RoomType = "dormitory"
)

// RoomTypeForBeds picks the room type matching a bed count.
func RoomTypeForBeds(beds int) RoomType {
	switch beds {
	case 1:
		return RoomTypeSingle
	case 2:
		return RoomTypeDouble
	case 3:
		return RoomTypeTriple
	default:
		return RoomTypeDormitory
	}
}

type RentType string

const (
	RentTypeMonthly  RentType = "monthly"
	RentTypeDaily    RentType = "daily"
	RentTypeWeekly   RentType = "weekly"
	RentTypeBiWeekly RentType = "bi-weekly"
)

type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodUPI          PaymentMethod = "upi"
	PaymentMethodCard         PaymentMethod = "card"
)

type OccupancyAction string

const (
	OccupancyActionOccupied OccupancyAction = "occupied"
	OccupancyActionFreed    OccupancyAction = "freed"
)

type MaintenancePriority string

const (
	PriorityLow    MaintenancePriority = "low"
	PriorityMedium MaintenancePriority = "medium"
	PriorityHigh   MaintenancePriority = "high"
	PriorityUrgent MaintenancePriority = "urgent"
)

type MaintenanceStatus string

const (
	MaintenanceStatusOpen       MaintenanceStatus = "open"
	MaintenanceStatusInProgress MaintenanceStatus = "in_progress"
	MaintenanceStatusResolved   MaintenanceStatus = "resolved"
	MaintenanceStatusClosed     MaintenanceStatus = "closed"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleManager UserRole = "manager"
	RoleStaff   UserRole = "staff"
)
