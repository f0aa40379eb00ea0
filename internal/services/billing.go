package services

import (
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/constants"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
)

// BillingStatus is one resident's rent position on a given day.
type BillingStatus struct {
	BillingDay      int
	NextBillingDate models.Date
	DaysUntilDue    int
	DueSoon         bool

	MonthsElapsed int
	ExpectedRent  float64
	TotalPaid     float64
	Arrears       float64
	OverdueAmount float64
}

func (b BillingStatus) Overdue() bool { return b.OverdueAmount > 0 }

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ClampBillingDay caps day at the last day of the month.
func ClampBillingDay(year int, month time.Month, day int) int {
	if last := daysIn(year, month); day > last {
		return last
	}
	if day < 1 {
		return 1
	}
	return day
}

// NextBillingDate is this month's clamped billing day when it has not passed,
// otherwise next month's.
func NextBillingDate(today models.Date, billingDay int) models.Date {
	y, m := today.Year(), today.Month()
	candidate := models.NewDate(y, m, ClampBillingDay(y, m, billingDay))
	if !candidate.Before(today.Time) {
		return candidate
	}
	next := time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)
	return models.NewDate(next.Year(), next.Month(), ClampBillingDay(next.Year(), next.Month(), billingDay))
}

// MonthsElapsed counts whole calendar months from the joining month up to,
// but excluding, the current month.
func MonthsElapsed(joining, today models.Date) int {
	n := (today.Year()*12 + int(today.Month())) - (joining.Year()*12 + int(joining.Month()))
	if n < 0 {
		return 0
	}
	return n
}

// EvaluateBilling computes the resident's due-soon and overdue position.
func EvaluateBilling(res *models.Resident, totalPaid float64, today models.Date) BillingStatus {
	day := res.BillingDay()
	next := NextBillingDate(today, day)
	days := int(next.Sub(today.Time).Hours() / 24)

	months := MonthsElapsed(res.JoiningDate, today)
	expected := float64(months) * res.Rent
	shortfall := expected + res.Arrears - totalPaid
	if shortfall < 0 {
		shortfall = 0
	}

	return BillingStatus{
		BillingDay:      day,
		NextBillingDate: next,
		DaysUntilDue:    days,
		DueSoon:         days >= 0 && days <= constants.DueSoonWindowDays,
		MonthsElapsed:   months,
		ExpectedRent:    utils.Round2(expected),
		TotalPaid:       utils.Round2(totalPaid),
		Arrears:         utils.Round2(res.Arrears),
		OverdueAmount:   utils.Round2(shortfall),
	}
}
