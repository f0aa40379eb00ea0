package services

import (
	"context"
	"sort"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
)

// ResidentBilling is a billable resident with their status as of today.
type ResidentBilling struct {
	Resident *models.Resident
	Status   BillingStatus
}

type BillingService struct {
	residentRepo repositories.ResidentRepository
	propRepo     repositories.PropertyRepository
	defaultLoc   *time.Location
	now          func() time.Time
}

func NewBillingService(
	residentRepo repositories.ResidentRepository,
	propRepo repositories.PropertyRepository,
	defaultLoc *time.Location,
) *BillingService {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &BillingService{
		residentRepo: residentRepo,
		propRepo:     propRepo,
		defaultLoc:   defaultLoc,
		now:          time.Now,
	}
}

// Today is the calendar day in the property's time zone.
func (s *BillingService) Today(p *models.Property) models.Date {
	loc := s.defaultLoc
	if p != nil {
		loc = p.Location(s.defaultLoc)
	}
	return models.DateOf(s.now().In(loc))
}

// Evaluate computes the billing status of every billable resident. A nil
// propertyID spans all properties, each evaluated in its own time zone.
func (s *BillingService) Evaluate(ctx context.Context, propertyID *uuid.UUID) ([]ResidentBilling, error) {
	ledgers, err := s.residentRepo.ListBillable(ctx, propertyID)
	if err != nil {
		return nil, utils.Internal("Failed to load residents", err)
	}

	props := make(map[uuid.UUID]*models.Property)
	out := make([]ResidentBilling, 0, len(ledgers))
	for _, l := range ledgers {
		p, ok := props[l.Resident.PropertyID]
		if !ok {
			p, err = s.propRepo.GetByID(ctx, l.Resident.PropertyID)
			if err != nil {
				return nil, utils.Internal("Failed to load property", err)
			}
			props[l.Resident.PropertyID] = p
		}
		out = append(out, ResidentBilling{
			Resident: l.Resident,
			Status:   EvaluateBilling(l.Resident, l.TotalPaid, s.Today(p)),
		})
	}
	return out, nil
}

// DueSoon lists residents whose next billing date is within the due-soon window.
func (s *BillingService) DueSoon(ctx context.Context, scope Scope, propertyID *uuid.UUID) ([]dtos.DueSoonItem, error) {
	filter, err := scope.PropertyFilter(propertyID)
	if err != nil {
		return nil, err
	}
	all, err := s.Evaluate(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dtos.DueSoonItem, 0)
	for _, rb := range all {
		if !rb.Status.DueSoon {
			continue
		}
		items = append(items, dtos.DueSoonItem{
			Resident:        rb.Resident,
			BillingDay:      rb.Status.BillingDay,
			NextBillingDate: rb.Status.NextBillingDate,
			DaysUntilDue:    rb.Status.DaysUntilDue,
			AmountDue:       utils.Round2(rb.Resident.Rent),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DaysUntilDue < items[j].DaysUntilDue
	})
	return items, nil
}

// Overdue lists residents whose expected rent plus arrears exceeds what they paid.
func (s *BillingService) Overdue(ctx context.Context, scope Scope, propertyID *uuid.UUID) ([]dtos.OverdueItem, error) {
	filter, err := scope.PropertyFilter(propertyID)
	if err != nil {
		return nil, err
	}
	all, err := s.Evaluate(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]dtos.OverdueItem, 0)
	for _, rb := range all {
		if !rb.Status.Overdue() {
			continue
		}
		items = append(items, dtos.OverdueItem{
			Resident:      rb.Resident,
			BillingDay:    rb.Status.BillingDay,
			MonthsElapsed: rb.Status.MonthsElapsed,
			ExpectedRent:  rb.Status.ExpectedRent,
			TotalPaid:     rb.Status.TotalPaid,
			Arrears:       rb.Status.Arrears,
			OverdueAmount: rb.Status.OverdueAmount,
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].OverdueAmount > items[j].OverdueAmount
	})
	return items, nil
}
