package services

import (
	"context"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
)

type PaymentService struct {
	paymentRepo  repositories.PaymentRepository
	residentRepo repositories.ResidentRepository
	propRepo     repositories.PropertyRepository
	defaultLoc   *time.Location
	now          func() time.Time
}

func NewPaymentService(
	paymentRepo repositories.PaymentRepository,
	residentRepo repositories.ResidentRepository,
	propRepo repositories.PropertyRepository,
	defaultLoc *time.Location,
) *PaymentService {
	if defaultLoc == nil {
		defaultLoc = time.UTC
	}
	return &PaymentService{
		paymentRepo:  paymentRepo,
		residentRepo: residentRepo,
		propRepo:     propRepo,
		defaultLoc:   defaultLoc,
		now:          time.Now,
	}
}

func paymentProperty(p *models.Payment) uuid.UUID { return p.PropertyID }

// Create records a payment. The property and resident_name default to the
// resident's own.
func (s *PaymentService) Create(ctx context.Context, scope Scope, req dtos.CreatePaymentRequest) (*models.Payment, error) {
	res, err := loadScoped(ctx, scope, req.ResidentID, "Resident", s.residentRepo.GetByID, residentProperty)
	if err != nil {
		return nil, err
	}
	if req.PropertyID != nil && *req.PropertyID != res.PropertyID {
		return nil, fieldError("Resident belongs to another property", "resident_id",
			"The resident does not belong to the selected property.")
	}

	name := res.Name
	if req.ResidentName != nil && *req.ResidentName != "" {
		name = *req.ResidentName
	}
	method := models.PaymentMethodCash
	if req.PaymentMethod != nil {
		method = *req.PaymentMethod
	}
	p := &models.Payment{
		ID:              uuid.New(),
		PropertyID:      res.PropertyID,
		ResidentID:      res.ID,
		ResidentName:    name,
		Amount:          utils.Round2(req.Amount),
		PaymentDate:     *req.PaymentDate,
		PaymentMethod:   method,
		ReferenceNumber: req.ReferenceNumber,
		Notes:           req.Notes,
	}
	p.RowVersion = 1
	if err := s.paymentRepo.Create(ctx, p); err != nil {
		return nil, repoError(err, "Payment", "create")
	}
	return p, nil
}

func (s *PaymentService) Get(ctx context.Context, scope Scope, id uuid.UUID) (*models.Payment, error) {
	return loadScoped(ctx, scope, id, "Payment", s.paymentRepo.GetByID, paymentProperty)
}

func (s *PaymentService) List(ctx context.Context, scope Scope, q ListQuery) (*dtos.Page[*models.Payment], error) {
	q = q.scoped(scope, "property_id")
	items, total, err := s.paymentRepo.List(ctx, q.params())
	if err != nil {
		return nil, repoError(err, "Payment", "list")
	}
	return newPage(items, total, q), nil
}

func (s *PaymentService) Update(ctx context.Context, scope Scope, id uuid.UUID, req dtos.UpdatePaymentRequest) (*models.Payment, error) {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return nil, err
	}
	updated, err := s.paymentRepo.UpdateWithRetry(ctx, id, func(p *models.Payment) error {
		if req.ResidentName != nil {
			p.ResidentName = *req.ResidentName
		}
		if req.Amount != nil {
			p.Amount = utils.Round2(*req.Amount)
		}
		if req.PaymentDate != nil {
			p.PaymentDate = *req.PaymentDate
		}
		if req.PaymentMethod != nil {
			p.PaymentMethod = *req.PaymentMethod
		}
		if req.ReferenceNumber != nil {
			p.ReferenceNumber = req.ReferenceNumber
		}
		if req.Notes != nil {
			p.Notes = req.Notes
		}
		return nil
	})
	if err != nil {
		return nil, repoError(err, "Payment", "update")
	}
	return updated, nil
}

func (s *PaymentService) Delete(ctx context.Context, scope Scope, id uuid.UUID) error {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return err
	}
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		return repoError(err, "Payment", "delete")
	}
	return nil
}

// Summary reports all-time and current-month payment totals.
func (s *PaymentService) Summary(ctx context.Context, scope Scope, propertyID *uuid.UUID) (*dtos.PaymentSummary, error) {
	filter, err := scope.PropertyFilter(propertyID)
	if err != nil {
		return nil, err
	}
	total, err := s.paymentRepo.Sum(ctx, filter, time.Time{}, time.Time{})
	if err != nil {
		return nil, utils.Internal("Failed to total payments", err)
	}
	start, end := monthBounds(currentDay(ctx, s.propRepo, filter, s.defaultLoc, s.now))
	month, err := s.paymentRepo.Sum(ctx, filter, start, end)
	if err != nil {
		return nil, utils.Internal("Failed to total payments", err)
	}
	return &dtos.PaymentSummary{TotalPayments: utils.Round2(total), ThisMonthPayments: utils.Round2(month)}, nil
}

// ByResident totals one resident's payments.
func (s *PaymentService) ByResident(ctx context.Context, scope Scope, residentID uuid.UUID) (*dtos.ResidentPaymentTotal, error) {
	if _, err := loadScoped(ctx, scope, residentID, "Resident", s.residentRepo.GetByID, residentProperty); err != nil {
		return nil, err
	}
	total, count, err := s.paymentRepo.ResidentTotal(ctx, residentID)
	if err != nil {
		return nil, utils.Internal("Failed to total payments", err)
	}
	return &dtos.ResidentPaymentTotal{ResidentID: residentID, Total: utils.Round2(total), Count: count}, nil
}
