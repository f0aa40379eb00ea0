package services

import (
	"context"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
)

type ResidentService struct {
	residentRepo repositories.ResidentRepository
	propRepo     repositories.PropertyRepository
}

func NewResidentService(residentRepo repositories.ResidentRepository, propRepo repositories.PropertyRepository) *ResidentService {
	return &ResidentService{residentRepo: residentRepo, propRepo: propRepo}
}

func residentProperty(r *models.Resident) uuid.UUID { return r.PropertyID }

func (s *ResidentService) Create(ctx context.Context, scope Scope, req dtos.CreateResidentRequest) (*models.Resident, error) {
	if _, err := loadProperty(ctx, s.propRepo, scope, req.PropertyID); err != nil {
		return nil, err
	}
	rentType := models.RentTypeMonthly
	if req.RentType != nil {
		rentType = *req.RentType
	}
	res := &models.Resident{
		ID:                  uuid.New(),
		PropertyID:          req.PropertyID,
		Name:                req.Name,
		Gender:              req.Gender,
		Email:               req.Email,
		Mobile:              req.Mobile,
		DOB:                 req.DOB,
		Address:             req.Address,
		Rent:                req.Rent,
		RentType:            rentType,
		JoiningDate:         *req.JoiningDate,
		MoveOutDate:         req.MoveOutDate,
		NextPayDate:         req.NextPayDate,
		PaymentCycleStart:   req.PaymentCycleStart,
		PreferredBillingDay: req.PreferredBillingDay,
		PhotoURL:            req.PhotoURL,
		AadharURL:           req.AadharURL,
		Notes:               req.Notes,
		OverrideComment:     req.OverrideComment,
		IsActive:            boolOr(req.IsActive, true),
	}
	if req.Arrears != nil {
		res.Arrears = *req.Arrears
	}
	res.RowVersion = 1
	if err := s.residentRepo.Create(ctx, res); err != nil {
		return nil, repoError(err, "Resident", "create")
	}
	return res, nil
}

func (s *ResidentService) Get(ctx context.Context, scope Scope, id uuid.UUID) (*models.Resident, error) {
	return loadScoped(ctx, scope, id, "Resident", s.residentRepo.GetByID, residentProperty)
}

func (s *ResidentService) List(ctx context.Context, scope Scope, q ListQuery) (*dtos.Page[*models.Resident], error) {
	q = q.scoped(scope, "property_id")
	items, total, err := s.residentRepo.List(ctx, q.params())
	if err != nil {
		return nil, repoError(err, "Resident", "list")
	}
	return newPage(items, total, q), nil
}

func (s *ResidentService) Update(ctx context.Context, scope Scope, id uuid.UUID, req dtos.UpdateResidentRequest) (*models.Resident, error) {
	if _, err := s.Get(ctx, scope, id); err != nil {
		return nil, err
	}
	updated, err := s.residentRepo.UpdateWithRetry(ctx, id, func(res *models.Resident) error {
		applyResidentUpdate(res, req)
		return nil
	})
	if err != nil {
		return nil, repoError(err, "Resident", "update")
	}
	return updated, nil
}

func applyResidentUpdate(res *models.Resident, req dtos.UpdateResidentRequest) {
	if req.Name != nil {
		res.Name = *req.Name
	}
	if req.Gender != nil {
		res.Gender = req.Gender
	}
	if req.Email != nil {
		res.Email = req.Email
	}
	if req.Mobile != nil {
		res.Mobile = req.Mobile
	}
	if req.DOB != nil {
		res.DOB = req.DOB
	}
	if req.Address != nil {
		res.Address = req.Address
	}
	if req.Rent != nil {
		res.Rent = *req.Rent
	}
	if req.RentType != nil {
		res.RentType = *req.RentType
	}
	if req.JoiningDate != nil {
		res.JoiningDate = *req.JoiningDate
	}
	if req.MoveOutDate != nil {
		res.MoveOutDate = req.MoveOutDate
	}
	if req.NextPayDate != nil {
		res.NextPayDate = req.NextPayDate
	}
	if req.PaymentCycleStart != nil {
		res.PaymentCycleStart = req.PaymentCycleStart
	}
	if req.PreferredBillingDay != nil {
		res.PreferredBillingDay = req.PreferredBillingDay
	}
	if req.PhotoURL != nil {
		res.PhotoURL = req.PhotoURL
	}
	if req.AadharURL != nil {
		res.AadharURL = req.AadharURL
	}
	if req.Notes != nil {
		res.Notes = req.Notes
	}
	if req.OverrideComment != nil {
		res.OverrideComment = req.OverrideComment
	}
	if req.IsActive != nil {
		res.IsActive = *req.IsActive
	}
	if req.Arrears != nil {
		res.Arrears = *req.Arrears
	}
}

// Delete removes a resident that no longer holds a bed.
func (s *ResidentService) Delete(ctx context.Context, scope Scope, id uuid.UUID) error {
	res, err := s.Get(ctx, scope, id)
	if err != nil {
		return err
	}
	if res.CurrentBedID != nil {
		return repoError(utils.ErrResidentOnBed, "Resident", "delete")
	}
	if err := s.residentRepo.Delete(ctx, id); err != nil {
		return repoError(err, "Resident", "delete")
	}
	return nil
}
