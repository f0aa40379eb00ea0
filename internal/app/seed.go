package app

import (
	"context"
	"fmt"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/constants"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/services"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
)

// Fixed ids make seeding idempotent across restarts.
const (
	SeedAdminID    = "11111111-2222-3333-4444-555555555555"
	SeedPropertyID = "aaaaaaaa-bbbb-4ccc-8ddd-eeeeeeeeeee1"

	seedAdminPassword = "P@ssword123"
)

// SeedAllTestData creates a default admin and a sample property with the
// default layout. Rows that already exist are left alone.
func SeedAllTestData(
	ctx context.Context,
	userRepo repositories.UserRepository,
	propRepo repositories.PropertyRepository,
	defaultZone string,
) error {
	if err := seedSampleProperty(ctx, propRepo, defaultZone); err != nil {
		return err
	}
	if err := seedDefaultAdmin(ctx, userRepo); err != nil {
		return err
	}
	utils.Logger.Info("Seeding completed successfully.")
	return nil
}

func seedDefaultAdmin(ctx context.Context, userRepo repositories.UserRepository) error {
	id := uuid.MustParse(SeedAdminID)

	existing, err := userRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check for existing admin: %w", err)
	}
	if existing == nil {
		existing, err = userRepo.GetByUsername(ctx, constants.DefaultAdminUsername)
		if err != nil {
			return fmt.Errorf("check for existing admin by username: %w", err)
		}
	}
	if existing != nil {
		utils.Logger.Infof("Default admin already exists (ID=%s); skipping seed.", existing.ID)
		return nil
	}

	hash, err := utils.HashPassword(seedAdminPassword)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	admin := &models.User{
		ID:           id,
		Username:     constants.DefaultAdminUsername,
		Email:        constants.DefaultAdminEmail,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
	}
	admin.RowVersion = 1
	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("insert default admin: %w", err)
	}

	utils.Logger.Infof("Seeded default admin (ID=%s, username=%s).", admin.ID, admin.Username)
	return nil
}

func seedSampleProperty(ctx context.Context, propRepo repositories.PropertyRepository, defaultZone string) error {
	id := uuid.MustParse(SeedPropertyID)

	existing, err := propRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("check for sample property: %w", err)
	}
	if existing != nil {
		utils.Logger.Infof("Sample property already exists (ID=%s); skipping seed.", existing.ID)
		return nil
	}

	p := &models.Property{
		ID:            id,
		Name:          constants.SamplePropertyName,
		Address:       "1 Sample Street",
		City:          "Bengaluru",
		State:         "Karnataka",
		ZipCode:       "560001",
		TimeZone:      defaultZone,
		FloorsCount:   5,
		RoomsPerFloor: 2,
		BedsPerRoom:   3,
		IsActive:      true,
	}
	p.RowVersion = 1

	layout := services.BuildLayout(p)
	if err := propRepo.CreateWithLayout(ctx, p, layout); err != nil {
		return fmt.Errorf("insert sample property: %w", err)
	}

	utils.Logger.Infof("Seeded sample property (ID=%s, beds=%d).", p.ID, len(layout.Beds))
	return nil
}
