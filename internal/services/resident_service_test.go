package services

import (
	"context"
	"testing"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResidentService_Delete(t *testing.T) {
	prop := &models.Property{ID: uuid.New(), Name: "Lakeview"}
	admin := Scope{UserID: uuid.New(), Role: models.RoleAdmin}

	t.Run("resident on a bed is refused", func(t *testing.T) {
		bed := uuid.New()
		res := monthly(uuid.New(), prop.ID, 500, d(2024, time.January, 1))
		res.CurrentBedID = &bed
		repo := newFakeResidentRepo(res)
		svc := NewResidentService(repo, newFakePropertyRepo(prop))

		err := svc.Delete(context.Background(), admin, res.ID)
		requireFieldError(t, err, "resident_id")
		assert.Contains(t, repo.residents, res.ID)
	})

	t.Run("released resident is removed", func(t *testing.T) {
		res := monthly(uuid.New(), prop.ID, 500, d(2024, time.January, 1))
		repo := newFakeResidentRepo(res)
		svc := NewResidentService(repo, newFakePropertyRepo(prop))

		require.NoError(t, svc.Delete(context.Background(), admin, res.ID))
		assert.NotContains(t, repo.residents, res.ID)
	})
}
