package services

import (
	"context"
	"testing"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBedService_UpdateRoomMove(t *testing.T) {
	p := &models.Property{ID: uuid.New(), FloorsCount: 1, RoomsPerFloor: 2, BedsPerRoom: 1}
	layout := BuildLayout(p)
	_, _, rooms, beds := newFakeLayout(layout)
	occupied, free := layout.Beds[0], layout.Beds[1]
	occ := newFakeOccupancyRepo(occupy(occupied, "Asha"))
	svc := NewBedService(beds, rooms, occ)
	admin := Scope{UserID: uuid.New(), Role: models.RoleAdmin}
	ctx := context.Background()

	t.Run("occupied bed stays put", func(t *testing.T) {
		origin := occupied.RoomID
		_, err := svc.Update(ctx, admin, occupied.ID, dtos.UpdateBedRequest{RoomID: &free.RoomID})
		requireFieldError(t, err, "room_id")
		assert.Equal(t, origin, occupied.RoomID)
	})

	t.Run("occupied bed can still be renamed", func(t *testing.T) {
		b, err := svc.Update(ctx, admin, occupied.ID, dtos.UpdateBedRequest{BedNumber: utils.Ptr("A1")})
		require.NoError(t, err)
		assert.Equal(t, "A1", b.BedNumber)
	})

	t.Run("free bed moves with its floor", func(t *testing.T) {
		target := layout.Rooms[0]
		b, err := svc.Update(ctx, admin, free.ID, dtos.UpdateBedRequest{RoomID: &target.ID})
		require.NoError(t, err)
		assert.Equal(t, target.ID, b.RoomID)
		assert.Equal(t, target.FloorID, b.FloorID)
	})
}
