package services

import (
	"testing"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLayout_Counts(t *testing.T) {
	p := &models.Property{ID: uuid.New(), FloorsCount: 3, RoomsPerFloor: 2, BedsPerRoom: 3}
	layout := BuildLayout(p)

	require.Len(t, layout.Floors, 3)
	require.Len(t, layout.Rooms, 6)
	require.Len(t, layout.Beds, p.TotalBeds())

	assert.Equal(t, "Floor 1", layout.Floors[0].FloorName)
	assert.Equal(t, 1, layout.Floors[0].FloorLevel)
	assert.Equal(t, "101", layout.Rooms[0].RoomNumber)
	assert.Equal(t, "302", layout.Rooms[5].RoomNumber)
	assert.Equal(t, models.RoomTypeTriple, layout.Rooms[0].RoomType)
	assert.Equal(t, "101A", layout.Beds[0].BedNumber)
	assert.Equal(t, "101C", layout.Beds[2].BedNumber)
}

func TestBuildLayout_LinksHierarchy(t *testing.T) {
	p := &models.Property{ID: uuid.New(), FloorsCount: 2, RoomsPerFloor: 2, BedsPerRoom: 2}
	layout := BuildLayout(p)

	rooms := map[uuid.UUID]*models.Room{}
	for _, r := range layout.Rooms {
		rooms[r.ID] = r
		assert.Equal(t, p.ID, r.PropertyID)
	}
	for _, b := range layout.Beds {
		room, ok := rooms[b.RoomID]
		require.True(t, ok)
		assert.Equal(t, room.FloorID, b.FloorID)
		assert.Equal(t, p.ID, b.PropertyID)
	}
}

func TestBuildLayout_Empty(t *testing.T) {
	layout := BuildLayout(&models.Property{ID: uuid.New(), FloorsCount: 2, RoomsPerFloor: 0, BedsPerRoom: 3})
	assert.Len(t, layout.Floors, 2)
	assert.Empty(t, layout.Rooms)
	assert.Empty(t, layout.Beds)
}

func TestBedLetter(t *testing.T) {
	assert.Equal(t, "A", bedLetter(0))
	assert.Equal(t, "Z", bedLetter(25))
	assert.Equal(t, "AA", bedLetter(26))
}
