package services

import (
	"testing"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func occupy(b *models.Bed, name string) *models.Occupancy {
	rid := uuid.New()
	return &models.Occupancy{
		ID: uuid.New(), PropertyID: b.PropertyID, FloorID: b.FloorID, RoomID: b.RoomID, BedID: b.ID,
		ResidentID: &rid, ResidentName: utils.Ptr(name), IsOccupied: true,
	}
}

func TestBuildOccupancyTree_TwoByTwoByTwo(t *testing.T) {
	p := &models.Property{ID: uuid.New(), Name: "Green PG", FloorsCount: 2, RoomsPerFloor: 2, BedsPerRoom: 2}
	layout := BuildLayout(p)
	occs := []*models.Occupancy{
		occupy(layout.Beds[0], "Asha"),
		occupy(layout.Beds[3], "Ravi"),
		occupy(layout.Beds[6], "Meena"),
	}

	tree := BuildOccupancyTree(p, layout.Floors, layout.Rooms, layout.Beds, occs)

	assert.Equal(t, 8, tree.TotalBeds)
	assert.Equal(t, 3, tree.OccupiedBeds)
	assert.Equal(t, 5, tree.AvailableBeds)
	assert.Equal(t, 37.5, tree.OccupancyPercentage)
	assert.Equal(t, 2, tree.TotalFloors)
	assert.Equal(t, 4, tree.TotalRooms)

	require.Len(t, tree.Floors, 2)
	assert.Equal(t, 2, tree.Floors[0].OccupiedBeds)
	assert.Equal(t, 50.0, tree.Floors[0].OccupancyPercentage)

	bed := tree.Floors[0].Rooms[0].Beds[0]
	assert.True(t, bed.IsOccupied)
	require.NotNil(t, bed.ResidentName)
	assert.Equal(t, "Asha", *bed.ResidentName)
}

func TestBuildOccupancyTree_SumsMatchConfiguredTotal(t *testing.T) {
	p := &models.Property{ID: uuid.New(), FloorsCount: 3, RoomsPerFloor: 4, BedsPerRoom: 3}
	layout := BuildLayout(p)
	occs := []*models.Occupancy{occupy(layout.Beds[5], "A"), occupy(layout.Beds[17], "B")}

	tree := BuildOccupancyTree(p, layout.Floors, layout.Rooms, layout.Beds, occs)
	assert.Equal(t, p.TotalBeds(), tree.OccupiedBeds+tree.AvailableBeds)

	sum := 0
	for _, f := range tree.Floors {
		for _, r := range f.Rooms {
			assert.Equal(t, r.TotalBeds, r.OccupiedCount+r.AvailableCount)
			sum += r.TotalBeds
		}
	}
	assert.Equal(t, p.TotalBeds(), sum)
}

func TestBuildOccupancyTree_ShrunkCountsClampAvailable(t *testing.T) {
	p := &models.Property{ID: uuid.New(), FloorsCount: 1, RoomsPerFloor: 2, BedsPerRoom: 2}
	layout := BuildLayout(p)
	occs := []*models.Occupancy{occupy(layout.Beds[0], "A"), occupy(layout.Beds[1], "B"), occupy(layout.Beds[2], "C")}
	p.RoomsPerFloor = 1

	tree := BuildOccupancyTree(p, layout.Floors, layout.Rooms, layout.Beds, occs)
	assert.Equal(t, 2, tree.TotalBeds)
	assert.Equal(t, 3, tree.OccupiedBeds)
	assert.Zero(t, tree.AvailableBeds)
	assert.Equal(t, 4, tree.Floors[0].TotalBeds)
}

func TestBuildOccupancyTree_IgnoresFreedRows(t *testing.T) {
	p := &models.Property{ID: uuid.New(), FloorsCount: 1, RoomsPerFloor: 1, BedsPerRoom: 2}
	layout := BuildLayout(p)
	freed := &models.Occupancy{ID: uuid.New(), BedID: layout.Beds[0].ID, IsOccupied: false}

	tree := BuildOccupancyTree(p, layout.Floors, layout.Rooms, layout.Beds, []*models.Occupancy{freed})
	assert.Zero(t, tree.OccupiedBeds)
	assert.Equal(t, 2, tree.AvailableBeds)
}

func TestOccupancyPercentage(t *testing.T) {
	assert.Zero(t, OccupancyPercentage(0, 0))
	assert.Equal(t, 33.33, OccupancyPercentage(1, 3))
	assert.Equal(t, 100.0, OccupancyPercentage(4, 4))
}
