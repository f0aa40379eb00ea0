package services

import (
	"fmt"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/google/uuid"
)

// BuildLayout generates the floors, rooms and beds of a new property:
// "Floor N", rooms "N01".."NRR" and beds "N01A".. so that the tree holds
// exactly FloorsCount × RoomsPerFloor × BedsPerRoom beds.
func BuildLayout(p *models.Property) *models.PropertyLayout {
	layout := &models.PropertyLayout{}
	roomType := models.RoomTypeForBeds(p.BedsPerRoom)

	for level := 1; level <= p.FloorsCount; level++ {
		floor := &models.Floor{
			ID:         uuid.New(),
			PropertyID: p.ID,
			FloorLevel: level,
			FloorName:  fmt.Sprintf("Floor %d", level),
			IsActive:   true,
		}
		layout.Floors = append(layout.Floors, floor)

		for n := 1; n <= p.RoomsPerFloor; n++ {
			room := &models.Room{
				ID:         uuid.New(),
				FloorID:    floor.ID,
				PropertyID: p.ID,
				RoomNumber: fmt.Sprintf("%d%02d", level, n),
				TotalBeds:  p.BedsPerRoom,
				RoomType:   roomType,
				Capacity:   p.BedsPerRoom,
				IsActive:   true,
			}
			layout.Rooms = append(layout.Rooms, room)

			for b := 0; b < p.BedsPerRoom; b++ {
				layout.Beds = append(layout.Beds, &models.Bed{
					ID:         uuid.New(),
					RoomID:     room.ID,
					FloorID:    floor.ID,
					PropertyID: p.ID,
					BedNumber:  room.RoomNumber + bedLetter(b),
					IsActive:   true,
				})
			}
		}
	}
	return layout
}

// bedLetter maps 0→"A", 25→"Z", 26→"AA".
func bedLetter(i int) string {
	s := ""
	for i >= 0 {
		s = string(rune('A'+i%26)) + s
		i = i/26 - 1
	}
	return s
}
