package services

import (
	"sort"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
)

// BuildOccupancyTree folds a property's rows into the nested occupancy view.
// A bed is occupied only when its occupancy row is flagged and has a resident.
// Floor and room totals count bed rows; the property total is the configured
// capacity, so occupied + available always equals p.TotalBeds().
func BuildOccupancyTree(
	p *models.Property,
	floors []*models.Floor,
	rooms []*models.Room,
	beds []*models.Bed,
	occupancies []*models.Occupancy,
) dtos.OccupancyDetail {
	byBed := make(map[uuid.UUID]*models.Occupancy, len(occupancies))
	for _, o := range occupancies {
		if o.IsOccupied && o.ResidentID != nil {
			byBed[o.BedID] = o
		}
	}

	bedsByRoom := make(map[uuid.UUID][]*models.Bed)
	for _, b := range beds {
		bedsByRoom[b.RoomID] = append(bedsByRoom[b.RoomID], b)
	}
	roomsByFloor := make(map[uuid.UUID][]*models.Room)
	for _, r := range rooms {
		roomsByFloor[r.FloorID] = append(roomsByFloor[r.FloorID], r)
	}

	sortedFloors := append([]*models.Floor(nil), floors...)
	sort.SliceStable(sortedFloors, func(i, j int) bool {
		return sortedFloors[i].FloorLevel < sortedFloors[j].FloorLevel
	})

	detail := dtos.OccupancyDetail{
		PropertyID:   p.ID,
		PropertyName: p.Name,
		Address:      p.Address,
		City:         p.City,
		State:        p.State,
		ZipCode:      p.ZipCode,
		Description:  p.Description,
		TotalFloors:  len(floors),
		Floors:       make([]dtos.FloorDetail, 0, len(floors)),
	}

	for _, f := range sortedFloors {
		fd := dtos.FloorDetail{
			FloorID:    f.ID,
			FloorLevel: f.FloorLevel,
			FloorName:  f.FloorName,
			Rooms:      []dtos.RoomDetail{},
		}

		floorRooms := roomsByFloor[f.ID]
		sort.SliceStable(floorRooms, func(i, j int) bool {
			return floorRooms[i].RoomNumber < floorRooms[j].RoomNumber
		})
		for _, r := range floorRooms {
			rd := dtos.RoomDetail{
				RoomID:     r.ID,
				RoomNumber: r.RoomNumber,
				RoomName:   r.RoomName,
				RoomType:   r.RoomType,
				Beds:       []dtos.BedDetail{},
			}

			roomBeds := bedsByRoom[r.ID]
			sort.SliceStable(roomBeds, func(i, j int) bool {
				return roomBeds[i].BedNumber < roomBeds[j].BedNumber
			})
			for _, b := range roomBeds {
				bd := dtos.BedDetail{BedID: b.ID, BedNumber: b.BedNumber, BedName: b.BedName}
				if o, ok := byBed[b.ID]; ok {
					bd.IsOccupied = true
					bd.ResidentID = o.ResidentID
					bd.ResidentName = o.ResidentName
					rd.OccupiedCount++
				}
				rd.Beds = append(rd.Beds, bd)
			}
			rd.TotalBeds = len(roomBeds)
			rd.AvailableCount = rd.TotalBeds - rd.OccupiedCount
			rd.OccupancyPercentage = OccupancyPercentage(rd.OccupiedCount, rd.TotalBeds)

			fd.TotalBeds += rd.TotalBeds
			fd.OccupiedBeds += rd.OccupiedCount
			fd.Rooms = append(fd.Rooms, rd)
		}
		fd.AvailableBeds = fd.TotalBeds - fd.OccupiedBeds
		fd.OccupancyPercentage = OccupancyPercentage(fd.OccupiedBeds, fd.TotalBeds)

		detail.TotalRooms += len(floorRooms)
		detail.OccupiedBeds += fd.OccupiedBeds
		detail.Floors = append(detail.Floors, fd)
	}
	detail.TotalBeds = p.TotalBeds()
	detail.AvailableBeds = max(detail.TotalBeds-detail.OccupiedBeds, 0)
	detail.OccupancyPercentage = OccupancyPercentage(detail.OccupiedBeds, detail.TotalBeds)
	return detail
}

// OccupancyPercentage is occupied/total×100 rounded to 2 decimals, 0 for no beds.
func OccupancyPercentage(occupied, total int) float64 {
	if total <= 0 {
		return 0
	}
	return utils.Round2(float64(occupied) / float64(total) * 100)
}
