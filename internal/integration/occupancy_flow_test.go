//go:build dev_test && integration

package integration

import (
	"net/http"
	"testing"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/routes"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createProperty(t *testing.T, floors, rooms, beds int) *models.Property {
	t.Helper()
	tz := "Asia/Kolkata"
	req := dtos.CreatePropertyRequest{
		Name:          "IT PG " + uuid.NewString()[:8],
		Address:       "12 MG Road",
		City:          "Bengaluru",
		State:         "Karnataka",
		ZipCode:       "560001",
		TimeZone:      &tz,
		FloorsCount:   &floors,
		RoomsPerFloor: &rooms,
		BedsPerRoom:   &beds,
	}
	var p models.Property
	require.Equal(t, http.StatusCreated, doJSON(t, http.MethodPost, routes.Properties, req, &p))
	t.Cleanup(func() {
		doJSON(t, http.MethodDelete, withID(routes.PropertyByID, p.ID), nil, nil)
	})
	return &p
}

func createResident(t *testing.T, propertyID uuid.UUID, name string) *models.Resident {
	t.Helper()
	joined, err := models.ParseDate("2024-01-15")
	require.NoError(t, err)
	req := dtos.CreateResidentRequest{
		PropertyID:  propertyID,
		Name:        name,
		Rent:        6500,
		JoiningDate: &joined,
	}
	var r models.Resident
	require.Equal(t, http.StatusCreated, doJSON(t, http.MethodPost, routes.Residents, req, &r))
	return &r
}

func TestPropertyLayoutProvisioning(t *testing.T) {
	p := createProperty(t, 2, 2, 2)

	var summary dtos.PropertySummary
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, withID(routes.PropertySummary, p.ID), nil, &summary))
	assert.Equal(t, 8, summary.TotalBeds)
	assert.Equal(t, 0, summary.OccupiedBeds)
	assert.Equal(t, 8, summary.AvailableBeds)

	var beds dtos.Page[*models.Bed]
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet,
		routes.Beds+"?property_id="+p.ID.String()+"&page_size=100", nil, &beds))
	assert.Equal(t, 8, beds.Total)

	var floors dtos.Page[*models.Floor]
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet,
		routes.Floors+"?property_id="+p.ID.String(), nil, &floors))
	require.Equal(t, 2, floors.Total)
}

func TestAssignAndReleaseFlow(t *testing.T) {
	p := createProperty(t, 1, 1, 2)
	alice := createResident(t, p.ID, "Alice")
	bob := createResident(t, p.ID, "Bob")

	var beds dtos.Page[*models.Bed]
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet,
		routes.BedsAvailable+"?property_id="+p.ID.String(), nil, &beds))
	require.Len(t, beds.Data, 2)
	bed := beds.Data[0]

	var occ models.Occupancy
	status := doJSON(t, http.MethodPost, routes.OccupancyAssign,
		dtos.AssignOccupancyRequest{ResidentID: alice.ID, BedID: bed.ID, RoomID: &bed.RoomID}, &occ)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, occ.IsOccupied)
	require.NotNil(t, occ.ResidentID)
	assert.Equal(t, alice.ID, *occ.ResidentID)

	// A second resident cannot take the same bed.
	status = doJSON(t, http.MethodPost, routes.OccupancyAssign,
		dtos.AssignOccupancyRequest{ResidentID: bob.ID, BedID: bed.ID}, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	var resident models.Resident
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, withID(routes.ResidentByID, alice.ID), nil, &resident))
	require.NotNil(t, resident.CurrentBedID)
	assert.Equal(t, bed.ID, *resident.CurrentBedID)

	var summary dtos.PropertySummary
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, withID(routes.PropertySummary, p.ID), nil, &summary))
	assert.Equal(t, 1, summary.OccupiedBeds)
	assert.Equal(t, 1, summary.AvailableBeds)

	var released models.Occupancy
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodPost, withID(routes.OccupancyRelease, occ.ID),
		dtos.ReleaseOccupancyRequest{}, &released))
	assert.False(t, released.IsOccupied)

	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, withID(routes.ResidentByID, alice.ID), nil, &resident))
	assert.Nil(t, resident.CurrentBedID)

	var history dtos.Page[*models.OccupancyHistory]
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet,
		routes.OccupancyHistory+"?resident_id="+alice.ID.String(), nil, &history))
	require.Equal(t, 2, history.Total)
}

func TestMalformedIDsAreNotFound(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, "/api/v1/properties/123", nil, nil))
	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, withID(routes.BedByID, uuid.New()), nil, nil))
}

func TestPaymentsByResidentRequiresResident(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodGet, routes.PaymentsByResident, nil, nil))
}
