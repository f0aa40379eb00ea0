package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGeocoder struct {
	lat, lng float64
	err      error
	queries  []string
}

func (g *stubGeocoder) Geocode(_ context.Context, address string) (float64, float64, error) {
	g.queries = append(g.queries, address)
	return g.lat, g.lng, g.err
}

var adminScope = Scope{UserID: uuid.New(), Role: models.RoleAdmin}

func createRequest() dtos.CreatePropertyRequest {
	return dtos.CreatePropertyRequest{
		Name: " Green Nest ", Address: "12 MG Road", City: "Bengaluru", State: "KA", ZipCode: "560001",
	}
}

func TestPropertyService_CreateProvisionsDefaultLayout(t *testing.T) {
	repo := newFakePropertyRepo()
	geo := &stubGeocoder{lat: 12.9716, lng: 77.5946}
	svc := NewPropertyService(repo, geo, "UTC")

	p, err := svc.Create(context.Background(), adminScope, createRequest())
	require.NoError(t, err)

	assert.Equal(t, "Green Nest", p.Name)
	assert.Equal(t, 5, p.FloorsCount)
	assert.Equal(t, 2, p.RoomsPerFloor)
	assert.Equal(t, 3, p.BedsPerRoom)
	assert.True(t, p.IsActive)
	assert.Equal(t, []string{"12 MG Road, Bengaluru, KA, 560001"}, geo.queries)
	require.NotNil(t, p.Latitude)
	assert.Contains(t, []string{"Asia/Kolkata", "Asia/Calcutta"}, p.TimeZone)

	layout := repo.layouts[p.ID]
	require.NotNil(t, layout)
	assert.Len(t, layout.Floors, 5)
	assert.Len(t, layout.Rooms, 10)
	assert.Len(t, layout.Beds, 30)
	assert.Equal(t, p.TotalBeds(), len(layout.Beds))
}

func TestPropertyService_CreateZoneFallbacks(t *testing.T) {
	t.Run("geocoding failure keeps default zone", func(t *testing.T) {
		svc := NewPropertyService(newFakePropertyRepo(), &stubGeocoder{err: errors.New("quota")}, "Asia/Kolkata")
		p, err := svc.Create(context.Background(), adminScope, createRequest())
		require.NoError(t, err)
		assert.Nil(t, p.Latitude)
		assert.Equal(t, "Asia/Kolkata", p.TimeZone)
	})

	t.Run("explicit zone and coordinates skip lookup", func(t *testing.T) {
		geo := &stubGeocoder{}
		svc := NewPropertyService(newFakePropertyRepo(), geo, "UTC")
		req := createRequest()
		req.Latitude, req.Longitude = utils.Ptr(40.7128), utils.Ptr(-74.0060)
		req.TimeZone = utils.Ptr("Europe/London")
		req.FloorsCount, req.RoomsPerFloor, req.BedsPerRoom = utils.Ptr(1), utils.Ptr(1), utils.Ptr(0)

		p, err := svc.Create(context.Background(), adminScope, req)
		require.NoError(t, err)
		assert.Empty(t, geo.queries)
		assert.Equal(t, "Europe/London", p.TimeZone)
		assert.Equal(t, 0, p.TotalBeds())
	})

	t.Run("no geocoder", func(t *testing.T) {
		svc := NewPropertyService(newFakePropertyRepo(), nil, "")
		p, err := svc.Create(context.Background(), adminScope, createRequest())
		require.NoError(t, err)
		assert.Equal(t, "UTC", p.TimeZone)
	})
}

func TestPropertyService_CreateRefusesScopedCallers(t *testing.T) {
	home := uuid.New()
	repo := newFakePropertyRepo()
	svc := NewPropertyService(repo, nil, "UTC")

	_, err := svc.Create(context.Background(), Scope{UserID: uuid.New(), PropertyID: &home, Role: models.RoleManager}, createRequest())
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusForbidden, appErr.StatusCode)
	assert.Equal(t, utils.ErrCodeForbidden, appErr.Code)
	assert.Empty(t, repo.props)

	p, err := svc.Create(context.Background(), Scope{UserID: uuid.New(), Role: models.RoleManager}, createRequest())
	require.NoError(t, err)
	assert.Contains(t, repo.props, p.ID)
}

func TestPropertyService_GetHonoursScope(t *testing.T) {
	p := &models.Property{ID: uuid.New(), Name: "Mine"}
	svc := NewPropertyService(newFakePropertyRepo(p), nil, "UTC")
	other := uuid.New()

	got, err := svc.Get(context.Background(), Scope{PropertyID: &p.ID, Role: models.RoleStaff}, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Name)

	_, err = svc.Get(context.Background(), Scope{PropertyID: &other, Role: models.RoleStaff}, p.ID)
	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.ErrCodeNotFound, appErr.Code)

	_, err = svc.Get(context.Background(), Scope{Role: models.RoleAdmin}, uuid.New())
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, utils.ErrCodeNotFound, appErr.Code)
}

func TestScope(t *testing.T) {
	pid := uuid.New()
	admin := Scope{Role: models.RoleAdmin, PropertyID: &pid}
	staff := Scope{Role: models.RoleStaff, PropertyID: &pid}
	floating := Scope{Role: models.RoleManager}

	assert.True(t, admin.CanAccess(uuid.New()))
	assert.True(t, floating.CanAccess(uuid.New()))
	assert.True(t, staff.CanAccess(pid))
	assert.False(t, staff.CanAccess(uuid.New()))

	filter, err := staff.PropertyFilter(nil)
	require.NoError(t, err)
	assert.Equal(t, pid, *filter)

	filter, err = admin.PropertyFilter(nil)
	require.NoError(t, err)
	assert.Nil(t, filter)

	q := ListQuery{Filters: map[string]any{"is_active": true}, Page: 2, PageSize: 10}
	scoped := q.scoped(staff, "property_id")
	assert.Equal(t, pid, scoped.Filters["property_id"])
	assert.NotContains(t, q.Filters, "property_id")
	assert.Equal(t, 10, scoped.params().Offset)
}
