package controllers

import (
	"net/http"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/services"
	"github.com/go-playground/validator/v10"
)

type FloorController struct {
	floorService *services.FloorService
	validate     *validator.Validate
	pageSize     int
}

func NewFloorController(floorService *services.FloorService, pageSize int) *FloorController {
	return &FloorController{floorService: floorService, validate: validator.New(), pageSize: pageSize}
}

// GET /api/v1/floors
func (c *FloorController) ListHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, repositories.FloorListSpec, c.pageSize, c.floorService.List)
}

// POST /api/v1/floors
func (c *FloorController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, c.validate, c.floorService.Create)
}

// GET /api/v1/floors/{id}
func (c *FloorController) GetHandler(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, "Floor", c.floorService.Get)
}

// PATCH /api/v1/floors/{id}
func (c *FloorController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, c.validate, "Floor", c.floorService.Update)
}

// DELETE /api/v1/floors/{id}
func (c *FloorController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, "Floor", c.floorService.Delete)
}

type RoomController struct {
	roomService *services.RoomService
	validate    *validator.Validate
	pageSize    int
}

func NewRoomController(roomService *services.RoomService, pageSize int) *RoomController {
	return &RoomController{roomService: roomService, validate: validator.New(), pageSize: pageSize}
}

// GET /api/v1/rooms
func (c *RoomController) ListHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, repositories.RoomListSpec, c.pageSize, c.roomService.List)
}

// POST /api/v1/rooms
func (c *RoomController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, c.validate, c.roomService.Create)
}

// GET /api/v1/rooms/{id}
func (c *RoomController) GetHandler(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, "Room", c.roomService.Get)
}

// PATCH /api/v1/rooms/{id}
func (c *RoomController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, c.validate, "Room", c.roomService.Update)
}

// DELETE /api/v1/rooms/{id}
func (c *RoomController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, "Room", c.roomService.Delete)
}

type BedController struct {
	bedService *services.BedService
	validate   *validator.Validate
	pageSize   int
}

func NewBedController(bedService *services.BedService, pageSize int) *BedController {
	return &BedController{bedService: bedService, validate: validator.New(), pageSize: pageSize}
}

// GET /api/v1/beds
func (c *BedController) ListHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, repositories.BedListSpec, c.pageSize, c.bedService.List)
}

// GET /api/v1/beds/available
func (c *BedController) ListAvailableHandler(w http.ResponseWriter, r *http.Request) {
	serveList(w, r, repositories.AvailableBedListSpec, c.pageSize, c.bedService.ListAvailable)
}

// POST /api/v1/beds
func (c *BedController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	serveCreate(w, r, c.validate, c.bedService.Create)
}

// GET /api/v1/beds/{id}
func (c *BedController) GetHandler(w http.ResponseWriter, r *http.Request) {
	serveGet(w, r, "Bed", c.bedService.Get)
}

// PATCH /api/v1/beds/{id}
func (c *BedController) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	serveUpdate(w, r, c.validate, "Bed", c.bedService.Update)
}

// DELETE /api/v1/beds/{id}
func (c *BedController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	serveDelete(w, r, "Bed", c.bedService.Delete)
}
