package controllers

import (
	"net/http"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/services"
	"github.com/go-playground/validator/v10"
)

type UploadController struct {
	uploadService *services.UploadService
	validate      *validator.Validate
}

func NewUploadController(uploadService *services.UploadService) *UploadController {
	return &UploadController{uploadService: uploadService, validate: validator.New()}
}

// POST /api/v1/uploads/resident
func (c *UploadController) ResidentUploadHandler(w http.ResponseWriter, r *http.Request) {
	serveBody(w, r, c.validate, http.StatusOK, c.uploadService.SignResidentUpload)
}
