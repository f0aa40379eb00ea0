package dtos

import "github.com/google/uuid"

type ResidentUploadRequest struct {
	PropertyID  uuid.UUID `json:"property_id" validate:"required"`
	ResidentID  uuid.UUID `json:"resident_id" validate:"required"`
	Kind        string    `json:"kind" validate:"required,oneof=resident_photo aadhar_file"`
	ContentType string    `json:"content_type" validate:"required"`
}

type ResidentUploadResponse struct {
	ObjectName string `json:"object_name"`
	UploadURL  string `json:"upload_url"`
	StorageURL string `json:"storage_url"`
	Method     string `json:"method"`
	ExpiresIn  int    `json:"expires_in"`
}
