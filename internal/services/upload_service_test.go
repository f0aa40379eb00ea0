package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/models"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSigner struct {
	bucket, object, contentType string
	expires                     time.Time
	err                         error
}

func (s *stubSigner) SignedPutURL(bucket, object, contentType string, expires time.Time) (string, error) {
	s.bucket, s.object, s.contentType, s.expires = bucket, object, contentType, expires
	if s.err != nil {
		return "", s.err
	}
	return "https://signed.example/" + object, nil
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, "jpg", extensionFor("image/jpeg"))
	assert.Equal(t, "jpg", extensionFor("IMAGE/JPG"))
	assert.Equal(t, "png", extensionFor("image/png; charset=binary"))
	assert.Equal(t, "webp", extensionFor("image/webp"))
	assert.Equal(t, "pdf", extensionFor("application/pdf"))
	assert.Equal(t, "bin", extensionFor("text/plain"))
}

func TestUploadService_SignResidentUpload(t *testing.T) {
	propID := uuid.New()
	res := monthly(uuid.New(), propID, 1000, d(2024, time.January, 1))
	signer := &stubSigner{}
	now := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

	svc := NewUploadService(newFakeResidentRepo(res), signer, "pg-bucket", "/uploads/", 0)
	svc.now = fixedClock(now)
	svc.token = func() string { return "abc123" }

	req := dtos.ResidentUploadRequest{
		PropertyID: propID, ResidentID: res.ID, Kind: "resident_photo", ContentType: "image/jpeg",
	}
	out, err := svc.SignResidentUpload(context.Background(), Scope{Role: models.RoleAdmin}, req)
	require.NoError(t, err)

	wantObject := "uploads/" + propID.String() + "/residents/" + res.ID.String() + "/resident_photo/abc123.jpg"
	assert.Equal(t, wantObject, out.ObjectName)
	assert.Equal(t, "https://storage.googleapis.com/pg-bucket/"+wantObject, out.StorageURL)
	assert.Equal(t, http.MethodPut, out.Method)
	assert.Equal(t, 900, out.ExpiresIn)
	assert.Equal(t, "pg-bucket", signer.bucket)
	assert.Equal(t, "image/jpeg", signer.contentType)
	assert.Equal(t, now.Add(15*time.Minute), signer.expires)
}

func TestUploadService_Errors(t *testing.T) {
	propID := uuid.New()
	res := monthly(uuid.New(), propID, 1000, d(2024, time.January, 1))
	req := dtos.ResidentUploadRequest{
		PropertyID: propID, ResidentID: res.ID, Kind: "aadhar_file", ContentType: "application/pdf",
	}
	admin := Scope{Role: models.RoleAdmin}
	ctx := context.Background()

	status := func(err error) int {
		var appErr *utils.AppError
		require.ErrorAs(t, err, &appErr)
		return appErr.StatusCode
	}

	_, err := NewUploadService(newFakeResidentRepo(res), nil, "pg-bucket", "", 0).SignResidentUpload(ctx, admin, req)
	assert.Equal(t, http.StatusServiceUnavailable, status(err))

	_, err = NewUploadService(newFakeResidentRepo(res), &stubSigner{}, "", "", 0).SignResidentUpload(ctx, admin, req)
	assert.Equal(t, http.StatusServiceUnavailable, status(err))

	svc := NewUploadService(newFakeResidentRepo(res), &stubSigner{}, "pg-bucket", "", 0)
	mismatched := req
	mismatched.PropertyID = uuid.New()
	_, err = svc.SignResidentUpload(ctx, admin, mismatched)
	assert.Equal(t, http.StatusNotFound, status(err))

	other := uuid.New()
	_, err = svc.SignResidentUpload(ctx, Scope{PropertyID: &other, Role: models.RoleManager}, req)
	assert.Equal(t, http.StatusNotFound, status(err))

	failing := NewUploadService(newFakeResidentRepo(res), &stubSigner{err: errors.New("boom")}, "pg-bucket", "", 0)
	_, err = failing.SignResidentUpload(ctx, admin, req)
	assert.Equal(t, http.StatusBadGateway, status(err))
}
