package services

import (
	"context"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/constants"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/dtos"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/repositories"
	"github.com/DILEEPKUMAREBIX/pgadmin-api/internal/utils"
	"github.com/google/uuid"
	"golang.org/x/oauth2/google"
)

// URLSigner issues time-limited PUT URLs for one object.
type URLSigner interface {
	SignedPutURL(bucket, object, contentType string, expires time.Time) (string, error)
}

// GCSSigner signs V4 URLs offline with a service-account key.
type GCSSigner struct {
	accessID   string
	privateKey []byte
}

func NewGCSSigner(credentialsJSON []byte) (*GCSSigner, error) {
	conf, err := google.JWTConfigFromJSON(credentialsJSON, storage.ScopeReadWrite)
	if err != nil {
		return nil, fmt.Errorf("parse service account: %w", err)
	}
	return &GCSSigner{accessID: conf.Email, privateKey: conf.PrivateKey}, nil
}

func (g *GCSSigner) SignedPutURL(bucket, object, contentType string, expires time.Time) (string, error) {
	return storage.SignedURL(bucket, object, &storage.SignedURLOptions{
		GoogleAccessID: g.accessID,
		PrivateKey:     g.privateKey,
		Method:         http.MethodPut,
		ContentType:    contentType,
		Expires:        expires,
		Scheme:         storage.SigningSchemeV4,
	})
}

type UploadService struct {
	residentRepo repositories.ResidentRepository
	signer       URLSigner
	bucket       string
	prefix       string
	expiry       time.Duration
	now          func() time.Time
	token        func() string
}

// NewUploadService builds the service. A nil signer or empty bucket leaves
// uploads disabled.
func NewUploadService(
	residentRepo repositories.ResidentRepository,
	signer URLSigner,
	bucket, prefix string,
	expiry time.Duration,
) *UploadService {
	if prefix == "" {
		prefix = constants.DefaultUploadPrefix
	}
	if expiry <= 0 {
		expiry = constants.DefaultSignedURLExpiry
	}
	return &UploadService{
		residentRepo: residentRepo,
		signer:       signer,
		bucket:       bucket,
		prefix:       strings.Trim(prefix, "/"),
		expiry:       expiry,
		now:          time.Now,
		token:        randomToken,
	}
}

func randomToken() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])
}

// extensionFor maps an upload content type to a file extension.
func extensionFor(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	switch ct {
	case "image/jpeg", "image/jpg":
		return "jpg"
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "application/pdf":
		return "pdf"
	default:
		return "bin"
	}
}

// ObjectName is the storage path of one resident upload.
func (s *UploadService) ObjectName(req dtos.ResidentUploadRequest, token string) string {
	return fmt.Sprintf("%s/%s/residents/%s/%s/%s.%s",
		s.prefix, req.PropertyID, req.ResidentID, req.Kind, token, extensionFor(req.ContentType))
}

// SignResidentUpload returns a signed PUT URL for a resident photo or ID file.
func (s *UploadService) SignResidentUpload(ctx context.Context, scope Scope, req dtos.ResidentUploadRequest) (*dtos.ResidentUploadResponse, error) {
	if s.signer == nil || s.bucket == "" {
		return nil, &utils.AppError{
			StatusCode: http.StatusServiceUnavailable,
			Code:       utils.ErrCodeServiceUnavailable,
			Message:    "File uploads are not configured",
		}
	}
	if !scope.CanAccess(req.PropertyID) {
		return nil, utils.NotFound("Resident not found")
	}
	res, err := s.residentRepo.GetByID(ctx, req.ResidentID)
	if err != nil {
		return nil, utils.Internal("Failed to load resident", err)
	}
	if res == nil || res.PropertyID != req.PropertyID {
		return nil, utils.NotFound("Resident not found")
	}

	object := s.ObjectName(req, s.token())
	url, err := s.signer.SignedPutURL(s.bucket, object, req.ContentType, s.now().Add(s.expiry))
	if err != nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusBadGateway,
			Code:       utils.ErrCodeExternalServiceFailure,
			Message:    "Failed to sign upload URL",
			Err:        err,
		}
	}

	return &dtos.ResidentUploadResponse{
		ObjectName: object,
		UploadURL:  url,
		StorageURL: fmt.Sprintf(constants.StoragePublicURLFormat, s.bucket, object),
		Method:     http.MethodPut,
		ExpiresIn:  int(s.expiry.Seconds()),
	}, nil
}
