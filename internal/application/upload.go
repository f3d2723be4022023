package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/dasomcenter/dasom-api/internal/config"
	"github.com/dasomcenter/dasom-api/internal/domain/formspec"
	"github.com/dasomcenter/dasom-api/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrFieldNotUploadable = errors.New("field does not accept file uploads")
	ErrUploadFailed       = errors.New("upload failed")
)

// ObjectStore is the slice of pkg/storage the upload flow needs.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error
	PresignedGet(ctx context.Context, key, downloadName string, expiry time.Duration) (string, error)
}

type UploadService struct {
	Repos *repository.Repos
	Store ObjectStore
}

func NewUploadService(repos *repository.Repos, store ObjectStore) *UploadService {
	return &UploadService{Repos: repos, Store: store}
}

// Upload stores one applicant file for a program's upload field. The field's
// extension and size constraints are checked on metadata before any bytes
// reach storage.
func (s *UploadService) Upload(ctx context.Context, programID uint, fieldID, filename, contentType string, r io.Reader, size int64) (formspec.FileReference, error) {
	spec, err := s.formSpec(programID)
	if err != nil {
		return formspec.FileReference{}, err
	}
	field, ok := spec.Field(fieldID)
	if !ok {
		return formspec.FileReference{}, formspec.ErrFieldNotFound
	}
	if field.Type != formspec.FieldFileUpload {
		return formspec.FileReference{}, ErrFieldNotUploadable
	}
	if ferr := formspec.CheckFile(field, filename, size); ferr != nil {
		return formspec.FileReference{}, &formspec.ValidationError{Fields: []formspec.FieldError{*ferr}}
	}

	key := fmt.Sprintf("uploads/%d/%s/%s%s", programID, fieldID, uuid.NewString(), path.Ext(filename))
	if err := s.Store.Put(ctx, key, contentType, r, size); err != nil {
		return formspec.FileReference{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	expiry := time.Duration(config.UploadURLExpiryMinutes) * time.Minute
	url, err := s.Store.PresignedGet(ctx, key, filename, expiry)
	if err != nil {
		return formspec.FileReference{}, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}

	return formspec.FileReference{
		Key:         key,
		Name:        filename,
		Size:        size,
		ContentType: contentType,
		URL:         url,
	}, nil
}

// DownloadURL re-signs a stored object key for staff reviewing answers.
func (s *UploadService) DownloadURL(ctx context.Context, key, name string) (string, error) {
	expiry := time.Duration(config.UploadURLExpiryMinutes) * time.Minute
	return s.Store.PresignedGet(ctx, key, name, expiry)
}

func (s *UploadService) formSpec(programID uint) (formspec.FormSpec, error) {
	rec, err := s.Repos.Form.GetFormByProgramID(programID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return emptyForm(programID), nil
	}
	if err != nil {
		return formspec.FormSpec{}, err
	}
	return rec.Spec()
}
