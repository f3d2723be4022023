package application

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dasomcenter/dasom-api/internal/domain/formspec"
	"github.com/dasomcenter/dasom-api/internal/repository"
	"github.com/dasomcenter/dasom-api/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	putKeys []string
	putSize int64
	failPut bool
}

func (f *fakeStore) Put(ctx context.Context, key, contentType string, r io.Reader, size int64) error {
	if f.failPut {
		return io.ErrClosedPipe
	}
	f.putKeys = append(f.putKeys, key)
	f.putSize = size
	return nil
}

func (f *fakeStore) PresignedGet(ctx context.Context, key, downloadName string, expiry time.Duration) (string, error) {
	return "https://storage.local/" + key, nil
}

func setupUploadServiceMocks(t *testing.T) (*UploadService, *mock.MockFormRepo, *fakeStore) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockForm := mock.NewMockFormRepo(ctrl)
	store := &fakeStore{}
	repos := &repository.Repos{Form: mockForm}
	return NewUploadService(repos, store), mockForm, store
}

func TestUpload_ChecksConstraintsBeforeStorage(t *testing.T) {
	svc, mockForm, store := setupUploadServiceMocks(t)

	size := int64(1000)
	fields := []formspec.FieldSpec{
		{
			ID:    "f-file",
			Label: "Portfolio",
			Type:  formspec.FieldFileUpload,
			Order: 0,
			Validation: formspec.Validation{
				AllowedExtensions: []string{"pdf"},
				MaxFileSize:       &size,
			},
		},
	}
	rec := storedFormRecord(t, 1, "Application", fields)
	mockForm.EXPECT().GetFormByProgramID(uint(1)).Return(rec, nil)

	_, err := svc.Upload(context.Background(), 1, "f-file", "resume.docx", "application/msword", strings.NewReader("x"), 100)
	var verr *formspec.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, formspec.RuleExtension, verr.Fields[0].Rule)
	assert.Empty(t, store.putKeys, "nothing may reach storage on a failed check")
}

func TestUpload_Success(t *testing.T) {
	svc, mockForm, store := setupUploadServiceMocks(t)

	fields := []formspec.FieldSpec{
		{ID: "f-file", Label: "Portfolio", Type: formspec.FieldFileUpload, Order: 0},
	}
	rec := storedFormRecord(t, 1, "Application", fields)
	mockForm.EXPECT().GetFormByProgramID(uint(1)).Return(rec, nil)

	ref, err := svc.Upload(context.Background(), 1, "f-file", "resume.pdf", "application/pdf", strings.NewReader("content"), 7)
	require.NoError(t, err)

	require.Len(t, store.putKeys, 1)
	assert.Equal(t, store.putKeys[0], ref.Key)
	assert.True(t, strings.HasPrefix(ref.Key, "uploads/1/f-file/"))
	assert.True(t, strings.HasSuffix(ref.Key, ".pdf"))
	assert.Equal(t, "resume.pdf", ref.Name)
	assert.Equal(t, int64(7), ref.Size)
	assert.Equal(t, "https://storage.local/"+ref.Key, ref.URL)
}

func TestUpload_NonUploadField(t *testing.T) {
	svc, mockForm, _ := setupUploadServiceMocks(t)

	fields := []formspec.FieldSpec{
		{ID: "f-text", Label: "Name", Type: formspec.FieldShortText, Order: 0},
	}
	rec := storedFormRecord(t, 1, "Application", fields)
	mockForm.EXPECT().GetFormByProgramID(uint(1)).Return(rec, nil)

	_, err := svc.Upload(context.Background(), 1, "f-text", "a.pdf", "application/pdf", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, ErrFieldNotUploadable)
}

func TestUpload_StorageFailureWrapped(t *testing.T) {
	svc, mockForm, store := setupUploadServiceMocks(t)
	store.failPut = true

	fields := []formspec.FieldSpec{
		{ID: "f-file", Label: "Portfolio", Type: formspec.FieldFileUpload, Order: 0},
	}
	rec := storedFormRecord(t, 1, "Application", fields)
	mockForm.EXPECT().GetFormByProgramID(uint(1)).Return(rec, nil)

	_, err := svc.Upload(context.Background(), 1, "f-file", "a.pdf", "application/pdf", strings.NewReader("x"), 1)
	assert.ErrorIs(t, err, ErrUploadFailed)
}
