package impl

import (
	"context"
	"strings"
	"testing"

	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
	mockSvc "flora/internal/mocks/service"
	"flora/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMediaService(t *testing.T) (usecase.MediaUsecase, *mockSvc.MockFileStorage) {
	mockStorage := mockSvc.NewMockFileStorage(t)
	service := NewMediaService(MediaServiceParams{
		Storage: mockStorage,
		Logger:  newDiscardLogger(),
	})

	return service, mockStorage
}

func TestMediaService_Upload_Success(t *testing.T) {
	service, mockStorage := newMediaService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)
	content := strings.NewReader("jpeg bytes")

	mockStorage.EXPECT().
		Upload(ctx, "leaf.jpg", "image/jpeg", content).
		Return("https://media.example.com/abc.jpg", nil)

	url, err := service.Upload(ctx, "leaf.jpg", "image/jpeg", content)
	require.NoError(t, err)
	assert.Equal(t, "https://media.example.com/abc.jpg", url)
}

func TestMediaService_Upload_Unauthenticated(t *testing.T) {
	service, _ := newMediaService(t)

	_, err := service.Upload(context.Background(), "leaf.jpg", "image/jpeg", strings.NewReader(""))
	require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestMediaService_Upload_BlankFilename(t *testing.T) {
	service, _ := newMediaService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)

	_, err := service.Upload(ctx, "   ", "image/jpeg", strings.NewReader(""))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestMediaService_Upload_StorageFailure(t *testing.T) {
	service, mockStorage := newMediaService(t)
	ctx := ctxWithPrincipal(5, entity.RoleGrower)
	content := strings.NewReader("jpeg bytes")

	mockStorage.EXPECT().
		Upload(ctx, "leaf.jpg", "image/jpeg", content).
		Return("", errors.New("bucket unavailable"))

	_, err := service.Upload(ctx, "leaf.jpg", "image/jpeg", content)
	require.ErrorIs(t, err, domainerrors.ErrInternalError)
}
