package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"

	deliverycontext "flora/internal/delivery/context"
	domainerrors "flora/internal/domain/errors"
	"flora/internal/domain/service"
	"flora/internal/usecase"

	"go.uber.org/fx"
)

// mediaService implements the MediaUsecase interface on top of blob storage.
type mediaService struct {
	storage service.FileStorage
	logger  *slog.Logger
}

// MediaServiceParams holds dependencies for mediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Storage service.FileStorage
	Logger  *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	return &mediaService{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores one file and returns its public URL.
func (srv *mediaService) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	p, err := principalFromContext(ctx)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(filename) == "" {
		return "", domainerrors.ErrValidationFailed.WithDetails("filename is required")
	}

	url, err := srv.storage.Upload(ctx, filename, contentType, content)
	if err != nil {
		srv.log(ctx).Error("Media upload failed",
			slog.Int64("userId", p.UserID),
			slog.String("error", err.Error()),
		)

		return "", domainerrors.ErrInternalError
	}

	srv.log(ctx).Info("Media uploaded",
		slog.Int64("userId", p.UserID),
		slog.String("url", url),
	)

	return url, nil
}
