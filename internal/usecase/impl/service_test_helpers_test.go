package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "flora/internal/delivery/context"
	"flora/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ctxWithPrincipal(userID int64, role entity.Role) context.Context {
	return deliverycontext.WithPrincipal(context.Background(), &entity.Principal{
		UserID:   userID,
		Username: "tester",
		Role:     role,
	})
}
