// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	deliverycontext "flora/internal/delivery/context"
	"flora/internal/domain/entity"
	domainerrors "flora/internal/domain/errors"
)

// principalFromContext returns the authenticated principal or the
// unauthenticated error. Every protected operation starts here.
func principalFromContext(ctx context.Context) (*entity.Principal, error) {
	p := deliverycontext.GetPrincipal(ctx)
	if p == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	return p, nil
}

// isPrivilegedReader reports whether the principal reads past ownership.
func isPrivilegedReader(p *entity.Principal) bool {
	return p.IsAdmin()
}
