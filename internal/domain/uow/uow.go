package uow

import (
	"context"

	"nbfc-underwriting/internal/domain/application"
	"nbfc-underwriting/internal/domain/audit"
)

type Repos struct {
	Applications application.Repository
	Audit        audit.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in.
	// One writer per application at a time.
	WithinApplicationTx(ctx context.Context, applicationID string, fn func(r Repos, a *application.Application) error) error
}
