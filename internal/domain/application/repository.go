package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByApplicationID(ctx context.Context, applicationID string) (*Application, error)
	// GetByApplicationIDForUpdate locks the row for the current transaction.
	GetByApplicationIDForUpdate(ctx context.Context, applicationID string) (*Application, error)
	GetDraftByMobile(ctx context.Context, mobileNumber string) (*Application, error)
	List(ctx context.Context) ([]Application, error)
	Save(ctx context.Context, a *Application) error
}
