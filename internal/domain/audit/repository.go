package audit

import "context"

// Repository is append-only by contract: there is no update or delete.
type Repository interface {
	Append(ctx context.Context, e *Entry) error
	// ListByApplicationID returns entries for one application, newest first.
	ListByApplicationID(ctx context.Context, applicationID string) ([]Entry, error)
	// ListAll returns the full trail, newest first.
	ListAll(ctx context.Context) ([]Entry, error)
}
