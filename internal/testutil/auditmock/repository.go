package auditmock

import (
	"context"

	"nbfc-underwriting/internal/domain/audit"
)

var _ audit.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies audit.Repository. The
// zero value accepts appends and records them in Entries.
type Repo struct {
	AppendFn              func(ctx context.Context, e *audit.Entry) error
	ListByApplicationIDFn func(ctx context.Context, applicationID string) ([]audit.Entry, error)
	ListAllFn             func(ctx context.Context) ([]audit.Entry, error)

	Entries []audit.Entry
}

func (m *Repo) Append(ctx context.Context, e *audit.Entry) error {
	if m.AppendFn != nil {
		return m.AppendFn(ctx, e)
	}
	m.Entries = append(m.Entries, *e)
	return nil
}

func (m *Repo) ListByApplicationID(ctx context.Context, applicationID string) ([]audit.Entry, error) {
	if m.ListByApplicationIDFn != nil {
		return m.ListByApplicationIDFn(ctx, applicationID)
	}
	var out []audit.Entry
	for i := len(m.Entries) - 1; i >= 0; i-- {
		if m.Entries[i].ApplicationID == applicationID {
			out = append(out, m.Entries[i])
		}
	}
	return out, nil
}

func (m *Repo) ListAll(ctx context.Context) ([]audit.Entry, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	out := make([]audit.Entry, 0, len(m.Entries))
	for i := len(m.Entries) - 1; i >= 0; i-- {
		out = append(out, m.Entries[i])
	}
	return out, nil
}
