package ports

import (
	"context"

	"github.com/ahams/appointment-register/internal/core/domain"
)

// AuditRepository is the append-only mutation log.
type AuditRepository interface {
	Append(ctx context.Context, entry domain.AuditEntry) error
	// List returns entries in chronological order.
	List(ctx context.Context) ([]domain.AuditEntry, error)
}
