package ports

import "context"

// DepartmentRepository maintains the set of department names.
type DepartmentRepository interface {
	// Add inserts a department; domain.ErrDepartmentExists on duplicates.
	Add(ctx context.Context, name string) error
	// Remove deletes a department. A name that is not present is a no-op.
	Remove(ctx context.Context, name string) error
	// List returns department names in insertion order.
	List(ctx context.Context) ([]string, error)
}
