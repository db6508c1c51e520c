package employee

import "context"

type EmployeeRepository interface {
	// List returns all records in insertion order.
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	// GetByIDs returns one entry per requested id, in request order, with
	// nil for ids that do not exist.
	GetByIDs(ctx context.Context, ids []string) ([]*Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
}
