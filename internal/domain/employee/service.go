package employee

import "context"

// Service exposes the access-neutral employee operations; role checks happen
// at the resolver layer, on top of this interface.
type Service interface {
	List(ctx context.Context, req ListEmployeesRequest) (Page, error)
	Get(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (Employee, error)
}
