package employee

import (
	"context"
	"fmt"

	"github.com/empdash/empdash-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepository employee.EmployeeRepository
}

func NewEmployeeService(employeeRepository employee.EmployeeRepository) employee.Service {
	return &EmployeeServiceImpl{
		employeeRepository: employeeRepository,
	}
}

// List implements employee.Service. The pipeline order is fixed: filter,
// then sort, then paginate.
func (s *EmployeeServiceImpl) List(ctx context.Context, req employee.ListEmployeesRequest) (employee.Page, error) {
	all, err := s.employeeRepository.List(ctx)
	if err != nil {
		return employee.Page{}, fmt.Errorf("failed to list employees: %w", err)
	}

	filtered := employee.ApplyFilter(all, req.Filter)
	sorted := employee.ApplySort(filtered, req.Sort)
	return employee.Paginate(sorted, req.Page, req.PageSize), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepository.GetByID(ctx, id)
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	created, err := s.employeeRepository.Create(ctx, req)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return s.employeeRepository.Update(ctx, id, req)
}
