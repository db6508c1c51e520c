package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/empdash/empdash-backend-go/internal/domain/employee"
)

// EmployeeRepository is the in-memory record store. Records live for the
// process lifetime; ids come from a monotonic counter owned by the store,
// never from the current length.
type EmployeeRepository struct {
	mu        sync.RWMutex
	employees []employee.Employee
	nextID    int64
}

func NewEmployeeRepository(seed []employee.Employee) *EmployeeRepository {
	repo := &EmployeeRepository{
		employees: make([]employee.Employee, len(seed)),
		nextID:    1,
	}
	copy(repo.employees, seed)
	for _, emp := range seed {
		if n, err := strconv.ParseInt(emp.ID, 10, 64); err == nil && n >= repo.nextID {
			repo.nextID = n + 1
		}
	}
	return repo
}

func (r *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]employee.Employee, len(r.employees))
	copy(result, r.employees)
	return result, nil
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, emp := range r.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *EmployeeRepository) GetByIDs(ctx context.Context, ids []string) ([]*employee.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*employee.Employee, len(ids))
	for i, id := range ids {
		for _, emp := range r.employees {
			if emp.ID == id {
				found := emp
				result[i] = &found
				break
			}
		}
	}
	return result, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	newEmployee := employee.Employee{
		ID:         strconv.FormatInt(r.nextID, 10),
		Name:       req.Name,
		Age:        req.Age,
		Class:      req.Class,
		Subjects:   req.Subjects,
		Attendance: req.Attendance,
	}
	r.nextID++
	r.employees = append(r.employees, newEmployee)
	return newEmployee, nil
}

// Update shallow-merges the provided fields over the stored record.
func (r *EmployeeRepository) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.employees {
		if r.employees[i].ID != id {
			continue
		}
		if req.Name != nil {
			r.employees[i].Name = *req.Name
		}
		if req.Age != nil {
			r.employees[i].Age = *req.Age
		}
		if req.Class != nil {
			r.employees[i].Class = *req.Class
		}
		if req.Subjects != nil {
			r.employees[i].Subjects = *req.Subjects
		}
		if req.Attendance != nil {
			r.employees[i].Attendance = *req.Attendance
		}
		return r.employees[i], nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
