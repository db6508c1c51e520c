package graphql

import "github.com/empdash/empdash-backend-go/internal/domain/employee"

type employeeInput struct {
	Name       string
	Age        int32
	Class      string
	Subjects   []string
	Attendance int32
}

type employeeUpdateInput struct {
	Name       *string
	Age        *int32
	Class      *string
	Subjects   *[]string
	Attendance *int32
}

type employeeFilterInput struct {
	Class         *string
	MinAge        *int32
	MaxAge        *int32
	MinAttendance *int32
	Name          *string
}

type sortInput struct {
	Field string
	Order string
}

func (in employeeInput) toRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:       in.Name,
		Age:        int(in.Age),
		Class:      in.Class,
		Subjects:   in.Subjects,
		Attendance: int(in.Attendance),
	}
}

func (in employeeUpdateInput) toRequest() employee.UpdateEmployeeRequest {
	return employee.UpdateEmployeeRequest{
		Name:       in.Name,
		Age:        intPtr(in.Age),
		Class:      in.Class,
		Subjects:   in.Subjects,
		Attendance: intPtr(in.Attendance),
	}
}

func (in *employeeFilterInput) toFilter() *employee.Filter {
	if in == nil {
		return nil
	}
	return &employee.Filter{
		Class:         in.Class,
		MinAge:        intPtr(in.MinAge),
		MaxAge:        intPtr(in.MaxAge),
		MinAttendance: intPtr(in.MinAttendance),
		Name:          in.Name,
	}
}

func (in *sortInput) toSort() *employee.Sort {
	if in == nil {
		return nil
	}
	return &employee.Sort{
		Field: employee.SortField(in.Field),
		Order: employee.SortOrder(in.Order),
	}
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
