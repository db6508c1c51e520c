package employee

type CreateEmployeeRequest struct {
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Class      string   `json:"class"`
	Subjects   []string `json:"subjects"`
	Attendance int      `json:"attendance"`
}

// UpdateEmployeeRequest is a partial overwrite: nil fields keep the stored
// value.
type UpdateEmployeeRequest struct {
	Name       *string   `json:"name,omitempty"`
	Age        *int      `json:"age,omitempty"`
	Class      *string   `json:"class,omitempty"`
	Subjects   *[]string `json:"subjects,omitempty"`
	Attendance *int      `json:"attendance,omitempty"`
}

// Filter criteria are ANDed together; nil fields impose no constraint.
type Filter struct {
	Class         *string
	MinAge        *int
	MaxAge        *int
	MinAttendance *int
	Name          *string
}

type SortField string

const (
	SortByName       SortField = "NAME"
	SortByAge        SortField = "AGE"
	SortByClass      SortField = "CLASS"
	SortByAttendance SortField = "ATTENDANCE"
)

type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

type Sort struct {
	Field SortField
	Order SortOrder
}

type ListEmployeesRequest struct {
	Filter   *Filter
	Sort     *Sort
	Page     int
	PageSize int
}

// Page is a derived projection of one result page; it is never stored.
type Page struct {
	Employees       []Employee `json:"employees"`
	TotalCount      int        `json:"total_count"`
	Page            int        `json:"page"`
	PageSize        int        `json:"page_size"`
	HasNextPage     bool       `json:"has_next_page"`
	HasPreviousPage bool       `json:"has_previous_page"`
}
