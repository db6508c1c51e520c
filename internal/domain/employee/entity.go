package employee

// Employee is an in-memory record. IDs are assigned by the store and stay
// stable for the process lifetime; Class is an open set of department labels.
type Employee struct {
	ID         string
	Name       string
	Age        int
	Class      string
	Subjects   []string
	Attendance int
}
