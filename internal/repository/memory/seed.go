package memory

import "github.com/empdash/empdash-backend-go/internal/domain/employee"

// SeedEmployees returns the dataset loaded at process start.
func SeedEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: "1", Name: "John Doe", Age: 28, Class: "Engineering", Subjects: []string{"Mathematics", "Physics", "Computer Science"}, Attendance: 95},
		{ID: "2", Name: "Jane Smith", Age: 32, Class: "Management", Subjects: []string{"Business", "Economics", "Leadership"}, Attendance: 88},
		{ID: "3", Name: "Mike Johnson", Age: 25, Class: "Engineering", Subjects: []string{"Mathematics", "Physics", "Chemistry"}, Attendance: 92},
		{ID: "4", Name: "Sarah Williams", Age: 30, Class: "Design", Subjects: []string{"Design Principles", "UI/UX", "Typography"}, Attendance: 90},
		{ID: "5", Name: "David Brown", Age: 27, Class: "Engineering", Subjects: []string{"Mathematics", "Algorithms", "Data Structures"}, Attendance: 94},
		{ID: "6", Name: "Emily Davis", Age: 29, Class: "Management", Subjects: []string{"Business", "Marketing", "Finance"}, Attendance: 87},
		{ID: "7", Name: "Chris Wilson", Age: 26, Class: "Engineering", Subjects: []string{"Mathematics", "Physics", "Software Engineering"}, Attendance: 96},
		{ID: "8", Name: "Lisa Anderson", Age: 31, Class: "Design", Subjects: []string{"Design Principles", "Color Theory", "Illustration"}, Attendance: 91},
		{ID: "9", Name: "Robert Taylor", Age: 33, Class: "Management", Subjects: []string{"Business", "Strategy", "Operations"}, Attendance: 89},
		{ID: "10", Name: "Amanda Martinez", Age: 24, Class: "Engineering", Subjects: []string{"Mathematics", "Physics", "Machine Learning"}, Attendance: 93},
	}
}

// SeedUser describes one account created at process start.
type SeedUser struct {
	ID       string
	Username string
	Password string
	Role     string
}

func SeedUsers() []SeedUser {
	return []SeedUser{
		{ID: "1", Username: "admin", Password: "admin123", Role: "ADMIN"},
		{ID: "2", Username: "employee", Password: "emp123", Role: "EMPLOYEE"},
	}
}
