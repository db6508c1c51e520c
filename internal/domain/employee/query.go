package employee

import (
	"sort"
	"strings"
)

// The list pipeline is always applied as filter, then sort, then paginate.
// Each stage is pure and leaves its input untouched.

// ApplyFilter keeps the records matching every provided criterion, in their
// original relative order. A nil filter or nil field imposes no constraint.
func ApplyFilter(employees []Employee, filter *Filter) []Employee {
	if filter == nil {
		return employees
	}

	result := make([]Employee, 0, len(employees))
	for _, emp := range employees {
		if filter.Class != nil && emp.Class != *filter.Class {
			continue
		}
		if filter.MinAge != nil && emp.Age < *filter.MinAge {
			continue
		}
		if filter.MaxAge != nil && emp.Age > *filter.MaxAge {
			continue
		}
		if filter.MinAttendance != nil && emp.Attendance < *filter.MinAttendance {
			continue
		}
		if filter.Name != nil && !strings.Contains(strings.ToLower(emp.Name), strings.ToLower(*filter.Name)) {
			continue
		}
		result = append(result, emp)
	}
	return result
}

// ApplySort returns a stably sorted copy: equal keys keep their relative
// input order. Text fields compare case-insensitively. A nil sort returns
// the input as-is.
func ApplySort(employees []Employee, s *Sort) []Employee {
	if s == nil {
		return employees
	}

	sorted := make([]Employee, len(employees))
	copy(sorted, employees)

	less := func(a, b Employee) bool {
		switch s.Field {
		case SortByName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortByAge:
			return a.Age < b.Age
		case SortByClass:
			return strings.ToLower(a.Class) < strings.ToLower(b.Class)
		case SortByAttendance:
			return a.Attendance < b.Attendance
		}
		return false
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if s.Order == SortDesc {
			return less(sorted[j], sorted[i])
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// Paginate slices out the 1-indexed page [(page-1)*pageSize, page*pageSize),
// clipped to the available length. Pages below 1 clamp to 1 and negative
// page sizes to 0; a zero page size yields an empty page.
func Paginate(employees []Employee, page, pageSize int) Page {
	if page < 1 {
		page = 1
	}
	if pageSize < 0 {
		pageSize = 0
	}

	totalCount := len(employees)
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalCount {
		start = totalCount
	}
	if end > totalCount {
		end = totalCount
	}

	items := make([]Employee, end-start)
	copy(items, employees[start:end])

	return Page{
		Employees:       items,
		TotalCount:      totalCount,
		Page:            page,
		PageSize:        pageSize,
		HasNextPage:     page*pageSize < totalCount,
		HasPreviousPage: page > 1,
	}
}
