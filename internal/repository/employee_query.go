package repository

import "strings"

const (
	DefaultPage   = 1
	DefaultLimit  = 10
	DefaultSortBy = "name"
)

// sortable maps API sort keys to employee columns.
var sortable = map[string]string{
	"name":       "name",
	"age":        "age",
	"class":      "class",
	"attendance": "attendance",
	"createdAt":  "created_at",
	"updatedAt":  "updated_at",
}

type EmployeeQuery struct {
	Page   int
	Limit  int
	SortBy string // field name, "-" prefix for descending
}

// Normalize fills defaults: page < 1 becomes 1, limit < 1 becomes
// DefaultLimit, and an unknown sort key becomes DefaultSortBy.
func (q EmployeeQuery) Normalize() EmployeeQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	key, desc := q.Sort()
	if desc {
		q.SortBy = "-" + key
	} else {
		q.SortBy = key
	}
	return q
}

func (q EmployeeQuery) Offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

// Sort returns the validated sort key and direction.
func (q EmployeeQuery) Sort() (key string, desc bool) {
	key = strings.TrimSpace(q.SortBy)
	if strings.HasPrefix(key, "-") {
		desc = true
		key = key[1:]
	}
	if _, ok := sortable[key]; !ok {
		return DefaultSortBy, false
	}
	return key, desc
}

// SortColumn returns the column for the validated sort key.
func (q EmployeeQuery) SortColumn() (col string, desc bool) {
	key, desc := q.Sort()
	return sortable[key], desc
}
