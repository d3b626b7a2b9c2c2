package models

import "time"

type Employee struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Class      *string   `json:"class"`
	Subjects   []string  `json:"subjects"`
	Attendance *float64  `json:"attendance"` // percentage
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// EmployeeInput carries the fields of a new employee record.
type EmployeeInput struct {
	Name       string   `validate:"required"`
	Age        int      `validate:"gte=0"`
	Attendance *float64 `validate:"omitempty,gte=0,lte=100"`
	Class      *string
	Subjects   []string
}

// EmployeePatch is a partial update; a nil field is left unchanged.
type EmployeePatch struct {
	Name       *string  `validate:"omitempty,min=1"`
	Age        *int     `validate:"omitempty,gte=0"`
	Attendance *float64 `validate:"omitempty,gte=0,lte=100"`
	Class      *string
	Subjects   *[]string
}

// Empty reports whether the patch changes nothing.
func (p EmployeePatch) Empty() bool {
	return p.Name == nil && p.Age == nil && p.Class == nil && p.Subjects == nil && p.Attendance == nil
}

// Apply copies the set fields of p onto e.
func (p EmployeePatch) Apply(e *Employee) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Age != nil {
		e.Age = *p.Age
	}
	if p.Class != nil {
		c := *p.Class
		e.Class = &c
	}
	if p.Subjects != nil {
		e.Subjects = append([]string(nil), (*p.Subjects)...)
	}
	if p.Attendance != nil {
		a := *p.Attendance
		e.Attendance = &a
	}
}
