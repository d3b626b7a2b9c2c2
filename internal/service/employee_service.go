package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"employee-api/internal/auth"
	"employee-api/internal/models"
	"employee-api/internal/repository"
)

// EmployeeService gates employee CRUD: reads need an identity, writes need
// the admin role. The identity is passed explicitly on every call.
type EmployeeService struct {
	repo     repository.EmployeeRepository
	maxLimit int
	validate *validator.Validate
}

// NewEmployeeService caps List page sizes at maxLimit; 0 leaves them unbounded.
func NewEmployeeService(repo repository.EmployeeRepository, maxLimit int) *EmployeeService {
	return &EmployeeService{repo: repo, maxLimit: maxLimit, validate: validator.New()}
}

func requireAdmin(id *auth.Identity, verb string) error {
	if !id.IsAdmin() {
		return onlyAdmin(verb)
	}
	return nil
}

func (s *EmployeeService) List(ctx context.Context, id *auth.Identity, q repository.EmployeeQuery) (out []models.Employee, err error) {
	ctx, span := startSpan(ctx, "employees", id)
	defer func() { endSpan(span, err) }()

	if id == nil {
		return nil, ErrNotAuthenticated
	}
	q = q.Normalize()
	if s.maxLimit > 0 && q.Limit > s.maxLimit {
		q.Limit = s.maxLimit
	}
	out, err = s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return out, nil
}

func (s *EmployeeService) Get(ctx context.Context, id *auth.Identity, employeeID string) (e *models.Employee, err error) {
	ctx, span := startSpan(ctx, "employee", id)
	defer func() { endSpan(span, err) }()

	if id == nil {
		return nil, ErrNotAuthenticated
	}
	e, err = s.repo.Get(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (s *EmployeeService) Add(ctx context.Context, id *auth.Identity, in models.EmployeeInput) (e *models.Employee, err error) {
	ctx, span := startSpan(ctx, "addEmployee", id)
	defer func() { endSpan(span, err) }()

	if err := requireAdmin(id, "add"); err != nil {
		return nil, err
	}
	in.Name = strings.TrimSpace(in.Name)
	if err := s.validate.Struct(in); err != nil {
		return nil, invalidInput(err)
	}
	e, err = s.repo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create employee: %w", err)
	}
	return e, nil
}

// Update applies a partial update and returns the new record, or nil when
// no employee has that id.
func (s *EmployeeService) Update(ctx context.Context, id *auth.Identity, employeeID string, p models.EmployeePatch) (e *models.Employee, err error) {
	ctx, span := startSpan(ctx, "updateEmployee", id)
	defer func() { endSpan(span, err) }()

	if err := requireAdmin(id, "update"); err != nil {
		return nil, err
	}
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		p.Name = &name
	}
	if err := s.validate.Struct(p); err != nil {
		return nil, invalidInput(err)
	}
	e, err = s.repo.Update(ctx, employeeID, p)
	if err != nil {
		return nil, fmt.Errorf("update employee: %w", err)
	}
	return e, nil
}

// Delete reports false, not an error, when no employee has that id.
func (s *EmployeeService) Delete(ctx context.Context, id *auth.Identity, employeeID string) (ok bool, err error) {
	ctx, span := startSpan(ctx, "deleteEmployee", id)
	defer func() { endSpan(span, err) }()

	if err := requireAdmin(id, "delete"); err != nil {
		return false, err
	}
	ok, err = s.repo.Delete(ctx, employeeID)
	if err != nil {
		return false, fmt.Errorf("delete employee: %w", err)
	}
	return ok, nil
}
