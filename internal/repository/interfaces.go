package repository

import (
	"context"
	"errors"

	"employee-api/internal/models"
)

// ErrDuplicate is returned by UserRepository.Create when the email is taken.
var ErrDuplicate = errors.New("duplicate record")

type UserRepository interface {
	Create(ctx context.Context, username, email, role, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, string /*passwordHash*/, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// EmployeeRepository reports a missing record as (nil, nil) or false, never as an error.
type EmployeeRepository interface {
	List(ctx context.Context, q EmployeeQuery) ([]models.Employee, error)
	Get(ctx context.Context, id string) (*models.Employee, error)
	Create(ctx context.Context, in models.EmployeeInput) (*models.Employee, error)
	Update(ctx context.Context, id string, p models.EmployeePatch) (*models.Employee, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Pinger is implemented by stores that can report their own health.
type Pinger interface {
	Ping(ctx context.Context) error
}
