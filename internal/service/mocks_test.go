package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"employee-api/internal/models"
	"employee-api/internal/repository"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, username, email, role, passwordHash string) (*models.User, error) {
	args := m.Called(ctx, username, email, role, passwordHash)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, string, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.String(1), args.Error(2)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

type MockEmployeeRepo struct {
	mock.Mock
}

func (m *MockEmployeeRepo) List(ctx context.Context, q repository.EmployeeQuery) ([]models.Employee, error) {
	args := m.Called(ctx, q)
	out, _ := args.Get(0).([]models.Employee)
	return out, args.Error(1)
}

func (m *MockEmployeeRepo) Get(ctx context.Context, id string) (*models.Employee, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(*models.Employee)
	return e, args.Error(1)
}

func (m *MockEmployeeRepo) Create(ctx context.Context, in models.EmployeeInput) (*models.Employee, error) {
	args := m.Called(ctx, in)
	e, _ := args.Get(0).(*models.Employee)
	return e, args.Error(1)
}

func (m *MockEmployeeRepo) Update(ctx context.Context, id string, p models.EmployeePatch) (*models.Employee, error) {
	args := m.Called(ctx, id, p)
	e, _ := args.Get(0).(*models.Employee)
	return e, args.Error(1)
}

func (m *MockEmployeeRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
