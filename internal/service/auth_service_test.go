package service_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"employee-api/internal/auth"
	"employee-api/internal/models"
	"employee-api/internal/repository"
	"employee-api/internal/service"
)

const (
	testSecret = "test-secret"
	testUserID = "0b6f7b52-5d7e-4f0e-9d38-6f2d7e1d4a10"
)

var passwordHash = sync.OnceValue(func() string {
	h, err := auth.HashPassword("p")
	if err != nil {
		panic(err)
	}
	return h
})

type authTestDeps struct {
	users   *MockUserRepo
	tokens  *auth.TokenService
	service *service.AuthService
}

func setupAuthTest(t *testing.T) *authTestDeps {
	users := &MockUserRepo{}
	tokens := auth.NewTokenService(testSecret, time.Hour)
	t.Cleanup(func() { users.AssertExpectations(t) })
	return &authTestDeps{users: users, tokens: tokens, service: service.NewAuthService(users, tokens)}
}

func mockUser(role string) *models.User {
	return &models.User{ID: testUserID, Username: "a", Email: "a@x.com", Role: role, CreatedAt: time.Now(), UpdatedAt: time.Now()}
}

func TestRegister_Success(t *testing.T) {
	d := setupAuthTest(t)
	d.users.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, "", nil)
	d.users.On("Create", mock.Anything, "a", "a@x.com", "admin",
		mock.MatchedBy(func(h string) bool { return auth.CheckPassword(h, "p") }),
	).Return(mockUser(models.RoleAdmin), nil)

	u, token, err := d.service.Register(context.Background(), service.RegisterInput{
		Username: " a ", Email: " A@X.com ", Password: "p", Role: "Admin",
	})
	require.NoError(t, err)
	assert.Equal(t, testUserID, u.ID)

	claims, err := d.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestRegister_EmailTaken(t *testing.T) {
	d := setupAuthTest(t)
	d.users.On("GetByEmail", mock.Anything, "a@x.com").Return(mockUser(models.RoleEmployee), "hash", nil)

	_, token, err := d.service.Register(context.Background(), service.RegisterInput{
		Username: "b", Email: "a@x.com", Password: "p", Role: "employee",
	})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
	assert.EqualError(t, err, "Email already registered")
	assert.Empty(t, token)
	d.users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_DuplicateOnInsert(t *testing.T) {
	d := setupAuthTest(t)
	d.users.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, "", nil)
	d.users.On("Create", mock.Anything, "a", "a@x.com", "employee", mock.Anything).Return(nil, repository.ErrDuplicate)

	_, _, err := d.service.Register(context.Background(), service.RegisterInput{
		Username: "a", Email: "a@x.com", Password: "p", Role: "employee",
	})
	assert.ErrorIs(t, err, service.ErrEmailTaken)
}

func TestRegister_InvalidInput(t *testing.T) {
	testCases := []struct {
		name string
		in   service.RegisterInput
	}{
		{"missing username", service.RegisterInput{Email: "a@x.com", Password: "p", Role: "admin"}},
		{"bad email", service.RegisterInput{Username: "a", Email: "not-an-email", Password: "p", Role: "admin"}},
		{"empty password", service.RegisterInput{Username: "a", Email: "a@x.com", Role: "admin"}},
		{"unknown role", service.RegisterInput{Username: "a", Email: "a@x.com", Password: "p", Role: "manager"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := setupAuthTest(t)
			_, _, err := d.service.Register(context.Background(), tc.in)
			assert.ErrorIs(t, err, service.ErrInvalidInput)

			var se *service.Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, "BAD_USER_INPUT", se.Code())
		})
	}
}

func TestRegister_PasswordTooLong(t *testing.T) {
	d := setupAuthTest(t)
	d.users.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, "", nil)

	_, _, err := d.service.Register(context.Background(), service.RegisterInput{
		Username: "a", Email: "a@x.com", Password: strings.Repeat("x", 100), Role: "admin",
	})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestRegister_DBError(t *testing.T) {
	d := setupAuthTest(t)
	d.users.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, "", errors.New("db error"))

	_, _, err := d.service.Register(context.Background(), service.RegisterInput{
		Username: "a", Email: "a@x.com", Password: "p", Role: "admin",
	})
	assert.ErrorContains(t, err, "db error")
	var se *service.Error
	assert.False(t, errors.As(err, &se), "store failures are not client errors")
}

func TestLogin(t *testing.T) {
	testCases := []struct {
		name      string
		email     string
		password  string
		mockSetup func(*MockUserRepo)
		wantErr   error
	}{
		{
			name:     "Successful login",
			email:    "A@x.com",
			password: "p",
			mockSetup: func(m *MockUserRepo) {
				m.On("GetByEmail", mock.Anything, "a@x.com").Return(mockUser(models.RoleEmployee), passwordHash(), nil)
			},
		},
		{
			name:     "Wrong password",
			email:    "a@x.com",
			password: "wrong",
			mockSetup: func(m *MockUserRepo) {
				m.On("GetByEmail", mock.Anything, "a@x.com").Return(mockUser(models.RoleEmployee), passwordHash(), nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
		{
			name:     "Unknown email",
			email:    "ghost@x.com",
			password: "p",
			mockSetup: func(m *MockUserRepo) {
				m.On("GetByEmail", mock.Anything, "ghost@x.com").Return(nil, "", nil)
			},
			wantErr: service.ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := setupAuthTest(t)
			tc.mockSetup(d.users)

			u, token, err := d.service.Login(context.Background(), tc.email, tc.password)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.EqualError(t, err, "Invalid credentials")
				assert.Nil(t, u)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			claims, err := d.tokens.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, u.ID, claims.UserID)
			assert.Equal(t, models.RoleEmployee, claims.Role)
		})
	}
}

func TestLogin_DBError(t *testing.T) {
	d := setupAuthTest(t)
	d.users.On("GetByEmail", mock.Anything, "a@x.com").Return(nil, "", errors.New("db error"))

	_, _, err := d.service.Login(context.Background(), "a@x.com", "p")
	assert.ErrorContains(t, err, "db error")
	assert.NotErrorIs(t, err, service.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	d := setupAuthTest(t)
	d.users.On("GetByID", mock.Anything, testUserID).Return(mockUser(models.RoleAdmin), nil)

	_, err := d.service.Me(context.Background(), nil)
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)

	u, err := d.service.Me(context.Background(), &auth.Identity{ID: testUserID, Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)
}

func TestMe_DeletedUser(t *testing.T) {
	d := setupAuthTest(t)
	d.users.On("GetByID", mock.Anything, testUserID).Return(nil, nil)

	u, err := d.service.Me(context.Background(), &auth.Identity{ID: testUserID, Role: models.RoleEmployee})
	assert.NoError(t, err)
	assert.Nil(t, u)
}
