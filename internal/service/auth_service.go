package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"employee-api/internal/auth"
	"employee-api/internal/models"
	"employee-api/internal/repository"
)

type RegisterInput struct {
	Username string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
	Role     string `validate:"required,oneof=admin employee"`
}

type AuthService struct {
	users    repository.UserRepository
	tokens   *auth.TokenService
	validate *validator.Validate
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens, validate: validator.New()}
}

// dummyHash keeps a login for an unknown email as slow as a wrong password.
var dummyHash = sync.OnceValue(func() string {
	h, _ := auth.HashPassword("not-a-real-password")
	return h
})

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the user and returns it with a freshly issued token.
func (a *AuthService) Register(ctx context.Context, in RegisterInput) (u *models.User, token string, err error) {
	ctx, span := startSpan(ctx, "registerUser", nil)
	defer func() { endSpan(span, err) }()

	in.Username = strings.TrimSpace(in.Username)
	in.Email = normalizeEmail(in.Email)
	in.Role = strings.ToLower(strings.TrimSpace(in.Role))
	if err := a.validate.Struct(in); err != nil {
		return nil, "", invalidInput(err)
	}

	existing, _, err := a.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, "", &Error{Kind: KindInvalidInput, Message: "invalid input: password must be at most 72 bytes"}
		}
		return nil, "", fmt.Errorf("hash password: %w", err)
	}
	u, err = a.users.Create(ctx, in.Username, in.Email, in.Role, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err = a.tokens.Issue(u)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return u, token, nil
}

// Login reports an unknown email and a wrong password with the same error.
func (a *AuthService) Login(ctx context.Context, email, password string) (u *models.User, token string, err error) {
	ctx, span := startSpan(ctx, "loginUser", nil)
	defer func() { endSpan(span, err) }()

	u, hash, err := a.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, "", fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		auth.CheckPassword(dummyHash(), password)
		return nil, "", ErrInvalidCredentials
	}
	if !auth.CheckPassword(hash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err = a.tokens.Issue(u)
	if err != nil {
		return nil, "", fmt.Errorf("issue token: %w", err)
	}
	return u, token, nil
}

// Me returns the caller's own record, or nil if it no longer exists.
func (a *AuthService) Me(ctx context.Context, id *auth.Identity) (u *models.User, err error) {
	ctx, span := startSpan(ctx, "me", id)
	defer func() { endSpan(span, err) }()

	if id == nil {
		return nil, ErrNotAuthenticated
	}
	u, err = a.users.GetByID(ctx, id.ID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}
