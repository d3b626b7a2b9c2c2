package graph

import (
	"context"
	"errors"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/rs/zerolog"

	"employee-api/internal/auth"
	"employee-api/internal/models"
	"employee-api/internal/repository"
	"employee-api/internal/service"
)

// Resolver binds the schema's fields to the services. The caller identity
// is read from the request context and handed to every service call.
type Resolver struct {
	Auth      *service.AuthService
	Employees *service.EmployeeService
}

// gqlError carries the error code into the response's extensions.
type gqlError struct {
	msg  string
	code string
}

func (e *gqlError) Error() string { return e.msg }

func (e *gqlError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.code}
}

// fail hides anything that is not a service.Error behind a generic message
// and logs the cause.
func fail(ctx context.Context, op string, err error) error {
	var se *service.Error
	if errors.As(err, &se) {
		return &gqlError{msg: se.Message, code: se.Code()}
	}
	zerolog.Ctx(ctx).Error().Err(err).Str("op", op).Msg("resolver failed")
	return &gqlError{msg: "internal server error", code: "INTERNAL_SERVER_ERROR"}
}

func (r *Resolver) me(p graphql.ResolveParams) (interface{}, error) {
	u, err := r.Auth.Me(p.Context, auth.FromContext(p.Context))
	if err != nil {
		return nil, fail(p.Context, "me", err)
	}
	if u == nil {
		return nil, nil
	}
	return userMap(u, ""), nil
}

func (r *Resolver) employees(p graphql.ResolveParams) (interface{}, error) {
	q := repository.EmployeeQuery{
		Page:   intArg(p.Args, "page", repository.DefaultPage),
		Limit:  intArg(p.Args, "limit", repository.DefaultLimit),
		SortBy: stringArg(p.Args, "sortBy", repository.DefaultSortBy),
	}
	list, err := r.Employees.List(p.Context, auth.FromContext(p.Context), q)
	if err != nil {
		return nil, fail(p.Context, "employees", err)
	}
	out := make([]interface{}, 0, len(list))
	for i := range list {
		out = append(out, employeeMap(&list[i]))
	}
	return out, nil
}

func (r *Resolver) employee(p graphql.ResolveParams) (interface{}, error) {
	e, err := r.Employees.Get(p.Context, auth.FromContext(p.Context), stringArg(p.Args, "id", ""))
	if err != nil {
		return nil, fail(p.Context, "employee", err)
	}
	if e == nil {
		return nil, nil
	}
	return employeeMap(e), nil
}

func (r *Resolver) registerUser(p graphql.ResolveParams) (interface{}, error) {
	in := service.RegisterInput{
		Username: stringArg(p.Args, "username", ""),
		Email:    stringArg(p.Args, "email", ""),
		Password: stringArg(p.Args, "password", ""),
		Role:     stringArg(p.Args, "role", ""),
	}
	u, token, err := r.Auth.Register(p.Context, in)
	if err != nil {
		return nil, fail(p.Context, "registerUser", err)
	}
	return userMap(u, token), nil
}

func (r *Resolver) loginUser(p graphql.ResolveParams) (interface{}, error) {
	u, token, err := r.Auth.Login(p.Context, stringArg(p.Args, "email", ""), stringArg(p.Args, "password", ""))
	if err != nil {
		return nil, fail(p.Context, "loginUser", err)
	}
	return userMap(u, token), nil
}

func (r *Resolver) addEmployee(p graphql.ResolveParams) (interface{}, error) {
	in := models.EmployeeInput{
		Name:       stringArg(p.Args, "name", ""),
		Age:        intArg(p.Args, "age", 0),
		Class:      optString(p.Args, "class"),
		Attendance: optFloat(p.Args, "attendance"),
	}
	if s := optStrings(p.Args, "subjects"); s != nil {
		in.Subjects = *s
	}
	e, err := r.Employees.Add(p.Context, auth.FromContext(p.Context), in)
	if err != nil {
		return nil, fail(p.Context, "addEmployee", err)
	}
	return employeeMap(e), nil
}

func (r *Resolver) updateEmployee(p graphql.ResolveParams) (interface{}, error) {
	patch := models.EmployeePatch{
		Name:       optString(p.Args, "name"),
		Age:        optInt(p.Args, "age"),
		Class:      optString(p.Args, "class"),
		Subjects:   optStrings(p.Args, "subjects"),
		Attendance: optFloat(p.Args, "attendance"),
	}
	e, err := r.Employees.Update(p.Context, auth.FromContext(p.Context), stringArg(p.Args, "id", ""), patch)
	if err != nil {
		return nil, fail(p.Context, "updateEmployee", err)
	}
	if e == nil {
		return nil, nil
	}
	return employeeMap(e), nil
}

func (r *Resolver) deleteEmployee(p graphql.ResolveParams) (interface{}, error) {
	ok, err := r.Employees.Delete(p.Context, auth.FromContext(p.Context), stringArg(p.Args, "id", ""))
	if err != nil {
		return nil, fail(p.Context, "deleteEmployee", err)
	}
	return ok, nil
}

func userMap(u *models.User, token string) map[string]interface{} {
	m := map[string]interface{}{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
		"role":     u.Role,
		"token":    nil,
	}
	if token != "" {
		m["token"] = token
	}
	return m
}

func employeeMap(e *models.Employee) map[string]interface{} {
	subjects := e.Subjects
	if subjects == nil {
		subjects = []string{}
	}
	m := map[string]interface{}{
		"id":         e.ID,
		"name":       e.Name,
		"age":        e.Age,
		"class":      nil,
		"subjects":   subjects,
		"attendance": nil,
		"createdAt":  e.CreatedAt.UTC().Format(time.RFC3339),
		"updatedAt":  e.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if e.Class != nil {
		m["class"] = *e.Class
	}
	if e.Attendance != nil {
		m["attendance"] = *e.Attendance
	}
	return m
}
