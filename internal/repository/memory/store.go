// Package memory is an in-process store for local runs and tests. It follows
// the postgres repositories: ASC sorts put nulls last, DESC puts them first,
// and ties break on id.
package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"employee-api/internal/models"
	"employee-api/internal/repository"
)

type userRecord struct {
	user models.User
	hash string
}

type Store struct {
	mu        sync.RWMutex
	users     map[string]userRecord
	byEmail   map[string]string
	employees map[string]models.Employee
	now       func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:     map[string]userRecord{},
		byEmail:   map[string]string{},
		employees: map[string]models.Employee{},
		now:       time.Now,
	}
}

func (s *Store) Ping(context.Context) error { return nil }

// Users returns the store as a repository.UserRepository.
func (s *Store) Users() repository.UserRepository { return userRepo{s} }

// Employees returns the store as a repository.EmployeeRepository.
func (s *Store) Employees() repository.EmployeeRepository { return employeeRepo{s} }

type userRepo struct{ s *Store }

func (r userRepo) Create(ctx context.Context, username, email, role, passwordHash string) (*models.User, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byEmail[email]; ok {
		return nil, repository.ErrDuplicate
	}
	now := s.now()
	u := models.User{
		ID: uuid.NewString(), Username: username, Email: email, Role: role,
		CreatedAt: now, UpdatedAt: now,
	}
	s.users[u.ID] = userRecord{user: u, hash: passwordHash}
	s.byEmail[email] = u.ID
	return &u, nil
}

func (r userRepo) GetByEmail(ctx context.Context, email string) (*models.User, string, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byEmail[email]
	if !ok {
		return nil, "", nil
	}
	rec := s.users[id]
	u := rec.user
	return &u, rec.hash, nil
}

func (r userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	u := rec.user
	return &u, nil
}

type employeeRepo struct{ s *Store }

func (r employeeRepo) List(ctx context.Context, q repository.EmployeeQuery) ([]models.Employee, error) {
	q = q.Normalize()
	key, desc := q.Sort()

	r.s.mu.RLock()
	all := make([]models.Employee, 0, len(r.s.employees))
	for _, e := range r.s.employees {
		all = append(all, clone(e))
	}
	r.s.mu.RUnlock()

	slices.SortFunc(all, func(a, b models.Employee) int {
		c := compareBy(key, a, b)
		if desc {
			c = -c
		}
		if c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	off := q.Offset()
	if off >= len(all) {
		return []models.Employee{}, nil
	}
	end := len(all)
	if q.Limit < end-off {
		end = off + q.Limit
	}
	return all[off:end], nil
}

func (r employeeRepo) Get(ctx context.Context, id string) (*models.Employee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.employees[id]
	if !ok {
		return nil, nil
	}
	e = clone(e)
	return &e, nil
}

func (r employeeRepo) Create(ctx context.Context, in models.EmployeeInput) (*models.Employee, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	e := models.Employee{
		ID:         uuid.NewString(),
		Name:       in.Name,
		Age:        in.Age,
		Class:      in.Class,
		Subjects:   in.Subjects,
		Attendance: in.Attendance,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	e = clone(e)
	s.employees[e.ID] = e
	out := clone(e)
	return &out, nil
}

func (r employeeRepo) Update(ctx context.Context, id string, p models.EmployeePatch) (*models.Employee, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.employees[id]
	if !ok {
		return nil, nil
	}
	if !p.Empty() {
		p.Apply(&e)
		if e.Subjects == nil {
			e.Subjects = []string{}
		}
		e.UpdatedAt = s.now()
		s.employees[id] = e
	}
	out := clone(e)
	return &out, nil
}

func (r employeeRepo) Delete(ctx context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.employees[id]; !ok {
		return false, nil
	}
	delete(r.s.employees, id)
	return true, nil
}

func clone(e models.Employee) models.Employee {
	if e.Class != nil {
		c := *e.Class
		e.Class = &c
	}
	if e.Attendance != nil {
		a := *e.Attendance
		e.Attendance = &a
	}
	e.Subjects = append([]string{}, e.Subjects...)
	return e
}

func compareBy(key string, a, b models.Employee) int {
	switch key {
	case "age":
		return cmp.Compare(a.Age, b.Age)
	case "class":
		return compareNullable(a.Class, b.Class)
	case "attendance":
		return compareNullable(a.Attendance, b.Attendance)
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "updatedAt":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		return strings.Compare(a.Name, b.Name)
	}
}

// compareNullable orders nil after every value.
func compareNullable[T cmp.Ordered](a, b *T) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}
