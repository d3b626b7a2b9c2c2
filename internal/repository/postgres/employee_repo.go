package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"employee-api/internal/database"
	"employee-api/internal/models"
	"employee-api/internal/repository"
)

const employeeCols = `id, name, age, class, subjects, attendance, created_at, updated_at`

type EmployeeRepo struct{ db database.DB }

func NewEmployeeRepo(db database.DB) *EmployeeRepo { return &EmployeeRepo{db: db} }

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*models.Employee, error) {
	var e models.Employee
	if err := row.Scan(
		&e.ID, &e.Name, &e.Age, &e.Class, &e.Subjects, &e.Attendance, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if e.Subjects == nil {
		e.Subjects = []string{}
	}
	return &e, nil
}

// List returns one page ordered by the query's sort key, ties broken by id.
// The limit is not capped here.
func (r *EmployeeRepo) List(ctx context.Context, q repository.EmployeeQuery) ([]models.Employee, error) {
	q = q.Normalize()
	col, desc := q.SortColumn()
	dir := "ASC"
	if desc {
		dir = "DESC"
	}

	sql := fmt.Sprintf(`
		SELECT %s
		FROM employees
		ORDER BY %s %s, id ASC
		LIMIT $1 OFFSET $2
	`, employeeCols, col, dir)

	rows, err := r.db.Query(ctx, sql, q.Limit, q.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Employee{}
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *EmployeeRepo) Get(ctx context.Context, id string) (*models.Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}
	e, err := scanEmployee(r.db.QueryRow(ctx, `SELECT `+employeeCols+` FROM employees WHERE id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, in models.EmployeeInput) (*models.Employee, error) {
	subjects := in.Subjects
	if subjects == nil {
		subjects = []string{}
	}
	return scanEmployee(r.db.QueryRow(ctx, `
		INSERT INTO employees (id, name, age, class, subjects, attendance)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING `+employeeCols,
		uuid.NewString(), in.Name, in.Age, in.Class, subjects, in.Attendance))
}

// Update sets only the non-nil fields of p and returns the new row.
// An empty patch returns the current row unchanged.
func (r *EmployeeRepo) Update(ctx context.Context, id string, p models.EmployeePatch) (*models.Employee, error) {
	if p.Empty() {
		return r.Get(ctx, id)
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	sets := []string{}
	args := []any{}
	set := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, col+"=$"+strconv.Itoa(len(args)))
	}
	if p.Name != nil {
		set("name", *p.Name)
	}
	if p.Age != nil {
		set("age", *p.Age)
	}
	if p.Class != nil {
		set("class", *p.Class)
	}
	if p.Subjects != nil {
		subjects := *p.Subjects
		if subjects == nil {
			subjects = []string{}
		}
		set("subjects", subjects)
	}
	if p.Attendance != nil {
		set("attendance", *p.Attendance)
	}
	args = append(args, id)

	sql := `
		UPDATE employees
		SET ` + strings.Join(sets, ", ") + `, updated_at=now()
		WHERE id=$` + strconv.Itoa(len(args)) + `
		RETURNING ` + employeeCols

	e, err := scanEmployee(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

func (r *EmployeeRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, err := uuid.Parse(id); err != nil {
		return false, nil
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
