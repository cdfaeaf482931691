package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode is the PostgreSQL error code for a violated
// unique constraint.
const uniqueViolationCode = "23505"

// CreateEmployee inserts a new employee record. The store assigns the id
// and created_at; the returned row carries created_at already formatted.
// A duplicate email or login yields a *DuplicateError naming the field.
func (r *Repository) CreateEmployee(
	ctx context.Context,
	firstName, lastName, phone, email, login string,
) (models.Employee, error) {
	var result models.Employee

	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("create_employee").Observe(duration)
	}()
	query := `
		INSERT INTO employees (first_name, last_name, phone, email, login)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, first_name, last_name, phone, email, login,
			TO_CHAR(created_at, 'DD.MM.YYYY HH24:MI') AS created_at;
	`

	err := r.db.QueryRow(ctx, query, firstName, lastName, phone, email, login).Scan(
		&result.ID, &result.FirstName, &result.LastName, &result.Phone, &result.Email, &result.Login,
		&result.CreatedAt)
	if err != nil {
		if dupErr := duplicateFrom(err); dupErr != nil {
			return models.Employee{}, dupErr
		}
		return models.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	r.metrics.EmployeesCreated.Inc()

	return result, nil
}

// ListEmployees retrieves all employees ordered by ascending id.
// The result is never nil, so an empty table serializes as [].
func (r *Repository) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("list_employees").Observe(duration)
	}()
	query := `
		SELECT id, first_name, last_name, phone, email, login,
			TO_CHAR(created_at, 'DD.MM.YYYY HH24:MI') AS created_at
		FROM employees
		ORDER BY id;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]models.Employee, 0)
	for rows.Next() {
		var emp models.Employee
		if err = rows.Scan(
			&emp.ID, &emp.FirstName, &emp.LastName, &emp.Phone, &emp.Email, &emp.Login, &emp.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read employee rows: %w", err)
	}

	return employees, nil
}

// DeleteEmployee removes an employee by id. It returns ErrEmployeeNotFound
// when no row matched.
func (r *Repository) DeleteEmployee(ctx context.Context, identifier int) error {
	startTime := time.Now()
	defer func() {
		duration := time.Since(startTime).Seconds()
		r.metrics.DBQueryDuration.WithLabelValues("delete_employee").Observe(duration)
	}()
	query := `DELETE FROM employees WHERE id = $1;`

	tag, err := r.db.Exec(ctx, query, identifier)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrEmployeeNotFound
	}

	r.metrics.EmployeesDeleted.Inc()

	return nil
}

// duplicateFrom translates a unique-violation database error into a typed
// *DuplicateError. The colliding field is derived from the constraint name
// first (the migration names them employees_email_key and
// employees_login_key), falling back to the column name and the error
// detail, so the handler layer never inspects SQL errors itself.
func duplicateFrom(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}

	for _, src := range []string{pgErr.ConstraintName, pgErr.ColumnName, pgErr.Detail} {
		switch {
		case strings.Contains(src, "email"):
			return &DuplicateError{Field: "Email"}
		case strings.Contains(src, "login"):
			return &DuplicateError{Field: "Login"}
		}
	}

	return nil
}
