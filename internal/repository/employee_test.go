package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const createEmployeeQuery = `
		INSERT INTO employees (first_name, last_name, phone, email, login)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, first_name, last_name, phone, email, login,
			TO_CHAR(created_at, 'DD.MM.YYYY HH24:MI') AS created_at;
	`

const listEmployeesQuery = `
		SELECT id, first_name, last_name, phone, email, login,
			TO_CHAR(created_at, 'DD.MM.YYYY HH24:MI') AS created_at
		FROM employees
		ORDER BY id;
	`

const deleteEmployeeQuery = `DELETE FROM employees WHERE id = $1;`

var employeeColumns = []string{"id", "first_name", "last_name", "phone", "email", "login", "created_at"}

func newTestRepo(t *testing.T) (pgxmock.PgxPoolIface, repository.EmployeeRepoIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(mock.Close)

	return mock, repository.NewEmployeeRepository(mock, metrics.NewMetrics(prometheus.NewRegistry()))
}

func TestCreateEmployee_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	expected := models.Employee{
		ID:        1,
		FirstName: "Ann",
		LastName:  "Lee",
		Phone:     "123",
		Email:     "a@x.com",
		Login:     "alee",
		CreatedAt: "01.09.2026 12:00",
	}
	expectedRows := pgxmock.NewRows(employeeColumns).
		AddRow(expected.ID, expected.FirstName, expected.LastName, expected.Phone, expected.Email,
			expected.Login, expected.CreatedAt)

	mock.ExpectQuery(regexp.QuoteMeta(createEmployeeQuery)).
		WithArgs(expected.FirstName, expected.LastName, expected.Phone, expected.Email, expected.Login).
		WillReturnRows(expectedRows)

	actual, err := repo.CreateEmployee(
		context.Background(), expected.FirstName, expected.LastName, expected.Phone, expected.Email, expected.Login)

	require.NoError(t, err)
	assert.Equal(t, expected, actual)
	assert.Regexp(t, `^\d{2}\.\d{2}\.\d{4} \d{2}:\d{2}$`, actual.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(createEmployeeQuery)).
		WithArgs("Ann", "Lee", "123", "a@x.com", "alee").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"})

	_, err := repo.CreateEmployee(context.Background(), "Ann", "Lee", "123", "a@x.com", "alee")

	var dupErr *repository.DuplicateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "Email", dupErr.Field)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_DuplicateLogin(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(createEmployeeQuery)).
		WithArgs("Ann", "Lee", "123", "other@x.com", "alee").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "employees_login_key"})

	_, err := repo.CreateEmployee(context.Background(), "Ann", "Lee", "123", "other@x.com", "alee")

	var dupErr *repository.DuplicateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "Login", dupErr.Field)
	assert.Equal(t, "login already exists", dupErr.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_DuplicateFromDetail(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	// Some stores report only the detail, never the constraint name.
	mock.ExpectQuery(regexp.QuoteMeta(createEmployeeQuery)).
		WithArgs("Ann", "Lee", "123", "a@x.com", "alee").
		WillReturnError(&pgconn.PgError{Code: "23505", Detail: "Key (email)=(a@x.com) already exists."})

	_, err := repo.CreateEmployee(context.Background(), "Ann", "Lee", "123", "a@x.com", "alee")

	var dupErr *repository.DuplicateError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "Email", dupErr.Field)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEmployee_QueryError(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(createEmployeeQuery)).
		WithArgs("Ann", "Lee", "123", "a@x.com", "alee").
		WillReturnError(assert.AnError)

	_, err := repo.CreateEmployee(context.Background(), "Ann", "Lee", "123", "a@x.com", "alee")

	require.Error(t, err)
	require.EqualError(t, err, "failed to create employee: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmployees_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	expectedRows := pgxmock.NewRows(employeeColumns).
		AddRow(1, "Ann", "Lee", "123", "a@x.com", "alee", "01.09.2026 12:00").
		AddRow(2, "Bob", "Ray", "456", "b@x.com", "bray", "01.09.2026 12:05")

	mock.ExpectQuery(regexp.QuoteMeta(listEmployeesQuery)).WillReturnRows(expectedRows)

	employees, err := repo.ListEmployees(context.Background())

	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, 1, employees[0].ID)
	assert.Equal(t, 2, employees[1].ID)
	assert.Equal(t, "alee", employees[0].Login)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmployees_Empty(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listEmployeesQuery)).
		WillReturnRows(pgxmock.NewRows(employeeColumns))

	employees, err := repo.ListEmployees(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, employees)
	assert.Empty(t, employees)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmployees_QueryError(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(listEmployeesQuery)).WillReturnError(assert.AnError)

	_, err := repo.ListEmployees(context.Background())

	require.Error(t, err)
	require.EqualError(t, err, "failed to list employees: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmployee_Success(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeQuery)).
		WithArgs(123).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.DeleteEmployee(context.Background(), 123)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmployee_NotFound(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeQuery)).
		WithArgs(123).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteEmployee(context.Background(), 123)

	require.ErrorIs(t, err, repository.ErrEmployeeNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEmployee_QueryError(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteEmployeeQuery)).
		WithArgs(123).
		WillReturnError(assert.AnError)

	err := repo.DeleteEmployee(context.Background(), 123)

	require.Error(t, err)
	require.EqualError(t, err, "failed to delete employee: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}
