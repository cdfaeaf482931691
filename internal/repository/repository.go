package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/metrics"
	"github.com/UnknownOlympus/hestia/internal/models"
)

// ErrEmployeeNotFound is returned by DeleteEmployee when no row matched
// the given id.
var ErrEmployeeNotFound = errors.New("employee not found")

// DuplicateError reports a rejected insert caused by a duplicate value in
// a unique column. Field is the display name of the colliding field,
// "Email" or "Login".
type DuplicateError struct {
	Field string
}

func (e *DuplicateError) Error() string {
	return strings.ToLower(e.Field) + " already exists"
}

type Repository struct {
	db      Database
	metrics *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with employee
// data in the repository.
type EmployeeRepoIface interface {
	CreateEmployee(ctx context.Context, firstName, lastName, phone, email, login string) (models.Employee, error)
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	DeleteEmployee(ctx context.Context, identifier int) error
	CheckSchema(ctx context.Context) (models.SchemaReport, error)
}

func NewEmployeeRepository(db Database, mtr *metrics.Metrics) EmployeeRepoIface {
	return &Repository{db: db, metrics: mtr}
}
