package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const checkSchemaQuery = `
		SELECT column_name, data_type
		FROM information_schema.columns
		WHERE table_name = 'employees';
	`

func TestCheckSchema_Complete(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	expectedRows := pgxmock.NewRows([]string{"column_name", "data_type"}).
		AddRow("id", "integer").
		AddRow("first_name", "text").
		AddRow("last_name", "text").
		AddRow("phone", "text").
		AddRow("email", "text").
		AddRow("login", "text").
		AddRow("created_at", "timestamp without time zone")

	mock.ExpectQuery(regexp.QuoteMeta(checkSchemaQuery)).WillReturnRows(expectedRows)

	report, err := repo.CheckSchema(context.Background())

	require.NoError(t, err)
	assert.Len(t, report.Columns, 7)
	assert.Empty(t, report.Missing)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckSchema_MissingColumns(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	expectedRows := pgxmock.NewRows([]string{"column_name", "data_type"}).
		AddRow("id", "integer").
		AddRow("first_name", "text").
		AddRow("last_name", "text").
		AddRow("phone", "text").
		AddRow("email", "text")

	mock.ExpectQuery(regexp.QuoteMeta(checkSchemaQuery)).WillReturnRows(expectedRows)

	report, err := repo.CheckSchema(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"login", "created_at"}, report.Missing)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckSchema_MissingTable(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(checkSchemaQuery)).
		WillReturnRows(pgxmock.NewRows([]string{"column_name", "data_type"}))

	report, err := repo.CheckSchema(context.Background())

	require.NoError(t, err)
	assert.Empty(t, report.Columns)
	assert.Len(t, report.Missing, 7)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckSchema_QueryError(t *testing.T) {
	t.Parallel()

	mock, repo := newTestRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(checkSchemaQuery)).WillReturnError(assert.AnError)

	_, err := repo.CheckSchema(context.Background())

	require.Error(t, err)
	require.EqualError(t, err, "failed to inspect employees table: "+assert.AnError.Error())
	require.NoError(t, mock.ExpectationsWereMet())
}
