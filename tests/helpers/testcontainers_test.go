package helpers

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/localnerve/jam-build-entities/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcludeComment(t *testing.T) {
	cases := map[string]string{
		"SELECT 1; -- trailing":        "SELECT 1; ",
		"-- whole line":                "",
		"SELECT '--not a comment' x":   "SELECT '--not a comment' x",
		`SELECT "a--b" -- cut`:         `SELECT "a--b" `,
		"GRANT ALL ON db.* TO 'u'@'%'": "GRANT ALL ON db.* TO 'u'@'%'",
	}
	for in, want := range cases {
		assert.Equal(t, want, excludeComment(in), in)
	}
}

func TestExecuteSQLRunsEachStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	script := "-- header\nCREATE TABLE x (\n  id BIGINT -- key\n);\n\nINSERT INTO x VALUES (1);\n"
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE x (")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO x VALUES (1)")).WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, executeSQL(db, script))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecuteSQLReportsFailingStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DROP TABLE y").WillReturnError(assert.AnError)

	err = executeSQL(db, "DROP TABLE y;")
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "DROP TABLE y")
}

func TestSeedScriptsCoverEveryTable(t *testing.T) {
	for _, script := range []string{data.InitdbMariaDBTables, data.InitdbPostgresTables} {
		for _, table := range []string{"a", "b", "c", "d", "eds_application"} {
			assert.Contains(t, script, "CREATE TABLE IF NOT EXISTS "+table+" (")
		}
		assert.Contains(t, script, "ON DELETE SET NULL")
	}
	assert.Contains(t, data.InitdbMariaDBPrivileges, "${DB_USER}")
}
