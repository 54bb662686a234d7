package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/localnerve/jam-build-entities/internal/models"
	"github.com/localnerve/jam-build-entities/internal/repository"
	"github.com/localnerve/jam-build-entities/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestBReadJoinsParent(t *testing.T) {
	db, mock := mockDB(t)
	repo := repository.NewBRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("entity:b") + ".*" +
		regexp.QuoteMeta("SELECT e.id AS e_id, e.aa_id AS e_aa_id, a.id AS a_id FROM b e LEFT OUTER JOIN a a ON e.aa_id = a.id WHERE e.aa_id IS NULL ORDER BY e.id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"e_id", "e_aa_id", "a_id"}).
			AddRow(int64(3), nil, nil))

	bs, err := repository.Collect(repo.FindAllWhereAIsNull(context.Background(), nil))
	require.NoError(t, err)
	require.Len(t, bs, 1)
	assert.Equal(t, int64(3), *bs[0].ID)
	assert.Nil(t, bs[0].AID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadErrorIsWrapped(t *testing.T) {
	db, mock := mockDB(t)
	repo := repository.NewCRepository(db)

	boom := errors.New("connection reset")
	mock.ExpectQuery("FROM c e").WillReturnError(boom)

	_, err := repository.Collect(repo.FindAll(context.Background(), nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failed to query c")
}

func TestUpdateVanishedRowRollsBack(t *testing.T) {
	db, mock := mockDB(t)
	repo := repository.NewEDSApplicationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `eds_application` SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `eds_application` WHERE id = ?")).
		WithArgs("gone").
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
	mock.ExpectRollback()

	_, err := repo.Save(context.Background(), &models.EDSApplication{
		ID:              testutil.Ptr("gone"),
		LogoContentType: testutil.Ptr("image/png"),
	})
	assert.ErrorIs(t, err, repository.ErrConcurrentModificationOrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUnchangedRowSucceeds(t *testing.T) {
	db, mock := mockDB(t)
	repo := repository.NewEDSApplicationRepository(db)

	// MySQL reports zero affected rows when nothing changed
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE `eds_application` SET")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `eds_application`")).
		WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
	mock.ExpectCommit()

	saved, err := repo.Save(context.Background(), &models.EDSApplication{
		ID:              testutil.Ptr("same"),
		LogoContentType: testutil.Ptr("image/png"),
	})
	require.NoError(t, err)
	assert.Equal(t, "same", *saved.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
