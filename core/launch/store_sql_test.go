package launch_test

import (
	"context"
	"testing"

	"launchsync/core/launch"
	"launchsync/core/reconcile"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newMockDB wires gorm's mysql dialector over a sqlmock connection so the
// generated SQL can be asserted without a live server.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      conn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	assert.NoError(t, err)

	return db, mock
}

func TestStoreApply_SQL(t *testing.T) {
	db, mock := newMockDB(t)
	store := launch.NewStore(db)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `launches` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	updated, err := store.Apply(context.Background(), "Starlink-5", reconcile.UpdateRecord{
		FlightNumber: 88,
		LaunchYear:   "2020",
		Precision:    reconcile.PrecisionDay,
		Tentative:    true,
	})
	assert.NoError(t, err)
	assert.True(t, updated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreBaseFlightNumber_SQL(t *testing.T) {
	db, mock := newMockDB(t)
	store := launch.NewStore(db)

	mock.ExpectQuery(`SELECT MAX\(flight_number\) FROM `+"`launches`").
		WillReturnRows(sqlmock.NewRows([]string{"MAX(flight_number)"}).AddRow(87))

	base, err := store.BaseFlightNumber(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 88, base)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreBaseFlightNumber_NullMax(t *testing.T) {
	db, mock := newMockDB(t)
	store := launch.NewStore(db)

	mock.ExpectQuery(`SELECT MAX\(flight_number\) FROM `+"`launches`").
		WillReturnRows(sqlmock.NewRows([]string{"MAX(flight_number)"}).AddRow(nil))

	base, err := store.BaseFlightNumber(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, base)
	assert.NoError(t, mock.ExpectationsWereMet())
}
