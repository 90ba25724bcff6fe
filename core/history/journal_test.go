package history

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func openMemory(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(context.Background(), Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

// setupMockDB creates a mysql-flavoured GORM DB backed by sqlmock.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestJournal_RecordAndList(t *testing.T) {
	j := openMemory(t)
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	for i, path := range []string{"a.evt", "b.evt", "c.evt"} {
		rec := &UpdateRecord{
			RunAt:   base.Add(time.Duration(i) * time.Minute),
			EVTPath: path,
			Added:   i,
			Total:   i + 1,
		}
		require.NoError(t, j.Record(ctx, rec))
		assert.Len(t, rec.ID, 36)
	}

	records, err := j.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "c.evt", records[0].EVTPath)
	assert.Equal(t, "b.evt", records[1].EVTPath)
	assert.Equal(t, 2, records[0].Added)

	all, err := j.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestJournal_RecordFillsTimestamp(t *testing.T) {
	j := openMemory(t)
	rec := &UpdateRecord{EVTPath: "x.evt", DryRun: true}

	require.NoError(t, j.Record(context.Background(), rec))
	assert.False(t, rec.RunAt.IsZero())

	records, err := j.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.True(t, records[0].DryRun)
}

func TestJournal_RecordError(t *testing.T) {
	db, mock := setupMockDB(t)
	j := NewJournal(db)

	mock.ExpectExec("INSERT INTO `lynx_updates`").WillReturnError(errors.New("disk full"))

	err := j.Record(context.Background(), &UpdateRecord{ID: "fixed-id"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixed-id")
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournal_ListMySQL(t *testing.T) {
	db, mock := setupMockDB(t)
	j := NewJournal(db)

	rows := sqlmock.NewRows([]string{"id", "evt_path", "added", "total"}).
		AddRow("r2", "b.evt", 1, 4).
		AddRow("r1", "a.evt", 0, 3)
	mock.ExpectQuery("SELECT \\* FROM `lynx_updates` ORDER BY run_at desc").WillReturnRows(rows)

	records, err := j.List(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "r2", records[0].ID)
	assert.Equal(t, 4, records[0].Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestJournal_ListError(t *testing.T) {
	db, mock := setupMockDB(t)
	j := NewJournal(db)

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("gone"))

	_, err := j.List(context.Background(), 1)
	assert.ErrorContains(t, err, "failed to list updates")
}

func TestConnect(t *testing.T) {
	t.Run("Unsupported driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorIs(t, err, ErrUnsupportedDriver)
		assert.Nil(t, db)
	})

	t.Run("MySQL without DSN", func(t *testing.T) {
		db, err := Connect(Config{Driver: "mysql"})
		assert.ErrorIs(t, err, ErrMissingDSN)
		assert.Nil(t, db)
	})

	t.Run("SQLite file", func(t *testing.T) {
		db, err := Connect(Config{Path: t.TempDir() + "/journal.db"})
		require.NoError(t, err)
		assert.Equal(t, "sqlite", db.Dialector.Name())
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})
}
