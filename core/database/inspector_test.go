package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns_SQLite(t *testing.T) {
	db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE unresolved_items (id INTEGER PRIMARY KEY, name TEXT NOT NULL, hits INTEGER)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "unresolved_items")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	types := ColumnTypes(columns)
	assert.Equal(t, "integer", types["id"])
	assert.Equal(t, "text", types["name"])
	assert.Equal(t, "integer", types["hits"])
	assert.Equal(t, "PRI", columns[0].Key)
	assert.Equal(t, "NO", columns[1].Null)

	// PRAGMA table_info returns no rows for a missing table
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "BIGINT UNSIGNED", "NO", "PRI", nil, "auto_increment").
		AddRow("name", "VARCHAR(255)", "NO", "UNI", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `unresolved_items`").WillReturnRows(rows)

	columns, err := GetTableColumns(db, "unresolved_items")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"id": "bigint unsigned", "name": "varchar(255)"}, ColumnTypes(columns))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTableColumns_NoConnection(t *testing.T) {
	_, err := GetTableColumns(nil, "unresolved_items")
	assert.Error(t, err)
}
