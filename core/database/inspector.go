package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ColumnInfo is one column of a table as reported by the database.
// Field and Type are lowercased.
type ColumnInfo struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

type sqliteColumn struct {
	Cid        int
	Name       string
	Type       string
	Notnull    int
	DefaultVal *string `gorm:"column:dflt_value"`
	Pk         int
}

// GetTableColumns retrieves the column definitions for a given table.
// A table that does not exist yields no columns on SQLite and an error on MySQL.
func GetTableColumns(db *gorm.DB, tableName string) ([]ColumnInfo, error) {
	if db == nil {
		return nil, fmt.Errorf("no database connection")
	}

	var columns []ColumnInfo
	if db.Dialector.Name() == DriverSQLite {
		var rows []sqliteColumn
		if err := db.Raw(fmt.Sprintf("PRAGMA table_info('%s')", tableName)).Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
		}
		for _, row := range rows {
			col := ColumnInfo{
				Field:   strings.ToLower(row.Name),
				Type:    strings.ToLower(row.Type),
				Null:    "YES",
				Default: row.DefaultVal,
			}
			if row.Notnull == 1 {
				col.Null = "NO"
			}
			if row.Pk > 0 {
				col.Key = "PRI"
			}
			columns = append(columns, col)
		}
		return columns, nil
	}

	// SHOW COLUMNS keeps the exact type strings, e.g. "varchar(255)"
	if err := db.Raw(fmt.Sprintf("SHOW COLUMNS FROM `%s`", tableName)).Scan(&columns).Error; err != nil {
		return nil, fmt.Errorf("failed to get columns for table %s: %w", tableName, err)
	}
	for i := range columns {
		columns[i].Type = strings.ToLower(columns[i].Type)
		columns[i].Field = strings.ToLower(columns[i].Field)
	}
	return columns, nil
}

// ColumnTypes indexes the columns of a table by name.
func ColumnTypes(columns []ColumnInfo) map[string]string {
	types := make(map[string]string, len(columns))
	for _, col := range columns {
		types[col.Field] = col.Type
	}
	return types
}
