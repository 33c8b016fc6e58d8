package sqltypes

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const gormDataType = "string"

// Recommended column widths in characters.
const (
	AddressColumnWidth = 2 + 2*AddressLength
	HashColumnWidth    = 2 + 2*HashLength
	U256ColumnWidth    = 2 + 256/4
)

// Column is implemented by every type in this package. All of them are
// stored as text and never as numeric or binary columns.
type Column interface {
	driver.Valuer
	GormDataType() string
	textColumn()
}

var (
	_ Column = Address{}
	_ Column = Hash{}
	_ Column = U256{}
	_ Column = FixedBytes[W4]{}
	_ Column = Bytes{}
)

// IsTextColumn reports whether sqlType declares a character column.
func IsTextColumn(sqlType string) bool {
	t := strings.ToLower(strings.TrimSpace(sqlType))
	if i := strings.IndexByte(t, '('); i >= 0 {
		t = strings.TrimSpace(t[:i])
	}
	switch t {
	case "char", "character", "bpchar", "varchar", "character varying",
		"nchar", "nvarchar", "text", "tinytext", "mediumtext", "longtext",
		"citext", "string":
		return true
	}
	return false
}

func varcharType(db *gorm.DB, n int) string {
	if dialect(db) == "sqlserver" {
		return fmt.Sprintf("nvarchar(%d)", n)
	}
	return fmt.Sprintf("varchar(%d)", n)
}

func textType(db *gorm.DB) string {
	switch dialect(db) {
	case "sqlserver":
		return "nvarchar(max)"
	case "mysql":
		return "longtext"
	}
	return "text"
}

func dialect(db *gorm.DB) string {
	if db == nil || db.Config == nil || db.Dialector == nil {
		return ""
	}
	return db.Dialector.Name()
}

// scanText accepts only textual driver values and hands them to parse.
func scanText(typ string, src any, parse func(string) error) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case nil:
		return &ScanError{Type: typ, Src: src, Err: ErrMalformed}
	default:
		return &ScanError{Type: typ, Src: src, Err: ErrColumnType}
	}

	if err := parse(s); err != nil {
		return &ScanError{Type: typ, Src: src, Err: err}
	}
	return nil
}
