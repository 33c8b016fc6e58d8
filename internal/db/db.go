package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"ethsql/pkg/sqltypes"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return &PostgresDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &PostgresDB{
		DB: db,
	}, nil
}

func (f *PostgresDB) MigrateTable(tbl ...any) error {
	err := f.DB.AutoMigrate(tbl...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// SaveToTable inserts a slice of records, skipping rows whose unique keys
// already exist so repeated saves of the same records are harmless.
func (f *PostgresDB) SaveToTable(ctx context.Context, records any) error {
	v := reflect.ValueOf(records)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("records type must be pointer to a slice: %T", records)
	}

	if v.Elem().Len() == 0 {
		return nil
	}

	err := f.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(records).Error
	if err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	err := f.DB.WithContext(ctx).Where(whereClause(column, value), value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entity any) error {
	tx := f.DB.WithContext(ctx).Where(whereClause(column, value), value).Find(entity)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) GetAll(ctx context.Context, entity any) error {
	if err := f.DB.WithContext(ctx).Find(entity).Error; err != nil {
		return fmt.Errorf("getting all records: %w", err)
	}
	return nil
}

// whereClause matches a list of values with IN and anything else, including
// fixed-size column wrappers, with equality.
func whereClause(column string, value any) string {
	if _, ok := value.(driver.Valuer); !ok {
		switch reflect.ValueOf(value).Kind() {
		case reflect.Slice, reflect.Array:
			if _, raw := value.([]byte); !raw {
				return fmt.Sprintf("%s IN ?", column)
			}
		}
	}
	return fmt.Sprintf("%s = ?", column)
}

var columnType = reflect.TypeOf((*sqltypes.Column)(nil)).Elem()

// CheckTextColumns fails when a model declares a non-text SQL type for a
// field backed by a sqltypes wrapper. Such columns would store the hex text
// in a numeric or binary column and break on the first round trip.
func CheckTextColumns(models ...any) error {
	var errs error
	cache := &sync.Map{}

	for _, model := range models {
		s, err := schema.Parse(model, cache, schema.NamingStrategy{})
		if err != nil {
			return fmt.Errorf("parse model %T: %w", model, err)
		}

		for _, field := range s.Fields {
			t := field.IndirectFieldType
			if !t.Implements(columnType) && !reflect.PointerTo(t).Implements(columnType) {
				continue
			}

			declared, ok := field.TagSettings["TYPE"]
			if !ok || sqltypes.IsTextColumn(declared) {
				continue
			}

			errs = errors.Join(errs, fmt.Errorf("%s.%s declared as %q: %w",
				s.Name, field.Name, declared, sqltypes.ErrColumnType))
		}
	}

	return errs
}
