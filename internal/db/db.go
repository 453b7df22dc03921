package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("record not found")

type PostgresDB struct {
	DB *gorm.DB
}

func NewPostgresDB(dsn string) (*PostgresDB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
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

// Insert persists a single record, filling its auto-increment primary key.
func (f *PostgresDB) Insert(ctx context.Context, record any) error {
	if err := f.DB.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *PostgresDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// GetOneMatching fetches the first record matching every column in conds by equality.
func (f *PostgresDB) GetOneMatching(ctx context.Context, conds map[string]any, entity any) error {
	err := f.DB.WithContext(ctx).Where(conds).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %d column(s): %w", len(conds), err)
	}
	return nil
}

func (f *PostgresDB) GetAllBy(ctx context.Context, column string, value any, entities any) error {
	tx := f.DB.WithContext(ctx).Where(fmt.Sprintf("%s = ?", column), value).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting records by %q: %w", column, tx.Error)
	}
	return nil
}

func (f *PostgresDB) GetAll(ctx context.Context, entities any) error {
	tx := f.DB.WithContext(ctx).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("getting all records: %w", tx.Error)
	}
	return nil
}

// UpdateColumn sets a single column on the row with the given primary key and
// reports the number of rows affected (0 when the id does not exist).
func (f *PostgresDB) UpdateColumn(ctx context.Context, model any, id any, column string, value any) (int64, error) {
	tx := f.DB.WithContext(ctx).Model(model).Where("id = ?", id).Update(column, value)
	if tx.Error != nil {
		return 0, fmt.Errorf("updating column %q: %w", column, tx.Error)
	}
	return tx.RowsAffected, nil
}

// DeleteByID removes the row with the given primary key and reports the number
// of rows affected. A missing id is not an error, just 0 rows.
func (f *PostgresDB) DeleteByID(ctx context.Context, model any, id any) (int64, error) {
	tx := f.DB.WithContext(ctx).Delete(model, id)
	if tx.Error != nil {
		return 0, fmt.Errorf("deleting record: %w", tx.Error)
	}
	return tx.RowsAffected, nil
}
