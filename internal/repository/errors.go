package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// translate maps gorm errors onto the application's typed errors.
func translate(err error, notFound, exists error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey) && exists != nil:
		return exists
	default:
		return err
	}
}

// createIfAbsent inserts value, returning exists when a unique constraint already
// holds a conflicting row. The conflict does not abort an enclosing transaction.
func createIfAbsent(db *gorm.DB, value interface{}, exists error) error {
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(value)
	if result.Error != nil {
		return translate(result.Error, nil, exists)
	}
	if result.RowsAffected == 0 {
		return exists
	}
	return nil
}
