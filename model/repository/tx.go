package repository

import "gorm.io/gorm"

// WithTransaction runs fn inside an explicitly scoped transaction:
// begin, run, roll back on error or panic, commit on success. Callers
// never see a partially applied write.
func WithTransaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}
