package modeltest

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	entity "github.com/zzrilakkuma/sales-activity-management-system/model/entity"
	"github.com/zzrilakkuma/sales-activity-management-system/model/repository"
)

func TestWithTransactionCommits(t *testing.T) {
	db := modelTestDB(t)

	err := repository.WithTransaction(db, func(tx *gorm.DB) error {
		return tx.Create(&entity.Customer{Name: "Acme"}).Error
	})
	if err != nil {
		t.Fatalf("transaction: %v", err)
	}

	var n int64
	db.Model(&entity.Customer{}).Count(&n)
	if n != 1 {
		t.Errorf("expected 1 customer after commit, got %d", n)
	}
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	db := modelTestDB(t)

	boom := errors.New("boom")
	err := repository.WithTransaction(db, func(tx *gorm.DB) error {
		if err := tx.Create(&entity.Customer{Name: "Acme"}).Error; err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected fn error returned, got %v", err)
	}

	var n int64
	db.Model(&entity.Customer{}).Count(&n)
	if n != 0 {
		t.Errorf("expected rollback to discard the insert, found %d rows", n)
	}
}

func TestWithTransactionRollsBackOnPanic(t *testing.T) {
	db := modelTestDB(t)

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected panic to propagate")
			}
		}()
		_ = repository.WithTransaction(db, func(tx *gorm.DB) error {
			if err := tx.Create(&entity.Customer{Name: "Acme"}).Error; err != nil {
				return err
			}
			panic("boom")
		})
	}()

	var n int64
	db.Model(&entity.Customer{}).Count(&n)
	if n != 0 {
		t.Errorf("expected rollback after panic, found %d rows", n)
	}
}
