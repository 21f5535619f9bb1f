// Package migration stores all database migrations
package migration

import (
	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"elementarium/pkg/infras/database"
	"elementarium/pkg/model"
)

func init() {
	// Do Not Edit Migration ID!
	migrationID := "20250614_102400"

	database.RegisterMigration(&gormigrate.Migration{
		ID: migrationID,
		Migrate: func(tx *gorm.DB) error {
			logApplying(migrationID)

			return tx.AutoMigrate(&model.ElementViewRecord{}, &model.ExtractRecord{})
		},
		Rollback: func(tx *gorm.DB) error {
			logRollingBack(migrationID)

			return tx.Migrator().DropTable(&model.ElementViewRecord{}, &model.ExtractRecord{})
		},
	})
}
