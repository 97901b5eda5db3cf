package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&Session{},
		&AuditEvent{},
		&SchemaVersion{},
	}
}

// Tables returns all models as DDL generators, in creation order.
func Tables() []DDLGenerator {
	return []DDLGenerator{
		&User{},
		&Session{},
		&AuditEvent{},
		&SchemaVersion{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
