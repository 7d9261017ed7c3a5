package storage

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/devanshg21/face-attendance-backend/models"
)

// OpenDB opens the SQLite database and migrates the schema.
// TranslateError is required so unique-key violations surface as
// gorm.ErrDuplicatedKey for the optimistic-write mapping in the store.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	if err := db.AutoMigrate(
		&models.Employee{},
		&models.EnrolledIdentity{},
		&models.AttendanceRecord{},
		&models.LeaveRequest{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}
