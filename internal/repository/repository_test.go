package repository

import (
	"testing"
	"time"

	"coachlab.fr/suivicoach/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// An in-memory database exists per connection; keep the pool at one
	// so every query sees the same schema.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Availability{},
		&model.Exercise{},
		&model.Program{},
		&model.ProgramSession{},
		&model.ExerciseEntry{},
		&model.JournalEntry{},
		&model.PerformanceEntry{},
		&model.Food{},
		&model.MealPlan{},
		&model.MealEntry{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

func utcDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		t.Fatalf("bad date %q: %v", s, err)
	}
	return d
}
