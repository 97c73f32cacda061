package services

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"foodchef/entity"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.MenuCategory{},
		&entity.Food{},
		&entity.Reservation{},
		&entity.Order{},
		&entity.OrderItem{},
		&entity.FoodReview{},
		&entity.CustomerFeedback{},
	))
	return db
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func tomorrowDate() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}

func seedFood(t *testing.T, db *gorm.DB, name string, price int64, active bool) *entity.Food {
	t.Helper()
	f := entity.Food{Name: name, Price: price, IsActive: active, CategoryID: 1}
	require.NoError(t, db.Create(&f).Error)
	return &f
}
