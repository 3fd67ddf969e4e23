package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/kapilkaushal24/restaurant-management-api/entity"
	"github.com/kapilkaushal24/restaurant-management-api/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a per-test in-memory sqlite database. The shared
// cache keeps every pooled connection on the same database; the name
// keeps tests isolated from each other.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{},
		&entity.MenuCategory{},
		&entity.MenuItem{},
		&entity.Order{},
		&entity.OrderItem{},
	))
	return db
}

func newTestAuthService(t *testing.T, db *gorm.DB) *AuthService {
	t.Helper()
	tokens := NewTokenService(testSecret, testIssuer, testAudience, time.Hour)
	return NewAuthService(repository.NewUserRepository(db), tokens)
}

// seedCatalog creates one restaurant with a category and two priced
// items, returning their ids.
func seedCatalog(t *testing.T, db *gorm.DB) (restID, catID, itemA, itemB uint) {
	t.Helper()

	rest := entity.Restaurant{Name: "Blue Orchid", Address: "12 River Rd"}
	require.NoError(t, db.Create(&rest).Error)

	cat := entity.MenuCategory{Name: "Mains", RestaurantID: rest.ID}
	require.NoError(t, db.Create(&cat).Error)

	a := entity.MenuItem{Name: "Pad Thai", Price: 950, CategoryID: cat.ID}
	require.NoError(t, db.Create(&a).Error)
	b := entity.MenuItem{Name: "Green Curry", Price: 1225, CategoryID: cat.ID}
	require.NoError(t, db.Create(&b).Error)

	return rest.ID, cat.ID, a.ID, b.ID
}
