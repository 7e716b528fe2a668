package config_test

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ruban71/Slooze-Food-App/config"
	"github.com/ruban71/Slooze-Food-App/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, config.Seed(db))
	require.NoError(t, config.Seed(db))

	var users, restaurants, items, orders, history int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Restaurant{}).Count(&restaurants)
	db.Model(&models.MenuItem{}).Count(&items)
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderStatusHistory{}).Count(&history)

	assert.EqualValues(t, 6, users)
	assert.EqualValues(t, 4, restaurants)
	assert.EqualValues(t, 12, items)
	assert.EqualValues(t, 2, orders)
	assert.EqualValues(t, 2, history)
}

func TestSeedDataset(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, config.Seed(db))

	var admin models.User
	require.NoError(t, db.Where("email = ?", "nick@fury.com").First(&admin).Error)
	assert.Equal(t, models.RoleAdmin, admin.Role)
	assert.Equal(t, models.CountryIndia, admin.Country)
	assert.NotEmpty(t, admin.PasswordHash)

	var spiceGarden models.Restaurant
	require.NoError(t, db.Preload("MenuItems").Where("name = ?", "Spice Garden").First(&spiceGarden).Error)
	assert.Equal(t, models.CountryIndia, spiceGarden.Country)
	assert.Len(t, spiceGarden.MenuItems, 3)

	var butterChicken models.MenuItem
	require.NoError(t, db.Where("name = ?", "Butter Chicken").First(&butterChicken).Error)
	assert.Equal(t, 12.99, butterChicken.Price)
}

func TestSeedSampleOrders(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, config.Seed(db))

	var thanos models.User
	require.NoError(t, db.Where("email = ?", "thanos@india.com").First(&thanos).Error)

	// 2 × Butter Chicken (12.99) + 1 × Biryani (10.99)
	var order models.Order
	require.NoError(t, db.Preload("Items").Where("user_id = ?", thanos.ID).First(&order).Error)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 36.97, order.TotalAmount)
	assert.Len(t, order.Items, 2)

	var history models.OrderStatusHistory
	require.NoError(t, db.Where("order_id = ?", order.ID).First(&history).Error)
	assert.Equal(t, models.StatusPending, history.ToStatus)
	assert.Equal(t, thanos.ID, history.ChangedBy)
}
