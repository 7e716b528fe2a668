package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ruban71/Slooze-Food-App/config"
	"github.com/ruban71/Slooze-Food-App/middleware"
	"github.com/ruban71/Slooze-Food-App/models"
	"github.com/ruban71/Slooze-Food-App/routes"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type testEnv struct {
	router      *gin.Engine
	db          *gorm.DB
	auth        *middleware.Auth
	users       map[string]*models.User
	restaurants map[string]*models.Restaurant
	menuItems   map[string]*models.MenuItem
}

type fixtureUser struct {
	name    string
	email   string
	role    models.Role
	country models.Country
}

var fixtureUsers = []fixtureUser{
	{"Nick Fury", "nick@fury.com", models.RoleAdmin, models.CountryIndia},
	{"Captain Marvel", "captain@marvel.com", models.RoleManager, models.CountryIndia},
	{"Captain America", "captain@america.com", models.RoleManager, models.CountryAmerica},
	{"Thanos", "thanos@india.com", models.RoleMember, models.CountryIndia},
	{"Thor", "thor@india.com", models.RoleMember, models.CountryIndia},
	{"Travis", "travis@america.com", models.RoleMember, models.CountryAmerica},
}

const fixturePassword = "test123"

// newTestEnv spins up a fresh in-memory store, migrates the schema,
// loads the standard fixture dataset and wires the real router on top.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))

	env := &testEnv{
		db:          db,
		auth:        middleware.NewAuth([]byte("test-secret"), time.Hour),
		users:       map[string]*models.User{},
		restaurants: map[string]*models.Restaurant{},
		menuItems:   map[string]*models.MenuItem{},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(fixturePassword), bcrypt.MinCost)
	require.NoError(t, err)
	for _, f := range fixtureUsers {
		user := &models.User{
			Name:         f.name,
			Email:        f.email,
			PasswordHash: string(hash),
			Role:         f.role,
			Country:      f.country,
		}
		require.NoError(t, db.Create(user).Error)
		env.users[f.name] = user
	}

	catalog := []struct {
		name    string
		country models.Country
		menu    map[string]float64
	}{
		{"Spice Garden", models.CountryIndia, map[string]float64{"Butter Chicken": 12.99, "Biryani": 10.99}},
		{"Burger Hub", models.CountryAmerica, map[string]float64{"Classic Cheeseburger": 8.99, "French Fries": 3.99}},
		{"Curry House", models.CountryIndia, map[string]float64{"Chicken Curry": 11.99}},
		{"Pizza Palace", models.CountryAmerica, map[string]float64{"Margherita Pizza": 11.99}},
	}
	for _, entry := range catalog {
		restaurant := &models.Restaurant{Name: entry.name, Country: entry.country}
		require.NoError(t, db.Create(restaurant).Error)
		env.restaurants[entry.name] = restaurant
		for itemName, price := range entry.menu {
			item := &models.MenuItem{RestaurantID: restaurant.ID, Name: itemName, Price: price}
			require.NoError(t, db.Create(item).Error)
			env.menuItems[itemName] = item
		}
	}

	env.router = gin.New()
	routes.Setup(env.router, db, env.auth)
	return env
}

// tokenFor mints a token for a fixture user by name
func (e *testEnv) tokenFor(t *testing.T, name string) string {
	t.Helper()
	user, ok := e.users[name]
	require.True(t, ok, "no fixture user %q", name)
	token, err := e.auth.GenerateToken(user)
	require.NoError(t, err)
	return token
}

// request performs an HTTP round trip against the router
func (e *testEnv) request(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a recorded JSON response body
func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// placeOrder creates an order through the API and returns its id
func (e *testEnv) placeOrder(t *testing.T, userName string, items []map[string]any) uint {
	t.Helper()
	w := e.request(t, http.MethodPost, "/orders", e.tokenFor(t, userName), gin.H{"items": items})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	order := body["order"].(map[string]any)
	return uint(order["id"].(float64))
}

// orderLine is a convenience constructor for order request items
func orderLine(itemID uint, qty int) map[string]any {
	return map[string]any{"menu_item_id": itemID, "quantity": qty}
}
