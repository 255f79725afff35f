package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-orders-api/config"
	"restaurant-orders-api/logger"
	"restaurant-orders-api/middleware"
	"restaurant-orders-api/models"
	"restaurant-orders-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupRouter wires the full route table against a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	require.NoError(t, config.Load())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled second connection would see a different in-memory database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func createUser(t *testing.T, username string, role models.UserRole) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, config.DB.Create(user).Error)
	return user
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := middleware.GenerateToken(user)
	require.NoError(t, err)
	return token
}

func createRestaurant(t *testing.T, owner *models.User, name string) *models.Restaurant {
	t.Helper()
	restaurant := &models.Restaurant{
		OwnerID:  owner.ID,
		Name:     name,
		IsActive: true,
	}
	require.NoError(t, config.DB.Create(restaurant).Error)
	return restaurant
}

func createMenuItem(t *testing.T, restaurant *models.Restaurant, name string, price float64) *models.MenuItem {
	t.Helper()
	item := &models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         name,
		Price:        price,
		IsAvailable:  true,
	}
	require.NoError(t, config.DB.Create(item).Error)
	return item
}

func createOrder(t *testing.T, restaurant *models.Restaurant, user *models.User, finalTotal, discount float64, items ...models.OrderItem) *models.Order {
	t.Helper()
	order := &models.Order{
		RestaurantID: restaurant.ID,
		Items:        items,
		Discount:     discount,
		FinalTotal:   finalTotal,
		OrderStatus:  models.StatusPlaced,
	}
	if user != nil {
		order.UserID = &user.ID
	}
	require.NoError(t, config.DB.Create(order).Error)
	return order
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	return recorder
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
