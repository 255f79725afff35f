package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"restaurant-orders-api/config"
	"restaurant-orders-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRestaurant(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", models.RoleRestaurant)

	rec := doRequest(t, r, http.MethodPost, "/api/restaurants", tokenFor(t, owner),
		map[string]interface{}{
			"name":    "Spice Route",
			"cuisine": "Indian",
			"address": "12 Curry Lane",
		})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Restaurant
	decodeJSON(t, rec, &created)
	assert.Equal(t, owner.ID, created.OwnerID)
	assert.True(t, created.IsActive)
}

func TestCreateRestaurant_UnknownOwner(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", models.RoleRestaurant)

	rec := doRequest(t, r, http.MethodPost, "/api/restaurants", tokenFor(t, owner),
		map[string]interface{}{"name": "Ghost Kitchen", "owner_id": 999})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOwnerRestaurants(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", models.RoleRestaurant)

	rec := doRequest(t, r, http.MethodGet, "/api/restaurants/owner-restaurants", tokenFor(t, owner), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	createRestaurant(t, owner, "First")
	createRestaurant(t, owner, "Second")

	rec = doRequest(t, r, http.MethodGet, "/api/restaurants/owner-restaurants", tokenFor(t, owner), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var restaurants []models.Restaurant
	decodeJSON(t, rec, &restaurants)
	assert.Len(t, restaurants, 2)
}

func TestUpdateRestaurant_OwnershipEnforced(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", models.RoleRestaurant)
	intruder := createUser(t, "owner2", models.RoleRestaurant)
	restaurant := createRestaurant(t, owner, "Original")

	path := fmt.Sprintf("/api/restaurants/%d", restaurant.ID)
	rec := doRequest(t, r, http.MethodPut, path, tokenFor(t, intruder),
		map[string]interface{}{"name": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, r, http.MethodPut, path, tokenFor(t, owner),
		map[string]interface{}{"name": "Renamed", "owner_id": intruder.ID})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.Restaurant
	require.NoError(t, config.DB.First(&updated, restaurant.ID).Error)
	assert.Equal(t, "Renamed", updated.Name)
	// owner_id is not an updatable field
	assert.Equal(t, owner.ID, updated.OwnerID)
}

func TestDeleteRestaurant(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", models.RoleRestaurant)
	restaurant := createRestaurant(t, owner, "Doomed")

	rec := doRequest(t, r, http.MethodDelete,
		fmt.Sprintf("/api/restaurants/%d", restaurant.ID), tokenFor(t, owner), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	config.DB.Model(&models.Restaurant{}).Count(&count)
	assert.Zero(t, count)
}

func TestMenuItemLifecycle(t *testing.T) {
	r := setupRouter(t)
	owner := createUser(t, "owner1", models.RoleRestaurant)
	intruder := createUser(t, "owner2", models.RoleRestaurant)
	restaurant := createRestaurant(t, owner, "Testaurant")
	token := tokenFor(t, owner)

	base := fmt.Sprintf("/api/restaurants/%d/menu-items", restaurant.ID)
	rec := doRequest(t, r, http.MethodPost, base, token,
		map[string]interface{}{"name": "Margherita", "price": 12.5, "category": "Pizza"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var item models.MenuItem
	decodeJSON(t, rec, &item)
	assert.True(t, item.IsAvailable)

	// Another owner cannot touch this restaurant's menu.
	rec = doRequest(t, r, http.MethodPost, base, tokenFor(t, intruder),
		map[string]interface{}{"name": "Sneaky", "price": 1})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, r, http.MethodGet, base, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []models.MenuItem
	decodeJSON(t, rec, &items)
	assert.Len(t, items, 1)

	itemPath := fmt.Sprintf("/api/menu-items/%d", item.ID)
	rec = doRequest(t, r, http.MethodPut, itemPath, token,
		map[string]interface{}{"price": 14.0, "is_available": false})
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.MenuItem
	require.NoError(t, config.DB.First(&updated, item.ID).Error)
	assert.Equal(t, 14.0, updated.Price)
	assert.False(t, updated.IsAvailable)

	rec = doRequest(t, r, http.MethodDelete, itemPath, tokenFor(t, intruder), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(t, r, http.MethodDelete, itemPath, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var count int64
	config.DB.Model(&models.MenuItem{}).Count(&count)
	assert.Zero(t, count)
}
