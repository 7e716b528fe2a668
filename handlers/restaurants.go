package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ruban71/Slooze-Food-App/middleware"
	"github.com/ruban71/Slooze-Food-App/models"
)

// RestaurantHandler serves the country-scoped catalog
type RestaurantHandler struct {
	DB *gorm.DB
}

func NewRestaurantHandler(db *gorm.DB) *RestaurantHandler {
	return &RestaurantHandler{DB: db}
}

type CreateRestaurantRequest struct {
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Country     models.Country `json:"country" binding:"required"`
}

type UpdateRestaurantRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// List returns restaurants visible to the caller, menu included.
// ADMIN sees all countries; everyone else only their own.
func (h *RestaurantHandler) List(c *gin.Context) {
	decision := middleware.GetDecision(c)

	query := h.DB.Preload("MenuItems")
	if decision.Country != nil {
		query = query.Where("country = ?", *decision.Country)
	}

	var restaurants []models.Restaurant
	query.Order("created_at desc").Find(&restaurants)
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// Get returns a single restaurant with its menu. The country scope
// applies here too: an out-of-country id looks exactly like a missing
// one.
func (h *RestaurantHandler) Get(c *gin.Context) {
	decision := middleware.GetDecision(c)

	query := h.DB.Preload("MenuItems")
	if decision.Country != nil {
		query = query.Where("country = ?", *decision.Country)
	}

	var restaurant models.Restaurant
	if err := query.First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// Create persists a new restaurant. A MANAGER's own country replaces
// whatever country the client supplied, so cross-country creation is
// impossible even with a forged payload.
func (h *RestaurantHandler) Create(c *gin.Context) {
	decision := middleware.GetDecision(c)

	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if decision.ForceCountry != nil {
		req.Country = *decision.ForceCountry
	}
	if !models.ValidCountry(req.Country) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid country. Must be: INDIA or AMERICA"})
		return
	}

	restaurant := models.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Country:     req.Country,
		MenuItems:   []models.MenuItem{},
	}
	if err := h.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Restaurant created", "restaurant": restaurant})
}

// Update mutates name/description/image. Country is not updatable and
// there is no country check beyond the role gate.
func (h *RestaurantHandler) Update(c *gin.Context) {
	var restaurant models.Restaurant
	if err := h.DB.First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := map[string]interface{}{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Image != nil {
		update["image"] = *req.Image
	}
	if err := h.DB.Model(&restaurant).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
		return
	}

	h.DB.Preload("MenuItems").First(&restaurant, restaurant.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated", "restaurant": restaurant})
}

// Delete removes a restaurant and its menu items in one transaction
func (h *RestaurantHandler) Delete(c *gin.Context) {
	var restaurant models.Restaurant
	if err := h.DB.First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&restaurant).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete restaurant"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted"})
}

// ── Menu Management ─────────────────────────────────────────────────────────

type CreateMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// AddMenuItem adds an item to a restaurant's menu
func (h *RestaurantHandler) AddMenuItem(c *gin.Context) {
	var restaurant models.Restaurant
	if err := h.DB.First(&restaurant, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item := models.MenuItem{
		RestaurantID: restaurant.ID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
	}
	if err := h.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// UpdateMenuItem mutates a menu item belonging to the given restaurant
func (h *RestaurantHandler) UpdateMenuItem(c *gin.Context) {
	item, ok := h.findMenuItem(c)
	if !ok {
		return
	}

	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price != nil && *req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price must be non-negative"})
		return
	}

	update := map[string]interface{}{}
	if req.Name != nil {
		update["name"] = *req.Name
	}
	if req.Description != nil {
		update["description"] = *req.Description
	}
	if req.Price != nil {
		update["price"] = *req.Price
	}
	if err := h.DB.Model(item).Updates(update).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem removes a menu item
func (h *RestaurantHandler) DeleteMenuItem(c *gin.Context) {
	item, ok := h.findMenuItem(c)
	if !ok {
		return
	}
	if err := h.DB.Delete(item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

func (h *RestaurantHandler) findMenuItem(c *gin.Context) (*models.MenuItem, bool) {
	var item models.MenuItem
	err := h.DB.Where("restaurant_id = ?", c.Param("id")).
		First(&item, "id = ?", c.Param("itemId")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu item"})
		}
		return nil, false
	}
	return &item, true
}
