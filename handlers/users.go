package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ruban71/Slooze-Food-App/models"
)

// UserHandler serves the admin user directory
type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// List returns all users, optionally filtered by role or country.
// Password hashes never serialize.
func (h *UserHandler) List(c *gin.Context) {
	query := h.DB
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if country := c.Query("country"); country != "" {
		query = query.Where("country = ?", country)
	}

	var users []models.User
	query.Order("created_at asc").Find(&users)
	c.JSON(http.StatusOK, gin.H{"count": len(users), "users": users})
}
