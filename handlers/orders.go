package handlers

import (
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ruban71/Slooze-Food-App/middleware"
	"github.com/ruban71/Slooze-Food-App/models"
	"github.com/ruban71/Slooze-Food-App/statemachine"
)

// OrderHandler serves order creation and lifecycle management
type OrderHandler struct {
	DB *gorm.DB
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{DB: db}
}

type CreateOrderRequest struct {
	Items []struct {
		MenuItemID uint `json:"menu_item_id" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1,dive"`
}

type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// round2 rounds to currency precision
func round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Create places a new order owned by the caller. The total is always
// computed server side from live menu prices; unknown menu item ids
// contribute zero to the total rather than failing the order.
func (h *OrderHandler) Create(c *gin.Context) {
	userID := middleware.GetUserID(c)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ids := make([]uint, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.MenuItemID)
	}

	// A failed lookup must not be mistaken for "no such items": that
	// would price every line at zero
	var menuItems []models.MenuItem
	if err := h.DB.Where("id IN ?", ids).Find(&menuItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menu items"})
		return
	}
	priceByID := make(map[uint]float64, len(menuItems))
	for _, mi := range menuItems {
		priceByID[mi.ID] = mi.Price
	}

	var total float64
	orderItems := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		total += priceByID[item.MenuItemID] * float64(item.Quantity)
		orderItems = append(orderItems, models.OrderItem{
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		})
	}

	order := models.Order{
		Status:      models.StatusPending,
		TotalAmount: round2(total),
		UserID:      userID,
		Items:       orderItems,
	}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		history := models.OrderStatusHistory{
			OrderID:   order.ID,
			ToStatus:  models.StatusPending,
			ChangedBy: userID,
			Note:      "Order placed",
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	h.DB.Preload("Items.MenuItem").Preload("User").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
}

// List returns orders visible to the caller, newest first:
// ADMIN all orders, MANAGER every order placed in their country,
// MEMBER only their own.
func (h *OrderHandler) List(c *gin.Context) {
	claims := middleware.GetClaims(c)
	decision := middleware.GetDecision(c)

	query := h.DB.Preload("Items.MenuItem").Preload("User")
	if decision.OwnerOnly {
		query = query.Where("orders.user_id = ?", claims.UserID)
	} else if decision.Country != nil {
		query = query.Joins("JOIN users ON users.id = orders.user_id").
			Where("users.country = ?", *decision.Country)
	}

	var orders []models.Order
	query.Order("orders.created_at desc").Find(&orders)
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// Get returns a single order by id. Lookup is deliberately unscoped:
// any authenticated caller who knows an id can read the order.
func (h *OrderHandler) Get(c *gin.Context) {
	var order models.Order
	err := h.DB.Preload("Items.MenuItem").Preload("User").Preload("StatusHistory").
		First(&order, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// Cancel moves an order to CANCELLED, subject to the state machine
func (h *OrderHandler) Cancel(c *gin.Context) {
	h.transition(c, models.StatusCancelled, "Order cancelled")
}

// UpdateStatus moves an order to an arbitrary status, subject to the
// state machine
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Must be: PENDING, CONFIRMED, DELIVERED or CANCELLED"})
		return
	}
	h.transition(c, req.Status, "Status updated")
}

func (h *OrderHandler) transition(c *gin.Context, to models.OrderStatus, note string) {
	claims := middleware.GetClaims(c)

	var order models.Order
	if err := h.DB.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := statemachine.CanTransition(order.Status, to); err != nil {
		if errors.Is(err, statemachine.ErrInvalidTransition) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":         "Cannot update order status",
				"reason":        err.Error(),
				"current_state": order.Status,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	prevStatus := order.Status
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Update("status", to).Error; err != nil {
			return err
		}
		history := models.OrderStatusHistory{
			OrderID:    order.ID,
			FromStatus: prevStatus,
			ToStatus:   to,
			ChangedBy:  claims.UserID,
			Note:       note,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	h.DB.Preload("Items.MenuItem").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{
		"message":         note,
		"previous_status": prevStatus,
		"order":           order,
	})
}

// StateMachineInfo returns the full transition table for documentation
func (h *OrderHandler) StateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   statemachine.GetAllTransitions(),
		"initial_state":   models.StatusPending,
		"terminal_states": []models.OrderStatus{models.StatusDelivered, models.StatusCancelled},
	})
}
