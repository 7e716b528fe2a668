package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ruban71/Slooze-Food-App/middleware"
	"github.com/ruban71/Slooze-Food-App/models"
)

// PaymentHandler serves stored payment profile CRUD. Every route is
// admin gated; profiles are owned by the calling admin.
type PaymentHandler struct {
	DB *gorm.DB
}

func NewPaymentHandler(db *gorm.DB) *PaymentHandler {
	return &PaymentHandler{DB: db}
}

type CreatePaymentRequest struct {
	Method      models.PaymentMethod `json:"method" binding:"required"`
	LastFour    string               `json:"last_four"`
	UpiID       string               `json:"upi_id"`
	PaypalEmail string               `json:"paypal_email"`
	IsDefault   bool                 `json:"is_default"`
}

type UpdatePaymentRequest struct {
	LastFour    *string `json:"last_four"`
	UpiID       *string `json:"upi_id"`
	PaypalEmail *string `json:"paypal_email"`
	IsDefault   *bool   `json:"is_default"`
}

// requiredFieldError reports the method-specific field that is missing,
// or "" when the payload is complete. Fields irrelevant to the method
// are persisted as sent.
func requiredFieldError(method models.PaymentMethod, lastFour, upiID, paypalEmail string) string {
	switch method {
	case models.MethodCreditCard, models.MethodDebitCard:
		if lastFour == "" {
			return "last_four is required for card payment methods"
		}
	case models.MethodUPI:
		if upiID == "" {
			return "upi_id is required for UPI"
		}
	case models.MethodPaypal:
		if paypalEmail == "" {
			return "paypal_email is required for PAYPAL"
		}
	}
	return ""
}

// clearDefaults unsets IsDefault on all of the owner's profiles other
// than excludeID. Callers run it inside the same transaction that sets
// the new default, so two racing calls cannot both end up default.
func clearDefaults(tx *gorm.DB, ownerID, excludeID uint) error {
	return tx.Model(&models.PaymentProfile{}).
		Where("user_id = ? AND id <> ?", ownerID, excludeID).
		Update("is_default", false).Error
}

// Create stores a new payment profile for the caller
func (h *PaymentHandler) Create(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidPaymentMethod(req.Method) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid method. Must be: CREDIT_CARD, DEBIT_CARD, UPI or PAYPAL"})
		return
	}
	if msg := requiredFieldError(req.Method, req.LastFour, req.UpiID, req.PaypalEmail); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	profile := models.PaymentProfile{
		Method:      req.Method,
		LastFour:    req.LastFour,
		UpiID:       req.UpiID,
		PaypalEmail: req.PaypalEmail,
		IsDefault:   req.IsDefault,
		UserID:      ownerID,
	}
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault {
			if err := clearDefaults(tx, ownerID, 0); err != nil {
				return err
			}
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment profile"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Payment profile created", "payment": profile})
}

// List returns every stored profile, defaults first
func (h *PaymentHandler) List(c *gin.Context) {
	var profiles []models.PaymentProfile
	h.DB.Order("is_default desc, created_at desc").Find(&profiles)
	c.JSON(http.StatusOK, gin.H{"count": len(profiles), "payments": profiles})
}

// Get returns a single profile by id
func (h *PaymentHandler) Get(c *gin.Context) {
	var profile models.PaymentProfile
	if err := h.DB.First(&profile, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"payment": profile})
}

// Update mutates a profile; setting is_default clears the owner's
// other defaults in the same transaction
func (h *PaymentHandler) Update(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var profile models.PaymentProfile
	if err := h.DB.First(&profile, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment profile not found"})
		return
	}

	var req UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := map[string]interface{}{}
	if req.LastFour != nil {
		update["last_four"] = *req.LastFour
	}
	if req.UpiID != nil {
		update["upi_id"] = *req.UpiID
	}
	if req.PaypalEmail != nil {
		update["paypal_email"] = *req.PaypalEmail
	}
	if req.IsDefault != nil {
		update["is_default"] = *req.IsDefault
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if req.IsDefault != nil && *req.IsDefault {
			if err := clearDefaults(tx, ownerID, profile.ID); err != nil {
				return err
			}
		}
		return tx.Model(&profile).Updates(update).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment profile updated", "payment": profile})
}

// SetDefault makes this profile the owner's single default
func (h *PaymentHandler) SetDefault(c *gin.Context) {
	ownerID := middleware.GetUserID(c)

	var profile models.PaymentProfile
	if err := h.DB.First(&profile, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment profile not found"})
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := clearDefaults(tx, ownerID, profile.ID); err != nil {
			return err
		}
		return tx.Model(&profile).Update("is_default", true).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set default payment profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Default payment profile set", "payment": profile})
}

// Delete removes a profile unconditionally. Deleting the default does
// not elect a new one; the owner may be left with zero defaults.
func (h *PaymentHandler) Delete(c *gin.Context) {
	var profile models.PaymentProfile
	if err := h.DB.First(&profile, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment profile not found"})
		return
	}
	if err := h.DB.Delete(&profile).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment profile"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment profile deleted"})
}
