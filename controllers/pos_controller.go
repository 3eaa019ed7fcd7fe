package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/techguardpro/techguard-api/config"
	"github.com/techguardpro/techguard-api/middleware"
	"github.com/techguardpro/techguard-api/models"
	"github.com/techguardpro/techguard-api/utils"
	"gorm.io/gorm"
)

// AddCartItemRequest represents the request body for adding a cart line:
// either a catalog product id, or a manual name+price pair for ad hoc services.
type AddCartItemRequest struct {
	ProductID string   `json:"product_id"`
	Name      string   `json:"name"`
	Price     *float64 `json:"price"`
}

// UpdateCartItemRequest adjusts a line's quantity by a delta (±1 from the UI).
type UpdateCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// CheckoutRequest represents the request body for finalizing a sale
type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// ListProducts handles GET /api/v1/products - the PDV catalog with optional
// name search and category filter.
func ListProducts(c *gin.Context) {
	db := config.GetDB()

	query := db.Model(&models.Product{})
	if search := c.Query("search"); search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if category := c.Query("category"); category != "" && category != "Todos" {
		query = query.Where("category = ?", category)
	}

	var products []models.Product
	if err := query.Order("id").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to list products",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    products,
	})
}

// GetCart handles GET /api/v1/pos/cart - the operator's open cart and totals
func GetCart(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	items, total, err := loadCart(config.GetDB(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load cart",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": items,
			"total": total,
		},
	})
}

// AddCartItem handles POST /api/v1/pos/cart/items. A catalog line for a
// product already in the cart bumps its quantity instead of duplicating the
// line; manual lines are always appended.
func AddCartItem(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
			},
		})
		return
	}

	db := config.GetDB()

	var item models.CartItem
	switch {
	case req.ProductID != "":
		// Catalog line
		var product models.Product
		if err := db.First(&product, "id = ?", req.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "PRODUCT_NOT_FOUND",
					"message": "Product not found in catalog",
				},
			})
			return
		}

		// Same product already in the cart: bump quantity
		var existing models.CartItem
		err := db.Where("user_id = ? AND product_id = ?", user.ID, product.ID).First(&existing).Error
		if err == nil {
			existing.Quantity++
			if err := db.Save(&existing).Error; err != nil {
				respondDatabaseError(c, "Failed to update cart")
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "data": existing})
			return
		}

		item = models.CartItem{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			ProductID: &product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  1,
		}

	case strings.TrimSpace(req.Name) != "" && req.Price != nil && *req.Price > 0:
		// Manual line: ad hoc item or service
		item = models.CartItem{
			ID:        uuid.NewString(),
			UserID:    user.ID,
			Name:      req.Name,
			UnitPrice: *req.Price,
			Quantity:  1,
			Manual:    true,
		}

	default:
		// Manual lines need both fields; the form blocks submission otherwise
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Provide a product_id, or a name and positive price",
			},
		})
		return
	}

	if err := db.Create(&item).Error; err != nil {
		respondDatabaseError(c, "Failed to add cart item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    item,
	})
}

// UpdateCartItemQuantity handles PATCH /api/v1/pos/cart/items/:id - adjusts a
// line's quantity by a delta, never below one.
func UpdateCartItemQuantity(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Delta is required and must be non-zero",
			},
		})
		return
	}

	db := config.GetDB()
	var item models.CartItem
	if err := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).First(&item).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CART_ITEM_NOT_FOUND",
				"message": "Cart item not found",
			},
		})
		return
	}

	item.Quantity += req.Delta
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	if err := db.Save(&item).Error; err != nil {
		respondDatabaseError(c, "Failed to update cart item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    item,
	})
}

// RemoveCartItem handles DELETE /api/v1/pos/cart/items/:id
func RemoveCartItem(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	db := config.GetDB()
	result := db.Where("id = ? AND user_id = ?", c.Param("id"), user.ID).Delete(&models.CartItem{})
	if result.Error != nil {
		respondDatabaseError(c, "Failed to remove cart item")
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "CART_ITEM_NOT_FOUND",
				"message": "Cart item not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart item removed",
	})
}

// Checkout handles POST /api/v1/pos/checkout - snapshots the cart into a
// sale and empties it. An empty cart cannot be finalized.
func Checkout(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || !models.IsValidPaymentMethod(req.PaymentMethod) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Payment method must be Cartão, Dinheiro or PIX",
			},
		})
		return
	}

	db := config.GetDB()
	items, total, err := loadCart(db, user.ID)
	if err != nil {
		respondDatabaseError(c, "Failed to load cart")
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EMPTY_CART",
				"message": "Cannot finalize an empty cart",
			},
		})
		return
	}

	sale := models.Sale{
		Total:         total,
		PaymentMethod: req.PaymentMethod,
		Operator:      user.Name,
	}
	for _, line := range items {
		sale.Items = append(sale.Items, models.SaleItem{
			ID:        uuid.NewString(),
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
		})
	}

	// Persist the sale under a fresh code and clear the cart in one
	// transaction, so a failed checkout leaves the cart untouched
	err = db.Transaction(func(tx *gorm.DB) error {
		for i := 0; i < codeGenerationAttempts; i++ {
			sale.Code = utils.GenerateCode(utils.SaleCodePrefix)

			var existing int64
			if err := tx.Model(&models.Sale{}).Where("code = ?", sale.Code).Count(&existing).Error; err != nil {
				return err
			}
			if existing == 0 {
				break
			}
		}
		if err := tx.Create(&sale).Error; err != nil {
			return err
		}
		return tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		respondDatabaseError(c, "Failed to finalize sale")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    sale,
	})
}

// ListSales handles GET /api/v1/sales - finalized sales, newest first
func ListSales(c *gin.Context) {
	db := config.GetDB()

	var sales []models.Sale
	if err := db.Preload("Items").Order("id DESC").Find(&sales).Error; err != nil {
		respondDatabaseError(c, "Failed to list sales")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sales,
	})
}

// loadCart returns the operator's cart lines (oldest first) and their total.
func loadCart(db *gorm.DB, userID uint) ([]models.CartItem, float64, error) {
	var items []models.CartItem
	if err := db.Where("user_id = ?", userID).Order("created_at").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	var total float64
	for _, item := range items {
		total += item.Subtotal()
	}
	return items, total, nil
}

func respondUnauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": "Could not extract user information",
		},
	})
}

func respondDatabaseError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "DATABASE_ERROR",
			"message": message,
		},
	})
}
