package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/techguardpro/techguard-api/config"
	"github.com/techguardpro/techguard-api/middleware"
	"github.com/techguardpro/techguard-api/models"
)

// mockPassword is the shared demo password for every seeded account. Real
// authentication is explicitly out of scope for this system.
const mockPassword = "123"

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/v1/auth/login - mock login against the seeded accounts
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Username and password are required",
			},
		})
		return
	}

	// Look up the account; usernames match case-insensitively
	db := config.GetDB()
	var user models.User
	err := db.Where("username = ?", strings.ToLower(req.Username)).First(&user).Error
	if err != nil || req.Password != mockPassword {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_CREDENTIALS",
				"message": "Usuário ou senha incorretos.",
			},
		})
		return
	}

	// Issue the session token the client caches between visits
	token, err := middleware.IssueSessionToken(user, config.GetConfig().JWTSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "TOKEN_ERROR",
				"message": "Failed to create session",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token": token,
			"user":  user,
		},
	})
}

// Me handles GET /api/v1/auth/me - returns the account behind the session token
func Me(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNAUTHORIZED",
				"message": "Could not extract user information",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    user,
	})
}
