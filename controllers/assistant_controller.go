package controllers

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/techguardpro/techguard-api/middleware"
	"github.com/techguardpro/techguard-api/services"
)

// adviceInFlight tracks which operators currently have an advice request
// running. One exchange at a time per session; there is no cancellation.
var adviceInFlight sync.Map

// AdviceRequest represents the request body for an assistant question
type AdviceRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

// GetAdvice handles POST /api/v1/assistant/advice - forwards a free-text
// troubleshooting question to the language model. Failures degrade to fixed
// apologetic strings and never propagate; the HTTP status stays 200.
func GetAdvice(c *gin.Context) {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		respondUnauthorized(c)
		return
	}

	var req AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Prompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Prompt is required",
			},
		})
		return
	}

	// The panel blocks further sends while one exchange is outstanding
	if _, busy := adviceInFlight.LoadOrStore(user.ID, true); busy {
		c.JSON(http.StatusConflict, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ADVICE_IN_FLIGHT",
				"message": "Wait for the current answer before sending another question",
			},
		})
		return
	}
	defer adviceInFlight.Delete(user.ID)

	answer, err := services.GetAdviceService().GetTechnicalAdvice(c.Request.Context(), req.Prompt)
	if err != nil {
		answer = services.FallbackAdviceFailed
	} else if strings.TrimSpace(answer) == "" {
		answer = services.FallbackEmptyAnswer
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"answer": answer,
		},
	})
}
