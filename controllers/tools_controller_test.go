package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techguardpro/techguard-api/models"
	"github.com/techguardpro/techguard-api/services"
)

func toolsRouter(user models.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("current_user", user)
		c.Next()
	})
	router.POST("/api/v1/tools/storage", EstimateStorage)
	router.GET("/api/v1/tools/bandwidth", GetBandwidthTable)
	return router
}

func TestEstimateStorage(t *testing.T) {
	db := setupTestDB(t)
	tech := createUser(t, db, "Ana Tech", "ana", models.RoleTecnico)
	router := toolsRouter(tech)

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedTB     float64
		suggestedTB    int
	}{
		{
			name: "Typical 8 channel installation",
			requestBody: map[string]interface{}{
				"channels": 8, "resolution_mp": 2, "days": 30, "fps": 15,
			},
			expectedStatus: http.StatusOK,
			expectedTB:     4.94,
			suggestedTB:    6,
		},
		{
			name: "Single low-end channel",
			requestBody: map[string]interface{}{
				"channels": 1, "resolution_mp": 1, "days": 7, "fps": 15,
			},
			expectedStatus: http.StatusOK,
			expectedTB:     0.07,
			suggestedTB:    2,
		},
		{
			name: "Missing fps",
			requestBody: map[string]interface{}{
				"channels": 8, "resolution_mp": 2, "days": 30,
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Negative channels",
			requestBody: map[string]interface{}{
				"channels": -8, "resolution_mp": 2, "days": 30, "fps": 15,
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, "POST", "/api/v1/tools/storage", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var response struct {
				Data services.StorageEstimate `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.InDelta(t, tt.expectedTB, response.Data.RequiredTB, 0.01)
			assert.Equal(t, tt.suggestedTB, response.Data.SuggestedTB)
		})
	}
}

func TestGetBandwidthTable(t *testing.T) {
	db := setupTestDB(t)
	tech := createUser(t, db, "Ana Tech", "ana", models.RoleTecnico)
	router := toolsRouter(tech)

	w := doJSON(router, "GET", "/api/v1/tools/bandwidth", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data []services.BandwidthReference `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Data, 3)
}
