package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techguardpro/techguard-api/config"
	"github.com/techguardpro/techguard-api/middleware"
	"github.com/techguardpro/techguard-api/models"
)

func authRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/v1/auth/login", Login)
	router.GET("/api/v1/auth/me", middleware.RequireSession(config.GetConfig()), Me)
	return router
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	createUser(t, db, "Ricardo Martins", "ricardo", models.RoleTecnico)
	router := authRouter()

	tests := []struct {
		name           string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Login with valid credentials",
			requestBody:    map[string]interface{}{"username": "ricardo", "password": "123"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Username matches case-insensitively",
			requestBody:    map[string]interface{}{"username": "RICARDO", "password": "123"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Wrong password",
			requestBody:    map[string]interface{}{"username": "ricardo", "password": "1234"},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "INVALID_CREDENTIALS",
		},
		{
			name:           "Unknown account",
			requestBody:    map[string]interface{}{"username": "intruso", "password": "123"},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "INVALID_CREDENTIALS",
		},
		{
			name:           "Missing password",
			requestBody:    map[string]interface{}{"username": "ricardo"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, "POST", "/api/v1/auth/login", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

			if tt.expectedError != "" {
				assert.False(t, response["success"].(bool))
				errObj := response["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedError, errObj["code"])
				if tt.expectedError == "INVALID_CREDENTIALS" {
					// The message never says which of the two fields was wrong
					assert.Equal(t, "Usuário ou senha incorretos.", errObj["message"],
						"login errors stay generic")
				}
			} else {
				assert.True(t, response["success"].(bool))
				data := response["data"].(map[string]interface{})
				assert.NotEmpty(t, data["token"])
				user := data["user"].(map[string]interface{})
				assert.Equal(t, "Ricardo Martins", user["name"])
				assert.Equal(t, models.RoleTecnico, user["role"])
			}
		})
	}
}

func TestLoginRoundTripThroughMe(t *testing.T) {
	db := setupTestDB(t)
	createUser(t, db, "Administrador", "admin", models.RoleAdministrador)
	router := authRouter()

	w := doJSON(router, "POST", "/api/v1/auth/login",
		map[string]interface{}{"username": "admin", "password": "123"})
	require.Equal(t, http.StatusOK, w.Code)

	var loginResp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Data.Token)

	w2 := doJSON(router, "GET", "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w2.Code, "me requires a session")

	req, _ := http.NewRequest("GET", "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Data.Token)
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, req)
	require.Equal(t, http.StatusOK, w3.Code)

	var meResp struct {
		Data models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w3.Body.Bytes(), &meResp))
	assert.Equal(t, "admin", meResp.Data.Username)
	assert.Equal(t, models.RoleAdministrador, meResp.Data.Role)
}
