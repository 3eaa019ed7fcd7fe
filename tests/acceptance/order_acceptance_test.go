package acceptance

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"github.com/techguardpro/techguard-api/config"
	"github.com/techguardpro/techguard-api/controllers"
	"github.com/techguardpro/techguard-api/middleware"
	"github.com/techguardpro/techguard-api/models"
	"github.com/techguardpro/techguard-api/tests/testutil"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OrderAcceptanceTestSuite exercises the service-order endpoints over a live
// test server, the way the dashboard frontend consumes them.
type OrderAcceptanceTestSuite struct {
	suite.Suite
	server *httptest.Server
	db     *gorm.DB
	token  string
}

// SetupSuite runs once before all tests
func (suite *OrderAcceptanceTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	os.Setenv("GO_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.NoError(err)
	suite.db = db

	suite.NoError(config.Migrate(db))
	suite.NoError(config.Seed(db))
	config.SetDB(db)

	cfg := &config.Config{GoEnv: "test", JWTSecret: testutil.TestJWTSecret}
	config.SetConfig(cfg)

	router := gin.New()
	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", controllers.Login)

		authed := v1.Group("")
		authed.Use(middleware.RequireSession(cfg))
		{
			authed.POST("/orders", controllers.CreateOrder)
			authed.GET("/orders", controllers.ListOrders)
			authed.GET("/orders/alerts", controllers.GetOrderAlerts)
			authed.GET("/orders/:id", controllers.GetOrder)
			authed.PATCH("/orders/:id/status", controllers.UpdateOrderStatus)
			authed.GET("/orders/:id/print", controllers.PrintOrder)
			authed.GET("/dashboard", controllers.GetDashboard)
		}
	}
	suite.server = httptest.NewServer(router)

	// Log in once as a seeded technician; the suite reuses the session
	suite.token = suite.login("ricardo", "123")
}

// TearDownSuite runs once after all tests
func (suite *OrderAcceptanceTestSuite) TearDownSuite() {
	suite.server.Close()
	if suite.db != nil {
		sqlDB, _ := suite.db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
	}
}

func (suite *OrderAcceptanceTestSuite) login(username, password string) string {
	resp := suite.do("POST", "/api/v1/auth/login", "",
		map[string]interface{}{"username": username, "password": password})
	defer resp.Body.Close()
	suite.Equal(http.StatusOK, resp.StatusCode)

	var response struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	suite.NoError(json.NewDecoder(resp.Body).Decode(&response))
	suite.NotEmpty(response.Data.Token)
	return response.Data.Token
}

func (suite *OrderAcceptanceTestSuite) do(method, path, token string, body interface{}) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		suite.NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, suite.server.URL+path, &buf)
	suite.NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	suite.NoError(err)
	return resp
}

// TestSeededOrdersAreServed verifies the starter orders reach a real client
func (suite *OrderAcceptanceTestSuite) TestSeededOrdersAreServed() {
	resp := suite.do("GET", "/api/v1/orders", suite.token, nil)
	defer resp.Body.Close()
	suite.Equal(http.StatusOK, resp.StatusCode)

	var response struct {
		Data []models.ServiceOrder `json:"data"`
	}
	suite.NoError(json.NewDecoder(resp.Body).Decode(&response))
	suite.GreaterOrEqual(len(response.Data), 3)

	codes := make(map[string]bool)
	for _, order := range response.Data {
		codes[order.Code] = true
	}
	suite.True(codes["OS-1001"])
	suite.True(codes["OS-1002"])
	suite.True(codes["OS-1003"])
}

// TestIntakeToPickupFlow walks a device from intake to ready-for-pickup
func (suite *OrderAcceptanceTestSuite) TestIntakeToPickupFlow() {
	resp := suite.do("POST", "/api/v1/orders", suite.token, map[string]interface{}{
		"client_name":       "Padaria Estrela",
		"device_model":      "PC do caixa",
		"issue_description": "Não inicia o sistema.",
		"priority":          "Alta",
		"estimated_cost":    280.0,
	})
	suite.Equal(http.StatusCreated, resp.StatusCode)

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	suite.NoError(json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	code := created.Data.ID

	// Technician finishes the repair
	resp = suite.do("PATCH", "/api/v1/orders/"+code+"/status", suite.token,
		map[string]interface{}{"status": "Pronto"})
	suite.Equal(http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// The dashboard now lists it among the ready orders
	resp = suite.do("GET", "/api/v1/dashboard", suite.token, nil)
	suite.Equal(http.StatusOK, resp.StatusCode)

	var dashboard struct {
		Data struct {
			ReadyOrders []models.ServiceOrder `json:"ready_orders"`
		} `json:"data"`
	}
	suite.NoError(json.NewDecoder(resp.Body).Decode(&dashboard))
	resp.Body.Close()

	found := false
	for _, order := range dashboard.Data.ReadyOrders {
		if order.Code == code {
			found = true
		}
	}
	suite.True(found, "finished order should await pickup on the dashboard")

	// Front desk prints the pickup receipt on the thermal printer
	resp = suite.do("GET", "/api/v1/orders/"+code+"/print?format=80mm", suite.token, nil)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Contains(resp.Header.Get("Content-Type"), "text/html")

	var rendered bytes.Buffer
	_, err := rendered.ReadFrom(resp.Body)
	resp.Body.Close()
	suite.NoError(err)
	suite.Contains(rendered.String(), code)
	suite.Contains(rendered.String(), "Padaria Estrela")
}

// TestAnonymousClientIsTurnedAway verifies a client without a session sees 401s
func (suite *OrderAcceptanceTestSuite) TestAnonymousClientIsTurnedAway() {
	resp := suite.do("GET", "/api/v1/orders", "", nil)
	defer resp.Body.Close()
	suite.Equal(http.StatusUnauthorized, resp.StatusCode)
}

// TestOrderAcceptanceTestSuite runs the test suite
func TestOrderAcceptanceTestSuite(t *testing.T) {
	testutil.MustSetTestEnvironment(t)
	suite.Run(t, new(OrderAcceptanceTestSuite))
}
