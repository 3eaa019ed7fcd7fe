package testutil

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/techguardpro/techguard-api/config"
	"github.com/techguardpro/techguard-api/middleware"
	"github.com/techguardpro/techguard-api/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestJWTSecret is the signing secret used across the test suites.
const TestJWTSecret = "test-secret"

// SetupTestDB opens a fresh in-memory database with the full schema and
// installs it as the global instance.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
	config.SetConfig(&config.Config{GoEnv: "test", JWTSecret: TestJWTSecret})
	return db
}

// CreateTestUser inserts an operator account for the test to act as.
func CreateTestUser(t *testing.T, db *gorm.DB, name, username, role string) models.User {
	t.Helper()

	user := models.User{Name: name, Username: username, Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// SessionToken issues a signed session token for the given account.
func SessionToken(t *testing.T, user models.User) string {
	t.Helper()

	token, err := middleware.IssueSessionToken(user, TestJWTSecret)
	if err != nil {
		t.Fatalf("Failed to issue session token: %v", err)
	}
	return token
}

// SessionInjector returns a middleware that pins the authenticated account,
// letting handler tests skip token plumbing.
func SessionInjector(user models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("current_user", user)
		c.Next()
	}
}
