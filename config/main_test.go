package config

import (
	"fmt"
	"os"
	"testing"
)

// TestMain runs before all tests in the config package.
// It ensures GO_ENV is set to "test" so the suite never touches a real database.
func TestMain(m *testing.M) {
	env := os.Getenv("GO_ENV")
	if env != "test" {
		fmt.Fprintf(os.Stderr, "SAFETY CHECK FAILED: tests must run with GO_ENV=test (current GO_ENV=%q)\n", env)
		os.Exit(1)
	}

	os.Exit(m.Run())
}
