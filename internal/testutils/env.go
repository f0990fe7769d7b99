// Package testutils provides common utilities for testing across the application.
// It centralizes repeated test setup and teardown logic to avoid duplication
// and standardize testing practices.
package testutils

import (
	"os"
	"testing"
)

// DatabaseURLEnv names the variable that enables integration tests.
const DatabaseURLEnv = "DATABASE_URL"

// IsIntegrationTestEnvironment returns true if the environment is configured
// for running integration tests with a database connection.
// Integration tests should check this and skip if not in an integration test environment.
func IsIntegrationTestEnvironment() bool {
	return os.Getenv(DatabaseURLEnv) != ""
}

// SkipIfNoDatabase skips the test unless DATABASE_URL is set.
func SkipIfNoDatabase(t *testing.T) {
	t.Helper()
	if !IsIntegrationTestEnvironment() {
		t.Skipf("%s not set; skipping integration test", DatabaseURLEnv)
	}
}

// GetTestDatabaseURL returns the database URL for integration tests,
// failing the test when DATABASE_URL is not set.
func GetTestDatabaseURL(t *testing.T) string {
	t.Helper()
	dbURL := os.Getenv(DatabaseURLEnv)
	if dbURL == "" {
		t.Fatalf("%s environment variable is required for this test", DatabaseURLEnv)
	}
	return dbURL
}
