package search_test

import (
	"os"
	"testing"

	"github.com/flashsell/flashsell/internal/logger"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}

	os.Exit(m.Run())
}
