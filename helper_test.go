package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/inventory/date"
	"github.com/shopspring/decimal"
)

// P is a helper for test to create a price from a const.
func P(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// daysFromToday returns today shifted by n days.
func daysFromToday(n int) date.Date { return date.Today().Add(n) }

// tempInventoryFile writes content to a fresh inventory file and returns its path.
func tempInventoryFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.json")
	if content == "" {
		return path
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
