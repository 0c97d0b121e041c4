package shell

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/date"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// session runs a shell over the given input lines and returns its output.
func session(t *testing.T, inv *inventory.Inventory, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	sh := New(inv, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out, "USD")
	require.NoError(t, sh.Run(context.Background()))
	return out.String()
}

func TestAddAndList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.json")
	inv := inventory.Open(path)

	out := session(t, inv,
		"1", "food", "F1", "Whole Milk", "2.5", "10", "2024-01-01",
		"1", "Electronic", "E1", "Laptop", "999.99", "5", "Acme", "2",
		"1", "apparel", "A1", "T-Shirt", "15", "20", "M", "Cotton",
		"3",
		"0",
	)

	assert.Equal(t, 3, strings.Count(out, "✅ Item added and saved."))
	assert.Contains(t, out, "[Food] Whole Milk | Expiry: 2024-01-01 (Expired) | Price: $2.5 | Stock: 10")
	assert.Contains(t, out, "[Electronics] Laptop | Brand: Acme | Warranty: 2yrs | Price: $999.99 | Stock: 5")
	assert.Contains(t, out, "[Apparel] T-Shirt | Size: M | Fabric: Cotton | Price: $15.0 | Stock: 20")
	assert.True(t, strings.HasSuffix(out, "👋 Goodbye!\n"))

	assert.Equal(t, 3, inventory.Open(path).Len(), "items must be persisted")
}

func TestInvalidInputKeepsSession(t *testing.T) {
	inv := inventory.New("")
	out := session(t, inv,
		"1", "food", "F1", "Milk", "cheap",
		"1", "food", "F1", "Milk", "2.5", "ten",
		"1", "food", "F1", "Milk", "2.5", "10", "tomorrow",
		"1", "toy",
		"9",
		"1", "apparel", "A1", "Hat", "12", "1", "S", "Wool",
		"0",
	)
	assert.Contains(t, out, `⚠️ Error: invalid input: "cheap" is not a number`)
	assert.Contains(t, out, `⚠️ Error: invalid input: "ten" is not a whole number`)
	assert.Contains(t, out, "Invalid type.")
	assert.Contains(t, out, "❌ Invalid choice.")
	assert.Equal(t, 1, inv.Len())
	assert.True(t, inv.Has("A1"))
}

func TestSell(t *testing.T) {
	inv := inventory.New("")
	require.NoError(t, inv.AddItem(inventory.NewApparel("A1", "Hat", decimal.NewFromInt(12), 3, "S", "Wool")))

	out := session(t, inv,
		"2", "A1", "2",
		"2", "A1", "5",
		"2", "nope", "1",
		"0",
	)
	assert.Contains(t, out, "✅ Item sold and inventory updated.")
	assert.Contains(t, out, "⚠️ Error: insufficient stock")
	assert.Contains(t, out, `No item with ID "nope", nothing sold.`)
	assert.Equal(t, 1, inv.Get("A1").Quantity())
}

func TestDuplicateID(t *testing.T) {
	inv := inventory.New("")
	out := session(t, inv,
		"1", "apparel", "A1", "Hat", "12", "1", "S", "Wool",
		"1", "apparel", "A1", "Cap", "10", "1", "M", "Cotton",
		"0",
	)
	assert.Contains(t, out, `⚠️ Error: item id already exists: "A1"`)
	assert.Equal(t, "Hat", inv.Get("A1").Name())
}

func TestSearchExpireAndValue(t *testing.T) {
	inv := inventory.New("")
	require.NoError(t, inv.AddItem(inventory.NewFood("F1", "Whole Milk", decimal.RequireFromString("2.5"), 10, date.Today().Add(5))))
	require.NoError(t, inv.AddItem(inventory.NewFood("F2", "Old Bread", decimal.NewFromInt(1), 3, date.Today().Add(-5))))

	out := session(t, inv,
		"4", "MILK",
		"6",
		"5",
		"6",
		"0",
	)
	assert.Contains(t, out, "[Food] Whole Milk |")
	assert.NotContains(t, out, "[Food] Old Bread |")
	assert.Contains(t, out, "💰 Total stock value: $28.00")
	assert.Contains(t, out, "✅ Expired food removed (1).")
	assert.Contains(t, out, "💰 Total stock value: $25.00")
	assert.Equal(t, 1, inv.Len())
}

func TestSearchKeepsSpaces(t *testing.T) {
	inv := inventory.New("")
	require.NoError(t, inv.AddItem(inventory.NewFood("F1", "Whole Milk", decimal.RequireFromString("2.5"), 10, date.Today().Add(5))))
	require.NoError(t, inv.AddItem(inventory.NewFood("F2", "Milkshake", decimal.NewFromInt(4), 2, date.Today().Add(5))))

	out := session(t, inv, "4", " milk", "0")
	assert.Contains(t, out, "[Food] Whole Milk |")
	assert.NotContains(t, out, "[Food] Milkshake |")

	out = session(t, inv, "4", "milk ", "0")
	assert.NotContains(t, out, "[Food] Whole Milk |")
	assert.NotContains(t, out, "[Food] Milkshake |")
}

func TestEndOfInput(t *testing.T) {
	inv := inventory.New("")
	// the input ends in the middle of an add.
	out := session(t, inv, "1", "food", "F1")
	assert.NotContains(t, out, "Error")
	assert.Equal(t, 0, inv.Len())
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sh := New(inventory.New(""), strings.NewReader("3\n"), &bytes.Buffer{}, "USD")
	assert.ErrorIs(t, sh.Run(ctx), context.Canceled)
}
