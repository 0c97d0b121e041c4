package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/etnz/inventory/date"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Inventory holds items keyed by id and persists them to its file after
// every mutation. Iteration follows insertion order.
type Inventory struct {
	path  string
	items map[string]Item
	order []string
}

// New returns an empty inventory bound to path, without reading it.
// An empty path gives an in-memory inventory that never writes.
func New(path string) *Inventory {
	return &Inventory{path: path, items: make(map[string]Item)}
}

// Open returns the inventory stored at path. A missing or corrupted file is
// not an error, it gives an empty inventory.
func Open(path string) *Inventory {
	inv := New(path)
	inv.load()
	return inv
}

// Path returns the backing file path.
func (inv *Inventory) Path() string { return inv.path }

// Len returns the number of items.
func (inv *Inventory) Len() int { return len(inv.order) }

// Has reports whether an item with this id exists.
func (inv *Inventory) Has(id string) bool {
	_, ok := inv.items[id]
	return ok
}

// Get returns the item with this id, or nil.
func (inv *Inventory) Get(id string) Item { return inv.items[id] }

// Items iterates over the items in insertion order.
func (inv *Inventory) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, id := range inv.order {
			if !yield(inv.items[id]) {
				return
			}
		}
	}
}

// put inserts or replaces an item. A replaced item keeps its position.
func (inv *Inventory) put(item Item) {
	if _, exists := inv.items[item.ID()]; !exists {
		inv.order = append(inv.order, item.ID())
	}
	inv.items[item.ID()] = item
}

func (inv *Inventory) load() {
	if inv.path == "" {
		return
	}
	f, err := os.Open(inv.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info().Str("file", inv.path).Msg("inventory file does not exist, starting with an empty inventory")
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("file", inv.path).Msg("cannot read inventory file, starting with an empty inventory")
		return
	}
	defer f.Close()

	items, err := DecodeItems(f)
	if err != nil {
		log.Warn().Err(err).Str("file", inv.path).Msg("corrupted inventory file, starting with an empty inventory")
		return
	}
	// later records win over earlier ones with the same id.
	for _, item := range items {
		inv.put(item)
	}
	log.Debug().Str("file", inv.path).Int("items", inv.Len()).Msg("inventory loaded")
}

// Save rewrites the whole backing file.
func (inv *Inventory) Save() error {
	if inv.path == "" {
		return nil
	}
	f, err := os.Create(inv.path)
	if err != nil {
		return fmt.Errorf("error opening inventory file %q for writing: %w", inv.path, err)
	}
	defer f.Close()

	if err := EncodeItems(f, inv.list()); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("error closing inventory file %q: %w", inv.path, err)
	}
	log.Debug().Str("file", inv.path).Int("items", inv.Len()).Msg("inventory saved")
	return nil
}

func (inv *Inventory) list() []Item {
	items := make([]Item, 0, len(inv.order))
	for item := range inv.Items() {
		items = append(items, item)
	}
	return items
}

// AddItem inserts a new item and saves. It fails with ErrDuplicateID when
// the id is already used, leaving the inventory unchanged.
//
// Every mutation is undone in memory when the save fails, so the inventory
// always matches the last content written.
func (inv *Inventory) AddItem(item Item) error {
	if inv.Has(item.ID()) {
		return fmt.Errorf("%w: %q", ErrDuplicateID, item.ID())
	}
	if err := item.shared().validate(); err != nil {
		return err
	}
	inv.put(item)
	if err := inv.Save(); err != nil {
		delete(inv.items, item.ID())
		inv.order = inv.order[:len(inv.order)-1]
		return err
	}
	return nil
}

// SellItem sells qty units of the item with this id and saves.
// An unknown id is silently ignored.
func (inv *Inventory) SellItem(id string, qty int) error {
	item, ok := inv.items[id]
	if !ok {
		return nil
	}
	if err := item.Sell(qty); err != nil {
		return err
	}
	if err := inv.Save(); err != nil {
		item.shared().quantity += qty
		return err
	}
	return nil
}

// RestockItem adds qty units to the item with this id and saves.
// An unknown id is silently ignored.
func (inv *Inventory) RestockItem(id string, qty int) error {
	item, ok := inv.items[id]
	if !ok {
		return nil
	}
	if err := item.Restock(qty); err != nil {
		return err
	}
	if err := inv.Save(); err != nil {
		item.shared().quantity -= qty
		return err
	}
	return nil
}

// RemoveExpired removes every expired Food item and saves, even when nothing
// was removed. It returns the number of removed items.
func (inv *Inventory) RemoveExpired() (int, error) {
	items, order := maps.Clone(inv.items), slices.Clone(inv.order)
	removed := inv.removeExpiredOn(date.Today())
	if err := inv.Save(); err != nil {
		inv.items, inv.order = items, order
		return 0, err
	}
	return removed, nil
}

func (inv *Inventory) removeExpiredOn(day date.Date) int {
	kept := inv.order[:0]
	removed := 0
	for _, id := range inv.order {
		if food, ok := inv.items[id].(*Food); ok && food.IsExpiredOn(day) {
			delete(inv.items, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	inv.order = kept
	return removed
}

// TotalValue returns the sum of every item's stock value.
func (inv *Inventory) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for item := range inv.Items() {
		total = total.Add(item.StockValue())
	}
	return total
}

// Search returns the items whose name contains term, ignoring case.
func (inv *Inventory) Search(term string) []Item {
	fold := cases.Fold()
	needle := fold.String(term)
	var found []Item
	for item := range inv.Items() {
		if strings.Contains(fold.String(item.Name()), needle) {
			found = append(found, item)
		}
	}
	return found
}

// SearchByName returns the descriptions of the items whose name contains
// term, ignoring case.
func (inv *Inventory) SearchByName(term string) []string {
	return describe(inv.Search(term))
}

// ListAll returns the description of every item.
func (inv *Inventory) ListAll() []string {
	return describe(inv.list())
}

func describe(items []Item) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, item.Describe())
	}
	return lines
}
