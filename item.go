package inventory

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ItemType is the "type" discriminator of a record.
type ItemType string

// Item types, as written in the inventory file.
const (
	TypeElectronic ItemType = "Electronic"
	TypeFood       ItemType = "Food"
	TypeApparel    ItemType = "Apparel"
)

// ItemTypes lists every known item type.
var ItemTypes = []ItemType{TypeElectronic, TypeFood, TypeApparel}

// ParseItemType returns the ItemType matching s, ignoring case.
func ParseItemType(s string) (ItemType, error) {
	for _, t := range ItemTypes {
		if strings.EqualFold(s, string(t)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w %q, want one of %v", ErrUnknownType, s, ItemTypes)
}

// Item is a stocked product. The set of implementations is closed: Electronic,
// Food and Apparel.
type Item interface {
	Kind() ItemType // Kind returns the record discriminator.
	ID() string
	Name() string
	Price() decimal.Decimal
	Quantity() int

	// Restock adds amount to the quantity.
	Restock(amount int) error
	// Sell removes amount from the quantity, it fails with ErrInsufficientStock
	// if there is not enough stock.
	Sell(amount int) error
	// StockValue is price × quantity.
	StockValue() decimal.Decimal
	// Describe returns a single human-readable line.
	Describe() string

	shared() *baseItem
}

// baseItem holds the fields and the stock operations common to every item.
type baseItem struct {
	id       string
	name     string
	price    decimal.Decimal
	quantity int
}

func (b *baseItem) ID() string             { return b.id }
func (b *baseItem) Name() string           { return b.name }
func (b *baseItem) Price() decimal.Decimal { return b.price }
func (b *baseItem) Quantity() int          { return b.quantity }
func (b *baseItem) shared() *baseItem      { return b }

// Restock adds amount to the quantity. A negative amount is rejected.
func (b *baseItem) Restock(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: cannot restock %q by a negative amount %d", ErrInvalidInput, b.id, amount)
	}
	b.quantity += amount
	return nil
}

// Sell removes amount from the quantity. The quantity is left unchanged on error.
func (b *baseItem) Sell(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: cannot sell a negative amount %d of %q", ErrInvalidInput, amount, b.id)
	}
	if amount > b.quantity {
		return fmt.Errorf("%w: cannot sell %d of %q, only %d in stock", ErrInsufficientStock, amount, b.id, b.quantity)
	}
	b.quantity -= amount
	return nil
}

// StockValue returns price × quantity.
func (b *baseItem) StockValue() decimal.Decimal {
	return b.price.Mul(decimal.NewFromInt(int64(b.quantity)))
}

// validate checks the invariants the inventory enforces on insertion.
func (b *baseItem) validate() error {
	if b.id == "" {
		return fmt.Errorf("%w: item id is missing", ErrInvalidInput)
	}
	if b.price.IsNegative() {
		return fmt.Errorf("%w: price of %q must not be negative, got %s", ErrInvalidInput, b.id, b.price)
	}
	if b.quantity < 0 {
		return fmt.Errorf("%w: quantity of %q must not be negative, got %d", ErrInvalidInput, b.id, b.quantity)
	}
	return nil
}

// tail is the end of every description.
func (b *baseItem) tail() string {
	return fmt.Sprintf("Price: $%s | Stock: %d", priceText(b.price), b.quantity)
}

// priceText is the shortest exact text of p with at least one fractional
// digit: 2.5, 999.99, 15.0.
func priceText(p decimal.Decimal) string {
	s := p.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// writeTo appends the shared fields, in file order, after the type.
func (b *baseItem) writeTo(w *recordWriter, kind ItemType) {
	w.Field("type", kind)
	w.Field("id", b.id)
	w.Field("name", b.name)
	w.Field("price", json.RawMessage(priceText(b.price)))
	w.Field("quantity", b.quantity)
}
