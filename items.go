package inventory

import (
	"fmt"

	"github.com/etnz/inventory/date"
	"github.com/shopspring/decimal"
)

// Electronic is a device sold with a warranty.
type Electronic struct {
	baseItem
	Brand    string
	Warranty int // Warranty is expressed in years.
}

// NewElectronic creates a new Electronic item.
func NewElectronic(id, name string, price decimal.Decimal, quantity int, brand string, warranty int) *Electronic {
	return &Electronic{
		baseItem: baseItem{id: id, name: name, price: price, quantity: quantity},
		Brand:    brand,
		Warranty: warranty,
	}
}

func (*Electronic) Kind() ItemType { return TypeElectronic }

func (e *Electronic) Describe() string {
	return fmt.Sprintf("[Electronics] %s | Brand: %s | Warranty: %dyrs | %s", e.name, e.Brand, e.Warranty, e.tail())
}

// MarshalJSON implements the json.Marshaler interface for Electronic.
func (e *Electronic) MarshalJSON() ([]byte, error) {
	var w recordWriter
	e.writeTo(&w, TypeElectronic)
	w.Field("brand", e.Brand)
	w.Field("warranty", e.Warranty)
	return w.MarshalJSON()
}

// Food is a perishable item.
type Food struct {
	baseItem
	Expiry date.Date
}

// NewFood creates a new Food item.
func NewFood(id, name string, price decimal.Decimal, quantity int, expiry date.Date) *Food {
	return &Food{
		baseItem: baseItem{id: id, name: name, price: price, quantity: quantity},
		Expiry:   expiry,
	}
}

func (*Food) Kind() ItemType { return TypeFood }

// IsExpired reports whether the expiry date is strictly before today.
func (f *Food) IsExpired() bool { return f.IsExpiredOn(date.Today()) }

// IsExpiredOn reports whether the expiry date is strictly before day.
func (f *Food) IsExpiredOn(day date.Date) bool { return f.Expiry.Before(day) }

func (f *Food) Describe() string {
	status := "Fresh"
	if f.IsExpired() {
		status = "Expired"
	}
	return fmt.Sprintf("[Food] %s | Expiry: %s (%s) | %s", f.name, f.Expiry, status, f.tail())
}

// MarshalJSON implements the json.Marshaler interface for Food.
func (f *Food) MarshalJSON() ([]byte, error) {
	var w recordWriter
	f.writeTo(&w, TypeFood)
	w.Field("expiry", f.Expiry)
	return w.MarshalJSON()
}

// Apparel is a piece of clothing.
type Apparel struct {
	baseItem
	Size   string
	Fabric string
}

// NewApparel creates a new Apparel item.
func NewApparel(id, name string, price decimal.Decimal, quantity int, size, fabric string) *Apparel {
	return &Apparel{
		baseItem: baseItem{id: id, name: name, price: price, quantity: quantity},
		Size:     size,
		Fabric:   fabric,
	}
}

func (*Apparel) Kind() ItemType { return TypeApparel }

func (a *Apparel) Describe() string {
	return fmt.Sprintf("[Apparel] %s | Size: %s | Fabric: %s | %s", a.name, a.Size, a.Fabric, a.tail())
}

// MarshalJSON implements the json.Marshaler interface for Apparel.
func (a *Apparel) MarshalJSON() ([]byte, error) {
	var w recordWriter
	a.writeTo(&w, TypeApparel)
	w.Field("size", a.Size)
	w.Field("fabric", a.Fabric)
	return w.MarshalJSON()
}

// check that every item is a valid Item.
var (
	_ Item = (*Electronic)(nil)
	_ Item = (*Food)(nil)
	_ Item = (*Apparel)(nil)
)
