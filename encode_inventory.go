package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/etnz/inventory/date"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// baseRecord is the shared part of every record, used for decoding.
type baseRecord struct {
	Type     ItemType        `json:"type"`
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func (r baseRecord) item() baseItem {
	return baseItem{id: r.ID, name: r.Name, price: r.Price, quantity: r.Quantity}
}

// EncodeItem returns the flat JSON record of an item, tagged with its type.
func EncodeItem(item Item) ([]byte, error) {
	data, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to encode item %q: %w", item.ID(), err)
	}
	return data, nil
}

// DecodeItem rebuilds an item from its JSON record. It dispatches on the
// "type" field and returns ErrUnknownType when it is missing or unrecognized.
func DecodeItem(data []byte) (Item, error) {
	var identifier struct {
		Type ItemType `json:"type"`
	}
	if err := json.Unmarshal(data, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify item type in %q: %w", string(data), err)
	}

	var item Item
	switch identifier.Type {
	case TypeElectronic:
		var temp struct {
			baseRecord
			Brand    string `json:"brand"`
			Warranty int    `json:"warranty"`
		}
		if err := json.Unmarshal(data, &temp); err != nil {
			return nil, fmt.Errorf("invalid %s record: %w", identifier.Type, err)
		}
		item = &Electronic{baseItem: temp.item(), Brand: temp.Brand, Warranty: temp.Warranty}
	case TypeFood:
		var temp struct {
			baseRecord
			Expiry date.Date `json:"expiry"`
		}
		if err := json.Unmarshal(data, &temp); err != nil {
			return nil, fmt.Errorf("invalid %s record: %w", identifier.Type, err)
		}
		if temp.Expiry.IsZero() {
			return nil, fmt.Errorf("invalid %s record %q: %w: expiry is missing", identifier.Type, temp.ID, ErrInvalidInput)
		}
		item = &Food{baseItem: temp.item(), Expiry: temp.Expiry}
	case TypeApparel:
		var temp struct {
			baseRecord
			Size   string `json:"size"`
			Fabric string `json:"fabric"`
		}
		if err := json.Unmarshal(data, &temp); err != nil {
			return nil, fmt.Errorf("invalid %s record: %w", identifier.Type, err)
		}
		item = &Apparel{baseItem: temp.item(), Size: temp.Size, Fabric: temp.Fabric}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, identifier.Type)
	}

	if item.ID() == "" {
		return nil, fmt.Errorf("invalid %s record: %w: id is missing", identifier.Type, ErrInvalidInput)
	}
	return item, nil
}

// DecodeItems reads a JSON array of records. It fails only when the content
// is not a JSON array; records that cannot be decoded are skipped.
func DecodeItems(r io.Reader) ([]Item, error) {
	var raws []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raws); err != nil {
		return nil, fmt.Errorf("inventory content is not a JSON array: %w", err)
	}

	items := make([]Item, 0, len(raws))
	for i, raw := range raws {
		item, err := DecodeItem(raw)
		if errors.Is(err, ErrUnknownType) {
			log.Debug().Int("record", i).Err(err).Msg("skipping record")
			continue
		}
		if err != nil {
			log.Warn().Int("record", i).Err(err).Msg("skipping malformed record")
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// EncodeItems writes items as an indented JSON array of records.
func EncodeItems(w io.Writer, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write inventory: %w", err)
	}
	return nil
}
