package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/date"
	"github.com/google/subcommands"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type addCmd struct {
	kind     string
	id       string
	name     string
	price    string
	qty      int
	brand    string
	warranty int
	expiry   string
	size     string
	fabric   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a new item to the inventory" }
func (*addCmd) Usage() string {
	return `add -type <electronic|food|apparel> -name <name> -price <price> -qty <quantity> [options]

  Adds a new item to the inventory file:
  - electronic items take -brand and -warranty (years).
  - food items take -expiry (YYYY-MM-DD, or +N for N days from today), it is required.
  - apparel items take -size and -fabric.

  When -id is omitted a short random id is generated.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "type", "", "Item type: electronic, food or apparel (required)")
	f.StringVar(&c.id, "id", "", "Unique item id, generated when empty")
	f.StringVar(&c.name, "name", "", "Item name (required)")
	f.StringVar(&c.price, "price", "0", "Unit price")
	f.IntVar(&c.qty, "qty", 0, "Quantity in stock")
	f.StringVar(&c.brand, "brand", "", "Brand of an electronic item")
	f.IntVar(&c.warranty, "warranty", 0, "Warranty of an electronic item, in years")
	f.StringVar(&c.expiry, "expiry", "", "Expiry date of a food item (YYYY-MM-DD or +N days)")
	f.StringVar(&c.size, "size", "", "Size of an apparel item")
	f.StringVar(&c.fabric, "fabric", "", "Fabric of an apparel item")
}

// item builds the item described by the flags.
func (c *addCmd) item() (inventory.Item, error) {
	kind, err := inventory.ParseItemType(c.kind)
	if err != nil {
		return nil, err
	}
	if c.name == "" {
		return nil, fmt.Errorf("%w: -name is required", inventory.ErrInvalidInput)
	}
	price, err := decimal.NewFromString(c.price)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid price %q", inventory.ErrInvalidInput, c.price)
	}
	id := c.id
	if id == "" {
		id = strings.ToUpper(uuid.NewString()[:8])
	}

	switch kind {
	case inventory.TypeElectronic:
		return inventory.NewElectronic(id, c.name, price, c.qty, c.brand, c.warranty), nil
	case inventory.TypeFood:
		if c.expiry == "" {
			return nil, fmt.Errorf("%w: -expiry is required for food items", inventory.ErrInvalidInput)
		}
		expiry, err := parseExpiry(c.expiry)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", inventory.ErrInvalidInput, err)
		}
		return inventory.NewFood(id, c.name, price, c.qty, expiry), nil
	default:
		return inventory.NewApparel(id, c.name, price, c.qty, c.size, c.fabric), nil
	}
}

// parseExpiry reads a date, or "+N" for N days from today.
func parseExpiry(s string) (date.Date, error) {
	days, ok := strings.CutPrefix(s, "+")
	if !ok {
		return date.Parse(s)
	}
	n, err := strconv.Atoi(days)
	if err != nil || n < 0 {
		return date.Date{}, fmt.Errorf("invalid relative expiry %q, want +N days", s)
	}
	return date.Today().Add(n), nil
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	item, err := c.item()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	inv := OpenInventory()
	if err := inv.AddItem(item); err != nil {
		if errors.Is(err, inventory.ErrDuplicateID) || errors.Is(err, inventory.ErrInvalidInput) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		return fail("adding item to %q: %v", inv.Path(), err)
	}

	fmt.Fprintf(stdout, "Added %s %s\n", item.ID(), item.Describe())
	return subcommands.ExitSuccess
}
