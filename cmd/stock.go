package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/etnz/inventory"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type sellCmd struct {
	id  string
	qty int
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "sell units of an item" }
func (*sellCmd) Usage() string {
	return `sell -id <id> -qty <quantity>

  Removes quantity units from the item stock. Selling more than the stock fails
  and leaves the stock unchanged. An unknown id changes nothing.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item id (required)")
	f.IntVar(&c.qty, "qty", 1, "Quantity to sell")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	inv := OpenInventory()
	if !inv.Has(c.id) {
		log.Warn().Str("id", c.id).Msg("no such item, nothing sold")
	}
	if err := inv.SellItem(c.id, c.qty); err != nil {
		return stockFailure(err)
	}
	if item := inv.Get(c.id); item != nil {
		fmt.Fprintf(stdout, "Sold %d of %s, %d left\n", c.qty, c.id, item.Quantity())
	}
	return subcommands.ExitSuccess
}

type restockCmd struct {
	id  string
	qty int
}

func (*restockCmd) Name() string     { return "restock" }
func (*restockCmd) Synopsis() string { return "add units to an item stock" }
func (*restockCmd) Usage() string {
	return `restock -id <id> -qty <quantity>

  Adds quantity units to the item stock. An unknown id changes nothing.
`
}

func (c *restockCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Item id (required)")
	f.IntVar(&c.qty, "qty", 1, "Quantity to add")
}

func (c *restockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	inv := OpenInventory()
	if !inv.Has(c.id) {
		log.Warn().Str("id", c.id).Msg("no such item, nothing restocked")
	}
	if err := inv.RestockItem(c.id, c.qty); err != nil {
		return stockFailure(err)
	}
	if item := inv.Get(c.id); item != nil {
		fmt.Fprintf(stdout, "Restocked %s, %d in stock\n", c.id, item.Quantity())
	}
	return subcommands.ExitSuccess
}

func stockFailure(err error) subcommands.ExitStatus {
	fmt.Fprintf(stderr, "Error: %v\n", err)
	if errors.Is(err, inventory.ErrInvalidInput) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

type expireCmd struct{}

func (*expireCmd) Name() string     { return "expire" }
func (*expireCmd) Synopsis() string { return "remove expired food items" }
func (*expireCmd) Usage() string {
	return `expire

  Removes every food item whose expiry date is before today.
`
}

func (*expireCmd) SetFlags(f *flag.FlagSet) {}

func (*expireCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv := OpenInventory()
	n, err := inv.RemoveExpired()
	if err != nil {
		return fail("saving %q: %v", inv.Path(), err)
	}
	fmt.Fprintf(stdout, "Removed %d expired food item(s)\n", n)
	return subcommands.ExitSuccess
}
