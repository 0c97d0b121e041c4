package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/inventory"
	"github.com/etnz/inventory/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	plain bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list every item in the inventory" }
func (*listCmd) Usage() string {
	return `list [-plain]

  Prints every item, in the order they were added, as a table.
  With -plain, prints one description per line.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "print one description per line")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv := OpenInventory()
	if c.plain {
		printLines(inv.ListAll())
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Items(slices.Collect(inv.Items()), settings.Currency))
	return subcommands.ExitSuccess
}

type searchCmd struct {
	plain bool
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search items by name" }
func (*searchCmd) Usage() string {
	return `search [-plain] <term>

  Prints the items whose name contains term, ignoring case.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "print one description per line")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(stderr, "Error: a search term is required.")
		return subcommands.ExitUsageError
	}
	term := strings.Join(f.Args(), " ")
	inv := OpenInventory()
	if c.plain {
		printLines(inv.SearchByName(term))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Matches(term, inv.Search(term), settings.Currency))
	return subcommands.ExitSuccess
}

type valueCmd struct {
	plain bool
}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "print the total stock value" }
func (*valueCmd) Usage() string {
	return `value [-plain]

  Prints the sum of price times quantity over every item.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.plain, "plain", false, "print a single plain text line")
}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	inv := OpenInventory()
	if c.plain {
		fmt.Fprintf(stdout, "Total stock value: %s\n", renderer.Money(inv.TotalValue(), settings.Currency))
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Summary(inv.TotalValue(), inv.Len(), settings.Currency))
	return subcommands.ExitSuccess
}

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the inventory records with a JSONPath expression" }
func (*queryCmd) Usage() string {
	return `query <jsonpath>

  Evaluates a JSONPath expression against the inventory records and prints the
  result as JSON. For instance:

    inv query '$[?(@.type=="Food")].name'
    inv query '$[*].quantity'
`
}

func (*queryCmd) SetFlags(f *flag.FlagSet) {}

func (*queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(stderr, "Error: exactly one JSONPath expression is required.")
		return subcommands.ExitUsageError
	}
	result, err := query(OpenInventory(), f.Arg(0))
	if err != nil {
		return fail("%v", err)
	}
	fmt.Fprintln(stdout, result)
	return subcommands.ExitSuccess
}

// query evaluates path against the records of inv, and returns the result as indented JSON.
func query(inv *inventory.Inventory, path string) (string, error) {
	var buf bytes.Buffer
	if err := inventory.EncodeItems(&buf, slices.Collect(inv.Items())); err != nil {
		return "", err
	}
	var records any
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		return "", fmt.Errorf("error decoding records: %w", err)
	}
	val, err := jsonpath.Get(path, records)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", path, err)
	}
	out, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding result: %w", err)
	}
	return string(out), nil
}

func printLines(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(stdout, line)
	}
}
