// Package shell implements the interactive inventory menu.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/inventory"
	"github.com/etnz/inventory/date"
	"github.com/etnz/inventory/renderer"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const menu = `
📦 Inventory Manager
1. Add item
2. Sell item
3. View all items
4. Search by name
5. Remove expired food
6. View total value
0. Exit
`

// Shell reads menu choices and fields line by line and applies them to an
// inventory.
type Shell struct {
	inv      *inventory.Inventory
	in       *bufio.Scanner
	out      io.Writer
	currency string
}

// New returns a shell reading from in and writing to out. Values are
// displayed in currency.
func New(inv *inventory.Inventory, in io.Reader, out io.Writer, currency string) *Shell {
	return &Shell{inv: inv, in: bufio.NewScanner(in), out: out, currency: currency}
}

// Run loops until the user exits, the input ends or ctx is done. Errors of a
// single choice are printed and the loop goes on.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, menu)
		option, err := s.ask("Choose an option: ")
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}

		if option == "0" {
			fmt.Fprintln(s.out, "👋 Goodbye!")
			return nil
		}
		err = s.dispatch(option)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			log.Debug().Err(err).Str("option", option).Msg("menu option failed")
			fmt.Fprintln(s.out, "⚠️ Error:", err)
		}
	}
}

func (s *Shell) dispatch(option string) error {
	switch option {
	case "1":
		return s.add()
	case "2":
		return s.sell()
	case "3":
		s.print(s.inv.ListAll())
		return nil
	case "4":
		// the term is matched as typed, spaces included.
		term, err := s.askRaw("Search term: ")
		if err != nil {
			return err
		}
		s.print(s.inv.SearchByName(term))
		return nil
	case "5":
		removed, err := s.inv.RemoveExpired()
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "✅ Expired food removed (%d).\n", removed)
		return nil
	case "6":
		fmt.Fprintf(s.out, "💰 Total stock value: %s\n", renderer.Money(s.inv.TotalValue(), s.currency))
		return nil
	default:
		fmt.Fprintln(s.out, "❌ Invalid choice.")
		return nil
	}
}

func (s *Shell) add() error {
	kindText, err := s.ask("Type (Electronic / Food / Apparel): ")
	if err != nil {
		return err
	}
	kind, err := inventory.ParseItemType(kindText)
	if err != nil {
		fmt.Fprintln(s.out, "Invalid type.")
		return nil
	}
	id, err := s.ask("ID: ")
	if err != nil {
		return err
	}
	name, err := s.ask("Name: ")
	if err != nil {
		return err
	}
	price, err := s.askPrice("Price: ")
	if err != nil {
		return err
	}
	qty, err := s.askInt("Quantity: ")
	if err != nil {
		return err
	}

	var item inventory.Item
	switch kind {
	case inventory.TypeElectronic:
		brand, err := s.ask("Brand: ")
		if err != nil {
			return err
		}
		warranty, err := s.askInt("Warranty (years): ")
		if err != nil {
			return err
		}
		item = inventory.NewElectronic(id, name, price, qty, brand, warranty)
	case inventory.TypeFood:
		expiry, err := s.askDate("Expiry (YYYY-MM-DD): ")
		if err != nil {
			return err
		}
		item = inventory.NewFood(id, name, price, qty, expiry)
	case inventory.TypeApparel:
		size, err := s.ask("Size: ")
		if err != nil {
			return err
		}
		fabric, err := s.ask("Fabric: ")
		if err != nil {
			return err
		}
		item = inventory.NewApparel(id, name, price, qty, size, fabric)
	}

	if err := s.inv.AddItem(item); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "✅ Item added and saved.")
	return nil
}

func (s *Shell) sell() error {
	id, err := s.ask("Item ID: ")
	if err != nil {
		return err
	}
	qty, err := s.askInt("Quantity: ")
	if err != nil {
		return err
	}
	if !s.inv.Has(id) {
		fmt.Fprintf(s.out, "No item with ID %q, nothing sold.\n", id)
		return nil
	}
	if err := s.inv.SellItem(id, qty); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "✅ Item sold and inventory updated.")
	return nil
}

func (s *Shell) print(lines []string) {
	for _, line := range lines {
		fmt.Fprintln(s.out, line)
	}
}

// ask prints prompt and returns the next trimmed input line.
func (s *Shell) ask(prompt string) (string, error) {
	line, err := s.askRaw(prompt)
	return strings.TrimSpace(line), err
}

// askRaw is like ask but keeps the spaces around the answer.
func (s *Shell) askRaw(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(s.in.Text(), "\r"), nil
}

func (s *Shell) askInt(prompt string) (int, error) {
	text, err := s.ask(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number", inventory.ErrInvalidInput, text)
	}
	return n, nil
}

func (s *Shell) askPrice(prompt string) (decimal.Decimal, error) {
	text, err := s.ask(prompt)
	if err != nil {
		return decimal.Zero, err
	}
	price, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", inventory.ErrInvalidInput, text)
	}
	return price, nil
}

func (s *Shell) askDate(prompt string) (date.Date, error) {
	text, err := s.ask(prompt)
	if err != nil {
		return date.Date{}, err
	}
	day, err := date.Parse(text)
	if err != nil {
		return date.Date{}, fmt.Errorf("%w: %v", inventory.ErrInvalidInput, err)
	}
	return day, nil
}
