// Package renderer turns inventory content into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/etnz/inventory"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.md
var templates embed.FS

// summary.md is also a partial of items.md.
var tmpl = template.Must(template.ParseFS(templates, "templates/*.md"))

// row is a table line of the items template.
type row struct {
	ID, Type, Name, Details string
	Price, Stock, Value     string
}

// table is the data of the items and summary templates.
type table struct {
	Rows  []row
	Empty string
	Total string
	Count int
}

// Items renders items as a markdown table followed by their total value.
// Amounts are displayed in the given currency.
func Items(items []inventory.Item, currency string) string {
	return render("items.md", newTable(items, currency, "The inventory is empty."))
}

// Matches renders search results, with a specific message when nothing matched.
func Matches(term string, items []inventory.Item, currency string) string {
	return render("items.md", newTable(items, currency, fmt.Sprintf("No item matches %q.", term)))
}

// Summary renders the total value line alone.
func Summary(total decimal.Decimal, count int, currency string) string {
	return render("summary.md", table{Total: Money(total, currency), Count: count})
}

func newTable(items []inventory.Item, currency, empty string) table {
	t := table{Empty: empty, Count: len(items)}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.StockValue())
		t.Rows = append(t.Rows, row{
			ID:      cell(item.ID()),
			Type:    string(item.Kind()),
			Name:    cell(item.Name()),
			Details: cell(Details(item)),
			Price:   Money(item.Price(), currency),
			Stock:   fmt.Sprint(item.Quantity()),
			Value:   Money(item.StockValue(), currency),
		})
	}
	t.Total = Money(total, currency)
	return t
}

// Details renders the category specific fields of an item.
func Details(item inventory.Item) string {
	switch v := item.(type) {
	case *inventory.Electronic:
		return fmt.Sprintf("%s, %dyrs warranty", v.Brand, v.Warranty)
	case *inventory.Food:
		status := "fresh"
		if v.IsExpired() {
			status = "expired"
		}
		return fmt.Sprintf("expires %s (%s)", v.Expiry, status)
	case *inventory.Apparel:
		return fmt.Sprintf("size %s, %s", v.Size, v.Fabric)
	default:
		return ""
	}
}

// cell escapes the characters that would break a markdown table.
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func render(name string, data any) string {
	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, name, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", name, err)
	}
	return b.String()
}
