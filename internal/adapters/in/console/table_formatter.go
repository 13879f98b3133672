// Package console renders query read models as fixed-width text tables
// for terminal output.
package console

import (
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

// Align selects the horizontal alignment of a table cell.
type Align int

const (
	// AlignLeft pads cell content on the right.
	AlignLeft Align = iota
	// AlignRight pads cell content on the left, used for numbers.
	AlignRight
)

// Column describes one table column: its width in characters and its
// cell alignment.
type Column struct {
	Width int
	Align Align
}

// TableFormatter accumulates rows into a fixed-width text table. Cells
// longer than their column are truncated; shorter cells are padded per
// the column alignment. Build the table with Row and Line calls, then
// render it with String.
//
// Example:
//
//	table, _ := console.NewTableFormatter(
//	    console.Column{Width: 10, Align: console.AlignLeft},
//	    console.Column{Width: 8, Align: console.AlignRight},
//	)
//	table.Line().Row("Article", "Price").Line().Row("Teller", "6.49 EUR").Line()
//	fmt.Print(table.String())
type TableFormatter struct {
	columns []Column
	rows    []string
}

// NewTableFormatter creates a formatter for the given columns.
// At least one column is required and every width must be positive.
func NewTableFormatter(columns ...Column) (*TableFormatter, error) {
	if len(columns) == 0 {
		return nil, errs.NewValueIsRequiredError("columns")
	}
	for _, c := range columns {
		if c.Width <= 0 {
			return nil, errs.NewValueIsInvalidError("column width")
		}
	}

	return &TableFormatter{columns: columns}, nil
}

// Row appends one content row. Missing cells render empty; surplus cells
// are ignored. Returns the formatter for chaining.
func (t *TableFormatter) Row(cells ...string) *TableFormatter {
	var b strings.Builder
	for i, col := range t.columns {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString("|")
		b.WriteString(fit(cell, col))
	}
	b.WriteString("|")
	t.rows = append(t.rows, b.String())
	return t
}

// Line appends a horizontal separator row. Returns the formatter for
// chaining.
func (t *TableFormatter) Line() *TableFormatter {
	var b strings.Builder
	for _, col := range t.columns {
		b.WriteString("+")
		b.WriteString(strings.Repeat("-", col.Width))
	}
	b.WriteString("+")
	t.rows = append(t.rows, b.String())
	return t
}

// RowCount returns the number of appended rows, separators included.
func (t *TableFormatter) RowCount() int {
	return len(t.rows)
}

// String renders the table, one row per line with a trailing newline.
// An empty table renders as an empty string.
func (t *TableFormatter) String() string {
	if len(t.rows) == 0 {
		return ""
	}
	return strings.Join(t.rows, "\n") + "\n"
}

func fit(cell string, col Column) string {
	runes := []rune(cell)
	if len(runes) > col.Width {
		return string(runes[:col.Width])
	}

	pad := strings.Repeat(" ", col.Width-len(runes))
	if col.Align == AlignRight {
		return pad + cell
	}
	return cell + pad
}

// FormatAmount renders an amount in the smallest currency unit as a
// decimal with two fraction digits and the currency code, e.g.
// FormatAmount(2596, "EUR") yields "25.96 EUR".
func FormatAmount(amount int64, currencyCode string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, amount/100, amount%100, currencyCode)
}
