package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/pkg/errs"
)

// Printer writes query read models as text tables.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer) (*Printer, error) {
	if out == nil {
		return nil, errs.NewValueIsRequiredError("out")
	}
	return &Printer{out: out}, nil
}

// PrintCustomers renders the customer list as a table. A customer with
// several contacts renders one extra row per additional contact.
func (p *Printer) PrintCustomers(rows []queries.GetCustomersQueryResponse) error {
	table, err := NewTableFormatter(
		Column{Width: 8, Align: AlignRight},
		Column{Width: 28, Align: AlignLeft},
		Column{Width: 32, Align: AlignLeft},
	)
	if err != nil {
		return err
	}

	table.Line().Row("ID", "Customer", "Contact").Line()
	for _, row := range rows {
		contacts := row.Contacts
		first := ""
		if len(contacts) > 0 {
			first = contacts[0]
		}
		table.Row(strconv.FormatUint(uint64(row.ID), 10), row.Name, first)
		if len(contacts) > 1 {
			for _, contact := range contacts[1:] {
				table.Row("", "", contact)
			}
		}
	}
	table.Line()

	return p.write(table)
}

// PrintArticles renders the article list as a table with prices in the
// queried category's currency.
func (p *Printer) PrintArticles(rows []queries.GetArticlesQueryResponse) error {
	table, err := NewTableFormatter(
		Column{Width: 12, Align: AlignLeft},
		Column{Width: 26, Align: AlignLeft},
		Column{Width: 14, Align: AlignRight},
		Column{Width: 10, Align: AlignRight},
	)
	if err != nil {
		return err
	}

	table.Line().Row("Article", "Description", "Price", "Tax").Line()
	for _, row := range rows {
		table.Row(
			row.ID.String(),
			row.Description,
			FormatAmount(row.UnitPrice, row.Currency.Code()),
			row.TaxRate.String(),
		)
	}
	table.Line()

	return p.write(table)
}

// PrintOrders renders each order with its lines and a compound total row.
func (p *Printer) PrintOrders(rows []queries.GetOrdersQueryResponse) error {
	table, err := NewTableFormatter(
		Column{Width: 45, Align: AlignLeft},
		Column{Width: 16, Align: AlignRight},
		Column{Width: 14, Align: AlignRight},
	)
	if err != nil {
		return err
	}

	table.Line().Row("Order", "Value", "Included VAT").Line()
	for _, row := range rows {
		table.Row(fmt.Sprintf("#%d, %s's order:", row.ID, row.CustomerName), "", "")
		for _, item := range row.Items {
			label := fmt.Sprintf(" - %d units: %s", item.Quantity, item.Description)
			if item.Quantity == 1 {
				label = fmt.Sprintf(" - 1 unit: %s", item.Description)
			}
			table.Row(
				label,
				FormatAmount(item.Value, row.Currency.Code()),
				FormatAmount(item.IncludedVAT, row.Currency.Code()),
			)
		}
		table.Row(
			" total:",
			FormatAmount(row.Value, row.Currency.Code()),
			FormatAmount(row.IncludedVAT, row.Currency.Code()),
		)
		table.Line()
	}

	return p.write(table)
}

func (p *Printer) write(table *TableFormatter) error {
	_, err := io.Copy(p.out, strings.NewReader(table.String()))
	return err
}
