package sqlmatrix

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Render writes m as an aligned grid followed by a row count, the way psql
// prints results.
func (m *Matrix) Render(w io.Writer) error {
	if m.rowCount == 0 {
		_, err := fmt.Fprintln(w, "(no results)")
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(m.names.Names())
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetBorder(false)

	rows := [][]string{}
	m.Each(func(_ int, r Row) bool {
		row := make([]string, 0, r.Width())
		for _, v := range r.cells {
			row = append(row, v.String())
		}
		rows = append(rows, row)
		return true
	})

	table.AppendBulk(rows)
	table.Render()

	var err error
	if m.rowCount == 1 {
		_, err = fmt.Fprintln(w, "(1 result)")
	} else {
		_, err = fmt.Fprintf(w, "(%d results)\n", m.rowCount)
	}

	return err
}
