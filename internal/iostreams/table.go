package iostreams

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// TablePrinter renders tabular data to IOStreams.Out.
// When the output is a TTY with colors enabled, headers are styled;
// when piped, output is plain tab-separated columns for machine use.
type TablePrinter struct {
	ios     *IOStreams
	headers []string
	rows    [][]string
}

// NewTablePrinter creates a new table printer with the given column headers.
// The table writes to ios.Out when Render() is called.
func (ios *IOStreams) NewTablePrinter(headers ...string) *TablePrinter {
	return &TablePrinter{
		ios:     ios,
		headers: headers,
	}
}

// AddRow adds a data row to the table. If fewer columns are provided than
// headers, missing columns are treated as empty strings.
func (tp *TablePrinter) AddRow(cols ...string) {
	tp.rows = append(tp.rows, cols)
}

// Len returns the number of data rows (not including headers).
func (tp *TablePrinter) Len() int {
	return len(tp.rows)
}

// Render writes the table to the IOStreams output.
func (tp *TablePrinter) Render() error {
	if len(tp.headers) == 0 {
		return nil
	}

	w := tabwriter.NewWriter(tp.ios.Out, 0, 0, 2, ' ', 0)

	header := strings.Join(tp.headers, "\t")
	if tp.ios.ColorEnabled() {
		header = headerStyle.Render(header)
	}
	fmt.Fprintln(w, header)

	for _, row := range tp.rows {
		fmt.Fprintln(w, strings.Join(tp.normalizeRow(row), "\t"))
	}

	return w.Flush()
}

// normalizeRow pads or truncates a row to match the number of headers.
func (tp *TablePrinter) normalizeRow(row []string) []string {
	cols := make([]string, len(tp.headers))
	for i := range cols {
		if i < len(row) {
			cols[i] = row[i]
		}
	}
	return cols
}
