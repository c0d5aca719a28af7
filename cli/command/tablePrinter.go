package command

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// PrintTable writes header and rows as space-aligned columns.
func PrintTable(output io.Writer, header []string, rows [][]string) error {
	w := tabwriter.NewWriter(output, 0, 0, 3, ' ', 0)

	fmt.Fprintln(w, strings.Join(header, "\t"))
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return w.Flush()
}
