package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

type renderer struct {
	out  io.Writer
	json bool
}

func (r renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r renderer) Table(headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range rows {
		_, _ = fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// Record prints one item as FIELD / VALUE lines.
func (r renderer) Record(headers []string, row []string) error {
	tw := tabwriter.NewWriter(r.out, 0, 0, 2, ' ', 0)
	for i, h := range headers {
		value := ""
		if i < len(row) {
			value = row[i]
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\n", h, value)
	}
	return tw.Flush()
}

func (r renderer) Line(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format+"\n", args...)
}
