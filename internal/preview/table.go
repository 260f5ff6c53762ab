// Package preview renders mapped records as console tables.
package preview

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"qurangen/internal/schema"
)

// Table renders the first n records as a pipe-delimited table, columns
// padded by display width. Arabic field values carry zero-width combining
// marks, so byte or rune counts would misalign the columns.
func Table(title string, records []*schema.Record, n int) string {
	if len(records) == 0 {
		return fmt.Sprintf("%s (no rows)", title)
	}

	if n > len(records) {
		n = len(records)
	}

	rows := records[:n]
	fields := records[0].Schema().Fields

	header := make([]string, 0, len(fields))
	for _, f := range fields {
		header = append(header, f.Name)
	}

	cells := make([][]string, 0, len(rows))

	for _, rec := range rows {
		row := make([]string, 0, len(fields))
		for _, f := range fields {
			row = append(row, cellText(rec, f))
		}

		cells = append(cells, row)
	}

	widths := columnWidths(header, cells)

	var b strings.Builder

	fmt.Fprintf(&b, "%s (first %d of %d)\n", title, n, len(records))
	b.WriteString(formatRow(header, widths))
	b.WriteString(separatorRow(widths))

	for _, row := range cells {
		b.WriteString(formatRow(row, widths))
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func cellText(rec *schema.Record, f schema.Field) string {
	value, ok := rec.Lookup(f.Name)
	if !ok {
		return ""
	}

	switch value.Kind() {
	case schema.KindNumber:
		return value.Number().String()
	case schema.KindString:
		return value.Str()
	case schema.KindRecord:
		return value.Record().Schema().TypeName
	case schema.KindList:
		return fmt.Sprintf("%d items", len(value.Records()))
	}

	return ""
}

func columnWidths(header []string, cells [][]string) []int {
	widths := make([]int, len(header))

	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}

	for _, row := range cells {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	return widths
}

func formatRow(row []string, widths []int) string {
	padded := make([]string, 0, len(row))
	for i, cell := range row {
		padded = append(padded, runewidth.FillRight(cell, widths[i]))
	}

	return "| " + strings.Join(padded, " | ") + " |\n"
}

func separatorRow(widths []int) string {
	dashes := make([]string, 0, len(widths))
	for _, w := range widths {
		dashes = append(dashes, strings.Repeat("-", w))
	}

	return "| " + strings.Join(dashes, " | ") + " |\n"
}
