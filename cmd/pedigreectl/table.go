package main

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"
)

// table renders a simple aligned, colorized table to stdout. Column
// widths are measured with runewidth.StringWidth rather than len() or
// utf8.RuneCountInString so East-Asian-wide names still line up.
type table struct {
	headers []string
	rows    [][]string
}

func newTable(headers ...string) *table {
	return &table{headers: headers}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) print() {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i >= len(widths) {
				continue
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	headerCells := make([]string, len(t.headers))
	for i, h := range t.headers {
		headerCells[i] = runewidth.FillRight(h, widths[i])
	}
	color.FgCyan.Println(strings.Join(headerCells, "  "))
	color.FgCyan.Println(strings.Repeat("-", totalWidth(widths)))

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if i >= len(widths) {
				cells[i] = cell
				continue
			}
			cells[i] = runewidth.FillRight(cell, widths[i])
		}
		fmt.Println(strings.Join(cells, "  "))
	}
}

func totalWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	if total >= 2 {
		total -= 2
	}
	return total
}
