// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"
)

// Format renders m as aligned rows framed by '|', each value printed with
// prec decimals and right-aligned to the widest entry:
//
//	|  1.00 -1.00|
//	| -1.00  1.00|
//
// A negative prec is treated as 0. A nil matrix renders as the empty string.
func Format(m Matrix, prec int) string {
	if isNil(m) {
		return ""
	}
	if prec < 0 {
		prec = 0
	}

	d := denseOf(m)
	cells := make([]string, len(d.data))
	width := 0
	for k, v := range d.data {
		cells[k] = strconv.FormatFloat(v, 'f', prec, 64)
		if len(cells[k]) > width {
			width = len(cells[k])
		}
	}

	var b strings.Builder
	var i, j int
	for i = 0; i < d.r; i++ {
		b.WriteByte('|')
		for j = 0; j < d.c; j++ {
			cell := cells[i*d.c+j]
			b.WriteByte(' ')
			b.WriteString(strings.Repeat(" ", width-len(cell)))
			b.WriteString(cell)
		}
		b.WriteString("|\n")
	}

	return b.String()
}
