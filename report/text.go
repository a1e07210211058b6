// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/linefem/matrix"
	"github.com/katalvlaran/linefem/structure"
)

// Section titles of the text report.
const (
	titleAssembled   = "Matrix equation"
	titleConstrained = "After boundary conditions"
	titleDisp        = "Nodal displacements"
	titleFields      = "Displacement fields"
	titleForces      = "Axial forces"
)

const ruleWidth = 50

// Text writes the full report: the matrix equation K·q = f before and after
// boundary elimination, the solved displacements, the sampled displacement
// field of every element and its axial force. Numbers use prec decimals.
func Text(w io.Writer, res *Result, prec int) error {
	if res == nil {
		return fmt.Errorf("Text: %w", ErrNilResult)
	}
	if prec < 0 {
		prec = 0
	}
	bw := bufio.NewWriter(w)
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', prec, 64) }

	labels := make([]string, len(res.Unknowns))
	for i, u := range res.Unknowns {
		labels[i] = u.String()
	}

	heading(bw, titleAssembled)
	equation(bw, res.RawK, labels, res.RawF, prec, " x ", " = ")
	heading(bw, titleConstrained)
	equation(bw, res.K, labels, res.F, prec, " x ", " = ")
	heading(bw, titleDisp)
	equation(bw, nil, labels, res.U, prec, "", " = ")

	heading(bw, titleFields)
	for _, er := range res.Elements {
		fmt.Fprintf(bw, "%s\n", describe(er, num))
		for _, smp := range er.Samples {
			if res.Dim == structure.Dim2 {
				fmt.Fprintf(bw, "\tu(%s) = (%s, %s)\n", num(smp.X), num(smp.U.X), num(smp.U.Y))
				continue
			}
			fmt.Fprintf(bw, "\tu(%s) = %s\n", num(smp.X), num(smp.U.X))
		}
	}

	heading(bw, titleForces)
	for _, er := range res.Elements {
		fmt.Fprintf(bw, "%s, N = %s\n", describe(er, num), num(er.N))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Text: %w", err)
	}

	return nil
}

func describe(er ElementResult, num func(float64) string) string {
	return fmt.Sprintf("Element %d (%s), L = %s", er.Index+1, er.Kind, num(er.Length))
}

func heading(w io.Writer, title string) {
	pad := ruleWidth - len(title) - 2
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	fmt.Fprintf(w, "\n%s %s %s\n\n", strings.Repeat("-", left), title, strings.Repeat("-", pad-left))
}

// equation prints [K] op |q| op f row by row; the operators appear on the
// middle row only. A nil K prints just q op f.
func equation(w io.Writer, K *matrix.Dense, q []string, f *matrix.Dense, prec int, mul, eq string) {
	var kRows []string
	if K != nil {
		kRows = strings.Split(strings.TrimSuffix(matrix.Format(K, prec), "\n"), "\n")
	}
	fRows := strings.Split(strings.TrimSuffix(matrix.Format(f, prec), "\n"), "\n")

	width := 1
	for _, l := range q {
		if len(l) > width {
			width = len(l)
		}
	}
	mid := len(q) / 2
	for i, label := range q {
		m, e := strings.Repeat(" ", len(mul)), strings.Repeat(" ", len(eq))
		if i == mid {
			m, e = mul, eq
		}
		if kRows != nil {
			fmt.Fprint(w, kRows[i], m)
		}
		fmt.Fprintf(w, "|%-*s|%s%s\n", width, label, e, fRows[i])
	}
}
