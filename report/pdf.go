// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/phpdave11/gofpdf"
)

const (
	pdfLine    = 6.0
	pdfColWide = 40.0
	pdfColNarr = 25.0
)

// WritePDF writes a one-page A4 summary of res: the solve method, the nodal
// displacements and the axial forces.
func WritePDF(w io.Writer, res *Result, title string, prec int) error {
	if res == nil {
		return fmt.Errorf("WritePDF: %w", ErrNilResult)
	}
	if title == "" {
		title = "Structural analysis report"
	}
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', prec, 64) }

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, pdfLine, fmt.Sprintf("Method: %s", res.Method))
	pdf.Ln(pdfLine)
	pdf.Cell(0, pdfLine, fmt.Sprintf("Degrees of freedom: %d, elements: %d", len(res.Unknowns), len(res.Elements)))
	pdf.Ln(pdfLine * 2)

	table(pdf, titleDisp, []string{"DOF", "Unknown", "Value"}, []float64{pdfColNarr, pdfColNarr, pdfColWide},
		func(add func(cells ...string)) {
			for i, u := range res.Unknowns {
				v, _ := res.U.AtIndex(i)
				add(strconv.Itoa(i+1), u.String(), num(v))
			}
		})
	pdf.Ln(pdfLine)

	table(pdf, titleForces, []string{"Element", "Kind", "Length", "N"},
		[]float64{pdfColNarr, pdfColNarr, pdfColWide, pdfColWide},
		func(add func(cells ...string)) {
			for _, er := range res.Elements {
				add(strconv.Itoa(er.Index+1), er.Kind.String(), num(er.Length), num(er.N))
			}
		})

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("WritePDF: %w", err)
	}

	return nil
}

// table draws a bordered table with a bold header row.
func table(pdf *gofpdf.Fpdf, caption string, head []string, widths []float64, body func(add func(cells ...string))) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, pdfLine+2, caption)
	pdf.Ln(pdfLine + 2)

	pdf.SetFont("Helvetica", "B", 10)
	for i, h := range head {
		pdf.CellFormat(widths[i], pdfLine, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Courier", "", 10)
	body(func(cells ...string) {
		for i, c := range cells {
			pdf.CellFormat(widths[i], pdfLine, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	})
}
