// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/linefem/matrix"
)

// Sheet names of the workbook.
const (
	SheetStiffness     = "Stiffness"
	SheetLoads         = "Loads"
	SheetDisplacements = "Displacements"
	SheetForces        = "Forces"
)

// Workbook renders res into a new workbook with one sheet per table:
//
//	Stiffness      assembled K, a blank row, then the constrained K
//	Loads          DOF, unknown, assembled f, constrained f
//	Displacements  DOF, unknown, solved value
//	Forces         element, kind, length, N
//
// The caller owns the returned file and must Close it.
func Workbook(res *Result) (*excelize.File, error) {
	if res == nil {
		return nil, fmt.Errorf("Workbook: %w", ErrNilResult)
	}
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetStiffness); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("Workbook: %w", err)
	}
	for _, name := range []string{SheetLoads, SheetDisplacements, SheetForces} {
		if _, err := f.NewSheet(name); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("Workbook: %w", err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("Workbook: %w", err)
	}
	w := sheetWriter{f: f, bold: bold}

	// Stiffness
	w.header(SheetStiffness, 1, "K (assembled)")
	w.matrix(SheetStiffness, 2, res.RawK)
	next := 2 + res.RawK.Rows() + 1
	w.header(SheetStiffness, next, "K (constrained)")
	w.matrix(SheetStiffness, next+1, res.K)

	// Loads and displacements
	w.header(SheetLoads, 1, "DOF", "Unknown", "f (assembled)", "f (constrained)")
	w.header(SheetDisplacements, 1, "DOF", "Unknown", "Value")
	for i, u := range res.Unknowns {
		raw, _ := res.RawF.AtIndex(i)
		con, _ := res.F.AtIndex(i)
		val, _ := res.U.AtIndex(i)
		w.row(SheetLoads, i+2, i+1, u.String(), raw, con)
		w.row(SheetDisplacements, i+2, i+1, u.String(), val)
	}

	// Forces
	w.header(SheetForces, 1, "Element", "Kind", "Length", "N")
	for i, er := range res.Elements {
		w.row(SheetForces, i+2, er.Index+1, er.Kind.String(), er.Length, er.N)
	}

	if w.err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("Workbook: %w", w.err)
	}
	f.SetActiveSheet(0)

	return f, nil
}

// WriteXLSX renders res and saves it to path.
func WriteXLSX(path string, res *Result) error {
	f, err := Workbook(res)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("WriteXLSX(%s): %w", path, err)
	}

	return nil
}

// sheetWriter keeps the first error of a sequence of cell writes.
type sheetWriter struct {
	f    *excelize.File
	bold int
	err  error
}

func (w *sheetWriter) row(sheet string, r int, values ...any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, r)
	if err != nil {
		w.err = err
		return
	}
	w.err = w.f.SetSheetRow(sheet, cell, &values)
}

func (w *sheetWriter) header(sheet string, r int, titles ...string) {
	values := make([]any, len(titles))
	for i, t := range titles {
		values[i] = t
	}
	w.row(sheet, r, values...)
	if w.err != nil {
		return
	}
	first, _ := excelize.CoordinatesToCellName(1, r)
	last, _ := excelize.CoordinatesToCellName(len(titles), r)
	w.err = w.f.SetCellStyle(sheet, first, last, w.bold)
}

func (w *sheetWriter) matrix(sheet string, r int, m *matrix.Dense) {
	for _, vals := range m.ToRows() {
		row := make([]any, len(vals))
		for j, v := range vals {
			row[j] = v
		}
		w.row(sheet, r, row...)
		r++
	}
}
