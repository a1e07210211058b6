// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/linefem/modelio"
	"github.com/katalvlaran/linefem/report"
	"github.com/katalvlaran/linefem/solver"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		method, xlsx, pdf, title string
		step                     float64
		prec                     int
	)
	cmd := &cobra.Command{
		Use:   "solve model.txt",
		Short: "Solve a model and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if f.Changed("method") {
				a.cfg.Method = method
			}
			if f.Changed("step") {
				a.cfg.Step = step
			}
			if f.Changed("precision") {
				a.cfg.Precision = prec
			}
			if f.Changed("xlsx") {
				a.cfg.Output.XLSX = xlsx
			}
			if f.Changed("pdf") {
				a.cfg.Output.PDF = pdf
			}
			if f.Changed("title") {
				a.cfg.Output.Title = title
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			return a.solve(cmd.OutOrStdout(), args[0])
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", "", "solve method: gauss, inverse or lu")
	cmd.Flags().Float64Var(&step, "step", 0, "sampling step of displacement fields, in (0, 1)")
	cmd.Flags().IntVar(&prec, "precision", 0, "decimals in the report")
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "also write an XLSX workbook to this path")
	cmd.Flags().StringVar(&pdf, "pdf", "", "also write a PDF summary to this path")
	cmd.Flags().StringVar(&title, "title", "", "PDF title")

	return cmd
}

// solve runs one load-solve-report cycle for path.
func (a *app) solve(out io.Writer, path string) error {
	s, err := modelio.LoadFile(path)
	if err != nil {
		return err
	}
	m, err := a.cfg.SolverMethod()
	if err != nil {
		return err
	}
	sv, err := solver.New(s, solver.WithMethod(m), solver.WithLogger(a.log))
	if err != nil {
		return err
	}
	res, err := report.Collect(sv, a.cfg.Step)
	if err != nil {
		return err
	}
	if err = report.Text(out, res, a.cfg.Precision); err != nil {
		return err
	}

	if p := a.cfg.Output.XLSX; p != "" {
		if err = report.WriteXLSX(p, res); err != nil {
			return err
		}
		a.log.Info("workbook written", zap.String("path", p))
	}
	if p := a.cfg.Output.PDF; p != "" {
		if err = writePDF(p, res, a.cfg.Output.Title, a.cfg.Precision); err != nil {
			return err
		}
		a.log.Info("pdf written", zap.String("path", p))
	}
	a.log.Info("model solved",
		zap.String("model", path),
		zap.Stringer("method", res.Method),
		zap.Int("dof", len(res.Unknowns)),
	)

	return nil
}

func writePDF(path string, res *report.Result, title string, prec int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return report.WritePDF(f, res, title, prec)
}
