// SPDX-License-Identifier: MIT

package modelio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/linefem/structure"
)

// Block headers of the model format.
const (
	blockNodes       = "Nodes"
	blockElements    = "Elements"
	blockPinning     = "Pinning"
	blockPointForces = "Point_Forces"
	blockDistributed = "Distributed_Forces"

	banner = "# Structure model made of finite elements"
)

// DefaultPrecision is the number of decimals written for every real field.
// Element parameters below 0.005 round to zero at this precision; Save
// rejects such models with ErrPrecision, raise it with WithPrecision.
const DefaultPrecision = 2

// SaveOption configures Save.
type SaveOption func(*saveConfig)

type saveConfig struct {
	prec int
}

// WithPrecision sets the number of decimals for real fields.
// Panics if p is negative or larger than 10.
func WithPrecision(p int) SaveOption {
	if p < 0 || p > 10 {
		panic(fmt.Sprintf("modelio: WithPrecision(%d): want 0..10", p))
	}
	return func(c *saveConfig) { c.prec = p }
}

// Save writes s to w. A non-empty comment becomes the first line.
//
// Implementation:
//   - Stage 0: every E, A and C must stay positive and every element keep a
//     non-zero length once rounded, otherwise ErrPrecision and nothing is written.
//   - Stage 1: header comments and a blank line.
//   - Stage 2: Nodes, Elements and Pinning blocks, always present.
//   - Stage 3: Point_Forces and Distributed_Forces, only when non-empty.
func Save(w io.Writer, s *structure.Structure, comment string, opts ...SaveOption) error {
	if s == nil {
		return fmt.Errorf("Save: nil structure: %w", structure.ErrInvalidParameter)
	}
	cfg := saveConfig{prec: DefaultPrecision}
	for _, opt := range opts {
		opt(&cfg)
	}
	planar := s.Dim() == structure.Dim2
	num := func(v float64) string { return strconv.FormatFloat(v, 'f', cfg.prec, 64) }
	vec := func(v structure.Vector) string {
		if planar {
			return num(v.X) + " " + num(v.Y)
		}
		return num(v.X)
	}

	// Stage 0
	if err := checkRounding(s, num); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	bw := bufio.NewWriter(w)
	p := func(format string, args ...any) { fmt.Fprintf(bw, format, args...) }

	// Stage 1
	if c := strings.TrimSpace(comment); c != "" {
		for _, line := range strings.Split(c, "\n") {
			p("# %s\n", strings.TrimSpace(line))
		}
	}
	p("%s\n\n", banner)

	// Stage 2
	p("%s:\n", blockNodes)
	for _, n := range s.Nodes() {
		p("\t%d %s\n", n.Index()+1, vec(n.Position()))
	}

	p("\n%s:\n", blockElements)
	for _, el := range s.Elements() {
		param := num(el.E()) + " " + num(el.A())
		if el.Kind() == structure.Spring {
			param = num(el.C())
		}
		p("\t%d %d %d %s\n", el.Index()+1, el.Start().Index()+1, el.End().Index()+1, param)
	}

	p("\n%s:\n", blockPinning)
	for _, n := range s.Nodes() {
		px, py := n.Pinned(structure.AxisX), planar && n.Pinned(structure.AxisY)
		switch {
		case px && (py || !planar):
			p("\t%d\n", n.Index()+1)
		case px:
			p("\t%d %s\n", n.Index()+1, structure.AxisX)
		case py:
			p("\t%d %s\n", n.Index()+1, structure.AxisY)
		}
	}

	// Stage 3
	header := false
	for _, n := range s.Nodes() {
		for _, f := range n.Forces() {
			if !header {
				p("\n%s:\n", blockPointForces)
				header = true
			}
			p("\t%d %s\n", n.Index()+1, vec(f))
		}
	}

	header = false
	for _, el := range s.Elements() {
		for _, q := range el.Loads() {
			if !header {
				p("\n%s:\n", blockDistributed)
				header = true
			}
			p("\t%d %s %s\n", el.Index()+1, vec(q.Q1), vec(q.Q2))
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	return nil
}

// checkRounding reports the first element that Load would reject after
// its fields pass through num.
func checkRounding(s *structure.Structure, num func(float64) string) error {
	round := func(v float64) float64 {
		r, _ := strconv.ParseFloat(num(v), 64)
		return r
	}
	for _, el := range s.Elements() {
		params := []float64{el.E(), el.A()}
		if el.Kind() == structure.Spring {
			params = []float64{el.C()}
		}
		for _, v := range params {
			if round(v) <= 0 {
				return fmt.Errorf("element %d: parameter %g: %w", el.Index()+1, v, ErrPrecision)
			}
		}
		a, b := el.Start().Position(), el.End().Position()
		if round(a.X) == round(b.X) && round(a.Y) == round(b.Y) {
			return fmt.Errorf("element %d: length %g: %w", el.Index()+1, el.Length(), ErrPrecision)
		}
	}

	return nil
}
