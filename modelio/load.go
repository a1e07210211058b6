// SPDX-License-Identifier: MIT

package modelio

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/linefem/structure"
)

// record is one data line of a block.
type record struct {
	line   int
	idx    int
	fields []string // fields after the leading index
}

// Load parses a model from r.
//
// Implementation:
//   - Stage 1: scan lines into blocks, skipping blanks and # comments.
//   - Stage 2: sort each block by its leading index.
//   - Stage 3: build nodes, elements, supports and loads in that order.
//
// Every malformed record yields ErrSyntax naming its line. Model errors
// raised by the structure (such as a zero-length element) are wrapped with
// the line number as well.
func Load(r io.Reader) (*structure.Structure, error) {
	blocks, err := scan(r)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	for _, recs := range blocks {
		slices.SortStableFunc(recs, func(a, b record) int { return cmp.Compare(a.idx, b.idx) })
	}

	s, err := loadNodes(blocks[blockNodes])
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	steps := []func(*structure.Structure, []record) error{
		loadElements, loadPinning, loadPointForces, loadDistributed,
	}
	names := []string{blockElements, blockPinning, blockPointForces, blockDistributed}
	for i, step := range steps {
		if err = step(s, blocks[names[i]]); err != nil {
			return nil, fmt.Errorf("Load: %w", err)
		}
	}

	return s, nil
}

func scan(r io.Reader) (map[string][]record, error) {
	known := map[string]bool{
		blockNodes: true, blockElements: true, blockPinning: true,
		blockPointForces: true, blockDistributed: true,
	}
	blocks := make(map[string][]record)
	seen := make(map[string]bool)
	current := ""

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		raw := sc.Text()
		text := strings.TrimSpace(raw)
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		if raw[0] != ' ' && raw[0] != '\t' {
			name, ok := strings.CutSuffix(text, ":")
			if !ok || !known[name] {
				return nil, syntaxErrorf(line, "unknown block %q", text)
			}
			if seen[name] {
				return nil, syntaxErrorf(line, "duplicate block %q", name)
			}
			seen[name], current = true, name
			continue
		}

		if current == "" {
			return nil, syntaxErrorf(line, "record outside a block")
		}
		if cut := strings.IndexByte(text, '#'); cut >= 0 {
			text = text[:cut]
		}
		fields := strings.Fields(text)
		idx, err := strconv.Atoi(fields[0])
		if err != nil || idx < 1 {
			return nil, syntaxErrorf(line, "bad index %q", fields[0])
		}
		blocks[current] = append(blocks[current], record{line: line, idx: idx, fields: fields[1:]})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return blocks, nil
}

func parseFloats(rec record, fields []string) ([]float64, error) {
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, syntaxErrorf(rec.line, "bad number %q", f)
		}
		out[i] = v
	}

	return out, nil
}

// vector reads one (x) or (x, y) group depending on the dimension.
func vector(vals []float64, planar bool) structure.Vector {
	if planar {
		return structure.Vector{X: vals[0], Y: vals[1]}
	}
	return structure.Vector{X: vals[0]}
}

// checkSequence requires sorted records to be numbered 1..n.
func checkSequence(block string, recs []record) error {
	for i, rec := range recs {
		if rec.idx != i+1 {
			return syntaxErrorf(rec.line, "%s index %d, want %d", block, rec.idx, i+1)
		}
	}
	return nil
}

func loadNodes(recs []record) (*structure.Structure, error) {
	dim := structure.Dim1
	if len(recs) > 0 && len(recs[0].fields) == 2 {
		dim = structure.Dim2
	}
	s := structure.New(structure.WithDim(dim))
	if err := checkSequence(blockNodes, recs); err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if len(rec.fields) != int(dim) {
			return nil, syntaxErrorf(rec.line, "node wants %d coordinates, got %d", dim, len(rec.fields))
		}
		vals, err := parseFloats(rec, rec.fields)
		if err != nil {
			return nil, err
		}
		if _, err = s.AddNode(vector(vals, dim == structure.Dim2)); err != nil {
			return nil, fmt.Errorf("line %d: %w", rec.line, err)
		}
	}

	return s, nil
}

// nodeRef resolves a 1-based node number.
func nodeRef(s *structure.Structure, rec record, field string) (*structure.Node, error) {
	i, err := strconv.Atoi(field)
	if err != nil {
		return nil, syntaxErrorf(rec.line, "bad node number %q", field)
	}
	n, err := s.Node(i - 1)
	if err != nil {
		return nil, syntaxErrorf(rec.line, "node %d does not exist", i)
	}

	return n, nil
}

func loadElements(s *structure.Structure, recs []record) error {
	if err := checkSequence(blockElements, recs); err != nil {
		return err
	}
	for _, rec := range recs {
		if len(rec.fields) != 3 && len(rec.fields) != 4 {
			return syntaxErrorf(rec.line, "element wants 2 nodes and 1 or 2 parameters, got %d fields", len(rec.fields))
		}
		n1, err := nodeRef(s, rec, rec.fields[0])
		if err != nil {
			return err
		}
		n2, err := nodeRef(s, rec, rec.fields[1])
		if err != nil {
			return err
		}
		param, err := parseFloats(rec, rec.fields[2:])
		if err != nil {
			return err
		}
		if len(param) == 1 {
			_, err = s.AddSpring(param[0], structure.From(n1), structure.To(n2))
		} else {
			_, err = s.AddRod(param[0], param[1], structure.From(n1), structure.To(n2))
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", rec.line, err)
		}
	}

	return nil
}

func loadPinning(s *structure.Structure, recs []record) error {
	for _, rec := range recs {
		n, err := s.Node(rec.idx - 1)
		if err != nil {
			return syntaxErrorf(rec.line, "node %d does not exist", rec.idx)
		}
		switch {
		case len(rec.fields) == 0:
			err = s.Pin(n)
		case len(rec.fields) == 1 && rec.fields[0] == structure.AxisX.String():
			err = s.PinAxis(n, structure.AxisX)
		case len(rec.fields) == 1 && rec.fields[0] == structure.AxisY.String():
			err = s.PinAxis(n, structure.AxisY)
		default:
			return syntaxErrorf(rec.line, "pinning wants a node and an optional x|y axis")
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", rec.line, err)
		}
	}

	return nil
}

func loadPointForces(s *structure.Structure, recs []record) error {
	d := int(s.Dim())
	for _, rec := range recs {
		n, err := s.Node(rec.idx - 1)
		if err != nil {
			return syntaxErrorf(rec.line, "node %d does not exist", rec.idx)
		}
		if len(rec.fields) != d {
			return syntaxErrorf(rec.line, "point force wants %d components, got %d", d, len(rec.fields))
		}
		vals, err := parseFloats(rec, rec.fields)
		if err != nil {
			return err
		}
		if err = s.AddPointForce(n, vector(vals, d == 2)); err != nil {
			return fmt.Errorf("line %d: %w", rec.line, err)
		}
	}

	return nil
}

func loadDistributed(s *structure.Structure, recs []record) error {
	d := int(s.Dim())
	for _, rec := range recs {
		el, err := s.Element(rec.idx - 1)
		if err != nil {
			return syntaxErrorf(rec.line, "element %d does not exist", rec.idx)
		}
		if len(rec.fields) != 2*d {
			return syntaxErrorf(rec.line, "distributed load wants %d components, got %d", 2*d, len(rec.fields))
		}
		vals, err := parseFloats(rec, rec.fields)
		if err != nil {
			return err
		}
		q1, q2 := vector(vals[:d], d == 2), vector(vals[d:], d == 2)
		if err = s.AddDistributedLoad(el, q1, q2); err != nil {
			return fmt.Errorf("line %d: %w", rec.line, err)
		}
	}

	return nil
}
