// SPDX-License-Identifier: MIT
package modelio_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linefem/builder"
	"github.com/katalvlaran/linefem/modelio"
	"github.com/katalvlaran/linefem/structure"
)

const chainModel = `# demo
# Structure model made of finite elements

Nodes:
	1 0.00
	2 1.00
	3 2.00
	4 3.00

Elements:
	1 1 2 1.00 1.00
	2 2 3 1.00 1.00
	3 3 4 2.00

Pinning:
	1
	4

Point_Forces:
	2 1.50

Distributed_Forces:
	1 0.00 1.00
`

func chain(t *testing.T) *structure.Structure {
	t.Helper()
	s, err := builder.Build(nil, []builder.BuilderOption{builder.WithSpringRate(2)},
		builder.Chain(2), builder.SpringChain(1), builder.PinEnds(),
		builder.PointLoad(1, 1.5), builder.LinearLoad(0, 0, 1))
	require.NoError(t, err)

	return s
}

func planar(t *testing.T) *structure.Structure {
	t.Helper()
	s := structure.New(structure.WithPlanar())
	a, err := s.AddNode(structure.Vector{X: -1})
	require.NoError(t, err)
	b, err := s.AddNode(structure.Vector{X: 1})
	require.NoError(t, err)
	c, err := s.AddNode(structure.Vector{Y: 1.25})
	require.NoError(t, err)
	r, err := s.AddRod(210, 0.5, structure.From(a), structure.To(c))
	require.NoError(t, err)
	_, err = s.AddSpring(3, structure.From(b), structure.To(c))
	require.NoError(t, err)
	require.NoError(t, s.Pin(a))
	require.NoError(t, s.PinAxis(b, structure.AxisY))
	require.NoError(t, s.PinAxis(c, structure.AxisX))
	require.NoError(t, s.AddPointForce(c, structure.Vector{Y: -2}))
	require.NoError(t, s.AddPointForce(c, structure.Vector{X: 0.5, Y: 1}))
	require.NoError(t, s.AddDistributedLoad(r, structure.Vector{X: 1}, structure.Vector{Y: -1}))

	return s
}

func save(t *testing.T, s *structure.Structure, comment string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, modelio.Save(&buf, s, comment))

	return buf.String()
}

func TestSaveFormat(t *testing.T) {
	assert.Equal(t, chainModel, save(t, chain(t), "demo"))
}

func TestSavePlanar(t *testing.T) {
	out := save(t, planar(t), "")
	assert.True(t, strings.HasPrefix(out, "# Structure model made of finite elements\n\nNodes:\n\t1 -1.00 0.00\n"))
	assert.Contains(t, out, "Elements:\n\t1 1 3 210.00 0.50\n\t2 2 3 3.00\n")
	assert.Contains(t, out, "Pinning:\n\t1\n\t2 y\n\t3 x\n")
	assert.Contains(t, out, "Point_Forces:\n\t3 0.00 -2.00\n\t3 0.50 1.00\n")
	assert.Contains(t, out, "Distributed_Forces:\n\t1 1.00 0.00 0.00 -1.00\n")
}

func TestSaveOmitsEmptyLoadBlocks(t *testing.T) {
	s, err := builder.Build(nil, nil, builder.Chain(1), builder.PinNodes(0))
	require.NoError(t, err)
	out := save(t, s, "")
	assert.Contains(t, out, "Pinning:\n\t1\n")
	assert.NotContains(t, out, "Point_Forces")
	assert.NotContains(t, out, "Distributed_Forces")
}

func TestRoundTripByteIdentical(t *testing.T) {
	for name, s := range map[string]*structure.Structure{"chain": chain(t), "planar": planar(t)} {
		t.Run(name, func(t *testing.T) {
			first := save(t, s, "round trip")
			loaded, err := modelio.Load(strings.NewReader(first))
			require.NoError(t, err)
			assert.Equal(t, s.Dim(), loaded.Dim())
			assert.Equal(t, s.PinnedDOFs(), loaded.PinnedDOFs())
			assert.Equal(t, first, save(t, loaded, "round trip"))
		})
	}
}

func TestLoadSortsRecords(t *testing.T) {
	const shuffled = `Nodes:
	3 2.00
	1 0.00
	2 1.00
Elements:
	2 2 3 4.00   # spring
	1 1 2 1.00 2.00
Pinning:
	3
Point_Forces:
	2 1.00
`
	s, err := modelio.Load(strings.NewReader(shuffled))
	require.NoError(t, err)
	require.Equal(t, 3, s.NodeCount())
	n, err := s.Node(2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, n.X())
	assert.True(t, n.Pinned(structure.AxisX))

	el, err := s.Element(0)
	require.NoError(t, err)
	assert.Equal(t, structure.Rod, el.Kind())
	assert.Equal(t, 2.0, el.A())
	el, err = s.Element(1)
	require.NoError(t, err)
	assert.Equal(t, structure.Spring, el.Kind())
	assert.Equal(t, 4.0, el.C())

	mid, err := s.Node(1)
	require.NoError(t, err)
	assert.Equal(t, structure.Vector{X: 1}, mid.Resultant())
}

func TestLoadSyntaxErrors(t *testing.T) {
	cases := map[string]struct {
		src  string
		line string
	}{
		"unknown block":       {"Nodes:\n\t1 0\nBeams:\n", "line 3"},
		"record outside":      {"\t1 0\n", "line 1"},
		"bad index":           {"Nodes:\n\tone 0\n", "line 2"},
		"bad number":          {"Nodes:\n\t1 zero\n", "line 2"},
		"gap in nodes":        {"Nodes:\n\t1 0\n\t3 1\n", "line 3"},
		"mixed widths":        {"Nodes:\n\t1 0 0\n\t2 1\n", "line 3"},
		"element width":       {"Nodes:\n\t1 0\n\t2 1\nElements:\n\t1 1 2\n", "line 5"},
		"missing node":        {"Nodes:\n\t1 0\nElements:\n\t1 1 2 1\n", "line 4"},
		"bad axis":            {"Nodes:\n\t1 0 0\nPinning:\n\t1 z\n", "line 4"},
		"force width":         {"Nodes:\n\t1 0\nPoint_Forces:\n\t1 1 2\n", "line 4"},
		"missing element":     {"Nodes:\n\t1 0\nDistributed_Forces:\n\t1 0 1\n", "line 4"},
		"duplicate block":     {"Nodes:\n\t1 0\nNodes:\n", "line 3"},
		"infinite coordinate": {"Nodes:\n\t1 Inf\n", "line 2"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := modelio.Load(strings.NewReader(tc.src))
			require.ErrorIs(t, err, modelio.ErrSyntax)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestLoadModelErrors(t *testing.T) {
	_, err := modelio.Load(strings.NewReader("Nodes:\n\t1 0\n\t2 0\nElements:\n\t1 1 2 1 1\n"))
	require.ErrorIs(t, err, structure.ErrInvalidParameter)
	assert.Contains(t, err.Error(), "line 5")

	_, err = modelio.Load(strings.NewReader("Nodes:\n\t1 0\nPinning:\n\t1 y\n"))
	require.ErrorIs(t, err, structure.ErrInvalidParameter)
}

func TestPrecision(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, modelio.Save(&buf, chain(t), "", modelio.WithPrecision(3)))
	assert.Contains(t, buf.String(), "\t2 1.000\n")
	assert.Panics(t, func() { modelio.WithPrecision(-1) })
}

func TestSaveRejectsValuesLostToRounding(t *testing.T) {
	s := structure.New()
	_, err := s.AddSpring(0.004, structure.WithLength(1))
	require.NoError(t, err)

	var buf bytes.Buffer
	err = modelio.Save(&buf, s, "")
	require.ErrorIs(t, err, modelio.ErrPrecision)
	assert.Empty(t, buf.String())

	require.NoError(t, modelio.Save(&buf, s, "", modelio.WithPrecision(3)))
	back, err := modelio.Load(&buf)
	require.NoError(t, err)
	el, err := back.Element(0)
	require.NoError(t, err)
	assert.Equal(t, 0.004, el.C())

	short := structure.New()
	_, err = short.AddRod(1, 1, structure.WithLength(0.001))
	require.NoError(t, err)
	require.ErrorIs(t, modelio.Save(&buf, short, ""), modelio.ErrPrecision)
}

func TestFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.txt")
	require.NoError(t, modelio.SaveFile(path, planar(t), "file"))

	s, err := modelio.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 3, s.NodeCount())
	assert.Equal(t, 2, s.ElementCount())

	_, err = modelio.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
