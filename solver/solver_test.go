// SPDX-License-Identifier: MIT
package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linefem/builder"
	"github.com/katalvlaran/linefem/matrix"
	"github.com/katalvlaran/linefem/matrix/ops"
	"github.com/katalvlaran/linefem/solver"
	"github.com/katalvlaran/linefem/structure"
)

const tol = 1e-9

var allMethods = []solver.Method{solver.Gauss, solver.InverseMatrix, solver.LU}

func build(t *testing.T, bopts []builder.BuilderOption, cons ...builder.Constructor) *structure.Structure {
	t.Helper()
	s, err := builder.Build(nil, bopts, cons...)
	require.NoError(t, err)

	return s
}

func solve(t *testing.T, s *structure.Structure, m solver.Method) []float64 {
	t.Helper()
	sv, err := solver.New(s)
	require.NoError(t, err)
	u, err := sv.Solve(m, false)
	require.NoError(t, err)

	return u.Values()
}

// TestScenarios checks closed-form answers for every method.
func TestScenarios(t *testing.T) {
	springs := []builder.BuilderOption{builder.WithSpringRate(2)}
	cases := []struct {
		name string
		s    *structure.Structure
		want []float64
	}{
		{
			name: "single rod u=FL/EA",
			s:    build(t, nil, builder.Chain(1), builder.PinNodes(0), builder.PointLoad(1, 1)),
			want: []float64{0, 1},
		},
		{
			name: "single rod scaled",
			s: build(t, []builder.BuilderOption{builder.WithLength(2), builder.WithMaterial(4, 0.5)},
				builder.Chain(1), builder.PinNodes(0), builder.PointLoad(1, 3)),
			want: []float64{0, 3},
		},
		{
			name: "two rods force at middle node",
			s:    build(t, nil, builder.Chain(2), builder.PinEnds(), builder.PointLoad(1, 1)),
			want: []float64{0, 0.5, 0},
		},
		{
			name: "three rods force at node 1",
			s:    build(t, nil, builder.Chain(3), builder.PinEnds(), builder.PointLoad(1, 1)),
			want: []float64{0, 2.0 / 3, 1.0 / 3, 0},
		},
		{
			name: "linear distributed load on a cantilever",
			s:    build(t, nil, builder.Chain(1), builder.PinNodes(0), builder.LinearLoad(0, 0, 1)),
			want: []float64{0, 1.0 / 3},
		},
		{
			name: "branched chain",
			s:    build(t, springs, builder.BranchedChain(2, 3)),
			want: []float64{0, -0.6, 0.8, 3.8, 0},
		},
		{
			name: "back spring chain",
			s:    build(t, springs, builder.BackSpringChain(2, 3)),
			want: []float64{3.4, 1.4, 2.2, 0, 0},
		},
		{
			name: "spring supported chain",
			s:    build(t, springs, builder.SpringSupportedChain(2, 1)),
			want: []float64{0, -49.0 / 180, -49.0 / 36, -37.0 / 60, -37.0 / 180, 0},
		},
	}
	for _, tc := range cases {
		for _, m := range allMethods {
			t.Run(tc.name+"/"+m.String(), func(t *testing.T) {
				assert.InDeltaSlice(t, tc.want, solve(t, tc.s, m), tol)
			})
		}
	}
}

// TestMatchesGonum solves the constrained system independently with gonum.
func TestMatchesGonum(t *testing.T) {
	s := build(t, []builder.BuilderOption{builder.WithSpringRate(2)}, builder.SpringSupportedChain(2, 1))
	sv, err := solver.New(s)
	require.NoError(t, err)
	require.NoError(t, sv.ApplyBoundaryConditions())

	K, f := sv.Stiffness(), sv.Loads()
	n := K.Rows()
	var ref mat.VecDense
	require.NoError(t, ref.SolveVec(mat.NewDense(n, n, K.Values()), mat.NewVecDense(n, f.Values())))

	u, err := sv.Solve(solver.Gauss, false)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		got, err := u.AtIndex(i)
		require.NoError(t, err)
		assert.InDelta(t, ref.AtVec(i), got, tol)
	}
}

// TestPlanarTruss: symmetric two-bar truss under a vertical load at the apex.
func TestPlanarTruss(t *testing.T) {
	s := structure.New(structure.WithPlanar())
	a, err := s.AddNode(structure.Vector{X: -1})
	require.NoError(t, err)
	b, err := s.AddNode(structure.Vector{X: 1})
	require.NoError(t, err)
	c, err := s.AddNode(structure.Vector{Y: 1})
	require.NoError(t, err)
	_, err = s.AddRod(1, 1, structure.From(a), structure.To(c))
	require.NoError(t, err)
	_, err = s.AddRod(1, 1, structure.From(b), structure.To(c))
	require.NoError(t, err)
	require.NoError(t, s.Pin(a))
	require.NoError(t, s.Pin(b))
	require.NoError(t, s.AddPointForce(c, structure.VectorPolar(1, 270)))

	for _, m := range allMethods {
		u := solve(t, s, m)
		assert.InDeltaSlice(t, []float64{0, 0, 0, 0, 0, -math.Sqrt2}, u, tol, m.String())
	}
}

// TestRotatedRodMatchesAxial: a vertical rod restrained laterally behaves
// like the one-dimensional rod along its axis.
func TestRotatedRodMatchesAxial(t *testing.T) {
	s := structure.New(structure.WithPlanar())
	el, err := s.AddRod(2, 3, structure.WithOffset(structure.Vector{Y: 4}))
	require.NoError(t, err)
	require.NoError(t, s.Pin(el.Start()))
	require.NoError(t, s.PinAxis(el.End(), structure.AxisX))
	require.NoError(t, s.AddPointForce(el.End(), structure.Vector{Y: 6}))

	u := solve(t, s, solver.Gauss)
	oneD := solve(t, build(t,
		[]builder.BuilderOption{builder.WithLength(4), builder.WithMaterial(2, 3)},
		builder.Chain(1), builder.PinNodes(0), builder.PointLoad(1, 6)), solver.Gauss)

	assert.InDelta(t, oneD[1], u[3], tol)
	assert.InDelta(t, 0, u[2], tol)
}

// TestEliminateIdempotent: applying boundary elimination twice changes nothing.
func TestEliminateIdempotent(t *testing.T) {
	s := build(t, nil, builder.Chain(3), builder.PinEnds(), builder.PointLoad(1, 1))
	K, err := s.GlobalStiffness()
	require.NoError(t, err)
	f, err := s.LoadVector()
	require.NoError(t, err)

	k1, f1, err := solver.Eliminate(K, f, s.PinnedDOFs())
	require.NoError(t, err)
	k2, f2, err := solver.Eliminate(k1, f1, s.PinnedDOFs())
	require.NoError(t, err)
	assert.True(t, matrix.Equal(k1, k2))
	assert.True(t, matrix.Equal(f1, f2))

	// Inputs are untouched.
	K0, err := s.GlobalStiffness()
	require.NoError(t, err)
	assert.True(t, matrix.Equal(K, K0))

	want, err := matrix.FromRows([][]float64{
		{1, 0, 0, 0},
		{0, 2, -1, 0},
		{0, -1, 2, 0},
		{0, 0, 0, 1},
	})
	require.NoError(t, err)
	assert.True(t, matrix.Equal(k1, want))

	sv, err := solver.New(s)
	require.NoError(t, err)
	require.NoError(t, sv.ApplyBoundaryConditions())
	require.NoError(t, sv.ApplyBoundaryConditions())
	assert.True(t, sv.Applied())
	assert.True(t, matrix.Equal(sv.Stiffness(), want))
	assert.True(t, matrix.Equal(sv.RawStiffness(), K))

	_, _, err = solver.Eliminate(K, f, []int{9})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestInverseOfConstrainedK: K·K⁻¹ ≈ I after boundary elimination.
func TestInverseOfConstrainedK(t *testing.T) {
	s := build(t, []builder.BuilderOption{builder.WithSpringRate(2)}, builder.BranchedChain(2, 3))
	sv, err := solver.New(s)
	require.NoError(t, err)
	require.NoError(t, sv.ApplyBoundaryConditions())

	K := sv.Stiffness()
	Kinv, err := ops.Inverse(K)
	require.NoError(t, err)
	prod, err := matrix.Mul(K, Kinv)
	require.NoError(t, err)
	id, err := matrix.Identity(K.Rows())
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(prod, id, tol))

	var ref mat.Dense
	require.NoError(t, ref.Inverse(mat.NewDense(K.Rows(), K.Cols(), K.Values())))
	assert.InDeltaSlice(t, ref.RawMatrix().Data, Kinv.Values(), tol)

	u1, err := sv.Solve(solver.InverseMatrix, true)
	require.NoError(t, err)
	u2, err := sv.Solve(solver.Gauss, true)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(u1, u2, tol))
}

func TestSingularSystem(t *testing.T) {
	free := build(t, nil, builder.Chain(2), builder.PointLoad(1, 1))
	for _, m := range allMethods {
		sv, err := solver.New(free)
		require.NoError(t, err)
		_, err = sv.Solve(m, false)
		require.ErrorIs(t, err, solver.ErrSingular, m.String())
	}

	// Planar rod without lateral support is a mechanism.
	s := structure.New(structure.WithPlanar())
	el, err := s.AddRod(1, 1, structure.WithLength(1))
	require.NoError(t, err)
	require.NoError(t, s.Pin(el.Start()))
	sv, err := solver.New(s)
	require.NoError(t, err)
	_, err = sv.Solve(solver.Gauss, false)
	require.ErrorIs(t, err, solver.ErrSingular)
}

func TestInvalidMethod(t *testing.T) {
	s := build(t, nil, builder.Chain(1), builder.PinNodes(0))
	sv, err := solver.New(s)
	require.NoError(t, err)
	_, err = sv.Solve(solver.Method(42), false)
	require.ErrorIs(t, err, solver.ErrInvalidMethod)

	_, err = solver.ParseMethod("cholesky")
	require.ErrorIs(t, err, solver.ErrInvalidMethod)

	for name, want := range map[string]solver.Method{
		"gauss": solver.Gauss, "INV": solver.InverseMatrix, "inverse": solver.InverseMatrix, " lu ": solver.LU,
	} {
		got, err := solver.ParseMethod(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err = solver.New(s, solver.WithMethod(solver.Method(-1)))
	require.ErrorIs(t, err, solver.ErrInvalidMethod)
	assert.Equal(t, "method(42)", solver.Method(42).String())
}

func TestNewErrors(t *testing.T) {
	_, err := solver.New(nil)
	require.ErrorIs(t, err, solver.ErrNilStructure)
	_, err = solver.New(structure.New())
	require.ErrorIs(t, err, solver.ErrEmptyStructure)
}

// TestCaching: the cached result is returned until recalculation is requested.
func TestCaching(t *testing.T) {
	s := build(t, nil, builder.Chain(2), builder.PinEnds(), builder.PointLoad(1, 1))
	sv, err := solver.New(s)
	require.NoError(t, err)

	_, ok := sv.SolvedWith()
	assert.False(t, ok)

	u1, err := sv.Solve(solver.Gauss, false)
	require.NoError(t, err)
	require.NoError(t, u1.Set(1, 0, 100)) // callers get copies

	u2, err := sv.Solve(solver.LU, false)
	require.NoError(t, err)
	m, _ := sv.SolvedWith()
	assert.Equal(t, solver.Gauss, m)
	assert.InDelta(t, 0.5, u2.Values()[1], tol)

	_, err = sv.Solve(solver.LU, true)
	require.NoError(t, err)
	m, ok = sv.SolvedWith()
	assert.True(t, ok)
	assert.Equal(t, solver.LU, m)
}

func TestDisplacementsLeavesInputUntouched(t *testing.T) {
	s := build(t, nil, builder.Chain(2), builder.PinEnds(), builder.PointLoad(1, 1))
	sv, err := solver.New(s, solver.WithMethod(solver.InverseMatrix))
	require.NoError(t, err)
	assert.Equal(t, solver.InverseMatrix, sv.Method())

	solved, err := sv.Displacements()
	require.NoError(t, err)
	assert.True(t, solved.Solved())
	assert.Same(t, sv.Structure(), solved)
	mid, err := solved.Node(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, mid.U(), tol)

	assert.False(t, s.Solved())
	orig, err := s.Node(1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, orig.U())

	q := sv.Unknowns()
	require.Len(t, q, 3)
	assert.Equal(t, "u2", q[1].Label)
	raw := sv.RawLoads()
	assert.Equal(t, []float64{0, 1, 0}, raw.Values())
	require.NoError(t, raw.Set(1, 0, 7))
	assert.Equal(t, []float64{0, 1, 0}, sv.RawLoads().Values())
}

func TestLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := build(t, nil, builder.Chain(2), builder.PinEnds(), builder.PointLoad(1, 1))
	sv, err := solver.New(s, solver.WithLogger(zap.New(core)))
	require.NoError(t, err)
	_, err = sv.Solve(solver.Gauss, false)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("system assembled").Len())
	assert.Equal(t, 1, logs.FilterMessage("boundary conditions applied").Len())
	solvedLogs := logs.FilterMessage("system solved").All()
	require.Len(t, solvedLogs, 1)
	assert.Equal(t, "gauss", solvedLogs[0].ContextMap()["method"])
}
