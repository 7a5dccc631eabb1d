package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/starlabel/builder"
	"github.com/katalvlaran/starlabel/core"
)

//----------------------------------------------------------------------------//
// Parameter validation
//----------------------------------------------------------------------------//

// TestConstructors_InvalidParameters verifies fail-fast rejection with the
// right sentinel and no partial topology.
func TestConstructors_InvalidParameters(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*core.Graph, error)
		want  error
	}{
		{"AmalgamatedZeroBranches", func() (*core.Graph, error) { return builder.AmalgamatedStar(0, 2) }, builder.ErrTooFewBranches},
		{"AmalgamatedOneBranch", func() (*core.Graph, error) { return builder.AmalgamatedStar(1, 2) }, builder.ErrTooFewBranches},
		{"AmalgamatedZeroLeaves", func() (*core.Graph, error) { return builder.AmalgamatedStar(3, 0) }, builder.ErrTooFewLeaves},
		{"HomogeneousZero", func() (*core.Graph, error) { return builder.HomogeneousStar(0) }, builder.ErrTooFewBranches},
		{"SnowflakeSelfLoopRing", func() (*core.Graph, error) { return builder.Snowflake(1) }, builder.ErrTooFewBranches},
		{"SnowflakeDoubleEdgeRing", func() (*core.Graph, error) { return builder.Snowflake(2) }, builder.ErrTooFewBranches},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.build()
			if !errors.Is(err, tc.want) {
				t.Errorf("error = %v; want %v", err, tc.want)
			}
			if g != nil {
				t.Error("partial topology returned alongside error")
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Amalgamated star
//----------------------------------------------------------------------------//

// TestAmalgamatedStar_Shape checks order and degrees for several (n,m).
func TestAmalgamatedStar_Shape(t *testing.T) {
	cases := []struct{ n, m int }{{3, 2}, {2, 5}, {4, 3}, {3, 1}}
	for _, tc := range cases {
		g, err := builder.AmalgamatedStar(tc.n, tc.m)
		if err != nil {
			t.Fatalf("AmalgamatedStar(%d,%d) error: %v", tc.n, tc.m, err)
		}

		wantOrder := tc.n*tc.m + 1
		if g.Order() != wantOrder {
			t.Errorf("(%d,%d) Order = %d; want %d", tc.n, tc.m, g.Order(), wantOrder)
		}
		if g.EdgeCount() != tc.n*tc.m {
			t.Errorf("(%d,%d) EdgeCount = %d; want %d", tc.n, tc.m, g.EdgeCount(), tc.n*tc.m)
		}

		// Center degree n; branch degree 1 center edge + m-1 leaves; leaf degree 1.
		if d, _ := g.Degree(core.Center); d != tc.n {
			t.Errorf("(%d,%d) center degree = %d; want %d", tc.n, tc.m, d, tc.n)
		}
		for i := 1; i <= tc.n; i++ {
			if d, _ := g.Degree(i); d != tc.m {
				t.Errorf("(%d,%d) branch %d degree = %d; want %d", tc.n, tc.m, i, d, tc.m)
			}
		}
		for v := tc.n + 1; v < wantOrder; v++ {
			if d, _ := g.Degree(v); d != 1 {
				t.Errorf("(%d,%d) leaf %d degree = %d; want 1", tc.n, tc.m, v, d)
			}
		}
	}
}

// TestAmalgamatedStar_LeafOwnership verifies leaves attach branch-by-branch
// in sequential id order.
func TestAmalgamatedStar_LeafOwnership(t *testing.T) {
	g, err := builder.AmalgamatedStar(3, 3)
	if err != nil {
		t.Fatalf("AmalgamatedStar(3,3) error: %v", err)
	}

	// Branch 1 owns leaves 4,5; branch 2 owns 6,7; branch 3 owns 8,9.
	wantOwner := map[int]int{4: 1, 5: 1, 6: 2, 7: 2, 8: 3, 9: 3}
	for leaf, branch := range wantOwner {
		if !g.HasEdge(branch, leaf) {
			t.Errorf("missing edge branch %d ↔ leaf %d", branch, leaf)
		}
	}
}

//----------------------------------------------------------------------------//
// Homogeneous star S(n,3)
//----------------------------------------------------------------------------//

// TestHomogeneousStar_Shape checks order and degrees.
func TestHomogeneousStar_Shape(t *testing.T) {
	for _, n := range []int{1, 4, 9} {
		g, err := builder.HomogeneousStar(n)
		if err != nil {
			t.Fatalf("HomogeneousStar(%d) error: %v", n, err)
		}

		if g.Order() != 3*n+1 {
			t.Errorf("n=%d Order = %d; want %d", n, g.Order(), 3*n+1)
		}
		if g.EdgeCount() != 3*n {
			t.Errorf("n=%d EdgeCount = %d; want %d", n, g.EdgeCount(), 3*n)
		}
		if d, _ := g.Degree(core.Center); d != n {
			t.Errorf("n=%d center degree = %d; want %d", n, d, n)
		}
		for i := 1; i <= n; i++ {
			if d, _ := g.Degree(i); d != 3 {
				t.Errorf("n=%d branch %d degree = %d; want 3", n, i, d)
			}
		}
		for v := n + 1; v < 3*n+1; v++ {
			if d, _ := g.Degree(v); d != 1 {
				t.Errorf("n=%d leaf %d degree = %d; want 1", n, v, d)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Snowflake
//----------------------------------------------------------------------------//

// TestSnowflake_Shape checks order, degrees, and the branch ring.
func TestSnowflake_Shape(t *testing.T) {
	for _, n := range []int{3, 5} {
		g, err := builder.Snowflake(n)
		if err != nil {
			t.Fatalf("Snowflake(%d) error: %v", n, err)
		}

		if g.Order() != 3*n+1 {
			t.Errorf("n=%d Order = %d; want %d", n, g.Order(), 3*n+1)
		}
		// 3n star edges + n ring edges.
		if g.EdgeCount() != 4*n {
			t.Errorf("n=%d EdgeCount = %d; want %d", n, g.EdgeCount(), 4*n)
		}

		// Branch degree: center + 2 leaves + 2 ring neighbors.
		for i := 1; i <= n; i++ {
			if d, _ := g.Degree(i); d != 5 {
				t.Errorf("n=%d branch %d degree = %d; want 5", n, i, d)
			}
			next := i%n + 1
			if !g.HasEdge(i, next) {
				t.Errorf("n=%d missing ring edge %d ↔ %d", n, i, next)
			}
		}
		for v := n + 1; v < 3*n+1; v++ {
			if d, _ := g.Degree(v); d != 1 {
				t.Errorf("n=%d leaf %d degree = %d; want 1", n, v, d)
			}
		}
	}
}

// TestSnowflake_LeafIds verifies the documented leaf id layout n+2(i-1)+j.
func TestSnowflake_LeafIds(t *testing.T) {
	n := 4
	g, err := builder.Snowflake(n)
	if err != nil {
		t.Fatalf("Snowflake(%d) error: %v", n, err)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= 2; j++ {
			leaf := n + 2*(i-1) + j
			if !g.HasEdge(i, leaf) {
				t.Errorf("missing edge branch %d ↔ leaf %d", i, leaf)
			}
		}
	}
}
