// Package costtable provides the dense N×N cost matrix that is the canonical
// input to the genetic-algorithm solver core (spec.md §3).
//
// Storage is adapted from the teacher's matrix.Dense: a flat row-major
// []float64 buffer of length N², indexed (origin, destination). The broader
// matrix package (adjacency/incidence conversions, linear algebra, graph
// builders) has no consumer here — see DESIGN.md — so only the storage shape
// was carried forward, not the package.
package costtable

import (
	"fmt"
)

// CostTable is a logically dense, immutable-once-built mapping from (i, j) in
// [0,N)² to a non-negative cost. Diagonal entries are always 0.
type CostTable struct {
	n    int       // number of nodes
	data []float64 // row-major buffer, length n*n
}

// New allocates a CostTable of dimension n with every entry zeroed (including
// the diagonal, which is the permanent value for cost[i,i]).
//
// Complexity: O(n²) time and space.
func New(n int) (*CostTable, error) {
	if n <= 0 {
		return nil, fmt.Errorf("costtable: dimension must be positive, got %d", n)
	}
	return &CostTable{n: n, data: make([]float64, n*n)}, nil
}

// N returns the table's dimension.
func (c *CostTable) N() int {
	return c.n
}

// At returns cost[i,j]. Complexity: O(1).
func (c *CostTable) At(i, j int) (float64, error) {
	idx, err := c.index(i, j)
	if err != nil {
		return 0, err
	}
	return c.data[idx], nil
}

// Set assigns cost[i,j] = v. Complexity: O(1).
func (c *CostTable) Set(i, j int, v float64) error {
	idx, err := c.index(i, j)
	if err != nil {
		return err
	}
	c.data[idx] = v
	return nil
}

func (c *CostTable) index(i, j int) (int, error) {
	if i < 0 || i >= c.n || j < 0 || j >= c.n {
		return 0, fmt.Errorf("costtable: index (%d,%d) out of range for n=%d", i, j, c.n)
	}
	return i*c.n + j, nil
}

// TourCost sums the cost of traversing tour in order, optionally closing the
// cycle back to tour[0].
//
// Contract: tour must contain indices in [0,N); len(tour) <= N.
// Complexity: O(len(tour)).
func (c *CostTable) TourCost(tour []int, returnToOrigin bool) (float64, error) {
	if len(tour) < 2 {
		return 0, fmt.Errorf("costtable: tour too short to cost (%d nodes)", len(tour))
	}
	var sum float64
	for k := 0; k < len(tour)-1; k++ {
		w, err := c.At(tour[k], tour[k+1])
		if err != nil {
			return 0, err
		}
		sum += w
	}
	if returnToOrigin {
		w, err := c.At(tour[len(tour)-1], tour[0])
		if err != nil {
			return 0, err
		}
		sum += w
	}
	return sum, nil
}

// ValidateDiagonal checks that cost[i,i] == 0 for every i, per spec.md §8's
// cost-table invariant.
//
// Complexity: O(n).
func (c *CostTable) ValidateDiagonal() error {
	for i := 0; i < c.n; i++ {
		v, err := c.At(i, i)
		if err != nil {
			return err
		}
		if v != 0 {
			return fmt.Errorf("costtable: diagonal entry (%d,%d) is %v, want 0", i, i, v)
		}
	}
	return nil
}

// Row returns a copy of row i (the costs from node i to every node),
// used by nearest-neighbor seeding to scan a single origin's costs.
//
// Complexity: O(n).
func (c *CostTable) Row(i int) ([]float64, error) {
	if i < 0 || i >= c.n {
		return nil, fmt.Errorf("costtable: row index %d out of range for n=%d", i, c.n)
	}
	out := make([]float64, c.n)
	copy(out, c.data[i*c.n:(i+1)*c.n])
	return out, nil
}
