package diagram

import (
	"math"

	"github.com/katalvlaran/circlepack/tree"
)

// nominalRadii computes r[i] = sqrt(sum over children of r[child]), with
// r[leaf] = 1, for every node in g. This aesthetic heuristic (spec.md 4.5)
// yields a more uniform distribution of leaf sizes than a linear sum would
// on randomly shaped trees.
//
// Computed bottom-up with an explicit post-order stack, not recursion, so
// pathologically deep trees cannot overflow the call stack (spec.md 9).
func nominalRadii(g *tree.Graph) []float64 {
	n := g.Len()
	r := make([]float64, n)

	order := make([]tree.NodeID, 0, n)
	stack := make([]tree.NodeID, 0, g.MaxWidth()+1)
	stack = append(stack, 0)
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, node)
		stack = append(stack, g.Children(node)...)
	}

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		kids := g.Children(node)
		if len(kids) == 0 {
			r[node] = 1
			continue
		}
		sum := 0.0
		for _, c := range kids {
			sum += r[c]
		}
		r[node] = math.Sqrt(sum)
	}
	return r
}
