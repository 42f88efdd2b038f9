package tree

import (
	"fmt"
	"strings"
)

// Walk visits every node depth-first, left before right, starting at the
// root with depth 0. Returning false from fn skips the node's children.
func (r *Regressor) Walk(fn func(n Node, depth int) bool) {
	if r == nil {
		return
	}
	walk(r.root, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) bool) {
	switch node := n.(type) {
	case *Leaf:
		if node != nil {
			fn(node, depth)
		}
	case *Internal:
		if node == nil || !fn(node, depth) {
			return
		}
		walk(node.Left, depth+1, fn)
		walk(node.Right, depth+1, fn)
	}
}

// Depth returns the length of the longest root-to-leaf path. A single leaf
// has depth 0.
func (r *Regressor) Depth() int {
	max := 0
	r.Walk(func(_ Node, depth int) bool {
		if depth > max {
			max = depth
		}
		return true
	})
	return max
}

// NLeaves returns the number of leaves.
func (r *Regressor) NLeaves() int {
	count := 0
	r.Walk(func(n Node, _ int) bool {
		if _, ok := n.(*Leaf); ok {
			count++
		}
		return true
	})
	return count
}

// FeatureName returns the configured name of feature f, or "x[f]".
func (r *Regressor) FeatureName(f int) string {
	if f >= 0 && f < len(r.featureNames) {
		return r.featureNames[f]
	}
	return fmt.Sprintf("x[%d]", f)
}

// String renders the tree one node per line, children indented below
// their parent, left branch first.
func (r *Regressor) String() string {
	var sb strings.Builder
	r.Walk(func(n Node, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		switch node := n.(type) {
		case *Leaf:
			fmt.Fprintf(&sb, "leaf: %.4f (n=%d)\n", node.Prediction, node.NSamples)
		case *Internal:
			fmt.Fprintf(&sb, "%s <= %g (n=%d, gain=%.4f)\n",
				r.FeatureName(node.Feature), node.Threshold, node.NSamples, node.Gain)
		}
		return true
	})
	return sb.String()
}
