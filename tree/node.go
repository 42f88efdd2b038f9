package tree

// Node is a node of a regression tree: either a *Leaf or an *Internal.
type Node interface {
	// Samples returns the number of training rows that reached the node.
	Samples() int

	isNode()
}

// Leaf is a terminal node holding a constant prediction.
type Leaf struct {
	Prediction float64 // 到達した訓練データの目的変数の平均
	NSamples   int
}

// Internal is a split node. Rows with x[Feature] <= Threshold go Left, the
// rest go Right.
type Internal struct {
	Feature   int
	Threshold float64
	Gain      float64 // 分割による分散の減少量
	Left      Node
	Right     Node
	NSamples  int
}

// Samples implements Node.
func (l *Leaf) Samples() int { return l.NSamples }

// Samples implements Node.
func (n *Internal) Samples() int { return n.NSamples }

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}
