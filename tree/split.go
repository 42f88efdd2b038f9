package tree

import (
	"sort"
)

// split is a candidate partition of a node's rows.
type split struct {
	feature   int
	threshold float64
	reduction float64
}

// builder grows a tree over a fixed training set. Nodes refer to rows by
// index so partitions never copy feature data.
type builder struct {
	x          [][]float64
	y          []float64
	nFeatures  int
	maxDepth   int
	minSamples int
	importance []float64
}

// build grows the subtree for rows at the given depth.
func (b *builder) build(rows []int, depth int) Node {
	n := len(rows)
	targets := b.targets(rows)
	mean := meanOf(targets)

	if n <= b.minSamples || depth >= b.maxDepth {
		return &Leaf{Prediction: mean, NSamples: n}
	}

	best, ok := b.bestSplit(rows, popVariance(targets, mean))
	if !ok {
		return &Leaf{Prediction: mean, NSamples: n}
	}

	left, right := b.partition(rows, best.feature, best.threshold)
	b.importance[best.feature] += float64(n) * best.reduction

	return &Internal{
		Feature:   best.feature,
		Threshold: best.threshold,
		Gain:      best.reduction,
		Left:      b.build(left, depth+1),
		Right:     b.build(right, depth+1),
		NSamples:  n,
	}
}

// bestSplit searches every feature and every midpoint between consecutive
// distinct values. Only a strictly greater reduction replaces the current
// best, so ties keep the earliest feature and then the lowest threshold.
// ok is false when no candidate reduces the variance.
func (b *builder) bestSplit(rows []int, current float64) (best split, ok bool) {
	n := float64(len(rows))

	for f := 0; f < b.nFeatures; f++ {
		values := b.distinctSorted(rows, f)
		for i := 0; i+1 < len(values); i++ {
			threshold := (values[i] + values[i+1]) / 2

			left, right := b.partition(rows, f, threshold)
			if len(left) == 0 || len(right) == 0 {
				continue
			}

			lt, rt := b.targets(left), b.targets(right)
			lv := popVariance(lt, meanOf(lt))
			rv := popVariance(rt, meanOf(rt))
			weighted := (float64(len(left))*lv + float64(len(right))*rv) / n

			if reduction := current - weighted; reduction > best.reduction {
				best = split{feature: f, threshold: threshold, reduction: reduction}
				ok = true
			}
		}
	}
	return best, ok
}

// partition splits rows on x[f] <= threshold, keeping the original order
// on both sides.
func (b *builder) partition(rows []int, f int, threshold float64) (left, right []int) {
	for _, r := range rows {
		if b.x[r][f] <= threshold {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}
	return left, right
}

func (b *builder) distinctSorted(rows []int, f int) []float64 {
	seen := make(map[float64]struct{}, len(rows))
	values := make([]float64, 0, len(rows))
	for _, r := range rows {
		v := b.x[r][f]
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	sort.Float64s(values)
	return values
}

func (b *builder) targets(rows []int) []float64 {
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = b.y[r]
	}
	return out
}

// meanOf and popVariance accumulate left to right in row order so a given
// training set always yields the same splits.
func meanOf(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// popVariance is the biased variance (divisor n) around mean.
func popVariance(values []float64, mean float64) float64 {
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}
