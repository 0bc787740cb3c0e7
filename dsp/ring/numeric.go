package ring

import "golang.org/x/exp/constraints"

// Number is the set of element types supported by the arithmetic helpers.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the sum of the buffer contents, accumulated oldest first.
func Sum[T Number](b *Buffer[T]) T {
	var acc T
	for i := range len(b.data) {
		acc += b.At(i)
	}
	return acc
}

// Dot returns sum(w[i] * b.At(i)) accumulated in ascending index order
// with a single accumulator. Only min(len(w), b.Len()) terms are used.
//
// w[0] multiplies the oldest element and w[b.Len()-1] the newest.
func Dot[T Number](b *Buffer[T], w []T) T {
	n := min(len(w), len(b.data))
	var acc T
	p := b.tail + 1
	for i := range n {
		if p >= len(b.data) {
			p = 0
		}
		acc += w[i] * b.data[p]
		p++
	}
	return acc
}
