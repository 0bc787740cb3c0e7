package ring

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCapacity is returned by [New] when the requested capacity is not positive.
var ErrInvalidCapacity = errors.New("ring capacity must be > 0")

// Buffer is a fixed-capacity circular buffer.
type Buffer[T any] struct {
	data []T
	tail int // physical index of the most recently written element
}

// New returns a buffer of the given capacity with every slot set to init.
func New[T any](capacity int, init T) (*Buffer[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	data := make([]T, capacity)
	for i := range data {
		data[i] = init
	}
	return &Buffer[T]{
		data: data,
		tail: capacity - 1,
	}, nil
}

// Len returns the buffer capacity.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// At returns the element at logical index i, where 0 is the oldest element.
// Indices outside [0, Len()) wrap, so At(-1) is the newest element.
func (b *Buffer[T]) At(i int) T {
	n := len(b.data)
	return b.data[Wrap(b.tail+1+Wrap(i, n), n)]
}

// Oldest returns the element at the head of the buffer.
func (b *Buffer[T]) Oldest() T {
	return b.At(0)
}

// Newest returns the most recently pushed element.
func (b *Buffer[T]) Newest() T {
	return b.data[b.tail]
}

// Push writes v at the tail and returns the evicted head element.
func (b *Buffer[T]) Push(v T) T {
	head := b.tail + 1
	if head >= len(b.data) {
		head = 0
	}
	old := b.data[head]
	b.data[head] = v
	b.tail = head
	return old
}

// Fill sets every slot to v and restores the initial tail position.
func (b *Buffer[T]) Fill(v T) {
	for i := range b.data {
		b.data[i] = v
	}
	b.tail = len(b.data) - 1
}

// Values returns a copy of the contents in logical order, oldest first.
func (b *Buffer[T]) Values() []T {
	out := make([]T, len(b.data))
	n := copy(out, b.data[b.tail+1:])
	copy(out[n:], b.data[:b.tail+1])
	return out
}

// Raw returns a copy of the underlying storage in physical order.
func (b *Buffer[T]) Raw() []T {
	out := make([]T, len(b.data))
	copy(out, b.data)
	return out
}

// String renders the logical contents as "(v0 v1 ... vn-1)".
func (b *Buffer[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := range len(b.data) {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", b.At(i))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Wrap maps index i onto [0, n). Negative indices count back from n.
// n must be positive.
func Wrap(i, n int) int {
	j := i % n
	if j < 0 {
		j += n
	}
	return j
}
