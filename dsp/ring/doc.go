// Package ring provides a fixed-capacity circular buffer.
//
// A [Buffer] always holds exactly Len() elements. Pushing a value overwrites
// the oldest element and returns it, so the buffer behaves as a FIFO, shift
// register, or delay line of constant length.
//
// Elements are addressed by logical index: 0 is the oldest element (the
// head) and Len()-1 is the most recently pushed one (the tail). Indices
// outside [0, Len()) wrap modulo Len(), negative indices included.
//
// A Buffer is not safe for concurrent use.
package ring
