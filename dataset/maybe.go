// SPDX-License-Identifier: MIT

package dataset

// Maybe is an optional cell value. The zero value is unset.
type Maybe[T any] struct {
	Value T    `msgpack:"v"`
	Valid bool `msgpack:"ok"`
}

// Some returns a set Maybe holding v.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{Value: v, Valid: true}
}

// None returns an unset Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get returns the value and whether it is set.
func (m Maybe[T]) Get() (T, bool) {
	return m.Value, m.Valid
}

// Series is one column of a Dataset, one cell per slot.
type Series[T any] []Maybe[T]

// newSeries allocates n unset cells.
func newSeries[T any](n int) Series[T] {
	return make(Series[T], n)
}

// Set counts the valid cells.
func (s Series[T]) Set() int {
	var n int
	for _, c := range s {
		if c.Valid {
			n++
		}
	}

	return n
}
