// Package sliceutil contains utility functions for working with slices.
// It's an extension of the std slices package.
package sliceutil

import "iter"

// CollectErr collects items from a sequence of items and errors,
// stopping at the first error and returning it.
func CollectErr[T any](ents iter.Seq2[T, error]) ([]T, error) {
	var items []T
	for item, err := range ents {
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// All2 returns an iterator over the items in the slice,
// using the zero value for the second type B.
func All2[B, A any](items []A) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		var zeroB B
		for _, item := range items {
			if !yield(item, zeroB) {
				return
			}
		}
	}
}

// Empty2 returns an empty iterator for a sequence of two types A and B.
func Empty2[A, B any]() iter.Seq2[A, B] {
	return func(func(A, B) bool) {
	}
}
