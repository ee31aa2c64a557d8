// Package batching provides the small concurrency helpers shared by the
// batch-oriented analyzers: slicing input into fixed-size batches and
// collecting results from concurrent workers.
package batching

import "sync"

// Partition splits items into consecutive batches of at most size elements.
// The returned slices alias the input.
func Partition[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = len(items)
	}
	var batches [][]T
	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}
		batches = append(batches, items[start:end])
	}
	return batches
}

// Buffer accumulates values from concurrent goroutines. Results land in
// completion order, not submission order.
type Buffer[T any] struct {
	mu    sync.Mutex
	items []T
}

func NewBuffer[T any](capacity int) *Buffer[T] {
	return &Buffer[T]{items: make([]T, 0, capacity)}
}

func (b *Buffer[T]) Add(item T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, item)
}

func (b *Buffer[T]) Size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Drain returns the accumulated items and resets the buffer.
func (b *Buffer[T]) Drain() []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	items := b.items
	b.items = nil
	return items
}
