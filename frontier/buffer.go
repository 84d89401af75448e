package frontier

import "github.com/katalvlaran/pargraph/core"

// Buffer is a worker-local scratch list. The zero value is ready to use and
// its storage is reused across rounds.
type Buffer struct {
	items []core.Vertex
}

// Append adds v to the buffer.
func (b *Buffer) Append(v core.Vertex) { b.items = append(b.items, v) }

// Len returns the number of buffered vertices.
func (b *Buffer) Len() int { return len(b.items) }

// Reset empties the buffer, keeping its storage.
func (b *Buffer) Reset() { b.items = b.items[:0] }

// Flush publishes the buffered vertices into f with a single reservation and
// resets the buffer.
func (b *Buffer) Flush(f *Frontier) {
	f.Publish(b.items)
	b.Reset()
}
