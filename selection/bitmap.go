package selection

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// Bitmap is a compressed Set for uint32 row identifiers, backed by a Roaring
// Bitmap. It stays compact for large, dense selections (select-all over a big
// dataset) where a map would allocate per member.
type Bitmap struct {
	rb *roaring.Bitmap
}

// NewBitmap creates an empty bitmap set.
func NewBitmap() *Bitmap {
	return &Bitmap{rb: roaring.New()}
}

// Add inserts an identifier.
func (b *Bitmap) Add(id uint32) {
	b.rb.Add(id)
}

// Remove deletes an identifier.
func (b *Bitmap) Remove(id uint32) {
	b.rb.Remove(id)
}

// Contains reports membership.
func (b *Bitmap) Contains(id uint32) bool {
	return b.rb.Contains(id)
}

// Toggle flips membership of a single identifier.
func (b *Bitmap) Toggle(id uint32) {
	if b.rb.Contains(id) {
		b.rb.Remove(id)
	} else {
		b.rb.Add(id)
	}
}

// Len returns the number of identifiers in the set.
func (b *Bitmap) Len() int {
	return int(b.rb.GetCardinality())
}

// Clear removes all identifiers.
func (b *Bitmap) Clear() {
	b.rb.Clear()
}

// All iterates over the identifiers in ascending order.
func (b *Bitmap) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
