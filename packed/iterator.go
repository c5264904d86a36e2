package packed

// Iterator walks the elements of an Array in index order.
type Iterator struct {
	arr Array
	idx int
}

// Iter returns an iterator positioned before the first element.
func (a Array) Iter() *Iterator {
	return &Iterator{arr: a, idx: -1}
}

// Next advances the iterator to the next element.
// Returns true if an element is available, false if the array is exhausted.
func (it *Iterator) Next() bool {
	it.idx++
	return it.idx < it.arr.length
}

// Value returns the current element.
// Should only be called after Next() returns true.
func (it *Iterator) Value() uint32 {
	return it.arr.Get(it.idx)
}

// Index returns the current element index.
func (it *Iterator) Index() int {
	return it.idx
}
