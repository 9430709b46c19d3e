package subband

// List is a singly-linked sequence of node-cache indices, in insertion
// order. The zero value is not usable; construct one with NewList.
type List struct {
	cache  *Cache
	head   int32
	tail   int32
	length int
}

// NewList creates an empty list drawing its nodes from cache. Every list
// sharing a subband's bookkeeping (LIP, LSP, NSP) must be built on the same
// cache so that Exchange and Merge can relink nodes between them in O(1).
func NewList(cache *Cache) *List {
	return &List{cache: cache, head: Null, tail: Null}
}

// Len reports the number of positions currently in the list.
func (l *List) Len() int {
	return l.length
}

// Head returns the index of the first node, or Null if the list is empty.
func (l *List) Head() int32 {
	return l.head
}

// Next returns the node following idx in this list, or Null if idx is the
// tail.
func (l *List) Next(idx int32) int32 {
	return l.cache.next(idx)
}

// At returns the position stored at idx.
func (l *List) At(idx int32) (x, y uint16) {
	return l.cache.At(idx)
}

// Add appends a new position to the list's tail. It returns Null if the
// shared cache has no free nodes left, which cannot happen when the cache
// was sized to the subband's coefficient count and every position is added
// at most once.
func (l *List) Add(x, y uint16) int32 {
	idx := l.cache.alloc(x, y)
	if idx == Null {
		return Null
	}
	if l.head == Null {
		l.head = idx
	} else if l.tail != Null {
		l.cache.nodes[l.tail].next = idx
	}
	l.tail = idx
	l.length++
	return idx
}

// Exchange unlinks the node at idx from this (source) list and appends it
// to dest, in O(1). prv must be the index of idx's predecessor in source,
// or Null if idx is source's head. It returns the index that followed idx
// in source before the unlink, or Null if idx was source's tail.
func (l *List) Exchange(dest *List, idx, prv int32) int32 {
	next := l.cache.nodes[idx].next
	if prv != Null {
		l.cache.nodes[prv].next = next
	} else {
		l.head = next
	}
	l.length--

	if dest.head == Null {
		dest.head = idx
	} else if dest.tail != Null {
		l.cache.nodes[dest.tail].next = idx
	}
	dest.tail = idx
	dest.length++
	l.cache.nodes[idx].next = Null
	return next
}

// Merge splices this (source) list onto the end of dest and empties source.
func (l *List) Merge(dest *List) {
	if l.head == Null {
		return
	}
	if dest.tail != Null {
		l.cache.nodes[dest.tail].next = l.head
	} else {
		dest.head = l.head
	}
	dest.tail = l.tail
	dest.length += l.length

	l.head, l.tail, l.length = Null, Null, 0
}
