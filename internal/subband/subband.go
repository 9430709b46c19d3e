package subband

import "github.com/cocosip/sqz/internal/scan"

// Bookkeeping holds the lazily-allocated node cache and the three lists
// (LIP, LSP, NSP) used by the WDR bitplane coder to track one subband's
// coefficient positions across passes.
type Bookkeeping struct {
	Cache *Cache
	LIP   *List
	LSP   *List
	NSP   *List
}

// New allocates a node cache sized to a width x height subband and
// populates LIP with every coordinate in that rectangle, visited in the
// given scan order. LSP and NSP start empty.
func New(order scan.Order, width, height int) *Bookkeeping {
	b := &Bookkeeping{Cache: NewCache(width * height)}
	b.LIP = NewList(b.Cache)
	b.LSP = NewList(b.Cache)
	b.NSP = NewList(b.Cache)

	if width <= 0 || height <= 0 {
		return b
	}
	enum := scan.New(order, width, height)
	for {
		b.LIP.Add(uint16(enum.X()), uint16(enum.Y()))
		if !enum.Advance() {
			break
		}
	}
	return b
}
