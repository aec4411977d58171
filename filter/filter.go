// Package filter provides admission predicates restricting which node ids may
// act as traversal parents or appear in search results.
//
// A rejected node is not an error: searches absorb rejections and may return
// fewer results than requested.
package filter

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Filter decides whether a node may be admitted for the given query.
// Implementations must be safe for concurrent use.
type Filter interface {
	Accept(queryID int, node uint32) bool
}

// Func adapts a plain function to the Filter interface.
type Func func(queryID int, node uint32) bool

// Accept implements Filter.
func (f Func) Accept(queryID int, node uint32) bool { return f(queryID, node) }

// AcceptAll admits every node. A nil Filter is treated the same way and
// disables the filtering stages entirely.
func AcceptAll() Filter {
	return Func(func(int, uint32) bool { return true })
}

// Allowlist admits only nodes contained in the bitmap.
type Allowlist struct {
	bm *roaring.Bitmap
}

// NewAllowlist creates an allowlist over the given node ids.
func NewAllowlist(ids ...uint32) *Allowlist {
	bm := roaring.New()
	bm.AddMany(ids)

	return &Allowlist{bm: bm}
}

// NewAllowlistBitmap creates an allowlist over an existing bitmap.
// The bitmap must not be mutated while searches are running.
func NewAllowlistBitmap(bm *roaring.Bitmap) *Allowlist {
	return &Allowlist{bm: bm}
}

// Accept implements Filter.
func (f *Allowlist) Accept(_ int, node uint32) bool {
	return f.bm.Contains(node)
}

// Denylist rejects nodes contained in the bitmap.
type Denylist struct {
	bm *roaring.Bitmap
}

// NewDenylist creates a denylist over the given node ids.
func NewDenylist(ids ...uint32) *Denylist {
	bm := roaring.New()
	bm.AddMany(ids)

	return &Denylist{bm: bm}
}

// NewDenylistBitmap creates a denylist over an existing bitmap.
// The bitmap must not be mutated while searches are running.
func NewDenylistBitmap(bm *roaring.Bitmap) *Denylist {
	return &Denylist{bm: bm}
}

// Accept implements Filter.
func (f *Denylist) Accept(_ int, node uint32) bool {
	return !f.bm.Contains(node)
}
