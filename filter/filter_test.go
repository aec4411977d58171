package filter

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/stretchr/testify/assert"
)

func TestAcceptAll(t *testing.T) {
	f := AcceptAll()

	assert.True(t, f.Accept(0, 0))
	assert.True(t, f.Accept(7, 123456))
}

func TestFunc(t *testing.T) {
	f := Func(func(queryID int, node uint32) bool {
		return node%2 == uint32(queryID)%2
	})

	assert.True(t, f.Accept(0, 2))
	assert.False(t, f.Accept(0, 3))
	assert.True(t, f.Accept(1, 3))
}

func TestAllowlist(t *testing.T) {
	f := NewAllowlist(1, 3, 5)

	assert.True(t, f.Accept(0, 3))
	assert.False(t, f.Accept(0, 2))

	bm := roaring.New()
	bm.AddRange(10, 20)

	f2 := NewAllowlistBitmap(bm)
	assert.True(t, f2.Accept(0, 15))
	assert.False(t, f2.Accept(0, 20))
}

func TestDenylist(t *testing.T) {
	f := NewDenylist(2, 4)

	assert.True(t, f.Accept(0, 1))
	assert.False(t, f.Accept(0, 4))
}
