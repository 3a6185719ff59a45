package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleTableAllocatesSequentially(t *testing.T) {
	var table handleTable
	assert.Equal(t, uint32(1), table.alloc())
	assert.Equal(t, uint32(2), table.alloc())
	assert.Equal(t, uint32(3), table.alloc())
}

func TestHandleTableReusesFreedSlots(t *testing.T) {
	var table handleTable
	first := table.alloc()
	table.alloc()
	require.True(t, table.release(first))
	assert.Equal(t, first, table.alloc())
}

func TestHandleTableRejectsStaleHandles(t *testing.T) {
	var table handleTable
	handle := table.alloc()
	require.True(t, table.release(handle))

	_, ok := table.lookup(handle)
	assert.False(t, ok)
	assert.False(t, table.release(handle))
}

func TestHandleTableRejectsZeroAndUnknown(t *testing.T) {
	var table handleTable
	table.alloc()

	_, ok := table.lookup(0)
	assert.False(t, ok)
	_, ok = table.lookup(42)
	assert.False(t, ok)
}
