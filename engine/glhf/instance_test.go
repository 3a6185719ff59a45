package glhf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceStrideCount(t *testing.T) {
	stride := AttrFormat{{Name: "model", Type: Mat4}}.Size()

	count, err := instanceStrideCount(10*16, stride)
	require.NoError(t, err)
	assert.Equal(t, 10, count)

	// rewriting with fewer records only lowers the drawn count
	count, err = instanceStrideCount(3*16, stride)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = instanceStrideCount(0, stride)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestInstanceStrideCountRejectsPartialRecords(t *testing.T) {
	stride := AttrFormat{{Name: "model", Type: Mat4}}.Size()
	_, err := instanceStrideCount(17, stride)
	assert.Error(t, err)
}
