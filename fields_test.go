package traceback

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields_basic(t *testing.T) {
	f := fields{}
	assertFields(t, f)

	f.Append("key1", 1, "key2", "2", "key3", io.EOF)
	assertFields(t, f, "key1", 1, "key2", "2", "key3", io.EOF)

	f.Append("key4", 4)
	assertFields(t, f, "key1", 1, "key2", "2", "key3", io.EOF, "key4", 4)

	f.Set("key3", 3)
	assertFields(t, f, "key1", 1, "key2", "2", "key3", 3, "key4", 4)

	f.Set("key5", 5)
	assertFields(t, f, "key1", 1, "key2", "2", "key3", 3, "key4", 4, "key5", 5)
	require.Equal(t, "key5", f[4].key)
}

func TestFields_missingValue(t *testing.T) {
	f := fields{}
	f.Append("key1", 1, "key2")
	assertFields(t, f, "key1", 1, "key2", "<missing>")

	f = fields{}
	f.Append(7, "seven", nil, "nil")
	assertFields(t, f, "7", "seven", "", "nil")
}

func TestFields_grow(t *testing.T) {
	f := fields{}
	f.Grow(5)
	require.Equal(t, 0, len(f))
	require.Equal(t, 5, cap(f))

	f.Append("key1", 1)
	f.Grow(2)
	require.Equal(t, 1, len(f))
	require.GreaterOrEqual(t, cap(f), 3)
	assertFields(t, f, "key1", 1)
}

func assertFields(t *testing.T, f fields, kvs ...interface{}) {
	require.Equal(t, len(kvs)/2, len(f))
	for i := 0; i+1 < len(kvs); i += 2 {
		val, ok := f.Get(kvs[i].(string))
		assert.True(t, ok)
		assert.Equal(t, kvs[i+1], val)
	}
	_, ok := f.Get("does-not-exist")
	assert.False(t, ok)
}
