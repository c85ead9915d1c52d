package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("write.max_attempts", 5))

	val, ok := store.Get("write.max_attempts")
	require.True(t, ok)
	assert.Equal(t, 5, val)
}

func TestConfigStore_GetMissing(t *testing.T) {
	store := NewConfigStore()

	_, ok := store.Get("nope")

	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("write.retry_interval", "2s"))
	require.NoError(t, store.Set("write.max_attempts", 3))
	require.NoError(t, store.Set("history.enabled", true))

	assert.Equal(t, "2s", store.GetString("write.retry_interval"))
	assert.Equal(t, 3, store.GetInt("write.max_attempts"))
	assert.True(t, store.GetBool("history.enabled"))
}

func TestConfigStore_TypedGetters_WrongTypes(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("key", []byte("not a string")))

	assert.Empty(t, store.GetString("key"))
	assert.Zero(t, store.GetInt("key"))
	assert.False(t, store.GetBool("key"))
}

func TestConfigStore_GetInt_NumericConversions(t *testing.T) {
	store := NewConfigStore()
	require.NoError(t, store.Set("as_int64", int64(7)))
	require.NoError(t, store.Set("as_float", float64(9)))

	assert.Equal(t, 7, store.GetInt("as_int64"))
	assert.Equal(t, 9, store.GetInt("as_float"))
}

func TestConfigStore_SaveLoadPath(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}
