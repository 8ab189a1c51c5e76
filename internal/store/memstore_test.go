package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStoreGetPutDel(t *testing.T) {
	s := NewMemStore()

	_, err := s.Get("foo")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Put("foo", []byte("bar")))
	got, err := s.Get("foo")
	require.NoError(t, err)
	assert.Equal(t, []byte("bar"), got)

	require.NoError(t, s.Put("foo", []byte("qux")))
	got, err = s.Get("foo")
	require.NoError(t, err)
	assert.Equal(t, []byte("qux"), got)

	require.NoError(t, s.Del("foo"))
	_, err = s.Get("foo")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, s.Del("foo"), "deleting an absent key succeeds")
}

func TestMemStoreCopiesValues(t *testing.T) {
	s := NewMemStore()

	in := []byte("abc")
	require.NoError(t, s.Put("k", in))
	in[0] = 'X'

	got, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got, "caller mutation must not reach the store")

	got[0] = 'Y'
	again, err := s.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again, "returned slice is a private copy")
}

func TestMemStoreCaseSensitiveKeys(t *testing.T) {
	s := NewMemStore()

	require.NoError(t, s.Put("Key", []byte("upper")))
	require.NoError(t, s.Put("key", []byte("lower")))

	got, err := s.Get("Key")
	require.NoError(t, err)
	assert.Equal(t, []byte("upper"), got)

	got, err = s.Get("key")
	require.NoError(t, err)
	assert.Equal(t, []byte("lower"), got)
}
