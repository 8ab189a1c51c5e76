package server

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsaralegui/clavero/internal/protocol"
	"github.com/nsaralegui/clavero/internal/stats"
	"github.com/nsaralegui/clavero/internal/store"
)

func TestHandleSetGetDel(t *testing.T) {
	st := store.NewMemStore()
	sts := stats.New()

	resp := Handle(st, sts, "SET alpha hello world")
	assert.Equal(t, protocol.KindOK, resp.Kind)

	resp = Handle(st, sts, "GET alpha")
	require.Equal(t, protocol.KindValue, resp.Kind)
	assert.Equal(t, []byte("hello world"), resp.Value)

	resp = Handle(st, sts, "DEL alpha")
	assert.Equal(t, protocol.KindOK, resp.Kind)

	resp = Handle(st, sts, "GET alpha")
	assert.Equal(t, protocol.KindNotFound, resp.Kind)
}

func TestHandleOverwrite(t *testing.T) {
	st := store.NewMemStore()
	sts := stats.New()

	Handle(st, sts, "SET k v1")
	Handle(st, sts, "SET k v2")

	resp := Handle(st, sts, "GET k")
	require.Equal(t, protocol.KindValue, resp.Kind)
	assert.Equal(t, []byte("v2"), resp.Value)
}

func TestHandleDelNeverSet(t *testing.T) {
	resp := Handle(store.NewMemStore(), stats.New(), "DEL never-set")
	assert.Equal(t, protocol.KindOK, resp.Kind)
}

func TestHandleInvalidKeyAllCommands(t *testing.T) {
	st := store.NewMemStore()
	sts := stats.New()

	for _, line := range []string{
		"SET ../etc/passwd x",
		"GET a/b",
		"DEL a.b",
		`SET a\b x`,
	} {
		resp := Handle(st, sts, line)
		require.Equal(t, protocol.KindError, resp.Kind, "line %q", line)
		assert.Equal(t, protocol.MsgInvalidKey, resp.Err, "line %q", line)
	}

	// The invalid-key SET never touched the store.
	_, err := st.Get("x")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestHandleUnknownCommandSkipsStore(t *testing.T) {
	st := store.NewMemStore()
	resp := Handle(st, stats.New(), "BOGUS bar baz")
	require.Equal(t, protocol.KindError, resp.Kind)
	assert.Equal(t, protocol.MsgInvalidCommand, resp.Err)
}

func TestHandleMissingOperandMessages(t *testing.T) {
	st := store.NewMemStore()
	sts := stats.New()

	resp := Handle(st, sts, "GET")
	assert.Equal(t, protocol.MsgMissingKey, resp.Err)

	resp = Handle(st, sts, "SET k")
	assert.Equal(t, protocol.MsgMissingValue, resp.Err)
}

// faultyStore fails every operation, standing in for a broken medium.
type faultyStore struct{}

func (faultyStore) Put(string, []byte) error { return errors.New("no space left on device") }
func (faultyStore) Get(string) ([]byte, error) {
	return nil, errors.New("input/output error")
}
func (faultyStore) Del(string) error { return errors.New("input/output error") }
func (faultyStore) Close() error     { return nil }

func TestDispatchStoreFailures(t *testing.T) {
	sts := stats.New()

	resp := Dispatch(faultyStore{}, sts, protocol.Request{Type: protocol.CmdSet, Key: "k", Value: []byte("v")})
	require.Equal(t, protocol.KindError, resp.Kind)
	assert.Equal(t, msgPutFailed, resp.Err)

	resp = Dispatch(faultyStore{}, sts, protocol.Request{Type: protocol.CmdGet, Key: "k"})
	require.Equal(t, protocol.KindError, resp.Kind)
	assert.Equal(t, msgGetFailed, resp.Err)

	resp = Dispatch(faultyStore{}, sts, protocol.Request{Type: protocol.CmdDel, Key: "k"})
	require.Equal(t, protocol.KindError, resp.Kind)
	assert.Equal(t, msgDelFailed, resp.Err)
}

func TestDispatchRecordsStats(t *testing.T) {
	st := store.NewMemStore()
	sts := stats.New()

	Handle(st, sts, "SET k v")
	Handle(st, sts, "GET k")
	Handle(st, sts, "GET missing")
	Handle(st, sts, "DEL k")
	Handle(st, sts, "BOGUS")

	snap := sts.Snapshot()
	assert.Equal(t, int64(1), snap["sets"])
	assert.Equal(t, int64(2), snap["gets"])
	assert.Equal(t, int64(1), snap["hits"])
	assert.Equal(t, int64(1), snap["misses"])
	assert.Equal(t, int64(1), snap["dels"])
	assert.Equal(t, int64(1), snap["errors"])
}
