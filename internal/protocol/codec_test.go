package protocol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWire(t *testing.T) {
	assert.Equal(t, "OK\n", string(Response{Kind: KindOK}.Wire()))
	assert.Equal(t, "NOTFOUND\n", string(Response{Kind: KindNotFound}.Wire()))
	assert.Equal(t, "OK\nhello world\n", string(Response{Kind: KindValue, Value: []byte("hello world")}.Wire()))
	assert.Equal(t, "ERROR: Clave invalida\n", string(Response{Kind: KindError, Err: MsgInvalidKey}.Wire()))
}

func TestReadResponse(t *testing.T) {
	resp, err := ReadResponse(strings.NewReader("OK\n"))
	require.NoError(t, err)
	assert.Equal(t, KindOK, resp.Kind)

	resp, err = ReadResponse(strings.NewReader("OK\nhello world\n"))
	require.NoError(t, err)
	assert.Equal(t, KindValue, resp.Kind)
	assert.Equal(t, []byte("hello world"), resp.Value)

	resp, err = ReadResponse(strings.NewReader("NOTFOUND\n"))
	require.NoError(t, err)
	assert.Equal(t, KindNotFound, resp.Kind)

	resp, err = ReadResponse(strings.NewReader("ERROR: Comando invalido\n"))
	require.NoError(t, err)
	assert.Equal(t, KindError, resp.Kind)
	assert.Equal(t, MsgInvalidCommand, resp.Err)

	_, err = ReadResponse(strings.NewReader("garbage"))
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestReadResponseValueWithEmbeddedOK(t *testing.T) {
	// A value is free to start with protocol keywords.
	resp, err := ReadResponse(strings.NewReader("OK\nNOTFOUND\n"))
	require.NoError(t, err)
	assert.Equal(t, KindValue, resp.Kind)
	assert.Equal(t, []byte("NOTFOUND"), resp.Value)
}
