package server

import (
	"errors"

	"github.com/nsaralegui/clavero/internal/protocol"
	"github.com/nsaralegui/clavero/internal/stats"
	"github.com/nsaralegui/clavero/internal/store"
)

// Store-failure reasons. A failing medium never takes the process down;
// the error is scoped to the one connection that hit it.
const (
	msgPutFailed = "No se pudo guardar"
	msgGetFailed = "No se pudo leer"
	msgDelFailed = "No se pudo borrar"
)

func (s *Server) handle(line string) protocol.Response {
	return Handle(s.st, s.stats, line)
}

// Handle runs one raw request line through parse, key validation and
// dispatch, and returns the wire response. Exported for the websocket
// gateway, which feeds it lines from another transport.
func Handle(st store.Store, sts *stats.Stats, line string) protocol.Response {
	req, err := protocol.Parse(line)
	if err != nil {
		sts.RecordError()
		return protocol.Response{Kind: protocol.KindError, Err: protocol.ErrorMessage(err)}
	}
	if !protocol.ValidKey(req.Key) {
		sts.RecordError()
		return protocol.Response{Kind: protocol.KindError, Err: protocol.MsgInvalidKey}
	}
	return Dispatch(st, sts, req)
}

// Dispatch executes a parsed, key-validated request against the store.
func Dispatch(st store.Store, sts *stats.Stats, req protocol.Request) protocol.Response {
	switch req.Type {
	case protocol.CmdSet:
		if err := st.Put(req.Key, req.Value); err != nil {
			sts.RecordError()
			return protocol.Response{Kind: protocol.KindError, Err: msgPutFailed}
		}
		sts.RecordSet()
		return protocol.Response{Kind: protocol.KindOK}
	case protocol.CmdGet:
		val, err := st.Get(req.Key)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				sts.RecordGet(false)
				return protocol.Response{Kind: protocol.KindNotFound}
			}
			sts.RecordError()
			return protocol.Response{Kind: protocol.KindError, Err: msgGetFailed}
		}
		sts.RecordGet(true)
		return protocol.Response{Kind: protocol.KindValue, Value: val}
	case protocol.CmdDel:
		if err := st.Del(req.Key); err != nil {
			sts.RecordError()
			return protocol.Response{Kind: protocol.KindError, Err: msgDelFailed}
		}
		sts.RecordDel()
		return protocol.Response{Kind: protocol.KindOK}
	default:
		sts.RecordError()
		return protocol.Response{Kind: protocol.KindError, Err: protocol.MsgInvalidCommand}
	}
}
