// Package protocol implements the clavero wire protocol: one newline
// terminated command per connection, one response, connection closed.
package protocol

type CmdType int

const (
	CmdInvalid CmdType = iota
	CmdSet
	CmdGet
	CmdDel
)

// Wire limits. A request line never exceeds MaxLineLen bytes; overlong
// keys and values are rejected outright, never truncated.
const (
	MaxKeyLen   = 99
	MaxValueLen = 1019
	MaxLineLen  = 1024
)

// Canonical error reasons sent on the wire after the "ERROR: " prefix.
const (
	MsgInvalidCommand = "Comando invalido"
	MsgInvalidKey     = "Clave invalida"
	MsgMissingKey     = "Falta clave"
	MsgMissingValue   = "Falta valor"
	MsgKeyTooLong     = "Clave demasiado larga"
	MsgValueTooLong   = "Valor demasiado largo"
	MsgLineTooLong    = "Linea demasiado larga"
)

type Request struct {
	Type  CmdType
	Key   string
	Value []byte
}

const (
	KindOK       = "OK"
	KindValue    = "VALUE"
	KindNotFound = "NOTFOUND"
	KindError    = "ERROR"
)

// Response is one server reply. Value is set only for KindValue, Err only
// for KindError (the reason without the "ERROR: " prefix).
type Response struct {
	Kind  string
	Value []byte
	Err   string
}

// Wire renders the response exactly as it goes on the socket.
func (r Response) Wire() []byte {
	switch r.Kind {
	case KindOK:
		return []byte("OK\n")
	case KindNotFound:
		return []byte("NOTFOUND\n")
	case KindValue:
		out := make([]byte, 0, len(r.Value)+4)
		out = append(out, "OK\n"...)
		out = append(out, r.Value...)
		out = append(out, '\n')
		return out
	default:
		return []byte("ERROR: " + r.Err + "\n")
	}
}
