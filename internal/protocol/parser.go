package protocol

import (
	"errors"
	"strings"
)

// Parse failures. Each maps to a distinct wire message via ErrorMessage so
// the client learns exactly which part of the request was wrong.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingKey     = errors.New("missing key")
	ErrMissingValue   = errors.New("missing value")
	ErrKeyTooLong     = errors.New("key too long")
	ErrValueTooLong   = errors.New("value too long")
	ErrLineTooLong    = errors.New("line too long")
)

// Parse turns one request line (without its trailing newline) into a
// Request. Commands match case-sensitively. The value of a SET is the
// remainder of the line after the key, whitespace included. Trailing
// tokens on GET/DEL are ignored, like the original protocol.
func Parse(line string) (Request, error) {
	cmd, rest := nextToken(line)
	if cmd == "" {
		return Request{}, ErrUnknownCommand
	}

	switch cmd {
	case "SET":
		key, rest := nextToken(rest)
		if err := checkKey(key); err != nil {
			return Request{}, err
		}
		value := strings.TrimLeft(rest, " \t")
		if value == "" {
			return Request{}, ErrMissingValue
		}
		if len(value) > MaxValueLen {
			return Request{}, ErrValueTooLong
		}
		return Request{Type: CmdSet, Key: key, Value: []byte(value)}, nil
	case "GET":
		key, _ := nextToken(rest)
		if err := checkKey(key); err != nil {
			return Request{}, err
		}
		return Request{Type: CmdGet, Key: key}, nil
	case "DEL":
		key, _ := nextToken(rest)
		if err := checkKey(key); err != nil {
			return Request{}, err
		}
		return Request{Type: CmdDel, Key: key}, nil
	default:
		return Request{}, ErrUnknownCommand
	}
}

func checkKey(key string) error {
	if key == "" {
		return ErrMissingKey
	}
	if len(key) > MaxKeyLen {
		return ErrKeyTooLong
	}
	return nil
}

// nextToken skips leading whitespace and returns the first token and the
// unconsumed remainder.
func nextToken(s string) (tok, rest string) {
	s = strings.TrimLeft(s, " \t")
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

// ErrorMessage maps a parse failure to its canonical wire reason.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, ErrMissingKey):
		return MsgMissingKey
	case errors.Is(err, ErrMissingValue):
		return MsgMissingValue
	case errors.Is(err, ErrKeyTooLong):
		return MsgKeyTooLong
	case errors.Is(err, ErrValueTooLong):
		return MsgValueTooLong
	case errors.Is(err, ErrLineTooLong):
		return MsgLineTooLong
	default:
		return MsgInvalidCommand
	}
}
