package protocol

import (
	"errors"
	"io"
	"strings"
)

var ErrInvalidResponse = errors.New("invalid response")

// WriteResponse sends resp on w. net.Conn writes block until the whole
// buffer is out or an error occurs, so no partial-write loop is needed.
func WriteResponse(w io.Writer, resp Response) error {
	_, err := w.Write(resp.Wire())
	return err
}

// ReadResponse reads one server reply. The server closes the connection
// after responding, so the reply is everything up to EOF; that is also
// what disambiguates "OK\n" from "OK\n<value>\n".
func ReadResponse(r io.Reader) (Response, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Response{}, err
	}
	s := string(data)
	switch {
	case s == "OK\n":
		return Response{Kind: KindOK}, nil
	case s == "NOTFOUND\n":
		return Response{Kind: KindNotFound}, nil
	case strings.HasPrefix(s, "ERROR: "):
		reason := strings.TrimSuffix(strings.TrimPrefix(s, "ERROR: "), "\n")
		return Response{Kind: KindError, Err: reason}, nil
	case strings.HasPrefix(s, "OK\n"):
		body := strings.TrimSuffix(s[len("OK\n"):], "\n")
		return Response{Kind: KindValue, Value: []byte(body)}, nil
	default:
		return Response{}, ErrInvalidResponse
	}
}
