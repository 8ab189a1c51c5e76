package server

import (
	"bufio"
	"errors"
	"io"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nsaralegui/clavero/internal/protocol"
)

// handleConn serves exactly one command: read a line, execute, respond,
// close. A client that sends nothing, disconnects, or idles past the read
// deadline gets no response.
func (s *Server) handleConn(c net.Conn) {
	defer c.Close()

	if s.readTimeout > 0 {
		_ = c.SetReadDeadline(time.Now().Add(s.readTimeout))
	}

	line, err := readLine(c)
	if err != nil {
		if errors.Is(err, protocol.ErrLineTooLong) {
			s.stats.RecordError()
			s.respond(c, protocol.Response{Kind: protocol.KindError, Err: protocol.MsgLineTooLong})
			return
		}
		s.log.Debug("read failed", zap.String("remote", c.RemoteAddr().String()), zap.Error(err))
		return
	}

	s.respond(c, s.handle(line))
}

func (s *Server) respond(c net.Conn, resp protocol.Response) {
	if err := protocol.WriteResponse(c, resp); err != nil {
		s.log.Debug("write failed", zap.String("remote", c.RemoteAddr().String()), zap.Error(err))
	}
}

// readLine reads one request line of at most MaxLineLen bytes. A final
// line without a newline is accepted, since clients may half-close after
// sending the command.
func readLine(c net.Conn) (string, error) {
	r := bufio.NewReaderSize(io.LimitReader(c, protocol.MaxLineLen+1), protocol.MaxLineLen+1)
	line, err := r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) || line == "" {
			return "", err
		}
	}
	if len(line) > protocol.MaxLineLen {
		return "", protocol.ErrLineTooLong
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
