// Package server owns the TCP listener and the per-connection protocol
// state machine: read one command, execute it, respond, close.
package server

import (
	"context"
	"net"
	"time"

	"go.uber.org/zap"

	"github.com/nsaralegui/clavero/internal/stats"
	"github.com/nsaralegui/clavero/internal/store"
)

type Server struct {
	addr        string
	st          store.Store
	stats       *stats.Stats
	log         *zap.Logger
	readTimeout time.Duration
}

func New(addr string, st store.Store, sts *stats.Stats, log *zap.Logger, readTimeout time.Duration) *Server {
	return &Server{
		addr:        addr,
		st:          st,
		stats:       sts,
		log:         log,
		readTimeout: readTimeout,
	}
}

// ListenAndServe binds s.addr and serves until ctx is cancelled. A failed
// bind is the only fatal outcome.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections from ln until ctx is cancelled. Each
// connection is handled in its own goroutine.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	defer ln.Close()

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	s.log.Info("listening", zap.String("addr", ln.Addr().String()))

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.log.Warn("accept failed", zap.Error(err))
			continue
		}
		s.stats.RecordConn()
		go s.handleConn(conn)
	}
}
