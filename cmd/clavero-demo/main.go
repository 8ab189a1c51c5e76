// clavero-demo exposes the key-value protocol over a websocket: each text
// message carries one command line and the reply is the exact wire
// response bytes. Storage is a GCS bucket, one object per key, so the
// demo survives restarts on ephemeral hosts.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/nsaralegui/clavero/internal/logger"
	"github.com/nsaralegui/clavero/internal/server"
	"github.com/nsaralegui/clavero/internal/stats"
	"github.com/nsaralegui/clavero/internal/store"
)

func main() {
	port := getenv("PORT", "8080")
	bucket := os.Getenv("CLAVERO_BUCKET")
	prefix := getenv("CLAVERO_PREFIX", "clavero/")

	if bucket == "" {
		log.Fatal("CLAVERO_BUCKET is required")
	}

	zl, err := logger.New(logger.DefaultConfig())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	st, err := store.NewGCSStore(context.Background(), bucket, prefix)
	if err != nil {
		zl.Fatal("gcs store", zap.Error(err))
	}
	defer st.Close()

	h := &wsHandler{
		st:    st,
		stats: stats.New(),
		log:   zl,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", h.handleWS)

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           withLogging(zl, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	zl.Info("demo listening", zap.String("port", port), zap.String("bucket", bucket))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zl.Fatal("http server", zap.Error(err))
	}
}

func withLogging(zl *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		zl.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

type wsHandler struct {
	st    store.Store
	stats *stats.Stats
	log   *zap.Logger
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

func (h *wsHandler) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage && msgType != websocket.BinaryMessage {
			continue
		}

		line := strings.TrimRight(string(payload), "\r\n")
		resp := server.Handle(h.st, h.stats, line)
		if err := conn.WriteMessage(websocket.TextMessage, resp.Wire()); err != nil {
			return
		}
	}
}

func getenv(key, fallback string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	return val
}
