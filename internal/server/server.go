package server

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Health serves a keep-alive endpoint so hosting platforms that ping HTTP
// don't put the bot to sleep.
type Health struct {
	srv *http.Server
	log *zap.Logger
}

func NewHealth(addr string, log *zap.Logger) *Health {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return &Health{
		srv: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
		},
		log: log,
	}
}

// Run blocks until the listener fails. Callers start it in a goroutine.
func (h *Health) Run() {
	h.log.Info("health endpoint listening", zap.String("addr", h.srv.Addr))
	if err := h.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		h.log.Warn("health endpoint stopped", zap.Error(err))
	}
}
