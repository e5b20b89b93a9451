// Package metrics defines the Prometheus collectors for the chatting
// services and an optional /metrics HTTP listener.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	// LoginsTotal counts successful Agent logins.
	LoginsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chatting_logins_total",
		Help: "Successful logins handled by the agent service.",
	})

	// ChatMessagesTotal counts broadcast chat messages, labelled by the
	// room that carried them ("lobby" or "channel").
	ChatMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatting_chat_messages_total",
		Help: "Chat messages broadcast to room members.",
	}, []string{"room"})

	// ActiveChannels tracks the number of currently running channels.
	ActiveChannels = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "chatting_active_channels",
		Help: "Channels currently bound to a port.",
	})

	// SweptUsersTotal counts users evicted by the agent sweeper after
	// their heartbeat went silent.
	SweptUsersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chatting_swept_users_total",
		Help: "Users removed by the agent sweep loop.",
	})
)

// Serve exposes the default registry on addr until the context is
// cancelled. Intended to be run in its own goroutine (or errgroup).
func Serve(ctx context.Context, addr string, logger *zap.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics listening", zap.String("addr", addr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
