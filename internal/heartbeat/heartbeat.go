// Package heartbeat implements the liveness service.
//
// Each client opens one long-lived Heartbeat stream. The server pushes a
// tick every LiveInterval and, just before each tick, records the moment
// the client's liveness lease expires. Other services ask IsUserLive to
// find out whether a client is still connected; expired entries are
// evicted lazily on lookup, so no background reaper is needed.
//
// All state is in-memory and intentionally non-persistent.
package heartbeat

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/ehei1/chatting/proto"
)

// DefaultLiveInterval is the tick period and the length of the liveness
// lease granted by each tick.
const DefaultLiveInterval = 5 * time.Second

// Config holds the configuration for the heartbeat service.
type Config struct {
	// LiveInterval overrides DefaultLiveInterval. Tests shorten it.
	LiveInterval time.Duration
}

// Service implements pb.HeartbeatServer.
// It wraps the generated UnimplementedHeartbeatServer to ensure forward
// compatibility when new RPCs are added to the proto.
type Service struct {
	pb.UnimplementedHeartbeatServer

	interval time.Duration
	clock    clockwork.Clock
	logger   *zap.Logger

	mu          sync.Mutex
	expirations map[uint32]time.Time
	streaming   map[uint32]bool // indices with an open tick stream
}

// New creates a heartbeat Service.
func New(cfg Config, clock clockwork.Clock, logger *zap.Logger) *Service {
	interval := cfg.LiveInterval
	if interval <= 0 {
		interval = DefaultLiveInterval
	}
	return &Service{
		interval:    interval,
		clock:       clock,
		logger:      logger.Named("heartbeat"),
		expirations: make(map[uint32]time.Time),
		streaming:   make(map[uint32]bool),
	}
}

// Heartbeat serves the tick stream for one client. A second concurrent
// stream for the same index is rejected with AlreadyExists. The stream
// runs until the client disconnects; the last lease then simply lapses.
func (s *Service) Heartbeat(req *pb.HeartbeatRequest, stream grpc.ServerStreamingServer[pb.HeartbeatReply]) error {
	index := req.GetIndex()

	s.mu.Lock()
	if s.streaming[index] {
		s.mu.Unlock()
		return status.Errorf(codes.AlreadyExists, "heartbeat stream already open for user %d", index)
	}
	s.streaming[index] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.streaming, index)
		s.mu.Unlock()
		s.logger.Info("heartbeat stream closed", zap.Uint32("index", index))
	}()

	s.logger.Info("heartbeat stream opened", zap.Uint32("index", index))

	ctx := stream.Context()
	for {
		now := s.clock.Now()

		s.mu.Lock()
		s.expirations[index] = now.Add(s.interval)
		s.mu.Unlock()

		if err := stream.Send(&pb.HeartbeatReply{Time: uint64(now.Unix())}); err != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-s.clock.After(s.interval):
		}
	}
}

// IsUserLive reports whether the user's liveness lease is still current.
// An expired entry is evicted before answering Unknown.
func (s *Service) IsUserLive(_ context.Context, req *pb.UserRequest) (*pb.UserLivesReply, error) {
	index := req.GetIndex()

	s.mu.Lock()
	defer s.mu.Unlock()

	exp, ok := s.expirations[index]
	if !ok {
		return &pb.UserLivesReply{Status: pb.LiveStatus_LIVE_STATUS_UNKNOWN}, nil
	}
	if !s.clock.Now().Before(exp) {
		delete(s.expirations, index)
		return &pb.UserLivesReply{Status: pb.LiveStatus_LIVE_STATUS_UNKNOWN}, nil
	}
	return &pb.UserLivesReply{Status: pb.LiveStatus_LIVE_STATUS_LIVE}, nil
}

// ListenAndServe starts the heartbeat gRPC server and blocks until the
// context is cancelled or a fatal error occurs.
//
// The caller is responsible for passing a context that is cancelled on
// shutdown (e.g. via signal handling in cmd/server/main.go).
func (s *Service) ListenAndServe(ctx context.Context, listenAddr string) error {
	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("heartbeat: failed to listen on %s: %w", listenAddr, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterHeartbeatServer(grpcServer, s)

	// Hard stop on shutdown: the tick streams never end on their own, so
	// GracefulStop would block forever waiting for them to drain.
	go func() {
		<-ctx.Done()
		s.logger.Info("heartbeat server shutting down")
		grpcServer.Stop()
	}()

	s.logger.Info("heartbeat server listening", zap.String("addr", listenAddr))

	if err := grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("heartbeat: server error: %w", err)
	}
	return nil
}
