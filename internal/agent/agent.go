// Package agent implements the registration front door and the sweep loop
// that garbage-collects disconnected users.
//
// Login hands out monotonically increasing indices and enqueues each user
// in a FIFO of pending liveness checks. A gocron job pops the head of the
// queue once per second: entries whose deadline has not arrived rotate to
// the back untouched; due entries are checked against the Heartbeat and,
// when still live, against the Lobby's session validity.
package agent

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/ehei1/chatting/internal/metrics"
	pb "github.com/ehei1/chatting/proto"
)

// Design constants. Tests override them through Config.
const (
	// DefaultSweepInterval is the pause between sweep ticks.
	DefaultSweepInterval = time.Second

	// DefaultCheckDelay is how far in the future each liveness check is
	// scheduled.
	DefaultCheckDelay = 30 * time.Second
)

// Config holds the configuration for the agent service.
type Config struct {
	// HeartbeatAddr and LobbyAddr are handed to clients in the LoginReply
	// and dialled by the sweeper.
	HeartbeatAddr string
	LobbyAddr     string

	// SweepInterval / CheckDelay override the sweep constants.
	SweepInterval time.Duration
	CheckDelay    time.Duration
}

// pendingUser is one sweep-queue entry.
type pendingUser struct {
	IP        string
	Index     uint32
	NextCheck time.Time
}

// Service implements pb.AgentServer.
// It wraps the generated UnimplementedAgentServer to ensure forward
// compatibility when new RPCs are added to the proto.
type Service struct {
	pb.UnimplementedAgentServer

	cfg        Config
	sweepEvery time.Duration
	checkDelay time.Duration
	clock      clockwork.Clock
	logger     *zap.Logger

	mu        sync.Mutex
	index     uint32
	queue     []pendingUser
	heartbeat pb.HeartbeatClient
	lobby     pb.LobbyClient
	conns     []*grpc.ClientConn
}

// New creates an agent Service. The Heartbeat and Lobby connections are
// dialled lazily on the first login.
func New(cfg Config, clock clockwork.Clock, logger *zap.Logger) *Service {
	sweepEvery := cfg.SweepInterval
	if sweepEvery <= 0 {
		sweepEvery = DefaultSweepInterval
	}
	checkDelay := cfg.CheckDelay
	if checkDelay <= 0 {
		checkDelay = DefaultCheckDelay
	}
	return &Service{
		cfg:        cfg,
		sweepEvery: sweepEvery,
		checkDelay: checkDelay,
		clock:      clock,
		logger:     logger.Named("agent"),
	}
}

// Login assigns the next index and schedules the user for liveness
// sweeps. An IP that is still in the sweep queue is rejected.
func (s *Service) Login(_ context.Context, req *pb.LoginRequest) (*pb.LoginReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.queue {
		if u.IP == req.GetIp() {
			return nil, status.Errorf(codes.AlreadyExists, "ip %s already logged in", req.GetIp())
		}
	}

	if err := s.connectLocked(); err != nil {
		s.logger.Error("backend dial failed", zap.Error(err))
		return nil, status.Errorf(codes.Unavailable, "backend services unreachable: %v", err)
	}

	s.index++
	s.queue = append(s.queue, pendingUser{
		IP:        req.GetIp(),
		Index:     s.index,
		NextCheck: s.clock.Now().Add(s.checkDelay),
	})

	metrics.LoginsTotal.Inc()
	s.logger.Info("user logged in",
		zap.String("ip", req.GetIp()), zap.Uint32("index", s.index))

	return &pb.LoginReply{
		Index:            s.index,
		HeartbeatAddress: s.cfg.HeartbeatAddr,
		LobbyAddress:     s.cfg.LobbyAddr,
	}, nil
}

// connectLocked dials the Heartbeat and Lobby backends once. Connections
// are lazy: a dial error here means the target address is unusable, and
// transport failures surface later as sweep RPC errors.
func (s *Service) connectLocked() error {
	if s.heartbeat != nil {
		return nil
	}

	hbConn, err := grpc.NewClient(s.cfg.HeartbeatAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("agent: dial heartbeat %s: %w", s.cfg.HeartbeatAddr, err)
	}
	lobbyConn, err := grpc.NewClient(s.cfg.LobbyAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		hbConn.Close()
		return fmt.Errorf("agent: dial lobby %s: %w", s.cfg.LobbyAddr, err)
	}

	s.heartbeat = pb.NewHeartbeatClient(hbConn)
	s.lobby = pb.NewLobbyClient(lobbyConn)
	s.conns = append(s.conns, hbConn, lobbyConn)
	return nil
}

// sweepOnce examines the head of the sweep queue. Only one entry is
// touched per tick, bounding the work each sweep does.
func (s *Service) sweepOnce(ctx context.Context) {
	s.mu.Lock()
	if len(s.queue) == 0 {
		s.mu.Unlock()
		return
	}

	user := s.queue[0]
	s.queue = s.queue[1:]

	if user.NextCheck.After(s.clock.Now()) {
		// Not due yet: rotate unchanged, preserving FIFO order.
		s.queue = append(s.queue, user)
		s.mu.Unlock()
		return
	}

	heartbeat, lobby := s.heartbeat, s.lobby
	s.mu.Unlock()

	requeue := func() {
		s.mu.Lock()
		user.NextCheck = s.clock.Now().Add(s.checkDelay)
		s.queue = append(s.queue, user)
		s.mu.Unlock()
	}

	lives, err := heartbeat.IsUserLive(ctx, &pb.UserRequest{Index: user.Index})
	if err != nil {
		s.logger.Warn("liveness check failed",
			zap.Uint32("index", user.Index), zap.Error(err))
		requeue()
		return
	}

	if lives.GetStatus() != pb.LiveStatus_LIVE_STATUS_LIVE {
		if _, err := lobby.UserRemove(ctx, &pb.UserRequest{Index: user.Index}); err != nil {
			s.logger.Warn("user remove failed",
				zap.Uint32("index", user.Index), zap.Error(err))
			requeue()
			return
		}
		metrics.SweptUsersTotal.Inc()
		s.logger.Info("user swept",
			zap.String("ip", user.IP), zap.Uint32("index", user.Index))
		return
	}

	exit, err := lobby.UserExit(ctx, &pb.UserRequest{Index: user.Index})
	if err != nil {
		s.logger.Warn("session check failed",
			zap.Uint32("index", user.Index), zap.Error(err))
		requeue()
		return
	}

	if exit.GetStatus() == pb.UserEvent_USER_EVENT_QUIT {
		// The lobby declared the session dead; the user is dropped and
		// the lobby delivers the Quit status on its own stream.
		s.logger.Info("session quit",
			zap.String("ip", user.IP), zap.Uint32("index", user.Index))
		return
	}
	requeue()
}

// StartSweeper schedules the sweep job and runs it until the context is
// cancelled.
func (s *Service) StartSweeper(ctx context.Context) error {
	sched, err := gocron.NewScheduler(gocron.WithClock(s.clock))
	if err != nil {
		return fmt.Errorf("agent: failed to create scheduler: %w", err)
	}

	_, err = sched.NewJob(
		gocron.DurationJob(s.sweepEvery),
		gocron.NewTask(func() { s.sweepOnce(ctx) }),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("agent: failed to schedule sweep job: %w", err)
	}

	sched.Start()
	s.logger.Info("sweeper started", zap.Duration("interval", s.sweepEvery))

	go func() {
		<-ctx.Done()
		if err := sched.Shutdown(); err != nil {
			s.logger.Warn("scheduler shutdown failed", zap.Error(err))
		}
		s.closeConns()
	}()
	return nil
}

func (s *Service) closeConns() {
	s.mu.Lock()
	conns := s.conns
	s.conns = nil
	s.mu.Unlock()

	for _, conn := range conns {
		conn.Close()
	}
}

// ListenAndServe starts the agent gRPC server and blocks until the
// context is cancelled or a fatal error occurs. The sweep job is started
// alongside the listener.
//
// The caller is responsible for passing a context that is cancelled on
// shutdown (e.g. via signal handling in cmd/server/main.go).
func (s *Service) ListenAndServe(ctx context.Context, listenAddr string) error {
	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("agent: failed to listen on %s: %w", listenAddr, err)
	}

	if err := s.StartSweeper(ctx); err != nil {
		lis.Close()
		return err
	}

	grpcServer := grpc.NewServer()
	pb.RegisterAgentServer(grpcServer, s)

	// Login is unary and quick, so a graceful drain is safe here.
	go func() {
		<-ctx.Done()
		s.logger.Info("agent server shutting down gracefully")
		grpcServer.GracefulStop()
	}()

	s.logger.Info("agent server listening", zap.String("addr", listenAddr))

	if err := grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("agent: server error: %w", err)
	}
	return nil
}
