// Package lobby implements the authoritative user and channel directory,
// the primary broadcast room, and the command surface.
//
// Users materialise lazily: the first chat or status touch from an index
// creates its directory entry with a fresh session validity deadline.
// Commands require an existing entry. The agent service polls UserExit and
// UserRemove to evict abandoned sessions.
//
// All state is in-memory and intentionally non-persistent.
package lobby

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/ehei1/chatting/internal/channel"
	"github.com/ehei1/chatting/internal/metrics"
	"github.com/ehei1/chatting/internal/room"
	pb "github.com/ehei1/chatting/proto"
)

// Design constants. Tests override them through Config.
const (
	// DefaultValidity is the sliding session deadline refreshed by any
	// chat or command activity.
	DefaultValidity = 60 * time.Second

	// DefaultChatPollInterval is the sleep between chat delivery rounds.
	DefaultChatPollInterval = time.Second

	// DefaultStatusPollInterval is the sleep between status delivery
	// rounds.
	DefaultStatusPollInterval = 5 * time.Second
)

// Config holds the configuration for the lobby service.
type Config struct {
	// ChannelIP is the host part of every channel address handed out by
	// MakeChannel.
	ChannelIP string

	// ChannelPorts seeds the port pool, in allocation order.
	ChannelPorts []uint32

	// Validity overrides DefaultValidity.
	Validity time.Duration

	// ChatPollInterval / StatusPollInterval override the delivery poll
	// sleeps. ChannelPollInterval is handed to every channel created by
	// MakeChannel.
	ChatPollInterval    time.Duration
	StatusPollInterval  time.Duration
	ChannelPollInterval time.Duration
}

// user is one directory entry. channel == 0 means the user is in the
// lobby only.
type user struct {
	channel    uint32
	validUntil time.Time
}

// Service implements pb.LobbyServer.
// It wraps the generated UnimplementedLobbyServer to ensure forward
// compatibility when new RPCs are added to the proto.
type Service struct {
	pb.UnimplementedLobbyServer

	cfg      Config
	validity time.Duration
	chatPoll time.Duration
	statPoll time.Duration
	clock    clockwork.Clock
	logger   *zap.Logger
	room     *room.Room

	mu       sync.Mutex
	users    map[uint32]*user
	channels map[uint32]*channel.Channel
	order    []uint32 // channel ports in creation order, for listings
	ports    []uint32 // free port pool; alloc from the front
}

// New creates a lobby Service.
func New(cfg Config, clock clockwork.Clock, logger *zap.Logger) *Service {
	validity := cfg.Validity
	if validity <= 0 {
		validity = DefaultValidity
	}
	chatPoll := cfg.ChatPollInterval
	if chatPoll <= 0 {
		chatPoll = DefaultChatPollInterval
	}
	statPoll := cfg.StatusPollInterval
	if statPoll <= 0 {
		statPoll = DefaultStatusPollInterval
	}
	return &Service{
		cfg:      cfg,
		validity: validity,
		chatPoll: chatPoll,
		statPoll: statPoll,
		clock:    clock,
		logger:   logger.Named("lobby"),
		room:     room.New(),
		users:    make(map[uint32]*user),
		channels: make(map[uint32]*channel.Channel),
		ports:    append([]uint32(nil), cfg.ChannelPorts...),
	}
}

// touch materialises the user if missing and slides its validity deadline.
func (s *Service) touch(index uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[index]
	if !ok {
		u = &user{}
		s.users[index] = u
		s.room.Join(index)
		s.logger.Info("user entered lobby", zap.Uint32("index", index))
	}
	u.validUntil = s.clock.Now().Add(s.validity)
}

// Known reports whether the directory still holds the index.
func (s *Service) Known(index uint32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.users[index]
	return ok
}

// ChatSend broadcasts the chat to every user except the sender and slides
// the sender's validity deadline. Empty text still counts as activity but
// is not delivered.
func (s *Service) ChatSend(_ context.Context, chat *pb.Chat) (*pb.Empty, error) {
	s.touch(chat.GetIndex())
	if n := s.room.BroadcastChat(chat); n > 0 {
		metrics.ChatMessagesTotal.WithLabelValues("lobby").Inc()
	}
	return &pb.Empty{}, nil
}

// ChatReceive delivers the user's pending chats, polling until the client
// disconnects or the user is removed from the directory.
func (s *Service) ChatReceive(chat *pb.Chat, stream grpc.ServerStreamingServer[pb.Chat]) error {
	index := chat.GetIndex()
	ctx := stream.Context()

	s.touch(index)

	for {
		for _, pending := range s.room.DrainChats(index) {
			if err := stream.Send(pending); err != nil {
				return nil
			}
		}
		if !s.Known(index) {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-s.clock.After(s.chatPoll):
		}
	}
}

// StatusRequest delivers the user's pending status events, polling until
// the client disconnects or the user is removed from the directory.
func (s *Service) StatusRequest(req *pb.UserRequest, stream grpc.ServerStreamingServer[pb.StatusReply]) error {
	index := req.GetIndex()
	ctx := stream.Context()

	s.touch(index)

	for {
		for _, pending := range s.room.DrainStatuses(index) {
			if err := stream.Send(pending); err != nil {
				return nil
			}
		}
		if !s.Known(index) {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-s.clock.After(s.statPoll):
		}
	}
}

// Command dispatches one lobby command. Precondition failures travel in
// the reply status, not as RPC errors.
func (s *Service) Command(_ context.Context, req *pb.CommandRequest) (*pb.CommandReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := req.GetIndex()
	u, ok := s.users[index]
	if !ok {
		s.logger.Info("command from unknown user", zap.Uint32("index", index))
		return &pb.CommandReply{Status: pb.CommandStatus_COMMAND_STATUS_FAILURE}, nil
	}
	u.validUntil = s.clock.Now().Add(s.validity)

	switch req.GetKind() {
	case pb.CommandKind_COMMAND_KIND_LIST_CHANNELS:
		return &pb.CommandReply{
			Status:   pb.CommandStatus_COMMAND_STATUS_SUCCESS,
			Channels: append([]uint32(nil), s.order...),
		}, nil

	case pb.CommandKind_COMMAND_KIND_MAKE_CHANNEL:
		return s.makeChannelLocked(index, u), nil

	case pb.CommandKind_COMMAND_KIND_JOIN_CHANNEL:
		if u.channel != 0 {
			return failure(), nil
		}
		ch, ok := s.channels[req.GetChannel()]
		if !ok {
			return failure(), nil
		}
		u.channel = ch.Port()
		return &pb.CommandReply{
			Status:  pb.CommandStatus_COMMAND_STATUS_SUCCESS,
			Address: ch.Address(),
		}, nil

	case pb.CommandKind_COMMAND_KIND_LEAVE_CHANNEL:
		if u.channel == 0 {
			return failure(), nil
		}
		s.leaveChannelLocked(index, u.channel)
		u.channel = 0
		return &pb.CommandReply{Status: pb.CommandStatus_COMMAND_STATUS_SUCCESS}, nil

	case pb.CommandKind_COMMAND_KIND_LIST_USERS:
		return s.listUsersLocked(req.GetChannel()), nil

	default:
		return failure(), nil
	}
}

func failure() *pb.CommandReply {
	return &pb.CommandReply{Status: pb.CommandStatus_COMMAND_STATUS_FAILURE}
}

// makeChannelLocked allocates the head port, starts a channel on it and
// moves the caller in. A bind failure returns the port to the back of the
// pool so the next attempt tries a different port first.
func (s *Service) makeChannelLocked(index uint32, u *user) *pb.CommandReply {
	if u.channel != 0 {
		return failure()
	}
	if len(s.ports) == 0 {
		s.logger.Warn("make channel failed, port pool empty", zap.Uint32("index", index))
		return failure()
	}

	port := s.ports[0]
	s.ports = s.ports[1:]

	ch := channel.New(s.cfg.ChannelIP, port,
		channel.Config{PollInterval: s.cfg.ChannelPollInterval},
		s.clock, s.logger)
	if err := ch.Start(); err != nil {
		s.logger.Error("channel bind failed", zap.Uint32("port", port), zap.Error(err))
		s.ports = append(s.ports, port)
		return failure()
	}

	s.channels[port] = ch
	s.order = append(s.order, port)
	u.channel = port

	s.logger.Info("channel created",
		zap.Uint32("port", port), zap.Uint32("index", index))

	return &pb.CommandReply{
		Status:   pb.CommandStatus_COMMAND_STATUS_SUCCESS,
		Address:  ch.Address(),
		Channels: []uint32{port},
	}
}

// listUsersLocked returns a live channel's membership, or the whole lobby
// directory when the argument is not a live channel port. The channels
// column carries each listed user's current channel.
func (s *Service) listUsersLocked(port uint32) *pb.CommandReply {
	var indices []uint32
	if ch, ok := s.channels[port]; ok {
		indices = ch.Members()
	} else {
		indices = s.room.Members()
	}

	channels := make([]uint32, len(indices))
	for i, idx := range indices {
		if u, ok := s.users[idx]; ok {
			channels[i] = u.channel
		}
	}

	return &pb.CommandReply{
		Status:   pb.CommandStatus_COMMAND_STATUS_SUCCESS,
		Users:    indices,
		Channels: channels,
	}
}

// leaveChannelLocked removes the user from the channel and tears the
// channel down if it ended up empty, returning its port to the front of
// the pool so the most recently freed port is reused next.
func (s *Service) leaveChannelLocked(index, port uint32) {
	ch, ok := s.channels[port]
	if !ok {
		return
	}

	ch.RemoveUser(index)

	if ch.Empty() {
		delete(s.channels, port)
		for i, p := range s.order {
			if p == port {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		ch.Stop()
		s.ports = append([]uint32{port}, s.ports...)
		s.logger.Info("channel torn down", zap.Uint32("port", port))
	}
}

// UserRemove hard-removes the user from the directory and from any
// channel they inhabited. Removing an unknown user is a no-op.
func (s *Service) UserRemove(_ context.Context, req *pb.UserRequest) (*pb.Empty, error) {
	index := req.GetIndex()

	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[index]; ok {
		delete(s.users, index)
		if u.channel != 0 {
			s.leaveChannelLocked(index, u.channel)
		}
		s.room.Remove(index)
		s.logger.Info("user removed", zap.Uint32("index", index))
	}
	return &pb.Empty{}, nil
}

// UserExit answers the agent's session poll: Quit when the validity
// deadline has lapsed (with a Quit status queued for the user's own status
// stream), Ok otherwise. An unknown index answers Ok; the liveness path
// owns its cleanup.
func (s *Service) UserExit(_ context.Context, req *pb.UserRequest) (*pb.StatusReply, error) {
	index := req.GetIndex()

	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[index]; ok && s.clock.Now().After(u.validUntil) {
		quit := &pb.StatusReply{
			Index:  index,
			Status: pb.UserEvent_USER_EVENT_QUIT,
		}
		s.room.PushStatus(index, quit)
		s.logger.Info("session lapsed", zap.Uint32("index", index))
		return quit, nil
	}
	return &pb.StatusReply{Index: index, Status: pb.UserEvent_USER_EVENT_OK}, nil
}

// ListenAndServe starts the lobby gRPC server and blocks until the
// context is cancelled or a fatal error occurs. Shutdown also stops every
// live channel.
//
// The caller is responsible for passing a context that is cancelled on
// shutdown (e.g. via signal handling in cmd/server/main.go).
func (s *Service) ListenAndServe(ctx context.Context, listenAddr string) error {
	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("lobby: failed to listen on %s: %w", listenAddr, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterLobbyServer(grpcServer, s)

	// Hard stop on shutdown: the delivery streams never end on their own,
	// so GracefulStop would block forever waiting for them to drain.
	go func() {
		<-ctx.Done()
		s.logger.Info("lobby server shutting down")

		s.mu.Lock()
		channels := make([]*channel.Channel, 0, len(s.channels))
		for _, ch := range s.channels {
			channels = append(channels, ch)
		}
		s.mu.Unlock()
		for _, ch := range channels {
			ch.Stop()
		}

		grpcServer.Stop()
	}()

	s.logger.Info("lobby server listening", zap.String("addr", listenAddr))

	if err := grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("lobby: server error: %w", err)
	}
	return nil
}
