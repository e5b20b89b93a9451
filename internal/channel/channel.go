// Package channel implements a dynamically created broadcast room bound to
// its own port. The lobby creates a Channel when a user issues the make
// command, moves members in and out of it, and tears it down once the last
// member leaves.
//
// Chat and status delivery follow the same polling model as the lobby: the
// handlers drain the member's pending queues and sleep between rounds.
package channel

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/ehei1/chatting/internal/metrics"
	"github.com/ehei1/chatting/internal/room"
	pb "github.com/ehei1/chatting/proto"
)

// DefaultPollInterval is the sleep between delivery rounds on the chat and
// status streams.
const DefaultPollInterval = time.Second

// Config holds the configuration for a channel.
type Config struct {
	// PollInterval overrides DefaultPollInterval. Tests shorten it.
	PollInterval time.Duration
}

// Channel is one broadcast room listening on ip:port.
// It wraps the generated UnimplementedChannelServer to ensure forward
// compatibility when new RPCs are added to the proto.
type Channel struct {
	pb.UnimplementedChannelServer

	ip    string
	port  uint32
	poll  time.Duration
	clock clockwork.Clock

	logger *zap.Logger
	room   *room.Room

	mu        sync.Mutex
	announced map[uint32]bool // members whose JoinUser broadcast went out
	server    *grpc.Server
}

// New creates a Channel for ip:port. Call Start to bind it.
func New(ip string, port uint32, cfg Config, clock clockwork.Clock, logger *zap.Logger) *Channel {
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = DefaultPollInterval
	}
	return &Channel{
		ip:        ip,
		port:      port,
		poll:      poll,
		clock:     clock,
		logger:    logger.Named("channel").With(zap.Uint32("port", port)),
		room:      room.New(),
		announced: make(map[uint32]bool),
	}
}

// Address returns the dialable ip:port of this channel.
func (c *Channel) Address() string {
	return fmt.Sprintf("%s:%d", c.ip, c.port)
}

// Port returns the channel's port.
func (c *Channel) Port() uint32 {
	return c.port
}

// Start binds the channel's listener and serves in the background. A bind
// failure is returned to the caller, which decides what happens to the
// port.
func (c *Channel) Start() error {
	lis, err := net.Listen("tcp", c.Address())
	if err != nil {
		return fmt.Errorf("channel: failed to listen on %s: %w", c.Address(), err)
	}

	srv := grpc.NewServer()
	pb.RegisterChannelServer(srv, c)

	c.mu.Lock()
	c.server = srv
	c.mu.Unlock()

	go func() {
		if err := srv.Serve(lis); err != nil {
			c.logger.Warn("channel server stopped", zap.Error(err))
		}
	}()

	metrics.ActiveChannels.Inc()
	c.logger.Info("channel listening", zap.String("addr", c.Address()))
	return nil
}

// Stop hard-stops the channel server. The delivery streams never end on
// their own, so a graceful drain would block forever.
func (c *Channel) Stop() {
	c.mu.Lock()
	srv := c.server
	c.server = nil
	c.mu.Unlock()

	if srv != nil {
		srv.Stop()
		metrics.ActiveChannels.Dec()
		c.logger.Info("channel stopped")
	}
}

// RemoveUser drops the member and announces LeaveUser to everyone still in
// the room. Idempotent.
func (c *Channel) RemoveUser(index uint32) {
	if !c.room.Remove(index) {
		return
	}

	c.mu.Lock()
	delete(c.announced, index)
	c.mu.Unlock()

	c.room.BroadcastStatus(&pb.StatusReply{
		Index:   index,
		Status:  pb.UserEvent_USER_EVENT_LEAVE_USER,
		Channel: c.port,
	})
	c.logger.Info("user left channel", zap.Uint32("index", index))
}

// Members returns the current member indices in ascending order.
func (c *Channel) Members() []uint32 {
	return c.room.Members()
}

// Empty reports whether the channel has no members.
func (c *Channel) Empty() bool {
	return c.room.Empty()
}

// ChatSend broadcasts the chat to every member except the sender.
func (c *Channel) ChatSend(_ context.Context, chat *pb.Chat) (*pb.Empty, error) {
	if n := c.room.BroadcastChat(chat); n > 0 {
		metrics.ChatMessagesTotal.WithLabelValues("channel").Inc()
	}
	return &pb.Empty{}, nil
}

// ChatReceive delivers the member's pending chats, polling until the
// client disconnects or the member is removed from the channel.
// Membership materialises on first touch.
func (c *Channel) ChatReceive(chat *pb.Chat, stream grpc.ServerStreamingServer[pb.Chat]) error {
	index := chat.GetIndex()
	ctx := stream.Context()

	c.room.Join(index)

	for {
		for _, pending := range c.room.DrainChats(index) {
			if err := stream.Send(pending); err != nil {
				return nil
			}
		}
		if !c.room.Has(index) {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-c.clock.After(c.poll):
		}
	}
}

// StatusRequest delivers the member's pending status events. Membership
// materialises on first touch; the first stream a member opens triggers
// the JoinUser broadcast, which reaches the whole room including the
// joiner.
func (c *Channel) StatusRequest(req *pb.UserRequest, stream grpc.ServerStreamingServer[pb.StatusReply]) error {
	index := req.GetIndex()
	ctx := stream.Context()

	c.room.Join(index)

	c.mu.Lock()
	first := !c.announced[index]
	c.announced[index] = true
	c.mu.Unlock()

	if first {
		c.room.BroadcastStatus(&pb.StatusReply{
			Index:   index,
			Status:  pb.UserEvent_USER_EVENT_JOIN_USER,
			Channel: c.port,
		})
		c.logger.Info("user joined channel", zap.Uint32("index", index))
	}

	for {
		for _, pending := range c.room.DrainStatuses(index) {
			if err := stream.Send(pending); err != nil {
				return nil
			}
		}
		if !c.room.Has(index) {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-c.clock.After(c.poll):
		}
	}
}

// UserRemove is the RPC form of RemoveUser.
func (c *Channel) UserRemove(_ context.Context, req *pb.UserRequest) (*pb.Empty, error) {
	c.RemoveUser(req.GetIndex())
	return &pb.Empty{}, nil
}
