package agent

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/ehei1/chatting/internal/heartbeat"
	"github.com/ehei1/chatting/internal/lobby"
	pb "github.com/ehei1/chatting/proto"
)

// stack is the three services wired together over loopback listeners with
// aggressively shortened timers.
type stack struct {
	agent     pb.AgentClient
	heartbeat pb.HeartbeatClient
	lobby     pb.LobbyClient

	agentSvc *Service
	lobbySvc *lobby.Service
}

func serve(t *testing.T, register func(*grpc.Server)) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	register(srv)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	return lis.Addr().String()
}

func dial(t *testing.T, addr string) *grpc.ClientConn {
	t.Helper()

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func startStack(t *testing.T) *stack {
	t.Helper()

	clock := clockwork.NewRealClock()
	logger := zaptest.NewLogger(t)

	hbSvc := heartbeat.New(heartbeat.Config{LiveInterval: 40 * time.Millisecond}, clock, logger)
	hbAddr := serve(t, func(srv *grpc.Server) { pb.RegisterHeartbeatServer(srv, hbSvc) })

	lbSvc := lobby.New(lobby.Config{
		ChannelIP:           "127.0.0.1",
		Validity:            80 * time.Millisecond,
		ChatPollInterval:    10 * time.Millisecond,
		StatusPollInterval:  10 * time.Millisecond,
		ChannelPollInterval: 10 * time.Millisecond,
	}, clock, logger)
	lbAddr := serve(t, func(srv *grpc.Server) { pb.RegisterLobbyServer(srv, lbSvc) })

	agSvc := New(Config{
		HeartbeatAddr: hbAddr,
		LobbyAddr:     lbAddr,
		SweepInterval: 10 * time.Millisecond,
		CheckDelay:    120 * time.Millisecond,
	}, clock, logger)
	agAddr := serve(t, func(srv *grpc.Server) { pb.RegisterAgentServer(srv, agSvc) })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, agSvc.StartSweeper(ctx))

	return &stack{
		agent:     pb.NewAgentClient(dial(t, agAddr)),
		heartbeat: pb.NewHeartbeatClient(dial(t, hbAddr)),
		lobby:     pb.NewLobbyClient(dial(t, lbAddr)),
		agentSvc:  agSvc,
		lobbySvc:  lbSvc,
	}
}

func (s *stack) queueLen() int {
	s.agentSvc.mu.Lock()
	defer s.agentSvc.mu.Unlock()
	return len(s.agentSvc.queue)
}

// Login, heartbeat and a lobby chat between two users.
func TestEndToEndChat(t *testing.T) {
	s := startStack(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	alice, err := s.agent.Login(ctx, &pb.LoginRequest{Ip: "10.0.0.1"})
	require.NoError(t, err)
	bob, err := s.agent.Login(ctx, &pb.LoginRequest{Ip: "10.0.0.2"})
	require.NoError(t, err)
	assert.Equal(t, alice.GetIndex()+1, bob.GetIndex())

	for _, idx := range []uint32{alice.GetIndex(), bob.GetIndex()} {
		hb, err := s.heartbeat.Heartbeat(ctx, &pb.HeartbeatRequest{Index: idx})
		require.NoError(t, err)
		go func() {
			for {
				if _, err := hb.Recv(); err != nil {
					return
				}
			}
		}()
	}

	recv, err := s.lobby.ChatReceive(ctx, &pb.Chat{Index: bob.GetIndex()})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return s.lobbySvc.Known(bob.GetIndex()) },
		time.Second, 5*time.Millisecond)

	_, err = s.lobby.ChatSend(ctx, &pb.Chat{Index: alice.GetIndex(), Text: "hi bob"})
	require.NoError(t, err)

	chat, err := recv.Recv()
	require.NoError(t, err)
	assert.Equal(t, alice.GetIndex(), chat.GetIndex())
	assert.Equal(t, "hi bob", chat.GetText())
}

// A user that never opens the heartbeat stream is evicted by the sweep.
func TestEndToEndLivenessEviction(t *testing.T) {
	s := startStack(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user, err := s.agent.Login(ctx, &pb.LoginRequest{Ip: "10.0.1.1"})
	require.NoError(t, err)

	// Materialise a lobby entry so there is something to evict.
	_, err = s.lobby.ChatSend(ctx, &pb.Chat{Index: user.GetIndex()})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return s.queueLen() == 0 },
		3*time.Second, 10*time.Millisecond, "sweep should drop the silent user")

	reply, err := s.lobby.Command(ctx, &pb.CommandRequest{
		Index: user.GetIndex(),
		Kind:  pb.CommandKind_COMMAND_KIND_LIST_CHANNELS,
	})
	require.NoError(t, err)
	assert.Equal(t, pb.CommandStatus_COMMAND_STATUS_FAILURE, reply.GetStatus(),
		"evicted user is unknown to the lobby")
}

// A user with a live heartbeat but no lobby activity is declared Quit and
// the lobby delivers the Quit status on the user's own status stream.
func TestEndToEndSessionQuit(t *testing.T) {
	s := startStack(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	user, err := s.agent.Login(ctx, &pb.LoginRequest{Ip: "10.0.2.1"})
	require.NoError(t, err)

	hb, err := s.heartbeat.Heartbeat(ctx, &pb.HeartbeatRequest{Index: user.GetIndex()})
	require.NoError(t, err)
	go func() {
		for {
			if _, err := hb.Recv(); err != nil {
				return
			}
		}
	}()

	statuses, err := s.lobby.StatusRequest(ctx, &pb.UserRequest{Index: user.GetIndex()})
	require.NoError(t, err)

	// No further lobby activity: validity lapses before the agent's check
	// deadline, so the sweep sees Live + Quit and drops the user.
	ev, err := statuses.Recv()
	require.NoError(t, err)
	assert.Equal(t, pb.UserEvent_USER_EVENT_QUIT, ev.GetStatus())
	assert.Equal(t, user.GetIndex(), ev.GetIndex())

	require.Eventually(t, func() bool { return s.queueLen() == 0 },
		3*time.Second, 10*time.Millisecond)
}
