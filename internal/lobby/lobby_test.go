package lobby

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

	pb "github.com/ehei1/chatting/proto"
)

// freePorts grabs n distinct loopback ports that are free right now.
func freePorts(t *testing.T, n int) []uint32 {
	t.Helper()

	listeners := make([]net.Listener, n)
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		lis, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		listeners[i] = lis
		out[i] = uint32(lis.Addr().(*net.TCPAddr).Port)
	}
	for _, lis := range listeners {
		lis.Close()
	}
	return out
}

func newTestService(t *testing.T, clock clockwork.Clock, ports []uint32) *Service {
	t.Helper()
	return New(Config{
		ChannelIP:           "127.0.0.1",
		ChannelPorts:        ports,
		ChatPollInterval:    20 * time.Millisecond,
		StatusPollInterval:  20 * time.Millisecond,
		ChannelPollInterval: 20 * time.Millisecond,
	}, clock, zaptest.NewLogger(t))
}

// startLobby serves the lobby on a loopback listener and returns a
// connected client.
func startLobby(t *testing.T, s *Service) pb.LobbyClient {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	pb.RegisterLobbyServer(srv, s)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient(lis.Addr().String(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return pb.NewLobbyClient(conn)
}

// enter materialises a directory entry the way any first touch would.
func enter(t *testing.T, s *Service, index uint32) {
	t.Helper()
	_, err := s.ChatSend(context.Background(), &pb.Chat{Index: index})
	require.NoError(t, err)
}

func command(t *testing.T, s *Service, req *pb.CommandRequest) *pb.CommandReply {
	t.Helper()
	reply, err := s.Command(context.Background(), req)
	require.NoError(t, err)
	return reply
}

func TestCommandUnknownUser(t *testing.T) {
	s := newTestService(t, clockwork.NewFakeClock(), nil)

	reply := command(t, s, &pb.CommandRequest{
		Index: 99,
		Kind:  pb.CommandKind_COMMAND_KIND_LIST_CHANNELS,
	})
	assert.Equal(t, pb.CommandStatus_COMMAND_STATUS_FAILURE, reply.GetStatus())
}

func TestMakeListJoinLeave(t *testing.T) {
	ports := freePorts(t, 2)
	s := newTestService(t, clockwork.NewRealClock(), ports)
	enter(t, s, 1)
	enter(t, s, 2)
	enter(t, s, 3)

	make1 := command(t, s, &pb.CommandRequest{Index: 1, Kind: pb.CommandKind_COMMAND_KIND_MAKE_CHANNEL})
	require.Equal(t, pb.CommandStatus_COMMAND_STATUS_SUCCESS, make1.GetStatus())
	assert.Equal(t, []uint32{ports[0]}, make1.GetChannels())
	assert.NotEmpty(t, make1.GetAddress())

	// The maker is already in a channel.
	again := command(t, s, &pb.CommandRequest{Index: 1, Kind: pb.CommandKind_COMMAND_KIND_MAKE_CHANNEL})
	assert.Equal(t, pb.CommandStatus_COMMAND_STATUS_FAILURE, again.GetStatus())

	list := command(t, s, &pb.CommandRequest{Index: 2, Kind: pb.CommandKind_COMMAND_KIND_LIST_CHANNELS})
	require.Equal(t, pb.CommandStatus_COMMAND_STATUS_SUCCESS, list.GetStatus())
	assert.Equal(t, []uint32{ports[0]}, list.GetChannels())

	join := command(t, s, &pb.CommandRequest{Index: 2, Kind: pb.CommandKind_COMMAND_KIND_JOIN_CHANNEL, Channel: ports[0]})
	require.Equal(t, pb.CommandStatus_COMMAND_STATUS_SUCCESS, join.GetStatus())
	assert.Equal(t, make1.GetAddress(), join.GetAddress())

	rejoin := command(t, s, &pb.CommandRequest{Index: 2, Kind: pb.CommandKind_COMMAND_KIND_JOIN_CHANNEL, Channel: ports[0]})
	assert.Equal(t, pb.CommandStatus_COMMAND_STATUS_FAILURE, rejoin.GetStatus())

	ghost := command(t, s, &pb.CommandRequest{Index: 3, Kind: pb.CommandKind_COMMAND_KIND_JOIN_CHANNEL, Channel: 1})
	assert.Equal(t, pb.CommandStatus_COMMAND_STATUS_FAILURE, ghost.GetStatus())

	// Leaving without a channel fails; leaving with one succeeds.
	noLeave := command(t, s, &pb.CommandRequest{Index: 3, Kind: pb.CommandKind_COMMAND_KIND_LEAVE_CHANNEL})
	assert.Equal(t, pb.CommandStatus_COMMAND_STATUS_FAILURE, noLeave.GetStatus())

	leave := command(t, s, &pb.CommandRequest{Index: 2, Kind: pb.CommandKind_COMMAND_KIND_LEAVE_CHANNEL})
	assert.Equal(t, pb.CommandStatus_COMMAND_STATUS_SUCCESS, leave.GetStatus())
}

func TestPortPoolLIFOReuse(t *testing.T) {
	ports := freePorts(t, 2)
	s := newTestService(t, clockwork.NewRealClock(), ports)
	enter(t, s, 1)

	first := command(t, s, &pb.CommandRequest{Index: 1, Kind: pb.CommandKind_COMMAND_KIND_MAKE_CHANNEL})
	require.Equal(t, pb.CommandStatus_COMMAND_STATUS_SUCCESS, first.GetStatus())
	assert.Equal(t, []uint32{ports[0]}, first.GetChannels())

	// No member ever opened a stream, so leaving tears the channel down
	// and returns its port to the front of the pool.
	leave := command(t, s, &pb.CommandRequest{Index: 1, Kind: pb.CommandKind_COMMAND_KIND_LEAVE_CHANNEL})
	require.Equal(t, pb.CommandStatus_COMMAND_STATUS_SUCCESS, leave.GetStatus())

	s.mu.Lock()
	pool := append([]uint32(nil), s.ports...)
	s.mu.Unlock()
	assert.Equal(t, []uint32{ports[0], ports[1]}, pool)

	second := command(t, s, &pb.CommandRequest{Index: 1, Kind: pb.CommandKind_COMMAND_KIND_MAKE_CHANNEL})
	require.Equal(t, pb.CommandStatus_COMMAND_STATUS_SUCCESS, second.GetStatus())
	assert.Equal(t, []uint32{ports[0]}, second.GetChannels())

	command(t, s, &pb.CommandRequest{Index: 1, Kind: pb.CommandKind_COMMAND_KIND_LEAVE_CHANNEL})
}

func TestMakeChannelPoolExhausted(t *testing.T) {
	s := newTestService(t, clockwork.NewRealClock(), nil)
	enter(t, s, 1)

	reply := command(t, s, &pb.CommandRequest{Index: 1, Kind: pb.CommandKind_COMMAND_KIND_MAKE_CHANNEL})
	assert.Equal(t, pb.CommandStatus_COMMAND_STATUS_FAILURE, reply.GetStatus())
}

func TestListUsers(t *testing.T) {
	ports := freePorts(t, 1)
	s := newTestService(t, clockwork.NewRealClock(), ports)
	enter(t, s, 1)
	enter(t, s, 2)
	enter(t, s, 3)

	made := command(t, s, &pb.CommandRequest{Index: 1, Kind: pb.CommandKind_COMMAND_KIND_MAKE_CHANNEL})
	require.Equal(t, pb.CommandStatus_COMMAND_STATUS_SUCCESS, made.GetStatus())

	all := command(t, s, &pb.CommandRequest{Index: 2, Kind: pb.CommandKind_COMMAND_KIND_LIST_USERS})
	require.Equal(t, pb.CommandStatus_COMMAND_STATUS_SUCCESS, all.GetStatus())
	assert.Equal(t, []uint32{1, 2, 3}, all.GetUsers())
	assert.Equal(t, []uint32{ports[0], 0, 0}, all.GetChannels())

	// Channel membership materialises when the member opens a stream
	// directly against the channel.
	conn, err := grpc.NewClient(made.GetAddress(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream, err := pb.NewChannelClient(conn).StatusRequest(ctx, &pb.UserRequest{Index: 1})
	require.NoError(t, err)
	_, err = stream.Recv() // own join announce
	require.NoError(t, err)

	scoped := command(t, s, &pb.CommandRequest{Index: 2, Kind: pb.CommandKind_COMMAND_KIND_LIST_USERS, Channel: ports[0]})
	require.Equal(t, pb.CommandStatus_COMMAND_STATUS_SUCCESS, scoped.GetStatus())
	assert.Equal(t, []uint32{1}, scoped.GetUsers())
	assert.Equal(t, []uint32{ports[0]}, scoped.GetChannels())

	cancel()
	command(t, s, &pb.CommandRequest{Index: 1, Kind: pb.CommandKind_COMMAND_KIND_LEAVE_CHANNEL})
}

func TestSessionValidity(t *testing.T) {
	clock := clockwork.NewFakeClock()
	s := newTestService(t, clock, nil)
	enter(t, s, 1)

	exit, err := s.UserExit(context.Background(), &pb.UserRequest{Index: 1})
	require.NoError(t, err)
	assert.Equal(t, pb.UserEvent_USER_EVENT_OK, exit.GetStatus())

	// Activity slides the deadline.
	clock.Advance(40 * time.Second)
	enter(t, s, 1)
	clock.Advance(40 * time.Second)

	exit, err = s.UserExit(context.Background(), &pb.UserRequest{Index: 1})
	require.NoError(t, err)
	assert.Equal(t, pb.UserEvent_USER_EVENT_OK, exit.GetStatus())

	// Silence past the deadline means Quit, queued for the status stream.
	clock.Advance(61 * time.Second)
	exit, err = s.UserExit(context.Background(), &pb.UserRequest{Index: 1})
	require.NoError(t, err)
	assert.Equal(t, pb.UserEvent_USER_EVENT_QUIT, exit.GetStatus())

	queued := s.room.DrainStatuses(1)
	require.Len(t, queued, 1)
	assert.Equal(t, pb.UserEvent_USER_EVENT_QUIT, queued[0].GetStatus())
}

func TestUserExitUnknownUser(t *testing.T) {
	s := newTestService(t, clockwork.NewFakeClock(), nil)

	exit, err := s.UserExit(context.Background(), &pb.UserRequest{Index: 5})
	require.NoError(t, err)
	assert.Equal(t, pb.UserEvent_USER_EVENT_OK, exit.GetStatus())
}

func TestUserRemoveCascade(t *testing.T) {
	ports := freePorts(t, 1)
	s := newTestService(t, clockwork.NewRealClock(), ports)
	enter(t, s, 1)

	made := command(t, s, &pb.CommandRequest{Index: 1, Kind: pb.CommandKind_COMMAND_KIND_MAKE_CHANNEL})
	require.Equal(t, pb.CommandStatus_COMMAND_STATUS_SUCCESS, made.GetStatus())

	_, err := s.UserRemove(context.Background(), &pb.UserRequest{Index: 1})
	require.NoError(t, err)
	_, err = s.UserRemove(context.Background(), &pb.UserRequest{Index: 1})
	require.NoError(t, err)

	// Directory entry is gone and the channel was torn down with it.
	reply := command(t, s, &pb.CommandRequest{Index: 1, Kind: pb.CommandKind_COMMAND_KIND_LIST_CHANNELS})
	assert.Equal(t, pb.CommandStatus_COMMAND_STATUS_FAILURE, reply.GetStatus())

	s.mu.Lock()
	pool := append([]uint32(nil), s.ports...)
	channels := len(s.channels)
	s.mu.Unlock()
	assert.Equal(t, []uint32{ports[0]}, pool)
	assert.Zero(t, channels)
}

func TestChatStreamDelivery(t *testing.T) {
	s := newTestService(t, clockwork.NewRealClock(), nil)
	client := startLobby(t, s)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	recv, err := client.ChatReceive(ctx, &pb.Chat{Index: 2})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return s.Known(2) },
		time.Second, 5*time.Millisecond)

	_, err = client.ChatSend(ctx, &pb.Chat{Index: 1, Text: "hello lobby"})
	require.NoError(t, err)

	chat, err := recv.Recv()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), chat.GetIndex())
	assert.Equal(t, "hello lobby", chat.GetText())
}

func TestStatusStreamDeliversQuit(t *testing.T) {
	s := New(Config{
		Validity:           50 * time.Millisecond,
		ChatPollInterval:   20 * time.Millisecond,
		StatusPollInterval: 20 * time.Millisecond,
	}, clockwork.NewRealClock(), zaptest.NewLogger(t))
	client := startLobby(t, s)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := client.StatusRequest(ctx, &pb.UserRequest{Index: 1})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return s.Known(1) },
		time.Second, 5*time.Millisecond)
	time.Sleep(80 * time.Millisecond)

	exit, err := client.UserExit(ctx, &pb.UserRequest{Index: 1})
	require.NoError(t, err)
	require.Equal(t, pb.UserEvent_USER_EVENT_QUIT, exit.GetStatus())

	ev, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, pb.UserEvent_USER_EVENT_QUIT, ev.GetStatus())
	assert.Equal(t, uint32(1), ev.GetIndex())
}
