package console

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"

	pb "github.com/ehei1/chatting/proto"
)

type eofChatStream struct{ grpc.ClientStream }

func (eofChatStream) Recv() (*pb.Chat, error) { return nil, io.EOF }

type eofStatusStream struct{ grpc.ClientStream }

func (eofStatusStream) Recv() (*pb.StatusReply, error) { return nil, io.EOF }

// scriptedLobby answers Command with canned replies and records traffic.
type scriptedLobby struct {
	replies []*pb.CommandReply
	sent    []*pb.Chat
	reqs    []*pb.CommandRequest
}

func (s *scriptedLobby) ChatSend(_ context.Context, chat *pb.Chat, _ ...grpc.CallOption) (*pb.Empty, error) {
	s.sent = append(s.sent, chat)
	return &pb.Empty{}, nil
}

func (s *scriptedLobby) ChatReceive(context.Context, *pb.Chat, ...grpc.CallOption) (grpc.ServerStreamingClient[pb.Chat], error) {
	return eofChatStream{}, nil
}

func (s *scriptedLobby) StatusRequest(context.Context, *pb.UserRequest, ...grpc.CallOption) (grpc.ServerStreamingClient[pb.StatusReply], error) {
	return eofStatusStream{}, nil
}

func (s *scriptedLobby) Command(_ context.Context, req *pb.CommandRequest, _ ...grpc.CallOption) (*pb.CommandReply, error) {
	s.reqs = append(s.reqs, req)
	if len(s.replies) == 0 {
		return &pb.CommandReply{Status: pb.CommandStatus_COMMAND_STATUS_SUCCESS}, nil
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply, nil
}

func (s *scriptedLobby) UserRemove(context.Context, *pb.UserRequest, ...grpc.CallOption) (*pb.Empty, error) {
	return &pb.Empty{}, nil
}

func (s *scriptedLobby) UserExit(context.Context, *pb.UserRequest, ...grpc.CallOption) (*pb.StatusReply, error) {
	return &pb.StatusReply{Status: pb.UserEvent_USER_EVENT_OK}, nil
}

type stubChannel struct {
	sent []*pb.Chat
}

func (s *stubChannel) ChatSend(_ context.Context, chat *pb.Chat, _ ...grpc.CallOption) (*pb.Empty, error) {
	s.sent = append(s.sent, chat)
	return &pb.Empty{}, nil
}

func (s *stubChannel) ChatReceive(context.Context, *pb.Chat, ...grpc.CallOption) (grpc.ServerStreamingClient[pb.Chat], error) {
	return eofChatStream{}, nil
}

func (s *stubChannel) StatusRequest(context.Context, *pb.UserRequest, ...grpc.CallOption) (grpc.ServerStreamingClient[pb.StatusReply], error) {
	return eofStatusStream{}, nil
}

func (s *stubChannel) UserRemove(context.Context, *pb.UserRequest, ...grpc.CallOption) (*pb.Empty, error) {
	return &pb.Empty{}, nil
}

func newTestClient(t *testing.T, lobby *scriptedLobby, channel *stubChannel) (*Client, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	c := New(Config{AgentAddr: "localhost:50050", Out: out}, zaptest.NewLogger(t))
	c.index = 7
	c.lobby = lobby
	c.dialChannel = func(string) (pb.ChannelClient, io.Closer, error) {
		return channel, nil, nil
	}
	return c, out
}

func TestAllSendsLobbyChat(t *testing.T) {
	lobby := &scriptedLobby{}
	c, _ := newTestClient(t, lobby, &stubChannel{})

	require.NoError(t, c.handleLine(context.Background(), "/all hello everyone"))

	require.Len(t, lobby.sent, 1)
	assert.Equal(t, uint32(7), lobby.sent[0].GetIndex())
	assert.Equal(t, "hello everyone", lobby.sent[0].GetText())
}

func TestBareTextNeedsChannel(t *testing.T) {
	c, out := newTestClient(t, &scriptedLobby{}, &stubChannel{})

	require.NoError(t, c.handleLine(context.Background(), "just chatting"))
	assert.Contains(t, out.String(), "You have to join a channel to chat")
}

func TestMakeJoinsChannelAndRoutesChat(t *testing.T) {
	lobby := &scriptedLobby{replies: []*pb.CommandReply{{
		Status:   pb.CommandStatus_COMMAND_STATUS_SUCCESS,
		Address:  "localhost:50054",
		Channels: []uint32{50054},
	}}}
	channel := &stubChannel{}
	c, out := newTestClient(t, lobby, channel)

	require.NoError(t, c.handleLine(context.Background(), "/make"))
	assert.Contains(t, out.String(), "channel is created:localhost:50054")

	require.NoError(t, c.handleLine(context.Background(), "hi room"))
	require.Len(t, channel.sent, 1)
	assert.Equal(t, "hi room", channel.sent[0].GetText())

	// A second make is refused locally.
	require.NoError(t, c.handleLine(context.Background(), "/make"))
	assert.Contains(t, out.String(), "you are in a channel already")
	assert.Len(t, lobby.reqs, 1)
}

func TestMakeFailurePrinted(t *testing.T) {
	lobby := &scriptedLobby{replies: []*pb.CommandReply{{
		Status: pb.CommandStatus_COMMAND_STATUS_FAILURE,
	}}}
	c, out := newTestClient(t, lobby, &stubChannel{})

	require.NoError(t, c.handleLine(context.Background(), "/make"))
	assert.Contains(t, out.String(), "channel creating is failed")
}

func TestJoinValidation(t *testing.T) {
	lobby := &scriptedLobby{replies: []*pb.CommandReply{{
		Status:  pb.CommandStatus_COMMAND_STATUS_SUCCESS,
		Address: "localhost:50055",
	}}}
	c, out := newTestClient(t, lobby, &stubChannel{})

	require.NoError(t, c.handleLine(context.Background(), "/join nonsense"))
	assert.Contains(t, out.String(), "You entered invalid channel")
	assert.Empty(t, lobby.reqs)

	require.NoError(t, c.handleLine(context.Background(), "/join 50055"))
	assert.Contains(t, out.String(), "You joined at channel localhost:50055")
	require.Len(t, lobby.reqs, 1)
	assert.Equal(t, uint32(50055), lobby.reqs[0].GetChannel())
}

func TestLeaveChannel(t *testing.T) {
	lobby := &scriptedLobby{replies: []*pb.CommandReply{
		{Status: pb.CommandStatus_COMMAND_STATUS_SUCCESS, Address: "localhost:50056", Channels: []uint32{50056}},
		{Status: pb.CommandStatus_COMMAND_STATUS_SUCCESS},
	}}
	c, out := newTestClient(t, lobby, &stubChannel{})

	require.NoError(t, c.handleLine(context.Background(), "/leave"))
	assert.Contains(t, out.String(), "It can use when you are in a channel")

	require.NoError(t, c.handleLine(context.Background(), "/make"))
	require.NoError(t, c.handleLine(context.Background(), "/leave"))
	assert.Contains(t, out.String(), "You left from channel localhost:50056")

	// Back in the lobby: bare text needs a channel again.
	require.NoError(t, c.handleLine(context.Background(), "chat?"))
	assert.Contains(t, out.String(), "You have to join a channel to chat")
}

func TestListChannelsEmpty(t *testing.T) {
	lobby := &scriptedLobby{replies: []*pb.CommandReply{{
		Status: pb.CommandStatus_COMMAND_STATUS_SUCCESS,
	}}}
	c, out := newTestClient(t, lobby, &stubChannel{})

	require.NoError(t, c.handleLine(context.Background(), "/list"))
	assert.Contains(t, out.String(), "There is no channel")
}

func TestListUsersPrintsPairs(t *testing.T) {
	lobby := &scriptedLobby{replies: []*pb.CommandReply{{
		Status:   pb.CommandStatus_COMMAND_STATUS_SUCCESS,
		Users:    []uint32{1, 2},
		Channels: []uint32{0, 50054},
	}}}
	c, out := newTestClient(t, lobby, &stubChannel{})

	require.NoError(t, c.handleLine(context.Background(), "/user"))
	assert.Contains(t, out.String(), "user:1 at channel 0")
	assert.Contains(t, out.String(), "user:2 at channel 50054")
}

func TestUnknownCommand(t *testing.T) {
	c, out := newTestClient(t, &scriptedLobby{}, &stubChannel{})

	require.NoError(t, c.handleLine(context.Background(), "/bogus"))
	assert.Contains(t, out.String(), "unknown command /bogus")
}

func TestHelpListsEveryCommand(t *testing.T) {
	c, out := newTestClient(t, &scriptedLobby{}, &stubChannel{})

	require.NoError(t, c.handleLine(context.Background(), "/?"))
	for _, cmd := range []string{"/all", "/make", "/list", "/join", "/leave", "/user", "/?"} {
		assert.Contains(t, out.String(), cmd)
	}
}

func TestQuitStatusEndsSession(t *testing.T) {
	c, out := newTestClient(t, &scriptedLobby{}, &stubChannel{})

	quit := c.printStatus(&pb.StatusReply{Index: 7, Status: pb.UserEvent_USER_EVENT_QUIT})
	assert.True(t, quit)
	assert.Contains(t, out.String(), "your session expired")

	quit = c.printStatus(&pb.StatusReply{Index: 3, Status: pb.UserEvent_USER_EVENT_JOIN_USER, Channel: 50054})
	assert.False(t, quit)
	assert.Contains(t, out.String(), "user 3 joined at channel 50054")

	quit = c.printStatus(&pb.StatusReply{Index: 3, Status: pb.UserEvent_USER_EVENT_LEAVE_USER})
	assert.False(t, quit)
	assert.Contains(t, out.String(), "user 3 left from lobby")
}
