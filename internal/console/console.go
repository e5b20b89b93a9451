// Package console implements the interactive terminal client behind
// cmd/client.
//
// The client logs in through the agent, keeps a heartbeat stream open,
// consumes the lobby's chat and status streams, and turns terminal input
// into lobby commands. Bare text goes to the joined channel; slash
// commands drive the lobby.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/ehei1/chatting/proto"
)

// errQuit ends the session cleanly when the lobby declares it dead.
var errQuit = errors.New("session declared quit by the lobby")

// Config holds the configuration for the console client.
type Config struct {
	// AgentAddr is the agent endpoint to log in through.
	AgentAddr string

	// In and Out are the terminal ends. Tests substitute buffers.
	In  io.Reader
	Out io.Writer
}

// channelSession is the client side of one joined channel: its own
// connection plus the cancel that ends its consumer streams.
type channelSession struct {
	port    uint32
	address string
	client  pb.ChannelClient
	closer  io.Closer
	cancel  context.CancelFunc
}

// Client is one interactive session.
// The zero value is not usable; create instances with New.
type Client struct {
	cfg    Config
	logger *zap.Logger
	out    io.Writer

	index uint32
	lobby pb.LobbyClient

	mu      sync.Mutex
	channel *channelSession

	// dialChannel is swapped out by tests to avoid real channel servers.
	dialChannel func(address string) (pb.ChannelClient, io.Closer, error)
}

// New creates a console client.
func New(cfg Config, logger *zap.Logger) *Client {
	c := &Client{
		cfg:    cfg,
		logger: logger.Named("console"),
		out:    cfg.Out,
	}
	c.dialChannel = func(address string) (pb.ChannelClient, io.Closer, error) {
		conn, err := grpc.NewClient(address,
			grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, nil, err
		}
		return pb.NewChannelClient(conn), conn, nil
	}
	return c
}

// Run logs in and drives the session until the context is cancelled, the
// input closes, the lobby declares the session quit, or a transport error
// occurs.
func (c *Client) Run(ctx context.Context) error {
	agentConn, err := grpc.NewClient(c.cfg.AgentAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("console: dial agent %s: %w", c.cfg.AgentAddr, err)
	}
	defer agentConn.Close()

	login, err := pb.NewAgentClient(agentConn).Login(ctx, &pb.LoginRequest{Ip: localIP()})
	if err != nil {
		return fmt.Errorf("console: login: %w", err)
	}
	c.index = login.GetIndex()
	fmt.Fprintf(c.out, "my index is %d\n", c.index)

	hbConn, err := grpc.NewClient(login.GetHeartbeatAddress(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("console: dial heartbeat: %w", err)
	}
	defer hbConn.Close()

	lobbyConn, err := grpc.NewClient(login.GetLobbyAddress(),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("console: dial lobby: %w", err)
	}
	defer lobbyConn.Close()
	c.lobby = pb.NewLobbyClient(lobbyConn)

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error { return c.consumeHeartbeat(ctx, pb.NewHeartbeatClient(hbConn)) })
	group.Go(func() error {
		stream, err := c.lobby.ChatReceive(ctx, &pb.Chat{Index: c.index})
		if err != nil {
			return fmt.Errorf("console: open lobby chat stream: %w", err)
		}
		return c.consumeChats(stream)
	})
	group.Go(func() error {
		stream, err := c.lobby.StatusRequest(ctx, &pb.UserRequest{Index: c.index})
		if err != nil {
			return fmt.Errorf("console: open lobby status stream: %w", err)
		}
		return c.consumeStatuses(stream)
	})
	group.Go(func() error { return c.readInput(ctx) })

	err = group.Wait()
	c.leaveSession()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// consumeHeartbeat keeps the liveness stream open, debug-logging ticks.
func (c *Client) consumeHeartbeat(ctx context.Context, client pb.HeartbeatClient) error {
	stream, err := client.Heartbeat(ctx, &pb.HeartbeatRequest{Index: c.index})
	if err != nil {
		return fmt.Errorf("console: open heartbeat stream: %w", err)
	}
	for {
		tick, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("console: heartbeat stream: %w", err)
		}
		c.logger.Debug("heartbeat tick", zap.Uint64("time", tick.GetTime()))
	}
}

// consumeChats prints incoming chats as "index: text".
func (c *Client) consumeChats(stream grpc.ServerStreamingClient[pb.Chat]) error {
	for {
		chat, err := stream.Recv()
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%d: %s\n", chat.GetIndex(), chat.GetText())
	}
}

// consumeStatuses prints join/leave notices and ends the session on Quit.
func (c *Client) consumeStatuses(stream grpc.ServerStreamingClient[pb.StatusReply]) error {
	for {
		ev, err := stream.Recv()
		if err != nil {
			return err
		}
		if quit := c.printStatus(ev); quit {
			return errQuit
		}
	}
}

func (c *Client) printStatus(ev *pb.StatusReply) bool {
	place := "lobby"
	if ev.GetChannel() != 0 {
		place = fmt.Sprintf("channel %d", ev.GetChannel())
	}

	switch ev.GetStatus() {
	case pb.UserEvent_USER_EVENT_JOIN_USER:
		fmt.Fprintf(c.out, "user %d joined at %s\n", ev.GetIndex(), place)
	case pb.UserEvent_USER_EVENT_LEAVE_USER:
		fmt.Fprintf(c.out, "user %d left from %s\n", ev.GetIndex(), place)
	case pb.UserEvent_USER_EVENT_QUIT:
		fmt.Fprintln(c.out, "your session expired, goodbye")
		return true
	}
	return false
}

// readInput turns terminal lines into commands until EOF or cancellation.
func (c *Client) readInput(ctx context.Context) error {
	fmt.Fprintln(c.out, "Help: /?")

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(c.cfg.In)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-scanErr:
			if err != nil {
				return err
			}
			// Input closed: treat like a quit so the consumer streams
			// are cancelled and Run returns cleanly.
			return errQuit
		case line := <-lines:
			if err := c.handleLine(ctx, line); err != nil {
				return err
			}
		}
	}
}

// handleLine executes one input line. Command-level failures are printed;
// only transport errors are returned.
func (c *Client) handleLine(ctx context.Context, line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	words := strings.Fields(line)
	command, rest := words[0], strings.Join(words[1:], " ")

	switch command {
	case "/all":
		_, err := c.lobby.ChatSend(ctx, &pb.Chat{Index: c.index, Text: rest})
		return err

	case "/make":
		return c.makeChannel(ctx)

	case "/list":
		return c.listChannels(ctx)

	case "/join":
		return c.joinChannel(ctx, rest)

	case "/leave":
		return c.leaveChannel(ctx)

	case "/user":
		return c.listUsers(ctx, rest)

	case "/?":
		c.printHelp()
		return nil

	default:
		if strings.HasPrefix(command, "/") {
			fmt.Fprintf(c.out, "unknown command %s, try /?\n", command)
			return nil
		}
		return c.channelChat(ctx, line)
	}
}

func (c *Client) printHelp() {
	help := []struct{ command, description string }{
		{"/all", "send chat to all"},
		{"/make", "make a channel"},
		{"/list", "list up all channels"},
		{"/join", "join to channel"},
		{"/leave", "leave from the channel"},
		{"/user", "list users in the channel or lobby"},
		{"/?", "list up all commands"},
	}
	for _, h := range help {
		fmt.Fprintf(c.out, "%s: %s\n", h.command, h.description)
	}
}

// channelChat sends bare text to the joined channel.
func (c *Client) channelChat(ctx context.Context, text string) error {
	c.mu.Lock()
	session := c.channel
	c.mu.Unlock()

	if session == nil {
		fmt.Fprintln(c.out, "You have to join a channel to chat")
		return nil
	}
	_, err := session.client.ChatSend(ctx, &pb.Chat{Index: c.index, Text: text})
	return err
}

func (c *Client) makeChannel(ctx context.Context) error {
	c.mu.Lock()
	inChannel := c.channel != nil
	c.mu.Unlock()
	if inChannel {
		fmt.Fprintln(c.out, "you are in a channel already")
		return nil
	}

	reply, err := c.lobby.Command(ctx, &pb.CommandRequest{
		Index: c.index,
		Kind:  pb.CommandKind_COMMAND_KIND_MAKE_CHANNEL,
	})
	if err != nil {
		return err
	}
	if reply.GetStatus() != pb.CommandStatus_COMMAND_STATUS_SUCCESS {
		fmt.Fprintln(c.out, "channel creating is failed")
		return nil
	}

	if err := c.enterChannel(ctx, reply.GetAddress(), reply.GetChannels()[0]); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "channel is created:%s\n", reply.GetAddress())
	return nil
}

func (c *Client) listChannels(ctx context.Context) error {
	reply, err := c.lobby.Command(ctx, &pb.CommandRequest{
		Index: c.index,
		Kind:  pb.CommandKind_COMMAND_KIND_LIST_CHANNELS,
	})
	if err != nil {
		return err
	}
	if len(reply.GetChannels()) == 0 {
		fmt.Fprintln(c.out, "There is no channel")
		return nil
	}
	for _, port := range reply.GetChannels() {
		fmt.Fprintf(c.out, "channel:%d\n", port)
	}
	return nil
}

func (c *Client) joinChannel(ctx context.Context, arg string) error {
	c.mu.Lock()
	inChannel := c.channel != nil
	c.mu.Unlock()
	if inChannel {
		fmt.Fprintln(c.out, "You entered in a channel")
		return nil
	}

	port, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		fmt.Fprintln(c.out, "You entered invalid channel")
		return nil
	}

	reply, err := c.lobby.Command(ctx, &pb.CommandRequest{
		Index:   c.index,
		Kind:    pb.CommandKind_COMMAND_KIND_JOIN_CHANNEL,
		Channel: uint32(port),
	})
	if err != nil {
		return err
	}
	if reply.GetStatus() != pb.CommandStatus_COMMAND_STATUS_SUCCESS {
		fmt.Fprintln(c.out, "channel joining is failed")
		return nil
	}

	if err := c.enterChannel(ctx, reply.GetAddress(), uint32(port)); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "You joined at channel %s\n", reply.GetAddress())
	return nil
}

func (c *Client) leaveChannel(ctx context.Context) error {
	c.mu.Lock()
	session := c.channel
	c.mu.Unlock()
	if session == nil {
		fmt.Fprintln(c.out, "It can use when you are in a channel")
		return nil
	}

	if _, err := c.lobby.Command(ctx, &pb.CommandRequest{
		Index:   c.index,
		Kind:    pb.CommandKind_COMMAND_KIND_LEAVE_CHANNEL,
		Channel: session.port,
	}); err != nil {
		return err
	}

	c.leaveSession()
	fmt.Fprintf(c.out, "You left from channel %s\n", session.address)
	return nil
}

func (c *Client) listUsers(ctx context.Context, arg string) error {
	port, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		port = 0
	}

	reply, err := c.lobby.Command(ctx, &pb.CommandRequest{
		Index:   c.index,
		Kind:    pb.CommandKind_COMMAND_KIND_LIST_USERS,
		Channel: uint32(port),
	})
	if err != nil {
		return err
	}
	for i, user := range reply.GetUsers() {
		fmt.Fprintf(c.out, "user:%d at channel %d\n", user, reply.GetChannels()[i])
	}
	return nil
}

// enterChannel opens the channel connection and its chat/status consumer
// streams.
func (c *Client) enterChannel(ctx context.Context, address string, port uint32) error {
	client, closer, err := c.dialChannel(address)
	if err != nil {
		return fmt.Errorf("console: dial channel %s: %w", address, err)
	}

	streamCtx, cancel := context.WithCancel(ctx)
	session := &channelSession{
		port:    port,
		address: address,
		client:  client,
		closer:  closer,
		cancel:  cancel,
	}

	chats, err := client.ChatReceive(streamCtx, &pb.Chat{Index: c.index})
	if err != nil {
		cancel()
		if closer != nil {
			closer.Close()
		}
		return fmt.Errorf("console: open channel chat stream: %w", err)
	}
	statuses, err := client.StatusRequest(streamCtx, &pb.UserRequest{Index: c.index})
	if err != nil {
		cancel()
		if closer != nil {
			closer.Close()
		}
		return fmt.Errorf("console: open channel status stream: %w", err)
	}

	go func() { _ = c.consumeChats(chats) }()
	go func() {
		for {
			ev, err := statuses.Recv()
			if err != nil {
				return
			}
			c.printStatus(ev)
		}
	}()

	c.mu.Lock()
	c.channel = session
	c.mu.Unlock()
	return nil
}

// leaveSession tears down the channel connection, if any.
func (c *Client) leaveSession() {
	c.mu.Lock()
	session := c.channel
	c.channel = nil
	c.mu.Unlock()

	if session != nil {
		session.cancel()
		if session.closer != nil {
			session.closer.Close()
		}
	}
}

// localIP resolves the address reported to the agent at login. The agent
// only uses it as a duplicate-login key, so the hostname lookup does not
// need to produce a routable address.
func localIP() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "127.0.0.1"
	}
	addrs, err := net.LookupHost(hostname)
	if err != nil || len(addrs) == 0 {
		return "127.0.0.1"
	}
	return addrs[0]
}
