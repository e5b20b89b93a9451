package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ehei1/chatting/internal/agent"
	"github.com/ehei1/chatting/internal/heartbeat"
	"github.com/ehei1/chatting/internal/lobby"
	"github.com/ehei1/chatting/internal/metrics"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type config struct {
	agentAddr     string
	heartbeatAddr string
	lobbyAddr     string
	channelIP     string
	channelPorts  string
	metricsAddr   string
	logLevel      string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}

	root := &cobra.Command{
		Use:   "chatting-server",
		Short: "Chatting server: agent, heartbeat and lobby services",
		Long: `Chatting server hosts the three gRPC services of the chat system:
the agent (login and liveness sweeps), the heartbeat (client liveness)
and the lobby (users, commands and dynamically created channels).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cfg)
		},
	}

	root.AddCommand(newVersionCmd())

	root.PersistentFlags().StringVar(&cfg.agentAddr, "agent", envOrDefault("CHATTING_AGENT", "localhost:50050"), "Agent listen address")
	root.PersistentFlags().StringVar(&cfg.heartbeatAddr, "heartbeat", envOrDefault("CHATTING_HEARTBEAT", "localhost:50051"), "Heartbeat listen address")
	root.PersistentFlags().StringVar(&cfg.lobbyAddr, "lobby", envOrDefault("CHATTING_LOBBY", "localhost:50052"), "Lobby listen address")
	root.PersistentFlags().StringVar(&cfg.channelIP, "channel-ip", envOrDefault("CHATTING_CHANNEL_IP", "localhost"), "IP channels bind to")
	root.PersistentFlags().StringVar(&cfg.channelPorts, "ports", envOrDefault("CHATTING_PORTS", "50054 50055 50056 50057"), "Space-separated ports available for channels")
	root.PersistentFlags().StringVar(&cfg.metricsAddr, "metrics-addr", envOrDefault("CHATTING_METRICS_ADDR", ""), "Prometheus /metrics listen address (empty = disabled)")
	root.PersistentFlags().StringVar(&cfg.logLevel, "log-level", envOrDefault("CHATTING_LOG_LEVEL", "info"), "Log level (debug, info, warn, error)")

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("chatting-server %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func run(ctx context.Context, cfg *config) error {
	logger, err := buildLogger(cfg.logLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ports, err := parsePorts(cfg.channelPorts)
	if err != nil {
		return err
	}

	logger.Info("starting chatting server",
		zap.String("version", version),
		zap.String("agent_addr", cfg.agentAddr),
		zap.String("heartbeat_addr", cfg.heartbeatAddr),
		zap.String("lobby_addr", cfg.lobbyAddr),
		zap.String("channel_ip", cfg.channelIP),
		zap.Uint32s("channel_ports", ports),
	)

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	clock := clockwork.NewRealClock()

	heartbeatSvc := heartbeat.New(heartbeat.Config{}, clock, logger)
	lobbySvc := lobby.New(lobby.Config{
		ChannelIP:    cfg.channelIP,
		ChannelPorts: ports,
	}, clock, logger)
	agentSvc := agent.New(agent.Config{
		HeartbeatAddr: cfg.heartbeatAddr,
		LobbyAddr:     cfg.lobbyAddr,
	}, clock, logger)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error { return heartbeatSvc.ListenAndServe(ctx, cfg.heartbeatAddr) })
	group.Go(func() error { return lobbySvc.ListenAndServe(ctx, cfg.lobbyAddr) })
	group.Go(func() error { return agentSvc.ListenAndServe(ctx, cfg.agentAddr) })
	if cfg.metricsAddr != "" {
		group.Go(func() error { return metrics.Serve(ctx, cfg.metricsAddr, logger) })
	}

	if err := group.Wait(); err != nil {
		return err
	}
	logger.Info("chatting server stopped")
	return nil
}

// parsePorts splits the space-separated port list from --ports.
func parsePorts(s string) ([]uint32, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("no channel ports configured, set --ports")
	}

	out := make([]uint32, 0, len(fields))
	for _, f := range fields {
		port, err := strconv.ParseUint(f, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid channel port %q: %w", f, err)
		}
		out = append(out, uint32(port))
	}
	return out, nil
}

func buildLogger(level string) (*zap.Logger, error) {
	var cfg zap.Config

	switch level {
	case "debug":
		cfg = zap.NewDevelopmentConfig()
	default:
		cfg = zap.NewProductionConfig()
	}

	switch level {
	case "debug":
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case "info":
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	return cfg.Build()
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
