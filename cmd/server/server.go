package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpc_auth "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/poketeam-api/internal/cache"
	"github.com/KirkDiggler/poketeam-api/internal/clients/auth"
	"github.com/KirkDiggler/poketeam-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/poketeam-api/internal/clients/wiki"
	"github.com/KirkDiggler/poketeam-api/internal/config"
	"github.com/KirkDiggler/poketeam-api/internal/handlers/rest"
	"github.com/KirkDiggler/poketeam-api/internal/handlers/teambuilder/v1alpha1"
	"github.com/KirkDiggler/poketeam-api/internal/orchestrators/teambuilder"
	"github.com/KirkDiggler/poketeam-api/internal/pkg/clock"
	"github.com/KirkDiggler/poketeam-api/internal/pkg/logging"
	"github.com/KirkDiggler/poketeam-api/internal/redis"
	"github.com/KirkDiggler/poketeam-api/internal/repositories/snapshot"
	"github.com/KirkDiggler/poketeam-api/internal/repositories/team"
)

var (
	configPath string
	grpcPort   int
	httpPort   int
	logLevel   string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long: `Start the team builder gRPC server and its HTTP/JSON gateway.
Flags override values from the config file and POKETEAM_* environment variables.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 0, "HTTP gateway port, 0 keeps the config value")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("port") {
		cfg.Server.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("http-port") {
		cfg.Server.HTTPPort = httpPort
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Development)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	deps, cleanup, err := buildDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	unsubscribe, err := deps.auth.Subscribe(ctx, func(e auth.Event) {
		logger.Info("auth state changed",
			zap.String("event", string(e.Type)),
			zap.String("user_id", e.UserID))
	})
	if err != nil {
		logger.Warn("auth events unavailable", zap.Error(err))
	} else {
		defer unsubscribe()
	}

	if _, err := deps.service.LoadTypeChart(ctx, &teambuilder.LoadTypeChartInput{}); err != nil {
		return fmt.Errorf("failed to load type chart: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Service: deps.service})
	if err != nil {
		return fmt.Errorf("failed to create team builder handler: %w", err)
	}

	grpcServer := newGRPCServer(logger, deps.auth)
	v1alpha1.RegisterTeamBuilderServiceServer(grpcServer, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	var httpServer *http.Server
	if cfg.Server.HTTPPort > 0 {
		gateway, err := rest.NewHandler(&rest.Config{
			Service: handler,
			Auth:    deps.auth,
			Logger:  logger.Named("http"),
		})
		if err != nil {
			return fmt.Errorf("failed to create http gateway: %w", err)
		}
		httpServer = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Server.HTTPPort),
			Handler:           rest.NewRouter(gateway),
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		logger.Info("gRPC server starting", zap.Int("port", cfg.Server.GRPCPort))
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve grpc: %w", err)
		}
		return nil
	})
	if httpServer != nil {
		eg.Go(func() error {
			logger.Info("HTTP gateway starting", zap.Int("port", cfg.Server.HTTPPort))
			if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("failed to serve http: %w", err)
			}
			return nil
		})
	}
	eg.Go(func() error {
		<-egCtx.Done()
		shutdown(logger, grpcServer, httpServer, healthServer, cfg.ShutdownTimeout())
		return nil
	})

	return eg.Wait()
}

// shutdown drains both servers, forcing the gRPC server closed when the
// deadline passes
func shutdown(logger *zap.Logger, grpcServer *grpc.Server, httpServer *http.Server, healthServer *health.Server, timeout time.Duration) {
	logger.Info("shutting down servers")
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), timeout)
	defer shutdownCancel()

	if httpServer != nil {
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("http gateway shutdown", zap.Error(err))
		}
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		logger.Warn("graceful shutdown timeout exceeded, forcing stop")
		grpcServer.Stop()
	case <-stopped:
		logger.Info("server stopped gracefully")
	}
}

func newGRPCServer(logger *zap.Logger, provider auth.Provider) *grpc.Server {
	interceptorLogger := logging.InterceptorLogger(logger.Named("grpc"))
	recoveryHandler := grpc_recovery.WithRecoveryHandler(func(p any) error {
		logger.Error("recovered from panic", zap.Any("panic", p), zap.Stack("stack"))
		return status.Error(codes.Internal, "internal error")
	})
	authFunc := auth.AuthFunc(provider)

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger,
				grpc_logging.WithLogOnEvents(grpc_logging.FinishCall)),
			grpc_recovery.UnaryServerInterceptor(recoveryHandler),
			grpc_auth.UnaryServerInterceptor(authFunc),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger,
				grpc_logging.WithLogOnEvents(grpc_logging.FinishCall)),
			grpc_recovery.StreamServerInterceptor(recoveryHandler),
			grpc_auth.StreamServerInterceptor(authFunc),
		),
	)
}

type dependencies struct {
	auth    auth.Provider
	service teambuilder.Service
}

// buildDependencies wires the stores, clients and orchestrator. The returned
// cleanup closes the Redis client and the snapshot database.
func buildDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*dependencies, func(), error) {
	redisClient, err := redis.Connect(cfg.Redis.Addrs, &redis.Options{
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
		UseTLS:   cfg.Redis.UseTLS,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("failed to reach redis: %w", err)
	}

	var fetchCache cache.Cache
	switch cfg.PokeAPI.Cache {
	case "memory":
		fetchCache = cache.NewMemory(clock.New())
	default:
		fetchCache, err = cache.NewRedis(&cache.RedisConfig{Client: redisClient, Prefix: "pokeapi"})
		if err != nil {
			_ = redisClient.Close()
			return nil, nil, fmt.Errorf("failed to create fetch cache: %w", err)
		}
	}

	pokeAPIClient, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     cfg.PokeAPI.BaseURL,
		HTTPTimeout: cfg.PokeAPITimeout(),
		Cache:       fetchCache,
		CacheTTL:    cfg.CacheTTL(),
		Logger:      logger.Named("pokeapi"),
	})
	if err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("failed to create pokeapi client: %w", err)
	}

	var wikiClient wiki.Client
	if cfg.Wiki.Enabled {
		wikiClient, err = wiki.New(&wiki.Config{
			BaseURL: cfg.Wiki.BaseURL,
			Timeout: cfg.WikiTimeout(),
			Logger:  logger.Named("wiki"),
		})
		if err != nil {
			_ = redisClient.Close()
			return nil, nil, fmt.Errorf("failed to create wiki client: %w", err)
		}
	}

	verifier, err := auth.NewOIDCVerifier(ctx, &auth.OIDCConfig{
		IssuerURL: cfg.Auth.IssuerURL,
		ClientID:  cfg.Auth.ClientID,
		Logger:    logger.Named("oidc"),
	})
	if err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("failed to create id token verifier: %w", err)
	}

	authProvider, err := auth.NewRedis(&auth.RedisConfig{
		Client:     redisClient,
		Verifier:   verifier,
		SessionTTL: cfg.SessionTTL(),
		Logger:     logger.Named("auth"),
	})
	if err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("failed to create auth provider: %w", err)
	}

	teamRepo, err := team.NewRedis(&team.RedisConfig{
		Client: redisClient,
		Logger: logger.Named("teams"),
	})
	if err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("failed to create team repository: %w", err)
	}

	snapshots, err := snapshot.NewSQLite(ctx, &snapshot.SQLiteConfig{
		DSN:    cfg.Snapshot.DSN,
		Logger: logger.Named("snapshots"),
	})
	if err != nil {
		_ = redisClient.Close()
		return nil, nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}

	cleanup := func() {
		if err := snapshots.Close(); err != nil {
			logger.Warn("failed to close snapshot store", zap.Error(err))
		}
		if err := redisClient.Close(); err != nil {
			logger.Warn("failed to close redis client", zap.Error(err))
		}
	}

	service, err := teambuilder.NewOrchestrator(&teambuilder.Config{
		PokeAPI:           pokeAPIClient,
		Wiki:              wikiClient,
		Auth:              authProvider,
		TeamRepo:          teamRepo,
		Snapshots:         snapshots,
		ChartConcurrency:  cfg.PokeAPI.Concurrency,
		DefaultGeneration: cfg.DefaultGeneration(),
		Logger:            logger.Named("teambuilder"),
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to create team builder: %w", err)
	}

	return &dependencies{auth: authProvider, service: service}, cleanup, nil
}
