package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"

	"posts-lab/auth"
	grpcserver "posts-lab/infrastructure/grpc/server"
	"posts-lab/infrastructure/rest"
	pb "posts-lab/proto/statistics"
	"posts-lab/publishers"
	"posts-lab/repositories"
	"posts-lab/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components in dependency order (repositories,
// publisher, services, servers), manages the server lifecycle and
// centralizes error reporting so deferred cleanup always executes.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.INFO))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Outbound publisher. Reconnect handling belongs to the
	// publisher, one attempt per publish, so paho's automatic retry
	// machinery stays off.
	options := mqtt.NewClientOptions().
		AddBroker(config.MqttBroker).
		SetClientID(config.MqttClientID).
		SetCleanSession(true).
		SetAutoReconnect(false).
		SetConnectRetry(false).
		SetConnectTimeout(config.PublishTimeout).
		SetKeepAlive(20 * time.Second)
	publisher := publishers.NewMqttPostPublisher(
		mqtt.NewClient(options), config.MqttTopic, config.PublishTimeout, log)
	if err := publisher.Connect(); err != nil {
		// Publishing is best-effort, not a startup dependency. The
		// next publish retries the connection.
		log.Warn("Broker unreachable at startup, events will be dropped until it returns",
			"broker", config.MqttBroker, "error", err)
	}
	defer publisher.Close()

	// 4. Repositories & Services
	postRepository := repositories.NewPostRepository(db, log)
	commentRepository := repositories.NewCommentRepository(db, log)
	postService := services.NewPostService(postRepository, commentRepository, publisher, log)
	commentService := services.NewCommentService(postRepository, commentRepository, log)
	statisticsService := services.NewStatisticsService(postRepository, commentRepository)
	tokenValidator := auth.NewTokenValidator(config.JwtSecret)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 2)

	// 6. gRPC Server (statistics read path)
	grpcAddress := fmt.Sprintf("%s:%d", config.GrpcHost, config.GrpcPort)
	listener, err := net.Listen("tcp", grpcAddress)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", grpcAddress, err)
	}

	s := grpc.NewServer()
	pb.RegisterStatisticsServiceServer(s, grpcserver.NewStatisticsServer(statisticsService, log))
	go func() {
		log.Info("Starting gRPC server", "address", grpcAddress)
		if err := s.Serve(listener); err != nil && err != grpc.ErrServerStopped {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 7. HTTP Server (posts & comments CRUD)
	handlers := rest.NewHandlers(postService, commentService, log)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.HTTPHost, config.HTTPPort),
		Handler: rest.NewRouter(handlers, tokenValidator),
	}
	go func() {
		log.Info("Starting HTTP server", "address", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(shutdownCtx)
	s.GracefulStop()
	log.Info("Program stopped cleanly")

	return nil
}
