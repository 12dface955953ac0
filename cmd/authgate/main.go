package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc/reflection"

	grpcctx "github.com/dtroode/authgate/internal/api/grpc/context"
	"github.com/dtroode/authgate/internal/api/grpc/router"
	grpcServer "github.com/dtroode/authgate/internal/api/grpc/server"
	"github.com/dtroode/authgate/internal/config"
	"github.com/dtroode/authgate/internal/device"
	"github.com/dtroode/authgate/internal/identity/google"
	"github.com/dtroode/authgate/internal/logger"
	"github.com/dtroode/authgate/internal/model"
	"github.com/dtroode/authgate/internal/notify"
	"github.com/dtroode/authgate/internal/otp"
	"github.com/dtroode/authgate/internal/policy"
	"github.com/dtroode/authgate/internal/repository/memory"
	"github.com/dtroode/authgate/internal/repository/postgres"
	"github.com/dtroode/authgate/internal/secret"
	"github.com/dtroode/authgate/internal/server"
	"github.com/dtroode/authgate/internal/service"
	"github.com/dtroode/authgate/internal/telemetry"
	"github.com/dtroode/authgate/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	shutdownTracing, err := telemetry.Setup(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		logger.Fatal("failed to initialize tracing", "error", err)
	}

	accounts, closeStore, err := openAccountStore(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer closeStore.Close()

	notifier, err := newNotifier(cfg.Mail, logger)
	if err != nil {
		logger.Fatal("failed to initialize notifier", "error", err)
	}

	hasher := secret.NewBcrypt(cfg.Security.BcryptCost)
	tokenManager := token.NewJWT(cfg.JWT.Secret)
	tokenService := service.NewTokenService(tokenManager, logger)

	authService := service.NewAuth(
		accounts,
		hasher,
		otp.NewEngine(hasher),
		device.NewManager(accounts, time.Now),
		tokenService,
		notifier,
		newIdentityProvider(cfg.Google, logger),
		policy.New(cfg.Security.AllowedEmailDomains),
		logger,
	)
	adminService := service.NewAdmin(accounts, logger)
	ctxMgr := grpcctx.NewManager()

	if cfg.Admin.APIKey == "" {
		logger.Warn("ADMIN_API_KEY is not set, administrative methods are disabled")
	}

	grpcServer := registerGRPCServer(logger, authService, adminService, tokenService, ctxMgr, cfg.Admin.APIKey, fmt.Sprintf(":%s", cfg.GRPC.Port))

	var sl model.SecurityLayer

	if cfg.GRPC.EnableHTTPS {
		sl = server.NewTLSListener(cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("failed to flush traces", "error", err)
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func openAccountStore(ctx context.Context, cfg config.Database) (model.AccountStore, io.Closer, error) {
	if cfg.Driver == "memory" {
		return memory.NewAccountRepository(), nopCloser{}, nil
	}

	conn, err := postgres.NewConnection(ctx, cfg.DSN)
	if err != nil {
		return nil, nil, err
	}
	return postgres.NewAccountRepository(conn.DB), conn, nil
}

func newNotifier(cfg config.Mail, logger *logger.Logger) (model.Notifier, error) {
	if !cfg.Enabled {
		logger.Warn("mail delivery is disabled, codes are written to the log")
		return notify.NewLog(logger), nil
	}

	return notify.NewSMTP(notify.SMTPConfig{
		Host:     cfg.Host,
		Port:     cfg.Port,
		Username: cfg.Username,
		Password: cfg.Password,
		From:     cfg.From,
	})
}

// newIdentityProvider returns nil when no client id is configured, which
// makes federated login fail with a provider error.
func newIdentityProvider(cfg config.Google, logger *logger.Logger) model.IdentityProvider {
	if cfg.ClientID == "" {
		logger.Warn("GOOGLE_CLIENT_ID is not set, Google login is disabled")
		return nil
	}
	return google.NewVerifier(cfg.ClientID)
}

func registerGRPCServer(
	logger *logger.Logger,
	authService *service.Auth,
	adminService *service.Admin,
	tokenService *service.TokenService,
	ctxMgr model.ContextManager,
	adminKey string,
	addr string,
) *grpcServer.GRPCServer {
	r := router.New(authService, adminService, tokenService, ctxMgr, adminKey, logger)
	s := r.Register()

	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, addr)
}
