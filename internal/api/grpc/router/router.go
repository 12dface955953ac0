package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	pb "github.com/dtroode/authgate/api/proto/authgate/v1"
	"github.com/dtroode/authgate/internal/api/grpc/handler"
	"github.com/dtroode/authgate/internal/api/grpc/middleware"
	"github.com/dtroode/authgate/internal/logger"
	"github.com/dtroode/authgate/internal/model"
)

// sessionMethods require a bearer session token.
var sessionMethods = map[string]struct{}{
	pb.Auth_EnableTwoFactor_FullMethodName:        {},
	pb.Auth_ConfirmEnableTwoFactor_FullMethodName: {},
	pb.Auth_DisableTwoFactor_FullMethodName:       {},
	pb.Auth_GetSettings_FullMethodName:            {},
}

// Router represents a gRPC router for authgate operations.
// It manages gRPC service registration and middleware configuration.
type Router struct {
	authService    handler.AuthService
	adminService   handler.AdminService
	tokenService   middleware.TokenService
	contextManager model.ContextManager
	adminKey       string
	logger         *logger.Logger
}

// New creates new gRPC Router instance. An empty adminKey disables the
// Admin service.
func New(
	authService handler.AuthService,
	adminService handler.AdminService,
	tokenService middleware.TokenService,
	contextManager model.ContextManager,
	adminKey string,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		adminService:   adminService,
		tokenService:   tokenService,
		contextManager: contextManager,
		adminKey:       adminKey,
		logger:         logger,
	}
}

func sessionRequired(_ context.Context, c interceptors.CallMeta) bool {
	_, ok := sessionMethods[c.FullMethod()]
	return ok
}

func adminRequired(_ context.Context, c interceptors.CallMeta) bool {
	return strings.HasPrefix(c.FullMethod(), "/"+pb.Admin_ServiceDesc.ServiceName+"/")
}

// Register builds a gRPC server with tracing, panic recovery, request
// logging and authentication interceptors, and registers all services.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)
	adminKey := middleware.NewAdminKey(r.adminKey, r.logger)

	opts = append([]grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(logging.Recover)),
			logging.HandleGRPC,
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(authenticate.AuthFunc),
				selector.MatchFunc(sessionRequired),
			),
			selector.UnaryServerInterceptor(
				auth.UnaryServerInterceptor(adminKey.AuthFunc),
				selector.MatchFunc(adminRequired),
			),
		),
	}, opts...)

	s := grpc.NewServer(opts...)
	r.registerAuthRoutes(s)
	r.registerAdminRoutes(s)
	r.registerHealth(s)

	return s
}

func (r *Router) registerAuthRoutes(server *grpc.Server) {
	authHandler := handler.NewAuth(r.authService, r.contextManager, r.logger)
	pb.RegisterAuthServer(server, authHandler)
}

func (r *Router) registerAdminRoutes(server *grpc.Server) {
	adminHandler := handler.NewAdmin(r.adminService, r.logger)
	pb.RegisterAdminServer(server, adminHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	hs := health.NewServer()
	hs.SetServingStatus(pb.Auth_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(pb.Admin_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, hs)
}
