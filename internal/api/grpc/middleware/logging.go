package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/authgate/internal/logger"
)

// Logging is a unary interceptor that logs gRPC requests and results.
// Request bodies are never logged since they carry passwords and codes.
type Logging struct {
	logger *logger.Logger
	now    func() time.Time
}

// NewLogging creates a new Logging middleware.
func NewLogging(logger *logger.Logger) *Logging {
	return &Logging{logger: logger, now: time.Now}
}

// HandleGRPC logs method name, duration and status for each unary request.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := l.now()

	l.logger.DebugContext(ctx, "gRPC request started",
		"method", info.FullMethod)

	resp, err := handler(ctx, req)

	duration := l.now().Sub(start)

	statusCode := codes.OK
	if err != nil {
		if st, ok := status.FromError(err); ok {
			statusCode = st.Code()
		} else {
			statusCode = codes.Internal
		}
	}

	l.logger.InfoContext(ctx, "gRPC request completed",
		"method", info.FullMethod,
		"duration_ms", duration.Milliseconds(),
		"status", statusCode.String())

	if statusCode == codes.Internal || statusCode == codes.Unknown {
		l.logger.ErrorContext(ctx, "gRPC request failed",
			"method", info.FullMethod,
			"error", err.Error(),
			"status", statusCode.String())
	}

	return resp, err
}

// Recover turns a handler panic into an Internal status.
func (l *Logging) Recover(ctx context.Context, p any) error {
	l.logger.ErrorContext(ctx, "gRPC handler panicked",
		"panic", p)
	return status.Error(codes.Internal, "internal server error")
}
