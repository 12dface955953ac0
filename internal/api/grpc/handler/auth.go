package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dtroode/authgate/api/proto/authgate/v1"
	"github.com/dtroode/authgate/internal/logger"
	"github.com/dtroode/authgate/internal/model"
)

const (
	deviceTokenHeader = "x-device-token"
	userAgentHeader   = "user-agent"
)

// AuthService defines the authentication flows.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.Profile, error)
	Login(ctx context.Context, params model.LoginParams) (model.LoginResult, error)
	VerifyOTP(ctx context.Context, params model.VerifyOTPParams) (model.VerifyOTPResult, error)
	ResendOTP(ctx context.Context, userID uuid.UUID) error
	EnableTwoFactor(ctx context.Context, userID uuid.UUID, password string) error
	ConfirmEnableTwoFactor(ctx context.Context, userID uuid.UUID, code string) error
	DisableTwoFactor(ctx context.Context, userID uuid.UUID, password string) error
	GoogleLogin(ctx context.Context, params model.GoogleLoginParams) (model.GoogleLoginResult, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, params model.ResetPasswordParams) error
	GetSettings(ctx context.Context, userID uuid.UUID) (model.Settings, error)
}

// Auth handles gRPC endpoints for authentication.
type Auth struct {
	pb.UnimplementedAuthServer
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *Auth) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	h.logger.DebugContext(ctx, "Auth handler: processing register request",
		"name", req.Name,
		"email", req.Email)

	profile, err := h.authService.Register(ctx, model.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.logger.InfoContext(ctx, "Auth handler: register failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	return &pb.RegisterResponse{User: toUser(profile)}, nil
}

// Login takes the device token from the request or from the
// x-device-token header.
func (h *Auth) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	deviceToken := req.DeviceToken
	if deviceToken == "" {
		deviceToken = firstHeader(ctx, deviceTokenHeader)
	}

	result, err := h.authService.Login(ctx, model.LoginParams{
		Identifier:  req.Identifier,
		Password:    req.Password,
		DeviceToken: deviceToken,
	})
	if err != nil {
		h.logger.InfoContext(ctx, "Auth handler: login failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	if result.Session != nil {
		return &pb.LoginResponse{Session: toSession(*result.Session)}, nil
	}
	return &pb.LoginResponse{RequireOtp: true, UserId: result.UserID.String()}, nil
}

// VerifyOTP takes the device descriptor from the request or from the
// user-agent header.
func (h *Auth) VerifyOTP(ctx context.Context, req *pb.VerifyOTPRequest) (*pb.VerifyOTPResponse, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}

	descriptor := req.DeviceDescriptor
	if descriptor == "" && req.RememberDevice {
		descriptor = firstHeader(ctx, userAgentHeader)
	}

	result, err := h.authService.VerifyOTP(ctx, model.VerifyOTPParams{
		UserID:           userID,
		Code:             req.Code,
		RememberDevice:   req.RememberDevice,
		DeviceDescriptor: descriptor,
	})
	if err != nil {
		h.logger.InfoContext(ctx, "Auth handler: verify otp failed",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	resp := &pb.VerifyOTPResponse{Session: toSession(result.Session)}
	if result.DeviceToken != "" {
		resp.DeviceToken = result.DeviceToken
		resp.DeviceTokenMaxAge = int64(result.DeviceTokenMaxAge.Seconds())
	}
	return resp, nil
}

func (h *Auth) ResendOTP(ctx context.Context, req *pb.ResendOTPRequest) (*emptypb.Empty, error) {
	userID, err := parseUserID(req.GetUserId())
	if err != nil {
		return nil, err
	}

	if err := h.authService.ResendOTP(ctx, userID); err != nil {
		h.logger.InfoContext(ctx, "Auth handler: resend otp failed",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *Auth) EnableTwoFactor(ctx context.Context, req *pb.EnableTwoFactorRequest) (*pb.EnableTwoFactorResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.authService.EnableTwoFactor(ctx, userID, req.Password); err != nil {
		return nil, handleError(err)
	}
	return &pb.EnableTwoFactorResponse{RequireOtp: true}, nil
}

func (h *Auth) ConfirmEnableTwoFactor(ctx context.Context, req *pb.ConfirmEnableTwoFactorRequest) (*pb.TwoFactorStatus, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.authService.ConfirmEnableTwoFactor(ctx, userID, req.Code); err != nil {
		return nil, handleError(err)
	}
	return &pb.TwoFactorStatus{Enabled: true}, nil
}

func (h *Auth) DisableTwoFactor(ctx context.Context, req *pb.DisableTwoFactorRequest) (*pb.TwoFactorStatus, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.authService.DisableTwoFactor(ctx, userID, req.Password); err != nil {
		return nil, handleError(err)
	}
	return &pb.TwoFactorStatus{Enabled: false}, nil
}

func (h *Auth) GoogleLogin(ctx context.Context, req *pb.GoogleLoginRequest) (*pb.GoogleLoginResponse, error) {
	result, err := h.authService.GoogleLogin(ctx, model.GoogleLoginParams{
		IDToken:  req.GetIdToken(),
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		h.logger.InfoContext(ctx, "Auth handler: google login failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	resp := &pb.GoogleLoginResponse{
		NeedsProfile: result.NeedsProfile,
		Email:        result.Email,
		ExternalId:   result.ExternalID,
	}
	if result.Session != nil {
		resp.Session = toSession(*result.Session)
	}
	return resp, nil
}

func (h *Auth) ForgotPassword(ctx context.Context, req *pb.ForgotPasswordRequest) (*emptypb.Empty, error) {
	if err := h.authService.ForgotPassword(ctx, req.Email); err != nil {
		return nil, handleError(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *Auth) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*emptypb.Empty, error) {
	err := h.authService.ResetPassword(ctx, model.ResetPasswordParams{
		Email:       req.Email,
		Code:        req.Code,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return nil, handleResetError(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *Auth) GetSettings(ctx context.Context, _ *emptypb.Empty) (*pb.SettingsResponse, error) {
	userID, err := h.userID(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := h.authService.GetSettings(ctx, userID)
	if err != nil {
		return nil, handleError(err)
	}

	return &pb.SettingsResponse{
		TwoFactorEnabled: settings.TwoFactorEnabled,
		Email:            settings.Email,
		Name:             settings.Name,
		LoginMethod:      string(settings.LoginMethod),
	}, nil
}

func (h *Auth) userID(ctx context.Context) (uuid.UUID, error) {
	userID, ok := h.contextManager.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "missing session")
	}
	return userID, nil
}

func parseUserID(raw string) (uuid.UUID, error) {
	userID, err := uuid.Parse(raw)
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "invalid user id")
	}
	return userID, nil
}

func firstHeader(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

func toUser(p model.Profile) *pb.User {
	return &pb.User{Id: p.ID.String(), Name: p.Name, Email: p.Email}
}

func toSession(s model.Session) *pb.Session {
	return &pb.Session{
		Token:     s.Token,
		ExpiresAt: timestamppb.New(s.ExpiresAt),
		User:      toUser(s.Profile),
	}
}
