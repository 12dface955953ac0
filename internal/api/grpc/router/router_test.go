package router

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection"
	reflectionpb "google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/dtroode/authgate/api/proto/authgate/v1"
	grpcctx "github.com/dtroode/authgate/internal/api/grpc/context"
	"github.com/dtroode/authgate/internal/device"
	"github.com/dtroode/authgate/internal/mocks"
	"github.com/dtroode/authgate/internal/otp"
	"github.com/dtroode/authgate/internal/policy"
	"github.com/dtroode/authgate/internal/repository/memory"
	"github.com/dtroode/authgate/internal/secret"
	"github.com/dtroode/authgate/internal/service"
	"github.com/dtroode/authgate/internal/testutil"
	"github.com/dtroode/authgate/internal/token"
)

const testAdminKey = "admin-key"

func TestRouter_Register(t *testing.T) {
	t.Parallel()

	ctxMgr := mocks.NewContextManager(t)
	lg := testutil.MakeNoopLogger()

	r := New(nil, nil, nil, ctxMgr, "", lg)
	s := r.Register()
	require.NotNil(t, s)

	info := s.GetServiceInfo()
	assert.Contains(t, info, pb.Auth_ServiceDesc.ServiceName)
	assert.Contains(t, info, pb.Admin_ServiceDesc.ServiceName)
	assert.Contains(t, info, "grpc.health.v1.Health")
}

func TestSelectors(t *testing.T) {
	t.Parallel()

	assert.True(t, sessionRequired(context.Background(), callMeta(pb.Auth_GetSettings_FullMethodName)))
	assert.True(t, sessionRequired(context.Background(), callMeta(pb.Auth_DisableTwoFactor_FullMethodName)))
	assert.False(t, sessionRequired(context.Background(), callMeta(pb.Auth_Login_FullMethodName)))
	assert.False(t, sessionRequired(context.Background(), callMeta(pb.Auth_ResetPassword_FullMethodName)))

	assert.True(t, adminRequired(context.Background(), callMeta(pb.Admin_DeleteAllAccounts_FullMethodName)))
	assert.False(t, adminRequired(context.Background(), callMeta(pb.Auth_Register_FullMethodName)))
}

func callMeta(fullMethod string) interceptors.CallMeta {
	return interceptors.NewServerCallMeta(fullMethod, nil, nil)
}

// codeBox records the last code mailed to each address.
type codeBox struct {
	mu    sync.Mutex
	codes map[string]string
}

func (b *codeBox) SendCode(_ context.Context, email, code string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.codes[email] = code
	return nil
}

func (b *codeBox) SendResetCode(ctx context.Context, email, code string) error {
	return b.SendCode(ctx, email, code)
}

func (b *codeBox) last(email string) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.codes[email]
}

type stack struct {
	conn   *grpc.ClientConn
	auth   pb.AuthClient
	admin  pb.AdminClient
	health healthpb.HealthClient
	box    *codeBox
}

func startStack(t *testing.T) *stack {
	t.Helper()

	lg := testutil.MakeNoopLogger()
	store := memory.NewAccountRepository()
	hasher := secret.NewBcrypt(bcrypt.MinCost)
	box := &codeBox{codes: make(map[string]string)}
	tokens := service.NewTokenService(token.NewJWT("test-secret"), lg)

	authService := service.NewAuth(
		store,
		hasher,
		otp.NewEngine(hasher),
		device.NewManager(store, time.Now),
		tokens,
		box,
		nil,
		policy.New(nil),
		lg,
	)

	r := New(authService, service.NewAdmin(store, lg), tokens, grpcctx.NewManager(), testAdminKey, lg)
	srv := r.Register()
	reflection.Register(srv)

	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &stack{
		conn:   conn,
		auth:   pb.NewAuthClient(conn),
		admin:  pb.NewAdminClient(conn),
		health: healthpb.NewHealthClient(conn),
		box:    box,
	}
}

func bearer(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func TestEndToEnd_TwoFactorFlow(t *testing.T) {
	t.Parallel()

	s := startStack(t)
	ctx := context.Background()

	registered, err := s.auth.Register(ctx, &pb.RegisterRequest{Name: "alice", Email: "alice@gmail.com", Password: "Passw0rd!"})
	require.NoError(t, err)
	assert.Equal(t, "alice", registered.GetUser().GetName())

	_, err = s.auth.Register(ctx, &pb.RegisterRequest{Name: "alice", Email: "other@gmail.com", Password: "Passw0rd!"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	challenge, err := s.auth.Login(ctx, &pb.LoginRequest{Identifier: "alice", Password: "Passw0rd!"})
	require.NoError(t, err)
	assert.True(t, challenge.GetRequireOtp())
	assert.Nil(t, challenge.GetSession())
	assert.Equal(t, registered.GetUser().GetId(), challenge.GetUserId())

	// Codes are six digits from 100000, so this one never matches.
	_, err = s.auth.VerifyOTP(ctx, &pb.VerifyOTPRequest{UserId: challenge.GetUserId(), Code: "000000"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = s.auth.ResendOTP(ctx, &pb.ResendOTPRequest{UserId: challenge.GetUserId()})
	require.NoError(t, err)

	verified, err := s.auth.VerifyOTP(ctx, &pb.VerifyOTPRequest{
		UserId:         challenge.GetUserId(),
		Code:           s.box.last("alice@gmail.com"),
		RememberDevice: true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, verified.GetDeviceToken())
	assert.Equal(t, int64(30*24*60*60), verified.GetDeviceTokenMaxAge())
	assert.True(t, verified.GetSession().GetExpiresAt().AsTime().After(time.Now()))
	sessionToken := verified.GetSession().GetToken()

	_, err = s.auth.GetSettings(ctx, &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = s.auth.EnableTwoFactor(bearer(ctx, sessionToken), &pb.EnableTwoFactorRequest{Password: "Passw0rd!"})
	require.NoError(t, err)
	confirmed, err := s.auth.ConfirmEnableTwoFactor(bearer(ctx, sessionToken), &pb.ConfirmEnableTwoFactorRequest{Code: s.box.last("alice@gmail.com")})
	require.NoError(t, err)
	assert.True(t, confirmed.GetEnabled())

	settings, err := s.auth.GetSettings(bearer(ctx, sessionToken), &emptypb.Empty{})
	require.NoError(t, err)
	assert.True(t, settings.GetTwoFactorEnabled())
	assert.Equal(t, "manual", settings.GetLoginMethod())

	withDevice := metadata.AppendToOutgoingContext(ctx, "x-device-token", verified.GetDeviceToken())
	trusted, err := s.auth.Login(withDevice, &pb.LoginRequest{Identifier: "alice", Password: "Passw0rd!"})
	require.NoError(t, err)
	require.NotNil(t, trusted.GetSession())
	assert.False(t, trusted.GetRequireOtp())
}

func TestEndToEnd_PasswordReset(t *testing.T) {
	t.Parallel()

	s := startStack(t)
	ctx := context.Background()

	_, err := s.auth.Register(ctx, &pb.RegisterRequest{Name: "bob", Email: "bob@gmail.com", Password: "Passw0rd!"})
	require.NoError(t, err)

	_, err = s.auth.ForgotPassword(ctx, &pb.ForgotPasswordRequest{Email: "ghost@gmail.com"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = s.auth.ForgotPassword(ctx, &pb.ForgotPasswordRequest{Email: "bob@gmail.com"})
	require.NoError(t, err)

	_, err = s.auth.ResetPassword(ctx, &pb.ResetPasswordRequest{Email: "bob@gmail.com", Code: s.box.last("bob@gmail.com"), NewPassword: "weak"})
	st, _ := status.FromError(err)
	require.Equal(t, codes.InvalidArgument, st.Code())
	assert.NotEmpty(t, st.Details())

	_, err = s.auth.ResetPassword(ctx, &pb.ResetPasswordRequest{Email: "bob@gmail.com", Code: s.box.last("bob@gmail.com"), NewPassword: "N3wPassw0rd!"})
	require.NoError(t, err)

	_, err = s.auth.Login(ctx, &pb.LoginRequest{Identifier: "bob", Password: "Passw0rd!"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	login, err := s.auth.Login(ctx, &pb.LoginRequest{Identifier: "bob", Password: "N3wPassw0rd!"})
	require.NoError(t, err)
	assert.True(t, login.GetRequireOtp())
}

func TestEndToEnd_AdminAndHealth(t *testing.T) {
	t.Parallel()

	s := startStack(t)
	ctx := context.Background()
	adminCtx := metadata.AppendToOutgoingContext(ctx, "x-admin-key", testAdminKey)

	health, err := s.health.Check(ctx, &healthpb.HealthCheckRequest{Service: pb.Auth_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.GetStatus())

	created, err := s.auth.Register(ctx, &pb.RegisterRequest{Name: "carol", Email: "carol@yahoo.com", Password: "Passw0rd!"})
	require.NoError(t, err)

	_, err = s.admin.ListAccounts(ctx, &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	wrongKey := metadata.AppendToOutgoingContext(ctx, "x-admin-key", "nope")
	_, err = s.admin.ListAccounts(wrongKey, &emptypb.Empty{})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	list, err := s.admin.ListAccounts(adminCtx, &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, list.GetAccounts(), 1)
	assert.Equal(t, created.GetUser().GetId(), list.GetAccounts()[0].GetId())

	_, err = s.admin.DeleteAccount(adminCtx, &pb.DeleteAccountRequest{Id: uuid.NewString()})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = s.admin.DeleteAccount(adminCtx, &pb.DeleteAccountRequest{Id: created.GetUser().GetId()})
	require.NoError(t, err)

	_, err = s.admin.DeleteAllAccounts(adminCtx, &emptypb.Empty{})
	require.NoError(t, err)

	list, err = s.admin.ListAccounts(adminCtx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Empty(t, list.GetAccounts())
}

func TestReflection_DescribesServices(t *testing.T) {
	t.Parallel()

	s := startStack(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := reflectionpb.NewServerReflectionClient(s.conn).ServerReflectionInfo(ctx)
	require.NoError(t, err)
	defer func() { _ = stream.CloseSend() }()

	tests := []struct {
		symbol  string
		file    string
		methods []string
	}{
		{
			symbol:  pb.Auth_ServiceDesc.ServiceName,
			file:    "authgate/v1/auth.proto",
			methods: []string{"Register", "Login", "VerifyOTP", "ResendOTP", "EnableTwoFactor", "ConfirmEnableTwoFactor", "DisableTwoFactor", "GoogleLogin", "ForgotPassword", "ResetPassword", "GetSettings"},
		},
		{
			symbol:  pb.Admin_ServiceDesc.ServiceName,
			file:    "authgate/v1/admin.proto",
			methods: []string{"ListAccounts", "DeleteAccount", "DeleteAllAccounts"},
		},
	}

	for _, tt := range tests {
		err := stream.Send(&reflectionpb.ServerReflectionRequest{
			MessageRequest: &reflectionpb.ServerReflectionRequest_FileContainingSymbol{FileContainingSymbol: tt.symbol},
		})
		require.NoError(t, err)

		resp, err := stream.Recv()
		require.NoError(t, err)
		require.Nil(t, resp.GetErrorResponse(), tt.symbol)

		var file *descriptorpb.FileDescriptorProto
		for _, raw := range resp.GetFileDescriptorResponse().GetFileDescriptorProto() {
			fd := &descriptorpb.FileDescriptorProto{}
			require.NoError(t, proto.Unmarshal(raw, fd))
			if fd.GetName() == tt.file {
				file = fd
			}
		}
		require.NotNil(t, file, tt.symbol)
		require.Len(t, file.GetService(), 1)

		var methods []string
		for _, m := range file.GetService()[0].GetMethod() {
			methods = append(methods, m.GetName())
		}
		assert.Equal(t, tt.methods, methods)
	}
}

func TestDescriptors_MatchGeneratedCode(t *testing.T) {
	t.Parallel()

	for _, fd := range []*descriptorpb.FileDescriptorProto{
		protodesc.ToFileDescriptorProto(pb.File_authgate_v1_auth_proto),
		protodesc.ToFileDescriptorProto(pb.File_authgate_v1_admin_proto),
	} {
		assert.Equal(t, "authgate.v1", fd.GetPackage())
		assert.Equal(t, "proto3", fd.GetSyntax())
	}

	assert.Equal(t, pb.Auth_ServiceDesc.ServiceName, string(pb.File_authgate_v1_auth_proto.Services().Get(0).FullName()))
	assert.Equal(t, pb.Admin_ServiceDesc.ServiceName, string(pb.File_authgate_v1_admin_proto.Services().Get(0).FullName()))
	assert.Equal(t, len(pb.Auth_ServiceDesc.Methods), pb.File_authgate_v1_auth_proto.Services().Get(0).Methods().Len())
}

func TestDefaultCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	s := startStack(t)
	ctx := context.Background()

	// Invoke bypasses the generated client and relies on grpc's default codec.
	out := &pb.RegisterResponse{}
	err := s.conn.Invoke(ctx, pb.Auth_Register_FullMethodName,
		&pb.RegisterRequest{Name: "dave", Email: "dave@gmail.com", Password: "Passw0rd!"}, out)
	require.NoError(t, err)
	assert.Equal(t, "dave", out.GetUser().GetName())
	_, err = uuid.Parse(out.GetUser().GetId())
	assert.NoError(t, err)
}
