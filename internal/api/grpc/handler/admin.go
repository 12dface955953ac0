package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/dtroode/authgate/api/proto/authgate/v1"
	"github.com/dtroode/authgate/internal/logger"
	"github.com/dtroode/authgate/internal/model"
)

// AdminService defines the administrative account operations.
type AdminService interface {
	ListAccounts(ctx context.Context) ([]model.AccountSummary, error)
	DeleteAccount(ctx context.Context, id uuid.UUID) error
	DeleteAllAccounts(ctx context.Context) error
}

// Admin handles gRPC endpoints for account administration.
type Admin struct {
	pb.UnimplementedAdminServer
	adminService AdminService
	logger       *logger.Logger
}

func NewAdmin(adminService AdminService, logger *logger.Logger) *Admin {
	return &Admin{adminService: adminService, logger: logger}
}

func (h *Admin) ListAccounts(ctx context.Context, _ *emptypb.Empty) (*pb.ListAccountsResponse, error) {
	summaries, err := h.adminService.ListAccounts(ctx)
	if err != nil {
		return nil, handleError(err)
	}

	resp := &pb.ListAccountsResponse{Accounts: make([]*pb.AccountSummary, 0, len(summaries))}
	for _, s := range summaries {
		resp.Accounts = append(resp.Accounts, &pb.AccountSummary{
			Id:                 s.ID.String(),
			Name:               s.Name,
			Email:              s.Email,
			TwoFactorEnabled:   s.TwoFactorEnabled,
			LoginMethod:        string(s.LoginMethod),
			TrustedDeviceCount: int32(s.TrustedDeviceCount),
			CreatedAt:          timestamppb.New(s.CreatedAt),
			UpdatedAt:          timestamppb.New(s.UpdatedAt),
		})
	}
	return resp, nil
}

func (h *Admin) DeleteAccount(ctx context.Context, req *pb.DeleteAccountRequest) (*emptypb.Empty, error) {
	id, err := uuid.Parse(req.GetId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid account id")
	}

	if err := h.adminService.DeleteAccount(ctx, id); err != nil {
		return nil, handleError(err)
	}

	h.logger.InfoContext(ctx, "Admin handler: account deleted",
		"user_id", id)
	return &emptypb.Empty{}, nil
}

func (h *Admin) DeleteAllAccounts(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := h.adminService.DeleteAllAccounts(ctx); err != nil {
		return nil, handleError(err)
	}
	return &emptypb.Empty{}, nil
}
