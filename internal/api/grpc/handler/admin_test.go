package handler

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	pb "github.com/dtroode/authgate/api/proto/authgate/v1"
	"github.com/dtroode/authgate/internal/mocks"
	"github.com/dtroode/authgate/internal/model"
	"github.com/dtroode/authgate/internal/testutil"
)

func TestAdmin(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAdminService(t)
	h := NewAdmin(svc, testutil.MakeNoopLogger())
	id := uuid.New()

	svc.On("ListAccounts", mock.Anything).Return([]model.AccountSummary{
		{ID: id, Name: "alice", Email: "alice@gmail.com", LoginMethod: model.LoginMethodManual, TrustedDeviceCount: 2},
	}, nil).Once()
	svc.On("DeleteAccount", mock.Anything, id).Return(nil).Once()
	svc.On("DeleteAccount", mock.Anything, mock.Anything).Return(model.ErrNotFound).Once()
	svc.On("DeleteAllAccounts", mock.Anything).Return(nil).Once()

	list, err := h.ListAccounts(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
	require.Len(t, list.Accounts, 1)
	assert.Equal(t, id.String(), list.Accounts[0].GetId())
	assert.Equal(t, int32(2), list.Accounts[0].GetTrustedDeviceCount())
	assert.Equal(t, "manual", list.Accounts[0].GetLoginMethod())

	_, err = h.DeleteAccount(context.Background(), &pb.DeleteAccountRequest{Id: id.String()})
	require.NoError(t, err)

	_, err = h.DeleteAccount(context.Background(), &pb.DeleteAccountRequest{Id: uuid.NewString()})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = h.DeleteAccount(context.Background(), &pb.DeleteAccountRequest{Id: "bad"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = h.DeleteAllAccounts(context.Background(), &emptypb.Empty{})
	require.NoError(t, err)
}
