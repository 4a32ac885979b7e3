package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/services/bids/mocks"
)

func validBid() *models.Bid {
	return &models.Bid{
		RentID:         uuid.New(),
		DriverID:       uuid.New(),
		BidAmount:      2500,
		DriverLocation: "Banani",
	}
}

func TestCreateBid_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBidRepo(ctrl)
	mockGW := mocks.NewMockBidGW(ctrl)
	uc := NewBidUC(&models.Config{}, mockRepo, mockGW)

	bid := validBid()
	mockRepo.EXPECT().RentBidState(gomock.Any(), bid.RentID).Return(models.RentStatusPending, false, nil)
	mockRepo.EXPECT().CreateBid(gomock.Any(), bid).Return(nil)

	// Act
	created, err := uc.CreateBid(context.Background(), bid)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.BidStatusPending, created.BidStatus)
}

func TestCreateBid_RentNotPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBidRepo(ctrl)
	mockGW := mocks.NewMockBidGW(ctrl)
	uc := NewBidUC(&models.Config{}, mockRepo, mockGW)

	bid := validBid()
	mockRepo.EXPECT().RentBidState(gomock.Any(), bid.RentID).Return(models.RentStatusOngoing, true, nil)

	_, err := uc.CreateBid(context.Background(), bid)

	assert.Error(t, err)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.TypeConflict, appErr.Type)
}

func TestCreateBid_SiblingAlreadyAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBidRepo(ctrl)
	mockGW := mocks.NewMockBidGW(ctrl)
	uc := NewBidUC(&models.Config{}, mockRepo, mockGW)

	bid := validBid()
	mockRepo.EXPECT().RentBidState(gomock.Any(), bid.RentID).Return(models.RentStatusPending, true, nil)

	_, err := uc.CreateBid(context.Background(), bid)

	assert.Error(t, err)
	appErr, _ := apperrors.As(err)
	assert.Equal(t, apperrors.TypeConflict, appErr.Type)
}

func TestCreateBid_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBidRepo(ctrl)
	mockGW := mocks.NewMockBidGW(ctrl)
	uc := NewBidUC(&models.Config{}, mockRepo, mockGW)

	_, err := uc.CreateBid(context.Background(), &models.Bid{RentID: uuid.New()})

	assert.Error(t, err)
	appErr, _ := apperrors.As(err)
	assert.Equal(t, apperrors.TypeValidation, appErr.Type)
	assert.Len(t, appErr.Sources, 3)
}

func TestUpdateBid_AcceptedRoutesThroughAcceptBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBidRepo(ctrl)
	mockGW := mocks.NewMockBidGW(ctrl)
	uc := NewBidUC(&models.Config{}, mockRepo, mockGW)

	bidID := uuid.New()
	acceptedBid := &models.Bid{ID: bidID, RentID: uuid.New(), BidStatus: models.BidStatusAccepted}
	mockRepo.EXPECT().AcceptBid(gomock.Any(), bidID).Return(acceptedBid, nil)
	mockGW.EXPECT().PublishBidAccepted(gomock.Any(), acceptedBid).Return(nil)

	accepted := models.BidStatusAccepted
	bid, err := uc.UpdateBid(context.Background(), bidID, &models.BidUpdate{BidStatus: &accepted})

	require.NoError(t, err)
	assert.Equal(t, models.BidStatusAccepted, bid.BidStatus)
}

func TestUpdateBid_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBidRepo(ctrl)
	mockGW := mocks.NewMockBidGW(ctrl)
	uc := NewBidUC(&models.Config{}, mockRepo, mockGW)

	pending := models.BidStatusPending
	_, err := uc.UpdateBid(context.Background(), uuid.New(), &models.BidUpdate{BidStatus: &pending})

	assert.Error(t, err)
	appErr, _ := apperrors.As(err)
	assert.Equal(t, apperrors.TypeValidation, appErr.Type)
}

func TestAcceptBid_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBidRepo(ctrl)
	mockGW := mocks.NewMockBidGW(ctrl)
	uc := NewBidUC(&models.Config{}, mockRepo, mockGW)

	bidID := uuid.New()
	accepted := &models.Bid{
		ID:        bidID,
		RentID:    uuid.New(),
		DriverID:  uuid.New(),
		BidAmount: 2500,
		BidStatus: models.BidStatusAccepted,
	}

	mockRepo.EXPECT().AcceptBid(gomock.Any(), bidID).Return(accepted, nil)
	mockGW.EXPECT().PublishBidAccepted(gomock.Any(), accepted).Return(nil)

	bid, err := uc.AcceptBid(context.Background(), bidID)

	assert.NoError(t, err)
	assert.Equal(t, models.BidStatusAccepted, bid.BidStatus)
}

func TestAcceptBid_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBidRepo(ctrl)
	mockGW := mocks.NewMockBidGW(ctrl)
	uc := NewBidUC(&models.Config{}, mockRepo, mockGW)

	bidID := uuid.New()
	mockRepo.EXPECT().AcceptBid(gomock.Any(), bidID).
		Return(nil, apperrors.NewConflict("another bid has already been accepted for this rent"))

	_, err := uc.AcceptBid(context.Background(), bidID)

	assert.Error(t, err)
	appErr, _ := apperrors.As(err)
	assert.Equal(t, apperrors.TypeConflict, appErr.Type)
}

func TestAcceptBid_PublishFailureDoesNotFailAccept(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockBidRepo(ctrl)
	mockGW := mocks.NewMockBidGW(ctrl)
	uc := NewBidUC(&models.Config{}, mockRepo, mockGW)

	bidID := uuid.New()
	accepted := &models.Bid{ID: bidID, BidStatus: models.BidStatusAccepted}

	mockRepo.EXPECT().AcceptBid(gomock.Any(), bidID).Return(accepted, nil)
	mockGW.EXPECT().PublishBidAccepted(gomock.Any(), accepted).Return(errors.New("nats unavailable"))

	bid, err := uc.AcceptBid(context.Background(), bidID)

	assert.NoError(t, err)
	assert.Equal(t, accepted, bid)
}
