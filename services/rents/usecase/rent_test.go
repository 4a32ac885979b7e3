package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/services/rents/mocks"
)

func validRent() *models.Rent {
	return &models.Rent{
		UserID:        uuid.New(),
		CarID:         uuid.New(),
		StartingPoint: "Dhaka",
		Destination:   "Sylhet",
	}
}

func TestCreateRent_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRentRepo(ctrl)
	mockGW := mocks.NewMockRentGW(ctrl)
	uc := NewRentUC(&models.Config{}, mockRepo, mockGW)

	rent := validRent()
	mockRepo.EXPECT().CreateRent(gomock.Any(), rent).Return(nil)
	mockGW.EXPECT().PublishRentCreated(gomock.Any(), rent).Return(nil)

	// Act
	created, err := uc.CreateRent(context.Background(), rent)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.RentStatusPending, created.RentStatus)
}

func TestCreateRent_PublishFailureDoesNotFailRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRentRepo(ctrl)
	mockGW := mocks.NewMockRentGW(ctrl)
	uc := NewRentUC(&models.Config{}, mockRepo, mockGW)

	rent := validRent()
	mockRepo.EXPECT().CreateRent(gomock.Any(), rent).Return(nil)
	mockGW.EXPECT().PublishRentCreated(gomock.Any(), rent).Return(errors.New("nats unavailable"))

	_, err := uc.CreateRent(context.Background(), rent)

	assert.NoError(t, err)
}

func TestCreateRent_ForcesPendingStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRentRepo(ctrl)
	mockGW := mocks.NewMockRentGW(ctrl)
	uc := NewRentUC(&models.Config{}, mockRepo, mockGW)

	rent := validRent()
	rent.RentStatus = models.RentStatusCompleted
	mockRepo.EXPECT().CreateRent(gomock.Any(), rent).Return(nil)
	mockGW.EXPECT().PublishRentCreated(gomock.Any(), rent).Return(nil)

	created, err := uc.CreateRent(context.Background(), rent)

	assert.NoError(t, err)
	assert.Equal(t, models.RentStatusPending, created.RentStatus)
}

func TestCreateRent_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRentRepo(ctrl)
	mockGW := mocks.NewMockRentGW(ctrl)
	uc := NewRentUC(&models.Config{}, mockRepo, mockGW)

	rent := &models.Rent{CarID: uuid.New()}

	_, err := uc.CreateRent(context.Background(), rent)

	assert.Error(t, err)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.TypeValidation, appErr.Type)
	assert.Len(t, appErr.Sources, 3)
}

func TestUpdateRent_StatusAdvance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRentRepo(ctrl)
	mockGW := mocks.NewMockRentGW(ctrl)
	uc := NewRentUC(&models.Config{}, mockRepo, mockGW)

	rentID := uuid.New()
	completed := models.RentStatusCompleted
	current := &models.Rent{ID: rentID, RentStatus: models.RentStatusOngoing}
	updated := &models.Rent{ID: rentID, RentStatus: completed}

	mockRepo.EXPECT().GetRentByID(gomock.Any(), rentID).Return(current, nil)
	mockRepo.EXPECT().UpdateRent(gomock.Any(), rentID, gomock.Any()).Return(updated, nil)

	rent, err := uc.UpdateRent(context.Background(), rentID, &models.RentUpdate{RentStatus: &completed})

	assert.NoError(t, err)
	assert.Equal(t, completed, rent.RentStatus)
}

func TestUpdateRent_StatusRegressionRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRentRepo(ctrl)
	mockGW := mocks.NewMockRentGW(ctrl)
	uc := NewRentUC(&models.Config{}, mockRepo, mockGW)

	rentID := uuid.New()
	pending := models.RentStatusPending
	current := &models.Rent{ID: rentID, RentStatus: models.RentStatusOngoing}

	mockRepo.EXPECT().GetRentByID(gomock.Any(), rentID).Return(current, nil)

	_, err := uc.UpdateRent(context.Background(), rentID, &models.RentUpdate{RentStatus: &pending})

	assert.Error(t, err)
	appErr, _ := apperrors.As(err)
	assert.Equal(t, apperrors.TypeConflict, appErr.Type)
}

func TestUpdateRent_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRentRepo(ctrl)
	mockGW := mocks.NewMockRentGW(ctrl)
	uc := NewRentUC(&models.Config{}, mockRepo, mockGW)

	bad := models.RentStatus("cancelled")
	_, err := uc.UpdateRent(context.Background(), uuid.New(), &models.RentUpdate{RentStatus: &bad})

	assert.Error(t, err)
	appErr, _ := apperrors.As(err)
	assert.Equal(t, apperrors.TypeValidation, appErr.Type)
}

func TestListRents_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRentRepo(ctrl)
	mockGW := mocks.NewMockRentGW(ctrl)
	uc := NewRentUC(&models.Config{}, mockRepo, mockGW)

	expected := []*models.Rent{validRent()}
	mockRepo.EXPECT().ListRents(gomock.Any(), gomock.Any()).Return(expected, 1, nil)

	rentList, meta, err := uc.ListRents(context.Background(), models.ListQuery{})

	assert.NoError(t, err)
	assert.Equal(t, expected, rentList)
	assert.Equal(t, 1, meta.Total)
}
