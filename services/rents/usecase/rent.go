package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/logger"
	"github.com/rentride/rentride/internal/pkg/models"
)

// CreateRent validates and stores a new rental request. The rent enters the
// marketplace as pending and a rent.created event is published for bidders.
func (uc *RentUC) CreateRent(ctx context.Context, rent *models.Rent) (*models.Rent, error) {
	if err := validateRent(rent); err != nil {
		return nil, err
	}
	rent.RentStatus = models.RentStatusPending

	if err := uc.rentRepo.CreateRent(ctx, rent); err != nil {
		return nil, err
	}

	if err := uc.rentGW.PublishRentCreated(ctx, rent); err != nil {
		// The rent is already persisted; a failed publish must not fail the request.
		logger.Warn("failed to publish rent created event",
			logger.ErrorField(err),
			logger.String("rent_id", rent.ID.String()))
	}

	logger.Info("rent created",
		logger.String("rent_id", rent.ID.String()),
		logger.String("user_id", rent.UserID.String()),
		logger.String("car_id", rent.CarID.String()))

	return rent, nil
}

// GetRentByID returns a rent with its owner, car and bids eager-loaded
func (uc *RentUC) GetRentByID(ctx context.Context, id uuid.UUID) (*models.Rent, error) {
	return uc.rentRepo.GetRentByID(ctx, id)
}

// ListRents returns a filtered, paginated page of rental requests
func (uc *RentUC) ListRents(ctx context.Context, q models.ListQuery) ([]*models.Rent, models.Meta, error) {
	q.Normalize()

	rentList, total, err := uc.rentRepo.ListRents(ctx, q)
	if err != nil {
		return nil, models.Meta{}, err
	}

	return rentList, models.NewMeta(q, total), nil
}

// UpdateRent applies a partial update to a rent. The lifecycle status may
// only move forward: pending -> ongoing -> completed.
func (uc *RentUC) UpdateRent(ctx context.Context, id uuid.UUID, upd *models.RentUpdate) (*models.Rent, error) {
	if upd == nil {
		return nil, apperrors.NewValidation("no fields to update")
	}

	if upd.RentStatus != nil {
		if !upd.RentStatus.Valid() {
			return nil, apperrors.NewValidation("invalid rent status").
				WithSource("rent_status", "must be one of pending, ongoing, completed")
		}

		current, err := uc.rentRepo.GetRentByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !current.RentStatus.CanAdvanceTo(*upd.RentStatus) {
			return nil, apperrors.NewConflict("rent status cannot move backwards")
		}
	}

	rent, err := uc.rentRepo.UpdateRent(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	logger.Info("rent updated",
		logger.String("rent_id", rent.ID.String()),
		logger.String("rent_status", string(rent.RentStatus)))

	return rent, nil
}

// DeleteRent removes a rental request
func (uc *RentUC) DeleteRent(ctx context.Context, id uuid.UUID) error {
	if err := uc.rentRepo.DeleteRent(ctx, id); err != nil {
		return err
	}

	logger.Info("rent deleted", logger.String("rent_id", id.String()))
	return nil
}

func validateRent(rent *models.Rent) error {
	appErr := apperrors.NewValidation("invalid rent payload")
	if rent.UserID == uuid.Nil {
		appErr = appErr.WithSource("user_id", "must not be empty")
	}
	if rent.CarID == uuid.Nil {
		appErr = appErr.WithSource("car_id", "must not be empty")
	}
	if strings.TrimSpace(rent.StartingPoint) == "" {
		appErr = appErr.WithSource("starting_point", "must not be empty")
	}
	if strings.TrimSpace(rent.Destination) == "" {
		appErr = appErr.WithSource("destination", "must not be empty")
	}
	if len(appErr.Sources) > 0 {
		return appErr
	}
	return nil
}
