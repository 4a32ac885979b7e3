package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/logger"
	"github.com/rentride/rentride/internal/pkg/models"
)

// CreateCar validates and stores a new car listing
func (uc *CarUC) CreateCar(ctx context.Context, car *models.Car) (*models.Car, error) {
	if err := validateCar(car); err != nil {
		return nil, err
	}

	if err := uc.carRepo.CreateCar(ctx, car); err != nil {
		return nil, err
	}

	logger.Info("car created",
		logger.String("car_id", car.ID.String()),
		logger.String("brand", car.Brand))

	return car, nil
}

// GetCarByID returns a car listing with its rents eager-loaded
func (uc *CarUC) GetCarByID(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	return uc.carRepo.GetCarByID(ctx, id)
}

// ListCars returns a filtered, paginated page of the catalog
func (uc *CarUC) ListCars(ctx context.Context, q models.ListQuery) ([]*models.Car, models.Meta, error) {
	q.Normalize()

	carList, total, err := uc.carRepo.ListCars(ctx, q)
	if err != nil {
		return nil, models.Meta{}, err
	}

	return carList, models.NewMeta(q, total), nil
}

// UpdateCar applies a partial update to a car listing
func (uc *CarUC) UpdateCar(ctx context.Context, id uuid.UUID, upd *models.CarUpdate) (*models.Car, error) {
	if upd == nil {
		return nil, apperrors.NewValidation("no fields to update")
	}
	if upd.FuelType != nil && !models.ValidFuelType(*upd.FuelType) {
		return nil, apperrors.NewValidation("invalid fuel type").
			WithSource("fuel_type", "must be one of Octane, Hybrid, Electric, Diesel, Petrol")
	}
	if upd.Condition != nil && !models.ValidCondition(*upd.Condition) {
		return nil, apperrors.NewValidation("invalid condition").
			WithSource("condition", "must be New or Used")
	}
	if upd.PassengerCapacity != nil && *upd.PassengerCapacity < 1 {
		return nil, apperrors.NewValidation("invalid passenger capacity").
			WithSource("passenger_capacity", "must be at least 1")
	}

	return uc.carRepo.UpdateCar(ctx, id, upd)
}

// DeleteCar removes a car listing
func (uc *CarUC) DeleteCar(ctx context.Context, id uuid.UUID) error {
	if err := uc.carRepo.DeleteCar(ctx, id); err != nil {
		return err
	}

	logger.Info("car deleted", logger.String("car_id", id.String()))
	return nil
}

func validateCar(car *models.Car) error {
	appErr := apperrors.NewValidation("invalid car payload")
	if strings.TrimSpace(car.Name) == "" {
		appErr = appErr.WithSource("name", "must not be empty")
	}
	if strings.TrimSpace(car.Brand) == "" {
		appErr = appErr.WithSource("brand", "must not be empty")
	}
	if strings.TrimSpace(car.Model) == "" {
		appErr = appErr.WithSource("model", "must not be empty")
	}
	if !models.ValidFuelType(car.FuelType) {
		appErr = appErr.WithSource("fuel_type", "must be one of Octane, Hybrid, Electric, Diesel, Petrol")
	}
	if !models.ValidCondition(car.Condition) {
		appErr = appErr.WithSource("condition", "must be New or Used")
	}
	if car.PassengerCapacity < 1 {
		appErr = appErr.WithSource("passenger_capacity", "must be at least 1")
	}
	if len(appErr.Sources) > 0 {
		return appErr
	}
	return nil
}
