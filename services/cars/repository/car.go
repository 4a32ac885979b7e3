package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/database"
	"github.com/rentride/rentride/internal/pkg/models"
)

const carColumns = `id, name, brand, model, image, rating, fuel_type, passenger_capacity, color, condition, created_at, updated_at`

// Allow-lists for list queries over cars
var (
	carFilterable = map[string]string{
		"brand":             "brand",
		"model":             "model",
		"fuelType":          "fuel_type",
		"color":             "color",
		"condition":         "condition",
		"passengerCapacity": "passenger_capacity",
	}
	carSearchable = []string{"name", "brand", "model"}
	carSortable   = map[string]string{
		"createdAt": "created_at",
		"name":      "name",
		"brand":     "brand",
		"rating":    "rating",
	}
)

// CreateCar inserts a new car listing
func (r *CarRepo) CreateCar(ctx context.Context, car *models.Car) error {
	if car.ID == uuid.Nil {
		car.ID = uuid.New()
	}
	now := time.Now()
	car.CreatedAt = now
	car.UpdatedAt = now

	query := `
		INSERT INTO cars (id, name, brand, model, image, rating, fuel_type, passenger_capacity, color, condition, created_at, updated_at)
		VALUES (:id, :name, :brand, :model, :image, :rating, :fuel_type, :passenger_capacity, :color, :condition, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, car); err != nil {
		return apperrors.FromPostgres(err, "car")
	}

	return nil
}

// GetCarByID retrieves a car by ID with its rents eagerly loaded
func (r *CarRepo) GetCarByID(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	var car models.Car
	query := fmt.Sprintf(`SELECT %s FROM cars WHERE id = $1`, carColumns)
	if err := r.db.GetContext(ctx, &car, query, id); err != nil {
		return nil, apperrors.FromPostgres(err, "car")
	}

	rents := []*models.Rent{}
	rentQuery := `
		SELECT id, user_id, car_id, rent_status, starting_point, destination, created_at, updated_at
		FROM rents
		WHERE car_id = $1
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &rents, rentQuery, id); err != nil {
		return nil, apperrors.FromPostgres(err, "rent")
	}
	car.Rents = rents

	return &car, nil
}

// ListCars returns a page of cars matching the query plus the total count
func (r *CarRepo) ListCars(ctx context.Context, q models.ListQuery) ([]*models.Car, int, error) {
	clauses, err := database.BuildListClauses(q, carFilterable, carSearchable, carSortable)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM cars %s`, clauses.Where)
	if err := r.db.GetContext(ctx, &total, countQuery, clauses.Args...); err != nil {
		return nil, 0, apperrors.FromPostgres(err, "car")
	}

	page := clauses.Paginate(q)
	cars := []*models.Car{}
	listQuery := fmt.Sprintf(`SELECT %s FROM cars %s %s %s`, carColumns, clauses.Where, clauses.OrderBy, page)
	if err := r.db.SelectContext(ctx, &cars, listQuery, clauses.Args...); err != nil {
		return nil, 0, apperrors.FromPostgres(err, "car")
	}

	return cars, total, nil
}

// UpdateCar applies a partial update and returns the updated record
func (r *CarRepo) UpdateCar(ctx context.Context, id uuid.UUID, upd *models.CarUpdate) (*models.Car, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Brand != nil {
		add("brand", *upd.Brand)
	}
	if upd.Model != nil {
		add("model", *upd.Model)
	}
	if upd.Image != nil {
		add("image", *upd.Image)
	}
	if upd.Rating != nil {
		add("rating", *upd.Rating)
	}
	if upd.FuelType != nil {
		add("fuel_type", *upd.FuelType)
	}
	if upd.PassengerCapacity != nil {
		add("passenger_capacity", *upd.PassengerCapacity)
	}
	if upd.Color != nil {
		add("color", *upd.Color)
	}
	if upd.Condition != nil {
		add("condition", *upd.Condition)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE cars SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), carColumns)

	var car models.Car
	if err := r.db.GetContext(ctx, &car, query, args...); err != nil {
		return nil, apperrors.FromPostgres(err, "car")
	}

	return &car, nil
}

// DeleteCar removes a car listing
func (r *CarRepo) DeleteCar(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return apperrors.FromPostgres(err, "car")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.NewNotFound("car not found")
	}
	return nil
}
