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

const rentColumns = `id, user_id, car_id, rent_status, starting_point, destination, created_at, updated_at`

// Allow-lists for list queries over rents
var (
	rentFilterable = map[string]string{
		"rentStatus": "rent_status",
		"userId":     "user_id",
		"carId":      "car_id",
	}
	rentSearchable = []string{"starting_point", "destination"}
	rentSortable   = map[string]string{
		"createdAt":  "created_at",
		"rentStatus": "rent_status",
	}
)

// CreateRent inserts a new rental request
func (r *RentRepo) CreateRent(ctx context.Context, rent *models.Rent) error {
	if rent.ID == uuid.Nil {
		rent.ID = uuid.New()
	}
	if rent.RentStatus == "" {
		rent.RentStatus = models.RentStatusPending
	}
	now := time.Now()
	rent.CreatedAt = now
	rent.UpdatedAt = now

	query := `
		INSERT INTO rents (id, user_id, car_id, rent_status, starting_point, destination, created_at, updated_at)
		VALUES (:id, :user_id, :car_id, :rent_status, :starting_point, :destination, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, rent); err != nil {
		return apperrors.FromPostgres(err, "rent")
	}

	return nil
}

// GetRentByID retrieves a rent with its owner, car and bids eagerly loaded
func (r *RentRepo) GetRentByID(ctx context.Context, id uuid.UUID) (*models.Rent, error) {
	var rent models.Rent
	query := fmt.Sprintf(`SELECT %s FROM rents WHERE id = $1`, rentColumns)
	if err := r.db.GetContext(ctx, &rent, query, id); err != nil {
		return nil, apperrors.FromPostgres(err, "rent")
	}

	var user models.User
	userQuery := `SELECT id, name, email, password, role, img, rating, created_at, updated_at FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &user, userQuery, rent.UserID); err != nil {
		return nil, apperrors.FromPostgres(err, "user")
	}
	rent.User = &user

	var car models.Car
	carQuery := `SELECT id, name, brand, model, image, rating, fuel_type, passenger_capacity, color, condition, created_at, updated_at FROM cars WHERE id = $1`
	if err := r.db.GetContext(ctx, &car, carQuery, rent.CarID); err != nil {
		return nil, apperrors.FromPostgres(err, "car")
	}
	rent.Car = &car

	bids := []*models.Bid{}
	bidQuery := `
		SELECT id, rent_id, driver_id, bid_amount, bid_status, driver_location, created_at, updated_at
		FROM bids
		WHERE rent_id = $1
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &bids, bidQuery, id); err != nil {
		return nil, apperrors.FromPostgres(err, "bid")
	}
	rent.Bids = bids

	return &rent, nil
}

// ListRents returns a page of rents matching the query plus the total count
func (r *RentRepo) ListRents(ctx context.Context, q models.ListQuery) ([]*models.Rent, int, error) {
	clauses, err := database.BuildListClauses(q, rentFilterable, rentSearchable, rentSortable)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM rents %s`, clauses.Where)
	if err := r.db.GetContext(ctx, &total, countQuery, clauses.Args...); err != nil {
		return nil, 0, apperrors.FromPostgres(err, "rent")
	}

	page := clauses.Paginate(q)
	rentList := []*models.Rent{}
	listQuery := fmt.Sprintf(`SELECT %s FROM rents %s %s %s`, rentColumns, clauses.Where, clauses.OrderBy, page)
	if err := r.db.SelectContext(ctx, &rentList, listQuery, clauses.Args...); err != nil {
		return nil, 0, apperrors.FromPostgres(err, "rent")
	}

	return rentList, total, nil
}

// UpdateRent applies a partial update and returns the updated record
func (r *RentRepo) UpdateRent(ctx context.Context, id uuid.UUID, upd *models.RentUpdate) (*models.Rent, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.StartingPoint != nil {
		add("starting_point", *upd.StartingPoint)
	}
	if upd.Destination != nil {
		add("destination", *upd.Destination)
	}
	if upd.RentStatus != nil {
		add("rent_status", *upd.RentStatus)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE rents SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), rentColumns)

	var rent models.Rent
	if err := r.db.GetContext(ctx, &rent, query, args...); err != nil {
		return nil, apperrors.FromPostgres(err, "rent")
	}

	return &rent, nil
}

// DeleteRent removes a rental request
func (r *RentRepo) DeleteRent(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rents WHERE id = $1`, id)
	if err != nil {
		return apperrors.FromPostgres(err, "rent")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.NewNotFound("rent not found")
	}
	return nil
}
