package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/database"
	"github.com/rentride/rentride/internal/pkg/models"
)

const bidColumns = `id, rent_id, driver_id, bid_amount, bid_status, driver_location, created_at, updated_at`

// Allow-lists for list queries over bids
var (
	bidFilterable = map[string]string{
		"bidStatus": "bid_status",
		"rentId":    "rent_id",
		"driverId":  "driver_id",
	}
	bidSearchable = []string{"driver_location"}
	bidSortable   = map[string]string{
		"createdAt": "created_at",
		"bidAmount": "bid_amount",
	}
)

// CreateBid inserts a new bid record
func (r *BidRepo) CreateBid(ctx context.Context, bid *models.Bid) error {
	if bid.ID == uuid.Nil {
		bid.ID = uuid.New()
	}
	if bid.BidStatus == "" {
		bid.BidStatus = models.BidStatusPending
	}
	now := time.Now()
	bid.CreatedAt = now
	bid.UpdatedAt = now

	query := `
		INSERT INTO bids (id, rent_id, driver_id, bid_amount, bid_status, driver_location, created_at, updated_at)
		VALUES (:id, :rent_id, :driver_id, :bid_amount, :bid_status, :driver_location, :created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, bid); err != nil {
		return apperrors.FromPostgres(err, "bid")
	}

	return nil
}

// GetBidByID retrieves a bid with its rent and driver eagerly loaded
func (r *BidRepo) GetBidByID(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	var bid models.Bid
	query := fmt.Sprintf(`SELECT %s FROM bids WHERE id = $1`, bidColumns)
	if err := r.db.GetContext(ctx, &bid, query, id); err != nil {
		return nil, apperrors.FromPostgres(err, "bid")
	}

	var rent models.Rent
	rentQuery := `SELECT id, user_id, car_id, rent_status, starting_point, destination, created_at, updated_at FROM rents WHERE id = $1`
	if err := r.db.GetContext(ctx, &rent, rentQuery, bid.RentID); err != nil {
		return nil, apperrors.FromPostgres(err, "rent")
	}
	bid.Rent = &rent

	var driver models.User
	driverQuery := `SELECT id, name, email, password, role, img, rating, created_at, updated_at FROM users WHERE id = $1`
	if err := r.db.GetContext(ctx, &driver, driverQuery, bid.DriverID); err != nil {
		return nil, apperrors.FromPostgres(err, "user")
	}
	bid.Driver = &driver

	return &bid, nil
}

// ListBids returns a page of bids matching the query plus the total count
func (r *BidRepo) ListBids(ctx context.Context, q models.ListQuery) ([]*models.Bid, int, error) {
	clauses, err := database.BuildListClauses(q, bidFilterable, bidSearchable, bidSortable)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM bids %s`, clauses.Where)
	if err := r.db.GetContext(ctx, &total, countQuery, clauses.Args...); err != nil {
		return nil, 0, apperrors.FromPostgres(err, "bid")
	}

	page := clauses.Paginate(q)
	bidList := []*models.Bid{}
	listQuery := fmt.Sprintf(`SELECT %s FROM bids %s %s %s`, bidColumns, clauses.Where, clauses.OrderBy, page)
	if err := r.db.SelectContext(ctx, &bidList, listQuery, clauses.Args...); err != nil {
		return nil, 0, apperrors.FromPostgres(err, "bid")
	}

	return bidList, total, nil
}

// UpdateBid applies a partial update and returns the updated record
func (r *BidRepo) UpdateBid(ctx context.Context, id uuid.UUID, upd *models.BidUpdate) (*models.Bid, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.BidAmount != nil {
		add("bid_amount", *upd.BidAmount)
	}
	if upd.BidStatus != nil {
		add("bid_status", *upd.BidStatus)
	}
	if upd.DriverLocation != nil {
		add("driver_location", *upd.DriverLocation)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE bids SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), bidColumns)

	var bid models.Bid
	if err := r.db.GetContext(ctx, &bid, query, args...); err != nil {
		return nil, apperrors.FromPostgres(err, "bid")
	}

	return &bid, nil
}

// DeleteBid removes a bid record
func (r *BidRepo) DeleteBid(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bids WHERE id = $1`, id)
	if err != nil {
		return apperrors.FromPostgres(err, "bid")
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return apperrors.NewNotFound("bid not found")
	}
	return nil
}

// RentBidState returns the rent's status and whether an accepted bid exists
func (r *BidRepo) RentBidState(ctx context.Context, rentID uuid.UUID) (models.RentStatus, bool, error) {
	var state struct {
		RentStatus  models.RentStatus `db:"rent_status"`
		HasAccepted bool              `db:"has_accepted"`
	}
	query := `
		SELECT r.rent_status,
		       EXISTS (SELECT 1 FROM bids b WHERE b.rent_id = r.id AND b.bid_status = 'accepted') AS has_accepted
		FROM rents r
		WHERE r.id = $1
	`
	if err := r.db.GetContext(ctx, &state, query, rentID); err != nil {
		return "", false, apperrors.FromPostgres(err, "rent")
	}
	return state.RentStatus, state.HasAccepted, nil
}

// AcceptBid atomically accepts a bid. The rent row is locked for the whole
// transaction so two concurrent accepts serialize instead of both winning.
func (r *BidRepo) AcceptBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return nil, apperrors.FromPostgres(err, "bid")
	}
	defer tx.Rollback()

	var bid models.Bid
	bidQuery := fmt.Sprintf(`SELECT %s FROM bids WHERE id = $1`, bidColumns)
	if err := tx.GetContext(ctx, &bid, bidQuery, id); err != nil {
		return nil, apperrors.FromPostgres(err, "bid")
	}
	if bid.BidStatus != models.BidStatusPending {
		return nil, apperrors.NewConflict("bid is not pending")
	}

	var rent models.Rent
	rentQuery := `
		SELECT id, user_id, car_id, rent_status, starting_point, destination, created_at, updated_at
		FROM rents
		WHERE id = $1
		FOR UPDATE
	`
	if err := tx.GetContext(ctx, &rent, rentQuery, bid.RentID); err != nil {
		return nil, apperrors.FromPostgres(err, "rent")
	}
	if rent.RentStatus != models.RentStatusPending {
		return nil, apperrors.NewConflict("rent is no longer accepting bids")
	}

	var acceptedCount int
	if err := tx.GetContext(ctx, &acceptedCount,
		`SELECT COUNT(*) FROM bids WHERE rent_id = $1 AND bid_status = 'accepted'`, bid.RentID); err != nil {
		return nil, apperrors.FromPostgres(err, "bid")
	}
	if acceptedCount > 0 {
		return nil, apperrors.NewConflict("another bid has already been accepted for this rent")
	}

	if err := tx.GetContext(ctx, &bid, fmt.Sprintf(
		`UPDATE bids SET bid_status = 'accepted', updated_at = NOW() WHERE id = $1 RETURNING %s`, bidColumns), id); err != nil {
		return nil, apperrors.FromPostgres(err, "bid")
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE bids SET bid_status = 'rejected', updated_at = NOW() WHERE rent_id = $1 AND id <> $2 AND bid_status = 'pending'`,
		bid.RentID, id); err != nil {
		return nil, apperrors.FromPostgres(err, "bid")
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE rents SET rent_status = 'ongoing', updated_at = NOW() WHERE id = $1`, bid.RentID); err != nil {
		return nil, apperrors.FromPostgres(err, "rent")
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.FromPostgres(err, "bid")
	}

	return &bid, nil
}
