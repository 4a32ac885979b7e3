package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/models"
)

func setupBidRepoTest(t *testing.T) (*BidRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &BidRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func bidRows(bids ...*models.Bid) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "rent_id", "driver_id", "bid_amount", "bid_status", "driver_location", "created_at", "updated_at"})
	for _, b := range bids {
		rows.AddRow(b.ID, b.RentID, b.DriverID, b.BidAmount, b.BidStatus, b.DriverLocation, b.CreatedAt, b.UpdatedAt)
	}
	return rows
}

func TestAcceptBid_CommitsWholeTransition(t *testing.T) {
	repo, mock, cleanup := setupBidRepoTest(t)
	defer cleanup()

	now := time.Now()
	bidID := uuid.New()
	rentID := uuid.New()
	driverID := uuid.New()
	userID := uuid.New()
	carID := uuid.New()

	pending := &models.Bid{
		ID: bidID, RentID: rentID, DriverID: driverID,
		BidAmount: 2500, BidStatus: models.BidStatusPending,
		DriverLocation: "Banani", CreatedAt: now, UpdatedAt: now,
	}
	accepted := *pending
	accepted.BidStatus = models.BidStatusAccepted

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM bids WHERE id").
		WithArgs(bidID).
		WillReturnRows(bidRows(pending))

	rentRows := sqlmock.NewRows([]string{"id", "user_id", "car_id", "rent_status", "starting_point", "destination", "created_at", "updated_at"}).
		AddRow(rentID, userID, carID, models.RentStatusPending, "Dhaka", "Sylhet", now, now)
	mock.ExpectQuery("^SELECT (.+) FROM rents WHERE id (.+) FOR UPDATE").
		WithArgs(rentID).
		WillReturnRows(rentRows)

	mock.ExpectQuery("^SELECT COUNT(.+) FROM bids WHERE rent_id").
		WithArgs(rentID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery("^UPDATE bids SET bid_status = 'accepted'").
		WithArgs(bidID).
		WillReturnRows(bidRows(&accepted))

	mock.ExpectExec("^UPDATE bids SET bid_status = 'rejected'").
		WithArgs(rentID, bidID).
		WillReturnResult(sqlmock.NewResult(0, 2))

	mock.ExpectExec("^UPDATE rents SET rent_status = 'ongoing'").
		WithArgs(rentID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	mock.ExpectCommit()

	bid, err := repo.AcceptBid(context.Background(), bidID)

	assert.NoError(t, err)
	assert.Equal(t, models.BidStatusAccepted, bid.BidStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptBid_SiblingAlreadyAccepted(t *testing.T) {
	repo, mock, cleanup := setupBidRepoTest(t)
	defer cleanup()

	now := time.Now()
	bidID := uuid.New()
	rentID := uuid.New()

	pending := &models.Bid{
		ID: bidID, RentID: rentID, DriverID: uuid.New(),
		BidAmount: 2500, BidStatus: models.BidStatusPending,
		DriverLocation: "Banani", CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM bids WHERE id").
		WithArgs(bidID).
		WillReturnRows(bidRows(pending))

	rentRows := sqlmock.NewRows([]string{"id", "user_id", "car_id", "rent_status", "starting_point", "destination", "created_at", "updated_at"}).
		AddRow(rentID, uuid.New(), uuid.New(), models.RentStatusPending, "Dhaka", "Sylhet", now, now)
	mock.ExpectQuery("^SELECT (.+) FROM rents WHERE id (.+) FOR UPDATE").
		WithArgs(rentID).
		WillReturnRows(rentRows)

	mock.ExpectQuery("^SELECT COUNT(.+) FROM bids WHERE rent_id").
		WithArgs(rentID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectRollback()

	_, err := repo.AcceptBid(context.Background(), bidID)

	assert.Error(t, err)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, apperrors.TypeConflict, appErr.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcceptBid_BidNotPending(t *testing.T) {
	repo, mock, cleanup := setupBidRepoTest(t)
	defer cleanup()

	now := time.Now()
	bidID := uuid.New()
	rejected := &models.Bid{
		ID: bidID, RentID: uuid.New(), DriverID: uuid.New(),
		BidAmount: 2500, BidStatus: models.BidStatusRejected,
		DriverLocation: "Banani", CreatedAt: now, UpdatedAt: now,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("^SELECT (.+) FROM bids WHERE id").
		WithArgs(bidID).
		WillReturnRows(bidRows(rejected))
	mock.ExpectRollback()

	_, err := repo.AcceptBid(context.Background(), bidID)

	assert.Error(t, err)
	appErr, _ := apperrors.As(err)
	assert.Equal(t, apperrors.TypeConflict, appErr.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentBidState(t *testing.T) {
	repo, mock, cleanup := setupBidRepoTest(t)
	defer cleanup()

	rentID := uuid.New()
	rows := sqlmock.NewRows([]string{"rent_status", "has_accepted"}).
		AddRow(models.RentStatusPending, false)
	mock.ExpectQuery("^SELECT r.rent_status").
		WithArgs(rentID).
		WillReturnRows(rows)

	status, hasAccepted, err := repo.RentBidState(context.Background(), rentID)

	assert.NoError(t, err)
	assert.Equal(t, models.RentStatusPending, status)
	assert.False(t, hasAccepted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
