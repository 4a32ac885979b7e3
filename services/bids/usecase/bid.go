package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/rentride/rentride/internal/pkg/apperrors"
	"github.com/rentride/rentride/internal/pkg/logger"
	"github.com/rentride/rentride/internal/pkg/models"
)

// CreateBid validates and stores a new bid. Bids are only taken while the
// rent is pending and no sibling bid has been accepted yet.
func (uc *BidUC) CreateBid(ctx context.Context, bid *models.Bid) (*models.Bid, error) {
	if err := validateBid(bid); err != nil {
		return nil, err
	}
	bid.BidStatus = models.BidStatusPending

	rentStatus, hasAccepted, err := uc.bidRepo.RentBidState(ctx, bid.RentID)
	if err != nil {
		return nil, err
	}
	if rentStatus != models.RentStatusPending {
		return nil, apperrors.NewConflict("rent is no longer accepting bids")
	}
	if hasAccepted {
		return nil, apperrors.NewConflict("another bid has already been accepted for this rent")
	}

	if err := uc.bidRepo.CreateBid(ctx, bid); err != nil {
		return nil, err
	}

	logger.Info("bid created",
		logger.String("bid_id", bid.ID.String()),
		logger.String("rent_id", bid.RentID.String()),
		logger.Float64("bid_amount", bid.BidAmount))

	return bid, nil
}

// GetBidByID returns a bid with its rent and driver eager-loaded
func (uc *BidUC) GetBidByID(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	return uc.bidRepo.GetBidByID(ctx, id)
}

// ListBids returns a filtered, paginated page of bids
func (uc *BidUC) ListBids(ctx context.Context, q models.ListQuery) ([]*models.Bid, models.Meta, error) {
	q.Normalize()

	bidList, total, err := uc.bidRepo.ListBids(ctx, q)
	if err != nil {
		return nil, models.Meta{}, err
	}

	return bidList, models.NewMeta(q, total), nil
}

// UpdateBid applies a partial update to a bid. Accepting a bid has side
// effects on the rent and sibling bids, so a status change to accepted is
// routed through AcceptBid's transaction.
func (uc *BidUC) UpdateBid(ctx context.Context, id uuid.UUID, upd *models.BidUpdate) (*models.Bid, error) {
	if upd == nil {
		return nil, apperrors.NewValidation("no fields to update")
	}
	if upd.BidStatus != nil {
		switch *upd.BidStatus {
		case models.BidStatusAccepted:
			return uc.AcceptBid(ctx, id)
		case models.BidStatusRejected:
		default:
			return nil, apperrors.NewValidation("invalid bid status").
				WithSource("bid_status", "must be accepted or rejected")
		}
	}
	if upd.BidAmount != nil && *upd.BidAmount <= 0 {
		return nil, apperrors.NewValidation("invalid bid amount").
			WithSource("bid_amount", "must be greater than zero")
	}

	return uc.bidRepo.UpdateBid(ctx, id, upd)
}

// DeleteBid removes a bid record
func (uc *BidUC) DeleteBid(ctx context.Context, id uuid.UUID) error {
	if err := uc.bidRepo.DeleteBid(ctx, id); err != nil {
		return err
	}

	logger.Info("bid deleted", logger.String("bid_id", id.String()))
	return nil
}

// AcceptBid accepts a bid, rejects its pending siblings and moves the rent
// to ongoing in one transaction, then publishes a bid.accepted event.
func (uc *BidUC) AcceptBid(ctx context.Context, id uuid.UUID) (*models.Bid, error) {
	bid, err := uc.bidRepo.AcceptBid(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.bidGW.PublishBidAccepted(ctx, bid); err != nil {
		// The accept is already committed; a failed publish must not undo it.
		logger.Warn("failed to publish bid accepted event",
			logger.ErrorField(err),
			logger.String("bid_id", bid.ID.String()))
	}

	logger.Info("bid accepted",
		logger.String("bid_id", bid.ID.String()),
		logger.String("rent_id", bid.RentID.String()),
		logger.Float64("bid_amount", bid.BidAmount))

	return bid, nil
}

func validateBid(bid *models.Bid) error {
	appErr := apperrors.NewValidation("invalid bid payload")
	if bid.RentID == uuid.Nil {
		appErr = appErr.WithSource("rent_id", "must not be empty")
	}
	if bid.DriverID == uuid.Nil {
		appErr = appErr.WithSource("driver_id", "must not be empty")
	}
	if bid.BidAmount <= 0 {
		appErr = appErr.WithSource("bid_amount", "must be greater than zero")
	}
	if strings.TrimSpace(bid.DriverLocation) == "" {
		appErr = appErr.WithSource("driver_location", "must not be empty")
	}
	if len(appErr.Sources) > 0 {
		return appErr
	}
	return nil
}
