package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/rentride/rentride/internal/pkg/logger"
	"github.com/rentride/rentride/internal/pkg/models"
	"github.com/rentride/rentride/internal/utils"
	"github.com/rentride/rentride/services/bids"
)

// BidHandler handles HTTP requests for bid operations
type BidHandler struct {
	bidUC bids.BidUC
}

// NewBidHandler creates a new bid handler
func NewBidHandler(bidUC bids.BidUC) *BidHandler {
	return &BidHandler{
		bidUC: bidUC,
	}
}

// CreateBid handles bid creation. The bidder is taken from the access token.
func (h *BidHandler) CreateBid(c echo.Context) error {
	var bid models.Bid
	if err := c.Bind(&bid); err != nil {
		logger.Warn("Invalid request payload for bid creation", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	driverID, ok := c.Get("user_id").(uuid.UUID)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	bid.DriverID = driverID

	created, err := h.bidUC.CreateBid(c.Request().Context(), &bid)
	if err != nil {
		logger.Error("Failed to create bid", logger.ErrorField(err))
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Bid created successfully", created)
}

// GetBid handles bid retrieval requests
func (h *BidHandler) GetBid(c echo.Context) error {
	bidID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid bid ID")
	}

	bid, err := h.bidUC.GetBidByID(c.Request().Context(), bidID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bid retrieved successfully", bid)
}

// ListBids handles paginated bid listing requests
func (h *BidHandler) ListBids(c echo.Context) error {
	q := models.ParseListQuery(c.QueryParams())

	bidList, meta, err := h.bidUC.ListBids(c.Request().Context(), q)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.PaginatedResponse(c, http.StatusOK, "Bids retrieved successfully", bidList, meta)
}

// UpdateBid handles partial bid update requests
func (h *BidHandler) UpdateBid(c echo.Context) error {
	bidID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid bid ID")
	}

	var upd models.BidUpdate
	if err := c.Bind(&upd); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	bid, err := h.bidUC.UpdateBid(c.Request().Context(), bidID, &upd)
	if err != nil {
		logger.Error("Failed to update bid",
			logger.ErrorField(err),
			logger.String("bid_id", bidID.String()),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bid updated successfully", bid)
}

// DeleteBid handles bid deletion requests
func (h *BidHandler) DeleteBid(c echo.Context) error {
	bidID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid bid ID")
	}

	if err := h.bidUC.DeleteBid(c.Request().Context(), bidID); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bid deleted successfully", nil)
}

// AcceptBid handles bid acceptance requests
func (h *BidHandler) AcceptBid(c echo.Context) error {
	bidID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid bid ID")
	}

	bid, err := h.bidUC.AcceptBid(c.Request().Context(), bidID)
	if err != nil {
		logger.Error("Failed to accept bid",
			logger.ErrorField(err),
			logger.String("bid_id", bidID.String()),
		)
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bid accepted successfully", bid)
}
