package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wavemint/marketplace/internal/domain"
	"github.com/wavemint/marketplace/internal/market"
	"github.com/wavemint/marketplace/internal/store/schema"
)

// Broker is the market surface the REST handlers call
//
//go:generate mockgen -source=handler.go -destination=../../mocks/broker.go -package=mocks -mock_names=Broker=MockBroker
type Broker interface {
	CheckAvailability(ctx context.Context, releaseID uint64, trackID *uint64) (*domain.Availability, error)
	PreparePurchase(ctx context.Context, releaseID uint64, trackID *uint64, buyerAddress string) (*domain.PurchaseResult, error)
	ConfirmSale(ctx context.Context, reservationID string, acceptTxHash string) (*schema.Sale, error)
	ListUserNFTs(ctx context.Context, address string) (*market.UserCollection, error)
}

// Handler defines the interface for REST API handlers
type Handler interface {
	// PurchaseBroker dispatches the purchase flow on the request's action
	// field: "check" pre-checks availability, "confirm" settles an accepted
	// offer, anything else prepares a purchase
	// POST /purchase-broker
	PurchaseBroker(c *gin.Context)

	// UserNFTs lists a ledger account's NFTs annotated with catalog metadata
	// GET /user-nfts?address=<ledger address>
	UserNFTs(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	broker Broker
}

// NewHandler creates a new REST API handler
func NewHandler(broker Broker) Handler {
	return &handler{broker: broker}
}

// purchaseBrokerRequest is the POST /purchase-broker body. PendingSale and
// AcceptTxHash only apply to action "confirm"; BuyerAddress only to
// prepare.
type purchaseBrokerRequest struct {
	Action        string              `json:"action"`
	ReleaseID     uint64              `json:"releaseId"`
	TrackID       *uint64             `json:"trackId"`
	BuyerAddress  string              `json:"buyerAddress"`
	PaymentTxHash string              `json:"paymentTxHash"`
	PendingSale   *domain.PendingSale `json:"pendingSale"`
	AcceptTxHash  string              `json:"acceptTxHash"`
}

// PurchaseBroker dispatches on the action field
func (h *handler) PurchaseBroker(c *gin.Context) {
	var req purchaseBrokerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body")
		return
	}

	switch req.Action {
	case "check":
		h.checkAvailability(c, &req)
	case "confirm":
		h.confirmSale(c, &req)
	default:
		h.preparePurchase(c, &req)
	}
}

func (h *handler) checkAvailability(c *gin.Context, req *purchaseBrokerRequest) {
	if req.ReleaseID == 0 {
		respondBadRequest(c, "releaseId is required")
		return
	}

	availability, err := h.broker.CheckAvailability(c.Request.Context(), req.ReleaseID, req.TrackID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondNotFound(c, "Release or track not found")
		case errors.Is(err, domain.ErrInvalidState):
			respondBadRequest(c, err.Error())
		default:
			respondInternalError(c, err, "Failed to check availability")
		}
		return
	}

	c.JSON(http.StatusOK, availability)
}

func (h *handler) preparePurchase(c *gin.Context, req *purchaseBrokerRequest) {
	if req.ReleaseID == 0 {
		respondBadRequest(c, "releaseId is required")
		return
	}
	if req.BuyerAddress == "" {
		respondBadRequest(c, "buyerAddress is required")
		return
	}

	result, err := h.broker.PreparePurchase(c.Request.Context(), req.ReleaseID, req.TrackID, req.BuyerAddress)
	if err != nil {
		var failure *market.PurchaseFailure
		switch {
		case errors.Is(err, domain.ErrNotFound):
			respondNotFound(c, "Release or track not found")
		case errors.Is(err, domain.ErrInvalidState):
			respondBadRequest(c, err.Error())
		case errors.Is(err, domain.ErrSoldOut):
			respondSoldOut(c, "Sold out")
		case errors.As(err, &failure):
			respondPurchaseFailure(c, err, failure.Refunded)
		default:
			respondInternalError(c, err, "Failed to prepare purchase")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"sellOfferIndex": result.SellOfferIndex,
		"nftTokenId":     result.TokenID,
		"txHash":         result.TxHash,
		"lazyMinted":     result.LazyMinted,
		"pendingSale":    result.PendingSale,
		"message":        "Sell offer ready to accept",
	})
}

func (h *handler) confirmSale(c *gin.Context, req *purchaseBrokerRequest) {
	if req.PendingSale == nil || req.PendingSale.ReservationID == "" {
		respondBadRequest(c, "pendingSale with reservationId is required")
		return
	}
	if req.AcceptTxHash == "" {
		respondBadRequest(c, "acceptTxHash is required")
		return
	}

	sale, err := h.broker.ConfirmSale(c.Request.Context(), req.PendingSale.ReservationID, req.AcceptTxHash)
	if err != nil {
		if errors.Is(err, domain.ErrReservationNotFound) {
			respondNotFound(c, "Reservation not found or expired")
			return
		}
		respondInternalError(c, err, "Failed to confirm sale")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"saleId":        sale.ID,
		"editionNumber": sale.EditionNumber,
	})
}

// UserNFTs lists a ledger account's NFTs annotated with catalog metadata
func (h *handler) UserNFTs(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		respondBadRequest(c, "address is required")
		return
	}

	collection, err := h.broker.ListUserNFTs(c.Request.Context(), address)
	if err != nil {
		respondInternalError(c, err, "Failed to list user NFTs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"nfts":         collection.NFTs,
		"totalOnChain": collection.TotalOnChain,
		"matchedCount": collection.MatchedCount,
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}
