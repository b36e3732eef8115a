package store

import (
	"context"
	"time"

	"github.com/wavemint/marketplace/internal/store/schema"
)

// RecordMintInput carries everything persisted after a successful lazy mint
type RecordMintInput struct {
	ReleaseID     uint64
	TrackID       uint64
	TokenID       string
	EditionNumber int
	OwnerAddress  string
}

// RecordSaleInput carries everything persisted when a sale is confirmed
type RecordSaleInput struct {
	ReleaseID        uint64
	TrackID          uint64
	TokenID          string
	BuyerAddress     string
	SellerAddress    string
	PriceDrops       string
	PlatformFeeDrops string
	SettlementTxHash string
}

// TrackWithRelease joins a track with its owning release for catalog
// cross-referencing
type TrackWithRelease struct {
	Track   schema.Track
	Release schema.Release
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetReleaseWithTracks retrieves a release with its tracks, or nil if absent
	GetReleaseWithTracks(ctx context.Context, releaseID uint64) (*schema.Release, error)
	// GetAvailableNFTs retrieves available NFT records for a track, oldest
	// edition first
	GetAvailableNFTs(ctx context.Context, trackID uint64) ([]schema.NFT, error)
	// ReserveNFT atomically moves an NFT record from available to pending.
	// It returns false when another purchase won the race.
	ReserveNFT(ctx context.Context, nftID uint64) (bool, error)
	// ReleaseNFT rolls a pending NFT record back to available
	ReleaseNFT(ctx context.Context, nftID uint64) error
	// CreateNFT inserts a new NFT record (used to materialize legacy
	// on-chain units)
	CreateNFT(ctx context.Context, nft *schema.NFT) error
	// RecordMint persists a freshly minted NFT as pending and bumps the
	// track and release minted counts in one transaction
	RecordMint(ctx context.Context, input RecordMintInput) (*schema.NFT, error)
	// CountSales counts confirmed sales for a track
	CountSales(ctx context.Context, trackID uint64) (int64, error)
	// RecordSale marks the NFT sold, bumps counts, recomputes the release
	// sold_editions and appends the immutable Sale row in one transaction.
	// The returned sale carries the recomputed edition number.
	RecordSale(ctx context.Context, input RecordSaleInput) (*schema.Sale, error)
	// CreateReservation persists the server-held copy of a pending sale
	CreateReservation(ctx context.Context, reservation *schema.PurchaseReservation) error
	// GetReservation retrieves a reservation by its opaque ID, or nil if
	// absent or expired as of now
	GetReservation(ctx context.Context, id string, now time.Time) (*schema.PurchaseReservation, error)
	// GetTracksByCIDs retrieves tracks (with their releases) whose metadata
	// CID is in cids
	GetTracksByCIDs(ctx context.Context, cids []string) ([]TrackWithRelease, error)
}
