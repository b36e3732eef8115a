package domain

import "time"

// MintRegime identifies how a release's NFTs come into existence.
type MintRegime string

const (
	// RegimeLegacy covers releases whose editions were pre-minted into the
	// platform wallet before lazy minting existed
	RegimeLegacy MintRegime = "legacy"
	// RegimeLazyMint covers releases whose editions are minted on demand at
	// purchase time
	RegimeLazyMint MintRegime = "lazy_mint"
)

// AvailabilitySource identifies where a purchasable unit was found.
type AvailabilitySource string

const (
	// SourceLazyMint means headroom exists to mint a new edition
	SourceLazyMint AvailabilitySource = "lazy_mint"
	// SourceLegacyDB means a pre-minted NFT record is marked available in
	// the database
	SourceLegacyDB AvailabilitySource = "legacy_db"
	// SourceLegacyOnChain means a matching NFT sits in the platform wallet
	// but is not tracked in the database yet
	SourceLegacyOnChain AvailabilitySource = "legacy_onchain"
)

// Availability is the result of a purchase pre-check.
type Availability struct {
	Available      bool               `json:"available"`
	AvailableCount int                `json:"availableCount,omitempty"`
	SoldOut        bool               `json:"soldOut,omitempty"`
	Source         AvailabilitySource `json:"releaseType,omitempty"`
	Price          string             `json:"price,omitempty"`
}

// PendingSale is the in-flight purchase state returned by the prepare step.
// The client echoes it back on confirm, but the authoritative copy lives in
// the purchase_reservations table keyed by ReservationID; client-supplied
// amounts and addresses are ignored at confirm time.
type PendingSale struct {
	ReservationID string `json:"reservationId"`
	ReleaseID     uint64 `json:"releaseId"`
	TrackID       uint64 `json:"trackId"`
	BuyerAddress  string `json:"buyerAddress"`
	ArtistAddress string `json:"artistAddress"`
	TokenID       string `json:"nftTokenId"`
	EditionNumber int    `json:"editionNumber"`
	// PriceDrops is the amount the buyer paid, in drops
	PriceDrops string `json:"priceDrops"`
	// PlatformFeeDrops is the 2% cut retained by the platform, in drops
	PlatformFeeDrops string `json:"platformFeeDrops"`
}

// PurchaseResult is the outcome of a successful prepare step.
type PurchaseResult struct {
	SellOfferIndex string
	TokenID        string
	TxHash         string
	LazyMinted     bool
	PendingSale    PendingSale
}

// SaleEvent is the payload published to the side-channels after a sale is
// recorded.
type SaleEvent struct {
	EventID       string    `json:"event_id"`
	SaleID        string    `json:"sale_id"`
	ReleaseID     uint64    `json:"release_id"`
	TrackID       uint64    `json:"track_id"`
	TokenID       string    `json:"token_id"`
	BuyerAddress  string    `json:"buyer_address"`
	ArtistAddress string    `json:"artist_address"`
	EditionNumber int       `json:"edition_number"`
	PriceDrops    string    `json:"price_drops"`
	Timestamp     time.Time `json:"timestamp"`
}

// UserNFT is an on-chain NFT cross-referenced against the track catalog for
// the read-only user-nfts endpoint.
type UserNFT struct {
	TokenID      string `json:"nftTokenId"`
	URI          string `json:"uri"`
	ReleaseID    uint64 `json:"releaseId,omitempty"`
	TrackID      uint64 `json:"trackId,omitempty"`
	ReleaseTitle string `json:"releaseTitle,omitempty"`
	TrackTitle   string `json:"trackTitle,omitempty"`
	ArtistName   string `json:"artistName,omitempty"`
	Matched      bool   `json:"matched"`
}
