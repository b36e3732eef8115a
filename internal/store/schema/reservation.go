package schema

import "time"

// PurchaseReservation represents the purchase_reservations table - the
// server-held copy of an in-flight purchase. The prepare step writes it and
// returns its ID inside the pendingSale payload; the confirm step reads
// prices and addresses from here rather than trusting the client echo.
// Rows are not consumed on confirm; expired rows are garbage.
type PurchaseReservation struct {
	// ID is an opaque generated UUID returned to the client
	ID string `gorm:"column:id;primaryKey;type:text"`
	// NFTID is the reserved NFT record
	NFTID uint64 `gorm:"column:nft_id;not null"`
	// ReleaseID is the release being purchased
	ReleaseID uint64 `gorm:"column:release_id;not null"`
	// TrackID is the track being purchased
	TrackID uint64 `gorm:"column:track_id;not null"`
	// TokenID is the on-chain NFToken ID offered to the buyer
	TokenID string `gorm:"column:token_id;not null;type:text"`
	// BuyerAddress is the destination of the sell offer
	BuyerAddress string `gorm:"column:buyer_address;not null;type:text"`
	// ArtistAddress is the payout destination
	ArtistAddress string `gorm:"column:artist_address;not null;type:text"`
	// EditionNumber is the edition quoted at prepare time (provisional;
	// recomputed at confirm)
	EditionNumber int `gorm:"column:edition_number;not null"`
	// PriceDrops is the quoted price in drops
	PriceDrops string `gorm:"column:price_drops;not null;type:text"`
	// PlatformFeeDrops is the quoted platform fee in drops
	PlatformFeeDrops string `gorm:"column:platform_fee_drops;not null;type:text"`
	CreatedAt        time.Time `gorm:"column:created_at;not null;default:now()"`
	// ExpiresAt bounds how long the reservation is honored at confirm time
	ExpiresAt time.Time `gorm:"column:expires_at;not null"`
}

// TableName specifies the table name for the PurchaseReservation model
func (PurchaseReservation) TableName() string {
	return "purchase_reservations"
}
