package schema

import "time"

// Sale represents the sales table - an immutable append-only record of a
// completed transfer. Rows are created by the settlement confirmer and
// never updated or deleted.
type Sale struct {
	// ID is a generated UUID
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ReleaseID is the sold release
	ReleaseID uint64 `gorm:"column:release_id;not null;index"`
	// TrackID is the sold track
	TrackID uint64 `gorm:"column:track_id;not null;index"`
	// BuyerAddress is the buyer's XRPL account
	BuyerAddress string `gorm:"column:buyer_address;not null;type:text;index"`
	// SellerAddress is the artist's XRPL account
	SellerAddress string `gorm:"column:seller_address;not null;type:text"`
	// TokenID is the transferred NFToken ID
	TokenID string `gorm:"column:token_id;not null;type:text"`
	// EditionNumber is recomputed at confirm time from prior sales
	EditionNumber int `gorm:"column:edition_number;not null"`
	// PriceDrops is the sale price in drops
	PriceDrops string `gorm:"column:price_drops;not null;type:text"`
	// PlatformFeeDrops is the platform's cut in drops
	PlatformFeeDrops string `gorm:"column:platform_fee_drops;not null;type:text"`
	// SettlementTxHash is the buyer's accept-offer transaction hash
	SettlementTxHash string `gorm:"column:settlement_tx_hash;not null;type:text"`
	CreatedAt        time.Time `gorm:"column:created_at;not null;default:now()"`
}

// TableName specifies the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
