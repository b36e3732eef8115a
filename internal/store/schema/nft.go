package schema

import "time"

// NFTStatus represents the lifecycle of a tracked NFT. Valid transitions
// are available → pending → sold, plus pending → available on rollback.
type NFTStatus string

const (
	// NFTStatusAvailable means the NFT is purchasable
	NFTStatusAvailable NFTStatus = "available"
	// NFTStatusPending means the NFT is reserved by an in-flight purchase
	NFTStatusPending NFTStatus = "pending"
	// NFTStatusSold means the NFT has been transferred to a buyer
	NFTStatusSold NFTStatus = "sold"
)

// NFT represents the nfts table - the database's mirror of an on-ledger
// NFT
type NFT struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenID is the on-chain NFToken ID (nil until minted)
	TokenID *string `gorm:"column:token_id;type:text;index"`
	// ReleaseID is the owning release
	ReleaseID uint64 `gorm:"column:release_id;not null;index"`
	// TrackID is the owning track
	TrackID uint64 `gorm:"column:track_id;not null;index:idx_nfts_track_status,priority:1"`
	// EditionNumber is 1-based, assigned from the count of prior sales at
	// mint time, not from mint order
	EditionNumber int `gorm:"column:edition_number;not null"`
	// OwnerAddress is the current owner (platform account until sold)
	OwnerAddress string `gorm:"column:owner_address;not null;type:text"`
	// Status is the reservation state (available, pending, sold)
	Status    NFTStatus  `gorm:"column:status;not null;type:text;index:idx_nfts_track_status,priority:2"`
	SoldAt    *time.Time `gorm:"column:sold_at"`
	CreatedAt time.Time  `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time  `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the NFT model
func (NFT) TableName() string {
	return "nfts"
}
