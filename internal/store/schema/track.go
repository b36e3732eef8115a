package schema

import "time"

// Track represents the tracks table - a single song belonging to a release
type Track struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ReleaseID is the owning release
	ReleaseID uint64 `gorm:"column:release_id;not null;index"`
	// Title is the track title
	Title string `gorm:"column:title;not null;type:text"`
	// MetadataCID is the content-addressed metadata identifier; the NFT URI
	// is built as ipfs://<cid>
	MetadataCID string `gorm:"column:metadata_cid;type:text;index"`
	// SoldCount is the number of confirmed sales for this track
	SoldCount int `gorm:"column:sold_count;not null;default:0"`
	// MintedCount is the number of NFTs minted for this track
	MintedCount int `gorm:"column:minted_count;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Track model
func (Track) TableName() string {
	return "tracks"
}

// URI returns the NFT content URI for the track, or "" when the track has
// no metadata CID.
func (t *Track) URI() string {
	if t.MetadataCID == "" {
		return ""
	}
	return "ipfs://" + t.MetadataCID
}
