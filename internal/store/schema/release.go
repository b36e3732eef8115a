package schema

import (
	"time"

	"github.com/wavemint/marketplace/internal/domain"
)

// ReleaseStatus represents the publication lifecycle of a release
type ReleaseStatus string

const (
	// ReleaseStatusDraft means the release has been created but not launched
	ReleaseStatusDraft ReleaseStatus = "draft"
	// ReleaseStatusLive means the release is launched and purchasable
	ReleaseStatusLive ReleaseStatus = "live"
)

// Release represents the releases table - an artist's publication of one or
// more tracks as purchasable NFT editions
type Release struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Title is the release title
	Title string `gorm:"column:title;not null;type:text"`
	// ArtistAddress is the artist's XRPL account, paid 98% of every sale
	ArtistAddress string `gorm:"column:artist_address;not null;type:text;index"`
	// ArtistName is the display name used in notifications
	ArtistName string `gorm:"column:artist_name;type:text"`
	// PriceSong is the per-track price in XRP (decimal string)
	PriceSong string `gorm:"column:price_song;not null;type:text"`
	// PriceAlbum is the whole-album price in XRP (decimal string)
	PriceAlbum string `gorm:"column:price_album;type:text"`
	// TotalEditions is the edition cap per track
	TotalEditions int `gorm:"column:total_editions;not null"`
	// SoldEditions is the maximum sold_count across the release's tracks
	SoldEditions int `gorm:"column:sold_editions;not null;default:0"`
	// MintedEditions counts NFTs minted across the release
	MintedEditions int `gorm:"column:minted_editions;not null;default:0"`
	// RoyaltyPercent is the artist royalty applied to secondary transfers
	RoyaltyPercent int `gorm:"column:royalty_percent;not null;default:5"`
	// MintFeePaid marks the release as lazy-mint enabled
	MintFeePaid bool `gorm:"column:mint_fee_paid;not null;default:false"`
	// Status is the publication state (draft, live)
	Status ReleaseStatus `gorm:"column:status;not null;type:text;default:'draft'"`
	// IsMinted marks legacy releases whose editions were pre-minted
	IsMinted bool `gorm:"column:is_minted;not null;default:false"`
	// LegacySellOfferIndex is the sell-offer ledger index recorded for
	// pre-minted releases at launch time (empty for lazy-mint releases)
	LegacySellOfferIndex string `gorm:"column:legacy_sell_offer_index;type:text"`
	// CreatedAt is the publish timestamp
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	Tracks []Track `gorm:"foreignKey:ReleaseID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Release model
func (Release) TableName() string {
	return "releases"
}

// MintRegime resolves the release's minting regime once, instead of
// re-deriving it from optional fields at every call site.
func (r *Release) MintRegime() domain.MintRegime {
	if r.MintFeePaid || r.Status == ReleaseStatusLive {
		return domain.RegimeLazyMint
	}
	return domain.RegimeLegacy
}

// Launched reports whether the release is purchasable at all. A release
// that fails this gate is "not yet launched" rather than sold out.
func (r *Release) Launched() bool {
	return r.MintFeePaid || r.Status == ReleaseStatusLive || r.IsMinted || r.LegacySellOfferIndex != ""
}
