package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wavemint/marketplace/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a
// GORM database connection. Zero values fall back to safe defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// GetReleaseWithTracks retrieves a release with its tracks, or nil if absent
func (s *pgStore) GetReleaseWithTracks(ctx context.Context, releaseID uint64) (*schema.Release, error) {
	var release schema.Release
	err := s.db.WithContext(ctx).
		Preload("Tracks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tracks.id ASC")
		}).
		Where("id = ?", releaseID).
		First(&release).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get release: %w", err)
	}
	return &release, nil
}

// GetAvailableNFTs retrieves available NFT records for a track, oldest
// edition first
func (s *pgStore) GetAvailableNFTs(ctx context.Context, trackID uint64) ([]schema.NFT, error) {
	var nfts []schema.NFT
	err := s.db.WithContext(ctx).
		Where("track_id = ? AND status = ?", trackID, schema.NFTStatusAvailable).
		Order("edition_number ASC").
		Find(&nfts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get available nfts: %w", err)
	}
	return nfts, nil
}

// ReserveNFT atomically moves an NFT record from available to pending. The
// conditional update is the system's only mutual-exclusion primitive: zero
// rows affected means another purchase took the unit first.
func (s *pgStore) ReserveNFT(ctx context.Context, nftID uint64) (bool, error) {
	tx := s.db.WithContext(ctx).Model(&schema.NFT{}).
		Where("id = ? AND status = ?", nftID, schema.NFTStatusAvailable).
		Updates(map[string]interface{}{
			"status":     schema.NFTStatusPending,
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return false, fmt.Errorf("failed to reserve nft: %w", tx.Error)
	}
	return tx.RowsAffected > 0, nil
}

// ReleaseNFT rolls a pending NFT record back to available
func (s *pgStore) ReleaseNFT(ctx context.Context, nftID uint64) error {
	err := s.db.WithContext(ctx).Model(&schema.NFT{}).
		Where("id = ? AND status = ?", nftID, schema.NFTStatusPending).
		Updates(map[string]interface{}{
			"status":     schema.NFTStatusAvailable,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return fmt.Errorf("failed to release nft: %w", err)
	}
	return nil
}

// CreateNFT inserts a new NFT record
func (s *pgStore) CreateNFT(ctx context.Context, nft *schema.NFT) error {
	if err := s.db.WithContext(ctx).Create(nft).Error; err != nil {
		return fmt.Errorf("failed to create nft: %w", err)
	}
	return nil
}

// RecordMint persists a freshly minted NFT as pending and bumps the track
// and release minted counts in one transaction
func (s *pgStore) RecordMint(ctx context.Context, input RecordMintInput) (*schema.NFT, error) {
	tokenID := input.TokenID
	nft := schema.NFT{
		TokenID:       &tokenID,
		ReleaseID:     input.ReleaseID,
		TrackID:       input.TrackID,
		EditionNumber: input.EditionNumber,
		OwnerAddress:  input.OwnerAddress,
		Status:        schema.NFTStatusPending,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&nft).Error; err != nil {
			return fmt.Errorf("failed to create nft: %w", err)
		}

		if err := tx.Model(&schema.Track{}).
			Where("id = ?", input.TrackID).
			Update("minted_count", gorm.Expr("minted_count + 1")).Error; err != nil {
			return fmt.Errorf("failed to update track minted count: %w", err)
		}

		if err := tx.Model(&schema.Release{}).
			Where("id = ?", input.ReleaseID).
			Update("minted_editions", gorm.Expr("minted_editions + 1")).Error; err != nil {
			return fmt.Errorf("failed to update release minted editions: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &nft, nil
}

// CountSales counts confirmed sales for a track
func (s *pgStore) CountSales(ctx context.Context, trackID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&schema.Sale{}).
		Where("track_id = ?", trackID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count sales: %w", err)
	}
	return count, nil
}

// RecordSale marks the NFT sold, bumps counts, recomputes the release
// sold_editions and appends the immutable Sale row in one transaction.
//
// The edition number is recomputed here from the count of prior sales:
// other sales may have completed between prepare and confirm, so the number
// quoted during prepare is provisional. The release's sold_editions is the
// MAX of its tracks' sold counts, not a sum ("complete-album equivalents
// sold").
func (s *pgStore) RecordSale(ctx context.Context, input RecordSaleInput) (*schema.Sale, error) {
	var sale schema.Sale

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Recompute the true edition number from prior sales
		var priorSales int64
		if err := tx.Model(&schema.Sale{}).
			Where("track_id = ?", input.TrackID).
			Count(&priorSales).Error; err != nil {
			return fmt.Errorf("failed to count prior sales: %w", err)
		}
		editionNumber := int(priorSales) + 1

		// 2. Mark the NFT record sold, keyed by token id
		now := time.Now()
		if err := tx.Model(&schema.NFT{}).
			Where("token_id = ?", input.TokenID).
			Updates(map[string]interface{}{
				"status":         schema.NFTStatusSold,
				"owner_address":  input.BuyerAddress,
				"edition_number": editionNumber,
				"sold_at":        now,
				"updated_at":     now,
			}).Error; err != nil {
			return fmt.Errorf("failed to mark nft sold: %w", err)
		}

		// 3. Increment track sold count
		if err := tx.Model(&schema.Track{}).
			Where("id = ?", input.TrackID).
			Update("sold_count", gorm.Expr("sold_count + 1")).Error; err != nil {
			return fmt.Errorf("failed to update track sold count: %w", err)
		}

		// 4. Recompute release sold_editions as MAX across its tracks
		if err := tx.Model(&schema.Release{}).
			Where("id = ?", input.ReleaseID).
			Update("sold_editions", gorm.Expr(
				"(SELECT COALESCE(MAX(sold_count), 0) FROM tracks WHERE release_id = ?)",
				input.ReleaseID)).Error; err != nil {
			return fmt.Errorf("failed to update release sold editions: %w", err)
		}

		// 5. Append the immutable sale row
		sale = schema.Sale{
			ID:               uuid.NewString(),
			ReleaseID:        input.ReleaseID,
			TrackID:          input.TrackID,
			BuyerAddress:     input.BuyerAddress,
			SellerAddress:    input.SellerAddress,
			TokenID:          input.TokenID,
			EditionNumber:    editionNumber,
			PriceDrops:       input.PriceDrops,
			PlatformFeeDrops: input.PlatformFeeDrops,
			SettlementTxHash: input.SettlementTxHash,
		}
		if err := tx.Create(&sale).Error; err != nil {
			return fmt.Errorf("failed to create sale: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &sale, nil
}

// CreateReservation persists the server-held copy of a pending sale
func (s *pgStore) CreateReservation(ctx context.Context, reservation *schema.PurchaseReservation) error {
	if err := s.db.WithContext(ctx).Create(reservation).Error; err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// GetReservation retrieves a reservation by its opaque ID, or nil if absent
// or expired as of now
func (s *pgStore) GetReservation(ctx context.Context, id string, now time.Time) (*schema.PurchaseReservation, error) {
	var reservation schema.PurchaseReservation
	err := s.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, now).
		First(&reservation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return &reservation, nil
}

// GetTracksByCIDs retrieves tracks (with their releases) whose metadata CID
// is in cids
func (s *pgStore) GetTracksByCIDs(ctx context.Context, cids []string) ([]TrackWithRelease, error) {
	if len(cids) == 0 {
		return []TrackWithRelease{}, nil
	}

	var tracks []schema.Track
	err := s.db.WithContext(ctx).
		Where("metadata_cid IN ?", cids).
		Find(&tracks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get tracks by CIDs: %w", err)
	}

	if len(tracks) == 0 {
		return []TrackWithRelease{}, nil
	}

	releaseIDs := make([]uint64, 0, len(tracks))
	for _, track := range tracks {
		releaseIDs = append(releaseIDs, track.ReleaseID)
	}

	var releases []schema.Release
	if err := s.db.WithContext(ctx).Where("id IN ?", releaseIDs).Find(&releases).Error; err != nil {
		return nil, fmt.Errorf("failed to get releases: %w", err)
	}

	releaseMap := make(map[uint64]schema.Release, len(releases))
	for _, release := range releases {
		releaseMap[release.ID] = release
	}

	results := make([]TrackWithRelease, 0, len(tracks))
	for _, track := range tracks {
		results = append(results, TrackWithRelease{
			Track:   track,
			Release: releaseMap[track.ReleaseID],
		})
	}

	return results, nil
}
