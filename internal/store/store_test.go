package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wavemint/marketplace/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// rawDB exposes the underlying connection so tests can seed rows the Store
// interface deliberately has no writers for (releases, tracks)
func rawDB(t *testing.T, s Store) *gorm.DB {
	pg, ok := s.(*pgStore)
	require.True(t, ok, "store tests require the PostgreSQL implementation")
	return pg.db
}

// seedRelease inserts a live lazy-mint release with one track per title
func seedRelease(t *testing.T, db *gorm.DB, title string, totalEditions int, trackTitles ...string) *schema.Release {
	release := &schema.Release{
		Title:          title,
		ArtistAddress:  "rARTISTxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		ArtistName:     "Test Artist",
		PriceSong:      "5",
		TotalEditions:  totalEditions,
		RoyaltyPercent: 5,
		MintFeePaid:    true,
		Status:         schema.ReleaseStatusLive,
	}
	require.NoError(t, db.Create(release).Error)

	for i, trackTitle := range trackTitles {
		track := &schema.Track{
			ReleaseID:   release.ID,
			Title:       trackTitle,
			MetadataCID: fmt.Sprintf("bafy%s%d", title, i),
		}
		require.NoError(t, db.Create(track).Error)
		release.Tracks = append(release.Tracks, *track)
	}

	return release
}

// seedNFT inserts an NFT row in the given status
func seedNFT(t *testing.T, db *gorm.DB, release *schema.Release, track *schema.Track, edition int, status schema.NFTStatus) *schema.NFT {
	tokenID := fmt.Sprintf("000C%d%d%04d", release.ID, track.ID, edition)
	nft := &schema.NFT{
		TokenID:       &tokenID,
		ReleaseID:     release.ID,
		TrackID:       track.ID,
		EditionNumber: edition,
		OwnerAddress:  "rPLATFORMxxxxxxxxxxxxxxxxxxxxxxxxx",
		Status:        status,
	}
	require.NoError(t, db.Create(nft).Error)
	return nft
}

// seedSale inserts a confirmed sale row
func seedSale(t *testing.T, db *gorm.DB, release *schema.Release, track *schema.Track, tokenID string) *schema.Sale {
	sale := &schema.Sale{
		ID:               uuid.NewString(),
		ReleaseID:        release.ID,
		TrackID:          track.ID,
		BuyerAddress:     "rBUYERxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
		SellerAddress:    release.ArtistAddress,
		TokenID:          tokenID,
		EditionNumber:    1,
		PriceDrops:       "5000000",
		PlatformFeeDrops: "100000",
		SettlementTxHash: "SETTLEDTX",
	}
	require.NoError(t, db.Create(sale).Error)
	return sale
}

// =============================================================================
// Test: GetReleaseWithTracks
// =============================================================================

func testGetReleaseWithTracks(t *testing.T, store Store) {
	ctx := context.Background()
	db := rawDB(t, store)

	t.Run("preloads tracks in id order", func(t *testing.T) {
		seeded := seedRelease(t, db, "tides", 10, "Undertow", "Riptide", "Backwash")

		release, err := store.GetReleaseWithTracks(ctx, seeded.ID)
		require.NoError(t, err)
		require.NotNil(t, release)
		assert.Equal(t, "tides", release.Title)
		require.Len(t, release.Tracks, 3)
		assert.Equal(t, "Undertow", release.Tracks[0].Title)
		assert.Equal(t, "Riptide", release.Tracks[1].Title)
		assert.Equal(t, "Backwash", release.Tracks[2].Title)
	})

	t.Run("returns nil for unknown release", func(t *testing.T) {
		release, err := store.GetReleaseWithTracks(ctx, 999999)
		require.NoError(t, err)
		assert.Nil(t, release)
	})
}

// =============================================================================
// Test: GetAvailableNFTs
// =============================================================================

func testGetAvailableNFTs(t *testing.T, store Store) {
	ctx := context.Background()
	db := rawDB(t, store)

	release := seedRelease(t, db, "avail", 10, "Only Track")
	track := &release.Tracks[0]

	// Seed out of order and in mixed states
	seedNFT(t, db, release, track, 3, schema.NFTStatusAvailable)
	seedNFT(t, db, release, track, 1, schema.NFTStatusAvailable)
	seedNFT(t, db, release, track, 2, schema.NFTStatusSold)
	seedNFT(t, db, release, track, 4, schema.NFTStatusPending)

	nfts, err := store.GetAvailableNFTs(ctx, track.ID)
	require.NoError(t, err)
	require.Len(t, nfts, 2)
	assert.Equal(t, 1, nfts[0].EditionNumber)
	assert.Equal(t, 3, nfts[1].EditionNumber)

	t.Run("empty for track without available units", func(t *testing.T) {
		other := seedRelease(t, db, "barren", 10, "Empty Track")
		nfts, err := store.GetAvailableNFTs(ctx, other.Tracks[0].ID)
		require.NoError(t, err)
		assert.Empty(t, nfts)
	})
}

// =============================================================================
// Test: ReserveNFT / ReleaseNFT
// =============================================================================

func testReserveAndReleaseNFT(t *testing.T, store Store) {
	ctx := context.Background()
	db := rawDB(t, store)

	release := seedRelease(t, db, "reserve", 10, "Contested")
	track := &release.Tracks[0]
	nft := seedNFT(t, db, release, track, 1, schema.NFTStatusAvailable)

	t.Run("first reservation wins, second loses", func(t *testing.T) {
		reserved, err := store.ReserveNFT(ctx, nft.ID)
		require.NoError(t, err)
		assert.True(t, reserved)

		var row schema.NFT
		require.NoError(t, db.First(&row, nft.ID).Error)
		assert.Equal(t, schema.NFTStatusPending, row.Status)

		// The conditional update must refuse a unit that is no longer
		// available
		reserved, err = store.ReserveNFT(ctx, nft.ID)
		require.NoError(t, err)
		assert.False(t, reserved)
	})

	t.Run("release rolls pending back to available", func(t *testing.T) {
		require.NoError(t, store.ReleaseNFT(ctx, nft.ID))

		var row schema.NFT
		require.NoError(t, db.First(&row, nft.ID).Error)
		assert.Equal(t, schema.NFTStatusAvailable, row.Status)

		// And the unit is reservable again
		reserved, err := store.ReserveNFT(ctx, nft.ID)
		require.NoError(t, err)
		assert.True(t, reserved)
	})

	t.Run("release leaves sold units untouched", func(t *testing.T) {
		sold := seedNFT(t, db, release, track, 2, schema.NFTStatusSold)
		require.NoError(t, store.ReleaseNFT(ctx, sold.ID))

		var row schema.NFT
		require.NoError(t, db.First(&row, sold.ID).Error)
		assert.Equal(t, schema.NFTStatusSold, row.Status)
	})

	t.Run("reserving an unknown id is a lost race, not an error", func(t *testing.T) {
		reserved, err := store.ReserveNFT(ctx, 999999)
		require.NoError(t, err)
		assert.False(t, reserved)
	})
}

// =============================================================================
// Test: CreateNFT
// =============================================================================

func testCreateNFT(t *testing.T, store Store) {
	ctx := context.Background()
	db := rawDB(t, store)

	release := seedRelease(t, db, "materialize", 10, "Legacy Track")
	track := &release.Tracks[0]

	tokenID := "000C9999MATERIALIZED"
	nft := &schema.NFT{
		TokenID:       &tokenID,
		ReleaseID:     release.ID,
		TrackID:       track.ID,
		EditionNumber: 4,
		OwnerAddress:  "rPLATFORMxxxxxxxxxxxxxxxxxxxxxxxxx",
		Status:        schema.NFTStatusPending,
	}
	require.NoError(t, store.CreateNFT(ctx, nft))
	assert.NotZero(t, nft.ID)

	var row schema.NFT
	require.NoError(t, db.First(&row, nft.ID).Error)
	require.NotNil(t, row.TokenID)
	assert.Equal(t, tokenID, *row.TokenID)
	assert.Equal(t, schema.NFTStatusPending, row.Status)
	assert.Equal(t, 4, row.EditionNumber)
}

// =============================================================================
// Test: RecordMint
// =============================================================================

func testRecordMint(t *testing.T, store Store) {
	ctx := context.Background()
	db := rawDB(t, store)

	release := seedRelease(t, db, "mint", 10, "Fresh Track")
	track := &release.Tracks[0]

	nft, err := store.RecordMint(ctx, RecordMintInput{
		ReleaseID:     release.ID,
		TrackID:       track.ID,
		TokenID:       "000C1111FRESHMINT",
		EditionNumber: 1,
		OwnerAddress:  "rPLATFORMxxxxxxxxxxxxxxxxxxxxxxxxx",
	})
	require.NoError(t, err)
	require.NotNil(t, nft)
	assert.NotZero(t, nft.ID)
	assert.Equal(t, schema.NFTStatusPending, nft.Status)
	require.NotNil(t, nft.TokenID)
	assert.Equal(t, "000C1111FRESHMINT", *nft.TokenID)

	var trackRow schema.Track
	require.NoError(t, db.First(&trackRow, track.ID).Error)
	assert.Equal(t, 1, trackRow.MintedCount)

	var releaseRow schema.Release
	require.NoError(t, db.First(&releaseRow, release.ID).Error)
	assert.Equal(t, 1, releaseRow.MintedEditions)

	// A second mint keeps counting up
	_, err = store.RecordMint(ctx, RecordMintInput{
		ReleaseID:     release.ID,
		TrackID:       track.ID,
		TokenID:       "000C1112FRESHMINT",
		EditionNumber: 2,
		OwnerAddress:  "rPLATFORMxxxxxxxxxxxxxxxxxxxxxxxxx",
	})
	require.NoError(t, err)

	require.NoError(t, db.First(&trackRow, track.ID).Error)
	assert.Equal(t, 2, trackRow.MintedCount)
	require.NoError(t, db.First(&releaseRow, release.ID).Error)
	assert.Equal(t, 2, releaseRow.MintedEditions)
}

// =============================================================================
// Test: CountSales
// =============================================================================

func testCountSales(t *testing.T, store Store) {
	ctx := context.Background()
	db := rawDB(t, store)

	release := seedRelease(t, db, "count", 10, "Counted", "Uncounted")
	track := &release.Tracks[0]

	count, err := store.CountSales(ctx, track.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	seedSale(t, db, release, track, "000C0001")
	seedSale(t, db, release, track, "000C0002")
	seedSale(t, db, release, &release.Tracks[1], "000C0003")

	count, err = store.CountSales(ctx, track.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

// =============================================================================
// Test: RecordSale
// =============================================================================

func testRecordSale(t *testing.T, store Store) {
	ctx := context.Background()
	db := rawDB(t, store)

	release := seedRelease(t, db, "sale", 10, "Hit Single", "B-Side")
	track := &release.Tracks[0]

	t.Run("recomputes edition from prior sales", func(t *testing.T) {
		// Two sales already settled for this track; the next edition is 3
		// regardless of what was quoted at prepare time
		seedSale(t, db, release, track, "000C0001")
		seedSale(t, db, release, track, "000C0002")

		nft := seedNFT(t, db, release, track, 1, schema.NFTStatusPending)

		sale, err := store.RecordSale(ctx, RecordSaleInput{
			ReleaseID:        release.ID,
			TrackID:          track.ID,
			TokenID:          *nft.TokenID,
			BuyerAddress:     "rBUYERxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
			SellerAddress:    release.ArtistAddress,
			PriceDrops:       "5000000",
			PlatformFeeDrops: "100000",
			SettlementTxHash: "ACCEPTTX",
		})
		require.NoError(t, err)
		require.NotNil(t, sale)
		assert.Equal(t, 3, sale.EditionNumber)
		assert.NotEmpty(t, sale.ID)
		assert.Equal(t, "ACCEPTTX", sale.SettlementTxHash)

		// The NFT row is marked sold and handed to the buyer
		var row schema.NFT
		require.NoError(t, db.First(&row, nft.ID).Error)
		assert.Equal(t, schema.NFTStatusSold, row.Status)
		assert.Equal(t, "rBUYERxxxxxxxxxxxxxxxxxxxxxxxxxxxx", row.OwnerAddress)
		assert.Equal(t, 3, row.EditionNumber)
		require.NotNil(t, row.SoldAt)
	})

	t.Run("sold_editions is the max across tracks, not the sum", func(t *testing.T) {
		// Hit Single now has 3 sales counted above plus the sold_count bump;
		// selling one B-Side copy must not push sold_editions past the
		// busiest track
		bSide := &release.Tracks[1]
		nft := seedNFT(t, db, release, bSide, 1, schema.NFTStatusPending)

		sale, err := store.RecordSale(ctx, RecordSaleInput{
			ReleaseID:        release.ID,
			TrackID:          bSide.ID,
			TokenID:          *nft.TokenID,
			BuyerAddress:     "rBUYERxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
			SellerAddress:    release.ArtistAddress,
			PriceDrops:       "5000000",
			PlatformFeeDrops: "100000",
			SettlementTxHash: "ACCEPTTX2",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, sale.EditionNumber)

		var trackRow schema.Track
		require.NoError(t, db.First(&trackRow, track.ID).Error)
		assert.Equal(t, 1, trackRow.SoldCount)
		require.NoError(t, db.First(&trackRow, bSide.ID).Error)
		assert.Equal(t, 1, trackRow.SoldCount)

		var releaseRow schema.Release
		require.NoError(t, db.First(&releaseRow, release.ID).Error)
		assert.Equal(t, 1, releaseRow.SoldEditions)
	})

	t.Run("every confirm appends a fresh sale row", func(t *testing.T) {
		// Confirming twice for the same token double-counts. The rows are
		// append-only, so both survive with distinct editions.
		other := seedRelease(t, db, "double", 10, "Replayed")
		otherTrack := &other.Tracks[0]
		nft := seedNFT(t, db, other, otherTrack, 1, schema.NFTStatusPending)

		input := RecordSaleInput{
			ReleaseID:        other.ID,
			TrackID:          otherTrack.ID,
			TokenID:          *nft.TokenID,
			BuyerAddress:     "rBUYERxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
			SellerAddress:    other.ArtistAddress,
			PriceDrops:       "5000000",
			PlatformFeeDrops: "100000",
			SettlementTxHash: "REPLAYTX",
		}

		first, err := store.RecordSale(ctx, input)
		require.NoError(t, err)
		second, err := store.RecordSale(ctx, input)
		require.NoError(t, err)

		assert.Equal(t, 1, first.EditionNumber)
		assert.Equal(t, 2, second.EditionNumber)
		assert.NotEqual(t, first.ID, second.ID)

		count, err := store.CountSales(ctx, otherTrack.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})
}

// =============================================================================
// Test: Reservations
// =============================================================================

func testReservations(t *testing.T, store Store) {
	ctx := context.Background()
	db := rawDB(t, store)

	release := seedRelease(t, db, "hold", 10, "Held Track")
	track := &release.Tracks[0]
	nft := seedNFT(t, db, release, track, 1, schema.NFTStatusPending)

	now := time.Now()

	t.Run("round trip within the TTL", func(t *testing.T) {
		reservation := &schema.PurchaseReservation{
			ID:               uuid.NewString(),
			NFTID:            nft.ID,
			ReleaseID:        release.ID,
			TrackID:          track.ID,
			TokenID:          *nft.TokenID,
			BuyerAddress:     "rBUYERxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
			ArtistAddress:    release.ArtistAddress,
			EditionNumber:    1,
			PriceDrops:       "5000000",
			PlatformFeeDrops: "100000",
			ExpiresAt:        now.Add(10 * time.Minute),
		}
		require.NoError(t, store.CreateReservation(ctx, reservation))

		got, err := store.GetReservation(ctx, reservation.ID, now)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, reservation.TokenID, got.TokenID)
		assert.Equal(t, reservation.PriceDrops, got.PriceDrops)
		assert.Equal(t, reservation.ArtistAddress, got.ArtistAddress)
	})

	t.Run("expired reservations are invisible", func(t *testing.T) {
		reservation := &schema.PurchaseReservation{
			ID:               uuid.NewString(),
			NFTID:            nft.ID,
			ReleaseID:        release.ID,
			TrackID:          track.ID,
			TokenID:          *nft.TokenID,
			BuyerAddress:     "rBUYERxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
			ArtistAddress:    release.ArtistAddress,
			EditionNumber:    1,
			PriceDrops:       "5000000",
			PlatformFeeDrops: "100000",
			ExpiresAt:        now.Add(-time.Minute),
		}
		require.NoError(t, store.CreateReservation(ctx, reservation))

		got, err := store.GetReservation(ctx, reservation.ID, now)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown id returns nil", func(t *testing.T) {
		got, err := store.GetReservation(ctx, uuid.NewString(), now)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

// =============================================================================
// Test: GetTracksByCIDs
// =============================================================================

func testGetTracksByCIDs(t *testing.T, store Store) {
	ctx := context.Background()
	db := rawDB(t, store)

	release := seedRelease(t, db, "lookup", 10, "Findable", "Other")

	t.Run("matches tracks and attaches releases", func(t *testing.T) {
		cid := release.Tracks[0].MetadataCID
		results, err := store.GetTracksByCIDs(ctx, []string{cid, "bafyunknown"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Findable", results[0].Track.Title)
		assert.Equal(t, "lookup", results[0].Release.Title)
	})

	t.Run("empty input short-circuits", func(t *testing.T) {
		results, err := store.GetTracksByCIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("no matches yields an empty slice", func(t *testing.T) {
		results, err := store.GetTracksByCIDs(ctx, []string{"bafynothere"})
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

// =============================================================================
// Test Runner - runs all tests against a given store implementation
// =============================================================================

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"GetReleaseWithTracks", testGetReleaseWithTracks},
		{"GetAvailableNFTs", testGetAvailableNFTs},
		{"ReserveAndReleaseNFT", testReserveAndReleaseNFT},
		{"CreateNFT", testCreateNFT},
		{"RecordMint", testRecordMint},
		{"CountSales", testCountSales},
		{"RecordSale", testRecordSale},
		{"Reservations", testReservations},
		{"GetTracksByCIDs", testGetTracksByCIDs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
