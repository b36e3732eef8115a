package market

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wavemint/marketplace/internal/domain"
	"github.com/wavemint/marketplace/internal/logger"
	"github.com/wavemint/marketplace/internal/store/schema"
	"github.com/wavemint/marketplace/internal/xrpl"
)

// CheckAvailability reports whether a purchasable unit exists for the
// release (and optionally a specific track), and from which source. Sold
// out is a success-shaped answer, not an error.
func (s *Service) CheckAvailability(ctx context.Context, releaseID uint64, trackID *uint64) (*domain.Availability, error) {
	release, err := s.loadRelease(ctx, releaseID)
	if err != nil {
		return nil, err
	}

	track, err := resolveTrack(release, trackID)
	if err != nil {
		return nil, err
	}

	if release.MintRegime() == domain.RegimeLazyMint {
		return s.lazyAvailability(release, track), nil
	}
	return s.legacyAvailability(ctx, release, track)
}

// lazyAvailability reports remaining mint headroom for a lazy-mint release
func (s *Service) lazyAvailability(release *schema.Release, track *schema.Track) *domain.Availability {
	remaining := release.TotalEditions - track.SoldCount
	if remaining <= 0 {
		return &domain.Availability{SoldOut: true}
	}
	return &domain.Availability{
		Available:      true,
		AvailableCount: remaining,
		Source:         domain.SourceLazyMint,
		Price:          release.PriceSong,
	}
}

// legacyAvailability looks for a pre-minted unit, first in the database,
// then in the platform wallet on the ledger.
func (s *Service) legacyAvailability(ctx context.Context, release *schema.Release, track *schema.Track) (*domain.Availability, error) {
	nfts, err := s.store.GetAvailableNFTs(ctx, track.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up available NFTs: %w", err)
	}
	if len(nfts) > 0 {
		return &domain.Availability{
			Available:      true,
			AvailableCount: len(nfts),
			Source:         domain.SourceLegacyDB,
			Price:          release.PriceSong,
		}, nil
	}

	matches, err := s.untrackedPlatformNFTs(ctx, track)
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		return &domain.Availability{
			Available:      true,
			AvailableCount: len(matches),
			Source:         domain.SourceLegacyOnChain,
			Price:          release.PriceSong,
		}, nil
	}

	return &domain.Availability{SoldOut: true}, nil
}

// untrackedPlatformNFTs queries the ledger for platform-owned NFTs whose
// URI matches the track's metadata. The session is opened and closed per
// call; availability checks do not share the purchase session.
func (s *Service) untrackedPlatformNFTs(ctx context.Context, track *schema.Track) ([]xrpl.AccountNFT, error) {
	uri := track.URI()
	if uri == "" {
		return nil, nil
	}

	ledger, err := s.dialer.Dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger session: %w", err)
	}
	defer ledger.Close()

	return matchingPlatformNFTs(ctx, ledger, s.cfg.PlatformAddress, uri, track.ID)
}

// matchingPlatformNFTs filters the platform account's on-chain NFTs down
// to those carrying the track's URI
func matchingPlatformNFTs(ctx context.Context, ledger xrpl.Ledger, platformAddress, uri string, trackID uint64) ([]xrpl.AccountNFT, error) {
	nfts, err := ledger.AccountNFTs(ctx, platformAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to query platform NFTs: %w", err)
	}

	matches := make([]xrpl.AccountNFT, 0)
	for _, nft := range nfts {
		if nft.URI == uri {
			matches = append(matches, nft)
		}
	}

	logger.Debug("matched platform NFTs against track metadata",
		zap.Uint64("track_id", trackID),
		zap.Int("on_chain", len(nfts)),
		zap.Int("matched", len(matches)),
	)
	return matches, nil
}
