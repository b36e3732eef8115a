package market

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wavemint/marketplace/internal/domain"
	"github.com/wavemint/marketplace/internal/logger"
	"github.com/wavemint/marketplace/internal/store/schema"
	"github.com/wavemint/marketplace/internal/xrpl"
)

// sellOfferAmountDrops is the symbolic amount on brokered sell offers. The
// buyer has already paid the quoted price before the prepare step; the
// offer only needs to be acceptable, not to charge again.
const sellOfferAmountDrops = 1

// PreparePurchase reserves a unit for the buyer, minting one on demand when
// the release is lazy-mint, and hands back a sell offer restricted to the
// buyer's address. Any failure after a unit has been reserved rolls the
// reservation back and refunds the buyer; the returned error then carries
// the refund outcome as a *PurchaseFailure.
func (s *Service) PreparePurchase(ctx context.Context, releaseID uint64, trackID *uint64, buyerAddress string) (*domain.PurchaseResult, error) {
	release, err := s.loadRelease(ctx, releaseID)
	if err != nil {
		return nil, err
	}
	track, err := resolveTrack(release, trackID)
	if err != nil {
		return nil, err
	}
	price, fee, err := s.priceDrops(release)
	if err != nil {
		return nil, err
	}

	ledger, err := s.dialer.Dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger session: %w", err)
	}
	defer ledger.Close()

	nft, lazyMinted, err := s.acquireUnit(ctx, ledger, release, track)
	if err != nil {
		if errors.Is(err, domain.ErrSoldOut) {
			return nil, err
		}
		// A failed mint leaves no record to roll back, but the buyer has
		// already paid
		return nil, s.fail(ctx, ledger, nil, "", buyerAddress, price, err)
	}

	tokenID := ""
	if nft.TokenID != nil {
		tokenID = *nft.TokenID
	}
	if tokenID == "" {
		return nil, s.fail(ctx, ledger, nft, "", buyerAddress, price,
			fmt.Errorf("reserved NFT %d has no token ID: %w", nft.ID, domain.ErrTransferFailed))
	}

	s.cancelStaleOffers(ctx, ledger, tokenID)

	offerRes, err := ledger.CreateSellOffer(ctx, xrpl.SellOfferParams{
		TokenID:     tokenID,
		AmountDrops: sellOfferAmountDrops,
		Destination: buyerAddress,
	})
	if err != nil {
		return nil, s.fail(ctx, ledger, nft, "", buyerAddress, price,
			fmt.Errorf("%w: %v", domain.ErrTransferFailed, err))
	}
	if !offerRes.Success() {
		return nil, s.fail(ctx, ledger, nft, "", buyerAddress, price,
			fmt.Errorf("%w: ledger returned %s", domain.ErrTransferFailed, offerRes.ResultCode))
	}

	offerIndex, ok := xrpl.ExtractCreatedOfferIndex(offerRes.Meta)
	if !ok {
		return nil, s.fail(ctx, ledger, nft, "", buyerAddress, price,
			fmt.Errorf("%w: no offer index in transaction metadata", domain.ErrTransferFailed))
	}

	reservation := &schema.PurchaseReservation{
		ID:               uuid.NewString(),
		NFTID:            nft.ID,
		ReleaseID:        release.ID,
		TrackID:          track.ID,
		TokenID:          tokenID,
		BuyerAddress:     buyerAddress,
		ArtistAddress:    release.ArtistAddress,
		EditionNumber:    nft.EditionNumber,
		PriceDrops:       strconv.FormatUint(price, 10),
		PlatformFeeDrops: strconv.FormatUint(fee, 10),
		ExpiresAt:        s.now().Add(s.cfg.ReservationTTL),
	}
	if err := s.store.CreateReservation(ctx, reservation); err != nil {
		return nil, s.fail(ctx, ledger, nft, offerIndex, buyerAddress, price,
			fmt.Errorf("failed to persist reservation: %w", err))
	}

	logger.InfoCtx(ctx, "sell offer ready",
		zap.Uint64("release_id", release.ID),
		zap.Uint64("track_id", track.ID),
		zap.String("token_id", tokenID),
		zap.String("offer_index", offerIndex),
		zap.String("buyer", buyerAddress),
		zap.Bool("lazy_minted", lazyMinted),
	)

	return &domain.PurchaseResult{
		SellOfferIndex: offerIndex,
		TokenID:        tokenID,
		TxHash:         offerRes.Hash,
		LazyMinted:     lazyMinted,
		PendingSale: domain.PendingSale{
			ReservationID:    reservation.ID,
			ReleaseID:        release.ID,
			TrackID:          track.ID,
			BuyerAddress:     buyerAddress,
			ArtistAddress:    release.ArtistAddress,
			TokenID:          tokenID,
			EditionNumber:    nft.EditionNumber,
			PriceDrops:       reservation.PriceDrops,
			PlatformFeeDrops: reservation.PlatformFeeDrops,
		},
	}, nil
}

// acquireUnit reserves one purchasable unit in strict priority order: a
// tracked available record, then an untracked on-chain unit (legacy), then
// a fresh lazy mint. Reservation is a conditional update; losing the race
// for one candidate moves on to the next.
func (s *Service) acquireUnit(ctx context.Context, ledger xrpl.Ledger, release *schema.Release, track *schema.Track) (*schema.NFT, bool, error) {
	candidates, err := s.store.GetAvailableNFTs(ctx, track.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up available NFTs: %w", err)
	}
	for i := range candidates {
		if candidates[i].TokenID == nil || *candidates[i].TokenID == "" {
			continue
		}
		reserved, err := s.store.ReserveNFT(ctx, candidates[i].ID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to reserve NFT %d: %w", candidates[i].ID, err)
		}
		if reserved {
			candidates[i].Status = schema.NFTStatusPending
			return &candidates[i], false, nil
		}
		// Lost the race for this candidate, try the next one
	}

	if release.MintRegime() == domain.RegimeLazyMint {
		if track.SoldCount >= release.TotalEditions {
			return nil, false, fmt.Errorf("track %d: %w", track.ID, domain.ErrSoldOut)
		}
		nft, err := s.mintOne(ctx, ledger, release, track)
		if err != nil {
			return nil, false, err
		}
		return nft, true, nil
	}

	nft, err := s.materializeOnChainUnit(ctx, ledger, release, track)
	if err != nil {
		return nil, false, err
	}
	return nft, false, nil
}

// materializeOnChainUnit tracks a platform-held legacy NFT in the database,
// directly in pending state, so the rest of the flow treats it like any
// reserved unit.
func (s *Service) materializeOnChainUnit(ctx context.Context, ledger xrpl.Ledger, release *schema.Release, track *schema.Track) (*schema.NFT, error) {
	uri := track.URI()
	if uri == "" {
		return nil, fmt.Errorf("track %d: %w", track.ID, domain.ErrSoldOut)
	}

	matches, err := matchingPlatformNFTs(ctx, ledger, s.cfg.PlatformAddress, uri, track.ID)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("track %d: %w", track.ID, domain.ErrSoldOut)
	}

	priorSales, err := s.store.CountSales(ctx, track.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count sales: %w", err)
	}

	tokenID := matches[0].TokenID
	nft := &schema.NFT{
		TokenID:       &tokenID,
		ReleaseID:     release.ID,
		TrackID:       track.ID,
		EditionNumber: int(priorSales) + 1,
		OwnerAddress:  s.cfg.PlatformAddress,
		Status:        schema.NFTStatusPending,
	}
	if err := s.store.CreateNFT(ctx, nft); err != nil {
		return nil, fmt.Errorf("failed to materialize on-chain NFT: %w", err)
	}

	logger.InfoCtx(ctx, "materialized untracked on-chain NFT",
		zap.Uint64("track_id", track.ID),
		zap.String("token_id", tokenID),
	)
	return nft, nil
}

// cancelStaleOffers cancels existing platform-owned sell offers for the
// token. Best-effort: lookup or cancel failures are logged and discarded,
// because the fresh offer creation succeeds or fails on its own terms.
func (s *Service) cancelStaleOffers(ctx context.Context, ledger xrpl.Ledger, tokenID string) {
	offers, err := ledger.SellOffers(ctx, tokenID)
	if err != nil {
		logger.WarnCtx(ctx, "failed to look up stale sell offers, continuing",
			zap.String("token_id", tokenID), zap.Error(err))
		return
	}

	stale := make([]string, 0, len(offers))
	for _, offer := range offers {
		if offer.Owner == s.cfg.PlatformAddress {
			stale = append(stale, offer.OfferIndex)
		}
	}
	if len(stale) == 0 {
		return
	}

	if _, err := ledger.CancelOffers(ctx, stale); err != nil {
		logger.WarnCtx(ctx, "failed to cancel stale sell offers, continuing",
			zap.String("token_id", tokenID),
			zap.Int("offer_count", len(stale)),
			zap.Error(err))
		return
	}

	logger.InfoCtx(ctx, "canceled stale sell offers",
		zap.String("token_id", tokenID), zap.Int("offer_count", len(stale)))
}

// fail rolls back the reserved unit (when there is one), cancels the sell
// offer created for the buyer (when one exists), refunds the buyer and
// wraps the cause so the handler can report the refund outcome.
func (s *Service) fail(ctx context.Context, ledger xrpl.Ledger, nft *schema.NFT, offerIndex string, buyerAddress string, priceDrops uint64, cause error) error {
	if offerIndex != "" {
		if _, err := ledger.CancelOffers(ctx, []string{offerIndex}); err != nil {
			logger.WarnCtx(ctx, "failed to cancel orphaned sell offer",
				zap.String("offer_index", offerIndex), zap.Error(err))
		}
	}

	if nft != nil {
		if err := s.store.ReleaseNFT(ctx, nft.ID); err != nil {
			logger.ErrorCtx(ctx, err, zap.Uint64("nft_id", nft.ID),
				zap.String("message", "failed to roll back NFT reservation"))
		}
	}

	refundHash := s.Refund(ctx, ledger, buyerAddress, priceDrops, cause.Error())
	return NewPurchaseFailure(cause, refundHash != "", refundHash)
}
