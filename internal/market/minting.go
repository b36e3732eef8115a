package market

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/wavemint/marketplace/internal/domain"
	"github.com/wavemint/marketplace/internal/logger"
	"github.com/wavemint/marketplace/internal/store"
	"github.com/wavemint/marketplace/internal/store/schema"
	"github.com/wavemint/marketplace/internal/xrpl"
)

// mintOne mints a single edition on demand inside an already-open ledger
// session and records it as pending. The edition number anticipates the
// number the unit will carry when sold: one more than the sales recorded so
// far, not the mint order.
func (s *Service) mintOne(ctx context.Context, ledger xrpl.Ledger, release *schema.Release, track *schema.Track) (*schema.NFT, error) {
	uri := track.URI()
	if uri == "" {
		return nil, fmt.Errorf("track %d has no metadata CID: %w", track.ID, domain.ErrInvalidState)
	}

	res, err := ledger.MintToken(ctx, xrpl.MintParams{
		URI:                    uri,
		TransferFeeBasisPoints: s.royaltyBasisPoints(release),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMintFailed, err)
	}
	if !res.Success() {
		return nil, fmt.Errorf("%w: ledger returned %s", domain.ErrMintFailed, res.ResultCode)
	}

	tokenID, ok := xrpl.ExtractNewTokenID(res.Meta)
	if !ok {
		return nil, fmt.Errorf("%w: no token ID in transaction metadata", domain.ErrMintFailed)
	}

	priorSales, err := s.store.CountSales(ctx, track.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count sales: %w", err)
	}

	nft, err := s.store.RecordMint(ctx, store.RecordMintInput{
		ReleaseID:     release.ID,
		TrackID:       track.ID,
		TokenID:       tokenID,
		EditionNumber: int(priorSales) + 1,
		OwnerAddress:  s.cfg.PlatformAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record mint: %w", err)
	}

	logger.InfoCtx(ctx, "minted edition on demand",
		zap.Uint64("release_id", release.ID),
		zap.Uint64("track_id", track.ID),
		zap.String("token_id", tokenID),
		zap.Int("edition_number", nft.EditionNumber),
		zap.String("tx_hash", res.Hash),
	)
	return nft, nil
}
