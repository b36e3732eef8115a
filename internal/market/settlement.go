package market

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/wavemint/marketplace/internal/domain"
	"github.com/wavemint/marketplace/internal/logger"
	"github.com/wavemint/marketplace/internal/notify"
	"github.com/wavemint/marketplace/internal/store"
	"github.com/wavemint/marketplace/internal/store/schema"
	"github.com/wavemint/marketplace/internal/xrpl"
)

// sideChannelTimeout bounds the best-effort notification and event
// publishing after a sale.
const sideChannelTimeout = 30 * time.Second

// ConfirmSale settles a purchase after the buyer accepted the sell offer
// on-chain: it records the sale with a freshly recomputed edition number,
// pays the artist their share, and fires the side-channels. Amounts and
// addresses come from the server-held reservation, never from the client.
//
// Confirming twice with the same transaction hash records two sales and
// double-counts sold editions; callers own calling this exactly once per
// accepted offer.
func (s *Service) ConfirmSale(ctx context.Context, reservationID string, acceptTxHash string) (*schema.Sale, error) {
	reservation, err := s.store.GetReservation(ctx, reservationID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to load reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, domain.ErrReservationNotFound)
	}

	sale, err := s.store.RecordSale(ctx, store.RecordSaleInput{
		ReleaseID:        reservation.ReleaseID,
		TrackID:          reservation.TrackID,
		TokenID:          reservation.TokenID,
		BuyerAddress:     reservation.BuyerAddress,
		SellerAddress:    reservation.ArtistAddress,
		PriceDrops:       reservation.PriceDrops,
		PlatformFeeDrops: reservation.PlatformFeeDrops,
		SettlementTxHash: acceptTxHash,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	logger.InfoCtx(ctx, "sale recorded",
		zap.String("sale_id", sale.ID),
		zap.Uint64("release_id", sale.ReleaseID),
		zap.Uint64("track_id", sale.TrackID),
		zap.Int("edition_number", sale.EditionNumber),
		zap.String("settlement_tx", acceptTxHash),
	)

	// The sale stands even if the payout fails; the operator reconciles
	// unpaid artist shares from the sales table
	s.payArtist(ctx, sale)

	s.announceSale(sale)

	return sale, nil
}

// payArtist forwards the artist's share (price minus platform fee) from
// the platform account
func (s *Service) payArtist(ctx context.Context, sale *schema.Sale) {
	price, err := strconv.ParseUint(sale.PriceDrops, 10, 64)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("sale_id", sale.ID),
			zap.String("message", "invalid sale price, artist payout skipped"))
		return
	}
	fee, err := strconv.ParseUint(sale.PlatformFeeDrops, 10, 64)
	if err != nil || fee > price {
		logger.ErrorCtx(ctx, err, zap.String("sale_id", sale.ID),
			zap.String("message", "invalid platform fee, artist payout skipped"))
		return
	}

	ledger, err := s.dialer.Dial(ctx)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("sale_id", sale.ID),
			zap.String("message", "failed to open ledger session for artist payout"))
		return
	}
	defer ledger.Close()

	res, err := ledger.SendPayment(ctx, xrpl.PaymentParams{
		Destination: sale.SellerAddress,
		AmountDrops: price - fee,
		Memo:        "Sale payout, edition #" + strconv.Itoa(sale.EditionNumber),
	})
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("sale_id", sale.ID),
			zap.String("artist", sale.SellerAddress),
			zap.String("message", "artist payout failed"))
		return
	}
	if !res.Success() {
		logger.ErrorCtx(ctx, nil, zap.String("sale_id", sale.ID),
			zap.String("artist", sale.SellerAddress),
			zap.String("result_code", res.ResultCode),
			zap.String("message", "artist payout rejected by ledger"))
		return
	}

	logger.InfoCtx(ctx, "artist paid",
		zap.String("sale_id", sale.ID),
		zap.String("artist", sale.SellerAddress),
		zap.Uint64("amount_drops", price-fee),
		zap.String("tx_hash", res.Hash))
}

// announceSale fires the best-effort side-channels: the chat webhook and
// the JetStream sale event. Failures are logged and discarded; they never
// roll back a sale.
func (s *Service) announceSale(sale *schema.Sale) {
	ctx, cancel := context.WithTimeout(context.Background(), sideChannelTimeout)
	defer cancel()

	release, err := s.store.GetReleaseWithTracks(ctx, sale.ReleaseID)
	if err != nil || release == nil {
		logger.Error(err, zap.String("sale_id", sale.ID),
			zap.String("message", "failed to load release for sale announcement"))
		return
	}

	var track *schema.Track
	for i := range release.Tracks {
		if release.Tracks[i].ID == sale.TrackID {
			track = &release.Tracks[i]
			break
		}
	}
	if track == nil {
		logger.Warn("sale references unknown track, announcement skipped",
			zap.String("sale_id", sale.ID), zap.Uint64("track_id", sale.TrackID))
		return
	}

	priceDrops, _ := strconv.ParseUint(sale.PriceDrops, 10, 64)
	if err := s.notifier.NotifySale(ctx, notify.SaleNotification{
		ReleaseTitle:  release.Title,
		TrackTitle:    track.Title,
		ArtistName:    release.ArtistName,
		EditionNumber: sale.EditionNumber,
		TotalEditions: release.TotalEditions,
		SoldCount:     track.SoldCount,
		PriceXRP:      xrpl.DropsToXRP(priceDrops),
		BuyerAddress:  sale.BuyerAddress,
	}); err != nil {
		logger.Warn("sale notification failed", zap.String("sale_id", sale.ID), zap.Error(err))
	}

	if s.publisher == nil {
		return
	}
	event := &domain.SaleEvent{
		EventID:       ulid.Make().String(),
		SaleID:        sale.ID,
		ReleaseID:     sale.ReleaseID,
		TrackID:       sale.TrackID,
		TokenID:       sale.TokenID,
		BuyerAddress:  sale.BuyerAddress,
		ArtistAddress: sale.SellerAddress,
		EditionNumber: sale.EditionNumber,
		PriceDrops:    sale.PriceDrops,
		Timestamp:     sale.CreatedAt,
	}
	if err := s.publisher.PublishSale(ctx, event); err != nil {
		logger.Warn("sale event publish failed", zap.String("sale_id", sale.ID), zap.Error(err))
	}
}
