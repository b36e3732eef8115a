package market

import (
	"context"
	"fmt"
	"time"

	"github.com/wavemint/marketplace/internal/domain"
	"github.com/wavemint/marketplace/internal/messaging"
	"github.com/wavemint/marketplace/internal/notify"
	"github.com/wavemint/marketplace/internal/store"
	"github.com/wavemint/marketplace/internal/store/schema"
	"github.com/wavemint/marketplace/internal/xrpl"
)

// Config holds the purchase-flow tunables
type Config struct {
	// PlatformAddress is the ledger account that custodies unsold NFTs and
	// brokers every sale
	PlatformAddress string
	// PlatformFeePercent is the platform's cut of every sale
	PlatformFeePercent int
	// DefaultRoyaltyPercent applies when a release has no royalty set
	DefaultRoyaltyPercent int
	// ReservationTTL bounds how long a prepare-step reservation is honored
	ReservationTTL time.Duration
}

// Service brokers purchases between the catalog database and the ledger:
// it resolves availability, lazily mints editions, hands priced sell offers
// to buyers, settles confirmed sales and compensates failures with refunds.
type Service struct {
	store     store.Store
	dialer    xrpl.Dialer
	notifier  notify.Notifier
	publisher messaging.Publisher
	cfg       Config
	now       func() time.Time
}

// NewService creates a market service. publisher may be nil when event
// publishing is disabled.
func NewService(
	s store.Store,
	dialer xrpl.Dialer,
	notifier notify.Notifier,
	publisher messaging.Publisher,
	cfg Config,
) *Service {
	return &Service{
		store:     s,
		dialer:    dialer,
		notifier:  notifier,
		publisher: publisher,
		cfg:       cfg,
		now:       time.Now,
	}
}

// PurchaseFailure is a terminal purchase failure carrying the outcome of
// the compensating refund, so callers can tell the buyer whether their XRP
// is already on its way back.
type PurchaseFailure struct {
	// Refunded reports whether the compensating refund transaction succeeded
	Refunded bool
	// RefundTxHash is the refund transaction hash, empty when the refund
	// failed or was not attempted
	RefundTxHash string

	err error
}

// NewPurchaseFailure wraps cause with the outcome of the compensating
// refund
func NewPurchaseFailure(cause error, refunded bool, refundTxHash string) *PurchaseFailure {
	return &PurchaseFailure{Refunded: refunded, RefundTxHash: refundTxHash, err: cause}
}

func (f *PurchaseFailure) Error() string {
	return f.err.Error()
}

func (f *PurchaseFailure) Unwrap() error {
	return f.err
}

// loadRelease retrieves a launched release with its tracks
func (s *Service) loadRelease(ctx context.Context, releaseID uint64) (*schema.Release, error) {
	release, err := s.store.GetReleaseWithTracks(ctx, releaseID)
	if err != nil {
		return nil, err
	}
	if release == nil {
		return nil, fmt.Errorf("release %d: %w", releaseID, domain.ErrNotFound)
	}
	if !release.Launched() {
		return nil, fmt.Errorf("release %d is not launched: %w", releaseID, domain.ErrInvalidState)
	}
	return release, nil
}

// resolveTrack picks the purchase target: the explicit track when given,
// otherwise the release's first track.
func resolveTrack(release *schema.Release, trackID *uint64) (*schema.Track, error) {
	if len(release.Tracks) == 0 {
		return nil, fmt.Errorf("release %d has no tracks: %w", release.ID, domain.ErrInvalidState)
	}
	if trackID == nil {
		return &release.Tracks[0], nil
	}
	for i := range release.Tracks {
		if release.Tracks[i].ID == *trackID {
			return &release.Tracks[i], nil
		}
	}
	return nil, fmt.Errorf("track %d not in release %d: %w", *trackID, release.ID, domain.ErrNotFound)
}

// priceDrops resolves the per-track price in drops along with the platform
// fee cut
func (s *Service) priceDrops(release *schema.Release) (price uint64, fee uint64, err error) {
	price, err = xrpl.XRPToDrops(release.PriceSong)
	if err != nil {
		return 0, 0, fmt.Errorf("release %d has an invalid price: %w", release.ID, err)
	}
	fee = price * uint64(s.cfg.PlatformFeePercent) / 100
	return price, fee, nil
}

// maxTransferFee is the largest transfer fee the ledger accepts on a mint,
// corresponding to a 50% royalty.
const maxTransferFee = 50000

// royaltyBasisPoints resolves the transfer fee for a mint in the ledger's
// permille-times-ten scale (5% becomes 5000), capped at the ledger maximum.
func (s *Service) royaltyBasisPoints(release *schema.Release) uint16 {
	royalty := release.RoyaltyPercent
	if royalty <= 0 {
		royalty = s.cfg.DefaultRoyaltyPercent
	}
	fee := royalty * 1000
	if fee > maxTransferFee {
		fee = maxTransferFee
	}
	return uint16(fee)
}
