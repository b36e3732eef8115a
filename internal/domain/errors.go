package domain

import "errors"

var (
	// ErrNotFound is returned when a release or track does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is returned when a release is not purchasable yet
	// (not launched, or a track is missing its metadata CID)
	ErrInvalidState = errors.New("invalid state")

	// ErrSoldOut is returned when no purchasable unit remains. It is a
	// business outcome, not a system failure; handlers surface it with
	// soldOut: true rather than a generic error.
	ErrSoldOut = errors.New("sold out")

	// ErrMintFailed is returned when the ledger rejects a mint transaction
	ErrMintFailed = errors.New("mint failed")

	// ErrTransferFailed is returned when sell-offer creation fails after a
	// unit has been reserved
	ErrTransferFailed = errors.New("transfer failed")

	// ErrUnconfigured is returned when platform credentials are missing
	ErrUnconfigured = errors.New("platform wallet not configured")

	// ErrReservationNotFound is returned when a confirm call references an
	// unknown or expired reservation
	ErrReservationNotFound = errors.New("reservation not found")
)
