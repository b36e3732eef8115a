package xrpl

import (
	"fmt"

	"github.com/Peersyst/xrpl-go/xrpl/transaction"
	"github.com/Peersyst/xrpl-go/xrpl/wallet"

	"github.com/wavemint/marketplace/internal/domain"
)

// PlatformSigner is the capability object for the platform wallet. It is
// injected into every component that submits transactions, never held as a
// package-level singleton, so tests can substitute a fake.
//
//go:generate mockgen -source=signer.go -destination=../mocks/signer.go -package=mocks -mock_names=Signer=MockSigner
type Signer interface {
	// Address returns the platform account's classic address
	Address() string
	// Sign signs a flattened transaction and returns the signed blob and
	// transaction hash
	Sign(tx transaction.FlatTransaction) (blob string, hash string, err error)
}

type platformSigner struct {
	address string
	wallet  wallet.Wallet
}

// NewPlatformSigner derives the platform wallet from its seed. It fails
// fast with ErrUnconfigured before any ledger call when credentials are
// missing.
func NewPlatformSigner(address, seed string) (Signer, error) {
	if address == "" || seed == "" {
		return nil, domain.ErrUnconfigured
	}

	w, err := wallet.FromSeed(seed, "")
	if err != nil {
		return nil, fmt.Errorf("failed to derive platform wallet: %w", err)
	}

	return &platformSigner{address: address, wallet: w}, nil
}

// Address returns the platform account's classic address
func (s *platformSigner) Address() string {
	return s.address
}

// Sign signs a flattened transaction with the platform wallet
func (s *platformSigner) Sign(tx transaction.FlatTransaction) (string, string, error) {
	blob, hash, err := s.wallet.Sign(tx)
	if err != nil {
		return "", "", fmt.Errorf("failed to sign transaction: %w", err)
	}
	return blob, hash, nil
}
