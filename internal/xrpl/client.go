package xrpl

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Peersyst/xrpl-go/xrpl/queries/account"
	nftq "github.com/Peersyst/xrpl-go/xrpl/queries/nft"
	"github.com/Peersyst/xrpl-go/xrpl/transaction"
	txtypes "github.com/Peersyst/xrpl-go/xrpl/transaction/types"
	"github.com/Peersyst/xrpl-go/xrpl/websocket"
)

// tesSuccess is the engine result code of a successfully applied
// transaction.
const tesSuccess = "tesSUCCESS"

// AccountNFT is an NFT held by an account, with its URI already hex-decoded
type AccountNFT struct {
	TokenID string
	URI     string
}

// SellOffer is a sell offer attached to an NFT on the ledger
type SellOffer struct {
	OfferIndex  string
	Owner       string
	Destination string
	AmountDrops string
}

// TxResult is the outcome of a submitted, validated transaction
type TxResult struct {
	Hash       string
	ResultCode string
	Validated  bool
	// Meta is the transaction metadata as returned by the ledger; token and
	// offer extraction runs over it (see txmeta.go)
	Meta json.RawMessage
}

// Success reports whether the finalized transaction applied successfully
func (r *TxResult) Success() bool {
	return r.ResultCode == tesSuccess
}

// MintParams describes a single NFTokenMint
type MintParams struct {
	// URI is the plain (not hex-encoded) content URI, e.g. ipfs://<cid>
	URI string
	// TransferFeeBasisPoints is the royalty in units of 0.001% (permille
	// ×10), e.g. 5% → 5000
	TransferFeeBasisPoints uint16
}

// SellOfferParams describes a single NFTokenCreateOffer restricted to one
// buyer
type SellOfferParams struct {
	TokenID string
	// AmountDrops is the offer amount; the purchase flow collects payment
	// before this step, so the offer carries a symbolic 1-drop amount
	AmountDrops uint64
	Destination string
}

// PaymentParams describes an XRP payment with an optional memo
type PaymentParams struct {
	Destination string
	AmountDrops uint64
	Memo        string
}

// Ledger is one open session against the XRPL. Every purchase attempt runs
// inside exactly one session; sessions are not pooled or shared.
//
//go:generate mockgen -source=client.go -destination=../mocks/ledger.go -package=mocks -mock_names=Ledger=MockLedger,Dialer=MockDialer
type Ledger interface {
	// Close tears down the session. Safe to defer; errors are discarded.
	Close()
	// MintToken submits an NFTokenMint from the platform account and waits
	// for validation
	MintToken(ctx context.Context, params MintParams) (*TxResult, error)
	// CreateSellOffer submits an NFTokenCreateOffer (sell flag, destination
	// restricted) and waits for validation
	CreateSellOffer(ctx context.Context, params SellOfferParams) (*TxResult, error)
	// CancelOffers submits an NFTokenCancelOffer for the given offer
	// indexes and waits for validation
	CancelOffers(ctx context.Context, offerIndexes []string) (*TxResult, error)
	// SendPayment submits a Payment from the platform account and waits for
	// validation
	SendPayment(ctx context.Context, params PaymentParams) (*TxResult, error)
	// AccountNFTs queries account_nfts for the given account
	AccountNFTs(ctx context.Context, address string) ([]AccountNFT, error)
	// SellOffers queries nft_sell_offers for the given token
	SellOffers(ctx context.Context, tokenID string) ([]SellOffer, error)
}

// Dialer opens ledger sessions
type Dialer interface {
	// Dial connects a new session
	Dial(ctx context.Context) (Ledger, error)
}

// Config holds ledger connectivity configuration
type Config struct {
	WebSocketURL string
}

type wsDialer struct {
	cfg    Config
	signer Signer
}

// NewDialer creates a websocket dialer bound to the platform signer
func NewDialer(cfg Config, signer Signer) Dialer {
	return &wsDialer{cfg: cfg, signer: signer}
}

// Dial connects a new websocket session
func (d *wsDialer) Dial(ctx context.Context) (Ledger, error) {
	client := websocket.NewClient(websocket.NewClientConfig().WithHost(d.cfg.WebSocketURL))
	if err := client.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to ledger: %w", err)
	}
	return &wsLedger{client: client, signer: d.signer}, nil
}

type wsLedger struct {
	client *websocket.Client
	signer Signer
}

// Close tears down the websocket session
func (l *wsLedger) Close() {
	_ = l.client.Disconnect()
}

// submitAndWait autofills, signs and submits a flattened transaction, then
// waits for ledger validation. The underlying client serializes submissions
// per account; the platform account is the single serialization point for
// all marketplace writes.
func (l *wsLedger) submitAndWait(_ context.Context, flatTx transaction.FlatTransaction) (*TxResult, error) {
	if err := l.client.Autofill(&flatTx); err != nil {
		return nil, fmt.Errorf("failed to autofill transaction: %w", err)
	}

	blob, hash, err := l.signer.Sign(flatTx)
	if err != nil {
		return nil, err
	}

	res, err := l.client.SubmitTxBlobAndWait(blob, false)
	if err != nil {
		return nil, fmt.Errorf("failed to submit transaction: %w", err)
	}

	meta, err := json.Marshal(res.Meta)
	if err != nil {
		return nil, fmt.Errorf("failed to encode transaction metadata: %w", err)
	}

	result := &TxResult{
		Hash:      hash,
		Validated: res.Validated,
		Meta:      meta,
	}
	if m, ok := res.Meta.(map[string]interface{}); ok {
		if code, ok := m["TransactionResult"].(string); ok {
			result.ResultCode = code
		}
	}

	return result, nil
}

// MintToken submits an NFTokenMint from the platform account
func (l *wsLedger) MintToken(ctx context.Context, params MintParams) (*TxResult, error) {
	mint := &transaction.NFTokenMint{
		BaseTx: transaction.BaseTx{
			Account: txtypes.Address(l.signer.Address()),
		},
		NFTokenTaxon: 0,
		TransferFee:  params.TransferFeeBasisPoints,
		URI:          txtypes.NFTokenURI(encodeHex(params.URI)),
	}
	mint.SetTransferableFlag()

	return l.submitAndWait(ctx, mint.Flatten())
}

// CreateSellOffer submits an NFTokenCreateOffer restricted to the buyer
func (l *wsLedger) CreateSellOffer(ctx context.Context, params SellOfferParams) (*TxResult, error) {
	offer := &transaction.NFTokenCreateOffer{
		BaseTx: transaction.BaseTx{
			Account: txtypes.Address(l.signer.Address()),
		},
		NFTokenID:   txtypes.NFTokenID(params.TokenID),
		Amount:      txtypes.XRPCurrencyAmount(params.AmountDrops),
		Destination: txtypes.Address(params.Destination),
	}
	offer.SetSellNFTokenFlag()

	return l.submitAndWait(ctx, offer.Flatten())
}

// CancelOffers submits an NFTokenCancelOffer for the given offer indexes
func (l *wsLedger) CancelOffers(ctx context.Context, offerIndexes []string) (*TxResult, error) {
	offers := make([]txtypes.NFTokenID, 0, len(offerIndexes))
	for _, index := range offerIndexes {
		offers = append(offers, txtypes.NFTokenID(index))
	}

	cancel := &transaction.NFTokenCancelOffer{
		BaseTx: transaction.BaseTx{
			Account: txtypes.Address(l.signer.Address()),
		},
		NFTokenOffers: offers,
	}

	return l.submitAndWait(ctx, cancel.Flatten())
}

// SendPayment submits an XRP payment from the platform account
func (l *wsLedger) SendPayment(ctx context.Context, params PaymentParams) (*TxResult, error) {
	payment := &transaction.Payment{
		BaseTx: transaction.BaseTx{
			Account: txtypes.Address(l.signer.Address()),
		},
		Destination: txtypes.Address(params.Destination),
		Amount:      txtypes.XRPCurrencyAmount(params.AmountDrops),
	}
	if params.Memo != "" {
		payment.BaseTx.Memos = []txtypes.MemoWrapper{
			{Memo: txtypes.Memo{MemoData: encodeHex(params.Memo)}},
		}
	}

	return l.submitAndWait(ctx, payment.Flatten())
}

// AccountNFTs queries account_nfts for the given account. No intrinsic
// retry: a transient failure surfaces to the caller rather than reading as
// an empty account.
func (l *wsLedger) AccountNFTs(_ context.Context, address string) ([]AccountNFT, error) {
	res, err := l.client.GetAccountNFTs(&account.NFTsRequest{
		Account: txtypes.Address(address),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query account nfts: %w", err)
	}

	nfts := make([]AccountNFT, 0, len(res.AccountNFTs))
	for _, nft := range res.AccountNFTs {
		nfts = append(nfts, AccountNFT{
			TokenID: string(nft.NFTokenID),
			URI:     decodeHex(string(nft.URI)),
		})
	}
	return nfts, nil
}

// SellOffers queries nft_sell_offers for the given token
func (l *wsLedger) SellOffers(_ context.Context, tokenID string) ([]SellOffer, error) {
	res, err := l.client.GetNFTSellOffers(&nftq.NFTokenSellOffersRequest{
		NFTokenID: txtypes.NFTokenID(tokenID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query sell offers: %w", err)
	}

	offers := make([]SellOffer, 0, len(res.Offers))
	for _, offer := range res.Offers {
		offers = append(offers, SellOffer{
			OfferIndex:  string(offer.NFTokenOfferIndex),
			Owner:       string(offer.Owner),
			Destination: string(offer.Destination),
			AmountDrops: fmt.Sprint(offer.Amount),
		})
	}
	return offers, nil
}

// encodeHex encodes a string to the uppercase hex the ledger expects for
// URIs and memos
func encodeHex(s string) string {
	return strings.ToUpper(hex.EncodeToString([]byte(s)))
}

// decodeHex decodes a hex-encoded ledger string; undecodable input is
// returned as-is
func decodeHex(s string) string {
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return s
	}
	return string(decoded)
}
