package market

import (
	"context"
	"fmt"
	"strings"

	"github.com/wavemint/marketplace/internal/domain"
	"github.com/wavemint/marketplace/internal/store"
)

// UserCollection is a ledger account's NFT holdings cross-referenced
// against the track catalog
type UserCollection struct {
	NFTs         []domain.UserNFT
	TotalOnChain int
	MatchedCount int
}

// ListUserNFTs queries the ledger for the account's NFTs and matches their
// metadata CIDs against the catalog to produce human-readable ownership
// records. Read-only; unmatched NFTs are still returned, just unannotated.
func (s *Service) ListUserNFTs(ctx context.Context, address string) (*UserCollection, error) {
	ledger, err := s.dialer.Dial(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger session: %w", err)
	}
	defer ledger.Close()

	onChain, err := ledger.AccountNFTs(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to query account NFTs: %w", err)
	}

	cids := make([]string, 0, len(onChain))
	for _, nft := range onChain {
		if cid := strings.TrimPrefix(nft.URI, "ipfs://"); cid != nft.URI && cid != "" {
			cids = append(cids, cid)
		}
	}

	byCID := map[string]store.TrackWithRelease{}
	if len(cids) > 0 {
		tracks, err := s.store.GetTracksByCIDs(ctx, cids)
		if err != nil {
			return nil, fmt.Errorf("failed to look up tracks by CID: %w", err)
		}
		for _, t := range tracks {
			byCID[t.Track.MetadataCID] = t
		}
	}

	collection := &UserCollection{
		NFTs:         make([]domain.UserNFT, 0, len(onChain)),
		TotalOnChain: len(onChain),
	}
	for _, nft := range onChain {
		record := domain.UserNFT{
			TokenID: nft.TokenID,
			URI:     nft.URI,
		}
		cid := strings.TrimPrefix(nft.URI, "ipfs://")
		if match, ok := byCID[cid]; ok {
			record.ReleaseID = match.Release.ID
			record.TrackID = match.Track.ID
			record.ReleaseTitle = match.Release.Title
			record.TrackTitle = match.Track.Title
			record.ArtistName = match.Release.ArtistName
			record.Matched = true
			collection.MatchedCount++
		}
		collection.NFTs = append(collection.NFTs, record)
	}

	return collection, nil
}
