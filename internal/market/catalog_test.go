package market_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wavemint/marketplace/internal/store"
	"github.com/wavemint/marketplace/internal/store/schema"
	"github.com/wavemint/marketplace/internal/xrpl"
)

func TestListUserNFTs_CrossReferencesCatalog(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	tm.dialer.EXPECT().Dial(gomock.Any()).Return(tm.ledger, nil)
	tm.ledger.EXPECT().Close()
	tm.ledger.EXPECT().AccountNFTs(gomock.Any(), testBuyerAddress).Return([]xrpl.AccountNFT{
		{TokenID: "000A1111", URI: "ipfs://bafytrack10"},
		{TokenID: "000A2222", URI: "ipfs://unknowncid"},
		{TokenID: "000A3333", URI: "https://example.com/not-ipfs.json"},
	}, nil)

	tm.store.EXPECT().GetTracksByCIDs(gomock.Any(), []string{"bafytrack10", "unknowncid"}).
		Return([]store.TrackWithRelease{
			{
				Track:   schema.Track{ID: 10, ReleaseID: 1, Title: "Undertow", MetadataCID: "bafytrack10"},
				Release: schema.Release{ID: 1, Title: "Night Tides", ArtistName: "Lena Wave"},
			},
		}, nil)

	collection, err := tm.service.ListUserNFTs(context.Background(), testBuyerAddress)
	require.NoError(t, err)
	assert.Equal(t, 3, collection.TotalOnChain)
	assert.Equal(t, 1, collection.MatchedCount)
	require.Len(t, collection.NFTs, 3)

	assert.True(t, collection.NFTs[0].Matched)
	assert.Equal(t, "Undertow", collection.NFTs[0].TrackTitle)
	assert.Equal(t, "Night Tides", collection.NFTs[0].ReleaseTitle)
	assert.False(t, collection.NFTs[1].Matched)
	assert.False(t, collection.NFTs[2].Matched)
}

func TestListUserNFTs_EmptyAccount(t *testing.T) {
	tm := setupTestService(t)
	defer tearDownTestService(tm)

	tm.dialer.EXPECT().Dial(gomock.Any()).Return(tm.ledger, nil)
	tm.ledger.EXPECT().Close()
	tm.ledger.EXPECT().AccountNFTs(gomock.Any(), testBuyerAddress).Return(nil, nil)

	collection, err := tm.service.ListUserNFTs(context.Background(), testBuyerAddress)
	require.NoError(t, err)
	assert.Equal(t, 0, collection.TotalOnChain)
	assert.Empty(t, collection.NFTs)
}
