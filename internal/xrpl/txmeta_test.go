package xrpl_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wavemint/marketplace/internal/xrpl"
)

// Metadata samples below are trimmed from real NFTokenMint and
// NFTokenCreateOffer transactions; only the fields the extractors walk are
// kept.

const createdPageMeta = `{
	"AffectedNodes": [
		{
			"ModifiedNode": {
				"LedgerEntryType": "AccountRoot",
				"LedgerIndex": "13F1A95D7AAB7108D5CE7EEB7B04C89F2F1D1A1F3B0C2E5C5D6E7F8091A2B3C4"
			}
		},
		{
			"CreatedNode": {
				"LedgerEntryType": "NFTokenPage",
				"LedgerIndex": "97707A94B298B50334C39FB46E245D4744C0F5B5FFFFFFFFFFFFFFFFFFFFFFFF",
				"NewFields": {
					"NFTokens": [
						{"NFToken": {"NFTokenID": "000813889715F34D23B6E6CDCC6C9B0E86B0F701B628E3B2003BCFA100000BF9"}}
					]
				}
			}
		}
	],
	"TransactionResult": "tesSUCCESS"
}`

const modifiedPageMeta = `{
	"AffectedNodes": [
		{
			"ModifiedNode": {
				"LedgerEntryType": "NFTokenPage",
				"LedgerIndex": "97707A94B298B50334C39FB46E245D4744C0F5B5FFFFFFFFFFFFFFFFFFFFFFFF",
				"PreviousFields": {
					"NFTokens": [
						{"NFToken": {"NFTokenID": "000813889715F34D23B6E6CDCC6C9B0E86B0F701B628E3B2003BCFA100000BF9"}}
					]
				},
				"FinalFields": {
					"NFTokens": [
						{"NFToken": {"NFTokenID": "000813889715F34D23B6E6CDCC6C9B0E86B0F701B628E3B2003BCFA100000BF9"}},
						{"NFToken": {"NFTokenID": "000813889715F34D23B6E6CDCC6C9B0E86B0F7012C6B0B9D16E4E4AE00000BFA"}}
					]
				}
			}
		}
	],
	"TransactionResult": "tesSUCCESS"
}`

const createdOfferMeta = `{
	"AffectedNodes": [
		{
			"ModifiedNode": {
				"LedgerEntryType": "AccountRoot",
				"LedgerIndex": "13F1A95D7AAB7108D5CE7EEB7B04C89F2F1D1A1F3B0C2E5C5D6E7F8091A2B3C4"
			}
		},
		{
			"CreatedNode": {
				"LedgerEntryType": "NFTokenOffer",
				"LedgerIndex": "AEBABA4FAC212BF28E0F9A9C3397B6E68AAF84B2C68177E21B0C2DF7DB6AF02E",
				"NewFields": {}
			}
		}
	],
	"TransactionResult": "tesSUCCESS"
}`

func TestExtractNewTokenID_CreatedPage(t *testing.T) {
	tokenID, ok := xrpl.ExtractNewTokenID(json.RawMessage(createdPageMeta))
	assert.True(t, ok)
	assert.Equal(t, "000813889715F34D23B6E6CDCC6C9B0E86B0F701B628E3B2003BCFA100000BF9", tokenID)
}

func TestExtractNewTokenID_ModifiedPage(t *testing.T) {
	// The new token is the one in the final list but not the previous list
	tokenID, ok := xrpl.ExtractNewTokenID(json.RawMessage(modifiedPageMeta))
	assert.True(t, ok)
	assert.Equal(t, "000813889715F34D23B6E6CDCC6C9B0E86B0F7012C6B0B9D16E4E4AE00000BFA", tokenID)
}

func TestExtractNewTokenID_NoToken(t *testing.T) {
	_, ok := xrpl.ExtractNewTokenID(json.RawMessage(`{"AffectedNodes": []}`))
	assert.False(t, ok)

	_, ok = xrpl.ExtractNewTokenID(json.RawMessage(`not json`))
	assert.False(t, ok)
}

func TestExtractNewTokenID_ModifiedPageWithoutNewEntries(t *testing.T) {
	meta := `{
		"AffectedNodes": [
			{
				"ModifiedNode": {
					"LedgerEntryType": "NFTokenPage",
					"PreviousFields": {
						"NFTokens": [{"NFToken": {"NFTokenID": "AAAA"}}]
					},
					"FinalFields": {
						"NFTokens": [{"NFToken": {"NFTokenID": "AAAA"}}]
					}
				}
			}
		]
	}`
	_, ok := xrpl.ExtractNewTokenID(json.RawMessage(meta))
	assert.False(t, ok)
}

func TestExtractCreatedOfferIndex(t *testing.T) {
	offerIndex, ok := xrpl.ExtractCreatedOfferIndex(json.RawMessage(createdOfferMeta))
	assert.True(t, ok)
	assert.Equal(t, "AEBABA4FAC212BF28E0F9A9C3397B6E68AAF84B2C68177E21B0C2DF7DB6AF02E", offerIndex)
}

func TestExtractCreatedOfferIndex_NoOffer(t *testing.T) {
	_, ok := xrpl.ExtractCreatedOfferIndex(json.RawMessage(createdPageMeta))
	assert.False(t, ok)
}
