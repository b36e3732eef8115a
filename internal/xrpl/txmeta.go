package xrpl

import "encoding/json"

// The structures below mirror only the slice of transaction metadata the
// extractors walk. The shape is ledger-version sensitive; if the metadata
// format changes, this file is the one to re-derive.

type txMeta struct {
	AffectedNodes []affectedNode `json:"AffectedNodes"`
}

type affectedNode struct {
	CreatedNode  *createdNode  `json:"CreatedNode,omitempty"`
	ModifiedNode *modifiedNode `json:"ModifiedNode,omitempty"`
}

type createdNode struct {
	LedgerEntryType string     `json:"LedgerEntryType"`
	LedgerIndex     string     `json:"LedgerIndex"`
	NewFields       nodeFields `json:"NewFields"`
}

type modifiedNode struct {
	LedgerEntryType string      `json:"LedgerEntryType"`
	LedgerIndex     string      `json:"LedgerIndex"`
	FinalFields     *nodeFields `json:"FinalFields"`
	PreviousFields  *nodeFields `json:"PreviousFields"`
}

type nodeFields struct {
	NFTokens []nftokenWrapper `json:"NFTokens"`
}

type nftokenWrapper struct {
	NFToken nftokenEntry `json:"NFToken"`
}

type nftokenEntry struct {
	NFTokenID string `json:"NFTokenID"`
}

// ExtractNewTokenID recovers the token ID created by an NFTokenMint by
// diffing the transaction's affected NFTokenPage nodes: a created page
// yields its last token, a modified page yields the token present in the
// final list but absent from the previous one. Returns false when no new
// token can be found.
func ExtractNewTokenID(meta json.RawMessage) (string, bool) {
	var parsed txMeta
	if err := json.Unmarshal(meta, &parsed); err != nil {
		return "", false
	}

	for _, node := range parsed.AffectedNodes {
		if node.CreatedNode != nil && node.CreatedNode.LedgerEntryType == "NFTokenPage" {
			tokens := node.CreatedNode.NewFields.NFTokens
			if len(tokens) > 0 {
				return tokens[len(tokens)-1].NFToken.NFTokenID, true
			}
		}

		if node.ModifiedNode != nil && node.ModifiedNode.LedgerEntryType == "NFTokenPage" {
			if node.ModifiedNode.FinalFields == nil {
				continue
			}
			previous := map[string]struct{}{}
			if node.ModifiedNode.PreviousFields != nil {
				for _, token := range node.ModifiedNode.PreviousFields.NFTokens {
					previous[token.NFToken.NFTokenID] = struct{}{}
				}
			}
			for _, token := range node.ModifiedNode.FinalFields.NFTokens {
				if _, ok := previous[token.NFToken.NFTokenID]; !ok {
					return token.NFToken.NFTokenID, true
				}
			}
		}
	}

	return "", false
}

// ExtractCreatedOfferIndex recovers the ledger index of the NFTokenOffer
// object created by an NFTokenCreateOffer. Returns false when the metadata
// holds no created offer node.
func ExtractCreatedOfferIndex(meta json.RawMessage) (string, bool) {
	var parsed txMeta
	if err := json.Unmarshal(meta, &parsed); err != nil {
		return "", false
	}

	for _, node := range parsed.AffectedNodes {
		if node.CreatedNode != nil && node.CreatedNode.LedgerEntryType == "NFTokenOffer" {
			return node.CreatedNode.LedgerIndex, true
		}
	}

	return "", false
}
