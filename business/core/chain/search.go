package chain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// ClassifySearch decides what a free-form search string denotes: a block
// number, a transaction hash, an account address, or a topic path fallback.
func ClassifySearch(query string) SearchResult {
	query = strings.TrimSpace(query)

	switch {
	case isBlockNumber(query):
		return SearchResult{Query: query, Kind: SearchKindBlock}

	case isTxHash(query):
		return SearchResult{Query: query, Kind: SearchKindTransaction}

	case common.IsHexAddress(query):
		return SearchResult{Query: query, Kind: SearchKindAccount}

	default:
		return SearchResult{Query: query, Kind: SearchKindTopic}
	}
}

func isBlockNumber(query string) bool {
	if query == "" {
		return false
	}
	for _, r := range query {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isTxHash(query string) bool {
	if len(query) != 2+common.HashLength*2 {
		return false
	}
	_, err := hexutil.Decode(query)
	return err == nil
}
