package chain_test

import (
	"testing"

	"github.com/ainlabs/explorer/business/core/chain"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

// =============================================================================

func Test_ClassifySearch(t *testing.T) {
	type table struct {
		name  string
		query string
		kind  string
	}

	tt := []table{
		{
			name:  "block number",
			query: "12345",
			kind:  chain.SearchKindBlock,
		},
		{
			name:  "transaction hash",
			query: "0x4e3a3754410177e6937ef1f84bba68ea139e8d1a2258c5f85db9f1cd715a1bdd",
			kind:  chain.SearchKindTransaction,
		},
		{
			name:  "account address",
			query: "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4",
			kind:  chain.SearchKindAccount,
		},
		{
			name:  "topic path",
			query: "blockchain/consensus",
			kind:  chain.SearchKindTopic,
		},
		{
			name:  "padded block number",
			query: "  42  ",
			kind:  chain.SearchKindBlock,
		},
		{
			name:  "hash with bad characters",
			query: "0xzz3a3754410177e6937ef1f84bba68ea139e8d1a2258c5f85db9f1cd715a1bdd",
			kind:  chain.SearchKindTopic,
		},
	}

	t.Log("Given the need to classify free-form search queries.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a %s.", testID, tst.name)
			{
				result := chain.ClassifySearch(tst.query)

				if result.Kind != tst.kind {
					t.Errorf("\t%s\tTest %d:\tShould classify as %s, got %s.", failed, testID, tst.kind, result.Kind)
				} else {
					t.Logf("\t%s\tTest %d:\tShould classify as %s.", success, testID, tst.kind)
				}
			}
		}
	}
}
