package chain

import "encoding/json"

// Block represents a finalized block as reported by the node. Transactions
// are hashes or full documents depending on how the block was requested.
type Block struct {
	Number         int64             `json:"number"`
	Hash           string            `json:"hash"`
	ParentHash     string            `json:"parent_hash"`
	Timestamp      int64             `json:"timestamp"`
	Proposer       string            `json:"proposer"`
	ProposerName   string            `json:"proposer_name,omitempty"`
	Size           int64             `json:"size"`
	Transactions   []json.RawMessage `json:"transactions"`
	Validators     map[string]any    `json:"validators,omitempty"`
	LastVotesHash  string            `json:"last_votes_hash,omitempty"`
	StateProofHash string            `json:"state_proof_hash,omitempty"`
}

// BlockHeader represents the summary form of a block used in lists.
type BlockHeader struct {
	Number     int64  `json:"number"`
	Hash       string `json:"hash"`
	ParentHash string `json:"parent_hash"`
	Timestamp  int64  `json:"timestamp"`
	Proposer   string `json:"proposer"`
	Size       int64  `json:"size"`
}

// Transaction represents a committed transaction as reported by the node.
type Transaction struct {
	Hash         string          `json:"hash"`
	Address      string          `json:"address"`
	AddressName  string          `json:"address_name,omitempty"`
	Nonce        int64           `json:"nonce"`
	Timestamp    int64           `json:"timestamp"`
	BlockHash    string          `json:"block_hash,omitempty"`
	BlockNumber  int64           `json:"block_number,omitempty"`
	Index        int64           `json:"index,omitempty"`
	Operation    json.RawMessage `json:"operation,omitempty"`
	ParentTxHash string          `json:"parent_tx_hash,omitempty"`
	ExecResult   json.RawMessage `json:"exec_result,omitempty"`
}

// Account represents the balance and nonce of one account address.
type Account struct {
	Address string  `json:"address"`
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
	Nonce   int64   `json:"nonce"`
}

// Status represents the headline network numbers for the dashboard.
type Status struct {
	BlockNumber    int64  `json:"blockNumber"`
	PeerCount      int64  `json:"peerCount"`
	NetworkID      int64  `json:"networkId"`
	ConsensusState string `json:"consensusState"`
}

// DatabaseRef represents one document read from the raw key/value tree.
type DatabaseRef struct {
	Ref   string          `json:"ref"`
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// SearchResult classifies a free-form search string so the caller can route
// the user to the right page.
type SearchResult struct {
	Query string `json:"query"`
	Kind  string `json:"kind"`
}

// Set of kinds a search query can classify to.
const (
	SearchKindBlock       = "block"
	SearchKindTransaction = "transaction"
	SearchKindAccount     = "account"
	SearchKindTopic       = "topic"
)
