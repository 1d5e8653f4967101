package chain_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ainlabs/explorer/business/core/chain"
	"github.com/ainlabs/explorer/foundation/ainrpc"
	"github.com/ainlabs/explorer/foundation/nameservice"
	"go.uber.org/zap"
)

// fakeNode serves JSON-RPC calls from a fixed map of method name to raw
// response body. Methods not in the map report an rpc error.
func fakeNode(t *testing.T, methods map[string]string) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding rpc request: %v", err)
			return
		}

		body, exists := methods[req.Method]
		if !exists {
			w.Write([]byte(`{"error": {"code": -32601, "message": "method not found"}}`))
			return
		}

		w.Write([]byte(body))
	}))
}

func newTestCore(t *testing.T, methods map[string]string) *chain.Core {
	t.Helper()

	srv := fakeNode(t, methods)
	t.Cleanup(srv.Close)

	client := ainrpc.New(ainrpc.Config{URL: srv.URL + "/json-rpc"})

	ns, err := nameservice.New("")
	if err != nil {
		t.Fatalf("constructing name service: %v", err)
	}

	return chain.NewCore(zap.NewNop().Sugar(), client, ns)
}

func Test_Status(t *testing.T) {
	t.Log("Given the need to assemble the network status.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen every number is available.", testID)
		{
			core := newTestCore(t, map[string]string{
				"ain_getLastBlockNumber": `{"result": 1024}`,
				"net_peerCount":          `{"result": 5}`,
				"net_getNetworkId":       `{"result": 1}`,
				"net_consensusStatus":    `{"result": {"state": "RUNNING"}}`,
			})

			status := core.Status(context.Background())

			want := chain.Status{
				BlockNumber:    1024,
				PeerCount:      5,
				NetworkID:      1,
				ConsensusState: "RUNNING",
			}
			if status != want {
				t.Errorf("\t%s\tTest %d:\tShould assemble every field, got %+v.", failed, testID, status)
			} else {
				t.Logf("\t%s\tTest %d:\tShould assemble every field.", success, testID)
			}
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen the consensus call fails.", testID)
		{
			core := newTestCore(t, map[string]string{
				"ain_getLastBlockNumber": `{"result": 1024}`,
				"net_peerCount":          `{"result": 5}`,
				"net_getNetworkId":       `{"result": 1}`,
			})

			status := core.Status(context.Background())

			if status.BlockNumber != 1024 {
				t.Errorf("\t%s\tTest %d:\tShould keep the fields that resolved, got %+v.", failed, testID, status)
			} else {
				t.Logf("\t%s\tTest %d:\tShould keep the fields that resolved.", success, testID)
			}

			if status.ConsensusState != "" {
				t.Errorf("\t%s\tTest %d:\tShould leave the failed field at its zero value.", failed, testID)
			} else {
				t.Logf("\t%s\tTest %d:\tShould leave the failed field at its zero value.", success, testID)
			}
		}
	}
}

func Test_Block(t *testing.T) {
	t.Log("Given the need to fetch one block with its transactions.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen the block exists.", testID)
		{
			core := newTestCore(t, map[string]string{
				"ain_getBlockByNumber": `{"result": {
					"number": 7,
					"hash": "0xabc",
					"proposer": "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4",
					"timestamp": 1700000000000,
					"transactions": [{"hash": "0xdef", "address": "0xAlice"}]
				}}`,
			})

			block, err := core.Block(context.Background(), 7)
			if err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to fetch the block: %v", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to fetch the block.", success, testID)

			if block.Number != 7 || block.Hash != "0xabc" || len(block.Transactions) != 1 {
				t.Errorf("\t%s\tTest %d:\tShould decode the block fields, got %+v.", failed, testID, block)
			} else {
				t.Logf("\t%s\tTest %d:\tShould decode the block fields.", success, testID)
			}

			if block.ProposerName != nameservice.Shorten(block.Proposer) {
				t.Errorf("\t%s\tTest %d:\tShould resolve the proposer's display name, got %q.", failed, testID, block.ProposerName)
			} else {
				t.Logf("\t%s\tTest %d:\tShould resolve the proposer's display name.", success, testID)
			}
		}

		testID = 1
		t.Logf("\tTest %d:\tWhen the block does not exist.", testID)
		{
			core := newTestCore(t, map[string]string{
				"ain_getBlockByNumber": `{"result": {"code": 30103, "message": "block not found", "result": null}}`,
			})

			if _, err := core.Block(context.Background(), 999); err == nil {
				t.Errorf("\t%s\tTest %d:\tShould report the failure.", failed, testID)
			} else {
				t.Logf("\t%s\tTest %d:\tShould report the failure.", success, testID)
			}
		}
	}
}

func Test_Account(t *testing.T) {
	t.Log("Given the need to fetch an account summary.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen only the balance resolves.", testID)
		{
			core := newTestCore(t, map[string]string{
				"ain_getBalance": `{"result": 123.5}`,
			})

			account := core.Account(context.Background(), "0xdd6B972ffcc631a62CAE1BB9d80b7ff429c8ebA4")

			if account.Balance != 123.5 {
				t.Errorf("\t%s\tTest %d:\tShould carry the balance, got %v.", failed, testID, account.Balance)
			} else {
				t.Logf("\t%s\tTest %d:\tShould carry the balance.", success, testID)
			}

			if account.Nonce != 0 {
				t.Errorf("\t%s\tTest %d:\tShould leave the failed nonce at zero, got %d.", failed, testID, account.Nonce)
			} else {
				t.Logf("\t%s\tTest %d:\tShould leave the failed nonce at zero.", success, testID)
			}

			if account.Name != nameservice.Shorten(account.Address) {
				t.Errorf("\t%s\tTest %d:\tShould resolve the display name, got %q.", failed, testID, account.Name)
			} else {
				t.Logf("\t%s\tTest %d:\tShould resolve the display name.", success, testID)
			}
		}
	}
}
