package knowledge_test

import (
	"testing"

	"github.com/ainlabs/explorer/business/core/knowledge"
)

func Test_ExplorationID(t *testing.T) {
	type table struct {
		name    string
		nodeID  string
		address string
		topic   string
		entry   string
	}

	tt := []table{
		{
			name:    "single segment",
			nodeID:  "0xBob_ml_e1",
			address: "0xBob",
			topic:   "ml",
			entry:   "e1",
		},
		{
			name:    "nested topic",
			nodeID:  "0xAlice_blockchain_consensus_e1",
			address: "0xAlice",
			topic:   "blockchain/consensus",
			entry:   "e1",
		},
	}

	t.Log("Given the need to round-trip exploration node ids.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a %s id.", testID, tst.name)
			{
				eid, err := knowledge.ParseExplorationID(tst.nodeID)
				if err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould be able to parse the id: %v", failed, testID, err)
				}
				t.Logf("\t%s\tTest %d:\tShould be able to parse the id.", success, testID)

				if eid.Address != tst.address || eid.TopicPath != tst.topic || eid.EntryID != tst.entry {
					t.Errorf("\t%s\tTest %d:\tShould decode the fields, got %+v.", failed, testID, eid)
				} else {
					t.Logf("\t%s\tTest %d:\tShould decode the fields.", success, testID)
				}

				if encoded := eid.Encode(); encoded != tst.nodeID {
					t.Errorf("\t%s\tTest %d:\tShould encode back to the original id, got %q.", failed, testID, encoded)
				} else {
					t.Logf("\t%s\tTest %d:\tShould encode back to the original id.", success, testID)
				}
			}
		}

		testID := len(tt)
		t.Logf("\tTest %d:\tWhen handling an id with too few fields.", testID)
		{
			if _, err := knowledge.ParseExplorationID("0xBob_e1"); err == nil {
				t.Errorf("\t%s\tTest %d:\tShould reject the id.", failed, testID)
			} else {
				t.Logf("\t%s\tTest %d:\tShould reject the id.", success, testID)
			}
		}
	}
}

func Test_TopicKeys(t *testing.T) {
	t.Log("Given the need to translate topic paths to store keys.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen encoding and decoding a nested path.", testID)
		{
			key := knowledge.EncodeTopicKey("blockchain/consensus/pos")
			if key != "blockchain|consensus|pos" {
				t.Errorf("\t%s\tTest %d:\tShould encode slashes to separators, got %q.", failed, testID, key)
			} else {
				t.Logf("\t%s\tTest %d:\tShould encode slashes to separators.", success, testID)
			}

			if path := knowledge.DecodeTopicKey(key); path != "blockchain/consensus/pos" {
				t.Errorf("\t%s\tTest %d:\tShould decode back to the path, got %q.", failed, testID, path)
			} else {
				t.Logf("\t%s\tTest %d:\tShould decode back to the path.", success, testID)
			}
		}
	}
}
