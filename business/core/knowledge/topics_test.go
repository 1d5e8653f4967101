package knowledge_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/ainlabs/explorer/business/core/knowledge"
)

func Test_TopicTree(t *testing.T) {
	type table struct {
		name  string
		doc   string
		paths []string
		count int
	}

	tt := []table{
		{
			name: "namespace without metadata",
			doc: `{
				"science": {
					"physics": {".info": {"title": "Physics"}},
					"chemistry": {".info": {"title": "Chemistry"}}
				}
			}`,
			paths: []string{"science/chemistry", "science/physics"},
			count: 2,
		},
		{
			name: "mixed levels",
			doc: `{
				"blockchain": {
					".info": {"title": "Blockchain"},
					"consensus": {".info": {"title": "Consensus"}}
				}
			}`,
			paths: []string{"blockchain", "blockchain/consensus"},
			count: 2,
		},
		{
			name:  "malformed document",
			doc:   `["not", "a", "tree"]`,
			paths: nil,
			count: 0,
		},
		{
			name:  "malformed metadata",
			doc:   `{"topic": {".info": "garbage"}}`,
			paths: nil,
			count: 0,
		},
	}

	t.Log("Given the need to decode and flatten topic namespaces.")
	{
		for testID, tst := range tt {
			t.Logf("\tTest %d:\tWhen handling a %s.", testID, tst.name)
			{
				var tree knowledge.TopicTree
				if err := json.Unmarshal([]byte(tst.doc), &tree); err != nil {
					t.Fatalf("\t%s\tTest %d:\tShould never fail decoding: %v", failed, testID, err)
				}
				t.Logf("\t%s\tTest %d:\tShould never fail decoding.", success, testID)

				var paths []string
				for _, topic := range tree.Flatten() {
					paths = append(paths, topic.Path)
				}

				if !reflect.DeepEqual(paths, tst.paths) {
					t.Errorf("\t%s\tTest %d:\tShould flatten to %v, got %v.", failed, testID, tst.paths, paths)
				} else {
					t.Logf("\t%s\tTest %d:\tShould flatten to %v.", success, testID, tst.paths)
				}

				if count := tree.Count(); count != tst.count {
					t.Errorf("\t%s\tTest %d:\tShould count %d topics, got %d.", failed, testID, tst.count, count)
				} else {
					t.Logf("\t%s\tTest %d:\tShould count %d topics.", success, testID, tst.count)
				}
			}
		}
	}
}
