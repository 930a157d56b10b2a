package audit

import "testing"

func TestDiff(t *testing.T) {
	before := map[string]any{"room": "A1", "is_archived": false, "updated_at": "t1", "comment": "x"}
	after := map[string]any{"room": "A1", "is_archived": true, "updated_at": "t2"}

	diff := Diff(before, after)
	if len(diff) != 2 {
		t.Fatalf("expected 2 changes, got %+v", diff)
	}
	if c := diff["is_archived"]; c.Old != false || c.New != true {
		t.Fatalf("unexpected archive change %+v", c)
	}
	if c := diff["comment"]; c.Old != "x" || c.New != nil {
		t.Fatalf("unexpected comment change %+v", c)
	}
}

func TestSnapshotUsesJSONNames(t *testing.T) {
	s := Snapshot(struct {
		Room string `json:"room"`
	}{Room: "B2"})
	if s["room"] != "B2" {
		t.Fatalf("unexpected snapshot %+v", s)
	}
}
