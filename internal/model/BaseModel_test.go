package model

import "testing"

// Each created row must get its own uuid; the hook only fills an empty ID.
func TestBaseModelBeforeCreateAssignsUniqueIds(t *testing.T) {
	const n = 10000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		bm := BaseModel{}
		if err := bm.BeforeCreate(nil); err != nil {
			t.Fatalf("BeforeCreate returned error: %v", err)
		}
		if bm.ID == "" {
			t.Fatal("BeforeCreate left ID empty")
		}
		if _, dup := seen[bm.ID]; dup {
			t.Fatalf("duplicate id generated: %s", bm.ID)
		}
		seen[bm.ID] = struct{}{}
	}
}

func TestBaseModelBeforeCreateKeepsExistingId(t *testing.T) {
	bm := BaseModel{ID: "preset-id"}
	if err := bm.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate returned error: %v", err)
	}
	if bm.ID != "preset-id" {
		t.Errorf("BeforeCreate overwrote preset id, got %q", bm.ID)
	}
}
