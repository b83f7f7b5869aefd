package geocoder

import "testing"

// A node's direct children occupy a contiguous id range bounded by its
// own SiblingID, and Children must report exactly the set of nodes
// whose ParentID equals the node's own id within [id+1, SiblingID).
func TestArenaNodeStoreChildrenContiguity(t *testing.T) {
	b := NewArenaBuilder()
	store := b.Build([]*NodeSpec{
		node("東京都", LevelPref,
			node("多摩市", LevelCity,
				node("落合", LevelOaza)),
			node("新宿区", LevelCity,
				node("西新宿", LevelOaza),
				node("四谷", LevelOaza))),
		node("大阪府", LevelPref),
	})

	for id := NodeID(0); int(id) < len(store.nodes); id++ {
		n := &store.nodes[id]
		if n.SiblingID <= n.ID {
			t.Fatalf("node %d has SiblingID %d <= own id", n.ID, n.SiblingID)
		}

		want := map[NodeID]bool{}
		for scan := n.ID + 1; scan < n.SiblingID; scan++ {
			if store.nodes[scan].ParentID == n.ID {
				want[scan] = true
			}
		}

		got := map[NodeID]bool{}
		for _, c := range store.Children(n) {
			got[c.ID] = true
		}

		if len(got) != len(want) {
			t.Fatalf("node %d: Children returned %v, want %v", n.ID, got, want)
		}
		for id := range want {
			if !got[id] {
				t.Errorf("node %d: Children missing expected child %d", n.ID, id)
			}
		}

		// Every other node in the whole tree must be outside n's own
		// subtree if it isn't a direct child found above, enforcing
		// that direct children plus their descendants exactly fill
		// [n.ID+1, n.SiblingID).
		for scan := n.ID + 1; scan < n.SiblingID; scan++ {
			c := &store.nodes[scan]
			if c.ParentID == n.ID {
				continue
			}
			if c.ID <= n.ID || c.SiblingID > n.SiblingID {
				t.Errorf("node %d: descendant %d escapes [%d,%d)", n.ID, c.ID, n.ID+1, n.SiblingID)
			}
		}
	}
}

func TestArenaNodeStoreRootAndGetByID(t *testing.T) {
	b := NewArenaBuilder()
	store := b.Build([]*NodeSpec{node("東京都", LevelPref)})

	root := store.Root()
	if root.ID != 0 {
		t.Fatalf("root id = %d, want 0", root.ID)
	}

	if _, ok := store.GetByID(NodeID(len(store.nodes))); ok {
		t.Errorf("GetByID beyond arena bounds unexpectedly found a node")
	}
	if _, ok := store.GetByID(-1); ok {
		t.Errorf("GetByID(-1) unexpectedly found a node")
	}

	pref, ok := store.GetByID(1)
	if !ok || pref.Name != "東京都" {
		t.Fatalf("GetByID(1) = %+v, %v, want 東京都", pref, ok)
	}
}
