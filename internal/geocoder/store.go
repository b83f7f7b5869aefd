package geocoder

// NodeStore is the read-only, indexed record store the walker and engine
// query against. All three collaborators (local in-memory arena, a
// memory-mapped file, a remote RPC cache) can implement it.
type NodeStore interface {
	GetByID(id NodeID) (*AddressNode, bool)
	// Children returns the direct children of n, in id order.
	Children(n *AddressNode) []*AddressNode
	Root() *AddressNode
}

// ArenaNodeStore is a read-only in-memory NodeStore: an arena indexed by
// NodeID, built once (see ArenaBuilder) and never mutated during query
// service.
//
// Invariants maintained by the builder, never re-checked on the read
// path: parent id strictly less than every descendant id; a node's
// direct children, and all of their descendants, occupy the contiguous
// range [n.ID+1, n.SiblingID); SiblingID is therefore the exclusive end
// of n's own subtree, which doubles as a cheap upper bound when scanning
// for n's direct children (filtered by ParentID == n.ID within that
// range) without having to maintain a separate child-list index.
type ArenaNodeStore struct {
	nodes []AddressNode // index i holds the node with ID == NodeID(i)
	root  NodeID
}

// GetByID implements NodeStore.
func (s *ArenaNodeStore) GetByID(id NodeID) (*AddressNode, bool) {
	if id < 0 || int(id) >= len(s.nodes) {
		return nil, false
	}
	return &s.nodes[id], true
}

// Children implements NodeStore.
func (s *ArenaNodeStore) Children(n *AddressNode) []*AddressNode {
	var out []*AddressNode
	for id := n.ID + 1; id < n.SiblingID; id++ {
		c := &s.nodes[id]
		if c.ParentID == n.ID {
			out = append(out, c)
		}
	}
	return out
}

// Root implements NodeStore.
func (s *ArenaNodeStore) Root() *AddressNode {
	n, _ := s.GetByID(s.root)
	return n
}

// NodeSpec is the build-time description of a node and its children,
// used to assemble an ArenaNodeStore in one pass. NameIndex is expected
// to already be itaiji.Standardize(Name, false) — the builder does not
// normalize on the caller's behalf, since a dictionary loader may have
// its own reasons to pre-compute and cache it (e.g. reading it straight
// off disk).
type NodeSpec struct {
	Name      string
	NameIndex string
	X, Y      *float64
	Level     AddressLevel
	Priority  int
	Note      string
	Children  []*NodeSpec
}

// ArenaBuilder assembles an ArenaNodeStore from a tree of NodeSpec via a
// single pre-order traversal, which is what makes the SiblingID
// subtree-end invariant trivial to compute: SiblingID of a node is
// exactly the next id handed out once its entire subtree has been
// appended.
type ArenaBuilder struct {
	nodes []AddressNode
}

// NewArenaBuilder starts a builder with a synthetic root node (id 0,
// level 0, parent of itself) so every PREF node has a real ancestor.
func NewArenaBuilder() *ArenaBuilder {
	b := &ArenaBuilder{}
	b.nodes = append(b.nodes, AddressNode{ID: 0, Level: 0, ParentID: 0})
	return b
}

// Build appends roots (one subtree per prefecture, typically) under the
// synthetic root node and returns the finished store.
func (b *ArenaBuilder) Build(roots []*NodeSpec) *ArenaNodeStore {
	for _, r := range roots {
		b.addSubtree(0, r)
	}
	b.nodes[0].SiblingID = NodeID(len(b.nodes))
	return &ArenaNodeStore{nodes: b.nodes, root: 0}
}

func (b *ArenaBuilder) addSubtree(parentID NodeID, spec *NodeSpec) NodeID {
	id := NodeID(len(b.nodes))
	b.nodes = append(b.nodes, AddressNode{
		ID:        id,
		Name:      spec.Name,
		NameIndex: spec.NameIndex,
		X:         spec.X,
		Y:         spec.Y,
		Level:     spec.Level,
		Priority:  spec.Priority,
		Note:      spec.Note,
		ParentID:  parentID,
	})
	for _, child := range spec.Children {
		b.addSubtree(id, child)
	}
	b.nodes[id].SiblingID = NodeID(len(b.nodes))
	return id
}
