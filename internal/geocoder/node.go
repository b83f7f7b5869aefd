package geocoder

import "strings"

// NodeID identifies an AddressNode within a NodeStore's arena. Ids are
// assigned in construction order and satisfy ParentID < ChildID.
type NodeID int64

// AddressNode is one element of the address hierarchy: a prefecture,
// city, oaza, chome, block or building entry. Children of a node occupy
// the contiguous id range [id+1, SiblingID), per the NodeStore invariant
// documented on ArenaNodeStore.
type AddressNode struct {
	ID        NodeID
	Name      string       // original spelling, e.g. "新宿区"
	NameIndex string       // itaiji.Standardize(Name, false)
	X, Y      *float64     // WGS84 lon/lat; nil means "no coordinate"
	Level     AddressLevel
	Priority  int    // smaller wins ties
	Note      string // "key:value/key:value" pairs, e.g. "jisx0401:13"
	ParentID  NodeID
	SiblingID NodeID // id of the next sibling; end of this node's own children range
}

// HasCoordinate reports whether the node carries a valid (x, y) pair.
func (n *AddressNode) HasCoordinate() bool {
	return n.X != nil && n.Y != nil
}

// NoteValue returns the value associated with key in the node's note
// field ("k1:v1/k2:v2/..."), or "" if the key is absent.
func (n *AddressNode) NoteValue(key string) string {
	for _, kv := range strings.Split(n.Note, "/") {
		parts := strings.SplitN(kv, ":", 2)
		if len(parts) == 2 && parts[0] == key {
			return parts[1]
		}
	}
	return ""
}

// FullName returns the name sequence from the prefecture down to n,
// inclusive, looking each ancestor up in store.
func FullName(store NodeStore, n *AddressNode) []string {
	names := []string{n.Name}
	cur := n
	for cur.ParentID != cur.ID {
		parent, ok := store.GetByID(cur.ParentID)
		if !ok || parent.Level == 0 {
			break
		}
		names = append([]string{parent.Name}, names...)
		cur = parent
	}
	return names
}
