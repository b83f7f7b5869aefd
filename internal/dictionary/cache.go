package dictionary

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jageocoder-go/internal/geocoder"
)

// CachedStore wraps a geocoder.NodeStore with a per-handle LRU of
// recently materialized nodes (spec §5), the teacher's
// `golang-lru/v2` import getting its first real job rather than
// sitting unused (see app/services/hybrid_cache_service.go for the
// two-tier L1/L2 composition style this mirrors: here the LRU is the
// fast L1 in front of the arena's L2, which for ArenaNodeStore is
// already in-memory but keeps the same shape ready for an on-disk or
// remote Source where materializing a node is not free).
type CachedStore struct {
	inner geocoder.NodeStore
	nodes *lru.Cache[geocoder.NodeID, *geocoder.AddressNode]
}

// NewCachedStore wraps inner with an LRU of the given capacity.
func NewCachedStore(inner geocoder.NodeStore, size int) (*CachedStore, error) {
	cache, err := lru.New[geocoder.NodeID, *geocoder.AddressNode](size)
	if err != nil {
		return nil, err
	}
	return &CachedStore{inner: inner, nodes: cache}, nil
}

// GetByID implements geocoder.NodeStore, consulting the LRU before
// falling through to inner.
func (c *CachedStore) GetByID(id geocoder.NodeID) (*geocoder.AddressNode, bool) {
	if n, ok := c.nodes.Get(id); ok {
		return n, true
	}
	n, ok := c.inner.GetByID(id)
	if ok {
		c.nodes.Add(id, n)
	}
	return n, ok
}

// Children implements geocoder.NodeStore, delegating straight to inner:
// the child list itself is cheap to recompute for an in-memory arena,
// only individual node materialization is worth caching.
func (c *CachedStore) Children(n *geocoder.AddressNode) []*geocoder.AddressNode {
	return c.inner.Children(n)
}

// Root implements geocoder.NodeStore.
func (c *CachedStore) Root() *geocoder.AddressNode {
	return c.inner.Root()
}
