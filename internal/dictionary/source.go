// Package dictionary models the read-only dictionary-handle boundary
// (spec §6 "Dictionary on disk"): a Source opens a gazetteer into the
// three collaborators the engine needs (node store, TRIE index, aza
// master) plus a signature used for cache invalidation. Building or
// downloading a production-scale dictionary from MLIT CSVs is out of
// scope; EmbeddedSource is the one concrete implementation, serving a
// small bundled sample for tests and demos.
package dictionary

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/jageocoder-go/internal/geocoder"
	"github.com/jageocoder-go/internal/itaiji"
	"gopkg.in/yaml.v3"
)

// Handle bundles the three read-only collaborators a dictionary Source
// produces, plus the signature a Remote tree handle revalidates against
// (spec §5).
type Handle struct {
	Store     geocoder.NodeStore
	Trie      geocoder.PrefixTrie
	Aza       *geocoder.AzaMaster
	Signature string
}

// Source is the dictionary-builder/loader boundary: anything that can
// produce a Handle. A future on-disk (memory-mapped) or remote-fetch
// source would implement this alongside EmbeddedSource.
type Source interface {
	Open() (*Handle, error)
}

// EmbeddedSource serves the small go:embed-bundled sample gazetteer in
// data/sample.yaml — enough to exercise the prefecture, city, ward,
// oaza, aza and block levels (no county or building entries) and the aza
// master lookup path without a real MLIT-derived dictionary on disk.
type EmbeddedSource struct{}

// yamlRoot is the on-disk shape of data/sample.yaml.
type yamlRoot struct {
	Prefectures []yamlPref    `yaml:"prefectures"`
	AzaMaster   []yamlAzaRow  `yaml:"aza_master"`
}

type yamlPref struct {
	Name     string     `yaml:"name"`
	Priority int        `yaml:"priority"`
	Cities   []yamlCity `yaml:"cities"`
}

type yamlCity struct {
	Name     string     `yaml:"name"`
	Priority int        `yaml:"priority"`
	Wards    []yamlWard `yaml:"wards"`
	Oaza     []yamlOaza `yaml:"oaza"`
}

type yamlWard struct {
	Name     string     `yaml:"name"`
	Priority int        `yaml:"priority"`
	Oaza     []yamlOaza `yaml:"oaza"`
}

type yamlOaza struct {
	Name     string    `yaml:"name"`
	Priority int       `yaml:"priority"`
	X        *float64  `yaml:"x"`
	Y        *float64  `yaml:"y"`
	Aza      []yamlAza `yaml:"aza"`
}

type yamlAza struct {
	Name     string      `yaml:"name"`
	Priority int         `yaml:"priority"`
	X        *float64    `yaml:"x"`
	Y        *float64    `yaml:"y"`
	Blocks   []yamlBlock `yaml:"blocks"`
}

type yamlBlock struct {
	Name     string   `yaml:"name"`
	Priority int      `yaml:"priority"`
	X        *float64 `yaml:"x"`
	Y        *float64 `yaml:"y"`
}

type yamlAzaRow struct {
	Code     string              `yaml:"code"`
	Names    []yamlAzaNameElement `yaml:"names"`
	Postcode []string            `yaml:"postcode"`
}

type yamlAzaNameElement struct {
	Level int    `yaml:"level"`
	Name  string `yaml:"name"`
}

// cachedStoreSize is the per-handle LRU capacity backing CachedStore
// (spec §5). The embedded sample gazetteer is tiny, but a real
// MLIT-derived dictionary's node count would make this cache load-bearing.
const cachedStoreSize = 4096

// Open parses the embedded sample and builds the in-memory collaborators.
func (EmbeddedSource) Open() (*Handle, error) {
	var root yamlRoot
	if err := yaml.Unmarshal(sampleYAML, &root); err != nil {
		return nil, fmt.Errorf("dictionary: parsing embedded sample: %w", err)
	}

	conv := itaiji.Default
	var roots []*geocoder.NodeSpec
	for _, p := range root.Prefectures {
		roots = append(roots, prefSpec(conv, p))
	}

	builder := geocoder.NewArenaBuilder()
	arena := builder.Build(roots)

	trieBuilder := geocoder.NewAdaptiveTrieBuilder()
	addTrieKeys(trieBuilder, arena, arena.Root())

	store, err := NewCachedStore(arena, cachedStoreSize)
	if err != nil {
		return nil, fmt.Errorf("dictionary: building node cache: %w", err)
	}

	var azaRecords []*geocoder.AzaRecord
	for _, row := range root.AzaMaster {
		elements := make([]geocoder.AzaNameElement, 0, len(row.Names))
		for _, n := range row.Names {
			elements = append(elements, geocoder.AzaNameElement{
				Level: geocoder.AddressLevel(n.Level),
				Name:  n.Name,
			})
		}
		azaRecords = append(azaRecords, &geocoder.AzaRecord{
			Code:       row.Code,
			Names:      elements,
			NamesIndex: geocoder.StandardizeAzaName(conv, elements),
			Postcode:   row.Postcode,
		})
	}

	return &Handle{
		Store:     store,
		Trie:      trieBuilder.Build(),
		Aza:       geocoder.NewAzaMaster(azaRecords),
		Signature: signature(sampleYAML),
	}, nil
}

func spec(conv *itaiji.Converter, name string, level geocoder.AddressLevel, priority int, x, y *float64, children ...*geocoder.NodeSpec) *geocoder.NodeSpec {
	return &geocoder.NodeSpec{
		Name:      name,
		NameIndex: conv.Standardize(name, false),
		Level:     level,
		Priority:  priority,
		X:         x,
		Y:         y,
		Children:  children,
	}
}

func prefSpec(conv *itaiji.Converter, p yamlPref) *geocoder.NodeSpec {
	var children []*geocoder.NodeSpec
	for _, c := range p.Cities {
		children = append(children, citySpec(conv, c))
	}
	return spec(conv, p.Name, geocoder.LevelPref, p.Priority, nil, nil, children...)
}

func citySpec(conv *itaiji.Converter, c yamlCity) *geocoder.NodeSpec {
	var children []*geocoder.NodeSpec
	for _, w := range c.Wards {
		children = append(children, wardSpec(conv, w))
	}
	for _, o := range c.Oaza {
		children = append(children, oazaSpec(conv, o))
	}
	return spec(conv, c.Name, geocoder.LevelCity, c.Priority, nil, nil, children...)
}

func wardSpec(conv *itaiji.Converter, w yamlWard) *geocoder.NodeSpec {
	var children []*geocoder.NodeSpec
	for _, o := range w.Oaza {
		children = append(children, oazaSpec(conv, o))
	}
	return spec(conv, w.Name, geocoder.LevelWard, w.Priority, nil, nil, children...)
}

func oazaSpec(conv *itaiji.Converter, o yamlOaza) *geocoder.NodeSpec {
	var children []*geocoder.NodeSpec
	for _, a := range o.Aza {
		children = append(children, azaSpec(conv, a))
	}
	return spec(conv, o.Name, geocoder.LevelOaza, o.Priority, o.X, o.Y, children...)
}

func azaSpec(conv *itaiji.Converter, a yamlAza) *geocoder.NodeSpec {
	var children []*geocoder.NodeSpec
	for _, b := range a.Blocks {
		children = append(children, blockSpec(conv, b))
	}
	return spec(conv, a.Name, geocoder.LevelAza, a.Priority, a.X, a.Y, children...)
}

func blockSpec(conv *itaiji.Converter, b yamlBlock) *geocoder.NodeSpec {
	return spec(conv, b.Name, geocoder.LevelBlock, b.Priority, b.X, b.Y)
}

// addTrieKeys inserts, for every PREF-through-OAZA node, one TRIE key
// per suffix of its ancestor chain — the key space spec §3 describes
// (each key is the concatenated names from one of the node's ancestors,
// or the node itself, down to the node).
func addTrieKeys(b *geocoder.AdaptiveTrieBuilder, store geocoder.NodeStore, n *geocoder.AddressNode) {
	if n.Level >= geocoder.LevelPref && n.Level <= geocoder.LevelOaza {
		chain := ancestorChain(store, n)
		for start := range chain {
			key := ""
			for _, a := range chain[start:] {
				key += a.NameIndex
			}
			b.Add(key, n.ID)
		}
	}
	for _, c := range store.Children(n) {
		addTrieKeys(b, store, c)
	}
}

func ancestorChain(store geocoder.NodeStore, n *geocoder.AddressNode) []*geocoder.AddressNode {
	var chain []*geocoder.AddressNode
	cur := n
	for {
		chain = append([]*geocoder.AddressNode{cur}, chain...)
		if cur.ParentID == cur.ID {
			break
		}
		parent, ok := store.GetByID(cur.ParentID)
		if !ok {
			break
		}
		cur = parent
	}
	if len(chain) > 0 && chain[0].Level == 0 {
		chain = chain[1:]
	}
	return chain
}

// signature is the dictionary fingerprint a Remote tree handle compares
// against jageocoder.server_signature to detect a reload (spec §5).
func signature(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:8])
}
