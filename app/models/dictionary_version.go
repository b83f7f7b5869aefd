package models

import "time"

// DictionaryVersion is an audit record of a dictionary (re)load, written
// by cmd/worker whenever its periodic reload observes a new signature
// (SPEC_FULL §5, "handles may be reopened on a dictionary swap"). Purely
// an operator-facing history; the query path never reads this collection.
type DictionaryVersion struct {
	Signature string    `bson:"signature" json:"signature"`
	Source    string    `bson:"source" json:"source"` // e.g. "embedded", a file path, or a URL
	NodeCount int       `bson:"node_count" json:"node_count"`
	LoadedAt  time.Time `bson:"loaded_at" json:"loaded_at"`
}

// NewDictionaryVersion records a successful (re)load.
func NewDictionaryVersion(signature, source string, nodeCount int) *DictionaryVersion {
	return &DictionaryVersion{
		Signature: signature,
		Source:    source,
		NodeCount: nodeCount,
		LoadedAt:  time.Now(),
	}
}
