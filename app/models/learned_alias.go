package models

import "time"

// LearnedAlias is an operator-curated alternate notation for a node
// (old municipality name, common misspelling, colloquial Oaza name)
// that the trie does not index directly. Consulted only by the admin
// review workflow; never by the query-path walker (SPEC_FULL §1).
type LearnedAlias struct {
	OriginalToken string    `bson:"original_token" json:"original_token"` // as typed by a user
	CanonicalName string    `bson:"canonical_name" json:"canonical_name"` // the node's indexed name
	NodeID        int64     `bson:"node_id" json:"node_id"`
	Level         int       `bson:"level" json:"level"`
	Source        string    `bson:"source" json:"source"` // manual / auto_learned
	UsageCount    int       `bson:"usage_count" json:"usage_count"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	LastUsed      time.Time `bson:"last_used" json:"last_used"`
}

// Source constants for LearnedAlias.Source.
const (
	AliasSourceManual      = "manual"
	AliasSourceAutoLearned = "auto_learned"
)

// NewLearnedAlias builds a manually-curated alias entry.
func NewLearnedAlias(originalToken, canonicalName string, nodeID int64, level int) *LearnedAlias {
	now := time.Now()
	return &LearnedAlias{
		OriginalToken: originalToken,
		CanonicalName: canonicalName,
		NodeID:        nodeID,
		Level:         level,
		Source:        AliasSourceManual,
		UsageCount:    0,
		CreatedAt:     now,
		LastUsed:      now,
	}
}

// RecordUsage bumps the usage counter and sets LastUsed to now. It has
// no caller in this module.
func (a *LearnedAlias) RecordUsage() {
	a.UsageCount++
	a.LastUsed = time.Now()
}
