package geocoder

// Result is a candidate produced by the walker: a node reached by
// consuming some prefix of the query, together with the canonical
// substring that was consumed to reach it.
type Result struct {
	Node    *AddressNode
	Matched string // canonical (normalized) substring consumed
}

// NChars is the "explained" length used for ranking: the number of
// canonical characters actually consumed to reach Node.
func (r Result) NChars() int {
	return len([]rune(r.Matched))
}

// Candidate is the caller-facing result of searchNode: a node plus the
// substring of the ORIGINAL (non-normalized) query that matched it.
type Candidate struct {
	Node     *AddressNode
	Matched  string   // substring of the original query
	FullName []string // prefecture-to-leaf name sequence
}
