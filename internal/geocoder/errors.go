package geocoder

import "errors"

// Error kinds from spec §7. The walker itself never returns these on
// data-plane anomalies (missing child, empty filter) — it backtracks
// instead; these surface only at handle-open time or from the
// aza-master/config/remote boundaries.
var (
	ErrNotInitialized       = errors.New("geocoder: query issued before a dictionary was opened")
	ErrDictionaryMissing    = errors.New("geocoder: dictionary path exists but required files are missing")
	ErrRemoteProtocol       = errors.New("geocoder: remote JSON-RPC error or malformed response")
	ErrTrieUnavailable      = errors.New("geocoder: trie index has not been built for this handle")
	ErrBadConfig            = errors.New("geocoder: target_area references an unknown name or code")
	ErrInternalInconsistency = errors.New("geocoder: internal data inconsistency")
	ErrReverseUnavailable   = errors.New("geocoder: reverse geocoding requires the out-of-scope R-tree collaborator")
)
