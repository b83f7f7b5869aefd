package geocoder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// TreeHandle is the capability trait callers program against, whether
// the address tree is served from the local process (LocalTree) or
// fetched over JSON-RPC from a dictionary server (RemoteTree). Spec
// §9's "dynamic dispatch over local vs remote" tagged variant, as two
// concrete implementations of one small interface rather than an enum.
type TreeHandle interface {
	GetNodeByID(ctx context.Context, id NodeID) (*AddressNode, error)
	TrieCommonPrefixes(ctx context.Context, query string) (map[string][]NodeID, error)
	SearchNode(ctx context.Context, query string, cfg Config) ([]Candidate, error)
}

// LocalTree backs TreeHandle with the in-process node store, trie and
// aza master built by a dictionary.Source; every call is pure in-memory
// work, no I/O beyond what the underlying collaborators already do.
type LocalTree struct {
	Engine *Engine
	Aza    *AzaMaster
}

func NewLocalTree(engine *Engine, aza *AzaMaster) *LocalTree {
	return &LocalTree{Engine: engine, Aza: aza}
}

func (t *LocalTree) GetNodeByID(_ context.Context, id NodeID) (*AddressNode, error) {
	n, ok := t.Engine.Store.GetByID(id)
	if !ok {
		return nil, ErrInternalInconsistency
	}
	return n, nil
}

func (t *LocalTree) TrieCommonPrefixes(_ context.Context, query string) (map[string][]NodeID, error) {
	if t.Engine.Trie == nil {
		return nil, ErrTrieUnavailable
	}
	return t.Engine.Trie.CommonPrefixes(query), nil
}

func (t *LocalTree) SearchNode(_ context.Context, query string, cfg Config) ([]Candidate, error) {
	return t.Engine.Search(query, cfg), nil
}

// RemoteTree backs TreeHandle with a JSON-RPC session against a
// dictionary server (spec §6): request {jsonrpc, method, params, id},
// response {result} or {error}. The node cache is invalidated whenever
// server_signature changes, since a changed signature means the
// server's dictionary was reloaded and cached node ids may now name
// different records.
type RemoteTree struct {
	Endpoint   string
	HTTPClient *http.Client
	NodeCache  *lru.Cache[NodeID, *AddressNode]

	signature string
	nextID    int64
}

// NewRemoteTree opens a session against endpoint with a node cache
// holding up to cacheSize recently materialized nodes.
func NewRemoteTree(endpoint string, cacheSize int) (*RemoteTree, error) {
	cache, err := lru.New[NodeID, *AddressNode](cacheSize)
	if err != nil {
		return nil, err
	}
	return &RemoteTree{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		NodeCache:  cache,
	}, nil
}

type jsonRPCRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
	ID      int64       `json:"id"`
}

type jsonRPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type jsonRPCResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *jsonRPCError   `json:"error"`
	ID      int64           `json:"id"`
}

func (t *RemoteTree) call(ctx context.Context, method string, params interface{}, out interface{}) error {
	id := atomic.AddInt64(&t.nextID, 1)
	body, err := json.Marshal(jsonRPCRequest{JSONRPC: "2.0", Method: method, Params: params, ID: id})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteProtocol, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteProtocol, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteProtocol, err)
	}
	defer resp.Body.Close()

	var rpcResp jsonRPCResponse
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteProtocol, err)
	}
	if rpcResp.Error != nil {
		return fmt.Errorf("%w: %s", ErrRemoteProtocol, rpcResp.Error.Message)
	}
	if out == nil || len(rpcResp.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(rpcResp.Result, out); err != nil {
		return fmt.Errorf("%w: %v", ErrRemoteProtocol, err)
	}
	return nil
}

// revalidateSignature is called before any multi-call operation
// (spec §5/§6): a mismatch against the previously observed signature
// means the server's dictionary was reloaded, and the node cache is
// flushed since cached ids may now resolve to different records.
func (t *RemoteTree) revalidateSignature(ctx context.Context) error {
	var sig string
	if err := t.call(ctx, "jageocoder.server_signature", nil, &sig); err != nil {
		return err
	}
	if t.signature != "" && t.signature != sig {
		t.NodeCache.Purge()
	}
	t.signature = sig
	return nil
}

func (t *RemoteTree) GetNodeByID(ctx context.Context, id NodeID) (*AddressNode, error) {
	if n, ok := t.NodeCache.Get(id); ok {
		return n, nil
	}
	var node AddressNode
	if err := t.call(ctx, "node.get_record", map[string]interface{}{"id": id}, &node); err != nil {
		return nil, err
	}
	t.NodeCache.Add(id, &node)
	return &node, nil
}

func (t *RemoteTree) TrieCommonPrefixes(ctx context.Context, query string) (map[string][]NodeID, error) {
	var result map[string][]NodeID
	err := t.call(ctx, "dataset.get", map[string]interface{}{
		"op":    "common_prefixes",
		"query": query,
	}, &result)
	return result, err
}

// remoteCandidateNode is the wire shape of the "fully populated
// AddressNode dict including fullname" spec §6 promises from
// jageocoder.searchNode.
type remoteCandidateNode struct {
	ID       NodeID       `json:"id"`
	Name     string       `json:"name"`
	X        *float64     `json:"x"`
	Y        *float64     `json:"y"`
	Level    AddressLevel `json:"level"`
	Note     string       `json:"note"`
	Fullname []string     `json:"fullname"`
}

type remoteCandidate struct {
	Node    remoteCandidateNode `json:"node"`
	Matched string              `json:"matched"`
}

func (rc remoteCandidate) toCandidate() Candidate {
	return Candidate{
		Node: &AddressNode{
			ID:    rc.Node.ID,
			Name:  rc.Node.Name,
			X:     rc.Node.X,
			Y:     rc.Node.Y,
			Level: rc.Node.Level,
			Note:  rc.Node.Note,
		},
		Matched:  rc.Matched,
		FullName: rc.Node.Fullname,
	}
}

func (t *RemoteTree) SearchNode(ctx context.Context, query string, cfg Config) ([]Candidate, error) {
	if err := t.revalidateSignature(ctx); err != nil {
		return nil, err
	}

	var raw []remoteCandidate
	err := t.call(ctx, "jageocoder.searchNode", map[string]interface{}{
		"query":  query,
		"config": cfg,
	}, &raw)
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(raw))
	for _, rc := range raw {
		candidates = append(candidates, rc.toCandidate())
	}
	return candidates, nil
}
