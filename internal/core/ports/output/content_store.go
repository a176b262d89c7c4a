package ports

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
)

// Query is a named GROQ template bound to its parameters.
type Query struct {
	Name   string
	GROQ   string
	Params map[string]any
}

// CacheKey identifies a query result independent of parameter order.
func (q Query) CacheKey() string {
	keys := make([]string, 0, len(q.Params))
	for k := range q.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	h.Write([]byte(q.GROQ))
	for _, k := range keys {
		v, _ := json.Marshal(q.Params[k])
		h.Write([]byte{0})
		h.Write([]byte(k))
		h.Write([]byte{'='})
		h.Write(v)
	}
	return q.Name + ":" + hex.EncodeToString(h.Sum(nil))[:16]
}

// ContentStore executes parameterized queries against the document store and
// returns the raw JSON result. A query that matches nothing yields "null".
type ContentStore interface {
	Query(ctx context.Context, q Query) (json.RawMessage, error)

	// Health check
	IsAvailable(ctx context.Context) bool
}
