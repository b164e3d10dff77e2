package dispatch

import (
	"fmt"
	"sync"

	"github.com/miralang/mira/internal/interop"
	"github.com/miralang/mira/internal/values"
)

// cacheLimit bounds the per-call-site memo. Past the limit the cache stops
// growing and classification is recomputed, which is always result-equivalent
// because the classifier is pure.
const cacheLimit = 8

type cacheKey struct {
	shape    values.ValueType
	typeName string
	symbol   string
}

// dispatchCache memoizes classifier results per receiver shape. Writes are
// rare, reads are the common case; a lost race degrades to recomputation.
type dispatchCache struct {
	mu      sync.Mutex
	entries map[cacheKey]interop.CallKind
}

func (c *dispatchCache) classify(cl interop.Classifier, receiver values.Value, symbol string) interop.CallKind {
	key := cacheKey{shape: receiver.Type(), typeName: receiver.TypeName(), symbol: symbol}
	if host, ok := receiver.(*values.Host); ok {
		// Distinguish host receivers by their underlying Go type.
		key.typeName = fmt.Sprintf("%T", host.Value)
	}

	c.mu.Lock()
	if c.entries != nil {
		if kind, ok := c.entries[key]; ok {
			c.mu.Unlock()
			return kind
		}
	}
	c.mu.Unlock()

	kind := cl.Classify(receiver, symbol)

	c.mu.Lock()
	if c.entries == nil {
		c.entries = make(map[cacheKey]interop.CallKind, cacheLimit)
	}
	if len(c.entries) < cacheLimit {
		c.entries[key] = kind
	}
	c.mu.Unlock()
	return kind
}
