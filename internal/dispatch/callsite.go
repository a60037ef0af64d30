package dispatch

import (
	"sync"

	"github.com/google/uuid"
)

// callSiteNamespace roots the deterministic UUID v5 space for call-site
// ids; any fixed UUID works since it only needs to be stable across runs
// of this binary, not globally unique against other systems.
var callSiteNamespace = uuid.MustParse("6f6e8d4a-6e21-4f0e-9c2a-2b7a0f6b9a41")

// CallSites mints stable call-site identifiers from source positions. The
// same (file, line, col) string always hashes to the same UUID via
// uuid.NewSHA1, so two evaluation runs over the same source reuse the same
// IC keys without a global counter that would depend on evaluation order.
type CallSites struct {
	mu  sync.Mutex
	ids map[string]string
}

// NewCallSites builds an empty position→id table.
func NewCallSites() *CallSites {
	return &CallSites{ids: make(map[string]string)}
}

// IDFor returns the stable call-site id for a source position string
// (conventionally "file:line:col"), minting and caching one on first use.
func (c *CallSites) IDFor(position string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if id, ok := c.ids[position]; ok {
		return id
	}
	id := uuid.NewSHA1(callSiteNamespace, []byte(position)).String()
	c.ids[position] = id
	return id
}
