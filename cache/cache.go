// Package cache provides the TTL-expiring record store consumed by the
// lookup service, pre-seeded with the root nameserver hints.
package cache

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/linkdata/dnslookup/wire"
)

// RootQuestion is the question whose cached result is the root nameserver
// set. It is seeded at construction and its seeded records never expire.
var RootQuestion = wire.Question{Name: ".", Type: wire.TypeNS, Class: wire.ClassIN}

type entry struct {
	rr      wire.ResourceRecord
	expires time.Time // zero means the entry never expires
}

func (e *entry) valid(now time.Time) bool {
	return e.expires.IsZero() || now.Before(e.expires)
}

type Cache struct {
	mu      sync.RWMutex
	entries map[wire.Question][]entry
	count   atomic.Uint64
	hits    atomic.Uint64
}

// New returns a cache seeded with the compiled-in root hints.
func New() *Cache {
	c := &Cache{entries: make(map[wire.Question][]entry)}
	for _, rr := range rootHints() {
		c.entries[rr.Question] = append(c.entries[rr.Question], entry{rr: rr})
	}
	return c
}

// Valid returns the unexpired records for q, in insertion order. When q has
// no unexpired records of its own type and is not itself a CNAME question,
// any CNAME records for the same name answer it instead.
func (c *Cache) Valid(q wire.Question) (out []wire.ResourceRecord) {
	c.count.Add(1)
	out = c.lookup(q, true)
	if len(out) == 0 && q.Type != wire.TypeCNAME {
		out = c.lookup(wire.Question{Name: q.Name, Type: wire.TypeCNAME, Class: q.Class}, true)
	}
	if len(out) > 0 {
		c.hits.Add(1)
	}
	return
}

// Raw returns the records for q regardless of expiry. Used for the root
// hints and bootstrap reads.
func (c *Cache) Raw(q wire.Question) []wire.ResourceRecord {
	return c.lookup(q, false)
}

func (c *Cache) lookup(q wire.Question, honorTTL bool) (out []wire.ResourceRecord) {
	now := time.Now()
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.entries[q] {
		if !honorTTL || c.entries[q][i].valid(now) {
			out = append(out, c.entries[q][i].rr)
		}
	}
	return
}

// Insert stores rr under its own question. Re-inserting a record with the
// same question and payload refreshes its TTL and keeps its position;
// seeded permanent records stay permanent.
func (c *Cache) Insert(rr wire.ResourceRecord) {
	expires := time.Now().Add(time.Duration(rr.TTL) * time.Second)
	c.mu.Lock()
	defer c.mu.Unlock()
	list := c.entries[rr.Question]
	for i := range list {
		if list[i].rr.Same(rr) {
			if !list[i].expires.IsZero() {
				list[i].rr = rr
				list[i].expires = expires
			}
			return
		}
	}
	c.entries[rr.Question] = append(list, entry{rr: rr, expires: expires})
}

// Entries returns the number of records in the cache, expired or not.
func (c *Cache) Entries() (n int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, list := range c.entries {
		n += len(list)
	}
	return
}

// HitRatio returns the Valid hit ratio as a percentage.
func (c *Cache) HitRatio() (n float64) {
	if count := c.count.Load(); count > 0 {
		n = float64(c.hits.Load()*100) / float64(count)
	}
	return
}

// Clean removes records that are expired at now.
func (c *Cache) Clean(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for q, list := range c.entries {
		var kept []entry
		for _, e := range list {
			if e.valid(now) {
				kept = append(kept, e)
			}
		}
		if len(kept) > 0 {
			c.entries[q] = kept
		} else {
			delete(c.entries, q)
		}
	}
}

// Clear removes all expiring records, keeping the permanent root hints.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for q, list := range c.entries {
		var kept []entry
		for _, e := range list {
			if e.expires.IsZero() {
				kept = append(kept, e)
			}
		}
		if len(kept) > 0 {
			c.entries[q] = kept
		} else {
			delete(c.entries, q)
		}
	}
}
