package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdata/dnslookup/wire"
)

func aRecord(name, addr string, ttl uint32) wire.ResourceRecord {
	return wire.ResourceRecord{
		Question: wire.NewQuestion(name, wire.TypeA, wire.ClassIN),
		TTL:      ttl,
		Text:     addr,
	}
}

func TestNewSeedsRootHints(t *testing.T) {
	t.Parallel()
	c := New()
	roots := c.Valid(RootQuestion)
	require.NotEmpty(t, roots)
	for _, ns := range roots {
		assert.Equal(t, RootQuestion, ns.Question)
		addrs := c.Valid(wire.NewQuestion(ns.Text, wire.TypeA, wire.ClassIN))
		assert.NotEmpty(t, addrs, ns.Text)
	}
	assert.Equal(t, roots, c.Raw(RootQuestion))
}

func TestInsertAndValid(t *testing.T) {
	t.Parallel()
	c := New()
	rr := aRecord("example.com", "93.184.216.34", 300)
	c.Insert(rr)
	got := c.Valid(rr.Question)
	require.Len(t, got, 1)
	assert.Equal(t, rr, got[0])
}

func TestValidHonorsTTL(t *testing.T) {
	t.Parallel()
	c := New()
	q := wire.NewQuestion("expired.example.com", wire.TypeA, wire.ClassIN)
	c.Insert(wire.ResourceRecord{Question: q, TTL: 0, Text: "192.0.2.1"})
	time.Sleep(time.Millisecond)
	assert.Empty(t, c.Valid(q))
	assert.Len(t, c.Raw(q), 1, "raw reads ignore expiry")
}

func TestInsertRefreshesWithoutDuplicating(t *testing.T) {
	t.Parallel()
	c := New()
	first := aRecord("example.com", "192.0.2.1", 300)
	second := aRecord("example.com", "192.0.2.2", 300)
	c.Insert(first)
	c.Insert(second)
	refreshed := first
	refreshed.TTL = 600
	c.Insert(refreshed)
	got := c.Valid(first.Question)
	require.Len(t, got, 2)
	assert.Equal(t, "192.0.2.1", got[0].Text, "re-seen record keeps its position")
	assert.Equal(t, uint32(600), got[0].TTL, "re-seen record gets the new ttl")
	assert.Equal(t, "192.0.2.2", got[1].Text)
}

func TestValidFallsBackToCNAME(t *testing.T) {
	t.Parallel()
	c := New()
	cname := wire.ResourceRecord{
		Question: wire.NewQuestion("www.example.com", wire.TypeCNAME, wire.ClassIN),
		TTL:      300,
		Text:     "example.com",
	}
	c.Insert(cname)
	got := c.Valid(wire.NewQuestion("www.example.com", wire.TypeA, wire.ClassIN))
	require.Len(t, got, 1)
	assert.Equal(t, cname, got[0])
	// but not when the question itself asks for CNAME of another name
	assert.Empty(t, c.Valid(wire.NewQuestion("other.example.com", wire.TypeCNAME, wire.ClassIN)))
}

func TestClearKeepsRootHints(t *testing.T) {
	t.Parallel()
	c := New()
	c.Insert(aRecord("example.com", "192.0.2.1", 300))
	seeded := c.Entries() - 1
	c.Clear()
	assert.Equal(t, seeded, c.Entries())
	assert.NotEmpty(t, c.Valid(RootQuestion))
}

func TestRootHintsSurviveInsert(t *testing.T) {
	t.Parallel()
	c := New()
	roots := c.Raw(RootQuestion)
	require.NotEmpty(t, roots)
	// a server re-announcing a root NS with a short TTL must not give the
	// seeded entry an expiry
	reseen := roots[0]
	reseen.TTL = 0
	c.Insert(reseen)
	time.Sleep(time.Millisecond)
	assert.Contains(t, c.Valid(RootQuestion), roots[0])
}

func TestClean(t *testing.T) {
	t.Parallel()
	c := New()
	c.Insert(aRecord("short.example.com", "192.0.2.1", 1))
	c.Insert(aRecord("long.example.com", "192.0.2.2", 3600))
	entries := c.Entries()
	c.Clean(time.Now().Add(2 * time.Second))
	assert.Equal(t, entries-1, c.Entries())
	assert.NotEmpty(t, c.Raw(wire.NewQuestion("long.example.com", wire.TypeA, wire.ClassIN)))
	assert.Empty(t, c.Raw(wire.NewQuestion("short.example.com", wire.TypeA, wire.ClassIN)))
}

func TestHitRatio(t *testing.T) {
	t.Parallel()
	c := New()
	assert.Zero(t, c.HitRatio())
	c.Insert(aRecord("example.com", "192.0.2.1", 300))
	c.Valid(wire.NewQuestion("example.com", wire.TypeA, wire.ClassIN))
	c.Valid(wire.NewQuestion("miss.example.com", wire.TypeA, wire.ClassIN))
	assert.InDelta(t, 50.0, c.HitRatio(), 0.1)
}
