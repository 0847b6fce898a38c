package dnslookup

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/netip"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkdata/dnslookup/cache"
	"github.com/linkdata/dnslookup/wire"
)

func TestNewPicksRootHint(t *testing.T) {
	t.Parallel()
	for _, initial := range []string{"", "root", "random", "Random"} {
		r, err := New(initial, nil, cache.New())
		require.NoError(t, err, initial)
		addr, perr := netip.ParseAddr(r.NameServer())
		require.NoError(t, perr)
		assert.True(t, addr.Is4(), initial)
		require.NoError(t, r.Close())
	}
}

func TestNewWithIPAddress(t *testing.T) {
	t.Parallel()
	r, err := New("127.0.0.1", nil, cache.New())
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, "127.0.0.1", r.NameServer())
}

func TestNewUnknownHost(t *testing.T) {
	t.Parallel()
	_, err := New("no-such-host.invalid", nil, cache.New())
	assert.ErrorIs(t, err, ErrUnknownHost)
}

func TestSetInitialServer(t *testing.T) {
	t.Parallel()
	r, err := New("127.0.0.1", nil, cache.New())
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.SetInitialServer("192.0.2.53"))
	assert.Equal(t, "192.0.2.53", r.NameServer())
	assert.ErrorIs(t, r.SetInitialServer("also-missing.invalid"), ErrUnknownHost)
	assert.Equal(t, "192.0.2.53", r.NameServer(), "failed update leaves the server alone")
	require.NoError(t, r.SetInitialServer("root"))
}

type stubDialer struct {
	err error
}

func (d stubDialer) DialContext(context.Context, string, string) (net.Conn, error) {
	if d.err != nil {
		return nil, d.err
	}
	left, right := net.Pipe()
	go func() { _ = right.Close() }()
	return left, nil
}

func TestOrderRootsUnreachableLeavesServer(t *testing.T) {
	t.Parallel()
	r, err := New("127.0.0.1", nil, cache.New())
	require.NoError(t, err)
	defer r.Close()
	r.ContextDialer = stubDialer{err: errors.New("no route to host")}
	r.OrderRoots(context.Background(), 10*time.Millisecond)
	assert.Equal(t, "127.0.0.1", r.NameServer())
}

func TestOrderRootsPicksResponsiveRoot(t *testing.T) {
	t.Parallel()
	cc := cache.New()
	r, err := New("127.0.0.1", nil, cc)
	require.NoError(t, err)
	defer r.Close()
	r.ContextDialer = stubDialer{}
	r.OrderRoots(context.Background(), time.Second)
	addr := netip.MustParseAddr(r.NameServer())
	var isRoot bool
	for _, ns := range cc.Raw(cache.RootQuestion) {
		for _, a := range cc.Raw(wire.NewQuestion(ns.Text, wire.TypeA, wire.ClassIN)) {
			isRoot = isRoot || a.Addr == addr
		}
	}
	assert.True(t, isRoot, addr)
}

func TestLogTracerEmitsEvents(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	tracer := LogTracer{Log: zerolog.New(&buf).Level(zerolog.DebugLevel)}
	q := wire.NewQuestion("example.com", wire.TypeA, wire.ClassIN)
	tracer.QueryToSend(q, netip.MustParseAddr("198.41.0.4"), 0x1234)
	tracer.ResponseHeader(0x1234, true, 0)
	tracer.AnswersHeader(1)
	tracer.ResourceRecord(wire.ResourceRecord{Question: q, TTL: 300, Text: "93.184.216.34"}, 1, 1)
	out := buf.String()
	assert.Contains(t, out, "query to send")
	assert.Contains(t, out, "response header")
	assert.Contains(t, out, "resource record")
	assert.Contains(t, out, "93.184.216.34")
}

func TestRegisterMetrics(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	RegisterMetrics(reg)
	families, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}
