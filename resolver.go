// Package dnslookup implements an iterative DNS resolver: starting from a
// root nameserver it walks the delegation hierarchy over IPv4 UDP, without
// requesting recursion from any remote server.
package dnslookup

import (
	"context"
	"errors"
	"math/rand/v2"
	"net"
	"net/netip"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/proxy"

	"github.com/linkdata/dnslookup/cache"
	"github.com/linkdata/dnslookup/wire"
)

// DefaultTimeout is the per-receive socket timeout.
const DefaultTimeout = 5 * time.Second

// DefaultDNSPort is the destination port for queries.
const DefaultDNSPort = 53

// MaxAttempts is the number of transmissions per individual query.
const MaxAttempts = 3

// DefaultIndirectionLimit is the CNAME depth budget used when the caller has
// no opinion.
const DefaultIndirectionLimit = 10

var ErrIndirectionLimit = errors.New("dnslookup: cname indirection limit exceeded")

var ErrUnknownHost = errors.New("dnslookup: unknown host")

type errUnknownHost struct {
	host string
}

func (e errUnknownHost) Error() string {
	return "dnslookup: unknown host " + e.host
}

func (e errUnknownHost) Is(target error) bool {
	return target == ErrUnknownHost
}

func (e errUnknownHost) Unwrap() error {
	return ErrUnknownHost
}

type Resolver struct {
	proxy.ContextDialer               // used by the OrderRoots probes
	Timeout time.Duration             // receive window per transmission
	DNSPort uint16                    // destination port for queries
	tracer  wire.Tracer
	cache   Cacher
	conn    net.PacketConn
	mu      sync.RWMutex // protects following
	server  netip.Addr
}

// DefaultCache is used by resolvers constructed without an explicit cache.
var DefaultCache = cache.New()

// New returns a resolver bound to an ephemeral IPv4 UDP port. initialServer
// may be an IP address, a hostname, or one of "", "root" or "random" to pick
// a cached root hint. A nil tracer discards events; a nil cc uses the shared
// DefaultCache.
func New(initialServer string, tracer wire.Tracer, cc Cacher) (r *Resolver, err error) {
	if tracer == nil {
		tracer = wire.NopTracer{}
	}
	if cc == nil {
		cc = DefaultCache
	}
	var conn net.PacketConn
	if conn, err = net.ListenPacket("udp4", ":0"); err == nil {
		r = &Resolver{
			ContextDialer: &net.Dialer{},
			Timeout:       DefaultTimeout,
			DNSPort:       DefaultDNSPort,
			tracer:        tracer,
			cache:         cc,
			conn:          conn,
		}
		if err = r.SetInitialServer(initialServer); err != nil {
			_ = conn.Close()
			r = nil
		}
	}
	return
}

// SetInitialServer updates the server used for the first step of subsequent
// lookups. Accepts an IP address or a hostname resolved through the OS;
// "", "root" and "random" pick one of the cached root hints.
func (r *Resolver) SetInitialServer(name string) (err error) {
	var addr netip.Addr
	switch strings.ToLower(name) {
	case "", "root":
		addr, err = r.rootHintAddr(false)
	case "random":
		addr, err = r.rootHintAddr(true)
	default:
		addr, err = r.lookupHost(name)
	}
	if err == nil {
		r.mu.Lock()
		r.server = addr
		r.mu.Unlock()
	}
	return
}

// NameServer returns the address of the server used for the first step of
// lookups.
func (r *Resolver) NameServer() string {
	return r.nameServerAddr().String()
}

func (r *Resolver) nameServerAddr() (addr netip.Addr) {
	r.mu.RLock()
	addr = r.server
	r.mu.RUnlock()
	return
}

// Close releases the UDP socket. The resolver must not be used afterwards.
func (r *Resolver) Close() error {
	return r.conn.Close()
}

// Direct returns the valid cached records for q, querying iteratively from
// the initial server when the cache has none. CNAME records satisfying q
// are returned as-is, without being followed.
func (r *Resolver) Direct(q wire.Question) (results []wire.ResourceRecord) {
	if results = r.cache.Valid(q); len(results) == 0 {
		lk := &lookup{Resolver: r}
		lk.iterative(q, r.nameServerAddr())
		results = r.cache.Valid(q)
	}
	return
}

// Recursive returns the records for q, following CNAME indirections up to
// maxDepth levels deep. A negative maxDepth returns ErrIndirectionLimit
// without issuing any queries.
func (r *Resolver) Recursive(q wire.Question, maxDepth int) (results []wire.ResourceRecord, err error) {
	if maxDepth < 0 {
		return nil, ErrIndirectionLimit
	}
	direct := r.Direct(q)
	if len(direct) == 0 || q.Type == wire.TypeCNAME {
		return direct, nil
	}
	results = append(results, direct...)
	for _, rr := range direct {
		if rr.Question.Type == wire.TypeCNAME {
			var expanded []wire.ResourceRecord
			target := wire.NewQuestion(rr.Text, q.Type, q.Class)
			if expanded, err = r.Recursive(target, maxDepth-1); err != nil {
				return nil, err
			}
			results = append(results, expanded...)
		}
	}
	return
}

// rootHintAddr picks an IPv4 root server address from the cached hints.
func (r *Resolver) rootHintAddr(random bool) (addr netip.Addr, err error) {
	var addrs []netip.Addr
	for _, ns := range r.cache.Raw(cache.RootQuestion) {
		q := wire.NewQuestion(ns.Text, wire.TypeA, ns.Question.Class)
		for _, a := range r.cache.Raw(q) {
			if a.Addr.Is4() {
				addrs = append(addrs, a.Addr)
			}
		}
	}
	if len(addrs) == 0 {
		return netip.Addr{}, errUnknownHost{host: "root"}
	}
	if random {
		return addrs[rand.IntN(len(addrs))], nil
	}
	return addrs[0], nil
}

// lookupHost resolves name to an IPv4 address through the OS resolver.
func (r *Resolver) lookupHost(name string) (addr netip.Addr, err error) {
	if addr, err = netip.ParseAddr(name); err != nil || !addr.Is4() {
		ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
		defer cancel()
		var addrs []netip.Addr
		if addrs, err = net.DefaultResolver.LookupNetIP(ctx, "ip4", name); err != nil || len(addrs) == 0 {
			return netip.Addr{}, errUnknownHost{host: name}
		}
		addr = addrs[0].Unmap()
	}
	return addr, nil
}
