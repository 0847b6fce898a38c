package dnslookup

import (
	"encoding/binary"
	"net"
	"net/netip"
	"time"

	"github.com/linkdata/dnslookup/wire"
)

// lookup carries the per-invocation state of one top-level resolution.
type lookup struct {
	*Resolver
	queries int
}

// maxQueries bounds the datagrams sent for one top-level lookup in case
// misbehaving servers delegate in a cycle.
const maxQueries = 64

// iterative runs one step of the iterative walk: query server, cache the
// response, and when the question is still unanswered move on to the first
// returned nameserver whose address is already cached. Failures are silent;
// callers observe them as an empty cache.
func (lk *lookup) iterative(q wire.Question, server netip.Addr) {
	resp := lk.exchange(q, server)
	if resp == nil {
		return
	}
	for _, rr := range resp.Records() {
		lk.cache.Insert(rr)
	}
	if results := lk.cache.Valid(q); len(results) > 0 {
		return
	}
	for _, ns := range resp.NS() {
		target := wire.NewQuestion(ns.Text, wire.TypeA, ns.Question.Class)
		for _, a := range lk.cache.Valid(target) {
			if a.Addr.Is4() {
				lk.iterative(q, a.Addr)
				return
			}
		}
	}
}

// exchange performs one individual query: encode, transmit up to MaxAttempts
// times reusing the same transaction ID, and decode the first datagram whose
// ID and QR bit match. Returns nil on timeout exhaustion, on any socket
// error, and on encoding failure.
func (lk *lookup) exchange(q wire.Question, server netip.Addr) *wire.Response {
	msg, id, err := wire.BuildQuery(q)
	if err != nil {
		return nil
	}
	dst := &net.UDPAddr{IP: server.AsSlice(), Port: int(lk.DNSPort)}
	buf := make([]byte, wire.MaxMessageSize)
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		if lk.queries++; lk.queries > maxQueries {
			return nil
		}
		lk.tracer.QueryToSend(q, server, id)
		QueriesSent.Inc()
		if _, err = lk.conn.WriteTo(msg, dst); err != nil {
			return nil
		}
		if err = lk.conn.SetReadDeadline(time.Now().Add(lk.Timeout)); err != nil {
			return nil
		}
		for {
			n, _, err := lk.conn.ReadFrom(buf)
			if err != nil {
				if ne, ok := err.(net.Error); ok && ne.Timeout() {
					Timeouts.Inc()
					break // retransmit
				}
				return nil
			}
			// mismatched IDs and queries never satisfy the call; keep
			// receiving within the same window
			if n < wire.HeaderSize {
				continue
			}
			if binary.BigEndian.Uint16(buf[:2]) != id || buf[2]&0x80 == 0 {
				continue
			}
			resp, err := wire.ParseResponse(buf[:n], lk.tracer)
			if err != nil {
				MalformedResponses.Inc()
				continue
			}
			ResponsesReceived.Inc()
			return resp
		}
	}
	return nil
}
