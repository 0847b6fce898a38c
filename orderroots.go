package dnslookup

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/linkdata/dnslookup/cache"
	"github.com/linkdata/dnslookup/wire"
)

// OrderRoots probes the cached root hint addresses and makes the fastest
// responder the initial server. Roots that don't answer within cutoff are
// ignored; when none do, the initial server is left alone.
func (r *Resolver) OrderRoots(ctx context.Context, cutoff time.Duration) {
	if _, ok := ctx.Deadline(); !ok {
		newctx, cancel := context.WithTimeout(ctx, cutoff*2)
		defer cancel()
		ctx = newctx
	}
	var l []*rootRtt
	var wg sync.WaitGroup
	for _, ns := range r.cache.Raw(cache.RootQuestion) {
		for _, a := range r.cache.Raw(wire.NewQuestion(ns.Text, wire.TypeA, ns.Question.Class)) {
			if a.Addr.Is4() {
				rt := &rootRtt{addr: a.Addr}
				l = append(l, rt)
				wg.Add(1)
				go timeRoot(ctx, r, &wg, rt)
			}
		}
	}
	wg.Wait()
	sort.Slice(l, func(i, j int) bool { return l[i].rtt < l[j].rtt })
	for _, rt := range l {
		if rt.rtt <= cutoff {
			r.mu.Lock()
			r.server = rt.addr
			r.mu.Unlock()
			return
		}
	}
}
