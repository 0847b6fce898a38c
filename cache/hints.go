package cache

import (
	"github.com/linkdata/dnslookup/wire"
)

//go:generate go run ../cmd/genhints roothints.gen.go

// rootHintTTL mirrors the TTL used by the published named.root file. The
// seeded entries never expire; the TTL is only what callers see.
const rootHintTTL = 3600000

// rootHints expands the generated hint tables into the records seeded at
// construction: one NS record per root server plus its address records.
func rootHints() (out []wire.ResourceRecord) {
	for _, h := range roots4 {
		out = append(out, wire.ResourceRecord{
			Question: RootQuestion,
			TTL:      rootHintTTL,
			Text:     h.name,
		})
		out = append(out, wire.ResourceRecord{
			Question: wire.NewQuestion(h.name, wire.TypeA, wire.ClassIN),
			TTL:      rootHintTTL,
			Addr:     h.addr,
			Text:     h.addr.String(),
		})
	}
	for _, h := range roots6 {
		out = append(out, wire.ResourceRecord{
			Question: wire.NewQuestion(h.name, wire.TypeAAAA, wire.ClassIN),
			TTL:      rootHintTTL,
			Addr:     h.addr,
			Text:     h.addr.String(),
		})
	}
	return
}
