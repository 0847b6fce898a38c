package dnslookup

import (
	"net/netip"

	"github.com/rs/zerolog"

	"github.com/linkdata/dnslookup/wire"
)

// LogTracer adapts a zerolog.Logger to wire.Tracer, emitting one structured
// event per trace point.
type LogTracer struct {
	Log zerolog.Logger
}

var _ wire.Tracer = LogTracer{}

func (t LogTracer) QueryToSend(q wire.Question, server netip.Addr, id uint16) {
	t.Log.Debug().
		Str("question", q.String()).
		Str("server", server.String()).
		Uint16("id", id).
		Msg("query to send")
}

func (t LogTracer) ResponseHeader(id uint16, authoritative bool, rcode int) {
	t.Log.Debug().
		Uint16("id", id).
		Bool("authoritative", authoritative).
		Int("rcode", rcode).
		Msg("response header")
}

func (t LogTracer) AnswersHeader(count int) {
	t.Log.Debug().Int("count", count).Msg("answers")
}

func (t LogTracer) NameserversHeader(count int) {
	t.Log.Debug().Int("count", count).Msg("nameservers")
}

func (t LogTracer) AdditionalHeader(count int) {
	t.Log.Debug().Int("count", count).Msg("additional information")
}

func (t LogTracer) ResourceRecord(rr wire.ResourceRecord, typeCode, classCode uint16) {
	t.Log.Debug().
		Str("name", rr.Question.Name).
		Uint16("type", typeCode).
		Uint16("class", classCode).
		Uint32("ttl", rr.TTL).
		Str("value", rr.Text).
		Msg("resource record")
}
