package wire

import (
	"net/netip"
)

// Tracer receives events at fixed points of query processing. Implementations
// observe only; nothing they do can influence resolution.
type Tracer interface {
	// QueryToSend is called immediately before every datagram transmission,
	// including retransmissions.
	QueryToSend(q Question, server netip.Addr, id uint16)
	// ResponseHeader is called once the response header is parsed, before
	// any section.
	ResponseHeader(id uint16, authoritative bool, rcode int)
	// AnswersHeader is called before the answer section is parsed.
	AnswersHeader(count int)
	// NameserversHeader is called before the authority section is parsed.
	NameserversHeader(count int)
	// AdditionalHeader is called before the additional section is parsed.
	AdditionalHeader(count int)
	// ResourceRecord is called once per successfully parsed record, with the
	// type and class codes as they appeared on the wire.
	ResourceRecord(rr ResourceRecord, typeCode, classCode uint16)
}

// NopTracer discards all events.
type NopTracer struct{}

func (NopTracer) QueryToSend(Question, netip.Addr, uint16)   {}
func (NopTracer) ResponseHeader(uint16, bool, int)           {}
func (NopTracer) AnswersHeader(int)                          {}
func (NopTracer) NameserversHeader(int)                      {}
func (NopTracer) AdditionalHeader(int)                       {}
func (NopTracer) ResourceRecord(ResourceRecord, uint16, uint16) {}
