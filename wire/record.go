package wire

import (
	"net/netip"
)

// ResourceRecord is one decoded record. Text always carries the decoded
// presentation form of the RDATA: a dotted-decimal address for A, the
// eight-group hex form (no "::" shortening) for AAAA, a host name for NS,
// CNAME and MX, and a lowercase hex dump for any other type. Addr is
// additionally set when the record carries a well-formed A or AAAA address.
type ResourceRecord struct {
	Question Question
	TTL      uint32
	Addr     netip.Addr
	Text     string
}

// Same reports whether other answers the same question with the same
// payload. TTL is not part of record identity.
func (rr ResourceRecord) Same(other ResourceRecord) bool {
	return rr.Question == other.Question && rr.Text == other.Text
}

func (rr ResourceRecord) String() string {
	return rr.Question.String() + " " + rr.Text
}
