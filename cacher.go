package dnslookup

import (
	"github.com/linkdata/dnslookup/wire"
)

// Cacher is the record store consumed by the resolver. Implementations must
// serialize Insert calls and give Valid a read-consistent snapshot.
type Cacher interface {
	// Valid returns the unexpired records for q in insertion order. A
	// question whose type is not CNAME may be answered by CNAME records
	// for the same name when no typed records are cached.
	Valid(q wire.Question) []wire.ResourceRecord

	// Raw returns the records for q regardless of expiry.
	Raw(q wire.Question) []wire.ResourceRecord

	// Insert stores rr, refreshing the expiry when the same question and
	// payload are already present.
	Insert(rr wire.ResourceRecord)
}
