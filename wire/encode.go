package wire

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"strings"
)

const maxLabelLength = 63
const maxNameLength = 253

var ErrBadName = errors.New("wire: bad host name")

// BuildQuery encodes a single-question standard query for q and returns the
// wire bytes together with the transaction ID used. The query requests no
// recursion and the ID comes from a cryptographically strong source.
func BuildQuery(q Question) (msg []byte, id uint16, err error) {
	var idb [2]byte
	if _, err = rand.Read(idb[:]); err == nil {
		id = binary.BigEndian.Uint16(idb[:])
		msg = make([]byte, 0, HeaderSize+len(q.Name)+6)
		msg = append(msg, idb[0], idb[1])
		// flags 0x0000 (QR=0, opcode QUERY, RD=0), QDCOUNT=1, other counts 0
		msg = append(msg, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00)
		if msg, err = appendName(msg, q.Name); err == nil {
			msg = binary.BigEndian.AppendUint16(msg, uint16(q.Type))
			msg = binary.BigEndian.AppendUint16(msg, uint16(q.Class))
		}
	}
	return
}

// appendName writes name as length-prefixed labels followed by the
// terminating zero byte. Outgoing names are never compressed.
func appendName(msg []byte, name string) ([]byte, error) {
	if len(name) > maxNameLength {
		return nil, ErrBadName
	}
	if name != "." {
		for _, label := range strings.Split(name, ".") {
			if len(label) == 0 || len(label) > maxLabelLength {
				return nil, ErrBadName
			}
			msg = append(msg, byte(len(label)))
			msg = append(msg, label...)
		}
	}
	return append(msg, 0), nil
}
