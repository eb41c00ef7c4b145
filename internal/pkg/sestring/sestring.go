// Package sestring converts the game's packed payload text to and from plain
// UTF-8. Payloads are spans opening with 0x02, followed by a type byte and a
// length byte counting the bytes up to the closing 0x03; everything outside a
// span is ordinary UTF-8 text.
//
// Listings only ever reach this codec at the presentation boundary; the store
// keeps the packed bytes untouched.
package sestring

const (
	payloadStart = 0x02
	payloadEnd   = 0x03
)

// Decode strips payload spans and returns the plain text. Malformed spans
// (truncated length, missing terminator) swallow the remainder of the input
// rather than leaking raw control bytes into display text.
func Decode(b []byte) string {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		if b[i] != payloadStart {
			out = append(out, b[i])
			i++
			continue
		}
		// payload: 0x02, type, length, length bytes, 0x03
		if i+2 >= len(b) {
			break
		}
		end := i + 3 + int(b[i+2])
		if end >= len(b) || b[end] != payloadEnd {
			break
		}
		i = end + 1
	}
	return string(out)
}

// Encode packs plain text back into the wire representation. Plain text needs
// no payload spans, so this is the identity on the byte level.
func Encode(s string) []byte {
	return []byte(s)
}
