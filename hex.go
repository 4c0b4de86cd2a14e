package sodg

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"
)

// hexSize is the inline small-buffer budget: one cache line is plenty
// for the primitive widths (1, 8 bytes) and short UTF-8 fragments a
// runtime actually stores in vertices.
const hexSize = 24

// Hex is a polymorphic byte payload with small-buffer optimisation: up
// to hexSize bytes live inline in the value, anything longer spills to
// a heap-backed slice. The representation is never observable: equality,
// ordering and printing all operate on the active byte prefix only.
type Hex struct {
	small [hexSize]byte
	n     int    // length when big == nil
	big   []byte // non-nil when the payload exceeds hexSize
}

// EmptyHex is the zero-length payload, printed as "--".
func EmptyHex() Hex { return Hex{} }

// FromSlice builds a Hex from a byte slice, choosing the inline
// representation when it fits and a heap copy otherwise.
func FromSlice(b []byte) Hex {
	if len(b) <= hexSize {
		var h Hex
		copy(h.small[:], b)
		h.n = len(b)
		return h
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return Hex{big: cp}
}

// FromVec is equivalent to FromSlice; it exists to mirror the two
// named constructors of the reference implementation (from_slice vs.
// from_vec), which differ only in Rust's slice/Vec distinction.
func FromVec(b []byte) Hex { return FromSlice(b) }

// FromStrBytes builds a Hex from the raw UTF-8 bytes of s.
func FromStrBytes(s string) Hex { return FromSlice([]byte(s)) }

// FromInt64 encodes i as 8 big-endian bytes.
func FromInt64(i int64) Hex {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(i))
	return FromSlice(b[:])
}

// FromFloat64 encodes f as 8 big-endian bytes (IEEE 754 bit pattern).
func FromFloat64(f float64) Hex {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(f))
	return FromSlice(b[:])
}

// FromBool encodes d as a single byte: 0x01 for true, 0x00 for false.
func FromBool(d bool) Hex {
	if d {
		return FromSlice([]byte{0x01})
	}
	return FromSlice([]byte{0x00})
}

// FromHexString parses a dash-separated hex string such as
// "DE-AD-BE-EF". An empty string or "--" parses to the empty payload.
func FromHexString(s string) (Hex, error) {
	stripped := strings.ReplaceAll(s, "-", "")
	if stripped == "" {
		return EmptyHex(), nil
	}
	if len(stripped)%2 != 0 {
		return Hex{}, fmt.Errorf("%w: %q has an odd number of hex digits", ErrBadHexLiteral, s)
	}
	out := make([]byte, len(stripped)/2)
	for i := 0; i < len(out); i++ {
		var v byte
		for j := 0; j < 2; j++ {
			c := stripped[i*2+j]
			var d byte
			switch {
			case c >= '0' && c <= '9':
				d = c - '0'
			case c >= 'A' && c <= 'F':
				d = c - 'A' + 10
			case c >= 'a' && c <= 'f':
				d = c - 'a' + 10
			default:
				return Hex{}, fmt.Errorf("%w: %q", ErrBadHexLiteral, s)
			}
			v = v<<4 | d
		}
		out[i] = v
	}
	return FromSlice(out), nil
}

// Bytes returns the active byte prefix. Callers must not mutate it.
func (h Hex) Bytes() []byte {
	if h.big != nil {
		return h.big
	}
	return h.small[:h.n]
}

// Len returns the number of bytes held.
func (h Hex) Len() int {
	if h.big != nil {
		return len(h.big)
	}
	return h.n
}

// IsEmpty reports whether the payload has zero bytes.
func (h Hex) IsEmpty() bool { return h.Len() == 0 }

// ToVec returns a fresh copy of the bytes held.
func (h Hex) ToVec() []byte {
	b := h.Bytes()
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp
}

// ByteAt returns the byte at pos, panicking deterministically if pos is
// out of range (capacity/index violations are fatal, see spec §7).
func (h Hex) ByteAt(pos int) byte {
	b := h.Bytes()
	if pos < 0 || pos >= len(b) {
		panic(fmt.Sprintf("sodg: index %d out of bounds (len = %d)", pos, len(b)))
	}
	return b[pos]
}

// Slice returns the half-open byte range [lo:hi), panicking
// deterministically with the offending range and length if it does not
// fit inside the payload.
func (h Hex) Slice(lo, hi int) []byte {
	b := h.Bytes()
	if lo < 0 || hi < lo || hi > len(b) {
		panic(fmt.Sprintf("sodg: range %d..%d out of bounds (len = %d)", lo, hi, len(b)))
	}
	return b[lo:hi]
}

// ToInt64 decodes an 8-byte big-endian payload. It fails if the payload
// is not exactly 8 bytes.
func (h Hex) ToInt64() (int64, error) {
	b := h.Bytes()
	if len(b) != 8 {
		return 0, fmt.Errorf("%w: got %d bytes", ErrBadHexLength, len(b))
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// ToFloat64 decodes an 8-byte big-endian IEEE 754 payload. It fails if
// the payload is not exactly 8 bytes.
func (h Hex) ToFloat64() (float64, error) {
	b := h.Bytes()
	if len(b) != 8 {
		return 0, fmt.Errorf("%w: got %d bytes", ErrBadHexLength, len(b))
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

// ToBool inspects the first byte: 0x01 means true, anything else false.
// It panics on an empty payload, matching ByteAt's behaviour.
func (h Hex) ToBool() bool {
	return h.ByteAt(0) == 0x01
}

// ToUTF8 validates the payload as UTF-8 and returns it as a string.
func (h Hex) ToUTF8() (string, error) {
	b := h.Bytes()
	if !isValidUTF8(b) {
		return "", fmt.Errorf("%w: %d bytes", ErrInvalidUTF8, len(b))
	}
	return string(b), nil
}

func isValidUTF8(b []byte) bool {
	return strings.ToValidUTF8(string(b), "�") == string(b)
}

// Print renders the payload as uppercase dash-separated hex pairs, or
// "--" when empty.
func (h Hex) Print() string {
	b := h.Bytes()
	if len(b) == 0 {
		return "--"
	}
	var sb strings.Builder
	sb.Grow(len(b)*3 - 1)
	for i, c := range b {
		if i > 0 {
			sb.WriteByte('-')
		}
		fmt.Fprintf(&sb, "%02X", c)
	}
	return sb.String()
}

// Tail skips the first skip bytes and returns the rest as a new Hex.
func (h Hex) Tail(skip int) Hex {
	b := h.Bytes()
	if skip > len(b) {
		skip = len(b)
	}
	return FromSlice(b[skip:])
}

// Concat returns a new Hex holding the bytes of h followed by the bytes
// of other.
func (h Hex) Concat(other Hex) Hex {
	a, b := h.Bytes(), other.Bytes()
	out := make([]byte, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return FromSlice(out)
}

// Equal reports whether h and other hold the same bytes, independent of
// representation.
func (h Hex) Equal(other Hex) bool {
	a, b := h.Bytes(), other.Bytes()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Compare orders h and other lexicographically by byte content.
func (h Hex) Compare(other Hex) int {
	a, b := h.Bytes(), other.Bytes()
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// String implements fmt.Stringer for debug printing.
func (h Hex) String() string { return h.Print() }
