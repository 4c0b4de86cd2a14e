package sodg

import "errors"

// Sentinel errors for sodg operations. Callers should branch on these
// with errors.Is, the same convention the teacher package uses for its
// own ErrVertexNotFound/ErrEdgeNotFound family.
var (
	// ErrDeadVertex indicates an operation referenced a vertex id whose
	// slot is not currently live (never added, or reclaimed).
	ErrDeadVertex = errors.New("sodg: vertex is dead")

	// ErrLabelTooLong indicates a Label string source had more than 8
	// Unicode characters.
	ErrLabelTooLong = errors.New("sodg: label longer than 8 characters")

	// ErrEmptyLabel indicates an attempt to parse a zero-length label.
	ErrEmptyLabel = errors.New("sodg: empty label")

	// ErrBadAlpha indicates an "α..." label whose suffix is not a valid
	// non-negative decimal integer.
	ErrBadAlpha = errors.New("sodg: malformed alpha label")

	// ErrBadHexLength indicates Hex.ToInt64/Hex.ToFloat64 was called on
	// a payload that is not exactly 8 bytes long.
	ErrBadHexLength = errors.New("sodg: hex payload is not 8 bytes")

	// ErrInvalidUTF8 indicates Hex.ToUTF8 was called on a payload that
	// is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("sodg: hex payload is not valid UTF-8")

	// ErrBadHexLiteral indicates Hex parsing failed on a malformed
	// dash-separated hex string.
	ErrBadHexLiteral = errors.New("sodg: malformed hex literal")

	// ErrScriptSyntax indicates a script command could not be parsed.
	ErrScriptSyntax = errors.New("sodg: script syntax error")

	// ErrNotATree indicates Merge was asked to merge a non-tree graph.
	ErrNotATree = errors.New("sodg: graph is not a tree")
)
