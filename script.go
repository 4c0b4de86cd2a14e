package sodg

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	scriptStripComments = regexp.MustCompile(`#.*\n`)
	scriptLine          = regexp.MustCompile(`^([A-Z]+) *\(([^)]*)\)$`)
	scriptDataStrip     = regexp.MustCompile(`[ \t\n\r\-]`)
	scriptDataShape     = regexp.MustCompile(`^[0-9A-Fa-f]{2}([0-9A-Fa-f]{2})*$`)
)

// Script is a tiny deployable program in the ADD/BIND/PUT mini
// language: semicolon-terminated commands, '#'-to-end-of-line comments,
// and vertex references written as a bare decimal ("42"), an explicit
// index ("ν42"), or a named placeholder ("$name") that is assigned the
// next free id the first time it is seen and reused thereafter.
type Script struct {
	text string
	vars map[string]VId
}

// NewScript wraps the given source text.
func NewScript(text string) *Script {
	return &Script{text: text, vars: make(map[string]VId)}
}

// DeployTo runs every command in the script against g in order and
// returns how many were executed. It stops at the first error, wrapping
// it with the 0-based position of the failing command.
func (s *Script) DeployTo(g *Sodg) (int, error) {
	cmds := s.commands()
	for i, cmd := range cmds {
		if err := s.deployOne(cmd, g); err != nil {
			return i, fmt.Errorf("sodg: command no.%d %q: %w", i, cmd, err)
		}
	}
	return len(cmds), nil
}

func (s *Script) commands() []string {
	clean := scriptStripComments.ReplaceAllString(s.text, "")
	var out []string
	for _, part := range strings.Split(clean, ";") {
		t := strings.TrimSpace(part)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

func (s *Script) deployOne(cmd string, g *Sodg) error {
	m := scriptLine.FindStringSubmatch(cmd)
	if m == nil {
		return fmt.Errorf("%w: can't parse %q", ErrScriptSyntax, cmd)
	}
	var args []string
	for _, a := range strings.Split(m[2], ",") {
		t := strings.TrimSpace(a)
		if t != "" {
			args = append(args, t)
		}
	}
	switch m[1] {
	case "ADD":
		if len(args) < 1 {
			return fmt.Errorf("%w: ADD needs a vertex", ErrScriptSyntax)
		}
		v, err := s.parseRef(args[0], g)
		if err != nil {
			return err
		}
		g.Add(v)
		return nil
	case "BIND":
		if len(args) < 3 {
			return fmt.Errorf("%w: BIND needs two vertices and a label", ErrScriptSyntax)
		}
		v1, err := s.parseRef(args[0], g)
		if err != nil {
			return err
		}
		v2, err := s.parseRef(args[1], g)
		if err != nil {
			return err
		}
		label, err := ParseLabel(args[2])
		if err != nil {
			return err
		}
		return g.Bind(v1, v2, label)
	case "PUT":
		if len(args) < 2 {
			return fmt.Errorf("%w: PUT needs a vertex and data", ErrScriptSyntax)
		}
		v, err := s.parseRef(args[0], g)
		if err != nil {
			return err
		}
		h, err := parseScriptData(args[1])
		if err != nil {
			return err
		}
		return g.Put(v, h)
	default:
		return fmt.Errorf("%w: unknown command %q", ErrScriptSyntax, m[1])
	}
}

func parseScriptData(s string) (Hex, error) {
	stripped := scriptDataStrip.ReplaceAllString(s, "")
	if !scriptDataShape.MatchString(stripped) {
		return Hex{}, fmt.Errorf("%w: can't parse data %q", ErrBadHexLiteral, s)
	}
	b := make([]byte, len(stripped)/2)
	for i := range b {
		v, err := strconv.ParseUint(stripped[i*2:i*2+2], 16, 8)
		if err != nil {
			return Hex{}, fmt.Errorf("%w: %q", ErrBadHexLiteral, s)
		}
		b[i] = byte(v)
	}
	return FromSlice(b), nil
}

// parseRef resolves "$name" to a stable per-script id (assigned via
// g.NextID the first time name is seen), "ν<n>"/"<n>" to the literal
// index n.
func (s *Script) parseRef(ref string, g *Sodg) (VId, error) {
	if ref == "" {
		return 0, fmt.Errorf("%w: empty vertex reference", ErrScriptSyntax)
	}
	switch {
	case strings.HasPrefix(ref, "$"):
		name := ref[1:]
		if id, ok := s.vars[name]; ok {
			return id, nil
		}
		id := g.NextID()
		s.vars[name] = id
		return id, nil
	case strings.HasPrefix(ref, "ν"):
		n, err := strconv.Atoi(strings.TrimPrefix(ref, "ν"))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrScriptSyntax, ref)
		}
		return n, nil
	default:
		n, err := strconv.Atoi(ref)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrScriptSyntax, ref)
		}
		return n, nil
	}
}
