// Package wire parses wire descriptions, traces them across the grid and
// analyzes where two wires cross.
package wire

import (
	"errors"
	"strconv"
	"strings"

	"github.com/vovakirdan/wirecross/internal/core"
)

// Segment is one straight run of a wire: a direction and a number of unit steps.
type Segment struct {
	Dir      core.Dir
	Distance int
}

// String formats the segment in wire notation, e.g. "R8".
func (s Segment) String() string {
	return string(s.Dir.Letter()) + strconv.Itoa(s.Distance)
}

// ParseDir converts a direction letter to a Dir.
func ParseDir(b byte) (core.Dir, error) {
	switch b {
	case 'L':
		return core.DirLeft, nil
	case 'R':
		return core.DirRight, nil
	case 'U':
		return core.DirUp, nil
	case 'D':
		return core.DirDown, nil
	default:
		return 0, ErrInvalidDirection
	}
}

// ParseSegment parses a single token such as "R8".
func ParseSegment(tok string) (Segment, error) {
	if tok == "" {
		return Segment{}, &ParseError{Index: -1, Token: tok, Kind: ErrInvalidDirection}
	}

	dir, err := ParseDir(tok[0])
	if err != nil {
		return Segment{}, &ParseError{Index: -1, Token: tok, Kind: ErrInvalidDirection}
	}

	digits := tok[1:]
	if digits == "" || strings.IndexFunc(digits, notDigit) >= 0 {
		return Segment{}, &ParseError{Index: -1, Token: tok, Kind: ErrInvalidDistance}
	}
	dist, err := strconv.Atoi(digits)
	if err != nil {
		// Only reachable on overflow.
		return Segment{}, &ParseError{Index: -1, Token: tok, Kind: ErrInvalidDistance, Err: err}
	}

	return Segment{Dir: dir, Distance: dist}, nil
}

func notDigit(r rune) bool {
	return r < '0' || r > '9'
}

// ParsePath parses a full comma-separated wire description.
// Segment order is preserved; each segment continues from the end of the previous one.
func ParsePath(line string) ([]Segment, error) {
	line = strings.TrimSpace(line)
	tokens := strings.Split(line, ",")

	segs := make([]Segment, 0, len(tokens))
	for i, tok := range tokens {
		seg, err := ParseSegment(strings.TrimSpace(tok))
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Index = i
			}
			return nil, err
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// FormatPath serializes segments back to comma-separated wire notation.
func FormatPath(segs []Segment) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}
