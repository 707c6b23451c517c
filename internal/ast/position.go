package ast

import "fmt"

// Position identifies a region of the source expression text. Line and
// Column are 1-indexed; Start and End are byte offsets into the input,
// with End pointing one past the last byte of the region.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Start  int `json:"start"`
	End    int `json:"end"`
}

// Unknown is the sentinel position attached to synthetic nodes that have
// no corresponding source text.
var Unknown = Position{Start: -1, End: -1}

// IsUnknown reports whether the position is the Unknown sentinel.
func (p Position) IsUnknown() bool {
	return p.Start < 0
}

// String returns a human-readable representation of the position
func (p Position) String() string {
	if p.IsUnknown() {
		return "?:?"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
