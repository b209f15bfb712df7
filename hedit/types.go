// SPDX-License-Identifier: MIT
// Package: subdiv/hedit
//
// types.go — Op, Path, Edit, Result, Diagnostic and path keys.

package hedit

import (
	"fmt"
	"strconv"
	"strings"
)

// Op is the kind of a hierarchical edit.
type Op uint8

const (
	// Set replaces the vertex value outright.
	Set Op = iota
	// Add accumulates the payload onto the value.
	Add
	// Subtract removes the payload from the value.
	Subtract
)

// String returns the lowercase operation name.
func (op Op) String() string {
	switch op {
	case Set:
		return "set"
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Valid reports whether op is one of the three known operations.
func (op Op) Valid() bool { return op <= Subtract }

// ParseOp parses "set", "add", "subtract" (or "sub"), case-insensitively.
func ParseOp(s string) (Op, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "set":
		return Set, nil
	case "add":
		return Add, nil
	case "subtract", "sub":
		return Subtract, nil
	default:
		return 0, fmt.Errorf("ParseOp(%q): %w", s, ErrInvalidOp)
	}
}

// Path addresses one vertex in the refinement hierarchy.
//
//   - Face     — control-mesh face the path starts from.
//   - Children — one child slot per level below Face.
//   - Vertex   — local corner index inside the final sub-face.
type Path struct {
	Face     int
	Children []int
	Vertex   int
}

// Depth is the refinement level the edit is anchored at.
func (p Path) Depth() int { return len(p.Children) }

// FaceKey is the path key of the sub-face that holds the target vertex.
func (p Path) FaceKey() string { return Key(p.Face, p.Children) }

// String renders the path as "face/slot/.../vertex".
func (p Path) String() string {
	var b strings.Builder
	b.WriteString(Key(p.Face, p.Children))
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(p.Vertex))
	return b.String()
}

func (p Path) validate() error {
	if p.Face < 0 || p.Vertex < 0 {
		return fmt.Errorf("path %s: %w", p, ErrBadPath)
	}
	for _, c := range p.Children {
		if c < 0 {
			return fmt.Errorf("path %s: %w", p, ErrBadPath)
		}
	}
	return nil
}

// ParsePath parses "face/slot/.../vertex". At least a face and a vertex are
// required; "3/1" is a depth-0 path.
func ParsePath(s string) (Path, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) < 2 {
		return Path{}, fmt.Errorf("ParsePath(%q): %w", s, ErrBadPath)
	}
	nums := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return Path{}, fmt.Errorf("ParsePath(%q): %w", s, ErrBadPath)
		}
		nums[i] = n
	}
	p := Path{Face: nums[0], Vertex: nums[len(nums)-1]}
	if len(nums) > 2 {
		p.Children = append([]int(nil), nums[1:len(nums)-1]...)
	}
	return p, nil
}

// Key returns the canonical key of the face reached from control face
// `face` through `slots`: "face/slot/slot". The refinement engine indexes
// every level's faces by this key while building the level.
func Key(face int, slots []int) string {
	buf := make([]byte, 0, 4+4*len(slots))
	buf = strconv.AppendInt(buf, int64(face), 10)
	for _, s := range slots {
		buf = append(buf, '/')
		buf = strconv.AppendInt(buf, int64(s), 10)
	}
	return string(buf)
}

// ChildKey extends a face key by one child slot.
func ChildKey(parent string, slot int) string {
	return parent + "/" + strconv.Itoa(slot)
}

// Edit is one hierarchical vertex edit.
type Edit struct {
	Path  Path
	Op    Op
	Value []float64
}

// Result is the fold of a vertex's edits.
//
// Override is true when at least one Set was applied: Value is then the
// final value of the vertex. Otherwise Value is an additive delta to apply
// on top of the averaged value (nil when no edit applied).
type Result struct {
	Override bool
	Value    []float64
}

// Empty reports whether no edit contributed.
func (r Result) Empty() bool { return !r.Override && r.Value == nil }

// Compose folds edits in submission order: Set replaces the running value,
// Add/Subtract accumulate onto it. Payload arities are assumed equal (the
// Applicator validates them). Complexity: O(len(edits)·arity).
func Compose(edits []Edit) Result {
	var r Result
	for _, e := range edits {
		switch e.Op {
		case Set:
			r.Override = true
			r.Value = append(r.Value[:0], e.Value...)
		case Add, Subtract:
			if r.Value == nil {
				r.Value = make([]float64, len(e.Value))
			}
			sign := 1.0
			if e.Op == Subtract {
				sign = -1
			}
			for i, v := range e.Value {
				r.Value[i] += sign * v
			}
		}
	}
	return r
}

// Diagnostic records an edit that was skipped.
type Diagnostic struct {
	// Index is the position of the edit in the submitted list.
	Index  int
	Path   Path
	Reason string
}

// String renders the diagnostic for logs.
func (d Diagnostic) String() string {
	return fmt.Sprintf("edit #%d (%s): %s", d.Index, d.Path, d.Reason)
}
