// SPDX-License-Identifier: MIT
// Package: subdiv/shape
//
// obj.go — Wavefront OBJ reader with subdivision tags.
//
// Recognized lines:
//
//	v x y z ...          vertex payload (any arity, equal across vertices)
//	f a b c ...          face, 1-based or negative (relative) indices;
//	                     "a/t/n" tokens keep only the vertex index
//	t name I/F/S ints... floats... strings...
//
// Tags:
//
//	crease               I ≥ 2 vertices forming a chain, F = 1 sharpness
//	corner               I ≥ 1 vertices, F = 1 shared or one per vertex
//	interpolateboundary  I = 1: 0 none, 1 edgeonly, 2 edgeandcorner
//	vertexedit           I = face, slot..., vertex; F = payload; S = op
//
// Other statements (vt, vn, o, g, s, usemtl, mtllib, comments) are ignored.
// The scheme is Loop when every face is a triangle, CatmullClark otherwise.

package shape

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/subdiv/refine"
	"github.com/katalvlaran/subdiv/topology"
)

const (
	methodParseOBJ = "ParseOBJ"
	maxOBJLine     = 1 << 20
)

// objTag is one decoded "t" statement.
type objTag struct {
	name    string
	ints    []int
	floats  []float64
	strings []string
}

// ParseOBJ reads an OBJ stream into a Shape named name.
func ParseOBJ(r io.Reader, name string) (Shape, error) {
	s := Shape{Name: name}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxOBJLine)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		var err error
		switch fields[0] {
		case "v":
			err = s.objVertex(fields[1:])
		case "f":
			err = s.objFace(fields[1:])
		case "t":
			var tag objTag
			if tag, err = parseTag(fields[1:]); err == nil {
				err = s.objApplyTag(tag)
			}
		}
		if err != nil {
			return Shape{}, fmt.Errorf("%s: line %d: %v: %w", methodParseOBJ, line, err, ErrMalformed)
		}
	}
	if err := sc.Err(); err != nil {
		return Shape{}, fmt.Errorf("%s: %w", methodParseOBJ, err)
	}
	if len(s.Descriptor.Faces) == 0 {
		return Shape{}, fmt.Errorf("%s: no faces: %w", methodParseOBJ, ErrMalformed)
	}

	s.Scheme = refine.Loop
	for _, f := range s.Descriptor.Faces {
		if len(f) != 3 {
			s.Scheme = refine.CatmullClark
			break
		}
	}
	return s, nil
}

func (s *Shape) objVertex(args []string) error {
	if len(args) == 0 {
		return errors.New("vertex without coordinates")
	}
	p := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("vertex coordinate %q", a)
		}
		p[i] = v
	}
	s.Descriptor.Positions = append(s.Descriptor.Positions, p)
	return nil
}

func (s *Shape) objFace(args []string) error {
	n := len(s.Descriptor.Positions)
	face := make([]int, len(args))
	for i, a := range args {
		head, _, _ := strings.Cut(a, "/")
		idx, err := strconv.Atoi(head)
		if err != nil || idx == 0 {
			return fmt.Errorf("face index %q", a)
		}
		if idx < 0 {
			idx += n
		} else {
			idx--
		}
		face[i] = idx
	}
	s.Descriptor.Faces = append(s.Descriptor.Faces, face)
	return nil
}

// parseTag decodes "name I/F/S args...".
func parseTag(args []string) (objTag, error) {
	if len(args) < 2 {
		return objTag{}, errors.New("tag without counts")
	}
	tag := objTag{name: args[0]}
	counts := strings.Split(args[1], "/")
	if len(counts) != 3 {
		return objTag{}, fmt.Errorf("tag %s: counts %q", tag.name, args[1])
	}
	var n [3]int
	for i, c := range counts {
		v, err := strconv.Atoi(c)
		if err != nil || v < 0 {
			return objTag{}, fmt.Errorf("tag %s: counts %q", tag.name, args[1])
		}
		n[i] = v
	}
	rest := args[2:]
	if len(rest) != n[0]+n[1]+n[2] {
		return objTag{}, fmt.Errorf("tag %s: want %d arguments, got %d", tag.name, n[0]+n[1]+n[2], len(rest))
	}
	for _, a := range rest[:n[0]] {
		v, err := strconv.Atoi(a)
		if err != nil {
			return objTag{}, fmt.Errorf("tag %s: int %q", tag.name, a)
		}
		tag.ints = append(tag.ints, v)
	}
	for _, a := range rest[n[0] : n[0]+n[1]] {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return objTag{}, fmt.Errorf("tag %s: float %q", tag.name, a)
		}
		tag.floats = append(tag.floats, v)
	}
	tag.strings = rest[n[0]+n[1]:]
	return tag, nil
}

func (s *Shape) objApplyTag(t objTag) error {
	switch t.name {
	case "crease":
		if len(t.ints) < 2 || len(t.floats) != 1 {
			return errors.New("crease wants >=2 ints and 1 float")
		}
		for i := 0; i+1 < len(t.ints); i++ {
			s.Descriptor.Creases = append(s.Descriptor.Creases,
				topology.Crease{V0: t.ints[i], V1: t.ints[i+1], Sharpness: t.floats[0]})
		}
	case "corner":
		if len(t.ints) == 0 || (len(t.floats) != 1 && len(t.floats) != len(t.ints)) {
			return fmt.Errorf("corner wants >=1 ints and 1 or %d floats", len(t.ints))
		}
		for i, v := range t.ints {
			sh := t.floats[0]
			if len(t.floats) > 1 {
				sh = t.floats[i]
			}
			s.Descriptor.Corners = append(s.Descriptor.Corners, topology.Corner{Vertex: v, Sharpness: sh})
		}
	case "interpolateboundary":
		if len(t.ints) != 1 {
			return errors.New("interpolateboundary wants 1 int")
		}
		mode, err := topology.ParseBoundaryMode(strconv.Itoa(t.ints[0]))
		if err != nil {
			return err
		}
		s.Descriptor.Boundary = mode
	case "vertexedit":
		if len(t.ints) < 2 || len(t.floats) == 0 || len(t.strings) != 1 {
			return errors.New("vertexedit wants >=2 ints, >=1 float and 1 string")
		}
		parts := make([]string, len(t.ints))
		for i, v := range t.ints {
			parts[i] = strconv.Itoa(v)
		}
		e, err := parseEdit(strings.Join(parts, "/"), t.strings[0], t.floats)
		if err != nil {
			return err
		}
		s.Edits = append(s.Edits, e)
	default:
		return fmt.Errorf("unknown tag %q", t.name)
	}
	return nil
}
